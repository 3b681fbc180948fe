package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SportsBookingService/internal/domain"
)

func TestFindConflicts(t *testing.T) {
	tests := []struct {
		name      string
		requested []string
		reserved  []string
		want      []string
	}{
		{name: "nothing reserved", requested: []string{"08:00-09:00"}, want: []string{}},
		{name: "disjoint", requested: []string{"09:00-10:00"}, reserved: []string{"08:00-09:00"}, want: []string{}},
		{name: "single conflict", requested: []string{"08:00-09:00"}, reserved: []string{"08:00-09:00"}, want: []string{"08:00-09:00"}},
		{
			name:      "partial overlap keeps request order",
			requested: []string{"10:00-11:00", "08:00-09:00", "09:00-10:00"},
			reserved:  []string{"08:00-09:00", "10:00-11:00"},
			want:      []string{"10:00-11:00", "08:00-09:00"},
		},
		{name: "duplicates collapse", requested: []string{"08:00-09:00", "08:00-09:00"}, reserved: []string{"08:00-09:00"}, want: []string{"08:00-09:00"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.FindConflicts(tt.requested, tt.reserved))
		})
	}
}

func TestNormalizeSlots(t *testing.T) {
	assert.Equal(t, []string{"b", "a"}, domain.NormalizeSlots([]string{"b", "a", "b"}))
	assert.Empty(t, domain.NormalizeSlots(nil))
}

func TestCalculateTotal(t *testing.T) {
	assert.Equal(t, 45.0, domain.CalculateTotal(15, 3))
	assert.Equal(t, 0.3, domain.CalculateTotal(0.1, 3))
}
