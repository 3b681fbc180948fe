package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SportsBookingService/internal/domain"
)

func TestNewSlotCatalog(t *testing.T) {
	tests := []struct {
		name    string
		slots   []string
		wantErr error
	}{
		{name: "default catalog", slots: domain.DefaultSlots},
		{name: "compact format", slots: []string{"08:00-09:00", "09:00-10:00"}},
		{name: "gap between slots", slots: []string{"08:00 - 09:00", "10:00 - 11:00"}},
		{name: "empty", slots: nil, wantErr: domain.ErrEmptyCatalog},
		{name: "garbage", slots: []string{"morning"}, wantErr: domain.ErrInvalidSlotFormat},
		{name: "ends before start", slots: []string{"10:00 - 09:00"}, wantErr: domain.ErrInvalidSlotFormat},
		{name: "overlap", slots: []string{"08:00 - 09:30", "09:00 - 10:00"}, wantErr: domain.ErrOverlappingSlots},
		{name: "duplicate", slots: []string{"08:00 - 09:00", "08:00 - 09:00"}, wantErr: domain.ErrOverlappingSlots},
		{name: "out of order", slots: []string{"10:00 - 11:00", "08:00 - 09:00"}, wantErr: domain.ErrOverlappingSlots},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := domain.NewSlotCatalog(tt.slots)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, c)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.slots, c.Slots())
		})
	}
}

func TestSlotCatalog_Validate(t *testing.T) {
	c := domain.DefaultSlotCatalog()

	assert.True(t, c.Validate(nil), "empty set is valid")
	assert.True(t, c.Validate([]string{}), "empty set is valid")
	assert.True(t, c.Validate([]string{"08:00 - 09:00", "17:00 - 18:00"}))
	assert.True(t, c.Validate(c.Slots()), "full catalog is valid")
	assert.False(t, c.Validate([]string{"08:00 - 09:00", "18:00 - 19:00"}))
	assert.False(t, c.Validate([]string{"08:00-09:00"}), "match is exact")
}

func TestSlotCatalog_UnknownSlots(t *testing.T) {
	c := domain.DefaultSlotCatalog()

	unknown := c.UnknownSlots([]string{"07:00 - 08:00", "08:00 - 09:00", "07:00 - 08:00", "late"})
	assert.Equal(t, []string{"07:00 - 08:00", "late"}, unknown)
	assert.Empty(t, c.UnknownSlots([]string{"09:00 - 10:00"}))
}

func TestSlotCatalog_Available(t *testing.T) {
	c, err := domain.NewSlotCatalog([]string{"08:00-09:00", "09:00-10:00", "10:00-11:00"})
	require.NoError(t, err)

	assert.Equal(t, []string{"08:00-09:00", "10:00-11:00"}, c.Available([]string{"09:00-10:00"}))
	assert.Equal(t, c.Slots(), c.Available(nil))
	assert.Empty(t, c.Available(c.Slots()))
}

func TestSlotCatalog_Sort(t *testing.T) {
	c := domain.DefaultSlotCatalog()

	sorted := c.Sort([]string{"unknown", "10:00 - 11:00", "08:00 - 09:00"})
	assert.Equal(t, []string{"08:00 - 09:00", "10:00 - 11:00", "unknown"}, sorted)
}

func TestSlotCatalog_SlotsIsCopy(t *testing.T) {
	c := domain.DefaultSlotCatalog()

	slots := c.Slots()
	slots[0] = "changed"
	assert.Equal(t, "08:00 - 09:00", c.Slots()[0])
}
