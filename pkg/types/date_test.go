package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateString_Time(t *testing.T) {
	tests := []struct {
		name    string
		input   DateString
		want    time.Time
		wantErr bool
	}{
		{name: "valid", input: "2025-06-10", want: time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)},
		{name: "with time", input: "2025-06-10T10:00:00Z", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "not a day", input: "2025-02-30", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.input.Time()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidDate)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got))
		})
	}
}

func TestNewDateString(t *testing.T) {
	assert.Equal(t, DateString("2025-06-10"), NewDateString(time.Date(2025, 6, 10, 23, 59, 0, 0, time.UTC)))
}
