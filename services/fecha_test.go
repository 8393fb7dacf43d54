package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseFecha(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{
			name:  "valid ISO date",
			input: "2024-12-10",
		},
		{
			name:    "slash format rejected",
			input:   "10/12/2024",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
		{
			name:    "datetime rejected",
			input:   "2024-12-10T10:00:00Z",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFecha(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.input, FormatFecha(got))
		})
	}
}

func TestFormatFechaPtr(t *testing.T) {
	assert.Nil(t, FormatFechaPtr(nil))

	d := time.Date(2024, 6, 1, 15, 30, 0, 0, time.UTC)
	got := FormatFechaPtr(&d)
	assert.NotNil(t, got)
	assert.Equal(t, "2024-06-01", *got)
}
