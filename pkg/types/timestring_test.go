package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid HH:MM", input: "08:00"},
		{name: "valid HH:MM:SS", input: "08:00:30"},
		{name: "midnight", input: "00:00"},
		{name: "last minute of day", input: "23:59"},
		{name: "missing leading zero", input: "8:00", wantErr: true},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "minute out of range", input: "12:60", wantErr: true},
		{name: "second out of range", input: "12:00:60", wantErr: true},
		{name: "garbage", input: "noon", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, got.String())
		})
	}
}

func TestNewTimeString(t *testing.T) {
	moment := time.Date(2025, 6, 1, 8, 5, 30, 0, time.UTC)
	assert.Equal(t, TimeString("08:05"), NewTimeString(moment))
}

func TestTimeString_Comparison(t *testing.T) {
	tests := []struct {
		name       string
		a, b       TimeString
		wantBefore bool
		wantAfter  bool
	}{
		{name: "earlier is before", a: "08:00", b: "08:15", wantBefore: true},
		{name: "later is after", a: "22:00", b: "08:15", wantAfter: true},
		{name: "equal is neither", a: "12:30", b: "12:30"},
		{name: "hour boundary with padding", a: "09:59", b: "10:00", wantBefore: true},
		{name: "seconds variant sorts after bare minutes", a: "08:20", b: "08:20:00", wantBefore: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantBefore, tt.a.IsBefore(tt.b))
			assert.Equal(t, tt.wantAfter, tt.a.IsAfter(tt.b))
		})
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	tests := []struct {
		name    string
		input   TimeString
		minutes int
		want    TimeString
		wantErr bool
	}{
		{name: "simple step", input: "08:00", minutes: 15, want: "08:15"},
		{name: "hour rollover", input: "08:45", minutes: 15, want: "09:00"},
		{name: "multiple hours", input: "08:00", minutes: 150, want: "10:30"},
		{name: "last slot of day", input: "23:45", minutes: 14, want: "23:59"},
		{name: "midnight overflow", input: "23:45", minutes: 15, wantErr: true},
		{name: "negative result", input: "00:10", minutes: -20, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.input.AddMinutes(tt.minutes)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
