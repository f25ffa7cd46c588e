package timecalc

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{-5, "0 h 00 m"},
		{0, "0 h 00 m"},
		{0.4, "0 h 00 m"},
		{-0.5, "0 h 00 m"},
		{0.5, "0 h 01 m"},
		{59.5, "1 h 00 m"},
		{605, "10 h 05 m"},
		{1500, "25 h 00 m"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatDuration(tc.in), "minutes=%v", tc.in)
	}
	assert.Equal(t, FormatDuration(-5), FormatDuration(0))
}

func TestFormatDuration_Monotonic(t *testing.T) {
	prev := -1
	for x := -60.0; x <= 1500; x += 0.25 {
		var h, m int
		_, err := fmt.Sscanf(FormatDuration(x), "%d h %d m", &h, &m)
		require.NoError(t, err)
		total := h*60 + m
		assert.GreaterOrEqual(t, total, prev, "minutes=%v", x)
		prev = total
	}
}

func TestFormatClockTime(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{600, "10:00 Uhr"},
		{0, "00:00 Uhr"},
		{990, "16:30 Uhr"},
		{1080, "18:00 Uhr"},
		{1439.6, "00:00 Uhr (+1 Tag)"},
		{1500, "01:00 Uhr (+1 Tag)"},
		{2900, "00:20 Uhr (+2 Tage)"},
		{-30, "23:30 Uhr"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatClockTime(tc.in), "minutes=%v", tc.in)
	}
}

func TestFormatClockTime_NaN(t *testing.T) {
	assert.Equal(t, ClockPlaceholder, FormatClockTime(math.NaN()))
}

func TestRoundMinutes_HalfUp(t *testing.T) {
	assert.Equal(t, 1, RoundMinutes(0.5))
	assert.Equal(t, 0, RoundMinutes(-0.5))
	assert.Equal(t, -1, RoundMinutes(-0.6))
	assert.Equal(t, 3, RoundMinutes(2.5))
}

func TestFloorDiv(t *testing.T) {
	assert.Equal(t, 1, floorDiv(1500, minutesPerDay))
	assert.Equal(t, -1, floorDiv(-30, minutesPerDay))
	assert.Equal(t, -1, floorDiv(-1440, minutesPerDay))
	assert.Equal(t, 0, floorDiv(0, minutesPerDay))
}
