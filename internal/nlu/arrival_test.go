package nlu

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Fixed reference clock: March 10 2025, 10:00 UTC.
var arrivalNow = time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)

func TestParseArrivalTodayWithTime(t *testing.T) {
	got, err := ParseArrival("today at 3 PM", arrivalNow)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC), got)
}

func TestParseArrivalTomorrowWithTime(t *testing.T) {
	got, err := ParseArrival("tomorrow at 10 AM", arrivalNow)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 11, 10, 0, 0, 0, time.UTC), got)
}

func TestParseArrivalTimeOnlyKeepsToday(t *testing.T) {
	got, err := ParseArrival("3:30 pm", arrivalNow)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 10, 15, 30, 0, 0, time.UTC), got)
}

func TestParseArrivalPastTimeRollsToNextDay(t *testing.T) {
	// 3 AM has long passed at 10:00, so the caller means tomorrow's 3 AM.
	got, err := ParseArrival("today at 3 AM", arrivalNow)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 11, 3, 0, 0, 0, time.UTC), got)
}

func TestParseArrivalFiveMinuteGrace(t *testing.T) {
	// A few minutes in the past still means today.
	got, err := ParseArrival("9:57 am", arrivalNow)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 10, 9, 57, 0, 0, time.UTC), got)

	// Exactly five minutes past sits on the boundary and does not roll.
	got, err = ParseArrival("9:55 am", arrivalNow)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 10, 9, 55, 0, 0, time.UTC), got)

	// One minute beyond the grace window rolls to tomorrow.
	got, err = ParseArrival("9:54 am", arrivalNow)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 11, 9, 54, 0, 0, time.UTC), got)
}

func TestParseArrivalMonthName(t *testing.T) {
	got, err := ParseArrival("March 12 at 5 pm", arrivalNow)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 12, 17, 0, 0, 0, time.UTC), got)
}

func TestParseArrivalDateOnlyKeepsClockTime(t *testing.T) {
	got, err := ParseArrival("2025-03-15", arrivalNow)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC), got)
}

func TestParseArrivalTwentyFourHourClock(t *testing.T) {
	got, err := ParseArrival("today at 18:45", arrivalNow)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 10, 18, 45, 0, 0, time.UTC), got)
}

func TestParseArrivalUnparseable(t *testing.T) {
	for _, utterance := range []string{"", "   ", "whenever", "sometime soon", "the usual"} {
		_, err := ParseArrival(utterance, arrivalNow)
		assert.ErrorIs(t, err, ErrUnparseable, "utterance %q", utterance)
	}
}
