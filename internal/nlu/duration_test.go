package nlu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDurationMinutes(t *testing.T) {
	cases := []struct {
		utterance string
		want      int
	}{
		{"2 hours", 120},
		{"2 hours 30 minutes", 150},
		{"2 hours and 30 minutes", 150},
		{"90 minutes", 90},
		{"90 min", 90},
		{"45 mins", 45},
		{"1 hr", 60},
		{"3 hrs", 180},
		{"2.5 hours", 150},
		{"1.5h", 90},
		{"for 3 hours", 180},
		{"for 20 minutes please", 20},
		{"I need it for 2 hours", 120},
		{"maybe 4 hours or so", 240},
	}
	for _, tc := range cases {
		got, err := ParseDurationMinutes(tc.utterance)
		require.NoError(t, err, "utterance %q", tc.utterance)
		assert.Equal(t, tc.want, got, "utterance %q", tc.utterance)
	}
}

func TestParseDurationMinutesUnparseable(t *testing.T) {
	for _, utterance := range []string{"", "a while", "half an hour", "0 minutes", "0 hours"} {
		_, err := ParseDurationMinutes(utterance)
		assert.ErrorIs(t, err, ErrUnparseable, "utterance %q", utterance)
	}
}
