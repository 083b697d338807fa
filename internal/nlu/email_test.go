package nlu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractEmailSpokenForm(t *testing.T) {
	cases := []struct {
		utterance string
		want      string
	}{
		{"john dot doe at gmail dot com", "john.doe@gmail.com"},
		{"my email is jane underscore doe at example dot org", "jane_doe@example.org"},
		{"email is bob dash smith at work dot net", "bob-smith@work.net"},
		{"j.doe@example.com", "j.doe@example.com"},
		{"my email is j.doe@example.com", "j.doe@example.com"},
		{"john at at gmail dot dot com", "john@gmail.com"},
		{"JOHN DOT DOE AT GMAIL DOT COM", "john.doe@gmail.com"},
		{"it is sam plus parking at mail dot com", "itissam+parking@mail.com"},
	}
	for _, tc := range cases {
		got, err := ExtractEmail(tc.utterance)
		require.NoError(t, err, "utterance %q", tc.utterance)
		assert.Equal(t, tc.want, got, "utterance %q", tc.utterance)
	}
}

func TestExtractEmailUnparseable(t *testing.T) {
	for _, utterance := range []string{
		"",
		"skip",
		"no thanks",
		"john doe gmail com",
		"john at gmail at yahoo dot com",
	} {
		_, err := ExtractEmail(utterance)
		assert.ErrorIs(t, err, ErrUnparseable, "utterance %q", utterance)
	}
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("a@b.com"))
	assert.True(t, IsValidEmail("john.doe+tag@sub.example.org"))
	assert.False(t, IsValidEmail(""))
	assert.False(t, IsValidEmail("a@b"))
	assert.False(t, IsValidEmail("not an email"))
	assert.False(t, IsValidEmail("two@@at.com"))
}
