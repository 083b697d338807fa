package nlu

import (
	"regexp"
	"strings"
)

var (
	emailPreface = regexp.MustCompile(`\b(?:my|the|our)?\s*(?:email|mail|address|id)\s*(?:is|:)\s*`)
	emailShape   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	dotRun       = regexp.MustCompile(`\.+`)
	atRun        = regexp.MustCompile(`@+`)
)

// Spoken-token replacements applied word by word.
var emailTokenMap = map[string]string{
	"at":          "@",
	"dot":         ".",
	"period":      ".",
	"underscore":  "_",
	"under_score": "_",
	"dash":        "-",
	"hyphen":      "-",
	"minus":       "-",
	"plus":        "+",
	"space":       "",
	"spaces":      "",
}

// ExtractEmail normalizes a spoken email like "john dot doe at gmail dot com"
// to "john.doe@gmail.com". Leading phrases such as "my email is" are
// stripped, spoken tokens are mapped symbol by symbol, repeated "." and "@"
// runs are collapsed, and the result must have the local@domain.tld shape
// with exactly one "@".
func ExtractEmail(utterance string) (string, error) {
	text := strings.ToLower(strings.TrimSpace(utterance))
	if text == "" {
		return "", ErrUnparseable
	}

	text = emailPreface.ReplaceAllString(text, "")

	// Common domain phrases first, so "gmail dot com" survives tokenizing.
	text = strings.ReplaceAll(text, "dot com", ".com")
	text = strings.ReplaceAll(text, "dot org", ".org")
	text = strings.ReplaceAll(text, "dot net", ".net")

	var parts []string
	for _, raw := range strings.Fields(text) {
		word := strings.Trim(raw, ",;!?")
		if mapped, ok := emailTokenMap[word]; ok {
			parts = append(parts, mapped)
		} else {
			parts = append(parts, word)
		}
	}

	candidate := strings.Join(parts, "")
	candidate = dotRun.ReplaceAllString(candidate, ".")
	candidate = atRun.ReplaceAllString(candidate, "@")
	candidate = strings.TrimRight(candidate, ".")

	if strings.Count(candidate, "@") != 1 || !emailShape.MatchString(candidate) {
		return "", ErrUnparseable
	}
	return candidate, nil
}

// IsValidEmail checks the local@domain.tld shape for emails supplied
// directly (not spoken) on the reserve path.
func IsValidEmail(email string) bool {
	return email != "" && emailShape.MatchString(email)
}
