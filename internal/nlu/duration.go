package nlu

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	hoursPattern      = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:hours|hour|hrs|hr|h)\b`)
	minutesPattern    = regexp.MustCompile(`(\d+)\s*(?:minutes|minute|mins|min|m)\b`)
	forHoursPattern   = regexp.MustCompile(`for\s+(\d+)\s*(?:hours|hour|hrs|hr|h)\b`)
	forMinutesPattern = regexp.MustCompile(`for\s+(\d+)\s*(?:minutes|minute|mins|min|m)\b`)
)

// ParseDurationMinutes parses phrases like "2 hours 30 minutes", "2.5h" or
// "90 min" into total minutes. Hour and minute components are extracted
// independently and summed; the "for N hours/minutes" forms are tried only
// when neither primary pattern matched. A non-positive or unparseable result
// is a failure.
func ParseDurationMinutes(utterance string) (int, error) {
	text := strings.ToLower(strings.TrimSpace(utterance))
	if text == "" {
		return 0, ErrUnparseable
	}

	text = strings.ReplaceAll(text, "hours and", "hours")
	text = strings.ReplaceAll(text, "hour and", "hour")

	var hours float64
	var minutes int

	if m := hoursPattern.FindStringSubmatch(text); m != nil {
		hours, _ = strconv.ParseFloat(m[1], 64)
	}
	if m := minutesPattern.FindStringSubmatch(text); m != nil {
		minutes, _ = strconv.Atoi(m[1])
	}

	if hours == 0 && minutes == 0 {
		if m := forHoursPattern.FindStringSubmatch(text); m != nil {
			hours, _ = strconv.ParseFloat(m[1], 64)
		} else if m := forMinutesPattern.FindStringSubmatch(text); m != nil {
			minutes, _ = strconv.Atoi(m[1])
		}
	}

	total := int(math.Round(hours*60)) + minutes
	if total <= 0 {
		return 0, ErrUnparseable
	}
	return total, nil
}
