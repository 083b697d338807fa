package nlu

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

// ErrUnparseable is returned when an utterance yields no usable value.
var ErrUnparseable = errors.New("could not parse utterance")

var whitespaceRun = regexp.MustCompile(`\s+`)

// arrivalLayouts are tried in order against the normalized utterance.
// Missing components are filled from "now": a time-only match keeps today's
// date, a date-only match keeps the current clock time.
var arrivalLayouts = []struct {
	layout  string
	hasDate bool
	hasTime bool
}{
	{"2006-01-02 3:04 pm", true, true},
	{"2006-01-02 3:04pm", true, true},
	{"2006-01-02 3 pm", true, true},
	{"2006-01-02 3pm", true, true},
	{"2006-01-02 15:04", true, true},
	{"2006-01-02", true, false},
	{"January 2 3:04 pm", true, true},
	{"January 2 3 pm", true, true},
	{"January 2 15:04", true, true},
	{"3:04 pm", false, true},
	{"3:04pm", false, true},
	{"3 pm", false, true},
	{"3pm", false, true},
	{"15:04", false, true},
}

// ParseArrival resolves an arrival utterance like "today at 3 PM" or
// "tomorrow at 10 AM" to an instant anchored to now. "today"/"tomorrow" are
// substituted with calendar dates, the filler " at " is stripped, then the
// text is matched against the layout list with now as the default fill.
//
// If the resolved instant is more than 5 minutes in the past, one day is
// added: a caller saying "3 AM" at 10:00 means tomorrow's 3 AM. The 5-minute
// threshold is load-bearing for which day gets booked; exactly 5 minutes past
// does not roll over.
func ParseArrival(utterance string, now time.Time) (time.Time, error) {
	text := strings.ToLower(strings.TrimSpace(utterance))
	if text == "" {
		return time.Time{}, ErrUnparseable
	}

	if strings.Contains(text, "today") {
		text = strings.ReplaceAll(text, "today", now.Format("2006-01-02"))
	} else if strings.Contains(text, "tomorrow") {
		text = strings.ReplaceAll(text, "tomorrow", now.AddDate(0, 0, 1).Format("2006-01-02"))
	}

	text = strings.ReplaceAll(text, " at ", " ")
	text = whitespaceRun.ReplaceAllString(text, " ")
	text = strings.TrimSpace(text)

	parsed, ok := parseWithDefault(text, now)
	if !ok {
		return time.Time{}, ErrUnparseable
	}

	if parsed.Before(now.Add(-5 * time.Minute)) {
		parsed = parsed.AddDate(0, 0, 1)
	}
	return parsed.Truncate(time.Second), nil
}

func parseWithDefault(text string, now time.Time) (time.Time, bool) {
	for _, l := range arrivalLayouts {
		t, err := time.ParseInLocation(l.layout, text, now.Location())
		if err != nil {
			continue
		}
		year, month, day := t.Date()
		if !l.hasDate {
			year, month, day = now.Date()
		} else if t.Year() == 0 {
			// Month-name layouts carry no year.
			year = now.Year()
		}
		hour, min := t.Hour(), t.Minute()
		if !l.hasTime {
			hour, min = now.Hour(), now.Minute()
		}
		return time.Date(year, month, day, hour, min, 0, 0, now.Location()), true
	}
	return time.Time{}, false
}
