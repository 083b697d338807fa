// Package nlu turns free-text utterances into typed booking values. All
// extractors are pure functions over the utterance (plus a clock for time
// parsing) so the dialogue layer stays trivially testable.
package nlu

import (
	"regexp"
	"strings"

	"rapidpark/internal/utils"
)

// Plate shapes seen on calls: KA01AB1234 style, or ABC-1234 / ABC1234.
var vehicleRegPattern = regexp.MustCompile(`\b[A-Z]{2}\d{2}[A-Z]{2}\d{4}\b|\b[A-Z]{3}-?\d{4}\b`)

// Retry pattern for space-stripped text, where surrounding words glue onto
// the plate and defeat the word boundaries above.
var vehicleRegLoose = regexp.MustCompile(`[A-Z]{2}\d{2}[A-Z]{2}\d{4}|[A-Z]{3}-?\d{4}`)

// ExtractVehicle pulls a registration number and a vehicle class out of an
// utterance like "KA 01 AB 1234, it's a motorcycle". The registration is
// matched against the uppercased text; the class comes from a keyword
// vocabulary and falls back to "unknown" when nothing matches. An empty
// registration means extraction failed.
func ExtractVehicle(utterance string) (reg, class string) {
	lower := strings.ToLower(utterance)

	class = utils.ClassUnknown
	switch {
	case strings.Contains(lower, "motorcycle"), strings.Contains(lower, "bike"), strings.Contains(lower, "motorbike"):
		class = utils.ClassMotorcycle
	case strings.Contains(lower, "truck"), strings.Contains(lower, "van"):
		class = utils.ClassTruck
	case strings.Contains(lower, "car"), strings.Contains(lower, "sedan"), strings.Contains(lower, "suv"):
		class = utils.ClassCar
	}

	upper := strings.ToUpper(utterance)
	reg = vehicleRegPattern.FindString(upper)
	// Callers often spell plates with spaces; retry without them.
	if reg == "" {
		reg = vehicleRegLoose.FindString(strings.ReplaceAll(upper, " ", ""))
	}
	return reg, class
}
