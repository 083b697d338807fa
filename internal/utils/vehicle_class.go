package utils

import "strings"

const (
	ClassCar        = "car"
	ClassMotorcycle = "motorcycle"
	ClassTruck      = "truck"
	ClassUnknown    = "unknown"
)

// KnownVehicleClasses are the classes a caller may specify explicitly.
var KnownVehicleClasses = []string{ClassCar, ClassMotorcycle, ClassTruck}

func IsKnownVehicleClass(class string) bool {
	c := strings.ToLower(strings.TrimSpace(class))
	for _, known := range KnownVehicleClasses {
		if c == known {
			return true
		}
	}
	return false
}

// NormalizeVehicleReg uppercases a registration and strips inner spaces so
// that "ka 01 ab 1234" and "KA01AB1234" produce the same confirmation code.
func NormalizeVehicleReg(reg string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(reg), " ", ""))
}
