package constants

import "strings"

// UtilityType classifies a bill as water or electricity.
type UtilityType string

// Stable values (store these exact strings in DB).
const (
	Water       UtilityType = "water"
	Electricity UtilityType = "electricity"
)

var allUtilityTypes = []UtilityType{Water, Electricity}

func UtilityTypes() []string {
	result := make([]string, len(allUtilityTypes))
	for i, u := range allUtilityTypes {
		result[i] = string(u)
	}
	return result
}

// ParseUtilityType canonicalizes user input. Unrecognized input falls back
// to Water, the documented default.
func ParseUtilityType(input string) (UtilityType, bool) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case string(Water):
		return Water, true
	case string(Electricity):
		return Electricity, true
	}
	return Water, false
}
