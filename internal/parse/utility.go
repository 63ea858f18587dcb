package parse

import (
	"strings"

	"github.com/huisbeheer/utility-tracker/constants"
)

var waterKeywords = []string{
	"water", "m3", "cubic meter", "tap water", "drinking water",
	"water utility", "water bill", "water supply",
}

var electricityKeywords = []string{
	"electricity", "kwh", "kilowatt", "power", "electric", "energy",
	"electric bill", "power supply",
}

// DetectUtilityType classifies a bill by keyword vote: total occurrences of
// the water set against the electricity set, case-insensitive. Electricity
// wins only on a strict majority; ties and keyword-free text default to
// water.
func DetectUtilityType(text string) constants.UtilityType {
	lower := strings.ToLower(text)

	count := func(keywords []string) int {
		total := 0
		for _, k := range keywords {
			total += strings.Count(lower, k)
		}
		return total
	}

	if count(electricityKeywords) > count(waterKeywords) {
		return constants.Electricity
	}
	return constants.Water
}
