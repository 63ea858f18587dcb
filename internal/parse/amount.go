package parse

import (
	"regexp"
	"strconv"
	"strings"
)

var amountLabelPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:TE BETALEN|TOTAL|Totaal|Amount due|Total Amount|Total Due|Pay this amount)[:\s]+[€£$]?\s*(\d+[.,]?\d*)`),
	regexp.MustCompile(`(?i)(?:TOTAL|Totaal|Amount due|Total Amount|Total Due|Pay this amount|Total invoice|To pay)[:\s]+[€£$]?\s*(\d+[.,]?\d*)`),
	regexp.MustCompile(`(?i)(?:Total:)[:\s]+[€£$]?\s*(\d+[.,]?\d*)`),
	regexp.MustCompile(`(?i)[€£$]?\s*(\d+[.,]?\d*)[:\s]+(?:total)`),
	regexp.MustCompile(`(?i)Amount[:\s]+[€£$]?\s*(\d+[.,]?\d*)`),
	regexp.MustCompile(`[€£$]\s*(\d+[.,]?\d*)`),
}

var rePaymentKeyword = regexp.MustCompile(`(?i)(?:total|amount|due|pay|betalen|payment)`)

var reDecimal = regexp.MustCompile(`\d+[.,]?\d*`)

// ExtractAmount finds the amount due: labeled total patterns first, then
// the largest decimal on any line mentioning payment. Decimal commas are
// normalized to dots. Returns 0 when nothing parses; negative amounts are
// not special-cased, the source bills are non-negative.
func ExtractAmount(text string) float64 {
	for _, re := range amountLabelPatterns {
		if m := re.FindStringSubmatch(text); len(m) > 1 {
			if v, ok := parseDecimal(m[1]); ok {
				return v
			}
		}
	}

	var largest float64
	for _, line := range strings.Split(text, "\n") {
		if !rePaymentKeyword.MatchString(line) {
			continue
		}
		for _, num := range reDecimal.FindAllString(line, -1) {
			if v, ok := parseDecimal(num); ok && v > largest {
				largest = v
			}
		}
	}
	return largest
}

func parseDecimal(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
