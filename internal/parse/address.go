package parse

import (
	"regexp"
	"strings"
)

var addressLabelPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)ADRES[:\s]+([^\n]+\s[^\n]+)`),
	regexp.MustCompile(`(?i)LEVERINGSADRES[:\s]+([^\n]+\s[^\n]+)`),
	regexp.MustCompile(`(?i)FACTUUR ADRES[:\s]+([^\n]+\s[^\n]+)`),
	regexp.MustCompile(`(?i)ADRESS?E?[:\s]+([^\n]+\s[^\n]+)`),
	regexp.MustCompile(`(?i)delivery address[:\s]+([^\n]+\s[^\n]+)`),
	regexp.MustCompile(`(?i)billing address[:\s]+([^\n]+\s[^\n]+)`),
	regexp.MustCompile(`(?i)service address[:\s]+([^\n]+\s[^\n]+)`),
	regexp.MustCompile(`(?i)property address[:\s]+([^\n]+\s[^\n]+)`),
}

// Line-level indicators of a street address: house number plus a street
// suffix word, or house-number/city/state/zip shapes.
var addressLineIndicators = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\d+\s+[A-Za-z\s]+\s+(?:street|st|avenue|ave|road|rd|lane|ln|drive|dr|boulevard|blvd|way|place|pl)`),
	regexp.MustCompile(`(?i)\b[A-Za-z\s]+\s+\d+\b.*\b[A-Z]{2}\b.*\b\d{5}\b`),
	regexp.MustCompile(`(?i)\b\d{1,5}\s+[A-Za-z\s]+\b.*\b[A-Z]{2}\b`),
}

var reLooseStreet = regexp.MustCompile(`(?i)\d+\s+[A-Za-z\s.]+\s*,?\s*[A-Za-z\s]+`)

// ExtractAddress scans text for a service address. This is the heuristic
// fallback tier only: when the customer number resolves through the account
// table, the assembler uses the canonical address and never calls this.
func ExtractAddress(text string) string {
	for _, re := range addressLabelPatterns {
		if m := re.FindStringSubmatch(text); len(m) > 1 && strings.TrimSpace(m[1]) != "" {
			return strings.TrimSpace(m[1])
		}
	}

	for _, line := range strings.Split(text, "\n") {
		for _, re := range addressLineIndicators {
			if re.MatchString(line) {
				return strings.TrimSpace(line)
			}
		}
	}

	if m := reLooseStreet.FindString(text); m != "" {
		return strings.TrimSpace(m)
	}

	return ""
}
