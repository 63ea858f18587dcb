package parse

import (
	"regexp"
	"strings"
)

var rePDFSuffix = regexp.MustCompile(`(?i)\.pdf$`)

// Filenames made of letters, digits and hyphens are customer numbers: the
// source bills are archived under the account number they belong to.
var reFileNameID = regexp.MustCompile(`^[A-Za-z0-9-]+$`)

var customerLabelPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)klantnummer[:\s]+([A-Za-z0-9-]+)`),
	regexp.MustCompile(`(?i)customer\s+number[:\s]+([A-Za-z0-9-]+)`),
	regexp.MustCompile(`(?i)customer[:\s]+([A-Za-z0-9-]+)`),
	regexp.MustCompile(`(?i)account\s+number[:\s]+([A-Za-z0-9-]+)`),
	regexp.MustCompile(`(?i)account\s+#[:\s]*([A-Za-z0-9-]+)`),
	regexp.MustCompile(`(?i)client\s+number[:\s]+([A-Za-z0-9-]+)`),
	regexp.MustCompile(`(?i)reference\s+number[:\s]+([A-Za-z0-9-]+)`),
}

// Bare ID shapes, tried only when no labeled match exists.
var customerShapePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b([A-Z]{2,3}[0-9]{4,})\b`), // AB1234
	regexp.MustCompile(`(?i)\b([A-Z][0-9]{5,})\b`),      // C12345
	regexp.MustCompile(`(?i)\b([0-9]{5,}[A-Z])\b`),      // 12345C
}

// ExtractCustomerNumber resolves the customer/account number for a bill.
// Resolution order: filename (minus .pdf) when it is a plain ID, labeled
// patterns in the text, bare ID shapes, then the stripped filename again.
// Always returns a non-empty string; "Unknown" is the terminal fallback.
func ExtractCustomerNumber(fileName, text string) string {
	base := rePDFSuffix.ReplaceAllString(fileName, "")

	if base != "" && reFileNameID.MatchString(base) {
		return base
	}

	for _, re := range customerLabelPatterns {
		if m := re.FindStringSubmatch(text); len(m) > 1 && strings.TrimSpace(m[1]) != "" {
			return strings.TrimSpace(m[1])
		}
	}

	for _, re := range customerShapePatterns {
		if m := re.FindStringSubmatch(text); len(m) > 1 {
			return strings.TrimSpace(m[1])
		}
	}

	if base != "" {
		return base
	}
	return "Unknown"
}
