package parse

import (
	"regexp"
	"strings"
)

// WEB Bonaire bills print the invoice number immediately before the
// "FACTUUR DATUM" column header, with no label of its own.
var reWEBTemplate = regexp.MustCompile(`(?i)\b([A-Z0-9][A-Z0-9-]{3,})\s+FACTUUR\s+DATUM\b`)

var invoiceLabelPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Factuurnummer[:\s]+([^\n]+)`),
	regexp.MustCompile(`(?i)FACTUUR(?:\s+)?NR?(?:\.|:|\s)+([^\n]+)`),
	regexp.MustCompile(`(?i)Invoice\s+number[:\s]+([^\n]+)`),
	regexp.MustCompile(`(?i)Invoice\s+#[:\s]*([^\n]+)`),
	regexp.MustCompile(`(?i)FACTUUR\s+([A-Z0-9-]+)`),
	regexp.MustCompile(`(?i)bill\s+number[:\s]+([^\n]+)`),
	regexp.MustCompile(`(?i)invoice\s+reference[:\s]+([^\n]+)`),
	regexp.MustCompile(`(?i)INV[:\s#-]+([A-Z0-9-]+)`),
	regexp.MustCompile(`(?i)INVOICE[:\s#]+([A-Z0-9/-]+)`),
}

var invoiceShapePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(INV-[A-Z0-9-]+)\b`),
	regexp.MustCompile(`(?i)\b([A-Z]{2,}-[0-9]{4,})\b`),
	regexp.MustCompile(`(?i)\b(F[A-Z0-9]{5,})\b`),
}

// ExtractInvoiceNumber scans for the invoice number: the WEB template
// position first, then labeled patterns, then bare shapes. Returns the
// first match trimmed, or "" when nothing matches. No placeholder is ever
// fabricated; repeated calls on the same text give the same result.
func ExtractInvoiceNumber(text string) string {
	if m := reWEBTemplate.FindStringSubmatch(text); len(m) > 1 {
		return strings.TrimSpace(m[1])
	}

	for _, re := range invoiceLabelPatterns {
		if m := re.FindStringSubmatch(text); len(m) > 1 && strings.TrimSpace(m[1]) != "" {
			return strings.TrimSpace(m[1])
		}
	}

	for _, re := range invoiceShapePatterns {
		if m := re.FindStringSubmatch(text); len(m) > 1 {
			return strings.TrimSpace(m[1])
		}
	}

	return ""
}
