package parse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// dateForm identifies which capture layout a matcher produced.
type dateForm int

const (
	formDMY   dateForm = iota // DD/MM/YYYY or DD-MM-YYYY
	formYMD                   // YYYY-MM-DD or YYYY/MM/DD
	formMonth                 // Month DD, YYYY
)

// dateMatcher pairs a compiled pattern with its capture layout. Matchers
// are evaluated in priority order; the first hit wins.
type dateMatcher struct {
	re   *regexp.Regexp
	form dateForm
}

const (
	invoiceDateLabels = `(?:FACTUUR DATUM|Invoice Date|Date|Datum)`
	dueDateLabels     = `(?:Verval Datum|Due Date|Betaal voor|Payment due|Pay by)`
	dueSentenceLabels = `(?:payment is due|pay before|pay by)`
)

var invoiceDateMatchers = []dateMatcher{
	{regexp.MustCompile(`(?i)` + invoiceDateLabels + `[:\s]+(\d{1,2})[/-](\d{1,2})[/-](\d{4})`), formDMY},
	{regexp.MustCompile(`(?i)` + invoiceDateLabels + `[:\s]+(\d{4})[/-](\d{1,2})[/-](\d{1,2})`), formYMD},
	{regexp.MustCompile(`(?i)` + invoiceDateLabels + `[:\s]+([A-Za-z]+)\s+(\d{1,2})[,\s]+(\d{4})`), formMonth},
	// Unlabeled fallback: the first bare date anywhere in the text.
	{regexp.MustCompile(`\b(\d{1,2})[/-](\d{1,2})[/-](\d{4})\b`), formDMY},
	{regexp.MustCompile(`\b(\d{4})[/-](\d{1,2})[/-](\d{1,2})\b`), formYMD},
	{regexp.MustCompile(`\b([A-Za-z]+)\s+(\d{1,2})[,\s]+(\d{4})\b`), formMonth},
}

// Due dates have no unlabeled fallback: a bare date is far more likely to
// be the invoice date, so an unlabeled due date stays empty.
var dueDateMatchers = []dateMatcher{
	{regexp.MustCompile(`(?i)` + dueDateLabels + `[:\s]+(\d{1,2})[/-](\d{1,2})[/-](\d{4})`), formDMY},
	{regexp.MustCompile(`(?i)` + dueDateLabels + `[:\s]+(\d{4})[/-](\d{1,2})[/-](\d{1,2})`), formYMD},
	{regexp.MustCompile(`(?i)` + dueDateLabels + `[:\s]+([A-Za-z]+)\s+(\d{1,2})[,\s]+(\d{4})`), formMonth},
	{regexp.MustCompile(`(?i)` + dueSentenceLabels + `[:\s]+(\d{1,2})[/-](\d{1,2})[/-](\d{4})`), formDMY},
	{regexp.MustCompile(`(?i)` + dueSentenceLabels + `[:\s]+([A-Za-z]+)\s+(\d{1,2})[,\s]+(\d{4})`), formMonth},
}

var monthNames = []string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

// ExtractInvoiceDate returns the invoice date as YYYY-MM-DD, or "" when no
// date-like substring exists. Callers default an empty result to today.
func ExtractInvoiceDate(text string) string {
	return extractDate(text, invoiceDateMatchers)
}

// ExtractDueDate returns the due date as YYYY-MM-DD, or "" when no labeled
// due date exists. Callers default an empty result to today + 14 days.
func ExtractDueDate(text string) string {
	return extractDate(text, dueDateMatchers)
}

func extractDate(text string, matchers []dateMatcher) string {
	for _, m := range matchers {
		sub := m.re.FindStringSubmatch(text)
		if sub == nil {
			continue
		}
		if d := normalizeDate(sub[1], sub[2], sub[3], m.form); d != "" {
			return d
		}
	}
	return ""
}

// normalizeDate converts the three captured parts to YYYY-MM-DD.
func normalizeDate(a, b, c string, form dateForm) string {
	switch form {
	case formYMD:
		return fmt.Sprintf("%s-%s-%s", a, pad2(b), pad2(c))
	case formMonth:
		month := monthIndex(a)
		if month == 0 {
			return ""
		}
		return fmt.Sprintf("%s-%02d-%s", c, month, pad2(b))
	default:
		return fmt.Sprintf("%s-%s-%s", c, pad2(b), pad2(a))
	}
}

// monthIndex matches a month name by case-insensitive 3-letter prefix.
// Returns 1..12, or 0 when the word is not an English month.
func monthIndex(word string) int {
	w := strings.ToLower(word)
	if len(w) < 3 {
		return 0
	}
	for i, name := range monthNames {
		if strings.HasPrefix(name, w[:3]) {
			return i + 1
		}
	}
	return 0
}

func pad2(s string) string {
	if n, err := strconv.Atoi(s); err == nil {
		return fmt.Sprintf("%02d", n)
	}
	return s
}
