// Package stats computes invoice aggregates for the dashboard: unpaid
// totals, month-by-month spending, and how the newest bill compares to
// the history of its address and utility.
package stats

import (
	"fmt"
	"sort"

	"github.com/huisbeheer/utility-tracker/internal/entity"
)

// UnpaidTotal sums the amounts of unpaid invoices.
func UnpaidTotal(invoices []*entity.Invoice) (total float64, count int) {
	for _, inv := range invoices {
		if !inv.IsPaid {
			total += inv.Amount
			count++
		}
	}
	return total, count
}

// MonthlyTotals sums invoice amounts per calendar month, keyed "YYYY-MM".
func MonthlyTotals(invoices []*entity.Invoice) map[string]float64 {
	totals := make(map[string]float64)
	for _, inv := range invoices {
		totals[inv.InvoiceDate.Format("2006-01")] += inv.Amount
	}
	return totals
}

// GroupKey identifies one meter's bill history.
func GroupKey(inv *entity.Invoice) string {
	return fmt.Sprintf("%s (%s)", inv.Address, inv.UtilityType)
}

// PercentageDifference compares, per address and utility type, the newest
// invoice amount against the average of all earlier ones. Groups with
// fewer than two invoices, or a zero historical average, are omitted.
func PercentageDifference(invoices []*entity.Invoice) map[string]float64 {
	groups := make(map[string][]*entity.Invoice)
	for _, inv := range invoices {
		key := GroupKey(inv)
		groups[key] = append(groups[key], inv)
	}

	result := make(map[string]float64)
	for key, group := range groups {
		if len(group) < 2 {
			continue
		}
		sort.Slice(group, func(i, j int) bool {
			return group[i].InvoiceDate.Before(group[j].InvoiceDate)
		})

		latest := group[len(group)-1]
		var sum float64
		for _, inv := range group[:len(group)-1] {
			sum += inv.Amount
		}
		avg := sum / float64(len(group)-1)
		if avg == 0 {
			continue
		}
		result[key] = (latest.Amount - avg) / avg * 100
	}
	return result
}
