package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huisbeheer/utility-tracker/constants"
	"github.com/huisbeheer/utility-tracker/internal/entity"
)

func inv(address string, ut constants.UtilityType, amount float64, date time.Time, paid bool) *entity.Invoice {
	return &entity.Invoice{
		Address:     address,
		UtilityType: ut,
		Amount:      amount,
		InvoiceDate: date,
		IsPaid:      paid,
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestUnpaidTotal(t *testing.T) {
	invoices := []*entity.Invoice{
		inv("A", constants.Water, 100, date(2024, 1, 1), false),
		inv("A", constants.Water, 50, date(2024, 2, 1), true),
		inv("B", constants.Electricity, 25.50, date(2024, 2, 1), false),
	}

	total, count := UnpaidTotal(invoices)
	assert.InDelta(t, 125.50, total, 0.0001)
	assert.Equal(t, 2, count)

	total, count = UnpaidTotal(nil)
	assert.Zero(t, total)
	assert.Zero(t, count)
}

func TestMonthlyTotals(t *testing.T) {
	invoices := []*entity.Invoice{
		inv("A", constants.Water, 100, date(2024, 1, 5), false),
		inv("A", constants.Electricity, 40, date(2024, 1, 20), false),
		inv("A", constants.Water, 60, date(2024, 2, 5), false),
	}

	totals := MonthlyTotals(invoices)
	require.Len(t, totals, 2)
	assert.InDelta(t, 140, totals["2024-01"], 0.0001)
	assert.InDelta(t, 60, totals["2024-02"], 0.0001)
}

func TestPercentageDifference(t *testing.T) {
	invoices := []*entity.Invoice{
		// History averages 100; the newest bill is 150: +50%.
		inv("KAYA WATERVILLAS 84-A", constants.Water, 80, date(2024, 1, 1), true),
		inv("KAYA WATERVILLAS 84-A", constants.Water, 120, date(2024, 2, 1), true),
		inv("KAYA WATERVILLAS 84-A", constants.Water, 150, date(2024, 3, 1), false),
		// Single invoice: no history, no entry.
		inv("KAYA KUARTS 23", constants.Electricity, 200, date(2024, 3, 1), false),
	}

	diffs := PercentageDifference(invoices)
	require.Len(t, diffs, 1)
	assert.InDelta(t, 50, diffs["KAYA WATERVILLAS 84-A (water)"], 0.0001)
}

func TestPercentageDifferenceSeparatesUtilities(t *testing.T) {
	invoices := []*entity.Invoice{
		inv("A", constants.Water, 100, date(2024, 1, 1), true),
		inv("A", constants.Water, 90, date(2024, 2, 1), false),
		inv("A", constants.Electricity, 50, date(2024, 1, 1), true),
		inv("A", constants.Electricity, 75, date(2024, 2, 1), false),
	}

	diffs := PercentageDifference(invoices)
	require.Len(t, diffs, 2)
	assert.InDelta(t, -10, diffs["A (water)"], 0.0001)
	assert.InDelta(t, 50, diffs["A (electricity)"], 0.0001)
}

func TestPercentageDifferenceSkipsZeroAverage(t *testing.T) {
	invoices := []*entity.Invoice{
		inv("A", constants.Water, 0, date(2024, 1, 1), true),
		inv("A", constants.Water, 50, date(2024, 2, 1), false),
	}

	diffs := PercentageDifference(invoices)
	assert.Empty(t, diffs)
}
