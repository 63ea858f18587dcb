package parse

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huisbeheer/utility-tracker/constants"
	"github.com/huisbeheer/utility-tracker/internal/pdftext"
)

type stubExtractor struct {
	text string
	err  error
}

func (s *stubExtractor) ExtractText(_ context.Context, _ []byte) (pdftext.Result, error) {
	if s.err != nil {
		return pdftext.Result{}, s.err
	}
	return pdftext.Result{Text: s.text, Pages: 1}, nil
}

func TestParseInvoiceFullBill(t *testing.T) {
	text := "Factuurnummer: INV-2024-001\n" +
		"FACTUUR DATUM: 30/03/2024\n" +
		"Verval Datum: 15/04/2024\n" +
		"TE BETALEN: 150.00"
	p := NewParser(&stubExtractor{text: text}, nil, nil)

	inv, err := p.ParseInvoice(context.Background(), []byte("%PDF"), "913531.pdf")
	require.NoError(t, err)

	assert.Equal(t, "913531", inv.CustomerNumber)
	assert.Equal(t, "INV-2024-001", inv.InvoiceNumber)
	assert.Equal(t, "2024-03-30", inv.InvoiceDate)
	assert.Equal(t, "2024-04-15", inv.DueDate)
	assert.InDelta(t, 150.00, inv.Amount, 0.0001)
	assert.False(t, inv.IsPaid)
	assert.Equal(t, "913531.pdf", inv.FileName)

	// 913531 is a known water account: the table overrides whatever the
	// bill text would have yielded for address and utility type.
	assert.Equal(t, "KAYA WATERVILLAS 84-A", inv.Address)
	assert.Equal(t, constants.Water, inv.UtilityType)
}

func TestParseInvoiceAccountOverridesText(t *testing.T) {
	// The text screams electricity and carries its own address, but the
	// customer number resolves to a water account.
	text := "Klantnummer: 913646\n" +
		"verbruik 250 kWh kWh kWh\n" +
		"Service address: 12 Main Street Springfield"
	p := NewParser(&stubExtractor{text: text}, nil, nil)

	inv, err := p.ParseInvoice(context.Background(), []byte("%PDF"), "scan (1).pdf")
	require.NoError(t, err)

	assert.Equal(t, "913646", inv.CustomerNumber)
	assert.Equal(t, "KAYA WATERVILLAS 84-B", inv.Address)
	assert.Equal(t, constants.Water, inv.UtilityType)
}

func TestParseInvoiceUnknownAccountFallsBackToText(t *testing.T) {
	text := "Klantnummer: 555555\n" +
		"Service address: 12 Main Street Springfield\n" +
		"verbruik 120 kWh, vorig jaar 100 kWh"
	p := NewParser(&stubExtractor{text: text}, nil, nil)

	inv, err := p.ParseInvoice(context.Background(), []byte("%PDF"), "scan (1).pdf")
	require.NoError(t, err)

	assert.Equal(t, "555555", inv.CustomerNumber)
	assert.Equal(t, "12 Main Street Springfield", inv.Address)
	assert.Equal(t, constants.Electricity, inv.UtilityType)
}

func TestParseInvoiceEmptyTextDefaults(t *testing.T) {
	p := NewParser(&stubExtractor{text: ""}, nil, nil)

	inv, err := p.ParseInvoice(context.Background(), []byte("%PDF"), "statement.pdf")
	require.NoError(t, err)

	assert.Equal(t, "statement", inv.CustomerNumber)
	assert.Equal(t, "", inv.InvoiceNumber)
	assert.Equal(t, "", inv.InvoiceDate)
	assert.Equal(t, "", inv.DueDate)
	assert.Equal(t, 0.0, inv.Amount)
	assert.Equal(t, "", inv.Address)
	assert.Equal(t, constants.Water, inv.UtilityType)
}

func TestParseInvoicePropagatesExtractionError(t *testing.T) {
	extractErr := &pdftext.ExtractionError{Reason: "invalid document"}
	p := NewParser(&stubExtractor{err: extractErr}, nil, nil)

	_, err := p.ParseInvoice(context.Background(), []byte("garbage"), "broken.pdf")
	require.Error(t, err)
	assert.ErrorAs(t, err, new(*pdftext.ExtractionError))
}

func TestParseInvoiceIdempotent(t *testing.T) {
	text := "Factuurnummer: F-2024-77\nFACTUUR DATUM: 01/02/2024\nTE BETALEN: 42,50"
	p := NewParser(&stubExtractor{text: text}, nil, nil)

	first, err := p.ParseInvoice(context.Background(), []byte("%PDF"), "913531.pdf")
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := p.ParseInvoice(context.Background(), []byte("%PDF"), "913531.pdf")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
