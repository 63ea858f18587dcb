// Package parse extracts structured invoice fields from the text of
// uploaded utility-bill PDFs. Every field extractor is a pure, total
// function over the text blob: it never fails, it falls back to a
// documented default (empty string, 0, water, "Unknown") instead. Each one
// is an ordered cascade of matchers evaluated in priority order, first
// success wins. The only error the package propagates is the text
// extraction adapter's own failure.
package parse

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/huisbeheer/utility-tracker/internal/entity"
	"github.com/huisbeheer/utility-tracker/internal/pdftext"
)

// Parser assembles a ParsedInvoice from a PDF payload. It holds no
// per-call state; one Parser serves concurrent callers.
type Parser struct {
	extractor pdftext.Extractor
	accounts  *AccountTable
	logger    *slog.Logger
}

func NewParser(extractor pdftext.Extractor, accounts *AccountTable, logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.Default()
	}
	if accounts == nil {
		accounts = NewAccountTable(DefaultAccounts())
	}
	return &Parser{extractor: extractor, accounts: accounts, logger: logger}
}

// ParseInvoice extracts text from the PDF and runs every field extractor.
// Text extraction failure is the only error path; once text is available
// assembly always completes, with unresolved fields at their defaults.
// The account table, when the customer number resolves, overrides the
// text-derived address and utility type.
func (p *Parser) ParseInvoice(ctx context.Context, data []byte, fileName string) (*entity.ParsedInvoice, error) {
	res, err := p.extractor.ExtractText(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("extract %q: %w", fileName, err)
	}
	text := res.Text

	inv := &entity.ParsedInvoice{
		CustomerNumber: ExtractCustomerNumber(fileName, text),
		InvoiceNumber:  ExtractInvoiceNumber(text),
		InvoiceDate:    ExtractInvoiceDate(text),
		DueDate:        ExtractDueDate(text),
		Amount:         ExtractAmount(text),
		IsPaid:         false,
		FileName:       fileName,
	}

	if acct, ok := p.accounts.Lookup(inv.CustomerNumber); ok {
		inv.Address = acct.Address
		inv.UtilityType = acct.UtilityType
	} else {
		inv.Address = ExtractAddress(text)
		inv.UtilityType = DetectUtilityType(text)
	}

	p.logger.Info("invoice parsed",
		"file_name", fileName,
		"pages", res.Pages,
		"customer_number", inv.CustomerNumber,
		"invoice_number", inv.InvoiceNumber,
		"invoice_date", inv.InvoiceDate,
		"due_date", inv.DueDate,
		"amount", inv.Amount,
		"utility_type", inv.UtilityType,
	)
	return inv, nil
}
