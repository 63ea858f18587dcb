// Package pipeline turns a discovered PDF into a stored invoice: parse,
// fill date defaults, deduplicate, persist.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/huisbeheer/utility-tracker/internal/entity"
	"github.com/huisbeheer/utility-tracker/internal/parse"
	"github.com/huisbeheer/utility-tracker/internal/repository"
	"github.com/huisbeheer/utility-tracker/internal/utils"
)

type Config struct {
	// DueDays is added to the invoice date when the bill names no due date.
	DueDays int
}

type Processor struct {
	parser      *parse.Parser
	invoiceRepo repository.InvoiceRepository
	addressRepo repository.AddressRepository
	cfg         Config
	logger      *slog.Logger
}

func NewProcessor(parser *parse.Parser, invoiceRepo repository.InvoiceRepository, addressRepo repository.AddressRepository, cfg Config, logger *slog.Logger) *Processor {
	if cfg.DueDays <= 0 {
		cfg.DueDays = 14
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		parser:      parser,
		invoiceRepo: invoiceRepo,
		addressRepo: addressRepo,
		cfg:         cfg,
		logger:      logger,
	}
}

// ProcessFile parses one PDF and stores the resulting invoice. The second
// return is true when an invoice with the same customer and invoice number
// already exists; nothing is written in that case.
func (p *Processor) ProcessFile(ctx context.Context, path string) (*entity.Invoice, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false, fmt.Errorf("read %q: %w", path, err)
	}

	parsed, err := p.parser.ParseInvoice(ctx, data, filepath.Base(path))
	if err != nil {
		return nil, false, err
	}

	exists, err := p.invoiceRepo.ExistsByNumber(ctx, parsed.CustomerNumber, parsed.InvoiceNumber)
	if err != nil {
		return nil, false, err
	}
	if exists {
		p.logger.Info("invoice already stored, skipping",
			"path", path,
			"customer_number", parsed.CustomerNumber,
			"invoice_number", parsed.InvoiceNumber,
		)
		return nil, true, nil
	}

	inv, err := p.toInvoice(parsed, path)
	if err != nil {
		return nil, false, err
	}

	if inv.Address != "" {
		if _, err := p.addressRepo.Ensure(ctx, inv.Address); err != nil {
			return nil, false, err
		}
	}

	created, err := p.invoiceRepo.Create(ctx, inv)
	if err != nil {
		return nil, false, err
	}
	p.logger.Info("invoice imported", "path", path, "id", created.ID, "amount", created.Amount)
	return created, false, nil
}

// toInvoice applies the date defaults: a missing invoice date becomes
// today, a missing due date becomes the invoice date plus the grace period.
func (p *Processor) toInvoice(parsed *entity.ParsedInvoice, path string) (*entity.Invoice, error) {
	now := time.Now().UTC()
	invoiceDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if parsed.InvoiceDate != "" {
		t, err := utils.ParseYMD(parsed.InvoiceDate)
		if err != nil {
			return nil, fmt.Errorf("invoice date %q: %w", parsed.InvoiceDate, err)
		}
		invoiceDate = t
	}

	dueDate := invoiceDate.AddDate(0, 0, p.cfg.DueDays)
	if parsed.DueDate != "" {
		t, err := utils.ParseYMD(parsed.DueDate)
		if err != nil {
			return nil, fmt.Errorf("due date %q: %w", parsed.DueDate, err)
		}
		dueDate = t
	}

	return &entity.Invoice{
		CustomerNumber: parsed.CustomerNumber,
		InvoiceNumber:  parsed.InvoiceNumber,
		Address:        parsed.Address,
		InvoiceDate:    invoiceDate,
		DueDate:        dueDate,
		Amount:         parsed.Amount,
		UtilityType:    parsed.UtilityType,
		FileName:       parsed.FileName,
		FilePath:       utils.PtrOrNil(path),
	}, nil
}
