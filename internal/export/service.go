// Package export produces XLSX workbooks from stored invoices, meter
// readings and time sessions.
package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/huisbeheer/utility-tracker/internal/entity"
	"github.com/huisbeheer/utility-tracker/internal/repository"
	"github.com/huisbeheer/utility-tracker/internal/utils"
)

// Service is a tiny façade over repositories that produces XLSX bytes for exports.
type Service struct {
	invoicesRepo repository.InvoiceRepository
	readingsRepo repository.MeterReadingRepository
	sessionsRepo repository.TimeSessionRepository
	logger       *slog.Logger
}

func NewService(invoicesRepo repository.InvoiceRepository, readingsRepo repository.MeterReadingRepository, sessionsRepo repository.TimeSessionRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{invoicesRepo: invoicesRepo, readingsRepo: readingsRepo, sessionsRepo: sessionsRepo, logger: logger}
}

// normalizeWindow clamps dates to date-only UTC; a from-date without a
// to-date means from..today inclusive.
func normalizeWindow(from, to *time.Time) (*time.Time, *time.Time) {
	var fromDate, toDate *time.Time
	if from != nil {
		f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
		fromDate = &f
	}
	if to != nil {
		t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}
	if fromDate != nil && toDate == nil {
		today := time.Now().UTC()
		t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}
	return fromDate, toDate
}

func newSheet(name string) (*excelize.File, error) {
	f := excelize.NewFile()
	if index, _ := f.GetSheetIndex(name); index == -1 {
		if _, err := f.NewSheet(name); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(name)
	f.SetActiveSheet(activeIndex)
	return f, nil
}

func writeHeaders(f *excelize.File, sheet string, headers []string) {
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}
}

// ExportInvoicesXLSX returns an XLSX workbook (as bytes) for the filtered
// invoice list.
func (s *Service) ExportInvoicesXLSX(ctx context.Context, filter entity.InvoiceFilter) ([]byte, error) {
	start := time.Now()

	filter.FromDate, filter.ToDate = normalizeWindow(filter.FromDate, filter.ToDate)
	invoices, err := s.invoicesRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("query invoices: %w", err)
	}

	const sheet = "Invoices"
	f, err := newSheet(sheet)
	if err != nil {
		return nil, err
	}

	writeHeaders(f, sheet, []string{
		"Invoice Date",
		"Due Date",
		"Customer Number",
		"Invoice Number",
		"Address",
		"Utility",
		"Amount",
		"Paid",
		"Payment Date",
		"File",
	})

	row := 2
	for _, inv := range invoices {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, inv.InvoiceDate.Format("2006-01-02"))
		write(2, inv.DueDate.Format("2006-01-02"))
		write(3, inv.CustomerNumber)
		write(4, inv.InvoiceNumber)
		write(5, inv.Address)
		write(6, string(inv.UtilityType))
		write(7, inv.Amount)
		if inv.IsPaid {
			write(8, "yes")
		} else {
			write(8, "no")
		}
		if inv.PaymentDate != nil {
			write(9, inv.PaymentDate.Format("2006-01-02"))
		}
		write(10, inv.FileName)
		row++
	}

	_ = f.SetColWidth(sheet, "A", "B", 14) // dates
	_ = f.SetColWidth(sheet, "C", "D", 18) // numbers
	_ = f.SetColWidth(sheet, "E", "E", 32) // address
	_ = f.SetColWidth(sheet, "F", "G", 12)
	_ = f.SetColWidth(sheet, "J", "J", 40) // file name

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.invoices.ok",
		"rows", len(invoices),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// ExportReadingsXLSX returns an XLSX workbook (as bytes) of meter readings
// for one address, or all addresses when address is empty.
func (s *Service) ExportReadingsXLSX(ctx context.Context, address string, from, to *time.Time) ([]byte, error) {
	start := time.Now()

	fromDate, toDate := normalizeWindow(from, to)
	readings, err := s.readingsRepo.List(ctx, address, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("query readings: %w", err)
	}

	const sheet = "Meter Readings"
	f, err := newSheet(sheet)
	if err != nil {
		return nil, err
	}

	writeHeaders(f, sheet, []string{
		"Reading Date",
		"Address",
		"Water (m3)",
		"Electricity (kWh)",
		"Notes",
	})

	row := 2
	for _, r := range readings {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, r.ReadingDate.Format("2006-01-02"))
		write(2, r.Address)
		if r.WaterReading != nil {
			write(3, *r.WaterReading)
		}
		if r.ElectricityReading != nil {
			write(4, *r.ElectricityReading)
		}
		if r.Notes != nil {
			write(5, truncate(*r.Notes, 140))
		}
		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 14)
	_ = f.SetColWidth(sheet, "B", "B", 32)
	_ = f.SetColWidth(sheet, "C", "D", 16)
	_ = f.SetColWidth(sheet, "E", "E", 48)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.readings.ok",
		"address", address,
		"rows", len(readings),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// ExportSessionsXLSX returns an XLSX workbook (as bytes) of time sessions
// in the window.
func (s *Service) ExportSessionsXLSX(ctx context.Context, from, to *time.Time) ([]byte, error) {
	start := time.Now()

	fromDate, toDate := normalizeWindow(from, to)
	sessions, err := s.sessionsRepo.List(ctx, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}

	const sheet = "Time Sessions"
	f, err := newSheet(sheet)
	if err != nil {
		return nil, err
	}

	writeHeaders(f, sheet, []string{
		"Date",
		"Category",
		"Start",
		"End",
		"Duration",
		"Notes",
	})

	row := 2
	for _, sess := range sessions {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		category := sess.Category
		if sess.CustomCategory != nil && *sess.CustomCategory != "" {
			category = *sess.CustomCategory
		}

		write(1, sess.StartTime.UTC().Format("2006-01-02"))
		write(2, category)
		write(3, sess.StartTime.UTC().Format("15:04"))
		if sess.EndTime != nil {
			write(4, sess.EndTime.UTC().Format("15:04"))
			write(5, utils.FormatDuration(sess.EndTime.Sub(sess.StartTime)))
		}
		if sess.Notes != nil {
			write(6, truncate(*sess.Notes, 140))
		}
		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 14)
	_ = f.SetColWidth(sheet, "B", "B", 20)
	_ = f.SetColWidth(sheet, "C", "E", 10)
	_ = f.SetColWidth(sheet, "F", "F", 48)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.sessions.ok",
		"rows", len(sessions),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// truncate caps s at n runes, never splitting a multi-byte character.
func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n == 1 {
		return string(r[:1])
	}
	return string(r[:n-1]) + "…"
}
