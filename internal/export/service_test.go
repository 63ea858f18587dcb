package export

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"
	"unicode/utf8"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	_ "modernc.org/sqlite"

	"github.com/huisbeheer/utility-tracker/constants"
	"github.com/huisbeheer/utility-tracker/gen/ent"
	"github.com/huisbeheer/utility-tracker/internal/entity"
	"github.com/huisbeheer/utility-tracker/internal/repository"
)

func newTestService(t *testing.T) (*Service, repository.InvoiceRepository, repository.MeterReadingRepository, repository.TimeSessionRepository) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", t.Name())
	db, err := sql.Open("sqlite", dsn)
	require.NoError(t, err)

	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, client.Schema.Create(context.Background()))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	invoices := repository.NewInvoiceRepository(client, logger)
	readings := repository.NewMeterReadingRepository(client, logger)
	sessions := repository.NewTimeSessionRepository(client, logger)
	return NewService(invoices, readings, sessions, logger), invoices, readings, sessions
}

func TestExportInvoicesXLSX(t *testing.T) {
	svc, invoices, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := invoices.Create(ctx, &entity.Invoice{
		CustomerNumber: "913531",
		InvoiceNumber:  "INV-2024-001",
		Address:        "KAYA WATERVILLAS 84-A",
		InvoiceDate:    time.Date(2024, time.March, 30, 0, 0, 0, 0, time.UTC),
		DueDate:        time.Date(2024, time.April, 15, 0, 0, 0, 0, time.UTC),
		Amount:         150.00,
		UtilityType:    constants.Water,
		FileName:       "913531.pdf",
	})
	require.NoError(t, err)

	data, err := svc.ExportInvoicesXLSX(ctx, entity.InvoiceFilter{})
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Invoices")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Invoice Date", rows[0][0])
	assert.Equal(t, "2024-03-30", rows[1][0])
	assert.Equal(t, "INV-2024-001", rows[1][3])
	assert.Equal(t, "water", rows[1][5])
	assert.Equal(t, "no", rows[1][7])
}

func TestExportReadingsXLSX(t *testing.T) {
	svc, _, readings, _ := newTestService(t)
	ctx := context.Background()

	water := 1523.25
	_, err := readings.Create(ctx, &entity.MeterReading{
		Address:      "KAYA KUARTS 23",
		ReadingDate:  time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC),
		WaterReading: &water,
	})
	require.NoError(t, err)

	data, err := svc.ExportReadingsXLSX(ctx, "KAYA KUARTS 23", nil, nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Meter Readings")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "KAYA KUARTS 23", rows[1][1])
}

func TestExportSessionsXLSX(t *testing.T) {
	svc, _, _, sessions := newTestService(t)
	ctx := context.Background()

	started, err := sessions.Start(ctx, &entity.TimeSession{
		Category:  "Cleaning",
		StartTime: time.Date(2025, time.July, 1, 9, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	_, err = sessions.Stop(ctx, started.ID, time.Date(2025, time.July, 1, 10, 30, 0, 0, time.UTC))
	require.NoError(t, err)

	data, err := svc.ExportSessionsXLSX(ctx, nil, nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Time Sessions")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "2025-07-01", rows[1][0])
	assert.Equal(t, "Cleaning", rows[1][1])
	assert.Equal(t, "09:00", rows[1][2])
	assert.Equal(t, "10:30", rows[1][3])
	assert.Equal(t, "1h 30m", rows[1][4])
}

func TestExportInvoicesXLSXEmpty(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	data, err := svc.ExportInvoicesXLSX(context.Background(), entity.InvoiceFilter{Address: "nowhere"})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Invoices")
	require.NoError(t, err)
	assert.Len(t, rows, 1) // headers only
}

func TestTruncateKeepsRunesIntact(t *testing.T) {
	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{"short string untouched", "schoonmaak", 140, "schoonmaak"},
		{"ascii truncated with ellipsis", "abcdef", 4, "abc…"},
		{"multi-byte runes not split", "Curaçaose schoonmaakbeurt", 10, "Curaçaose…"},
		{"all multi-byte", "éééééé", 3, "éé…"},
		{"single rune cap", "éé", 1, "é"},
		{"zero cap returns input", "abc", 0, "abc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.in, tt.n)
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}
