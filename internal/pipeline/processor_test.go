package pipeline

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/huisbeheer/utility-tracker/constants"
	"github.com/huisbeheer/utility-tracker/gen/ent"
	"github.com/huisbeheer/utility-tracker/internal/entity"
	"github.com/huisbeheer/utility-tracker/internal/parse"
	"github.com/huisbeheer/utility-tracker/internal/pdftext"
	"github.com/huisbeheer/utility-tracker/internal/repository"
)

type stubExtractor struct {
	text string
}

func (s *stubExtractor) ExtractText(_ context.Context, _ []byte) (pdftext.Result, error) {
	return pdftext.Result{Text: s.text, Pages: 1}, nil
}

func newTestProcessor(t *testing.T, text string) (*Processor, repository.InvoiceRepository) {
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
	addresses := repository.NewAddressRepository(client, logger)
	parser := parse.NewParser(&stubExtractor{text: text}, nil, logger)
	return NewProcessor(parser, invoices, addresses, Config{DueDays: 14}, logger), invoices
}

func writePDF(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4 "+name), 0o644))
	return path
}

func TestProcessFileStoresInvoice(t *testing.T) {
	text := "Factuurnummer: INV-2024-001\n" +
		"FACTUUR DATUM: 30/03/2024\n" +
		"Verval Datum: 15/04/2024\n" +
		"TE BETALEN: 150.00"
	proc, _ := newTestProcessor(t, text)
	path := writePDF(t, t.TempDir(), "913531.pdf")

	inv, dup, err := proc.ProcessFile(context.Background(), path)
	require.NoError(t, err)
	require.False(t, dup)

	assert.Equal(t, "913531", inv.CustomerNumber)
	assert.Equal(t, "INV-2024-001", inv.InvoiceNumber)
	assert.Equal(t, "2024-03-30", inv.InvoiceDate.Format("2006-01-02"))
	assert.Equal(t, "2024-04-15", inv.DueDate.Format("2006-01-02"))
	assert.Equal(t, constants.Water, inv.UtilityType)
	assert.Equal(t, "KAYA WATERVILLAS 84-A", inv.Address)
	require.NotNil(t, inv.FilePath)
	assert.Equal(t, path, *inv.FilePath)
}

func TestProcessFileDeduplicatesByNumbers(t *testing.T) {
	text := "Factuurnummer: INV-2024-001\nTE BETALEN: 150.00"
	proc, invoices := newTestProcessor(t, text)
	first := writePDF(t, t.TempDir(), "913531.pdf")
	_, dup, err := proc.ProcessFile(context.Background(), first)
	require.NoError(t, err)
	assert.False(t, dup)

	// The same bill dropped in another folder parses to the same numbers.
	second := writePDF(t, t.TempDir(), "913531.pdf")
	inv, dup, err := proc.ProcessFile(context.Background(), second)
	require.NoError(t, err)
	assert.True(t, dup)
	assert.Nil(t, inv)

	stored, err := invoices.List(context.Background(), entity.InvoiceFilter{})
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestProcessFileWithoutInvoiceNumberNeverDedups(t *testing.T) {
	// No invoice number in the text: the extractor must not fabricate one,
	// and dedup by numbers must not collapse distinct bills.
	proc, invoices := newTestProcessor(t, "TE BETALEN: 80.50")

	for i := 0; i < 2; i++ {
		inv, dup, err := proc.ProcessFile(context.Background(), writePDF(t, t.TempDir(), "913531.pdf"))
		require.NoError(t, err)
		assert.False(t, dup)
		assert.Empty(t, inv.InvoiceNumber)
	}

	stored, err := invoices.List(context.Background(), entity.InvoiceFilter{})
	require.NoError(t, err)
	assert.Len(t, stored, 2)
}

func TestProcessFileDefaultsDates(t *testing.T) {
	proc, _ := newTestProcessor(t, "TE BETALEN: 80.50")
	path := writePDF(t, t.TempDir(), "913531.pdf")

	inv, _, err := proc.ProcessFile(context.Background(), path)
	require.NoError(t, err)

	today := time.Now().UTC().Format("2006-01-02")
	assert.Equal(t, today, inv.InvoiceDate.Format("2006-01-02"))
	assert.Equal(t, inv.InvoiceDate.AddDate(0, 0, 14), inv.DueDate)
}

func TestProcessFileMissingFile(t *testing.T) {
	proc, _ := newTestProcessor(t, "")

	_, _, err := proc.ProcessFile(context.Background(), filepath.Join(t.TempDir(), "nope.pdf"))
	require.Error(t, err)
}
