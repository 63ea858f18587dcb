package server

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/huisbeheer/utility-tracker/gen/proto/utilitytracker/v1"
	"github.com/huisbeheer/utility-tracker/internal/parse"
	"github.com/huisbeheer/utility-tracker/internal/pdftext"
	"github.com/huisbeheer/utility-tracker/internal/repository"
)

func newInvoicesService(t *testing.T, extractor pdftext.Extractor) (*InvoicesService, repository.AddressRepository) {
	t.Helper()
	client := newTestClient(t)
	logger := testLogger()
	invoices := repository.NewInvoiceRepository(client, logger)
	addresses := repository.NewAddressRepository(client, logger)
	parser := parse.NewParser(extractor, nil, logger)
	return NewInvoicesService(invoices, addresses, parser, 14, logger), addresses
}

func TestCreateInvoiceDefaultsDates(t *testing.T) {
	svc, _ := newInvoicesService(t, &stubExtractor{})
	ctx := context.Background()

	resp, err := svc.CreateInvoice(ctx, &pb.CreateInvoiceRequest{
		CustomerNumber: "913531",
		UtilityType:    "water",
		Amount:         80.50,
	})
	require.NoError(t, err)

	inv := resp.GetInvoice()
	wantDate := time.Now().UTC().Format("2006-01-02")
	assert.Equal(t, wantDate, inv.GetInvoiceDate())

	due, err := time.Parse("2006-01-02", inv.GetDueDate())
	require.NoError(t, err)
	invDate, err := time.Parse("2006-01-02", inv.GetInvoiceDate())
	require.NoError(t, err)
	assert.Equal(t, 14*24*time.Hour, due.Sub(invDate))
}

func TestCreateInvoiceRegistersAddress(t *testing.T) {
	svc, addresses := newInvoicesService(t, &stubExtractor{})
	ctx := context.Background()

	_, err := svc.CreateInvoice(ctx, &pb.CreateInvoiceRequest{
		CustomerNumber: "913531",
		UtilityType:    "water",
		Amount:         80.50,
		Address:        "KAYA WATERVILLAS 84-A",
	})
	require.NoError(t, err)

	list, err := addresses.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "KAYA WATERVILLAS 84-A", list[0].Name)
}

func TestCreateInvoiceRejectsBadInput(t *testing.T) {
	svc, _ := newInvoicesService(t, &stubExtractor{})
	ctx := context.Background()

	tests := []struct {
		name string
		req  *pb.CreateInvoiceRequest
	}{
		{"missing customer", &pb.CreateInvoiceRequest{UtilityType: "water", Amount: 1}},
		{"unknown utility", &pb.CreateInvoiceRequest{CustomerNumber: "1", UtilityType: "gas", Amount: 1}},
		{"negative amount", &pb.CreateInvoiceRequest{CustomerNumber: "1", UtilityType: "water", Amount: -5}},
		{"malformed date", &pb.CreateInvoiceRequest{CustomerNumber: "1", UtilityType: "water", Amount: 1, InvoiceDate: "30/03/2024"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateInvoice(ctx, tt.req)
			require.Error(t, err)
			assert.Equal(t, codes.InvalidArgument, status.Code(err))
		})
	}
}

func TestParseInvoicePdfRequiresContent(t *testing.T) {
	svc, _ := newInvoicesService(t, &stubExtractor{})

	_, err := svc.ParseInvoicePdf(context.Background(), &pb.ParseInvoicePdfRequest{FileName: "x.pdf"})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestParseInvoicePdfUnreadableDocument(t *testing.T) {
	svc, _ := newInvoicesService(t, &stubExtractor{err: &pdftext.ExtractionError{Reason: "invalid pdf structure"}})

	_, err := svc.ParseInvoicePdf(context.Background(), &pb.ParseInvoicePdfRequest{
		Content:  []byte("not a pdf"),
		FileName: "broken.pdf",
	})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	assert.Contains(t, status.Convert(err).Message(), "invalid pdf structure")
}

func TestParseInvoicePdfExtractsFields(t *testing.T) {
	text := "Factuurnummer: INV-2024-001\n" +
		"FACTUUR DATUM: 30/03/2024\n" +
		"TE BETALEN: 150.00"
	svc, _ := newInvoicesService(t, &stubExtractor{text: text})

	resp, err := svc.ParseInvoicePdf(context.Background(), &pb.ParseInvoicePdfRequest{
		Content:  []byte("%PDF"),
		FileName: "913531.pdf",
	})
	require.NoError(t, err)

	inv := resp.GetInvoice()
	assert.Equal(t, "913531", inv.GetCustomerNumber())
	assert.Equal(t, "INV-2024-001", inv.GetInvoiceNumber())
	assert.Equal(t, "2024-03-30", inv.GetInvoiceDate())
	assert.InDelta(t, 150.00, inv.GetAmount(), 0.0001)
}

func TestListInvoicesRejectsBadPaymentStatus(t *testing.T) {
	svc, _ := newInvoicesService(t, &stubExtractor{})

	_, err := svc.ListInvoices(context.Background(), &pb.ListInvoicesRequest{PaymentStatus: "overdue"})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestMarkInvoicePaidDefaultsToToday(t *testing.T) {
	svc, _ := newInvoicesService(t, &stubExtractor{})
	ctx := context.Background()

	created, err := svc.CreateInvoice(ctx, &pb.CreateInvoiceRequest{
		CustomerNumber: "913531",
		UtilityType:    "water",
		Amount:         80.50,
	})
	require.NoError(t, err)

	resp, err := svc.MarkInvoicePaid(ctx, &pb.MarkInvoicePaidRequest{Id: created.GetInvoice().GetId()})
	require.NoError(t, err)

	assert.True(t, resp.GetInvoice().GetIsPaid())
	assert.Equal(t, time.Now().UTC().Format("2006-01-02"), resp.GetInvoice().GetPaymentDate())
}

func TestGetInvoiceStats(t *testing.T) {
	svc, _ := newInvoicesService(t, &stubExtractor{})
	ctx := context.Background()

	for _, amount := range []float64{100, 200} {
		_, err := svc.CreateInvoice(ctx, &pb.CreateInvoiceRequest{
			CustomerNumber: "913531",
			UtilityType:    "water",
			Amount:         amount,
			Address:        "KAYA WATERVILLAS 84-A",
		})
		require.NoError(t, err)
	}

	resp, err := svc.GetInvoiceStats(ctx, &pb.GetInvoiceStatsRequest{})
	require.NoError(t, err)

	stats := resp.GetStats()
	assert.InDelta(t, 300.0, stats.GetUnpaidTotal(), 0.0001)
	assert.Equal(t, int32(2), stats.GetUnpaidCount())
	assert.Equal(t, int32(2), stats.GetTotalCount())

	month := time.Now().UTC().Format("2006-01")
	assert.InDelta(t, 300.0, stats.GetMonthlyTotals()[month], 0.0001)
}

func TestDeleteInvoiceRejectsBadID(t *testing.T) {
	svc, _ := newInvoicesService(t, &stubExtractor{})

	_, err := svc.DeleteInvoice(context.Background(), &pb.DeleteInvoiceRequest{Id: "not-a-uuid"})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}
