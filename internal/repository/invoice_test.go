package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huisbeheer/utility-tracker/constants"
	"github.com/huisbeheer/utility-tracker/internal/entity"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testInvoice(customer, number, address string, ut constants.UtilityType, amount float64) *entity.Invoice {
	return &entity.Invoice{
		CustomerNumber: customer,
		InvoiceNumber:  number,
		Address:        address,
		InvoiceDate:    day(2024, time.March, 30),
		DueDate:        day(2024, time.April, 15),
		Amount:         amount,
		UtilityType:    ut,
		FileName:       customer + ".pdf",
	}
}

func TestInvoiceRepositoryCreateAndGet(t *testing.T) {
	repo := NewInvoiceRepository(newTestClient(t), testLogger())
	ctx := context.Background()

	created, err := repo.Create(ctx, testInvoice("913531", "INV-2024-001", "KAYA WATERVILLAS 84-A", constants.Water, 150.00))
	require.NoError(t, err)
	assert.NotEqual(t, [16]byte{}, [16]byte(created.ID))
	assert.False(t, created.IsPaid)
	assert.Nil(t, created.PaymentDate)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "913531", got.CustomerNumber)
	assert.Equal(t, "INV-2024-001", got.InvoiceNumber)
	assert.Equal(t, constants.Water, got.UtilityType)
	assert.InDelta(t, 150.00, got.Amount, 0.0001)
}

func TestInvoiceRepositoryListFilters(t *testing.T) {
	repo := NewInvoiceRepository(newTestClient(t), testLogger())
	ctx := context.Background()

	_, err := repo.Create(ctx, testInvoice("913531", "A-1", "KAYA WATERVILLAS 84-A", constants.Water, 10))
	require.NoError(t, err)
	_, err = repo.Create(ctx, testInvoice("031650", "A-2", "KAYA WATERVILLAS 84-A", constants.Electricity, 20))
	require.NoError(t, err)
	paid, err := repo.Create(ctx, testInvoice("022379", "A-3", "KAYA KUARTS 23", constants.Electricity, 30))
	require.NoError(t, err)
	_, err = repo.MarkPaid(ctx, paid.ID, day(2024, time.April, 1))
	require.NoError(t, err)

	all, err := repo.List(ctx, entity.InvoiceFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	byAddress, err := repo.List(ctx, entity.InvoiceFilter{Address: "KAYA WATERVILLAS 84-A"})
	require.NoError(t, err)
	assert.Len(t, byAddress, 2)

	electricity, err := repo.List(ctx, entity.InvoiceFilter{UtilityType: constants.Electricity, HasUtility: true})
	require.NoError(t, err)
	assert.Len(t, electricity, 2)

	unpaid, err := repo.List(ctx, entity.InvoiceFilter{PaymentStatus: "unpaid"})
	require.NoError(t, err)
	assert.Len(t, unpaid, 2)

	paidOnly, err := repo.List(ctx, entity.InvoiceFilter{PaymentStatus: "paid"})
	require.NoError(t, err)
	require.Len(t, paidOnly, 1)
	assert.Equal(t, "A-3", paidOnly[0].InvoiceNumber)
}

func TestInvoiceRepositoryMarkPaid(t *testing.T) {
	repo := NewInvoiceRepository(newTestClient(t), testLogger())
	ctx := context.Background()

	created, err := repo.Create(ctx, testInvoice("913531", "INV-1", "KAYA WATERVILLAS 84-A", constants.Water, 55))
	require.NoError(t, err)

	when := day(2024, time.April, 2)
	updated, err := repo.MarkPaid(ctx, created.ID, when)
	require.NoError(t, err)
	assert.True(t, updated.IsPaid)
	require.NotNil(t, updated.PaymentDate)
	assert.Equal(t, when, updated.PaymentDate.UTC())
}

func TestInvoiceRepositoryUpdateClearsPaymentDate(t *testing.T) {
	repo := NewInvoiceRepository(newTestClient(t), testLogger())
	ctx := context.Background()

	created, err := repo.Create(ctx, testInvoice("913531", "INV-1", "KAYA WATERVILLAS 84-A", constants.Water, 55))
	require.NoError(t, err)
	paid, err := repo.MarkPaid(ctx, created.ID, day(2024, time.April, 2))
	require.NoError(t, err)

	paid.IsPaid = false
	paid.PaymentDate = nil
	updated, err := repo.Update(ctx, paid)
	require.NoError(t, err)
	assert.False(t, updated.IsPaid)
	assert.Nil(t, updated.PaymentDate)
}

func TestInvoiceRepositoryDelete(t *testing.T) {
	repo := NewInvoiceRepository(newTestClient(t), testLogger())
	ctx := context.Background()

	created, err := repo.Create(ctx, testInvoice("913531", "INV-1", "KAYA WATERVILLAS 84-A", constants.Water, 55))
	require.NoError(t, err)
	require.NoError(t, repo.Delete(ctx, created.ID))

	_, err = repo.GetByID(ctx, created.ID)
	assert.Error(t, err)
}

func TestInvoiceRepositoryExistsByNumber(t *testing.T) {
	repo := NewInvoiceRepository(newTestClient(t), testLogger())
	ctx := context.Background()

	_, err := repo.Create(ctx, testInvoice("913531", "INV-1", "KAYA WATERVILLAS 84-A", constants.Water, 55))
	require.NoError(t, err)
	_, err = repo.Create(ctx, testInvoice("031650", "", "KAYA WATERVILLAS 84-A", constants.Electricity, 70))
	require.NoError(t, err)

	exists, err := repo.ExistsByNumber(ctx, "913531", "INV-1")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByNumber(ctx, "913531", "INV-2")
	require.NoError(t, err)
	assert.False(t, exists)

	// Rows without an invoice number are never treated as duplicates.
	exists, err = repo.ExistsByNumber(ctx, "031650", "")
	require.NoError(t, err)
	assert.False(t, exists)
}
