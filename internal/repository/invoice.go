package repository

import (
	"context"
	"log/slog"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/huisbeheer/utility-tracker/gen/ent"
	entinvoice "github.com/huisbeheer/utility-tracker/gen/ent/invoice"
	"github.com/huisbeheer/utility-tracker/internal/entity"
	"github.com/huisbeheer/utility-tracker/internal/utils"
)

type InvoiceRepository interface {
	Create(ctx context.Context, inv *entity.Invoice) (*entity.Invoice, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)
	List(ctx context.Context, filter entity.InvoiceFilter) ([]*entity.Invoice, error)
	Update(ctx context.Context, inv *entity.Invoice) (*entity.Invoice, error)
	MarkPaid(ctx context.Context, id uuid.UUID, paymentDate time.Time) (*entity.Invoice, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// ExistsByNumber reports whether an invoice with this customer and
	// invoice number is already stored. An empty invoice number never
	// matches: those rows cannot be deduplicated.
	ExistsByNumber(ctx context.Context, customerNumber, invoiceNumber string) (bool, error)
}

type invoiceRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewInvoiceRepository(client *ent.Client, logger *slog.Logger) InvoiceRepository {
	return &invoiceRepository{
		client: client,
		logger: logger,
	}
}

func (r *invoiceRepository) Create(ctx context.Context, inv *entity.Invoice) (*entity.Invoice, error) {
	row, err := r.client.Invoice.Create().
		SetCustomerNumber(inv.CustomerNumber).
		SetInvoiceNumber(inv.InvoiceNumber).
		SetAddress(inv.Address).
		SetInvoiceDate(inv.InvoiceDate).
		SetDueDate(inv.DueDate).
		SetAmount(inv.Amount).
		SetIsPaid(inv.IsPaid).
		SetNillablePaymentDate(inv.PaymentDate).
		SetUtilityType(string(inv.UtilityType)).
		SetNillableFileName(utils.PtrOrNil(inv.FileName)).
		SetNillableFilePath(inv.FilePath).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create invoice", "customer_number", inv.CustomerNumber, "invoice_number", inv.InvoiceNumber, "error", err)
		return nil, err
	}
	return utils.ToInvoice(row), nil
}

func (r *invoiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	row, err := r.client.Invoice.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return utils.ToInvoice(row), nil
}

func (r *invoiceRepository) List(ctx context.Context, filter entity.InvoiceFilter) ([]*entity.Invoice, error) {
	q := r.client.Invoice.Query()
	if filter.Address != "" {
		q = q.Where(entinvoice.Address(filter.Address))
	}
	if filter.HasUtility {
		q = q.Where(entinvoice.UtilityType(string(filter.UtilityType)))
	}
	switch filter.PaymentStatus {
	case "paid":
		q = q.Where(entinvoice.IsPaid(true))
	case "unpaid":
		q = q.Where(entinvoice.IsPaid(false))
	}
	if filter.FromDate != nil {
		q = q.Where(entinvoice.InvoiceDateGTE(*filter.FromDate))
	}
	if filter.ToDate != nil {
		q = q.Where(entinvoice.InvoiceDateLTE(*filter.ToDate))
	}

	rows, err := q.Order(entinvoice.ByInvoiceDate(entsql.OrderDesc())).All(ctx)
	if err != nil {
		r.logger.Error("failed to list invoices", "error", err)
		return nil, err
	}

	result := make([]*entity.Invoice, len(rows))
	for i, row := range rows {
		result[i] = utils.ToInvoice(row)
	}
	return result, nil
}

func (r *invoiceRepository) Update(ctx context.Context, inv *entity.Invoice) (*entity.Invoice, error) {
	upd := r.client.Invoice.UpdateOneID(inv.ID).
		SetCustomerNumber(inv.CustomerNumber).
		SetInvoiceNumber(inv.InvoiceNumber).
		SetAddress(inv.Address).
		SetInvoiceDate(inv.InvoiceDate).
		SetDueDate(inv.DueDate).
		SetAmount(inv.Amount).
		SetIsPaid(inv.IsPaid).
		SetUtilityType(string(inv.UtilityType)).
		SetNillableFileName(utils.PtrOrNil(inv.FileName)).
		SetNillableFilePath(inv.FilePath)
	if inv.PaymentDate != nil {
		upd = upd.SetPaymentDate(*inv.PaymentDate)
	} else {
		upd = upd.ClearPaymentDate()
	}

	row, err := upd.Save(ctx)
	if err != nil {
		r.logger.Error("failed to update invoice", "id", inv.ID, "error", err)
		return nil, err
	}
	return utils.ToInvoice(row), nil
}

func (r *invoiceRepository) MarkPaid(ctx context.Context, id uuid.UUID, paymentDate time.Time) (*entity.Invoice, error) {
	row, err := r.client.Invoice.UpdateOneID(id).
		SetIsPaid(true).
		SetPaymentDate(paymentDate).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to mark invoice paid", "id", id, "error", err)
		return nil, err
	}
	return utils.ToInvoice(row), nil
}

func (r *invoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.client.Invoice.DeleteOneID(id).Exec(ctx)
}

func (r *invoiceRepository) ExistsByNumber(ctx context.Context, customerNumber, invoiceNumber string) (bool, error) {
	if invoiceNumber == "" {
		return false, nil
	}
	return r.client.Invoice.Query().
		Where(
			entinvoice.CustomerNumber(customerNumber),
			entinvoice.InvoiceNumber(invoiceNumber),
		).Exist(ctx)
}
