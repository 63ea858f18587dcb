package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/huisbeheer/utility-tracker/constants"
)

// Invoice represents a stored utility invoice for data transfer between layers.
type Invoice struct {
	ID             uuid.UUID             `json:"id"`
	CustomerNumber string                `json:"customer_number"`
	InvoiceNumber  string                `json:"invoice_number"`
	Address        string                `json:"address"`
	InvoiceDate    time.Time             `json:"invoice_date"`
	DueDate        time.Time             `json:"due_date"`
	Amount         float64               `json:"amount"`
	IsPaid         bool                  `json:"is_paid"`
	PaymentDate    *time.Time            `json:"payment_date,omitempty"`
	UtilityType    constants.UtilityType `json:"utility_type"`
	FileName       string                `json:"file_name"`
	FilePath       *string               `json:"file_path,omitempty"`
	CreatedAt      time.Time             `json:"created_at"`
	UpdatedAt      time.Time             `json:"updated_at"`
}

// ParsedInvoice is the best-effort output of the PDF field extractor.
// Dates are YYYY-MM-DD strings; fields that could not be resolved keep
// their documented defaults (empty string, 0, water).
type ParsedInvoice struct {
	CustomerNumber string                `json:"customer_number"`
	InvoiceNumber  string                `json:"invoice_number"`
	Address        string                `json:"address"`
	InvoiceDate    string                `json:"invoice_date"`
	DueDate        string                `json:"due_date"`
	Amount         float64               `json:"amount"`
	IsPaid         bool                  `json:"is_paid"`
	UtilityType    constants.UtilityType `json:"utility_type"`
	FileName       string                `json:"file_name"`
}

// InvoiceFilter narrows ListInvoices results. Zero values mean "all".
type InvoiceFilter struct {
	Address       string
	UtilityType   constants.UtilityType
	HasUtility    bool
	PaymentStatus string // "paid" | "unpaid" | ""
	FromDate      *time.Time
	ToDate        *time.Time
}
