package utils

import (
	"fmt"
	"time"

	"github.com/huisbeheer/utility-tracker/constants"
	"github.com/huisbeheer/utility-tracker/gen/ent"
	pb "github.com/huisbeheer/utility-tracker/gen/proto/utilitytracker/v1"
	"github.com/huisbeheer/utility-tracker/internal/entity"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// PtrOrNil maps "" to nil for optional string columns.
func PtrOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func ParseYMD(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	// strip time to midnight UTC to match DATE semantics
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

func FormatYMD(t time.Time) string {
	return t.Format("2006-01-02")
}

func formatYMDPtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

func formatRFC3339Ptr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

// FormatDuration renders a session length as "1h 05m" for exports.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh %02dm", h, m)
}

func ToInvoice(e *ent.Invoice) *entity.Invoice {
	return &entity.Invoice{
		ID:             e.ID,
		CustomerNumber: e.CustomerNumber,
		InvoiceNumber:  e.InvoiceNumber,
		Address:        e.Address,
		InvoiceDate:    e.InvoiceDate,
		DueDate:        e.DueDate,
		Amount:         e.Amount,
		IsPaid:         e.IsPaid,
		PaymentDate:    e.PaymentDate,
		UtilityType:    constants.UtilityType(e.UtilityType),
		FileName:       strOrEmpty(e.FileName),
		FilePath:       e.FilePath,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func ToPBInvoice(i *entity.Invoice) *pb.Invoice {
	return &pb.Invoice{
		Id:             i.ID.String(),
		CustomerNumber: i.CustomerNumber,
		InvoiceNumber:  i.InvoiceNumber,
		Address:        i.Address,
		InvoiceDate:    FormatYMD(i.InvoiceDate),
		DueDate:        FormatYMD(i.DueDate),
		Amount:         i.Amount,
		IsPaid:         i.IsPaid,
		PaymentDate:    formatYMDPtr(i.PaymentDate),
		UtilityType:    string(i.UtilityType),
		FileName:       i.FileName,
		FilePath:       strOrEmpty(i.FilePath),
		CreatedAt:      i.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:      i.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBParsedInvoice(p *entity.ParsedInvoice) *pb.ParsedInvoice {
	return &pb.ParsedInvoice{
		CustomerNumber: p.CustomerNumber,
		InvoiceNumber:  p.InvoiceNumber,
		Address:        p.Address,
		InvoiceDate:    p.InvoiceDate,
		DueDate:        p.DueDate,
		Amount:         p.Amount,
		IsPaid:         p.IsPaid,
		UtilityType:    string(p.UtilityType),
		FileName:       p.FileName,
	}
}

func ToMeterReading(e *ent.MeterReading) *entity.MeterReading {
	return &entity.MeterReading{
		ID:                 e.ID,
		Address:            e.Address,
		ReadingDate:        e.ReadingDate,
		WaterReading:       e.WaterReading,
		ElectricityReading: e.ElectricityReading,
		Notes:              e.Notes,
		CreatedAt:          e.CreatedAt,
	}
}

func ToPBReading(m *entity.MeterReading) *pb.MeterReading {
	out := &pb.MeterReading{
		Id:          m.ID.String(),
		Address:     m.Address,
		ReadingDate: FormatYMD(m.ReadingDate),
		Notes:       strOrEmpty(m.Notes),
		CreatedAt:   m.CreatedAt.UTC().Format(time.RFC3339),
	}
	if m.WaterReading != nil {
		out.WaterReading = *m.WaterReading
		out.HasWater = true
	}
	if m.ElectricityReading != nil {
		out.ElectricityReading = *m.ElectricityReading
		out.HasElectricity = true
	}
	return out
}

func ToTimeSession(e *ent.TimeSession) *entity.TimeSession {
	return &entity.TimeSession{
		ID:             e.ID,
		Category:       e.Category,
		CustomCategory: e.CustomCategory,
		StartTime:      e.StartTime,
		EndTime:        e.EndTime,
		Notes:          e.Notes,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func ToPBSession(s *entity.TimeSession) *pb.TimeSession {
	return &pb.TimeSession{
		Id:             s.ID.String(),
		Category:       s.Category,
		CustomCategory: strOrEmpty(s.CustomCategory),
		StartTime:      s.StartTime.UTC().Format(time.RFC3339),
		EndTime:        formatRFC3339Ptr(s.EndTime),
		Notes:          strOrEmpty(s.Notes),
		CreatedAt:      s.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:      s.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ToUtilityPrice(e *ent.UtilityPrice) *entity.UtilityPrice {
	return &entity.UtilityPrice{
		ID:             e.ID,
		UtilityType:    constants.UtilityType(e.UtilityType),
		PricePerUnit:   e.PricePerUnit,
		UnitName:       e.UnitName,
		Currency:       e.Currency,
		EffectiveFrom:  e.EffectiveFrom,
		EffectiveUntil: e.EffectiveUntil,
		CreatedAt:      e.CreatedAt,
	}
}

func ToPBPrice(p *entity.UtilityPrice) *pb.UtilityPrice {
	return &pb.UtilityPrice{
		Id:             p.ID.String(),
		UtilityType:    string(p.UtilityType),
		PricePerUnit:   p.PricePerUnit,
		UnitName:       p.UnitName,
		Currency:       p.Currency,
		EffectiveFrom:  FormatYMD(p.EffectiveFrom),
		EffectiveUntil: formatYMDPtr(p.EffectiveUntil),
		CreatedAt:      p.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func ToAddress(e *ent.Address) *entity.Address {
	return &entity.Address{
		ID:        e.ID,
		Name:      e.Name,
		CreatedAt: e.CreatedAt,
	}
}
