package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/huisbeheer/utility-tracker/constants"
)

// UtilityPrice is a per-unit tariff effective over a date window.
// EffectiveUntil nil means the price is still current.
type UtilityPrice struct {
	ID             uuid.UUID             `json:"id"`
	UtilityType    constants.UtilityType `json:"utility_type"`
	PricePerUnit   float64               `json:"price_per_unit"`
	UnitName       string                `json:"unit_name"`
	Currency       string                `json:"currency"`
	EffectiveFrom  time.Time             `json:"effective_from"`
	EffectiveUntil *time.Time            `json:"effective_until,omitempty"`
	CreatedAt      time.Time             `json:"created_at"`
}
