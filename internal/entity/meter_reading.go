package entity

import (
	"time"

	"github.com/google/uuid"
)

// MeterReading records water and/or electricity meter values for an address.
// At least one of the two readings is present.
type MeterReading struct {
	ID                 uuid.UUID `json:"id"`
	Address            string    `json:"address"`
	ReadingDate        time.Time `json:"reading_date"`
	WaterReading       *float64  `json:"water_reading,omitempty"`
	ElectricityReading *float64  `json:"electricity_reading,omitempty"`
	Notes              *string   `json:"notes,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}
