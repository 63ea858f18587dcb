package entity

import (
	"time"

	"github.com/google/uuid"
)

// Address is a known service address, used for filter dropdowns and
// meter-reading entry.
type Address struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
