package entity

import (
	"time"

	"github.com/google/uuid"
)

// TimeSession is one tracked block of time. EndTime is nil while running.
type TimeSession struct {
	ID             uuid.UUID  `json:"id"`
	Category       string     `json:"category"`
	CustomCategory *string    `json:"custom_category,omitempty"`
	StartTime      time.Time  `json:"start_time"`
	EndTime        *time.Time `json:"end_time,omitempty"`
	Notes          *string    `json:"notes,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// DurationMinutes returns the session length in whole minutes, using now
// for sessions that are still running.
func (s *TimeSession) DurationMinutes(now time.Time) int {
	end := now
	if s.EndTime != nil {
		end = *s.EndTime
	}
	d := end.Sub(s.StartTime)
	if d < 0 {
		return 0
	}
	return int(d.Minutes())
}
