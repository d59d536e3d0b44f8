package season

import (
	"fmt"
	"time"
)

const (
	StatusDraft    = "draft"
	StatusActive   = "active"
	StatusComplete = "complete"
)

// Season is one edition of the league. Dates are civil calendar dates stored
// at UTC midnight; the optional break is an inclusive range inside the season.
type Season struct {
	ID         string
	Name       string
	StartDate  time.Time
	EndDate    time.Time
	BreakStart *time.Time
	BreakEnd   *time.Time
	Status     string
}

func ValidStatus(status string) bool {
	switch status {
	case StatusDraft, StatusActive, StatusComplete:
		return true
	default:
		return false
	}
}

func (s Season) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("season id is required")
	}
	if s.Name == "" {
		return fmt.Errorf("season name is required")
	}
	if s.EndDate.Before(s.StartDate) {
		return fmt.Errorf("season end date precedes start date")
	}
	if (s.BreakStart == nil) != (s.BreakEnd == nil) {
		return fmt.Errorf("season break requires both start and end")
	}
	if s.BreakStart != nil {
		if s.BreakEnd.Before(*s.BreakStart) {
			return fmt.Errorf("season break end precedes break start")
		}
		if s.BreakStart.Before(s.StartDate) || s.BreakEnd.After(s.EndDate) {
			return fmt.Errorf("season break falls outside the season")
		}
	}
	if !ValidStatus(s.Status) {
		return fmt.Errorf("unknown season status %q", s.Status)
	}

	return nil
}
