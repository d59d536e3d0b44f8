package holiday

import (
	"fmt"
	"time"
)

// Range is an inclusive span of blocked calendar dates, owned by a season.
// Ranges may overlap; expansion to a date set is idempotent.
type Range struct {
	ID        string
	SeasonID  string
	Name      string
	StartDate time.Time
	EndDate   time.Time
}

func (r Range) Validate() error {
	if r.SeasonID == "" {
		return fmt.Errorf("holiday season id is required")
	}
	if r.Name == "" {
		return fmt.Errorf("holiday name is required")
	}
	if r.StartDate.IsZero() || r.EndDate.IsZero() {
		return fmt.Errorf("holiday requires both start and end dates")
	}
	if r.EndDate.Before(r.StartDate) {
		return fmt.Errorf("holiday end date precedes start date")
	}

	return nil
}
