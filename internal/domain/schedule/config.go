package schedule

import (
	"fmt"
	"time"
)

// Config carries the league's fixed scheduling constants. The reference
// deployment plays Tuesdays and Fridays at 20:30 in Indian/Maldives, but
// nothing below assumes those values.
type Config struct {
	// GameWeekdays are the two designated weekdays games may fall on.
	GameWeekdays [2]time.Weekday
	// KickoffHour/KickoffMinute is the fixed civil time-of-day of every kickoff.
	KickoffHour   int
	KickoffMinute int
	// Location is the league's civil timezone, used only when converting
	// between calendar dates and stored kickoff instants.
	Location *time.Location
	// DefaultVenue is stamped onto auto-scheduled fixtures.
	DefaultVenue string
}

func (c Config) Validate() error {
	if c.GameWeekdays[0] == c.GameWeekdays[1] {
		return fmt.Errorf("game weekdays must be two distinct weekdays")
	}
	if c.KickoffHour < 0 || c.KickoffHour > 23 || c.KickoffMinute < 0 || c.KickoffMinute > 59 {
		return fmt.Errorf("invalid kickoff time %02d:%02d", c.KickoffHour, c.KickoffMinute)
	}
	if c.Location == nil {
		return fmt.Errorf("league location is required")
	}
	return nil
}

func (c Config) IsGameWeekday(d Date) bool {
	wd := d.Weekday()
	return wd == c.GameWeekdays[0] || wd == c.GameWeekdays[1]
}

// NextGameDayOnOrAfter walks forward one day at a time until it hits a game
// weekday. If d already is one, d is returned unchanged.
func (c Config) NextGameDayOnOrAfter(d Date) Date {
	for !c.IsGameWeekday(d) {
		d = d.AddDays(1)
	}
	return d
}

// NextGameDayAfter returns the first game weekday strictly after d.
func (c Config) NextGameDayAfter(d Date) Date {
	return c.NextGameDayOnOrAfter(d.AddDays(1))
}

// RestCycleDays is the longest calendar gap between two adjacent game
// weekdays: the span of one full slot cycle. Fixtures for the same team
// closer together than this are back-to-back. Tue/Fri yields 4.
func (c Config) RestCycleDays() int {
	gap := (int(c.GameWeekdays[1]) - int(c.GameWeekdays[0]) + 7) % 7
	if gap < 7-gap {
		gap = 7 - gap
	}
	return gap
}

// KickoffAt places the league's fixed kickoff time-of-day on a calendar date.
func (c Config) KickoffAt(d Date) time.Time {
	return time.Date(d.Year, d.Month, d.Day, c.KickoffHour, c.KickoffMinute, 0, 0, c.Location)
}

// CivilDate converts a stored kickoff instant back to its league-local date.
func (c Config) CivilDate(t time.Time) Date {
	return DateOf(t.In(c.Location))
}
