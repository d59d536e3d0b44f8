package schedule

import "sort"

// Flag classifies a proposed cascade date. Exactly one flag applies per row;
// when several conditions hold, the most severe wins.
type Flag string

const (
	FlagOK              Flag = "ok"
	FlagHolidayAdjusted Flag = "holiday-adjusted"
	FlagConflict        Flag = "conflict"
	FlagOutOfBounds     Flag = "out-of-bounds"
)

// FixtureInfo is the slice of a fixture the scheduling engine needs: who
// plays, on what civil date, and whether the fixture still counts as
// scheduled (completed games never move).
type FixtureInfo struct {
	ID           string
	HomeTeamID   string
	AwayTeamID   string
	HomeTeamName string
	AwayTeamName string
	Date         Date
	Scheduled    bool
}

func sharesTeam(a, b FixtureInfo) bool {
	return a.HomeTeamID == b.HomeTeamID || a.HomeTeamID == b.AwayTeamID ||
		a.AwayTeamID == b.HomeTeamID || a.AwayTeamID == b.AwayTeamID
}

// CascadeRow is one affected fixture in a cascade preview: its original date,
// the engine's proposal, and an optional admin override.
type CascadeRow struct {
	FixtureID    string
	HomeTeamName string
	AwayTeamName string
	OriginalDate Date
	ProposedDate Date
	Flag         Flag
	Override     *Date
}

// FinalDate is the date a confirmed cascade writes for this row.
func (r CascadeRow) FinalDate() Date {
	if r.Override != nil {
		return *r.Override
	}
	return r.ProposedDate
}

// teamCalendar tracks, per team, which dates its fixtures occupy. The
// fixture ID keys let a row ignore its own current placement.
type teamCalendar map[string]map[string]Date

func (tc teamCalendar) place(fx FixtureInfo, d Date) {
	for _, teamID := range []string{fx.HomeTeamID, fx.AwayTeamID} {
		if tc[teamID] == nil {
			tc[teamID] = make(map[string]Date)
		}
		tc[teamID][fx.ID] = d
	}
}

func (tc teamCalendar) hasConflict(fx FixtureInfo, d Date) bool {
	for _, teamID := range []string{fx.HomeTeamID, fx.AwayTeamID} {
		for otherID, otherDate := range tc[teamID] {
			if otherID != fx.ID && otherDate == d {
				return true
			}
		}
	}
	return false
}

// advancePastHolidays skips d forward over blocked game days until it lands
// on a playable one, reporting whether any skip happened.
func (c Config) advancePastHolidays(d Date, holidays DateSet) (Date, bool) {
	adjusted := false
	for holidays.Contains(d) {
		d = c.NextGameDayAfter(d)
		adjusted = true
	}
	return d, adjusted
}

// ComputeCascade previews the knock-on effect of postponing one fixture.
// Every later scheduled fixture sharing a team with the postponed one shifts
// to the next free game day, processed in date order so earlier shifts are
// visible to later ones. Fixtures not involving those teams never move.
func (c Config) ComputeCascade(postponed FixtureInfo, newDate Date, all []FixtureInfo, holidays DateSet, seasonEnd Date) []CascadeRow {
	var affected []FixtureInfo
	for _, fx := range all {
		if fx.ID == postponed.ID || !fx.Scheduled {
			continue
		}
		if sharesTeam(fx, postponed) && fx.Date.After(postponed.Date) {
			affected = append(affected, fx)
		}
	}
	sort.SliceStable(affected, func(i, j int) bool {
		return affected[i].Date.Before(affected[j].Date)
	})

	calendar := make(teamCalendar)
	affectedIDs := make(map[string]struct{}, len(affected))
	for _, fx := range affected {
		affectedIDs[fx.ID] = struct{}{}
	}
	for _, fx := range all {
		if _, ok := affectedIDs[fx.ID]; ok {
			continue
		}
		if fx.ID == postponed.ID {
			calendar.place(fx, newDate)
			continue
		}
		calendar.place(fx, fx.Date)
	}

	rows := make([]CascadeRow, 0, len(affected))
	for _, fx := range affected {
		proposed, adjusted := c.advancePastHolidays(c.NextGameDayAfter(fx.Date), holidays)

		flag := FlagOK
		switch {
		case proposed.After(seasonEnd):
			flag = FlagOutOfBounds
		case calendar.hasConflict(fx, proposed):
			flag = FlagConflict
		case adjusted:
			flag = FlagHolidayAdjusted
		}

		calendar.place(fx, proposed)
		rows = append(rows, CascadeRow{
			FixtureID:    fx.ID,
			HomeTeamName: fx.HomeTeamName,
			AwayTeamName: fx.AwayTeamName,
			OriginalDate: fx.Date,
			ProposedDate: proposed,
			Flag:         flag,
		})
	}
	return rows
}

// RecheckInput is the full preview state an override re-evaluation sees.
type RecheckInput struct {
	Postponed        FixtureInfo
	PostponedNewDate Date
	Rows             []CascadeRow
	All              []FixtureInfo
	Holidays         DateSet
	SeasonEnd        Date
}

// RecheckOverride re-evaluates one cascade row against an admin-chosen date.
// The date snaps forward to the nearest game weekday, then gets reflagged
// against the rest of the preview with every other row at its final date.
// Rechecking the same override twice yields the same row.
func (c Config) RecheckOverride(in RecheckInput, fixtureID string, override Date) (CascadeRow, bool) {
	rowIdx := -1
	for i, row := range in.Rows {
		if row.FixtureID == fixtureID {
			rowIdx = i
			break
		}
	}
	if rowIdx < 0 {
		return CascadeRow{}, false
	}

	byID := make(map[string]FixtureInfo, len(in.All))
	for _, fx := range in.All {
		byID[fx.ID] = fx
	}
	target, ok := byID[fixtureID]
	if !ok {
		return CascadeRow{}, false
	}

	corrected := c.NextGameDayOnOrAfter(override)

	affectedIDs := make(map[string]struct{}, len(in.Rows))
	for _, row := range in.Rows {
		affectedIDs[row.FixtureID] = struct{}{}
	}

	calendar := make(teamCalendar)
	for _, fx := range in.All {
		if fx.ID == in.Postponed.ID {
			calendar.place(fx, in.PostponedNewDate)
			continue
		}
		if _, affected := affectedIDs[fx.ID]; affected {
			continue
		}
		calendar.place(fx, fx.Date)
	}
	for _, row := range in.Rows {
		if row.FixtureID == fixtureID {
			continue
		}
		if fx, ok := byID[row.FixtureID]; ok {
			calendar.place(fx, row.FinalDate())
		}
	}

	flag := FlagOK
	switch {
	case corrected.After(in.SeasonEnd):
		flag = FlagOutOfBounds
	case calendar.hasConflict(target, corrected):
		flag = FlagConflict
	case in.Holidays.Contains(corrected):
		flag = FlagHolidayAdjusted
	}

	row := in.Rows[rowIdx]
	row.Flag = flag
	row.Override = &corrected
	return row, true
}
