package schedule

// MoveValidity classifies one candidate date for manually moving a fixture.
type MoveValidity string

const (
	MoveValid   MoveValidity = "valid"
	MoveInvalid MoveValidity = "invalid"
	MoveCurrent MoveValidity = "current"
)

// ClassifyMove grades a candidate date for moving fx. The fixture's present
// date is always "current". A candidate is invalid when it is not a playable
// game day, when either team already plays that day, or when it would leave
// either team with less than a full slot cycle of rest. Same-day clashes
// count even against completed fixtures.
func (c Config) ClassifyMove(fx FixtureInfo, candidate Date, all []FixtureInfo, w SeasonWindow, holidays DateSet) MoveValidity {
	if candidate == fx.Date {
		return MoveCurrent
	}
	if !c.IsGameWeekday(candidate) || !w.Contains(candidate) || w.InBreak(candidate) || holidays.Contains(candidate) {
		return MoveInvalid
	}

	restCycle := c.RestCycleDays()
	for _, other := range all {
		if other.ID == fx.ID || !sharesTeam(other, fx) {
			continue
		}
		if other.Date == candidate {
			return MoveInvalid
		}
		if diff := DaysApart(other.Date, candidate); diff > 0 && diff <= restCycle {
			return MoveInvalid
		}
	}
	return MoveValid
}
