package schedule

// SeasonWindow is the playable span of a season: its inclusive start and end
// dates, plus an optional mid-season break during which no games are played.
type SeasonWindow struct {
	Start Date
	End   Date
	Break *DateRange
}

func (w SeasonWindow) Contains(d Date) bool {
	return !d.Before(w.Start) && !d.After(w.End)
}

func (w SeasonWindow) InBreak(d Date) bool {
	return w.Break != nil && w.Break.Contains(d)
}

// GameDays enumerates every playable slot in the window in ascending order:
// dates on a game weekday that fall outside the break and outside holidays.
func (c Config) GameDays(w SeasonWindow, holidays DateSet) []Date {
	var days []Date
	for d := w.Start; !d.After(w.End); d = d.AddDays(1) {
		if !c.IsGameWeekday(d) {
			continue
		}
		if w.InBreak(d) || holidays.Contains(d) {
			continue
		}
		days = append(days, d)
	}
	return days
}
