package schedule

import "testing"

func moveFixtures() []FixtureInfo {
	return []FixtureInfo{
		{ID: "fx-f", HomeTeamID: "t1", AwayTeamID: "t2", Date: MustParseDate("2026-01-20"), Scheduled: true},
		{ID: "fx-g", HomeTeamID: "t1", AwayTeamID: "t3", Date: MustParseDate("2026-01-27"), Scheduled: true},
		{ID: "fx-h", HomeTeamID: "t3", AwayTeamID: "t4", Date: MustParseDate("2026-02-10"), Scheduled: false},
	}
}

func TestClassifyMoveCurrent(t *testing.T) {
	all := moveFixtures()
	window := SeasonWindow{Start: MustParseDate("2026-01-01"), End: MustParseDate("2026-03-31")}
	got := testConfig.ClassifyMove(all[0], MustParseDate("2026-01-20"), all, window, nil)
	if got != MoveCurrent {
		t.Fatalf("present date = %v, want current", got)
	}
}

func TestClassifyMoveIneligibleDates(t *testing.T) {
	all := moveFixtures()
	window := SeasonWindow{
		Start: MustParseDate("2026-01-01"),
		End:   MustParseDate("2026-03-31"),
		Break: &DateRange{Start: MustParseDate("2026-02-03"), End: MustParseDate("2026-02-13")},
	}
	holidays := BuildHolidaySet([]DateRange{
		{Start: MustParseDate("2026-02-17"), End: MustParseDate("2026-02-17")},
	})

	cases := map[string]string{
		"2026-01-21": "not a game weekday",
		"2025-12-30": "before season start",
		"2026-04-03": "after season end",
		"2026-02-06": "inside the break",
		"2026-02-17": "holiday",
	}
	for date, reason := range cases {
		got := testConfig.ClassifyMove(all[0], MustParseDate(date), all, window, holidays)
		if got != MoveInvalid {
			t.Fatalf("%s (%s) = %v, want invalid", date, reason, got)
		}
	}
}

func TestClassifyMoveSameDayConflictSymmetry(t *testing.T) {
	all := moveFixtures()
	window := SeasonWindow{Start: MustParseDate("2026-01-01"), End: MustParseDate("2026-03-31")}

	// fx-f and fx-g share Anchors, so each blocks the other's date.
	if got := testConfig.ClassifyMove(all[0], MustParseDate("2026-01-27"), all, window, nil); got != MoveInvalid {
		t.Fatalf("fx-f onto fx-g's date = %v, want invalid", got)
	}
	if got := testConfig.ClassifyMove(all[1], MustParseDate("2026-01-20"), all, window, nil); got != MoveInvalid {
		t.Fatalf("fx-g onto fx-f's date = %v, want invalid", got)
	}
}

func TestClassifyMoveConflictWithCompletedFixture(t *testing.T) {
	all := moveFixtures()
	window := SeasonWindow{Start: MustParseDate("2026-01-01"), End: MustParseDate("2026-03-31")}

	// fx-h is complete but still occupies Comets on Feb 10.
	if got := testConfig.ClassifyMove(all[1], MustParseDate("2026-02-10"), all, window, nil); got != MoveInvalid {
		t.Fatalf("move onto a completed fixture's date = %v, want invalid", got)
	}
}

func TestClassifyMoveBackToBack(t *testing.T) {
	all := moveFixtures()
	window := SeasonWindow{Start: MustParseDate("2026-01-01"), End: MustParseDate("2026-03-31")}

	// Jan 23 and Jan 30 are both within one slot cycle of fx-g on Jan 27.
	for _, date := range []string{"2026-01-23", "2026-01-30"} {
		if got := testConfig.ClassifyMove(all[0], MustParseDate(date), all, window, nil); got != MoveInvalid {
			t.Fatalf("%s = %v, want invalid (too little rest)", date, got)
		}
	}
}

func TestClassifyMoveValid(t *testing.T) {
	all := moveFixtures()
	window := SeasonWindow{Start: MustParseDate("2026-01-01"), End: MustParseDate("2026-03-31")}

	if got := testConfig.ClassifyMove(all[0], MustParseDate("2026-02-24"), all, window, nil); got != MoveValid {
		t.Fatalf("clear date = %v, want valid", got)
	}
}
