package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/ufaleague/league-api/internal/domain/holiday"
)

func TestHolidayCreateListDelete(t *testing.T) {
	deps := newTestDeps(nil, nil)
	svc := NewHolidayService(deps.seasonRepo, deps.holidayRepo, deps.idGen)

	created, err := svc.Create(context.Background(), testSeasonID, "Festival", day("2026-02-10"), day("2026-02-12"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected a generated id")
	}

	// A one-day holiday has start equal to end.
	oneDay, err := svc.Create(context.Background(), testSeasonID, "National Day", day("2026-01-09"), day("2026-01-09"))
	if err != nil {
		t.Fatalf("Create one-day: %v", err)
	}

	listed, err := svc.ListBySeason(context.Background(), testSeasonID)
	if err != nil {
		t.Fatalf("ListBySeason: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("len = %d", len(listed))
	}
	if listed[0].ID != oneDay.ID {
		t.Fatalf("holidays not sorted by start date: %v", listed)
	}

	if err := svc.Delete(context.Background(), testSeasonID, oneDay.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := svc.Delete(context.Background(), testSeasonID, oneDay.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("double delete: expected ErrNotFound, got %v", err)
	}
}

func TestHolidayCreateValidations(t *testing.T) {
	deps := newTestDeps(nil, nil)
	svc := NewHolidayService(deps.seasonRepo, deps.holidayRepo, deps.idGen)

	cases := []struct {
		name       string
		rangeName  string
		start, end string
	}{
		{"end before start", "Backwards", "2026-02-12", "2026-02-10"},
		{"entirely outside season", "Offseason", "2026-07-01", "2026-07-05"},
		{"blank name", "  ", "2026-02-10", "2026-02-12"},
	}
	for _, tc := range cases {
		_, err := svc.Create(context.Background(), testSeasonID, tc.rangeName, day(tc.start), day(tc.end))
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("%s: expected ErrInvalidInput, got %v", tc.name, err)
		}
	}
}

func TestHolidaySetFlattensOverlaps(t *testing.T) {
	set := holidaySet([]holiday.Range{
		{StartDate: day("2026-02-10"), EndDate: day("2026-02-12")},
		{StartDate: day("2026-02-11"), EndDate: day("2026-02-13")},
	})
	if len(set) != 4 {
		t.Fatalf("expected 4 distinct dates, got %d", len(set))
	}
}
