package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/ufaleague/league-api/internal/domain/holiday"
	"github.com/ufaleague/league-api/internal/domain/schedule"
	"github.com/ufaleague/league-api/internal/domain/season"
	"github.com/ufaleague/league-api/internal/platform/id"
)

type HolidayService struct {
	seasonRepo  season.Repository
	holidayRepo holiday.Repository
	idGen       id.Generator
}

func NewHolidayService(seasonRepo season.Repository, holidayRepo holiday.Repository, idGen id.Generator) *HolidayService {
	return &HolidayService{
		seasonRepo:  seasonRepo,
		holidayRepo: holidayRepo,
		idGen:       idGen,
	}
}

func (s *HolidayService) ListBySeason(ctx context.Context, seasonID string) ([]holiday.Range, error) {
	ctx, span := startUsecaseSpan(ctx, "HolidayService.ListBySeason")
	defer span.End()

	if _, err := getSeason(ctx, s.seasonRepo, seasonID); err != nil {
		return nil, err
	}

	items, err := s.holidayRepo.ListBySeason(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("list holidays by season: %w", err)
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].StartDate.Before(items[j].StartDate)
	})
	return items, nil
}

// Create registers a blocked date range. A single-day holiday has start equal
// to end. Ranges may overlap each other; the scheduler flattens them.
func (s *HolidayService) Create(ctx context.Context, seasonID, name string, startDate, endDate time.Time) (holiday.Range, error) {
	ctx, span := startUsecaseSpan(ctx, "HolidayService.Create")
	defer span.End()

	seasonItem, err := getSeason(ctx, s.seasonRepo, seasonID)
	if err != nil {
		return holiday.Range{}, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return holiday.Range{}, fmt.Errorf("%w: holiday name is required", ErrInvalidInput)
	}
	if startDate.IsZero() || endDate.IsZero() {
		return holiday.Range{}, fmt.Errorf("%w: holiday start and end dates are required", ErrInvalidInput)
	}

	window := seasonWindow(seasonItem)
	start, end := schedule.DateOf(startDate), schedule.DateOf(endDate)
	if end.Before(start) {
		return holiday.Range{}, fmt.Errorf("%w: holiday end precedes start", ErrInvalidInput)
	}
	if end.Before(window.Start) || start.After(window.End) {
		return holiday.Range{}, fmt.Errorf("%w: holiday falls entirely outside the season", ErrInvalidInput)
	}

	newID, err := s.idGen.NewID()
	if err != nil {
		return holiday.Range{}, fmt.Errorf("generate holiday id: %w", err)
	}
	item := holiday.Range{
		ID:        newID,
		SeasonID:  seasonItem.ID,
		Name:      name,
		StartDate: start.Time(),
		EndDate:   end.Time(),
	}
	if err := item.Validate(); err != nil {
		return holiday.Range{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.holidayRepo.Create(ctx, item)
	if err != nil {
		return holiday.Range{}, fmt.Errorf("create holiday: %w", err)
	}
	return created, nil
}

func (s *HolidayService) Delete(ctx context.Context, seasonID, holidayID string) error {
	ctx, span := startUsecaseSpan(ctx, "HolidayService.Delete")
	defer span.End()

	holidayID = strings.TrimSpace(holidayID)
	if holidayID == "" {
		return fmt.Errorf("%w: holiday id is required", ErrInvalidInput)
	}
	if _, err := getSeason(ctx, s.seasonRepo, seasonID); err != nil {
		return err
	}

	deleted, err := s.holidayRepo.Delete(ctx, seasonID, holidayID)
	if err != nil {
		return fmt.Errorf("delete holiday: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: holiday=%s season=%s", ErrNotFound, holidayID, seasonID)
	}
	return nil
}

// holidaySet flattens a season's holiday rows for the scheduler.
func holidaySet(items []holiday.Range) schedule.DateSet {
	ranges := make([]schedule.DateRange, 0, len(items))
	for _, item := range items {
		ranges = append(ranges, schedule.DateRange{
			Start: schedule.DateOf(item.StartDate),
			End:   schedule.DateOf(item.EndDate),
		})
	}
	return schedule.BuildHolidaySet(ranges)
}
