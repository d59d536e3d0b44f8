package season

import (
	"context"
	"time"
)

// Repository describes season persistence needs from use cases.
type Repository interface {
	GetByID(ctx context.Context, seasonID string) (Season, bool, error)
	UpdateEndDate(ctx context.Context, seasonID string, endDate time.Time) (Season, error)
	UpdateStatus(ctx context.Context, seasonID, status string) (Season, error)
}
