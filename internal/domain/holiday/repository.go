package holiday

import "context"

// Repository describes holiday persistence needs from use cases.
type Repository interface {
	ListBySeason(ctx context.Context, seasonID string) ([]Range, error)
	Create(ctx context.Context, item Range) (Range, error)
	Delete(ctx context.Context, seasonID, holidayID string) (bool, error)
}
