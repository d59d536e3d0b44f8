package fixture

import "context"

// Repository describes fixture persistence needs from use cases.
//
// ReplaceBySeason and ApplyKickoffUpdates are atomic: either every write in
// the batch lands or none does. A half-applied schedule leaves fixture pairs
// in conflicting or reordered states, so partial success is never acceptable.
type Repository interface {
	ListBySeason(ctx context.Context, seasonID string) ([]Fixture, error)
	GetByID(ctx context.Context, fixtureID string) (Fixture, bool, error)
	Create(ctx context.Context, item Fixture) (Fixture, error)
	Update(ctx context.Context, item Fixture) (Fixture, error)
	Delete(ctx context.Context, fixtureID string) (bool, error)
	ReplaceBySeason(ctx context.Context, seasonID string, items []Fixture) (int, error)
	ApplyKickoffUpdates(ctx context.Context, updates []KickoffUpdate) (int, error)
}
