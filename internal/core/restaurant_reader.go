package core

import "context"

// RestaurantReader is the cross-feature view of restaurant ownership.
// Menu, importer and offer services depend on it instead of the full
// restaurant repository.
type RestaurantReader interface {
	IsOwner(ctx context.Context, restaurantID int, userID string) (bool, error)

	// FirstByOwner resolves the import target: the owner's first
	// (oldest) restaurant.
	FirstByOwner(ctx context.Context, ownerID string) (int, error)
}
