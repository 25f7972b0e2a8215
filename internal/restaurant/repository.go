package restaurant

import "context"

type Repository interface {
	// core
	Create(ctx context.Context, restaurant *Restaurant) error
	ListByOwner(ctx context.Context, ownerID string) ([]*Restaurant, error)
	GetBySlug(ctx context.Context, slug string) (*Restaurant, error)
	SlugByID(ctx context.Context, restaurantID int) (string, error)
	UpdateLogo(ctx context.Context, restaurantID int, logoURL string) error

	// ownership & import target resolution
	IsOwner(ctx context.Context, restaurantID int, userID string) (bool, error)
	FirstByOwner(ctx context.Context, ownerID string) (int, error)
}
