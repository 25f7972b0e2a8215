package qrcode

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Code records the generated QR image for a restaurant. One row per
// restaurant, regenerating replaces it.
type Code struct {
	ID           int       `json:"id"`
	RestaurantID int       `json:"restaurant_id"`
	MenuURL      string    `json:"menu_url"`
	ImageURL     string    `json:"image_url"`
	CreatedAt    time.Time `json:"created_at"`
}

var ErrNotFound = errors.New("qr code not found")

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Upsert(ctx context.Context, code *Code) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO qr_codes (restaurant_id, menu_url, image_url)
		VALUES ($1, $2, $3)
		ON CONFLICT (restaurant_id)
		DO UPDATE SET menu_url = $2, image_url = $3, created_at = now()
		RETURNING id, created_at
	`,
		code.RestaurantID,
		code.MenuURL,
		code.ImageURL,
	).Scan(&code.ID, &code.CreatedAt)
}

func (r *Repository) GetByRestaurant(
	ctx context.Context,
	restaurantID int,
) (*Code, error) {

	var code Code
	err := r.db.QueryRow(ctx, `
		SELECT id, restaurant_id, menu_url, image_url, created_at
		FROM qr_codes
		WHERE restaurant_id = $1
	`, restaurantID).Scan(
		&code.ID,
		&code.RestaurantID,
		&code.MenuURL,
		&code.ImageURL,
		&code.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &code, nil
}
