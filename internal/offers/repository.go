package offers

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// --------------------------------------------------
// Create Offer
// --------------------------------------------------
func (r *Repository) Create(ctx context.Context, offer *Offer) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO offers (
			restaurant_id,
			title,
			description,
			type,
			category,
			discount_value,
			starts_at,
			ends_at,
			status
		)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING id, created_at, updated_at
	`,
		offer.RestaurantID,
		offer.Title,
		offer.Description,
		offer.Type,
		offer.Category,
		offer.DiscountValue,
		offer.StartsAt,
		offer.EndsAt,
		offer.Status,
	).Scan(
		&offer.ID,
		&offer.CreatedAt,
		&offer.UpdatedAt,
	)
}

// --------------------------------------------------
// List Offers by Restaurant
// --------------------------------------------------
func (r *Repository) ListByRestaurant(
	ctx context.Context,
	restaurantID int,
) ([]*Offer, error) {

	rows, err := r.db.Query(ctx, `
		SELECT
			id, restaurant_id, title, description, type, category,
			discount_value, starts_at, ends_at, status,
			created_at, updated_at
		FROM offers
		WHERE restaurant_id = $1
		ORDER BY created_at DESC
	`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOffers(rows)
}

// --------------------------------------------------
// Active offers for the public menu
// --------------------------------------------------
func (r *Repository) ListActive(
	ctx context.Context,
	restaurantID int,
) ([]*Offer, error) {

	rows, err := r.db.Query(ctx, `
		SELECT
			id, restaurant_id, title, description, type, category,
			discount_value, starts_at, ends_at, status,
			created_at, updated_at
		FROM offers
		WHERE restaurant_id = $1
		  AND status = 'ACTIVE'
		  AND (starts_at IS NULL OR starts_at <= now())
		  AND (ends_at IS NULL OR ends_at >= now())
		ORDER BY created_at DESC
	`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOffers(rows)
}

// --------------------------------------------------
// Update Status
// --------------------------------------------------
func (r *Repository) UpdateStatus(
	ctx context.Context,
	restaurantID, offerID int,
	status string,
) error {

	_, err := r.db.Exec(ctx, `
		UPDATE offers
		SET status = $1, updated_at = now()
		WHERE id = $2 AND restaurant_id = $3
	`, status, offerID, restaurantID)

	return err
}

func (r *Repository) Delete(
	ctx context.Context,
	restaurantID, offerID int,
) error {

	_, err := r.db.Exec(ctx, `
		DELETE FROM offers
		WHERE id = $1 AND restaurant_id = $2
	`, offerID, restaurantID)

	return err
}

type offerRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanOffers(rows offerRows) ([]*Offer, error) {
	var offers []*Offer
	for rows.Next() {
		var o Offer
		if err := rows.Scan(
			&o.ID,
			&o.RestaurantID,
			&o.Title,
			&o.Description,
			&o.Type,
			&o.Category,
			&o.DiscountValue,
			&o.StartsAt,
			&o.EndsAt,
			&o.Status,
			&o.CreatedAt,
			&o.UpdatedAt,
		); err != nil {
			return nil, err
		}
		offers = append(offers, &o)
	}
	return offers, rows.Err()
}
