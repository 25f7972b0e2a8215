package restaurant

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, restaurant *Restaurant) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO restaurants (owner_id, name, slug, city, address, phone, currency, logo_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`,
		restaurant.OwnerID,
		restaurant.Name,
		restaurant.Slug,
		restaurant.City,
		restaurant.Address,
		restaurant.Phone,
		restaurant.Currency,
		restaurant.LogoURL,
	).Scan(&restaurant.ID, &restaurant.CreatedAt)
}

func (r *PostgresRepository) ListByOwner(
	ctx context.Context,
	ownerID string,
) ([]*Restaurant, error) {

	rows, err := r.db.Query(ctx, `
		SELECT id, owner_id, name, slug, city, address, phone, currency, logo_url, created_at
		FROM restaurants
		WHERE owner_id = $1
		ORDER BY created_at
	`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var restaurants []*Restaurant
	for rows.Next() {
		var rest Restaurant
		if err := rows.Scan(
			&rest.ID, &rest.OwnerID, &rest.Name, &rest.Slug, &rest.City,
			&rest.Address, &rest.Phone, &rest.Currency, &rest.LogoURL, &rest.CreatedAt,
		); err != nil {
			return nil, err
		}
		restaurants = append(restaurants, &rest)
	}

	return restaurants, rows.Err()
}

func (r *PostgresRepository) GetBySlug(
	ctx context.Context,
	slug string,
) (*Restaurant, error) {

	var rest Restaurant
	err := r.db.QueryRow(ctx, `
		SELECT id, owner_id, name, slug, city, address, phone, currency, logo_url, created_at
		FROM restaurants
		WHERE slug = $1
	`, slug).Scan(
		&rest.ID, &rest.OwnerID, &rest.Name, &rest.Slug, &rest.City,
		&rest.Address, &rest.Phone, &rest.Currency, &rest.LogoURL, &rest.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.New("restaurant not found")
		}
		return nil, err
	}

	return &rest, nil
}

func (r *PostgresRepository) SlugByID(
	ctx context.Context,
	restaurantID int,
) (string, error) {

	var slug string
	err := r.db.QueryRow(ctx, `
		SELECT slug FROM restaurants
		WHERE id = $1
	`, restaurantID).Scan(&slug)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", errors.New("restaurant not found")
		}
		return "", err
	}

	return slug, nil
}

func (r *PostgresRepository) UpdateLogo(
	ctx context.Context,
	restaurantID int,
	logoURL string,
) error {

	_, err := r.db.Exec(ctx, `
		UPDATE restaurants
		SET logo_url = $1
		WHERE id = $2
	`, logoURL, restaurantID)

	return err
}

func (r *PostgresRepository) IsOwner(
	ctx context.Context,
	restaurantID int,
	userID string,
) (bool, error) {

	var one int
	err := r.db.QueryRow(ctx, `
		SELECT 1 FROM restaurants
		WHERE id = $1 AND owner_id = $2
	`, restaurantID, userID).Scan(&one)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

// FirstByOwner returns the owner's oldest restaurant, the implicit
// target of a menu file import.
func (r *PostgresRepository) FirstByOwner(
	ctx context.Context,
	ownerID string,
) (int, error) {

	var id int
	err := r.db.QueryRow(ctx, `
		SELECT id FROM restaurants
		WHERE owner_id = $1
		ORDER BY created_at
		LIMIT 1
	`, ownerID).Scan(&id)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, errors.New("no restaurant found")
		}
		return 0, err
	}

	return id, nil
}
