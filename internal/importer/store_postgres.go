package importer

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// PostgresStore persists the canonical tree into the categories /
// sub_categories / menu_items tables. Each create is an independent
// write. The whole import is deliberately not wrapped in one
// transaction (see Orchestrator.Import).
type PostgresStore struct {
	db *pgxpool.Pool
}

func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) FindCategory(
	ctx context.Context,
	restaurantID int,
	name string,
) (int, bool, error) {

	var id int
	err := s.db.QueryRow(ctx, `
		SELECT id
		FROM categories
		WHERE restaurant_id = $1 AND name = $2
	`, restaurantID, name).Scan(&id)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, err
	}

	return id, true, nil
}

func (s *PostgresStore) CreateCategory(
	ctx context.Context,
	restaurantID int,
	name string,
	icon *string,
	sortOrder int,
) (int, error) {

	var id int
	err := s.db.QueryRow(ctx, `
		INSERT INTO categories (restaurant_id, name, icon, sort_order)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, restaurantID, name, icon, sortOrder).Scan(&id)

	return id, err
}

func (s *PostgresStore) FindSubCategory(
	ctx context.Context,
	categoryID int,
	name string,
) (int, bool, error) {

	var id int
	err := s.db.QueryRow(ctx, `
		SELECT id
		FROM sub_categories
		WHERE category_id = $1 AND name = $2
	`, categoryID, name).Scan(&id)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, err
	}

	return id, true, nil
}

func (s *PostgresStore) CreateSubCategory(
	ctx context.Context,
	categoryID int,
	name string,
	description *string,
	sortOrder int,
) (int, error) {

	var id int
	err := s.db.QueryRow(ctx, `
		INSERT INTO sub_categories (category_id, name, description, sort_order)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, categoryID, name, description, sortOrder).Scan(&id)

	return id, err
}

// numericPrice renders the price for the NUMERIC(10,2) column without a
// float64 round-trip.
func numericPrice(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func (s *PostgresStore) CreateItem(
	ctx context.Context,
	subCategoryID int,
	item MenuItem,
	sortOrder int,
) error {

	_, err := s.db.Exec(ctx, `
		INSERT INTO menu_items (
			sub_category_id,
			name,
			description,
			price,
			currency,
			image_url,
			tags,
			allergens,
			availability_status,
			preparation_time,
			sort_order
		)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
	`,
		subCategoryID,
		item.Name,
		item.Description,
		numericPrice(item.Price),
		item.Currency,
		item.ImageURL,
		item.Tags,
		item.Allergens,
		item.AvailabilityStatus,
		item.PreparationTime,
		sortOrder,
	)

	return err
}
