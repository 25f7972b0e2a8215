package pricing

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
// Create Rule
// --------------------------------------------------
func (r *Repository) Create(ctx context.Context, rule *Rule) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO pricing_rules (
			restaurant_id,
			name,
			kind,
			value,
			category,
			days,
			start_time,
			end_time,
			active
		)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING id, created_at, updated_at
	`,
		rule.RestaurantID,
		rule.Name,
		rule.Kind,
		rule.Value,
		rule.Category,
		rule.Days,
		rule.StartTime,
		rule.EndTime,
		rule.Active,
	).Scan(
		&rule.ID,
		&rule.CreatedAt,
		&rule.UpdatedAt,
	)
}

// --------------------------------------------------
// List Rules by Restaurant
// --------------------------------------------------
func (r *Repository) ListByRestaurant(
	ctx context.Context,
	restaurantID int,
) ([]*Rule, error) {

	rows, err := r.db.Query(ctx, `
		SELECT
			id, restaurant_id, name, kind, value, category,
			days, start_time, end_time, active,
			created_at, updated_at
		FROM pricing_rules
		WHERE restaurant_id = $1
		ORDER BY created_at
	`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rules []*Rule
	for rows.Next() {
		var rule Rule
		if err := rows.Scan(
			&rule.ID,
			&rule.RestaurantID,
			&rule.Name,
			&rule.Kind,
			&rule.Value,
			&rule.Category,
			&rule.Days,
			&rule.StartTime,
			&rule.EndTime,
			&rule.Active,
			&rule.CreatedAt,
			&rule.UpdatedAt,
		); err != nil {
			return nil, err
		}
		rules = append(rules, &rule)
	}
	return rules, rows.Err()
}

// --------------------------------------------------
// Toggle / Delete
// --------------------------------------------------
func (r *Repository) SetActive(
	ctx context.Context,
	restaurantID, ruleID int,
	active bool,
) error {

	_, err := r.db.Exec(ctx, `
		UPDATE pricing_rules
		SET active = $1, updated_at = now()
		WHERE id = $2 AND restaurant_id = $3
	`, active, ruleID, restaurantID)

	return err
}

func (r *Repository) Delete(
	ctx context.Context,
	restaurantID, ruleID int,
) error {

	_, err := r.db.Exec(ctx, `
		DELETE FROM pricing_rules
		WHERE id = $1 AND restaurant_id = $2
	`, ruleID, restaurantID)

	return err
}
