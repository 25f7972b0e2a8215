package menu

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// CATEGORIES
// --------------------------------------------------

func (r *PostgresRepository) CreateCategory(ctx context.Context, c *Category) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO categories (restaurant_id, name, icon, sort_order)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, c.RestaurantID, c.Name, c.Icon, c.SortOrder).Scan(&c.ID, &c.CreatedAt)
}

func (r *PostgresRepository) ListCategories(
	ctx context.Context,
	restaurantID int,
) ([]*Category, error) {

	rows, err := r.db.Query(ctx, `
		SELECT id, restaurant_id, name, icon, sort_order, created_at
		FROM categories
		WHERE restaurant_id = $1
		ORDER BY sort_order, id
	`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []*Category
	for rows.Next() {
		var c Category
		if err := rows.Scan(
			&c.ID, &c.RestaurantID, &c.Name, &c.Icon, &c.SortOrder, &c.CreatedAt,
		); err != nil {
			return nil, err
		}
		categories = append(categories, &c)
	}

	return categories, rows.Err()
}

func (r *PostgresRepository) UpdateCategory(ctx context.Context, c *Category) error {
	_, err := r.db.Exec(ctx, `
		UPDATE categories
		SET name = $1, icon = $2, sort_order = $3
		WHERE id = $4 AND restaurant_id = $5
	`, c.Name, c.Icon, c.SortOrder, c.ID, c.RestaurantID)
	return err
}

func (r *PostgresRepository) DeleteCategory(
	ctx context.Context,
	restaurantID, categoryID int,
) error {
	_, err := r.db.Exec(ctx, `
		DELETE FROM categories
		WHERE id = $1 AND restaurant_id = $2
	`, categoryID, restaurantID)
	return err
}

// --------------------------------------------------
// SUB-CATEGORIES
// --------------------------------------------------

func (r *PostgresRepository) CreateSubCategory(ctx context.Context, s *SubCategory) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO sub_categories (category_id, name, description, sort_order)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, s.CategoryID, s.Name, s.Description, s.SortOrder).Scan(&s.ID)
}

func (r *PostgresRepository) ListSubCategories(
	ctx context.Context,
	categoryID int,
) ([]*SubCategory, error) {

	rows, err := r.db.Query(ctx, `
		SELECT id, category_id, name, description, sort_order
		FROM sub_categories
		WHERE category_id = $1
		ORDER BY sort_order, id
	`, categoryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []*SubCategory
	for rows.Next() {
		var s SubCategory
		if err := rows.Scan(
			&s.ID, &s.CategoryID, &s.Name, &s.Description, &s.SortOrder,
		); err != nil {
			return nil, err
		}
		subs = append(subs, &s)
	}

	return subs, rows.Err()
}

func (r *PostgresRepository) UpdateSubCategory(ctx context.Context, s *SubCategory) error {
	_, err := r.db.Exec(ctx, `
		UPDATE sub_categories
		SET name = $1, description = $2, sort_order = $3
		WHERE id = $4
	`, s.Name, s.Description, s.SortOrder, s.ID)
	return err
}

func (r *PostgresRepository) DeleteSubCategory(ctx context.Context, subCategoryID int) error {
	_, err := r.db.Exec(ctx, `
		DELETE FROM sub_categories WHERE id = $1
	`, subCategoryID)
	return err
}

// --------------------------------------------------
// ITEMS
// --------------------------------------------------

func (r *PostgresRepository) CreateItem(ctx context.Context, i *Item) error {
	return r.db.QueryRow(ctx, `
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
		RETURNING id
	`,
		i.SubCategoryID,
		i.Name,
		i.Description,
		i.Price,
		i.Currency,
		i.ImageURL,
		i.Tags,
		i.Allergens,
		i.AvailabilityStatus,
		i.PreparationTime,
		i.SortOrder,
	).Scan(&i.ID)
}

func (r *PostgresRepository) ListItems(
	ctx context.Context,
	subCategoryID int,
) ([]*Item, error) {

	rows, err := r.db.Query(ctx, `
		SELECT
			id, sub_category_id, name, description, price, currency,
			image_url, tags, allergens, availability_status,
			preparation_time, sort_order
		FROM menu_items
		WHERE sub_category_id = $1
		ORDER BY sort_order, id
	`, subCategoryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanItems(rows)
}

func (r *PostgresRepository) UpdateItem(ctx context.Context, i *Item) error {
	_, err := r.db.Exec(ctx, `
		UPDATE menu_items
		SET
			name = $1,
			description = $2,
			price = $3,
			currency = $4,
			image_url = $5,
			tags = $6,
			allergens = $7,
			availability_status = $8,
			preparation_time = $9,
			sort_order = $10
		WHERE id = $11
	`,
		i.Name,
		i.Description,
		i.Price,
		i.Currency,
		i.ImageURL,
		i.Tags,
		i.Allergens,
		i.AvailabilityStatus,
		i.PreparationTime,
		i.SortOrder,
		i.ID,
	)
	return err
}

func (r *PostgresRepository) DeleteItem(ctx context.Context, itemID int) error {
	_, err := r.db.Exec(ctx, `
		DELETE FROM menu_items WHERE id = $1
	`, itemID)
	return err
}

// --------------------------------------------------
// MENU TREE
// --------------------------------------------------

// GetTree assembles the whole hierarchy in three queries.
func (r *PostgresRepository) GetTree(
	ctx context.Context,
	restaurantID int,
) (*Tree, error) {

	categories, err := r.ListCategories(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	tree := &Tree{
		RestaurantID: restaurantID,
		Categories:   []TreeCategory{},
	}

	if len(categories) == 0 {
		return tree, nil
	}

	catIndex := map[int]int{}
	for _, c := range categories {
		tree.Categories = append(tree.Categories, TreeCategory{
			Category:      *c,
			SubCategories: []TreeSubCategory{},
		})
		catIndex[c.ID] = len(tree.Categories) - 1
	}

	subRows, err := r.db.Query(ctx, `
		SELECT s.id, s.category_id, s.name, s.description, s.sort_order
		FROM sub_categories s
		JOIN categories c ON s.category_id = c.id
		WHERE c.restaurant_id = $1
		ORDER BY s.sort_order, s.id
	`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer subRows.Close()

	subIndex := map[int]struct{ cat, sub int }{}
	for subRows.Next() {
		var s SubCategory
		if err := subRows.Scan(
			&s.ID, &s.CategoryID, &s.Name, &s.Description, &s.SortOrder,
		); err != nil {
			return nil, err
		}

		ci, ok := catIndex[s.CategoryID]
		if !ok {
			continue
		}

		cat := &tree.Categories[ci]
		cat.SubCategories = append(cat.SubCategories, TreeSubCategory{
			SubCategory: s,
			Items:       []Item{},
		})
		subIndex[s.ID] = struct{ cat, sub int }{ci, len(cat.SubCategories) - 1}
	}
	if err := subRows.Err(); err != nil {
		return nil, err
	}

	itemRows, err := r.db.Query(ctx, `
		SELECT
			i.id, i.sub_category_id, i.name, i.description, i.price,
			i.currency, i.image_url, i.tags, i.allergens,
			i.availability_status, i.preparation_time, i.sort_order
		FROM menu_items i
		JOIN sub_categories s ON i.sub_category_id = s.id
		JOIN categories c ON s.category_id = c.id
		WHERE c.restaurant_id = $1
		ORDER BY i.sort_order, i.id
	`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer itemRows.Close()

	items, err := scanItems(itemRows)
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		pos, ok := subIndex[item.SubCategoryID]
		if !ok {
			continue
		}
		sub := &tree.Categories[pos.cat].SubCategories[pos.sub]
		sub.Items = append(sub.Items, *item)
	}

	return tree, nil
}

type pgxRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanItems(rows pgxRows) ([]*Item, error) {
	var items []*Item
	for rows.Next() {
		var i Item
		if err := rows.Scan(
			&i.ID,
			&i.SubCategoryID,
			&i.Name,
			&i.Description,
			&i.Price,
			&i.Currency,
			&i.ImageURL,
			&i.Tags,
			&i.Allergens,
			&i.AvailabilityStatus,
			&i.PreparationTime,
			&i.SortOrder,
		); err != nil {
			return nil, err
		}
		items = append(items, &i)
	}
	return items, rows.Err()
}
