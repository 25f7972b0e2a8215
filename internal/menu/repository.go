package menu

import "context"

// Repository defines all database operations for menu structure.
// Service depends ONLY on this interface.
type Repository interface {

	// Categories
	CreateCategory(ctx context.Context, c *Category) error
	ListCategories(ctx context.Context, restaurantID int) ([]*Category, error)
	UpdateCategory(ctx context.Context, c *Category) error
	DeleteCategory(ctx context.Context, restaurantID, categoryID int) error

	// Sub-categories
	CreateSubCategory(ctx context.Context, s *SubCategory) error
	ListSubCategories(ctx context.Context, categoryID int) ([]*SubCategory, error)
	UpdateSubCategory(ctx context.Context, s *SubCategory) error
	DeleteSubCategory(ctx context.Context, subCategoryID int) error

	// Items
	CreateItem(ctx context.Context, i *Item) error
	ListItems(ctx context.Context, subCategoryID int) ([]*Item, error)
	UpdateItem(ctx context.Context, i *Item) error
	DeleteItem(ctx context.Context, itemID int) error

	// Assembled hierarchy for the dashboard and public menu page
	GetTree(ctx context.Context, restaurantID int) (*Tree, error)
}
