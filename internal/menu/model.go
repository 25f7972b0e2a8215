package menu

import "time"

// Category is a top-level menu grouping scoped to one restaurant.
type Category struct {
	ID           int       `json:"id"`
	RestaurantID int       `json:"restaurant_id"`
	Name         string    `json:"name"`
	Icon         *string   `json:"icon,omitempty"`
	SortOrder    int       `json:"sort_order"`
	CreatedAt    time.Time `json:"created_at"`
}

// SubCategory nests under a category. Name is unique per category.
type SubCategory struct {
	ID          int     `json:"id"`
	CategoryID  int     `json:"category_id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	SortOrder   int     `json:"sort_order"`
}

// Item is a persisted menu item as served to the dashboard and the
// public menu page.
type Item struct {
	ID                 int      `json:"id"`
	SubCategoryID      int      `json:"sub_category_id"`
	Name               string   `json:"name"`
	Description        string   `json:"description"`
	Price              float64  `json:"price"`
	Currency           string   `json:"currency"`
	ImageURL           *string  `json:"image_url,omitempty"`
	Tags               []string `json:"tags"`
	Allergens          []string `json:"allergens"`
	AvailabilityStatus string   `json:"availability_status"`
	PreparationTime    *int     `json:"preparation_time,omitempty"`
	SortOrder          int      `json:"sort_order"`
}

// --------------------------------------------------
// ASSEMBLED MENU TREE
// --------------------------------------------------

type TreeSubCategory struct {
	SubCategory
	Items []Item `json:"items"`
}

type TreeCategory struct {
	Category
	SubCategories []TreeSubCategory `json:"sub_categories"`
}

// Tree is the full category → sub-category → item hierarchy of one
// restaurant, ordered by sort_order at every level.
type Tree struct {
	RestaurantID int            `json:"restaurant_id"`
	Categories   []TreeCategory `json:"categories"`
}
