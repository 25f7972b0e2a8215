package importer

import (
	"context"
	"fmt"
)

// Store is the persistence boundary of the import pipeline. Categories
// and sub-categories are looked up before creation; items are always
// created fresh.
type Store interface {
	FindCategory(ctx context.Context, restaurantID int, name string) (int, bool, error)
	CreateCategory(ctx context.Context, restaurantID int, name string, icon *string, sortOrder int) (int, error)

	FindSubCategory(ctx context.Context, categoryID int, name string) (int, bool, error)
	CreateSubCategory(ctx context.Context, categoryID int, name string, description *string, sortOrder int) (int, error)

	CreateItem(ctx context.Context, subCategoryID int, item MenuItem, sortOrder int) error
}

type Orchestrator struct {
	store Store
}

func NewOrchestrator(store Store) *Orchestrator {
	return &Orchestrator{store: store}
}

// counters holds the running sort-order state threaded through one
// import. Each create uses the count of records processed so far.
type counters struct {
	categories    int
	subCategories int
	items         int
}

// Import reconciles a canonical tree against the persisted menu of one
// restaurant. Existing categories and sub-categories are reused, missing
// ones created; every item is inserted unconditionally, so re-importing
// the same file duplicates items. A persistence failure aborts the
// remaining writes, creates already committed stay committed.
func (o *Orchestrator) Import(
	ctx context.Context,
	restaurantID int,
	result *Result,
) (*Summary, error) {

	if result == nil || len(result.Categories) == 0 {
		return nil, ErrEmptyResult
	}

	summary := &Summary{}
	var c counters

	for _, cat := range result.Categories {
		categoryID, found, err := o.store.FindCategory(ctx, restaurantID, cat.Name)
		if err != nil {
			return nil, fmt.Errorf("lookup category %q: %w", cat.Name, err)
		}

		if !found {
			categoryID, err = o.store.CreateCategory(
				ctx, restaurantID, cat.Name, cat.Icon, c.categories,
			)
			if err != nil {
				return nil, fmt.Errorf("create category %q: %w", cat.Name, err)
			}
		}

		c.categories++
		summary.Categories++

		for _, sub := range cat.SubCategories {
			subCategoryID, found, err := o.store.FindSubCategory(ctx, categoryID, sub.Name)
			if err != nil {
				return nil, fmt.Errorf("lookup sub-category %q: %w", sub.Name, err)
			}

			if !found {
				subCategoryID, err = o.store.CreateSubCategory(
					ctx, categoryID, sub.Name, sub.Description, c.subCategories,
				)
				if err != nil {
					return nil, fmt.Errorf("create sub-category %q: %w", sub.Name, err)
				}
			}

			c.subCategories++
			summary.SubCategories++

			for _, item := range sub.Items {
				if err := o.store.CreateItem(ctx, subCategoryID, item, c.items); err != nil {
					return nil, fmt.Errorf("create item %q: %w", item.Name, err)
				}
				c.items++
				summary.Items++
			}
		}
	}

	return summary, nil
}
