package menu

import (
	"context"
	"errors"

	"qrmenu/internal/core"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidInput = errors.New("missing required fields")
)

type Service struct {
	repo        Repository
	restaurants core.RestaurantReader
}

func NewService(repo Repository, restaurants core.RestaurantReader) *Service {
	return &Service{repo: repo, restaurants: restaurants}
}

func (s *Service) authorize(ctx context.Context, restaurantID int, userID string) error {
	ok, err := s.restaurants.IsOwner(ctx, restaurantID, userID)
	if err != nil || !ok {
		return ErrUnauthorized
	}
	return nil
}

// --------------------------------------------------
// CATEGORIES
// --------------------------------------------------

func (s *Service) CreateCategory(
	ctx context.Context,
	userID string,
	c *Category,
) error {
	if err := s.authorize(ctx, c.RestaurantID, userID); err != nil {
		return err
	}
	if c.Name == "" {
		return ErrInvalidInput
	}
	return s.repo.CreateCategory(ctx, c)
}

func (s *Service) ListCategories(
	ctx context.Context,
	userID string,
	restaurantID int,
) ([]*Category, error) {
	if err := s.authorize(ctx, restaurantID, userID); err != nil {
		return nil, err
	}
	return s.repo.ListCategories(ctx, restaurantID)
}

func (s *Service) UpdateCategory(
	ctx context.Context,
	userID string,
	c *Category,
) error {
	if err := s.authorize(ctx, c.RestaurantID, userID); err != nil {
		return err
	}
	if c.Name == "" {
		return ErrInvalidInput
	}
	return s.repo.UpdateCategory(ctx, c)
}

func (s *Service) DeleteCategory(
	ctx context.Context,
	userID string,
	restaurantID, categoryID int,
) error {
	if err := s.authorize(ctx, restaurantID, userID); err != nil {
		return err
	}
	return s.repo.DeleteCategory(ctx, restaurantID, categoryID)
}

// --------------------------------------------------
// SUB-CATEGORIES
// --------------------------------------------------

func (s *Service) CreateSubCategory(
	ctx context.Context,
	userID string,
	restaurantID int,
	sub *SubCategory,
) error {
	if err := s.authorize(ctx, restaurantID, userID); err != nil {
		return err
	}
	if sub.Name == "" {
		return ErrInvalidInput
	}
	return s.repo.CreateSubCategory(ctx, sub)
}

func (s *Service) UpdateSubCategory(
	ctx context.Context,
	userID string,
	restaurantID int,
	sub *SubCategory,
) error {
	if err := s.authorize(ctx, restaurantID, userID); err != nil {
		return err
	}
	if sub.Name == "" {
		return ErrInvalidInput
	}
	return s.repo.UpdateSubCategory(ctx, sub)
}

func (s *Service) DeleteSubCategory(
	ctx context.Context,
	userID string,
	restaurantID, subCategoryID int,
) error {
	if err := s.authorize(ctx, restaurantID, userID); err != nil {
		return err
	}
	return s.repo.DeleteSubCategory(ctx, subCategoryID)
}

// --------------------------------------------------
// ITEMS
// --------------------------------------------------

func (s *Service) CreateItem(
	ctx context.Context,
	userID string,
	restaurantID int,
	item *Item,
) error {
	if err := s.authorize(ctx, restaurantID, userID); err != nil {
		return err
	}
	if item.Name == "" || item.Price < 0 {
		return ErrInvalidInput
	}
	if item.Currency == "" {
		item.Currency = "USD"
	}
	if item.AvailabilityStatus == "" {
		item.AvailabilityStatus = "AVAILABLE"
	}
	if item.Tags == nil {
		item.Tags = []string{}
	}
	if item.Allergens == nil {
		item.Allergens = []string{}
	}
	return s.repo.CreateItem(ctx, item)
}

func (s *Service) UpdateItem(
	ctx context.Context,
	userID string,
	restaurantID int,
	item *Item,
) error {
	if err := s.authorize(ctx, restaurantID, userID); err != nil {
		return err
	}
	if item.Name == "" || item.Price < 0 {
		return ErrInvalidInput
	}
	return s.repo.UpdateItem(ctx, item)
}

func (s *Service) DeleteItem(
	ctx context.Context,
	userID string,
	restaurantID, itemID int,
) error {
	if err := s.authorize(ctx, restaurantID, userID); err != nil {
		return err
	}
	return s.repo.DeleteItem(ctx, itemID)
}

// --------------------------------------------------
// MENU TREE
// --------------------------------------------------

func (s *Service) GetTree(
	ctx context.Context,
	userID string,
	restaurantID int,
) (*Tree, error) {
	if err := s.authorize(ctx, restaurantID, userID); err != nil {
		return nil, err
	}
	return s.repo.GetTree(ctx, restaurantID)
}
