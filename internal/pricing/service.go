package pricing

import (
	"context"
	"errors"

	"qrmenu/internal/core"
)

var (
	ErrUnauthorized = errors.New("restaurant does not belong to user")
	ErrInvalidInput = errors.New("invalid input")
)

type repository interface {
	Create(ctx context.Context, rule *Rule) error
	ListByRestaurant(ctx context.Context, restaurantID int) ([]*Rule, error)
	SetActive(ctx context.Context, restaurantID, ruleID int, active bool) error
	Delete(ctx context.Context, restaurantID, ruleID int) error
}

type Service struct {
	repo        repository
	restaurants core.RestaurantReader
}

func NewService(repo repository, restaurants core.RestaurantReader) *Service {
	return &Service{repo: repo, restaurants: restaurants}
}

func (s *Service) authorize(
	ctx context.Context,
	restaurantID int,
	userID string,
) error {

	ok, err := s.restaurants.IsOwner(ctx, restaurantID, userID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrUnauthorized
	}
	return nil
}

func (s *Service) Create(
	ctx context.Context,
	userID string,
	rule *Rule,
) error {

	if err := s.authorize(ctx, rule.RestaurantID, userID); err != nil {
		return err
	}

	if rule.Name == "" {
		return ErrInvalidInput
	}
	switch rule.Kind {
	case KindPercentage:
		if rule.Value <= 0 || rule.Value > 100 {
			return ErrInvalidInput
		}
	case KindFlat:
		if rule.Value <= 0 {
			return ErrInvalidInput
		}
	default:
		return ErrInvalidInput
	}
	for _, d := range rule.Days {
		if d < 0 || d > 6 {
			return ErrInvalidInput
		}
	}
	if rule.StartTime != "" && parseClock(rule.StartTime) < 0 {
		return ErrInvalidInput
	}
	if rule.EndTime != "" && parseClock(rule.EndTime) < 0 {
		return ErrInvalidInput
	}

	return s.repo.Create(ctx, rule)
}

func (s *Service) List(
	ctx context.Context,
	userID string,
	restaurantID int,
) ([]*Rule, error) {

	if err := s.authorize(ctx, restaurantID, userID); err != nil {
		return nil, err
	}
	return s.repo.ListByRestaurant(ctx, restaurantID)
}

func (s *Service) SetActive(
	ctx context.Context,
	userID string,
	restaurantID, ruleID int,
	active bool,
) error {

	if err := s.authorize(ctx, restaurantID, userID); err != nil {
		return err
	}
	return s.repo.SetActive(ctx, restaurantID, ruleID, active)
}

func (s *Service) Delete(
	ctx context.Context,
	userID string,
	restaurantID, ruleID int,
) error {

	if err := s.authorize(ctx, restaurantID, userID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, restaurantID, ruleID)
}
