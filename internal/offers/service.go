package offers

import (
	"context"
	"errors"

	"qrmenu/internal/ai"
	"qrmenu/internal/core"
)

var (
	ErrUnauthorized = errors.New("restaurant does not belong to user")
	ErrInvalidInput = errors.New("invalid input")
)

type repository interface {
	Create(ctx context.Context, offer *Offer) error
	ListByRestaurant(ctx context.Context, restaurantID int) ([]*Offer, error)
	ListActive(ctx context.Context, restaurantID int) ([]*Offer, error)
	UpdateStatus(ctx context.Context, restaurantID, offerID int, status string) error
	Delete(ctx context.Context, restaurantID, offerID int) error
}

type Service struct {
	repo        repository
	restaurants core.RestaurantReader
	llm         ai.Client
}

func NewService(repo repository, restaurants core.RestaurantReader, llm ai.Client) *Service {
	return &Service{repo: repo, restaurants: restaurants, llm: llm}
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

func validTyp(typ string) bool {
	return typ == TypePercentage || typ == TypeFlat || typ == TypeCombo
}

// --------------------------------------------------
// Create
// --------------------------------------------------
func (s *Service) Create(
	ctx context.Context,
	userID string,
	offer *Offer,
) error {

	if err := s.authorize(ctx, offer.RestaurantID, userID); err != nil {
		return err
	}

	if offer.Title == "" || !validTyp(offer.Type) {
		return ErrInvalidInput
	}
	if offer.Type == TypePercentage && (offer.DiscountValue <= 0 || offer.DiscountValue > 100) {
		return ErrInvalidInput
	}
	if offer.Type == TypeFlat && offer.DiscountValue <= 0 {
		return ErrInvalidInput
	}
	if offer.StartsAt != nil && offer.EndsAt != nil && offer.EndsAt.Before(*offer.StartsAt) {
		return ErrInvalidInput
	}

	if offer.Status == "" {
		offer.Status = StatusDraft
	}

	return s.repo.Create(ctx, offer)
}

// --------------------------------------------------
// List
// --------------------------------------------------
func (s *Service) List(
	ctx context.Context,
	userID string,
	restaurantID int,
) ([]*Offer, error) {

	if err := s.authorize(ctx, restaurantID, userID); err != nil {
		return nil, err
	}
	return s.repo.ListByRestaurant(ctx, restaurantID)
}

// --------------------------------------------------
// Status transitions
// --------------------------------------------------
func (s *Service) SetStatus(
	ctx context.Context,
	userID string,
	restaurantID, offerID int,
	status string,
) error {

	if err := s.authorize(ctx, restaurantID, userID); err != nil {
		return err
	}

	switch status {
	case StatusDraft, StatusActive, StatusScheduled, StatusExpired:
	default:
		return ErrInvalidInput
	}

	return s.repo.UpdateStatus(ctx, restaurantID, offerID, status)
}

// --------------------------------------------------
// AI extraction
// --------------------------------------------------

// ExtractCandidates turns free-form promotion text into draft offers.
// Nothing is persisted, the owner reviews and saves what they want.
func (s *Service) ExtractCandidates(
	ctx context.Context,
	userID string,
	restaurantID int,
	text string,
) ([]*Offer, error) {

	if err := s.authorize(ctx, restaurantID, userID); err != nil {
		return nil, err
	}
	if text == "" {
		return nil, ErrInvalidInput
	}

	extracted, err := ai.ExtractOffers(ctx, s.llm, text)
	if err != nil {
		return nil, err
	}

	candidates := make([]*Offer, 0, len(extracted))
	for _, e := range extracted {
		if e.Title == "" || !validTyp(e.Type) {
			continue
		}
		candidates = append(candidates, &Offer{
			RestaurantID:  restaurantID,
			Title:         e.Title,
			Type:          e.Type,
			Category:      e.Category,
			DiscountValue: e.DiscountValue,
			Status:        StatusDraft,
		})
	}
	return candidates, nil
}

func (s *Service) Delete(
	ctx context.Context,
	userID string,
	restaurantID, offerID int,
) error {

	if err := s.authorize(ctx, restaurantID, userID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, restaurantID, offerID)
}
