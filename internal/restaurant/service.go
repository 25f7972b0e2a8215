package restaurant

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// slugify builds the public menu URL segment: lowercased name with a
// short random suffix so two "Cafe Roma"s never collide.
func slugify(name string) string {
	s := strings.ToLower(name)
	s = slugPattern.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")

	suffix := strings.Split(uuid.New().String(), "-")[0]
	if s == "" {
		return suffix
	}
	return s + "-" + suffix
}

func (s *Service) Create(
	ctx context.Context,
	ownerID string,
	restaurant *Restaurant,
) error {

	if restaurant.Name == "" || restaurant.City == "" {
		return errors.New("missing required fields")
	}

	restaurant.OwnerID = ownerID
	restaurant.Slug = slugify(restaurant.Name)

	if restaurant.Currency == "" {
		restaurant.Currency = "USD"
	}

	return s.repo.Create(ctx, restaurant)
}

func (s *Service) ListMine(
	ctx context.Context,
	ownerID string,
) ([]*Restaurant, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

// SetLogo records the uploaded logo URL after an ownership check.
func (s *Service) SetLogo(
	ctx context.Context,
	userID string,
	restaurantID int,
	logoURL string,
) error {

	ok, err := s.repo.IsOwner(ctx, restaurantID, userID)
	if err != nil {
		return err
	}
	if !ok {
		return errors.New("restaurant does not belong to user")
	}

	return s.repo.UpdateLogo(ctx, restaurantID, logoURL)
}

func (s *Service) GetBySlug(
	ctx context.Context,
	slug string,
) (*Restaurant, error) {
	return s.repo.GetBySlug(ctx, slug)
}
