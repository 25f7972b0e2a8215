package qrcode

import (
	"context"
	"errors"
	"fmt"
)

var ErrUnauthorized = errors.New("restaurant does not belong to user")

type restaurantDirectory interface {
	IsOwner(ctx context.Context, restaurantID int, userID string) (bool, error)
	SlugByID(ctx context.Context, restaurantID int) (string, error)
}

type uploader interface {
	UploadBytes(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

type repository interface {
	Upsert(ctx context.Context, code *Code) error
	GetByRestaurant(ctx context.Context, restaurantID int) (*Code, error)
}

type Service struct {
	repo        repository
	restaurants restaurantDirectory
	uploader    uploader
	baseURL     string
}

func NewService(
	repo repository,
	restaurants restaurantDirectory,
	uploader uploader,
	baseURL string,
) *Service {
	return &Service{
		repo:        repo,
		restaurants: restaurants,
		uploader:    uploader,
		baseURL:     baseURL,
	}
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

// Generate renders the restaurant's menu QR, stores the PNG, and
// records the resulting URLs. Safe to call again after a slug change.
func (s *Service) Generate(
	ctx context.Context,
	userID string,
	restaurantID int,
) (*Code, error) {

	if err := s.authorize(ctx, restaurantID, userID); err != nil {
		return nil, err
	}

	slug, err := s.restaurants.SlugByID(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	png, err := GeneratePNG(s.baseURL, slug)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("qr/%d.png", restaurantID)
	imageURL, err := s.uploader.UploadBytes(ctx, key, png, "image/png")
	if err != nil {
		return nil, err
	}

	code := &Code{
		RestaurantID: restaurantID,
		MenuURL:      MenuURL(s.baseURL, slug),
		ImageURL:     imageURL,
	}
	if err := s.repo.Upsert(ctx, code); err != nil {
		return nil, err
	}

	return code, nil
}

func (s *Service) Get(
	ctx context.Context,
	userID string,
	restaurantID int,
) (*Code, error) {

	if err := s.authorize(ctx, restaurantID, userID); err != nil {
		return nil, err
	}
	return s.repo.GetByRestaurant(ctx, restaurantID)
}
