package public

import (
	"context"
	"time"

	"qrmenu/internal/menu"
	"qrmenu/internal/offers"
	"qrmenu/internal/pricing"
	"qrmenu/internal/restaurant"
)

type restaurantReader interface {
	GetBySlug(ctx context.Context, slug string) (*restaurant.Restaurant, error)
}

type menuReader interface {
	GetTree(ctx context.Context, restaurantID int) (*menu.Tree, error)
}

type offerReader interface {
	ListActive(ctx context.Context, restaurantID int) ([]*offers.Offer, error)
}

type ruleReader interface {
	ListByRestaurant(ctx context.Context, restaurantID int) ([]*pricing.Rule, error)
}

// --------------------------------------------------
// Response shapes
// --------------------------------------------------

// Item carries the list price plus the price after any pricing rules
// in effect right now.
type Item struct {
	menu.Item
	EffectivePrice float64 `json:"effective_price"`
}

type SubCategory struct {
	menu.SubCategory
	Items []Item `json:"items"`
}

type Category struct {
	menu.Category
	SubCategories []SubCategory `json:"sub_categories"`
}

// Menu is everything a diner sees after scanning the QR code.
type Menu struct {
	Restaurant struct {
		Name     string  `json:"name"`
		Slug     string  `json:"slug"`
		City     string  `json:"city"`
		Address  string  `json:"address"`
		Phone    string  `json:"phone"`
		Currency string  `json:"currency"`
		LogoURL  *string `json:"logo_url,omitempty"`
	} `json:"restaurant"`
	Categories []Category      `json:"categories"`
	Offers     []*offers.Offer `json:"offers"`
}

type Service struct {
	restaurants restaurantReader
	menus       menuReader
	offers      offerReader
	rules       ruleReader

	// now is swapped in tests to pin happy-hour windows.
	now func() time.Time
}

func NewService(
	restaurants restaurantReader,
	menus menuReader,
	offerRepo offerReader,
	ruleRepo ruleReader,
) *Service {
	return &Service{
		restaurants: restaurants,
		menus:       menus,
		offers:      offerRepo,
		rules:       ruleRepo,
		now:         time.Now,
	}
}

// GetMenu assembles the public menu for a restaurant slug: the full
// category tree with rule-adjusted prices and any offers currently
// running.
func (s *Service) GetMenu(ctx context.Context, slug string) (*Menu, error) {
	rest, err := s.restaurants.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	tree, err := s.menus.GetTree(ctx, rest.ID)
	if err != nil {
		return nil, err
	}

	active, err := s.offers.ListActive(ctx, rest.ID)
	if err != nil {
		return nil, err
	}
	if active == nil {
		active = []*offers.Offer{}
	}

	rules, err := s.rules.ListByRestaurant(ctx, rest.ID)
	if err != nil {
		return nil, err
	}

	now := s.now()

	out := &Menu{Offers: active, Categories: []Category{}}
	out.Restaurant.Name = rest.Name
	out.Restaurant.Slug = rest.Slug
	out.Restaurant.City = rest.City
	out.Restaurant.Address = rest.Address
	out.Restaurant.Phone = rest.Phone
	out.Restaurant.Currency = rest.Currency
	out.Restaurant.LogoURL = rest.LogoURL

	for _, cat := range tree.Categories {
		pubCat := Category{Category: cat.Category, SubCategories: []SubCategory{}}
		for _, sub := range cat.SubCategories {
			pubSub := SubCategory{SubCategory: sub.SubCategory, Items: []Item{}}
			for _, item := range sub.Items {
				pubSub.Items = append(pubSub.Items, Item{
					Item:           item,
					EffectivePrice: pricing.Apply(item.Price, cat.Name, rules, now),
				})
			}
			pubCat.SubCategories = append(pubCat.SubCategories, pubSub)
		}
		out.Categories = append(out.Categories, pubCat)
	}

	return out, nil
}
