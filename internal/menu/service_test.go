package menu

import (
	"context"
	"errors"
	"testing"
)

// --------------------------------------------------
// Mock Repository
// --------------------------------------------------

type MockRepository struct {
	categories []*Category
	items      []*Item
	nextID     int
	createErr  error
}

func NewMockRepository() *MockRepository {
	return &MockRepository{nextID: 1}
}

func (m *MockRepository) CreateCategory(_ context.Context, c *Category) error {
	if m.createErr != nil {
		return m.createErr
	}
	c.ID = m.nextID
	m.nextID++
	m.categories = append(m.categories, c)
	return nil
}

func (m *MockRepository) ListCategories(_ context.Context, restaurantID int) ([]*Category, error) {
	var out []*Category
	for _, c := range m.categories {
		if c.RestaurantID == restaurantID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *MockRepository) UpdateCategory(_ context.Context, _ *Category) error { return nil }

func (m *MockRepository) DeleteCategory(_ context.Context, _, _ int) error { return nil }

func (m *MockRepository) CreateSubCategory(_ context.Context, s *SubCategory) error {
	s.ID = m.nextID
	m.nextID++
	return nil
}

func (m *MockRepository) ListSubCategories(_ context.Context, _ int) ([]*SubCategory, error) {
	return nil, nil
}

func (m *MockRepository) UpdateSubCategory(_ context.Context, _ *SubCategory) error { return nil }

func (m *MockRepository) DeleteSubCategory(_ context.Context, _ int) error { return nil }

func (m *MockRepository) CreateItem(_ context.Context, i *Item) error {
	i.ID = m.nextID
	m.nextID++
	m.items = append(m.items, i)
	return nil
}

func (m *MockRepository) ListItems(_ context.Context, _ int) ([]*Item, error) { return nil, nil }

func (m *MockRepository) UpdateItem(_ context.Context, _ *Item) error { return nil }

func (m *MockRepository) DeleteItem(_ context.Context, _ int) error { return nil }

func (m *MockRepository) GetTree(_ context.Context, restaurantID int) (*Tree, error) {
	return &Tree{RestaurantID: restaurantID, Categories: []TreeCategory{}}, nil
}

// --------------------------------------------------
// Mock RestaurantReader
// --------------------------------------------------

type mockRestaurants struct {
	owner string
}

func (m *mockRestaurants) IsOwner(_ context.Context, _ int, userID string) (bool, error) {
	return userID == m.owner, nil
}

func (m *mockRestaurants) FirstByOwner(_ context.Context, _ string) (int, error) {
	return 1, nil
}

// --------------------------------------------------
// TESTS
// --------------------------------------------------

func TestCreateCategory_Success(t *testing.T) {
	repo := NewMockRepository()
	service := NewService(repo, &mockRestaurants{owner: "owner-1"})

	category := &Category{RestaurantID: 1, Name: "Food"}
	err := service.CreateCategory(context.Background(), "owner-1", category)

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if category.ID == 0 {
		t.Error("expected ID to be set")
	}
}

func TestCreateCategory_Unauthorized(t *testing.T) {
	repo := NewMockRepository()
	service := NewService(repo, &mockRestaurants{owner: "owner-1"})

	err := service.CreateCategory(
		context.Background(), "intruder", &Category{RestaurantID: 1, Name: "Food"},
	)

	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if len(repo.categories) != 0 {
		t.Error("expected no category created")
	}
}

func TestCreateCategory_MissingName(t *testing.T) {
	repo := NewMockRepository()
	service := NewService(repo, &mockRestaurants{owner: "owner-1"})

	err := service.CreateCategory(
		context.Background(), "owner-1", &Category{RestaurantID: 1},
	)

	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCreateItem_Defaults(t *testing.T) {
	repo := NewMockRepository()
	service := NewService(repo, &mockRestaurants{owner: "owner-1"})

	item := &Item{SubCategoryID: 1, Name: "Soup", Price: 5}
	err := service.CreateItem(context.Background(), "owner-1", 1, item)

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if item.Currency != "USD" {
		t.Errorf("expected currency USD, got %s", item.Currency)
	}
	if item.AvailabilityStatus != "AVAILABLE" {
		t.Errorf("expected AVAILABLE, got %s", item.AvailabilityStatus)
	}
	if item.Tags == nil || item.Allergens == nil {
		t.Error("expected tags and allergens to be initialized")
	}
}

func TestCreateItem_NegativePriceRejected(t *testing.T) {
	repo := NewMockRepository()
	service := NewService(repo, &mockRestaurants{owner: "owner-1"})

	err := service.CreateItem(
		context.Background(), "owner-1", 1,
		&Item{SubCategoryID: 1, Name: "Soup", Price: -1},
	)

	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
