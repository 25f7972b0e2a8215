package offers

import "time"

// Offer types
const (
	TypePercentage = "PERCENTAGE"
	TypeFlat       = "FLAT"
	TypeCombo      = "COMBO"
)

// Offer statuses
const (
	StatusDraft     = "DRAFT"
	StatusActive    = "ACTIVE"
	StatusScheduled = "SCHEDULED"
	StatusExpired   = "EXPIRED"
)

// Offer is a promotional offer shown on the public menu page while its
// window is open.
type Offer struct {
	ID           int     `json:"id"`
	RestaurantID int     `json:"restaurant_id"`
	Title        string  `json:"title"`
	Description  *string `json:"description,omitempty"`

	Type          string  `json:"type"`               // PERCENTAGE | FLAT | COMBO
	Category      *string `json:"category,omitempty"` // optional category scope
	DiscountValue float64 `json:"discount_value"`

	StartsAt *time.Time `json:"starts_at,omitempty"`
	EndsAt   *time.Time `json:"ends_at,omitempty"`

	Status string `json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Active reports whether the offer should appear publicly at t.
func (o *Offer) Active(t time.Time) bool {
	if o.Status != StatusActive {
		return false
	}
	if o.StartsAt != nil && t.Before(*o.StartsAt) {
		return false
	}
	if o.EndsAt != nil && t.After(*o.EndsAt) {
		return false
	}
	return true
}
