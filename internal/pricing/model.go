package pricing

import "time"

// Rule kinds
const (
	KindPercentage = "PERCENTAGE"
	KindFlat       = "FLAT"
)

// Rule is a scheduled price adjustment, e.g. a weekday happy hour that
// knocks 15% off the Drinks category between 17:00 and 19:00.
type Rule struct {
	ID           int     `json:"id"`
	RestaurantID int     `json:"restaurant_id"`
	Name         string  `json:"name"`
	Kind         string  `json:"kind"` // PERCENTAGE | FLAT
	Value        float64 `json:"value"`
	Category     *string `json:"category,omitempty"` // nil applies to all categories

	// Days holds time.Weekday values (0=Sunday). Empty means every day.
	Days []int `json:"days"`

	// Local wall-clock window, "HH:MM". Empty strings mean all day.
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`

	Active bool `json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
