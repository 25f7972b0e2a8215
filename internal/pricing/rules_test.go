package pricing

import (
	"testing"
	"time"
)

func strPtr(s string) *string { return &s }

// Tuesday 2026-03-10 18:30 local.
var tuesdayEvening = time.Date(2026, 3, 10, 18, 30, 0, 0, time.Local)

func TestRuleMatches(t *testing.T) {
	cases := []struct {
		name     string
		rule     Rule
		category string
		want     bool
	}{
		{
			"active all day all categories",
			Rule{Active: true, Kind: KindFlat, Value: 1},
			"Drinks", true,
		},
		{
			"inactive never matches",
			Rule{Active: false, Kind: KindFlat, Value: 1},
			"Drinks", false,
		},
		{
			"category scoped match",
			Rule{Active: true, Kind: KindFlat, Value: 1, Category: strPtr("Drinks")},
			"Drinks", true,
		},
		{
			"category scoped miss",
			Rule{Active: true, Kind: KindFlat, Value: 1, Category: strPtr("Drinks")},
			"Mains", false,
		},
		{
			"weekday match",
			Rule{Active: true, Kind: KindFlat, Value: 1, Days: []int{int(time.Tuesday)}},
			"Drinks", true,
		},
		{
			"weekday miss",
			Rule{Active: true, Kind: KindFlat, Value: 1, Days: []int{int(time.Saturday), int(time.Sunday)}},
			"Drinks", false,
		},
		{
			"inside happy hour",
			Rule{Active: true, Kind: KindFlat, Value: 1, StartTime: "17:00", EndTime: "19:00"},
			"Drinks", true,
		},
		{
			"before happy hour",
			Rule{Active: true, Kind: KindFlat, Value: 1, StartTime: "19:00", EndTime: "21:00"},
			"Drinks", false,
		},
		{
			"end bound is exclusive",
			Rule{Active: true, Kind: KindFlat, Value: 1, StartTime: "17:00", EndTime: "18:30"},
			"Drinks", false,
		},
		{
			"malformed times treated as open",
			Rule{Active: true, Kind: KindFlat, Value: 1, StartTime: "soon", EndTime: "later"},
			"Drinks", true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.rule.Matches(tc.category, tuesdayEvening); got != tc.want {
				t.Errorf("Matches() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestRuleAdjust(t *testing.T) {
	percentage := Rule{Kind: KindPercentage, Value: 20}
	if got := percentage.Adjust(10); got != 8 {
		t.Errorf("20%% off 10 = %v, want 8", got)
	}

	flat := Rule{Kind: KindFlat, Value: 3}
	if got := flat.Adjust(10); got != 7 {
		t.Errorf("3 off 10 = %v, want 7", got)
	}

	if got := flat.Adjust(2); got != 0 {
		t.Errorf("price floored at zero, got %v", got)
	}
}

func TestApplyStacksRulesInOrder(t *testing.T) {
	rules := []*Rule{
		{Active: true, Kind: KindPercentage, Value: 50},
		{Active: true, Kind: KindFlat, Value: 2},
	}

	// 50% off 20 is 10, then 2 off is 8.
	if got := Apply(20, "Drinks", rules, tuesdayEvening); got != 8 {
		t.Errorf("Apply() = %v, want 8", got)
	}
}

func TestApplySkipsNonMatching(t *testing.T) {
	rules := []*Rule{
		{Active: true, Kind: KindPercentage, Value: 50, Category: strPtr("Desserts")},
		{Active: false, Kind: KindFlat, Value: 5},
	}

	if got := Apply(20, "Drinks", rules, tuesdayEvening); got != 20 {
		t.Errorf("Apply() = %v, want unchanged 20", got)
	}
}
