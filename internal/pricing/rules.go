package pricing

import (
	"strconv"
	"strings"
	"time"
)

// parseClock converts "HH:MM" to minutes since midnight. Returns -1 on
// malformed input so the caller can treat the bound as open.
func parseClock(s string) int {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return -1
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return -1
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return -1
	}
	return h*60 + m
}

// Matches reports whether the rule applies to the given category at t.
func (r *Rule) Matches(category string, t time.Time) bool {
	if !r.Active {
		return false
	}
	if r.Category != nil && *r.Category != category {
		return false
	}

	if len(r.Days) > 0 {
		day := int(t.Weekday())
		found := false
		for _, d := range r.Days {
			if d == day {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	minute := t.Hour()*60 + t.Minute()
	if start := parseClock(r.StartTime); start >= 0 && minute < start {
		return false
	}
	if end := parseClock(r.EndTime); end >= 0 && minute >= end {
		return false
	}
	return true
}

// Adjust returns the price after applying the rule. Prices never go
// below zero.
func (r *Rule) Adjust(price float64) float64 {
	switch r.Kind {
	case KindPercentage:
		price = price * (1 - r.Value/100)
	case KindFlat:
		price = price - r.Value
	}
	if price < 0 {
		return 0
	}
	return price
}

// Apply runs every matching rule against the price in order. Rules
// stack: a percentage rule followed by a flat rule discounts the
// already reduced price.
func Apply(price float64, category string, rules []*Rule, at time.Time) float64 {
	for _, r := range rules {
		if r.Matches(category, at) {
			price = r.Adjust(price)
		}
	}
	return price
}
