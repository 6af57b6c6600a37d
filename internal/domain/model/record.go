// Package model contains domain models passed between layers.
package model

import (
	"fmt"
	"math"
	"time"
)

// Category identifies one of the four top-level footprint domains.
type Category string

// The closed set of categories. No other values are valid.
const (
	CategoryHousehold Category = "Household"
	CategoryTransport Category = "Transport"
	CategoryCar       Category = "Car"
	CategoryFood      Category = "Food"
)

// Categories returns all known categories in display order.
func Categories() []Category {
	return []Category{CategoryHousehold, CategoryTransport, CategoryCar, CategoryFood}
}

// Valid reports whether c is a member of the closed category set.
func (c Category) Valid() bool {
	switch c {
	case CategoryHousehold, CategoryTransport, CategoryCar, CategoryFood:
		return true
	}
	return false
}

// ParseCategory converts a string into a Category.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("unknown category %q: %w", s, ErrUnknownCategory)
	}
	return c, nil
}

// Record represents one computed emission observation. Value is in metric
// tons of CO2-equivalent, rounded to two decimals at creation time.
// Records are immutable once created.
type Record struct {
	Category  Category
	Value     float64
	Timestamp time.Time
}

// NewRecord builds a record, rounding value to two decimals. The rounded
// value is what gets classified and stored downstream.
func NewRecord(c Category, value float64, ts time.Time) Record {
	return Record{Category: c, Value: Round2(value), Timestamp: ts}
}

// Round2 rounds v to two decimal places, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
