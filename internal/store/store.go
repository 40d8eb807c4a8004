package store

import (
	"context"
	"errors"

	"github.com/vbonduro/pantrychef/internal/domain"
)

// ErrNotFound is returned by Update when no item carries the requested name.
var ErrNotFound = errors.New("item not found")

// PantryStore is an ordered collection of pantry items addressed by name.
//
// Names are lookup keys, not identities: Add never deduplicates, Update
// replaces only the first item with a matching name (keeping its position),
// and Delete removes every item with a matching name.
type PantryStore interface {
	List(ctx context.Context) ([]domain.PantryItem, error)
	Add(ctx context.Context, item domain.PantryItem) (domain.PantryItem, error)
	Update(ctx context.Context, name string, item domain.PantryItem) (domain.PantryItem, error)
	Delete(ctx context.Context, name string) error
}

// Seed appends items to s in order.
func Seed(ctx context.Context, s PantryStore, items []domain.PantryItem) error {
	for _, item := range items {
		if _, err := s.Add(ctx, item); err != nil {
			return err
		}
	}
	return nil
}

func ptr[T any](v T) *T { return &v }

func per100g(calories, protein, carbs, sugars, fats, satFat, fiber, sodium float64) domain.PantryItem {
	return domain.PantryItem{
		Calories:      ptr(calories),
		Protein:       ptr(protein),
		Carbohydrates: ptr(carbs),
		Sugars:        ptr(sugars),
		Fats:          ptr(fats),
		SaturatedFat:  ptr(satFat),
		Fiber:         ptr(fiber),
		Sodium:        ptr(sodium),
		ServingSize:   ptr(100.0),
		ServingUnit:   ptr("g"),
	}
}

func seedItem(name string, quantity float64, unit string, nutrition domain.PantryItem) domain.PantryItem {
	nutrition.Name = name
	nutrition.Quantity = quantity
	nutrition.Unit = unit
	return nutrition
}

// SeedItems returns the pantry every process starts with.
func SeedItems() []domain.PantryItem {
	oliveOil := per100g(884, 0, 0, 0, 100, 13.8, 0, 2)
	oliveOil.ServingUnit = ptr("ml")

	return []domain.PantryItem{
		seedItem("Chicken Breast", 2, "pieces", per100g(165, 31, 0, 0, 3.6, 1, 0, 74)),
		seedItem("Brown Rice", 500, "g", per100g(112, 2.6, 23, 0.4, 0.9, 0.2, 1.8, 5)),
		seedItem("Broccoli", 300, "g", per100g(34, 2.8, 7, 1.5, 0.4, 0.1, 2.6, 33)),
		seedItem("Olive Oil", 250, "ml", oliveOil),
		seedItem("Eggs", 6, "pieces", per100g(155, 13, 1.1, 1.1, 11, 3.3, 0, 124)),
		seedItem("Sweet Potato", 3, "pieces", per100g(86, 1.6, 20, 4.2, 0.1, 0, 3, 5)),
		seedItem("Salmon Fillet", 1, "pieces", per100g(208, 25, 0, 0, 12, 3, 0, 59)),
		seedItem("Spinach", 200, "g", per100g(23, 2.9, 3.6, 0.4, 0.4, 0.1, 2.2, 79)),
	}
}
