package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vbonduro/pantrychef/internal/domain"
	"github.com/vbonduro/pantrychef/internal/mealgen"
	"github.com/vbonduro/pantrychef/internal/store"
)

// MealsPerRequest is the number of meals returned by GenerateMeals.
const MealsPerRequest = 3

// pantryRepository is the subset of store.PantryStore that PantryService requires.
type pantryRepository interface {
	List(ctx context.Context) ([]domain.PantryItem, error)
	Add(ctx context.Context, item domain.PantryItem) (domain.PantryItem, error)
	Update(ctx context.Context, name string, item domain.PantryItem) (domain.PantryItem, error)
	Delete(ctx context.Context, name string) error
}

// mealGenerator is the subset of mealgen.Generator that PantryService requires.
type mealGenerator interface {
	Generate(ctx context.Context, items []domain.PantryItem, goal domain.CalorieGoal, count int) mealgen.Result
	GenerateOne(ctx context.Context, items []domain.PantryItem, goal domain.CalorieGoal) mealgen.Result
}

type sizeRecorder interface {
	PantrySize(n int)
}

type PantryService struct {
	pantry    pantryRepository
	generator mealGenerator
	sizes     sizeRecorder
	logger    *slog.Logger
}

// NewPantryService wires the pantry and generator together. sizes may be nil.
func NewPantryService(pantry pantryRepository, generator mealGenerator, sizes sizeRecorder, logger *slog.Logger) *PantryService {
	return &PantryService{
		pantry:    pantry,
		generator: generator,
		sizes:     sizes,
		logger:    logger,
	}
}

// Seed appends items to the pantry, used once at startup.
func (s *PantryService) Seed(ctx context.Context, items []domain.PantryItem) error {
	if err := store.Seed(ctx, s.pantry, items); err != nil {
		return fmt.Errorf("failed to seed pantry: %w", err)
	}
	s.refreshSize(ctx)
	s.logger.Info("pantry seeded", "items", len(items))
	return nil
}

func (s *PantryService) ListItems(ctx context.Context) ([]domain.PantryItem, error) {
	return s.pantry.List(ctx)
}

func (s *PantryService) AddItem(ctx context.Context, item domain.PantryItem) (domain.PantryItem, error) {
	added, err := s.pantry.Add(ctx, withDefaults(item))
	if err != nil {
		return domain.PantryItem{}, err
	}
	s.refreshSize(ctx)
	return added, nil
}

// UpdateItem replaces the first item called name. It returns store.ErrNotFound
// when there is none.
func (s *PantryService) UpdateItem(ctx context.Context, name string, item domain.PantryItem) (domain.PantryItem, error) {
	return s.pantry.Update(ctx, name, withDefaults(item))
}

// DeleteItem removes every item called name. Deleting a missing name is not an error.
func (s *PantryService) DeleteItem(ctx context.Context, name string) error {
	if err := s.pantry.Delete(ctx, name); err != nil {
		return err
	}
	s.refreshSize(ctx)
	return nil
}

// GenerateMeals suggests MealsPerRequest meals from the current pantry. Only
// a failure to read the pantry is returned as an error.
func (s *PantryService) GenerateMeals(ctx context.Context, goal domain.CalorieGoal) (mealgen.Result, error) {
	items, err := s.pantry.List(ctx)
	if err != nil {
		return mealgen.Result{}, fmt.Errorf("failed to read pantry: %w", err)
	}
	return s.generator.Generate(ctx, items, goal, MealsPerRequest), nil
}

// SuggestMeal is the single-meal variant of GenerateMeals.
func (s *PantryService) SuggestMeal(ctx context.Context, goal domain.CalorieGoal) (mealgen.Result, error) {
	items, err := s.pantry.List(ctx)
	if err != nil {
		return mealgen.Result{}, fmt.Errorf("failed to read pantry: %w", err)
	}
	return s.generator.GenerateOne(ctx, items, goal), nil
}

func (s *PantryService) refreshSize(ctx context.Context) {
	if s.sizes == nil {
		return
	}
	items, err := s.pantry.List(ctx)
	if err != nil {
		s.logger.Warn("failed to count pantry items", "error", err)
		return
	}
	s.sizes.PantrySize(len(items))
}

func withDefaults(item domain.PantryItem) domain.PantryItem {
	if item.ServingUnit == nil {
		unit := domain.DefaultServingUnit
		item.ServingUnit = &unit
	}
	return item
}
