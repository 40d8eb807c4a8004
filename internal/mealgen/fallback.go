package mealgen

import (
	"fmt"
	"strings"

	"github.com/vbonduro/pantrychef/internal/domain"
)

// Macro targets used when the goal leaves them open.
const (
	DefaultProtein = 20
	DefaultCarbs   = 45
	DefaultFats    = 15
)

var defaultIngredients = []string{"rice", "egg", "vegetables"}

// Unconfigured returns count placeholder meals for a generator without a
// model behind it.
func Unconfigured(items []domain.PantryItem, goal domain.CalorieGoal, count int) []domain.MealSuggestion {
	ingredients := placeholderIngredients(items)
	steps := []string{
		"Note: LLM API key not configured. This is a basic suggestion.",
		fmt.Sprintf("Combine %s in a pan.", combineList(ingredients)),
		"Cook on medium heat for 10-15 minutes.",
		"Season to taste and serve hot.",
	}
	return placeholders(0, count, ingredients, goal, steps)
}

// Failure returns count placeholder meals whose first step carries reason.
func Failure(items []domain.PantryItem, goal domain.CalorieGoal, count int, reason string) []domain.MealSuggestion {
	ingredients := placeholderIngredients(items)
	steps := []string{
		fmt.Sprintf("AI generation failed (%s). Here's a basic suggestion:", reason),
		fmt.Sprintf("Combine %s in a large pan.", combineList(ingredients)),
		"Cook on medium heat, stirring occasionally.",
		"Add seasonings and cook until ingredients are tender.",
		"Serve hot and enjoy your meal!",
	}
	return placeholders(0, count, ingredients, goal, steps)
}

// pad tops meals up to count with placeholders numbered after the meals the
// model did return.
func pad(meals []domain.MealSuggestion, items []domain.PantryItem, goal domain.CalorieGoal, count int) []domain.MealSuggestion {
	if len(meals) >= count {
		return meals
	}
	ingredients := placeholderIngredients(items)
	steps := []string{
		fmt.Sprintf("Note: the model returned only %d of %d meals. This is a basic suggestion.", len(meals), count),
		fmt.Sprintf("Combine %s in a pan.", combineList(ingredients)),
		"Cook on medium heat for 10-15 minutes.",
		"Season to taste and serve hot.",
	}
	return append(meals, placeholders(len(meals), count-len(meals), ingredients, goal, steps)...)
}

func placeholders(offset, n int, ingredients []string, goal domain.CalorieGoal, steps []string) []domain.MealSuggestion {
	meals := make([]domain.MealSuggestion, 0, n)
	for i := 0; i < n; i++ {
		meals = append(meals, domain.MealSuggestion{
			Title:       fmt.Sprintf("Simple Pantry Meal %d", offset+i+1),
			Ingredients: append([]string(nil), ingredients...),
			Calories:    goal.Calories,
			Protein:     valueOr(goal.Protein, DefaultProtein),
			Carbs:       valueOr(goal.Carbs, DefaultCarbs),
			Fats:        valueOr(goal.Fats, DefaultFats),
			Steps:       append([]string(nil), steps...),
		})
	}
	return meals
}

// placeholderIngredients picks the first three pantry names, or a default set
// when the pantry is empty.
func placeholderIngredients(items []domain.PantryItem) []string {
	if len(items) == 0 {
		return append([]string(nil), defaultIngredients...)
	}
	n := min(len(items), 3)
	names := make([]string, 0, n)
	for _, item := range items[:n] {
		names = append(names, item.Name)
	}
	return names
}

func combineList(ingredients []string) string {
	return strings.Join(ingredients[:min(len(ingredients), 2)], ", ")
}
