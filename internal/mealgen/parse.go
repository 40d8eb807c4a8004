package mealgen

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/vbonduro/pantrychef/internal/domain"
)

const defaultTitle = "AI-Generated Meal"

// ErrNoMeals is returned when the reply decodes but carries no meals.
var ErrNoMeals = errors.New("response contains no meals")

// rawMeal mirrors one model meal. Pointers and nil slices mark absent fields.
type rawMeal struct {
	Title       *string  `json:"title"`
	Ingredients []string `json:"ingredients"`
	Calories    *float64 `json:"calories"`
	Protein     *float64 `json:"protein"`
	Carbs       *float64 `json:"carbs"`
	Fats        *float64 `json:"fats"`
	Steps       []string `json:"steps"`
}

type rawReply struct {
	Meals []rawMeal `json:"meals"`
}

// ParseMeals decodes a model reply of the form {"meals": [...]} and maps each
// entry onto domain.MealSuggestion, filling absent fields from goal and the
// package defaults.
func ParseMeals(raw string, goal domain.CalorieGoal) ([]domain.MealSuggestion, error) {
	var reply rawReply
	if err := json.Unmarshal([]byte(stripFence(raw)), &reply); err != nil {
		return nil, fmt.Errorf("failed to decode meals: %w", err)
	}
	if len(reply.Meals) == 0 {
		return nil, ErrNoMeals
	}

	meals := make([]domain.MealSuggestion, 0, len(reply.Meals))
	for _, m := range reply.Meals {
		meals = append(meals, m.suggestion(goal))
	}
	return meals, nil
}

func (m rawMeal) suggestion(goal domain.CalorieGoal) domain.MealSuggestion {
	title := defaultTitle
	if m.Title != nil {
		title = *m.Title
	}
	return domain.MealSuggestion{
		Title:       title,
		Ingredients: orEmpty(m.Ingredients),
		Calories:    valueOr(m.Calories, goal.Calories),
		Protein:     valueOr(m.Protein, valueOr(goal.Protein, DefaultProtein)),
		Carbs:       valueOr(m.Carbs, valueOr(goal.Carbs, DefaultCarbs)),
		Fats:        valueOr(m.Fats, valueOr(goal.Fats, DefaultFats)),
		Steps:       orEmpty(m.Steps),
	}
}

// stripFence removes surrounding whitespace and a markdown code fence such as
// ```json ... ``` that chat models like to wrap JSON in.
func stripFence(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	} else {
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

func valueOr(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
