package mealgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vbonduro/pantrychef/internal/domain"
)

const twoMeals = `{"meals":[
  {"title":"Salmon Bowl","ingredients":["150g Salmon Fillet","100g Brown Rice"],"calories":520,"protein":38,"carbs":40,"fats":18,"steps":["Bake 150g salmon at 200C for 12 minutes."]},
  {"title":"Egg Scramble","ingredients":["3 pieces Eggs"],"calories":480,"protein":30,"carbs":5,"fats":33,"steps":["Whisk 3 eggs."]}
]}`

func TestParseMeals(t *testing.T) {
	meals, err := ParseMeals(twoMeals, domain.CalorieGoal{Calories: 500})
	require.NoError(t, err)
	require.Len(t, meals, 2)

	assert.Equal(t, domain.MealSuggestion{
		Title:       "Salmon Bowl",
		Ingredients: []string{"150g Salmon Fillet", "100g Brown Rice"},
		Calories:    520,
		Protein:     38,
		Carbs:       40,
		Fats:        18,
		Steps:       []string{"Bake 150g salmon at 200C for 12 minutes."},
	}, meals[0])
	assert.Equal(t, "Egg Scramble", meals[1].Title)
}

func TestParseMealsCodeFence(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "json fence", raw: "```json\n" + twoMeals + "\n```"},
		{name: "bare fence", raw: "```\n" + twoMeals + "\n```\n"},
		{name: "surrounding whitespace", raw: "\n\n  " + twoMeals + "  \n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meals, err := ParseMeals(tt.raw, domain.CalorieGoal{Calories: 500})
			require.NoError(t, err)
			assert.Len(t, meals, 2)
		})
	}
}

func TestParseMealsDefaults(t *testing.T) {
	tests := []struct {
		name     string
		goal     domain.CalorieGoal
		expected domain.MealSuggestion
	}{
		{
			name: "open goal uses package defaults",
			goal: domain.CalorieGoal{Calories: 450},
			expected: domain.MealSuggestion{
				Title:       defaultTitle,
				Ingredients: []string{},
				Calories:    450,
				Protein:     DefaultProtein,
				Carbs:       DefaultCarbs,
				Fats:        DefaultFats,
				Steps:       []string{},
			},
		},
		{
			name: "goal targets win over defaults",
			goal: domain.CalorieGoal{Calories: 700, Protein: num(50), Carbs: num(60), Fats: num(25)},
			expected: domain.MealSuggestion{
				Title:       defaultTitle,
				Ingredients: []string{},
				Calories:    700,
				Protein:     50,
				Carbs:       60,
				Fats:        25,
				Steps:       []string{},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meals, err := ParseMeals(`{"meals":[{}]}`, tt.goal)
			require.NoError(t, err)
			require.Len(t, meals, 1)
			assert.Equal(t, tt.expected, meals[0])
		})
	}
}

func TestParseMealsNullLists(t *testing.T) {
	meals, err := ParseMeals(`{"meals":[{"title":"Plain","ingredients":null,"steps":null,"calories":300}]}`, domain.CalorieGoal{Calories: 500})
	require.NoError(t, err)
	require.Len(t, meals, 1)

	assert.Equal(t, "Plain", meals[0].Title)
	assert.Equal(t, 300.0, meals[0].Calories)
	assert.NotNil(t, meals[0].Ingredients)
	assert.Empty(t, meals[0].Ingredients)
	assert.NotNil(t, meals[0].Steps)
	assert.Empty(t, meals[0].Steps)
}

func TestParseMealsErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "plain text", raw: "Sure! Here is a tasty meal."},
		{name: "empty", raw: ""},
		{name: "truncated", raw: `{"meals":[{"title":"Half`},
		{name: "missing meals", raw: `{"title":"Single Meal"}`},
		{name: "empty meals", raw: `{"meals":[]}`},
		{name: "meals not an array", raw: `{"meals":"none"}`},
		{name: "calories as string", raw: `{"meals":[{"title":"X","calories":"lots"}]}`},
		{name: "top level array", raw: `[{"title":"X"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meals, err := ParseMeals(tt.raw, domain.CalorieGoal{Calories: 500})
			assert.Error(t, err)
			assert.Nil(t, meals)
		})
	}
}

func TestParseMealsNoMealsSentinel(t *testing.T) {
	_, err := ParseMeals(`{"meals":[]}`, domain.CalorieGoal{Calories: 500})
	assert.ErrorIs(t, err, ErrNoMeals)
}
