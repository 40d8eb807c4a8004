package domain

// DefaultServingUnit is applied to pantry items submitted without a serving unit.
const DefaultServingUnit = "g"

// PantryItem is one ingredient on hand. Nutrition fields describe a single
// serving of ServingSize ServingUnit; nil means unknown, not zero.
type PantryItem struct {
	Name          string   `json:"name"`
	Quantity      float64  `json:"quantity"`
	Unit          string   `json:"unit"`
	Calories      *float64 `json:"calories"`
	Protein       *float64 `json:"protein"`
	Carbohydrates *float64 `json:"carbohydrates"`
	Sugars        *float64 `json:"sugars"`
	Fats          *float64 `json:"fats"`
	SaturatedFat  *float64 `json:"saturated_fat"`
	Fiber         *float64 `json:"fiber"`
	Sodium        *float64 `json:"sodium"`
	ServingSize   *float64 `json:"serving_size"`
	ServingUnit   *string  `json:"serving_unit"`
}

// CalorieGoal is the caller's nutrition target for a generation request.
type CalorieGoal struct {
	Calories float64  `json:"calories"`
	Protein  *float64 `json:"protein"`
	Carbs    *float64 `json:"carbs"`
	Fats     *float64 `json:"fats"`
}

type MealSuggestion struct {
	Title       string   `json:"title"`
	Ingredients []string `json:"ingredients"`
	Calories    float64  `json:"calories"`
	Protein     float64  `json:"protein"`
	Carbs       float64  `json:"carbs"`
	Fats        float64  `json:"fats"`
	Steps       []string `json:"steps"`
}

type MultipleMealSuggestions struct {
	Meals []MealSuggestion `json:"meals"`
}
