package mealgen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vbonduro/pantrychef/internal/domain"
)

const mealShape = `{
    "title": "Creative Meal Name",
    "ingredients": ["[quantity][unit] [ingredient_name]", "[quantity][unit] [ingredient_name]"],
    "calories": estimated_calories_number,
    "protein": estimated_protein_grams,
    "carbs": estimated_carbs_grams,
    "fats": estimated_fats_grams,
    "steps": [
        "[Detailed cooking instruction with specific quantities]",
        "[Another detailed step with specific amounts]"
    ]
}`

// BuildPrompt renders the user prompt asking the model for count meals made
// from items that approach goal. The reply shape is always {"meals": [...]},
// including when count is 1.
func BuildPrompt(items []domain.PantryItem, goal domain.CalorieGoal, count int) string {
	var b strings.Builder

	if count > 1 {
		fmt.Fprintf(&b, "Create %d different meal suggestions using ONLY the available ingredients from the pantry below.\n\n", count)
	} else {
		b.WriteString("Create a meal suggestion using ONLY the available ingredients from the pantry below.\n\n")
	}

	b.WriteString("AVAILABLE PANTRY INGREDIENTS:\n")
	for _, item := range items {
		b.WriteString(pantryLine(item))
		b.WriteByte('\n')
	}

	b.WriteString("\nNUTRITIONAL TARGETS:\n")
	fmt.Fprintf(&b, "- Calories: %s kcal\n", formatNumber(goal.Calories))
	fmt.Fprintf(&b, "- Protein: %s g\n", target(goal.Protein))
	fmt.Fprintf(&b, "- Carbohydrates: %s g\n", target(goal.Carbs))
	fmt.Fprintf(&b, "- Fats: %s g\n", target(goal.Fats))

	b.WriteString("\nIMPORTANT: Use the exact ingredient names and consider their available quantities from the pantry above. ")
	b.WriteString("Create realistic portions that don't exceed what's available.")
	if count > 1 {
		b.WriteString(" Make each meal different and creative.")
	}
	b.WriteString("\n\n")

	if count > 1 {
		fmt.Fprintf(&b, "Please provide %d meal suggestions in the following JSON format, with one object per meal in the \"meals\" array:\n", count)
	} else {
		b.WriteString("Please provide the meal suggestion in the following JSON format, with exactly one object in the \"meals\" array:\n")
	}
	b.WriteString("{\n\"meals\": [\n")
	b.WriteString(mealShape)
	b.WriteString("\n]\n}\n\n")

	b.WriteString("CRITICAL REQUIREMENTS:\n")
	rules := []string{
		`ALWAYS include specific quantities/weights for EVERY ingredient (e.g., "200g Chicken Breast", "150ml Olive Oil")`,
		"Use ONLY ingredients available in the pantry with their available quantities",
		`In cooking steps, specify exact amounts for each ingredient used (e.g., "Cook 150g brown rice", "Add 15ml olive oil")`,
		"Try to meet the nutritional targets as closely as possible",
		"Provide detailed, clear cooking instructions with specific temperatures and times",
	}
	if count > 1 {
		rules = append(rules, "Make each meal different and creative")
	} else {
		rules = append(rules, "Make it a complete, balanced meal", "Be creative but practical")
	}
	rules = append(rules,
		"Return ONLY valid JSON, no additional text",
		"Ensure ingredient quantities don't exceed what's available in the pantry",
	)
	for i, rule := range rules {
		fmt.Fprintf(&b, "%d. %s\n", i+1, rule)
	}

	return b.String()
}

// pantryLine renders "- name: qty unit" plus a nutrition summary per serving
// when calories are known.
func pantryLine(item domain.PantryItem) string {
	line := fmt.Sprintf("- %s: %s %s", item.Name, formatNumber(item.Quantity), item.Unit)
	if item.Calories == nil {
		return line
	}

	size := "serving"
	if item.ServingSize != nil {
		size = formatNumber(*item.ServingSize)
		if item.ServingUnit != nil {
			size += *item.ServingUnit
		}
	}

	return fmt.Sprintf("%s (per %s: %skcal, %sg protein, %sg carbs, %sg fat)",
		line, size,
		formatNumber(*item.Calories),
		optional(item.Protein),
		optional(item.Carbohydrates),
		optional(item.Fats),
	)
}

func target(v *float64) string {
	if v == nil {
		return "flexible"
	}
	return formatNumber(*v)
}

func optional(v *float64) string {
	if v == nil {
		return "?"
	}
	return formatNumber(*v)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
