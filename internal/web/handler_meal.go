package web

import (
	"net/http"

	"github.com/vbonduro/pantrychef/internal/domain"
)

// outcomeHeader reports which generation path produced the meals.
const outcomeHeader = "X-Meal-Outcome"

type calorieGoalRequest struct {
	Calories *float64 `json:"calories" validate:"required"`
	Protein  *float64 `json:"protein"`
	Carbs    *float64 `json:"carbs"`
	Fats     *float64 `json:"fats"`
}

func (c calorieGoalRequest) goal() domain.CalorieGoal {
	return domain.CalorieGoal{
		Calories: *c.Calories,
		Protein:  c.Protein,
		Carbs:    c.Carbs,
		Fats:     c.Fats,
	}
}

func (s *Server) handleGenerateMeals(w http.ResponseWriter, r *http.Request) {
	var req calorieGoalRequest
	if err := s.decodeBody(w, r, &req); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	res, err := s.service.GenerateMeals(r.Context(), req.goal())
	if err != nil {
		s.internalError(w, r, "generate meals", err)
		return
	}
	w.Header().Set(outcomeHeader, string(res.Outcome))
	writeJSON(w, http.StatusOK, domain.MultipleMealSuggestions{Meals: res.Meals})
}

func (s *Server) handleSuggestMeal(w http.ResponseWriter, r *http.Request) {
	var req calorieGoalRequest
	if err := s.decodeBody(w, r, &req); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	res, err := s.service.SuggestMeal(r.Context(), req.goal())
	if err != nil {
		s.internalError(w, r, "suggest meal", err)
		return
	}
	w.Header().Set(outcomeHeader, string(res.Outcome))
	writeJSON(w, http.StatusOK, res.Meals[0])
}
