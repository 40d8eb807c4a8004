package web

import (
	"errors"
	"net/http"

	"github.com/vbonduro/pantrychef/internal/domain"
	"github.com/vbonduro/pantrychef/internal/store"
)

// pantryItemRequest is the wire form of a pantry item. Pointers let the
// validator tell a missing field from a zero value.
type pantryItemRequest struct {
	Name          *string  `json:"name" validate:"required"`
	Quantity      *float64 `json:"quantity" validate:"required"`
	Unit          *string  `json:"unit" validate:"required"`
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

func (p pantryItemRequest) item() domain.PantryItem {
	return domain.PantryItem{
		Name:          *p.Name,
		Quantity:      *p.Quantity,
		Unit:          *p.Unit,
		Calories:      p.Calories,
		Protein:       p.Protein,
		Carbohydrates: p.Carbohydrates,
		Sugars:        p.Sugars,
		Fats:          p.Fats,
		SaturatedFat:  p.SaturatedFat,
		Fiber:         p.Fiber,
		Sodium:        p.Sodium,
		ServingSize:   p.ServingSize,
		ServingUnit:   p.ServingUnit,
	}
}

func (s *Server) handleListPantry(w http.ResponseWriter, r *http.Request) {
	items, err := s.service.ListItems(r.Context())
	if err != nil {
		s.internalError(w, r, "list pantry", err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleAddPantryItem(w http.ResponseWriter, r *http.Request) {
	var req pantryItemRequest
	if err := s.decodeBody(w, r, &req); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	item, err := s.service.AddItem(r.Context(), req.item())
	if err != nil {
		s.internalError(w, r, "add pantry item", err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (s *Server) handleUpdatePantryItem(w http.ResponseWriter, r *http.Request) {
	var req pantryItemRequest
	if err := s.decodeBody(w, r, &req); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	item, err := s.service.UpdateItem(r.Context(), r.PathValue("item_name"), req.item())
	if errors.Is(err, store.ErrNotFound) {
		writeDetail(w, http.StatusNotFound, "Item not found")
		return
	}
	if err != nil {
		s.internalError(w, r, "update pantry item", err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (s *Server) handleDeletePantryItem(w http.ResponseWriter, r *http.Request) {
	if err := s.service.DeleteItem(r.Context(), r.PathValue("item_name")); err != nil {
		s.internalError(w, r, "delete pantry item", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (s *Server) internalError(w http.ResponseWriter, r *http.Request, op string, err error) {
	s.logger.Error(op+" failed", "error", err, "request_id", RequestID(r.Context()))
	writeDetail(w, http.StatusInternalServerError, "internal error")
}
