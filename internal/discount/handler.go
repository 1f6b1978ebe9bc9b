// internal/discount/handler.go
package discount

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler serves the discount selection endpoint.
type Handler struct {
	service Service
}

// NewHandler creates a discount handler.
func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Routes mounts the discount endpoints on a chi router.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/discounts", h.handleActiveDiscounts)
}

// handleActiveDiscounts returns the selectable discounts: None first, then
// the stored active discounts, then Other.
func (h *Handler) handleActiveDiscounts(w http.ResponseWriter, r *http.Request) {
	active, err := h.service.ActiveDiscounts(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	selectable := make([]Discount, 0, len(active)+2)
	selectable = append(selectable, None)
	selectable = append(selectable, active...)
	selectable = append(selectable, Other)
	json.NewEncoder(w).Encode(selectable)
}
