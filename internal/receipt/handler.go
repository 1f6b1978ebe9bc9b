// internal/receipt/handler.go
package receipt

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"brewpos/internal/auth"
)

// Handler serves the receipt history endpoint.
type Handler struct {
	store Store
}

// NewHandler creates a receipt handler.
func NewHandler(store Store) *Handler {
	return &Handler{store: store}
}

// Routes mounts the receipt endpoints on a chi router.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/receipts", h.handleHistory)
}

func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	sess := auth.SessionFromContext(r.Context())
	if sess == nil {
		http.Error(w, "no active session", http.StatusUnauthorized)
		return
	}

	records, err := h.store.History(r.Context(), sess)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	type entry struct {
		ID           string `json:"id"`
		EmployeeName string `json:"employeeName"`
		CustomerName string `json:"customerName"`
		UploadDate   string `json:"uploadDate"`
		Content      string `json:"content"`
	}
	out := make([]entry, 0, len(records))
	for _, rec := range records {
		out = append(out, entry{
			ID:           rec.ID.String(),
			EmployeeName: rec.EmployeeName,
			CustomerName: rec.CustomerName,
			UploadDate:   rec.UploadDate.Format(time.RFC3339),
			Content:      string(rec.Content),
		})
	}
	json.NewEncoder(w).Encode(out)
}
