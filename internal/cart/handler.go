// internal/cart/handler.go
package cart

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"brewpos/internal/catalog"
)

// Handler serves the cart endpoints for the active order.
type Handler struct {
	cart    Cart
	catalog catalog.Catalog
}

// NewHandler creates a cart handler.
func NewHandler(cart Cart, cat catalog.Catalog) *Handler {
	return &Handler{cart: cart, catalog: cat}
}

// Routes mounts the cart endpoints on a chi router.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/cart", h.handleGetCart)
	r.Post("/cart/items", h.handleAddItem)
	r.Delete("/cart/items/{itemID}", h.handleRemoveItem)
	r.Delete("/cart", h.handleClear)
}

func (h *Handler) handleGetCart(w http.ResponseWriter, r *http.Request) {
	items := h.cart.Items()
	if items == nil {
		items = []CartItem{}
	}
	json.NewEncoder(w).Encode(items)
}

func (h *Handler) handleAddItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ItemID   int `json:"itemId"`
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	item, err := h.catalog.ItemByID(r.Context(), req.ItemID)
	if errors.Is(err, catalog.ErrItemNotFound) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if err := h.cart.AddItem(*item, req.Quantity); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleRemoveItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := strconv.Atoi(chi.URLParam(r, "itemID"))
	if err != nil {
		http.Error(w, "invalid item ID", http.StatusBadRequest)
		return
	}
	h.cart.RemoveItem(itemID)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleClear(w http.ResponseWriter, r *http.Request) {
	h.cart.Clear()
	w.WriteHeader(http.StatusNoContent)
}
