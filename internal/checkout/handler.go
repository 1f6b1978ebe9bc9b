// internal/checkout/handler.go
package checkout

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"brewpos/internal/auth"
	"brewpos/internal/discount"
)

// Handler exposes the checkout commands as HTTP endpoints.
type Handler struct {
	orch *Orchestrator
}

// NewHandler creates a checkout handler.
func NewHandler(orch *Orchestrator) *Handler {
	return &Handler{orch: orch}
}

// Routes mounts the checkout endpoints on a chi router.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/checkout", h.handleState)
	r.Post("/checkout/start", h.handleStart)
	r.Post("/checkout/customer-name", h.handleCustomerName)
	r.Post("/checkout/payment-method", h.handlePaymentMethod)
	r.Post("/checkout/cash", h.handleCash)
	r.Post("/checkout/discount", h.handleDiscount)
	r.Post("/checkout/observations", h.handleObservations)
	r.Post("/checkout/cancel", h.handleCancel)
}

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	resp := struct {
		State  State  `json:"state"`
		Totals Totals `json:"totals"`
	}{
		State:  h.orch.State(),
		Totals: h.orch.Totals(),
	}
	json.NewEncoder(w).Encode(resp)
}

func (h *Handler) handleStart(w http.ResponseWriter, r *http.Request) {
	sess := auth.SessionFromContext(r.Context())
	if sess == nil {
		http.Error(w, "no active session", http.StatusUnauthorized)
		return
	}
	h.respond(w, h.orch.Start(r.Context(), sess))
}

func (h *Handler) handleCustomerName(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.respond(w, h.orch.SubmitCustomerName(r.Context(), req.Name))
}

func (h *Handler) handlePaymentMethod(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Method string `json:"method"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	method, err := ParsePaymentMethod(req.Method)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.respond(w, h.orch.SelectPaymentMethod(r.Context(), method))
}

func (h *Handler) handleCash(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Tendered int `json:"tendered"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.respond(w, h.orch.SubmitCashTendered(r.Context(), req.Tendered))
}

func (h *Handler) handleDiscount(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Discount             *discount.Discount `json:"discount"`
		Override             string             `json:"override"`
		OverrideIsPercentage bool               `json:"overrideIsPercentage"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.orch.SetDiscount(req.Discount, req.Override, req.OverrideIsPercentage)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleObservations(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.orch.SetObservations(req.Text)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleCancel(w http.ResponseWriter, r *http.Request) {
	h.respond(w, h.orch.Cancel())
}

// respond maps a command result to a status code. Validation errors get
// 400 so the client can correct the input; anything else is a server
// side failure.
func (h *Handler) respond(w http.ResponseWriter, err error) {
	switch {
	case err == nil:
		json.NewEncoder(w).Encode(struct {
			State State `json:"state"`
		}{State: h.orch.State()})
	case IsValidation(err):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusBadGateway)
	}
}
