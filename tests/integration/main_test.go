// tests/integration/main_test.go
package integration

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brewpos/internal/auth"
	"brewpos/internal/cart"
	"brewpos/internal/catalog"
	"brewpos/internal/checkout"
	"brewpos/internal/discount"
	"brewpos/internal/receipt"
)

// newTestServer wires the full kiosk against the file data source in
// ../../data, the same seed files a local dev run uses.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	const dataDir = "../../data"

	menu, err := catalog.NewFileCatalog(dataDir)
	require.NoError(t, err)
	authSvc, err := auth.NewFileService(dataDir)
	require.NoError(t, err)
	discounts, err := discount.NewFileService(dataDir)
	require.NoError(t, err)
	receipts, err := receipt.NewFileStore(dataDir)
	require.NoError(t, err)

	tokens := auth.NewTokens("integration-test-secret", time.Hour)
	activeCart := cart.New()
	builder := receipt.NewBuilder("OOP Caffee")
	gateway := &checkout.SimulatedGateway{Latency: 10 * time.Millisecond}
	orch := checkout.NewOrchestrator(activeCart, menu, receipts, builder, gateway, time.Second)

	r := chi.NewRouter()
	auth.NewHandler(authSvc, tokens).Routes(r)
	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireSession(tokens))
		catalog.NewHandler(menu, menu).Routes(pr)
		cart.NewHandler(activeCart, menu).Routes(pr)
		discount.NewHandler(discounts).Routes(pr)
		receipt.NewHandler(receipts).Routes(pr)
		checkout.NewHandler(orch).Routes(pr)
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func login(t *testing.T, srv *httptest.Server, username, password string) string {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"username": username, "password": password})
	resp, err := http.Post(srv.URL+"/login", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.NotEmpty(t, out.Token)
	return out.Token
}

func doJSON(t *testing.T, method, url, token string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func TestEndpointsRequireToken(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/categories")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLoginRejectsBadPassword(t *testing.T) {
	srv := newTestServer(t)

	body, _ := json.Marshal(map[string]string{"username": "alex", "password": "wrong"})
	resp, err := http.Post(srv.URL+"/login", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestCashOrderFlow(t *testing.T) {
	srv := newTestServer(t)
	token := login(t, srv, "alex", "barista123")

	var categories []catalog.Category
	decodeBody(t, doJSON(t, http.MethodGet, srv.URL+"/categories", token, nil), &categories)
	require.Len(t, categories, 3)

	var items []catalog.Item
	decodeBody(t, doJSON(t, http.MethodGet, srv.URL+"/categories/1/items", token, nil), &items)
	require.NotEmpty(t, items)

	resp := doJSON(t, http.MethodPost, srv.URL+"/cart/items", token, map[string]int{"itemId": 1, "quantity": 2})
	resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, http.MethodPost, srv.URL+"/checkout/start", token, nil)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, http.MethodPost, srv.URL+"/checkout/customer-name", token, map[string]string{"name": "Jordan"})
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, http.MethodPost, srv.URL+"/checkout/payment-method", token, map[string]string{"method": "Cash"})
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// two coffees at $2.50: subtotal 500, tax 35, total 535
	var state struct {
		State  checkout.State  `json:"state"`
		Totals checkout.Totals `json:"totals"`
	}
	decodeBody(t, doJSON(t, http.MethodGet, srv.URL+"/checkout", token, nil), &state)
	assert.Equal(t, checkout.StateProcessingCash, state.State)
	assert.Equal(t, 535, state.Totals.Total)

	resp = doJSON(t, http.MethodPost, srv.URL+"/checkout/cash", token, map[string]int{"tendered": 500})
	resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode, "short tender is rejected")

	resp = doJSON(t, http.MethodPost, srv.URL+"/checkout/cash", token, map[string]int{"tendered": 600})
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var cartItems []cart.CartItem
	decodeBody(t, doJSON(t, http.MethodGet, srv.URL+"/cart", token, nil), &cartItems)
	assert.Empty(t, cartItems, "cart clears after checkout")

	var history []struct {
		CustomerName string `json:"customerName"`
		Content      string `json:"content"`
	}
	decodeBody(t, doJSON(t, http.MethodGet, srv.URL+"/receipts", token, nil), &history)
	require.NotEmpty(t, history)
	found := false
	for _, h := range history {
		if h.CustomerName == "Jordan" && strings.Contains(h.Content, "2 x Coffee") {
			found = true
		}
	}
	assert.True(t, found, "new receipt shows up in history")
}

func TestCardOrderFlow(t *testing.T) {
	srv := newTestServer(t)
	token := login(t, srv, "morgan", "manager123")

	resp := doJSON(t, http.MethodPost, srv.URL+"/cart/items", token, map[string]int{"itemId": 7, "quantity": 1})
	resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, http.MethodPost, srv.URL+"/checkout/start", token, nil)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, http.MethodPost, srv.URL+"/checkout/customer-name", token, map[string]string{"name": "Casey"})
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, http.MethodPost, srv.URL+"/checkout/payment-method", token, map[string]string{"method": "Credit Card"})
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.Eventually(t, func() bool {
		var state struct {
			State checkout.State `json:"state"`
		}
		decodeBody(t, doJSON(t, http.MethodGet, srv.URL+"/checkout", token, nil), &state)
		return state.State == checkout.StateIdle
	}, 2*time.Second, 20*time.Millisecond)

	var cartItems []cart.CartItem
	decodeBody(t, doJSON(t, http.MethodGet, srv.URL+"/cart", token, nil), &cartItems)
	assert.Empty(t, cartItems)
}

func TestDiscountListIncludesSentinels(t *testing.T) {
	srv := newTestServer(t)
	token := login(t, srv, "alex", "barista123")

	var discounts []discount.Discount
	decodeBody(t, doJSON(t, http.MethodGet, srv.URL+"/discounts", token, nil), &discounts)
	require.NotEmpty(t, discounts)
	assert.Equal(t, "None", discounts[0].Name)
	assert.Equal(t, "Other", discounts[len(discounts)-1].Name)

	for _, d := range discounts {
		if d.IsNone() || d.IsOther() {
			continue
		}
		assert.True(t, d.IsActive, "only active discounts are offered")
	}
}
