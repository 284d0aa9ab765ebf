package routes

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zarnosh/My-E-comerce-Store/api/controllers"
	"github.com/zarnosh/My-E-comerce-Store/internal/cart"
	"github.com/zarnosh/My-E-comerce-Store/internal/checkout"
	"github.com/zarnosh/My-E-comerce-Store/internal/notifications"
	"github.com/zarnosh/My-E-comerce-Store/internal/persistence"
	"github.com/zarnosh/My-E-comerce-Store/internal/seed"
	"github.com/zarnosh/My-E-comerce-Store/internal/store"
	"github.com/zarnosh/My-E-comerce-Store/pkg/config"
	"github.com/zarnosh/My-E-comerce-Store/pkg/kvstore"
	"github.com/zarnosh/My-E-comerce-Store/pkg/logger"
	"github.com/zarnosh/My-E-comerce-Store/pkg/metrics"
)

type stubPinger struct{ err error }

func (s stubPinger) Ping(context.Context) error { return s.err }

type stack struct {
	handler http.Handler
	store   *store.Store
	cart    *cart.Cart
}

func newStack(t *testing.T, backends map[string]controllers.Pinger) *stack {
	t.Helper()
	reg := prometheus.NewRegistry()
	m := metrics.NewStoreMetrics(reg)

	bridge, err := persistence.NewBridge(persistence.Params{
		Session:    kvstore.NewMemory(),
		Persistent: kvstore.NewMemory(),
		Metrics:    m,
	})
	require.NoError(t, err)

	notifier := notifications.New(notifications.Params{TTL: time.Hour, Metrics: m})
	t.Cleanup(notifier.Close)

	st := store.New(store.Params{Dataset: seed.Dataset(), Persister: bridge, Notifier: notifier, Metrics: m})
	ct := cart.New(cart.Params{Persister: bridge})
	svc, err := checkout.NewService(checkout.ServiceParams{Orders: st, Cart: ct, Delay: time.Millisecond})
	require.NoError(t, err)
	t.Cleanup(svc.Close)

	cfg := &config.Config{
		App:  config.AppConfig{Env: config.AppEnvDev},
		HTTP: config.HTTPConfig{CORSOrigins: []string{"http://localhost:3000"}},
	}
	handler, err := NewRouter(Deps{
		Config:   cfg,
		Logger:   logger.Nop(),
		Store:    st,
		Cart:     ct,
		Checkout: svc,
		Registry: reg,
		Backends: backends,
	})
	require.NoError(t, err)
	return &stack{handler: handler, store: st, cart: ct}
}

func (s *stack) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func (s *stack) login(t *testing.T, email, role string) {
	t.Helper()
	rec := s.do(t, http.MethodPost, "/api/v1/session/login", `{"email":"`+email+`","role":"`+role+`"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func decodeData[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var env struct {
		Data T `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return env.Data
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var env struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return env.Error.Code
}

func TestNewRouterRequiresDeps(t *testing.T) {
	_, err := NewRouter(Deps{})
	require.Error(t, err)
}

func TestHealthEndpoints(t *testing.T) {
	s := newStack(t, map[string]controllers.Pinger{"sql": stubPinger{}})

	rec := s.do(t, http.MethodGet, "/health/live", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, config.AppEnvDev, rec.Header().Get("X-LuxeThread-Env"))

	rec = s.do(t, http.MethodGet, "/health/ready", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	broken := newStack(t, map[string]controllers.Pinger{"redis": stubPinger{err: errors.New("down")}})
	rec = broken.do(t, http.MethodGet, "/health/ready", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestAdminRoutesRequireAdminRole(t *testing.T) {
	s := newStack(t, nil)

	rec := s.do(t, http.MethodGet, "/api/v1/admin/dashboard", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	s.login(t, "customer@example.com", "customer")
	rec = s.do(t, http.MethodGet, "/api/v1/admin/dashboard", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	s.login(t, "admin@example.com", "admin")
	rec = s.do(t, http.MethodGet, "/api/v1/admin/dashboard", "")
	require.Equal(t, http.StatusOK, rec.Code)
	dash := decodeData[map[string]any](t, rec)
	assert.EqualValues(t, 4, dash["totalOrders"])
	assert.EqualValues(t, 2, dash["totalCustomers"])
}

func TestBlockedLoginIsForbidden(t *testing.T) {
	s := newStack(t, nil)
	rec := s.do(t, http.MethodPost, "/api/v1/session/login", `{"email":"testuser@example.com","role":"customer"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = s.do(t, http.MethodGet, "/api/v1/toast", "")
	toast := decodeData[map[string]any](t, rec)
	assert.Equal(t, "error", toast["type"])
}

func TestLoginValidation(t *testing.T) {
	s := newStack(t, nil)
	rec := s.do(t, http.MethodPost, "/api/v1/session/login", `{"email":"nope","role":"owner"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", errorCode(t, rec))
}

func TestCheckoutFlow(t *testing.T) {
	s := newStack(t, nil)

	rec := s.do(t, http.MethodPost, "/api/v1/checkout", `{"shippingAddress":{"name":"A","address":"1 Main","city":"Boston","zip":"02101"},"paymentMethod":"COD"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	s.login(t, "customer@example.com", "customer")

	rec = s.do(t, http.MethodPost, "/api/v1/cart/items", `{"productId":"p1","quantity":2,"size":"M","color":"White"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	view := decodeData[map[string]any](t, rec)
	assert.EqualValues(t, 2, view["count"])
	assert.InDelta(t, 59.98, view["total"], 0.001)

	rec = s.do(t, http.MethodPost, "/api/v1/checkout", `{"shippingAddress":{"name":"A","address":"1 Main","city":"Boston","zip":"02101"},"paymentMethod":"COD"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	order := decodeData[map[string]any](t, rec)
	assert.Equal(t, "Pending", order["status"])
	assert.Equal(t, "u1", order["userId"])

	assert.Empty(t, s.cart.Items())
	product, err := s.store.Product("p1")
	require.NoError(t, err)
	assert.Equal(t, 48, product.Stock)

	rec = s.do(t, http.MethodGet, "/api/v1/orders", "")
	history := decodeData[[]map[string]any](t, rec)
	require.Len(t, history, 4)
	assert.Equal(t, order["id"], history[0]["id"])
}

func TestCartRejectsUnofferedVariantAndOutOfStock(t *testing.T) {
	s := newStack(t, nil)

	rec := s.do(t, http.MethodPost, "/api/v1/cart/items", `{"productId":"p1","quantity":1,"size":"XXL","color":"White"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodPost, "/api/v1/cart/items", `{"productId":"p5","quantity":1,"size":"4T","color":"Green"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodPost, "/api/v1/cart/items", `{"productId":"p4","quantity":20,"size":"M","color":"Beige"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 8, s.cart.Count())

	rec = s.do(t, http.MethodDelete, "/api/v1/cart/items?productId=p4&size=M&color=Beige", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, s.cart.Count())
}

func TestCatalogBrowse(t *testing.T) {
	s := newStack(t, nil)

	rec := s.do(t, http.MethodGet, "/api/v1/products?category=Women&max_price=1000", "")
	require.Equal(t, http.StatusOK, rec.Code)
	products := decodeData[[]map[string]any](t, rec)
	require.NotEmpty(t, products)
	for _, p := range products {
		assert.Equal(t, "Women", p["category"])
	}

	rec = s.do(t, http.MethodGet, "/api/v1/products/missing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdminProductCrud(t *testing.T) {
	s := newStack(t, nil)
	s.login(t, "admin@example.com", "admin")

	rec := s.do(t, http.MethodPost, "/api/v1/admin/products", `{"name":"Linen Shirt","price":59.5,"category":"Men","sizes":"S, M","colors":"White","stock":12}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decodeData[map[string]any](t, rec)
	id := created["id"].(string)
	assert.Equal(t, []any{"S", "M"}, created["sizes"])

	rec = s.do(t, http.MethodPatch, "/api/v1/admin/products/"+id+"/stock", `{"stock":0}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = s.do(t, http.MethodGet, "/api/v1/admin/products?stock=outOfStock&sort=name&direction=ascending", "")
	require.Equal(t, http.StatusOK, rec.Code)
	page := decodeData[map[string]any](t, rec)
	assert.EqualValues(t, 2, page["totalItems"])

	rec = s.do(t, http.MethodPost, "/api/v1/admin/products/bulk-delete", `{"ids":["`+id+`","p5"]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 2, decodeData[map[string]any](t, rec)["deleted"])

	rec = s.do(t, http.MethodDelete, "/api/v1/admin/products/"+id, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdminFilterSettingsRoundTrip(t *testing.T) {
	s := newStack(t, nil)
	s.login(t, "admin@example.com", "admin")

	rec := s.do(t, http.MethodPut, "/api/v1/admin/filter-settings", `{"price":false,"color":true,"size":true}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = s.do(t, http.MethodGet, "/api/v1/filter-settings", "")
	settings := decodeData[map[string]bool](t, rec)
	assert.False(t, settings["price"])
	assert.True(t, settings["size"])
}

func TestMetricsEndpoint(t *testing.T) {
	s := newStack(t, nil)
	s.login(t, "customer@example.com", "customer")

	rec := s.do(t, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "storefront_persist_duration_seconds")
}
