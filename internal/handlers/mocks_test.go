package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/sreeayiengaran/storefront-golang/internal/cart"
	"github.com/sreeayiengaran/storefront-golang/internal/config"
	"github.com/sreeayiengaran/storefront-golang/internal/middleware"
	"github.com/sreeayiengaran/storefront-golang/internal/models"
	"github.com/sreeayiengaran/storefront-golang/internal/notify"
	"github.com/sreeayiengaran/storefront-golang/internal/order"
	"github.com/sreeayiengaran/storefront-golang/internal/store"
)

const testSessionID = "test-session"

type mockCatalog struct {
	products map[string]*models.Product
	err      error
}

func (m *mockCatalog) GetProduct(_ context.Context, id string) (*models.Product, error) {
	if m.err != nil {
		return nil, m.err
	}
	p, ok := m.products[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return p, nil
}

func (m *mockCatalog) ListProducts(context.Context, string) ([]models.Product, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []models.Product
	for _, p := range m.products {
		out = append(out, *p)
	}
	return out, nil
}

func (m *mockCatalog) CreateProduct(_ context.Context, p *models.Product) error {
	if m.err != nil {
		return m.err
	}
	m.products[p.ID] = p
	return nil
}

func (m *mockCatalog) UpdateProduct(_ context.Context, p *models.Product) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.products[p.ID]; !ok {
		return store.ErrNotFound
	}
	m.products[p.ID] = p
	return nil
}

func (m *mockCatalog) DeleteProduct(_ context.Context, id string) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.products[id]; !ok {
		return store.ErrNotFound
	}
	delete(m.products, id)
	return nil
}

type statusWrite struct {
	id     string
	status order.Status
}

type mockOrders struct {
	mu           sync.Mutex
	orders       map[string]*models.Order
	created      []*models.Order
	statusWrites []statusWrite
	err          error
}

func newMockOrders() *mockOrders {
	return &mockOrders{orders: make(map[string]*models.Order)}
}

func (m *mockOrders) Create(_ context.Context, o *models.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.orders[o.ID] = o
	m.created = append(m.created, o)
	return nil
}

func (m *mockOrders) List(context.Context) ([]models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	var out []models.Order
	for _, o := range m.orders {
		out = append(out, *o)
	}
	return out, nil
}

func (m *mockOrders) Get(_ context.Context, id string) (*models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	o, ok := m.orders[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *o
	return &cp, nil
}

func (m *mockOrders) UpdateStatus(_ context.Context, id string, status order.Status) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	o, ok := m.orders[id]
	if !ok {
		return store.ErrNotFound
	}
	o.Status = string(status)
	m.statusWrites = append(m.statusWrites, statusWrite{id: id, status: status})
	return nil
}

func (m *mockOrders) CountByStatus(_ context.Context, status order.Status) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return 0, m.err
	}
	count := 0
	for _, o := range m.orders {
		if o.Status == string(status) {
			count++
		}
	}
	return count, nil
}

type mockMessages struct {
	messages map[int64]*models.Message
	nextID   int64
	err      error
}

func newMockMessages() *mockMessages {
	return &mockMessages{messages: make(map[int64]*models.Message), nextID: 1}
}

func (m *mockMessages) Create(_ context.Context, msg *models.Message) error {
	if m.err != nil {
		return m.err
	}
	msg.ID = m.nextID
	m.nextID++
	m.messages[msg.ID] = msg
	return nil
}

func (m *mockMessages) List(context.Context) ([]models.Message, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []models.Message
	for _, msg := range m.messages {
		out = append(out, *msg)
	}
	return out, nil
}

func (m *mockMessages) MarkRead(_ context.Context, id int64) error {
	if m.err != nil {
		return m.err
	}
	msg, ok := m.messages[id]
	if !ok {
		return store.ErrNotFound
	}
	msg.Read = true
	return nil
}

func (m *mockMessages) CountUnread(context.Context) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	count := 0
	for _, msg := range m.messages {
		if !msg.Read {
			count++
		}
	}
	return count, nil
}

type notice struct {
	title, description string
	severity           notify.Severity
}

type mockNotifier struct {
	mu      sync.Mutex
	notices []notice
}

func (m *mockNotifier) Notify(title, description string, severity notify.Severity) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notices = append(m.notices, notice{title, description, severity})
}

// testApp bundles the handlers with their mocks and a router wired the same
// way as routes.SetupRouter.
type testApp struct {
	h        *Handlers
	catalog  *mockCatalog
	orders   *mockOrders
	messages *mockMessages
	notifier *mockNotifier
	router   *gin.Engine
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logrus.New()
	log.SetOutput(io.Discard)

	app := &testApp{
		catalog:  &mockCatalog{products: make(map[string]*models.Product)},
		orders:   newMockOrders(),
		messages: newMockMessages(),
		notifier: &mockNotifier{},
	}
	app.h = &Handlers{
		Catalog:  app.catalog,
		Orders:   app.orders,
		Messages: app.messages,
		Carts:    cart.NewRegistry(),
		Notifier: app.notifier,
		Config: &config.Config{
			AdminEmail:    "admin@example.com",
			AdminPassword: "secret",
			JWTSecret:     "test-secret",
		},
		Log: log,
	}

	router := gin.New()
	v1 := router.Group("/v1")

	v1.GET("/products", app.h.ListProducts)
	v1.GET("/products/:id", app.h.GetProduct)
	v1.POST("/contact", app.h.CreateMessage)

	shop := v1.Group("/")
	shop.Use(middleware.ShopperSession())
	shop.GET("/cart", app.h.GetCart)
	shop.POST("/cart/items", app.h.AddToCart)
	shop.PUT("/cart/items/:id", app.h.UpdateCartItem)
	shop.DELETE("/cart/items/:id", app.h.RemoveCartItem)
	shop.DELETE("/cart", app.h.ClearCart)
	shop.POST("/cart/buy-now", app.h.BuyNow)
	shop.POST("/checkout", app.h.Checkout)

	v1.POST("/admin/login", app.h.AdminLogin)
	v1.PATCH("/admin/orders/:id/status", app.h.UpdateOrderStatus)
	v1.GET("/admin/orders", app.h.ListOrders)
	v1.GET("/admin/orders/:id", app.h.GetOrder)
	v1.GET("/admin/messages", app.h.ListMessages)
	v1.PATCH("/admin/messages/:id/read", app.h.MarkMessageRead)
	v1.GET("/admin/dashboard-stats", app.h.GetDashboardStats)

	app.router = router
	return app
}

// session returns the shopper session the test requests operate on.
func (a *testApp) session() *cart.Session {
	return a.h.Carts.Session(testSessionID)
}

func (a *testApp) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.SessionHeader, testSessionID)

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func seedProduct(a *testApp, id string, price float64) {
	a.catalog.products[id] = &models.Product{
		ID:        id,
		Name:      "Product " + id,
		Price:     price,
		ImageURLs: []string{"https://img.example.com/" + id + ".jpg"},
	}
}
