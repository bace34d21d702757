package handlers_test_suite

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"

	"github.com/rogerio-castellano/shophub/internal/auth"
	"github.com/rogerio-castellano/shophub/internal/catalog"
	api "github.com/rogerio-castellano/shophub/internal/http"
	handler "github.com/rogerio-castellano/shophub/internal/http/handlers"
	"github.com/rogerio-castellano/shophub/internal/models"
	"github.com/rogerio-castellano/shophub/internal/repo"
	"github.com/rogerio-castellano/shophub/internal/session"
	"github.com/sirupsen/logrus"
)

var (
	productRepo *repo.InMemoryProductRepository
	sessions    *session.Manager
	tokens      *auth.TokenService
	loader      *catalog.Loader
	logger      logrus.FieldLogger
)

func init() {
	setupTestServer()
}

func setupTestServer() {
	l := logrus.New()
	l.SetOutput(io.Discard)
	logger = l

	productRepo = repo.NewInMemoryProductRepository(sampleProducts()...)
	sessions = session.NewManager(repo.NewInMemorySessionRepository(), logger)
	tokens = auth.NewTokenService("test-secret", time.Hour)
	loader = catalog.NewLoader(productRepo, time.Hour, logger)
	loader.Refresh(context.Background())
}

func sampleProducts() []models.Product {
	return []models.Product{
		{ID: 1, Title: "Fjallraven Backpack", Price: 109.95, Description: "Your perfect pack for everyday use", Category: "men's clothing", Rating: models.Rating{Rate: 3.9, Count: 120}},
		{ID: 2, Title: "Mens Casual Slim Fit Shirt", Price: 15.99, Description: "Slim fit cotton shirt", Category: "men's clothing", Rating: models.Rating{Rate: 4.1, Count: 259}},
		{ID: 3, Title: "Gold Dragon Bracelet", Price: 695, Description: "Chain bracelet in gold", Category: "jewelery", Rating: models.Rating{Rate: 4.6, Count: 400}},
		{ID: 4, Title: "SanDisk SSD 1TB", Price: 109, Description: "Internal solid state drive", Category: "electronics", Rating: models.Rating{Rate: 2.9, Count: 470}},
		{ID: 5, Title: "Rain Jacket Women", Price: 39.99, Description: "Lightweight windbreaker jacket", Category: "women's clothing", Rating: models.Rating{Rate: 3.8, Count: 679}},
	}
}

// resetCatalog puts the sample catalog back after a test changed it.
func resetCatalog() {
	productRepo.ReplaceAll(context.Background(), sampleProducts())
	loader.Refresh(context.Background())
}

func newRouter() http.Handler {
	return newRouterWithLoader(loader, productRepo)
}

func newRouterWithLoader(l *catalog.Loader, products repo.ProductRepository) http.Handler {
	server := handler.NewServer(handler.Deps{
		Products:      products,
		Loader:        l,
		Pipeline:      catalog.Pipeline{},
		Sessions:      sessions,
		Tokens:        tokens,
		FeaturedLimit: 2,
		Log:           logger,
	})
	return api.NewRouter(api.RouterDeps{Server: server, Tokens: tokens, Log: logger})
}

func createSession(r http.Handler) (handler.SessionResult, error) {
	req := httptest.NewRequest(http.MethodPost, "/sessions", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp handler.SessionResult
	if w.Code != http.StatusCreated {
		return resp, fmt.Errorf("expected 201 Created, got %d", w.Code)
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		return resp, fmt.Errorf("session decoding failed: %v", err)
	}
	return resp, nil
}

func doRequest(r http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func addToCart(r http.Handler, token string, productID int) *httptest.ResponseRecorder {
	return doRequest(r, http.MethodPost, "/cart/items", token, handler.ProductIDRequest{ProductID: productID})
}

func decodeCart(w *httptest.ResponseRecorder) (handler.CartResponse, error) {
	var resp handler.CartResponse
	err := json.NewDecoder(w.Body).Decode(&resp)
	return resp, err
}

// switchSource is a catalog source whose failure can be turned on and off.
type switchSource struct {
	mu       sync.Mutex
	fail     bool
	products []models.Product
}

func (s *switchSource) GetAll(ctx context.Context) ([]models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return nil, fmt.Errorf("upstream unavailable")
	}
	return s.products, nil
}

func (s *switchSource) setFail(fail bool) {
	s.mu.Lock()
	s.fail = fail
	s.mu.Unlock()
}
