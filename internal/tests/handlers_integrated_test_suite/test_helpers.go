package handlers_integrated_test_suite

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
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
	database    *sql.DB
	productRepo *repo.PostgresProductRepository
	sessionRepo *repo.PostgresSessionRepository
	tokens      = auth.NewTokenService("integration-secret", time.Hour)
	logger      = quietLogger()
)

func quietLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func sampleProducts() []models.Product {
	return []models.Product{
		{ID: 1, Title: "Fjallraven Backpack", Price: 109.95, Description: "Your perfect pack for everyday use", Category: "men's clothing", Image: "https://fakestoreapi.com/img/1.jpg", Rating: models.Rating{Rate: 3.9, Count: 120}},
		{ID: 2, Title: "Mens Casual Slim Fit Shirt", Price: 15.99, Description: "Slim fit cotton shirt", Category: "men's clothing", Rating: models.Rating{Rate: 4.1, Count: 259}},
		{ID: 3, Title: "Gold Dragon Bracelet", Price: 695, Description: "Chain bracelet in gold", Category: "jewelery", Rating: models.Rating{Rate: 4.6, Count: 400}},
	}
}

func seedCatalog(t *testing.T) {
	t.Helper()
	if err := productRepo.ReplaceAll(context.Background(), sampleProducts()); err != nil {
		t.Fatalf("could not seed catalog: %v", err)
	}
	t.Cleanup(clearAllProducts)
}

func clearAllProducts() {
	productRepo.ReplaceAll(context.Background(), nil)
}

// newRouter builds the API on top of Postgres with a fresh session manager,
// the way a restarted process would.
func newRouter(t *testing.T) http.Handler {
	t.Helper()
	loader := catalog.NewLoader(productRepo, time.Hour, logger)
	loader.Refresh(context.Background())

	server := handler.NewServer(handler.Deps{
		Products:      productRepo,
		Loader:        loader,
		Sessions:      session.NewManager(sessionRepo, logger),
		Tokens:        tokens,
		FeaturedLimit: 2,
		Log:           logger,
	})
	return api.NewRouter(api.RouterDeps{Server: server, Tokens: tokens, Log: logger})
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

func createSession(t *testing.T, r http.Handler) handler.SessionResult {
	t.Helper()
	w := doRequest(r, http.MethodPost, "/sessions", "", nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}
	var resp handler.SessionResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("session decoding failed: %v", err)
	}
	t.Cleanup(func() { sessionRepo.Delete(context.Background(), resp.SessionID) })
	return resp
}
