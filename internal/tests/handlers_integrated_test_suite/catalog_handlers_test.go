package handlers_integrated_test_suite

import (
	"encoding/json"
	"net/http"
	"slices"
	"testing"

	handler "github.com/rogerio-castellano/shophub/internal/http/handlers"
	"github.com/rogerio-castellano/shophub/internal/models"
)

func TestGetProductsHandler_FromMirror(t *testing.T) {
	seedCatalog(t)
	r := newRouter(t)

	w := doRequest(r, http.MethodGet, "/products?category=men's+clothing&sort=name-desc", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp handler.ProductsSearchResult
	json.NewDecoder(w.Body).Decode(&resp)
	var ids []int
	for _, p := range resp.Data {
		ids = append(ids, p.ID)
	}
	if !slices.Equal(ids, []int{2, 1}) {
		t.Errorf("expected [2 1], got %v", ids)
	}
}

func TestGetProductByIDHandler_FromMirror(t *testing.T) {
	seedCatalog(t)
	r := newRouter(t)

	w := doRequest(r, http.MethodGet, "/products/1", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var p models.Product
	json.NewDecoder(w.Body).Decode(&p)
	if p != sampleProducts()[0] {
		t.Errorf("expected %+v, got %+v", sampleProducts()[0], p)
	}

	w = doRequest(r, http.MethodGet, "/products/404", "", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 Not Found, got %d", w.Code)
	}
}

func TestGetCategoriesHandler_FromMirror(t *testing.T) {
	seedCatalog(t)
	r := newRouter(t)

	w := doRequest(r, http.MethodGet, "/categories", "", nil)
	var resp handler.CategoriesResult
	json.NewDecoder(w.Body).Decode(&resp)
	if len(resp.Data) != 2 {
		t.Errorf("expected 2 categories, got %v", resp.Data)
	}
}
