package handlers_test_suite

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/rogerio-castellano/shophub/internal/catalog"
	handler "github.com/rogerio-castellano/shophub/internal/http/handlers"
	"github.com/rogerio-castellano/shophub/internal/models"
)

func productIDs(products []models.Product) []int {
	ids := make([]int, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestGetProductsHandler_FilterAndSort(t *testing.T) {
	r := newRouter()

	tests := []struct {
		name     string
		query    url.Values
		expected []int
	}{
		{
			name:     "Defaults sort by ascending price",
			query:    url.Values{},
			expected: []int{2, 5, 4, 1, 3},
		},
		{
			name:     "Search matches title or description",
			query:    url.Values{"search": {"SHIRT"}},
			expected: []int{2},
		},
		{
			name:     "Several categories with descending price",
			query:    url.Values{"category": {"men's clothing", "jewelery"}, "sort": {"price-desc"}},
			expected: []int{3, 1, 2},
		},
		{
			name:     "Max price is inclusive",
			query:    url.Values{"maxPrice": {"109"}},
			expected: []int{2, 5, 4},
		},
		{
			name:     "Name ascending",
			query:    url.Values{"sort": {"name-asc"}},
			expected: []int{1, 3, 2, 5, 4},
		},
		{
			name:     "Name descending within a price cap",
			query:    url.Values{"maxPrice": {"100"}, "sort": {"name-desc"}},
			expected: []int{5, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(r, http.MethodGet, "/products?"+tt.query.Encode(), "", nil)
			if w.Code != http.StatusOK {
				t.Fatalf("expected 200 OK, got %d", w.Code)
			}

			var resp handler.ProductsSearchResult
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("error decoding response: %v", err)
			}
			if resp.Status != "ready" {
				t.Errorf("expected status ready, got %q", resp.Status)
			}
			if got := productIDs(resp.Data); !slices.Equal(got, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
			if resp.Meta.TotalCount != len(tt.expected) {
				t.Errorf("expected total_count %d, got %d", len(tt.expected), resp.Meta.TotalCount)
			}
		})
	}
}

func TestGetProductsHandler_NoMatches(t *testing.T) {
	r := newRouter()

	w := doRequest(r, http.MethodGet, "/products?search=jacket&maxPrice=20", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"data":[]`) {
		t.Errorf("expected an empty data array, got %s", w.Body.String())
	}

	var resp handler.ProductsSearchResult
	json.NewDecoder(w.Body).Decode(&resp)
	if resp.Status != "empty" {
		t.Errorf("expected status empty, got %q", resp.Status)
	}
}

func TestGetProductsHandler_SearchIsAppliedAsTyped(t *testing.T) {
	r := newRouter()

	tests := []struct {
		search         string
		expectedStatus string
		expected       []int
	}{
		{search: "shirt", expectedStatus: "ready", expected: []int{2}},
		{search: "shirt ", expectedStatus: "empty", expected: []int{}},
		{search: "", expectedStatus: "ready", expected: []int{2, 5, 4, 1, 3}},
	}

	for _, tt := range tests {
		t.Run(strconv.Quote(tt.search), func(t *testing.T) {
			w := doRequest(r, http.MethodGet, "/products?"+url.Values{"search": {tt.search}}.Encode(), "", nil)
			if w.Code != http.StatusOK {
				t.Fatalf("expected 200 OK, got %d", w.Code)
			}

			var resp handler.ProductsSearchResult
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("error decoding response: %v", err)
			}
			if resp.Status != tt.expectedStatus {
				t.Errorf("expected status %s, got %q", tt.expectedStatus, resp.Status)
			}
			if got := productIDs(resp.Data); !slices.Equal(got, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestGetProductsHandler_InvalidQuery(t *testing.T) {
	r := newRouter()

	tests := []struct {
		name          string
		query         string
		expectedField string
	}{
		{"Unknown sort", "sort=popular", "sort"},
		{"Non numeric price", "maxPrice=cheap", "maxPrice"},
		{"Negative price", "maxPrice=-1", "maxPrice"},
		{"NaN price", "maxPrice=NaN", "maxPrice"},
		{"Infinite price", "maxPrice=%2BInf", "maxPrice"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(r, http.MethodGet, "/products?"+tt.query, "", nil)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400 Bad Request, got %d", w.Code)
			}

			var errs []handler.ValidationError
			if err := json.NewDecoder(w.Body).Decode(&errs); err != nil {
				t.Fatalf("error decoding response: %v", err)
			}
			if len(errs) != 1 || errs[0].Field != tt.expectedField {
				t.Errorf("expected one error on %s, got %+v", tt.expectedField, errs)
			}
		})
	}
}

func TestGetProductsHandler_Loading(t *testing.T) {
	pending := catalog.NewLoader(&switchSource{}, time.Hour, logger)
	r := newRouterWithLoader(pending, productRepo)

	w := doRequest(r, http.MethodGet, "/products", "", nil)
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 Service Unavailable, got %d", w.Code)
	}
	if w.Header().Get("Retry-After") == "" {
		t.Error("expected a Retry-After header")
	}

	var resp handler.ProductsSearchResult
	json.NewDecoder(w.Body).Decode(&resp)
	if resp.Status != "loading" || len(resp.Data) != 0 {
		t.Errorf("expected loading with no data, got %+v", resp)
	}
}

func TestGetProductsHandler_FetchFailedUntilRefresh(t *testing.T) {
	source := &switchSource{fail: true, products: sampleProducts()}
	l := catalog.NewLoader(source, time.Hour, logger)
	l.Refresh(context.Background())
	r := newRouterWithLoader(l, productRepo)

	w := doRequest(r, http.MethodGet, "/products", "", nil)
	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502 Bad Gateway, got %d", w.Code)
	}

	source.setFail(false)
	w = doRequest(r, http.MethodGet, "/products", "", nil)
	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected failure to persist without a refresh, got %d", w.Code)
	}

	w = doRequest(r, http.MethodPost, "/catalog/refresh", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK from refresh, got %d", w.Code)
	}
	var status handler.CatalogStatus
	json.NewDecoder(w.Body).Decode(&status)
	if status.Status != "ready" || status.TotalCount != len(sampleProducts()) {
		t.Errorf("unexpected refresh result %+v", status)
	}

	w = doRequest(r, http.MethodGet, "/products", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK after refresh, got %d", w.Code)
	}
}

func TestRefreshCatalogHandler_Failure(t *testing.T) {
	l := catalog.NewLoader(&switchSource{fail: true}, time.Hour, logger)
	r := newRouterWithLoader(l, productRepo)

	w := doRequest(r, http.MethodPost, "/catalog/refresh", "", nil)
	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502 Bad Gateway, got %d", w.Code)
	}

	var status handler.CatalogStatus
	json.NewDecoder(w.Body).Decode(&status)
	if status.Status != "error" {
		t.Errorf("expected status error, got %q", status.Status)
	}
}

func TestRefreshCatalogHandler_PicksUpNewProducts(t *testing.T) {
	t.Cleanup(resetCatalog)
	r := newRouter()

	productRepo.ReplaceAll(context.Background(), sampleProducts()[:2])
	w := doRequest(r, http.MethodPost, "/catalog/refresh", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	w = doRequest(r, http.MethodGet, "/products", "", nil)
	var resp handler.ProductsSearchResult
	json.NewDecoder(w.Body).Decode(&resp)
	if resp.Meta.TotalCount != 2 {
		t.Errorf("expected 2 products after refresh, got %d", resp.Meta.TotalCount)
	}
}

func TestGetProductByIDHandler(t *testing.T) {
	r := newRouter()

	tests := []struct {
		name       string
		path       string
		expectCode int
	}{
		{"Existing product", "/products/3", http.StatusOK},
		{"Unknown product", "/products/999", http.StatusNotFound},
		{"Non numeric id", "/products/abc", http.StatusBadRequest},
		{"Zero id", "/products/0", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(r, http.MethodGet, tt.path, "", nil)
			if w.Code != tt.expectCode {
				t.Fatalf("expected %d, got %d", tt.expectCode, w.Code)
			}
			if tt.expectCode != http.StatusOK {
				return
			}

			var p models.Product
			if err := json.NewDecoder(w.Body).Decode(&p); err != nil {
				t.Fatalf("error decoding response: %v", err)
			}
			if p.Title != "Gold Dragon Bracelet" {
				t.Errorf("expected Gold Dragon Bracelet, got %q", p.Title)
			}
		})
	}
}

func TestGetFeaturedProductsHandler(t *testing.T) {
	r := newRouter()

	w := doRequest(r, http.MethodGet, "/products/featured", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp handler.ProductsSearchResult
	json.NewDecoder(w.Body).Decode(&resp)
	if got := productIDs(resp.Data); !slices.Equal(got, []int{1, 2}) {
		t.Errorf("expected the first two products, got %v", got)
	}
}

func TestGetCategoriesHandler(t *testing.T) {
	r := newRouter()

	w := doRequest(r, http.MethodGet, "/categories", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp handler.CategoriesResult
	json.NewDecoder(w.Body).Decode(&resp)
	expected := []string{"men's clothing", "jewelery", "electronics", "women's clothing"}
	if !slices.Equal(resp.Data, expected) {
		t.Errorf("expected %v, got %v", expected, resp.Data)
	}
}
