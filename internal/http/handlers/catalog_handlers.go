package handlers

import (
	"errors"
	"net/http"

	"github.com/rogerio-castellano/shophub/internal/models"
	repo "github.com/rogerio-castellano/shophub/internal/repo"
)

// GetProductsHandler godoc
// @Summary List catalog products
// @Description Filters and sorts the cached catalog. Returns 503 while the first load is running.
// @Tags products
// @Produce json
// @Param search query string false "Substring of title or description"
// @Param category query []string false "Category filter (repeatable)" collectionFormat(multi)
// @Param maxPrice query number false "Maximum price"
// @Param sort query string false "price-asc, price-desc, name-asc or name-desc"
// @Success 200 {object} ProductsSearchResult
// @Failure 400 {array} ValidationError
// @Failure 502 {object} ProductsSearchResult
// @Failure 503 {object} ProductsSearchResult
// @Router /products [get]
func (s *Server) GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	filter, validationErrors := parseFilter(r.URL.Query())
	if len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	view := s.pipeline.Derive(s.loader.Listing(r.Context()), filter)
	switch {
	case view.Loading():
		writeJSON(w, http.StatusServiceUnavailable, ProductsSearchResult{Status: "loading"},
			http.Header{"Retry-After": []string{"1"}})
	case view.Failed():
		s.log.WithError(view.Err).Warn("catalog unavailable")
		writeJSON(w, http.StatusBadGateway, ProductsSearchResult{Status: "error", Error: "failed to load products"})
	default:
		status, products := "ready", view.Products
		if view.Empty() {
			status, products = "empty", []models.Product{}
		}
		writeJSON(w, http.StatusOK, ProductsSearchResult{
			Status: status,
			Data:   products,
			Meta:   Meta{TotalCount: len(view.Products)},
		})
	}
}

// GetFeaturedProductsHandler godoc
// @Summary List featured products
// @Tags products
// @Produce json
// @Success 200 {object} ProductsSearchResult
// @Failure 502 {string} string "Upstream error"
// @Router /products/featured [get]
func (s *Server) GetFeaturedProductsHandler(w http.ResponseWriter, r *http.Request) {
	products, err := s.products.GetFeatured(r.Context(), s.featuredLimit)
	if err != nil {
		s.log.WithError(err).Warn("featured products unavailable")
		http.Error(w, "failed to load products", http.StatusBadGateway)
		return
	}

	writeJSON(w, http.StatusOK, ProductsSearchResult{
		Status: "ready",
		Data:   products,
		Meta:   Meta{TotalCount: len(products)},
	})
}

// GetProductByIDHandler godoc
// @Summary Get product by ID
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Product
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Product not found"
// @Failure 502 {string} string "Upstream error"
// @Router /products/{id} [get]
func (s *Server) GetProductByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := productIDParam(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	product, err := s.products.GetByID(r.Context(), id)
	if err != nil {
		s.writeProductError(w, id, err)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// GetCategoriesHandler godoc
// @Summary List product categories
// @Tags products
// @Produce json
// @Success 200 {object} CategoriesResult
// @Failure 502 {string} string "Upstream error"
// @Router /categories [get]
func (s *Server) GetCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	categories, err := s.products.GetCategories(r.Context())
	if err != nil {
		s.log.WithError(err).Warn("categories unavailable")
		http.Error(w, "failed to load categories", http.StatusBadGateway)
		return
	}

	writeJSON(w, http.StatusOK, CategoriesResult{Data: categories})
}

// RefreshCatalogHandler godoc
// @Summary Reload the catalog from its source
// @Description Retries a failed load or forces a fresh copy of the catalog.
// @Tags products
// @Produce json
// @Success 200 {object} CatalogStatus
// @Failure 502 {object} CatalogStatus
// @Router /catalog/refresh [post]
func (s *Server) RefreshCatalogHandler(w http.ResponseWriter, r *http.Request) {
	listing := s.loader.Refresh(r.Context())
	if listing.Err != nil {
		s.log.WithError(listing.Err).Warn("catalog refresh failed")
		writeJSON(w, http.StatusBadGateway, CatalogStatus{Status: listing.Status.String(), Error: "failed to load products"})
		return
	}

	writeJSON(w, http.StatusOK, CatalogStatus{Status: listing.Status.String(), TotalCount: len(listing.Products)})
}

func (s *Server) writeProductError(w http.ResponseWriter, id int, err error) {
	if errors.Is(err, repo.ErrProductNotFound) {
		http.Error(w, "product not found", http.StatusNotFound)
		return
	}
	s.log.WithError(err).WithField("product_id", id).Warn("product lookup failed")
	http.Error(w, "failed to load product", http.StatusBadGateway)
}
