package handlers

import (
	"net/http"

	"github.com/rogerio-castellano/shophub/internal/auth"
	"github.com/rogerio-castellano/shophub/internal/models"
	"github.com/rogerio-castellano/shophub/internal/store"
)

func favoritesResponse(f *store.Favorites) FavoritesResponse {
	list := f.List()
	if list == nil {
		list = []models.Product{}
	}
	return FavoritesResponse{Data: list, Meta: Meta{TotalCount: len(list)}}
}

func (s *Server) updateFavorites(w http.ResponseWriter, r *http.Request, fn func(f *store.Favorites)) {
	var resp FavoritesResponse
	err := s.sessions.Update(r.Context(), auth.SessionIDFromContext(r.Context()), func(_ *store.Cart, f *store.Favorites) {
		fn(f)
		resp = favoritesResponse(f)
	})
	if err != nil {
		s.writeSessionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetFavoritesHandler godoc
// @Summary List favorite products
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Success 200 {object} FavoritesResponse
// @Failure 401 {string} string "Unauthorized"
// @Router /favorites [get]
func (s *Server) GetFavoritesHandler(w http.ResponseWriter, r *http.Request) {
	var resp FavoritesResponse
	err := s.sessions.View(r.Context(), auth.SessionIDFromContext(r.Context()), func(_ *store.Cart, f *store.Favorites) {
		resp = favoritesResponse(f)
	})
	if err != nil {
		s.writeSessionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// AddFavoriteHandler godoc
// @Summary Add a product to favorites
// @Description Adding a product that is already a favorite changes nothing.
// @Tags favorites
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param item body ProductIDRequest true "Product to add"
// @Success 200 {object} FavoritesResponse
// @Failure 400 {string} string "Invalid input"
// @Failure 401 {string} string "Unauthorized"
// @Failure 404 {string} string "Product not found"
// @Failure 502 {string} string "Upstream error"
// @Router /favorites [post]
func (s *Server) AddFavoriteHandler(w http.ResponseWriter, r *http.Request) {
	var req ProductIDRequest
	if err := readJSON(w, r, &req); err != nil || req.ProductID <= 0 {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	product, err := s.products.GetByID(r.Context(), req.ProductID)
	if err != nil {
		s.writeProductError(w, req.ProductID, err)
		return
	}

	s.updateFavorites(w, r, func(f *store.Favorites) { f.Add(product) })
}

// ToggleFavoriteHandler godoc
// @Summary Toggle a product in favorites
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 200 {object} FavoriteStatus
// @Failure 400 {string} string "Invalid ID"
// @Failure 401 {string} string "Unauthorized"
// @Failure 404 {string} string "Product not found"
// @Failure 502 {string} string "Upstream error"
// @Router /favorites/{id}/toggle [post]
func (s *Server) ToggleFavoriteHandler(w http.ResponseWriter, r *http.Request) {
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

	var favorite bool
	err = s.sessions.Update(r.Context(), auth.SessionIDFromContext(r.Context()), func(_ *store.Cart, f *store.Favorites) {
		favorite = f.Toggle(product)
	})
	if err != nil {
		s.writeSessionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, FavoriteStatus{ProductID: id, Favorite: favorite})
}

// GetFavoriteStatusHandler godoc
// @Summary Check whether a product is a favorite
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 200 {object} FavoriteStatus
// @Failure 400 {string} string "Invalid ID"
// @Failure 401 {string} string "Unauthorized"
// @Router /favorites/{id} [get]
func (s *Server) GetFavoriteStatusHandler(w http.ResponseWriter, r *http.Request) {
	id, err := productIDParam(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var favorite bool
	err = s.sessions.View(r.Context(), auth.SessionIDFromContext(r.Context()), func(_ *store.Cart, f *store.Favorites) {
		favorite = f.IsFavorite(id)
	})
	if err != nil {
		s.writeSessionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, FavoriteStatus{ProductID: id, Favorite: favorite})
}

// RemoveFavoriteHandler godoc
// @Summary Remove a product from favorites
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 200 {object} FavoritesResponse
// @Failure 400 {string} string "Invalid ID"
// @Failure 401 {string} string "Unauthorized"
// @Router /favorites/{id} [delete]
func (s *Server) RemoveFavoriteHandler(w http.ResponseWriter, r *http.Request) {
	id, err := productIDParam(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.updateFavorites(w, r, func(f *store.Favorites) { f.Remove(id) })
}
