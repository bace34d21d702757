package handlers

import (
	"net/http"

	"github.com/rogerio-castellano/shophub/internal/auth"
	"github.com/rogerio-castellano/shophub/internal/store"
)

func cartResponse(c *store.Cart) CartResponse {
	lines := c.Lines()
	items := make([]CartItemResponse, 0, len(lines))
	for _, l := range lines {
		items = append(items, CartItemResponse{
			ProductID: l.Product.ID,
			Title:     l.Product.Title,
			Price:     l.Product.Price,
			Image:     l.Product.Image,
			Quantity:  l.Quantity,
			LineTotal: l.Total().InexactFloat64(),
		})
	}

	subtotal := c.Subtotal()
	return CartResponse{
		Items:              items,
		Subtotal:           subtotal.InexactFloat64(),
		SubtotalDisplay:    subtotal.StringFixed(2),
		TotalItems:         c.TotalItems(),
		IsOpen:             c.IsOpen(),
		AnimationTrigger:   c.AnimationTrigger(),
		LastAddedProductID: c.LastAddedProductID(),
	}
}

// updateCart applies fn to the caller's cart and writes the resulting cart.
func (s *Server) updateCart(w http.ResponseWriter, r *http.Request, fn func(c *store.Cart)) {
	var resp CartResponse
	err := s.sessions.Update(r.Context(), auth.SessionIDFromContext(r.Context()), func(c *store.Cart, _ *store.Favorites) {
		fn(c)
		resp = cartResponse(c)
	})
	if err != nil {
		s.writeSessionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// cartItemAction wraps a cart operation keyed by the {id} path parameter.
func (s *Server) cartItemAction(op func(c *store.Cart, productID int)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := productIDParam(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		s.updateCart(w, r, func(c *store.Cart) { op(c, id) })
	}
}

// GetCartHandler godoc
// @Summary Get the cart
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} CartResponse
// @Failure 401 {string} string "Unauthorized"
// @Router /cart [get]
func (s *Server) GetCartHandler(w http.ResponseWriter, r *http.Request) {
	var resp CartResponse
	err := s.sessions.View(r.Context(), auth.SessionIDFromContext(r.Context()), func(c *store.Cart, _ *store.Favorites) {
		resp = cartResponse(c)
	})
	if err != nil {
		s.writeSessionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// AddCartItemHandler godoc
// @Summary Add a product to the cart
// @Description Adds one unit. Adding a product already in the cart increases its quantity.
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param item body ProductIDRequest true "Product to add"
// @Success 200 {object} CartResponse
// @Failure 400 {string} string "Invalid input"
// @Failure 401 {string} string "Unauthorized"
// @Failure 404 {string} string "Product not found"
// @Failure 502 {string} string "Upstream error"
// @Router /cart/items [post]
func (s *Server) AddCartItemHandler(w http.ResponseWriter, r *http.Request) {
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

	s.updateCart(w, r, func(c *store.Cart) { c.Add(product) })
}

// RemoveCartItemHandler godoc
// @Summary Remove a product from the cart
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 200 {object} CartResponse
// @Failure 400 {string} string "Invalid ID"
// @Failure 401 {string} string "Unauthorized"
// @Router /cart/items/{id} [delete]
func (s *Server) RemoveCartItemHandler(w http.ResponseWriter, r *http.Request) {
	s.cartItemAction((*store.Cart).Remove)(w, r)
}

// IncreaseCartItemHandler godoc
// @Summary Increase the quantity of a cart line
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 200 {object} CartResponse
// @Failure 400 {string} string "Invalid ID"
// @Failure 401 {string} string "Unauthorized"
// @Router /cart/items/{id}/increase [post]
func (s *Server) IncreaseCartItemHandler(w http.ResponseWriter, r *http.Request) {
	s.cartItemAction((*store.Cart).IncreaseQuantity)(w, r)
}

// DecreaseCartItemHandler godoc
// @Summary Decrease the quantity of a cart line
// @Description A line that reaches zero is removed.
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 200 {object} CartResponse
// @Failure 400 {string} string "Invalid ID"
// @Failure 401 {string} string "Unauthorized"
// @Router /cart/items/{id}/decrease [post]
func (s *Server) DecreaseCartItemHandler(w http.ResponseWriter, r *http.Request) {
	s.cartItemAction((*store.Cart).DecreaseQuantity)(w, r)
}

// ClearCartHandler godoc
// @Summary Empty the cart
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} CartResponse
// @Failure 401 {string} string "Unauthorized"
// @Router /cart [delete]
func (s *Server) ClearCartHandler(w http.ResponseWriter, r *http.Request) {
	s.updateCart(w, r, (*store.Cart).Clear)
}

// OpenCartHandler godoc
// @Summary Mark the cart as open
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} CartResponse
// @Failure 401 {string} string "Unauthorized"
// @Router /cart/open [post]
func (s *Server) OpenCartHandler(w http.ResponseWriter, r *http.Request) {
	s.updateCart(w, r, (*store.Cart).Open)
}

// CloseCartHandler godoc
// @Summary Mark the cart as closed
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} CartResponse
// @Failure 401 {string} string "Unauthorized"
// @Router /cart/close [post]
func (s *Server) CloseCartHandler(w http.ResponseWriter, r *http.Request) {
	s.updateCart(w, r, (*store.Cart).Close)
}
