package handlers

import "github.com/rogerio-castellano/shophub/internal/models"

type SessionResult struct {
	SessionID string `json:"session_id"`
	Token     string `json:"token"`
}

type Meta struct {
	TotalCount int `json:"total_count"`
}

type ProductsSearchResult struct {
	Status string           `json:"status"`
	Data   []models.Product `json:"data"`
	Meta   Meta             `json:"meta,omitempty"`
	Error  string           `json:"error,omitempty"`
}

type CategoriesResult struct {
	Data []string `json:"data"`
}

type ProductIDRequest struct {
	ProductID int `json:"product_id"`
}

type CartItemResponse struct {
	ProductID int     `json:"product_id"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"line_total"`
}

type CartResponse struct {
	Items              []CartItemResponse `json:"items"`
	Subtotal           float64            `json:"subtotal"`
	SubtotalDisplay    string             `json:"subtotal_display"`
	TotalItems         int                `json:"total_items"`
	IsOpen             bool               `json:"is_open"`
	AnimationTrigger   int                `json:"animation_trigger"`
	LastAddedProductID int                `json:"last_added_product_id,omitempty"`
}

type FavoritesResponse struct {
	Data []models.Product `json:"data"`
	Meta Meta             `json:"meta"`
}

type FavoriteStatus struct {
	ProductID int  `json:"product_id"`
	Favorite  bool `json:"favorite"`
}

type CatalogStatus struct {
	Status     string `json:"status"`
	TotalCount int    `json:"total_count"`
	Error      string `json:"error,omitempty"`
}
