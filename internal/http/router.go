package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	_ "github.com/rogerio-castellano/shophub/docs"
	"github.com/rogerio-castellano/shophub/internal/auth"
	"github.com/rogerio-castellano/shophub/internal/http/ban"
	"github.com/rogerio-castellano/shophub/internal/http/handlers"
	rl "github.com/rogerio-castellano/shophub/internal/http/rate_limiter"
	"github.com/sirupsen/logrus"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// RouterDeps are the pieces NewRouter wires together.
type RouterDeps struct {
	Server  *handlers.Server
	Tokens  *auth.TokenService
	Limiter *rl.Limiter
	Banner  *ban.Banner
	Log     logrus.FieldLogger
	// TrustProxy keys clients on X-Forwarded-For / X-Real-IP instead of the
	// connection address. Enable it only behind a proxy that overwrites them.
	TrustProxy bool
}

func NewRouter(d RouterDeps) http.Handler {
	s := d.Server
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	if d.TrustProxy {
		r.Use(chimw.RealIP)
	}
	r.Use(LoggingMiddleware(d.Log))
	r.Use(chimw.Recoverer)
	if d.Limiter != nil {
		r.Use(RateLimitMiddleware(d.Limiter, d.Banner))
	}

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Post("/sessions", s.CreateSessionHandler)

	r.Get("/products", s.GetProductsHandler)
	r.Get("/products/featured", s.GetFeaturedProductsHandler)
	r.Get("/products/{id}", s.GetProductByIDHandler)
	r.Get("/categories", s.GetCategoriesHandler)
	r.Post("/catalog/refresh", s.RefreshCatalogHandler)

	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(d.Tokens))

		r.Delete("/sessions/current", s.DeleteSessionHandler)

		r.Get("/cart", s.GetCartHandler)
		r.Delete("/cart", s.ClearCartHandler)
		r.Post("/cart/open", s.OpenCartHandler)
		r.Post("/cart/close", s.CloseCartHandler)
		r.Post("/cart/items", s.AddCartItemHandler)
		r.Delete("/cart/items/{id}", s.RemoveCartItemHandler)
		r.Post("/cart/items/{id}/increase", s.IncreaseCartItemHandler)
		r.Post("/cart/items/{id}/decrease", s.DecreaseCartItemHandler)

		r.Get("/favorites", s.GetFavoritesHandler)
		r.Post("/favorites", s.AddFavoriteHandler)
		r.Get("/favorites/{id}", s.GetFavoriteStatusHandler)
		r.Delete("/favorites/{id}", s.RemoveFavoriteHandler)
		r.Post("/favorites/{id}/toggle", s.ToggleFavoriteHandler)
	})

	return r
}
