package handlers

import (
	"github.com/rogerio-castellano/shophub/internal/auth"
	"github.com/rogerio-castellano/shophub/internal/catalog"
	repo "github.com/rogerio-castellano/shophub/internal/repo"
	"github.com/rogerio-castellano/shophub/internal/session"
	"github.com/sirupsen/logrus"
)

// Deps are the collaborators the handlers need.
type Deps struct {
	Products      repo.ProductRepository
	Loader        *catalog.Loader
	Pipeline      catalog.Pipeline
	Sessions      *session.Manager
	Tokens        *auth.TokenService
	FeaturedLimit int
	Log           logrus.FieldLogger
}

// Server holds the HTTP handlers of the storefront API.
type Server struct {
	products      repo.ProductRepository
	loader        *catalog.Loader
	pipeline      catalog.Pipeline
	sessions      *session.Manager
	tokens        *auth.TokenService
	featuredLimit int
	log           logrus.FieldLogger
}

func NewServer(d Deps) *Server {
	return &Server{
		products:      d.Products,
		loader:        d.Loader,
		pipeline:      d.Pipeline,
		sessions:      d.Sessions,
		tokens:        d.Tokens,
		featuredLimit: d.FeaturedLimit,
		log:           d.Log,
	}
}
