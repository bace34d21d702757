package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rogerio-castellano/shophub/internal/auth"
	"github.com/rogerio-castellano/shophub/internal/cache"
	"github.com/rogerio-castellano/shophub/internal/catalog"
	"github.com/rogerio-castellano/shophub/internal/config"
	"github.com/rogerio-castellano/shophub/internal/db"
	"github.com/rogerio-castellano/shophub/internal/fakestore"
	api "github.com/rogerio-castellano/shophub/internal/http"
	"github.com/rogerio-castellano/shophub/internal/http/ban"
	"github.com/rogerio-castellano/shophub/internal/http/handlers"
	rl "github.com/rogerio-castellano/shophub/internal/http/rate_limiter"
	"github.com/rogerio-castellano/shophub/internal/logging"
	"github.com/rogerio-castellano/shophub/internal/redissvc"
	"github.com/rogerio-castellano/shophub/internal/repo"
	"github.com/rogerio-castellano/shophub/internal/session"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"
)

// @title ShopHub API
// @version 1.0
// @description Storefront API: product catalog, per-session cart and favorites.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	configFile := flag.String("config", "", "path to a config file")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		logrus.WithError(err).Fatal("could not load configuration")
	}

	log := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err := run(cfg, log); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}

func run(cfg config.Config, log *logrus.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		redisService *redissvc.RedisService
		database     *sql.DB
		err          error
	)

	if cfg.Cache.Backend == "redis" || cfg.Persistence.Backend == "redis" {
		redisService, err = redissvc.Connect(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return err
		}
		defer redisService.Close()
		log.WithField("addr", cfg.Redis.Addr).Info("connected to redis")
	}

	if cfg.Database.URL != "" {
		database, err = db.Connect(ctx, cfg.Database.URL)
		if err != nil {
			return err
		}
		defer database.Close()
		log.Info("connected to postgres")
	}

	source, err := productRepository(ctx, cfg, log, database)
	if err != nil {
		return err
	}
	products := withCache(cfg, source, redisService, log)

	// The loader keeps its own copy of the catalog and reads the source directly.
	loader := catalog.NewLoader(source, cfg.Catalog.StaleTime, log.WithField("component", "catalog"))
	loader.Start(ctx)

	sessions := session.NewManager(sessionRepository(cfg, redisService, database), log.WithField("component", "session"))
	go sessions.StartSweeper(ctx, cfg.Persistence.SweepInterval, cfg.Persistence.IdleTimeout)

	limiter := rl.New(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	go limiter.StartVisitorCleanupLoop(ctx)
	banner := newBanner(cfg, redisService, log)

	tokens := auth.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	server := handlers.NewServer(handlers.Deps{
		Products:      products,
		Loader:        loader,
		Pipeline:      catalog.Pipeline{Locale: parseLocale(cfg.Catalog.Locale, log)},
		Sessions:      sessions,
		Tokens:        tokens,
		FeaturedLimit: cfg.Catalog.FeaturedLimit,
		Log:           log.WithField("component", "http"),
	})

	srv := &http.Server{
		Addr: cfg.Server.Addr,
		Handler: api.NewRouter(api.RouterDeps{
			Server:  server,
			Tokens:  tokens,
			Limiter: limiter,
			Banner:  banner,
			Log:     log.WithField("component", "http"),

			TrustProxy: cfg.Server.TrustProxy,
		}),
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", cfg.Server.Addr).Info("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// productRepository builds the catalog source and optionally mirrors the
// remote catalog into it.
func productRepository(ctx context.Context, cfg config.Config, log *logrus.Logger, database *sql.DB) (repo.ProductRepository, error) {
	remote := repo.NewRemoteProductRepository(
		fakestore.NewClient(cfg.Catalog.BaseURL, fakestore.WithTimeout(cfg.Catalog.RequestTimeout)),
	)

	var products repo.ProductRepository
	switch cfg.Catalog.Source {
	case "postgres":
		products = repo.NewPostgresProductRepository(database)
	case "memory":
		products = repo.NewInMemoryProductRepository()
	default:
		products = remote
	}

	if writer, ok := products.(repo.CatalogWriter); ok && cfg.Catalog.SyncOnStart {
		all, err := remote.GetAll(ctx)
		if err != nil {
			return nil, err
		}
		if err := writer.ReplaceAll(ctx, all); err != nil {
			return nil, err
		}
		log.WithField("products", len(all)).Info("catalog mirrored from remote")
	}
	return products, nil
}

func withCache(cfg config.Config, products repo.ProductRepository, rs *redissvc.RedisService, log *logrus.Logger) repo.ProductRepository {
	switch cfg.Cache.Backend {
	case "redis":
		return repo.NewCachedProductRepository(products, cache.NewRedisCache(rs, "shophub:"), cfg.Catalog.StaleTime, log.WithField("component", "cache"))
	case "memory":
		return repo.NewCachedProductRepository(products, cache.NewMemoryCache(), cfg.Catalog.StaleTime, log.WithField("component", "cache"))
	}
	return products
}

func sessionRepository(cfg config.Config, rs *redissvc.RedisService, database *sql.DB) repo.SessionRepository {
	switch cfg.Persistence.Backend {
	case "memory":
		return repo.NewInMemorySessionRepository()
	case "redis":
		return repo.NewRedisSessionRepository(rs, cfg.Persistence.TTL)
	case "postgres":
		return repo.NewPostgresSessionRepository(database)
	}
	return nil
}

// newBanner shares bans through Redis when it is connected.
func newBanner(cfg config.Config, rs *redissvc.RedisService, log *logrus.Logger) *ban.Banner {
	if cfg.RateLimit.MaxStrikes <= 0 {
		return nil
	}
	var store ban.Store = ban.NewMemoryStore()
	if rs != nil {
		store = ban.NewRedisStore(rs)
	}
	policy := ban.Policy{
		MaxStrikes: cfg.RateLimit.MaxStrikes,
		Window:     cfg.RateLimit.StrikeWindow,
		Duration:   cfg.RateLimit.BanDuration,
	}
	return ban.NewBanner(store, policy, log.WithField("component", "ban"))
}

func parseLocale(s string, log logrus.FieldLogger) language.Tag {
	tag, err := language.Parse(s)
	if err != nil {
		log.WithError(err).WithField("locale", s).Warn("unknown locale, sorting names in English")
		return language.English
	}
	return tag
}
