package catalog

import (
	"context"
	"sync"
	"time"

	"github.com/rogerio-castellano/shophub/internal/models"
	"github.com/sirupsen/logrus"
)

// DefaultStaleTime is how long a fetched catalog is served before a background refresh.
const DefaultStaleTime = 5 * time.Minute

// Source is where the Loader fetches the full catalog from.
type Source interface {
	GetAll(ctx context.Context) ([]models.Product, error)
}

// Loader owns the catalog Listing. It starts in StatusLoading, and a failed
// fetch stays failed until Refresh is called again.
type Loader struct {
	source    Source
	staleTime time.Duration
	log       logrus.FieldLogger
	now       func() time.Time

	mu         sync.RWMutex
	listing    Listing
	refreshing bool
}

func NewLoader(source Source, staleTime time.Duration, log logrus.FieldLogger) *Loader {
	if staleTime <= 0 {
		staleTime = DefaultStaleTime
	}
	return &Loader{
		source:    source,
		staleTime: staleTime,
		log:       log,
		now:       time.Now,
		listing:   Listing{Status: StatusLoading},
	}
}

// Start triggers the first fetch and returns without waiting for it.
func (l *Loader) Start(ctx context.Context) {
	l.refreshAsync(ctx)
}

// Listing returns the current state of the catalog. A ready listing older than
// the stale time is still returned, and a refresh is started behind it.
func (l *Loader) Listing(ctx context.Context) Listing {
	l.mu.RLock()
	listing := l.listing
	stale := listing.Status == StatusReady && l.now().Sub(listing.FetchedAt) > l.staleTime
	l.mu.RUnlock()

	if stale {
		l.refreshAsync(ctx)
	}
	return listing
}

// Refresh fetches the catalog and waits for the result.
func (l *Loader) Refresh(ctx context.Context) Listing {
	products, err := l.source.GetAll(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()
	if err != nil {
		l.log.WithError(err).Warn("catalog fetch failed")
		l.listing = Listing{Status: StatusError, Err: err, FetchedAt: l.now()}
		return l.listing
	}
	if products == nil {
		products = []models.Product{}
	}
	l.log.WithField("count", len(products)).Info("catalog loaded")
	l.listing = Listing{Status: StatusReady, Products: products, FetchedAt: l.now()}
	return l.listing
}

func (l *Loader) refreshAsync(ctx context.Context) {
	l.mu.Lock()
	if l.refreshing {
		l.mu.Unlock()
		return
	}
	l.refreshing = true
	l.mu.Unlock()

	ctx = context.WithoutCancel(ctx)
	go func() {
		defer func() {
			l.mu.Lock()
			l.refreshing = false
			l.mu.Unlock()
		}()
		l.Refresh(ctx)
	}()
}
