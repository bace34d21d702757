package catalog

import (
	"context"
	"errors"
	"io"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rogerio-castellano/shophub/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	calls    atomic.Int32
	release  chan struct{}
	products []models.Product
	err      atomic.Pointer[error]
}

func (s *stubSource) GetAll(ctx context.Context) ([]models.Product, error) {
	s.calls.Add(1)
	if s.release != nil {
		<-s.release
	}
	if e := s.err.Load(); e != nil {
		return nil, *e
	}
	return s.products, nil
}

func quietLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestLoader_LoadingUntilFirstFetch(t *testing.T) {
	src := &stubSource{release: make(chan struct{}), products: []models.Product{{ID: 1}}}
	l := NewLoader(src, time.Minute, quietLogger())

	l.Start(context.Background())
	assert.Equal(t, StatusLoading, l.Listing(context.Background()).Status)

	close(src.release)
	require.Eventually(t, func() bool {
		return l.Listing(context.Background()).Status == StatusReady
	}, time.Second, 5*time.Millisecond)
	assert.Len(t, l.Listing(context.Background()).Products, 1)
}

func TestLoader_FailureStaysUntilRefresh(t *testing.T) {
	src := &stubSource{products: []models.Product{{ID: 1}}}
	boom := errors.New("boom")
	src.err.Store(&boom)
	l := NewLoader(src, time.Minute, quietLogger())

	listing := l.Refresh(context.Background())
	require.Equal(t, StatusError, listing.Status)
	assert.ErrorIs(t, listing.Err, boom)

	// Reading does not retry.
	assert.Equal(t, StatusError, l.Listing(context.Background()).Status)
	assert.Equal(t, int32(1), src.calls.Load())

	src.err.Store(nil)
	assert.Equal(t, StatusReady, l.Refresh(context.Background()).Status)
}

func TestLoader_StaleListingRefreshesInBackground(t *testing.T) {
	src := &stubSource{products: []models.Product{{ID: 1}}}
	l := NewLoader(src, time.Minute, quietLogger())
	now := time.Now()
	l.now = func() time.Time { return now }

	l.Refresh(context.Background())
	require.Equal(t, int32(1), src.calls.Load())

	now = now.Add(2 * time.Minute)
	listing := l.Listing(context.Background())
	assert.Equal(t, StatusReady, listing.Status)

	require.Eventually(t, func() bool { return src.calls.Load() == 2 }, time.Second, 5*time.Millisecond)
}
