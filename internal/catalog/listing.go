package catalog

import (
	"time"

	"github.com/rogerio-castellano/shophub/internal/models"
)

type Status int

const (
	StatusLoading Status = iota
	StatusError
	StatusReady
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusError:
		return "error"
	case StatusReady:
		return "ready"
	}
	return "unknown"
}

// Listing is the fetch state of the product catalog.
type Listing struct {
	Status    Status
	Products  []models.Product
	Err       error
	FetchedAt time.Time
}

// View is the derived list together with the state of the source it came from.
// Products is nil unless the source was ready.
type View struct {
	Status   Status
	Products []models.Product
	Err      error
}

func (v View) Loading() bool { return v.Status == StatusLoading }

func (v View) Failed() bool { return v.Status == StatusError }

// Empty reports a loaded catalog in which nothing matched the filters.
func (v View) Empty() bool { return v.Status == StatusReady && len(v.Products) == 0 }

// Derive applies the default pipeline to a listing.
func Derive(l Listing, f FilterState) View {
	return defaultPipeline.Derive(l, f)
}

// Derive yields no result while the listing is loading or failed.
func (p Pipeline) Derive(l Listing, f FilterState) View {
	switch l.Status {
	case StatusReady:
		return View{Status: StatusReady, Products: p.Apply(l.Products, f)}
	case StatusError:
		return View{Status: StatusError, Err: l.Err}
	}
	return View{Status: StatusLoading}
}
