package catalog

import (
	"cmp"
	"slices"
	"strings"

	"github.com/rogerio-castellano/shophub/internal/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Pipeline derives the displayed product list from the raw catalog and a FilterState.
type Pipeline struct {
	Locale language.Tag
}

var defaultPipeline = Pipeline{Locale: language.English}

// Apply runs the default English pipeline.
func Apply(products []models.Product, f FilterState) []models.Product {
	return defaultPipeline.Apply(products, f)
}

// Apply filters by search text, then category, then price, and sorts the
// survivors stably. The input slice is left untouched.
func (p Pipeline) Apply(products []models.Product, f FilterState) []models.Product {
	query := strings.ToLower(f.Search)
	categories := make(map[string]struct{}, len(f.Categories))
	for _, c := range f.Categories {
		categories[c] = struct{}{}
	}

	out := make([]models.Product, 0, len(products))
	for _, prod := range products {
		if query != "" && !matchesSearch(prod, query) {
			continue
		}
		if len(categories) > 0 {
			if _, ok := categories[prod.Category]; !ok {
				continue
			}
		}
		if prod.Price > f.MaxPrice {
			continue
		}
		out = append(out, prod)
	}

	slices.SortStableFunc(out, p.comparator(f.Sort))
	return out
}

func matchesSearch(p models.Product, query string) bool {
	return strings.Contains(strings.ToLower(p.Title), query) ||
		strings.Contains(strings.ToLower(p.Description), query)
}

func (p Pipeline) comparator(key SortKey) func(a, b models.Product) int {
	switch key {
	case SortPriceAsc:
		return func(a, b models.Product) int { return cmp.Compare(a.Price, b.Price) }
	case SortPriceDesc:
		return func(a, b models.Product) int { return cmp.Compare(b.Price, a.Price) }
	case SortNameAsc, SortNameDesc:
		// collate.Collator keeps internal buffers, so every Apply gets its own.
		col := collate.New(p.Locale)
		if key == SortNameDesc {
			return func(a, b models.Product) int { return col.CompareString(b.Title, a.Title) }
		}
		return func(a, b models.Product) int { return col.CompareString(a.Title, b.Title) }
	}
	return func(a, b models.Product) int { return 0 }
}
