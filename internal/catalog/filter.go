package catalog

import (
	"errors"
	"slices"
)

// SortKey selects the order of the derived product list.
type SortKey string

const (
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
	SortNameAsc   SortKey = "name-asc"
	SortNameDesc  SortKey = "name-desc"
)

const (
	// PriceSliderMax is the upper end of the price slider and the default threshold.
	PriceSliderMax = 1000.0
	// PriceSliderStep is the granularity of the price slider.
	PriceSliderStep = 10.0
)

var ErrUnknownSortKey = errors.New("unknown sort key")

// ParseSortKey validates a sort option. An empty string selects the default order.
func ParseSortKey(s string) (SortKey, error) {
	switch k := SortKey(s); k {
	case SortPriceAsc, SortPriceDesc, SortNameAsc, SortNameDesc:
		return k, nil
	case "":
		return SortPriceAsc, nil
	}
	return "", ErrUnknownSortKey
}

// FilterState is the set of catalog selections made on the home page.
type FilterState struct {
	Search     string   `json:"search"`
	Categories []string `json:"categories"`
	MaxPrice   float64  `json:"max_price"`
	Sort       SortKey  `json:"sort"`
}

// DefaultFilterState is what a freshly opened catalog page starts with.
func DefaultFilterState() FilterState {
	return FilterState{
		Categories: []string{},
		MaxPrice:   PriceSliderMax,
		Sort:       SortPriceAsc,
	}
}

// ToggleCategory selects category if it is not selected yet, otherwise unselects it.
func (f *FilterState) ToggleCategory(category string) {
	if i := slices.Index(f.Categories, category); i >= 0 {
		f.Categories = slices.Delete(slices.Clone(f.Categories), i, i+1)
		return
	}
	f.Categories = append(slices.Clone(f.Categories), category)
}

// ClampMaxPrice keeps a slider value within [0, PriceSliderMax].
func ClampMaxPrice(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > PriceSliderMax {
		return PriceSliderMax
	}
	return v
}
