package handlers

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/rogerio-castellano/shophub/internal/catalog"
)

type ValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

// parseFilter builds a FilterState from query parameters, starting from the page defaults.
func parseFilter(q url.Values) (catalog.FilterState, []ValidationError) {
	errs := []ValidationError{}
	f := catalog.DefaultFilterState()

	f.Search = q.Get("search")

	for _, c := range q["category"] {
		if c = strings.TrimSpace(c); c != "" && !containsString(f.Categories, c) {
			f.Categories = append(f.Categories, c)
		}
	}

	if s := q.Get("maxPrice"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		switch {
		case err != nil, math.IsNaN(v), math.IsInf(v, 0):
			errs = append(errs, ValidationError{Field: "maxPrice", Description: "maxPrice must be a number"})
		case v < 0:
			errs = append(errs, ValidationError{Field: "maxPrice", Description: "maxPrice cannot be negative"})
		default:
			f.MaxPrice = v
		}
	}

	sort, err := catalog.ParseSortKey(q.Get("sort"))
	if err != nil {
		errs = append(errs, ValidationError{Field: "sort", Description: "sort must be one of price-asc, price-desc, name-asc, name-desc"})
	} else {
		f.Sort = sort
	}

	return f, errs
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
