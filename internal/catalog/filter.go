// Package catalog holds the static product catalog and the pure functions
// used to search and group it.
package catalog

import (
	"slices"
	"strings"

	"shopsmart/internal/domain"
)

// Group is one category with its products in input order.
type Group struct {
	Category string           `json:"category"`
	Products []domain.Product `json:"products"`
}

// Filter keeps products in category (empty means any) whose name or
// description contains query, case-insensitively. Input order is kept.
func Filter(products []domain.Product, query, category string) []domain.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if category != "" && p.Category != category {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// GroupBy buckets products by category. Groups are sorted by category label;
// products keep their input order inside a group.
func GroupBy(products []domain.Product) []Group {
	index := make(map[string]int)
	var groups []Group
	for _, p := range products {
		i, ok := index[p.Category]
		if !ok {
			i = len(groups)
			index[p.Category] = i
			groups = append(groups, Group{Category: p.Category})
		}
		groups[i].Products = append(groups[i].Products, p)
	}
	slices.SortStableFunc(groups, func(a, b Group) int {
		return strings.Compare(a.Category, b.Category)
	})
	return groups
}

// Categories returns the distinct category labels, sorted.
func Categories(products []domain.Product) []string {
	var out []string
	for _, p := range products {
		if !slices.Contains(out, p.Category) {
			out = append(out, p.Category)
		}
	}
	slices.Sort(out)
	return out
}
