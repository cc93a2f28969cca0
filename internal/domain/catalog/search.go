// Package catalog holds the pure search and filter logic applied to the
// in-memory product snapshot. Functions here are referentially transparent;
// result order always follows catalog order (ascending name, fixed at fetch
// time) and is never re-sorted by relevance.
package catalog

import (
	"sort"
	"strings"

	"mercado/internal/domain/entity"
)

// Categories returns the distinct, trimmed, non-empty category strings
// present across products, sorted with sort.Strings (case-sensitive byte
// order, so "Bebidas" sorts before "hortifruti").
func Categories(products []*entity.Product) []string {
	seen := make(map[string]struct{}, len(products))
	categories := make([]string, 0, len(products))

	for _, product := range products {
		category := strings.TrimSpace(product.Category)
		if category == "" {
			continue
		}
		if _, ok := seen[category]; ok {
			continue
		}
		seen[category] = struct{}{}
		categories = append(categories, category)
	}

	sort.Strings(categories)

	return categories
}

// FilterAdmin returns the products whose space-joined name, category,
// description and tags contain the lowercased query as a substring. An empty
// query matches everything.
func FilterAdmin(products []*entity.Product, query string) []*entity.Product {
	search := strings.ToLower(strings.TrimSpace(query))
	if search == "" {
		return products
	}

	matched := make([]*entity.Product, 0, len(products))
	for _, product := range products {
		fields := append([]string{product.Name, product.Category, product.Description}, product.Tags...)
		haystack := strings.ToLower(strings.Join(fields, " "))
		if strings.Contains(haystack, search) {
			matched = append(matched, product)
		}
	}

	return matched
}

// FilterStorefront returns the products matching the customer-facing
// predicate: the lowercased query must appear in the name, the category or
// any tag (an OR across fields, unlike FilterAdmin's single concatenated
// haystack), and when a category is selected the product's category must
// equal it exactly. An empty query with no category yields the unfiltered
// list.
func FilterStorefront(products []*entity.Product, query, category string) []*entity.Product {
	search := strings.ToLower(strings.TrimSpace(query))

	matched := make([]*entity.Product, 0, len(products))
	for _, product := range products {
		nameMatch := strings.Contains(strings.ToLower(product.Name), search)
		// The empty-query guard is redundant (nameMatch already passes on
		// ""), but the clause is kept in this exact shape so the shipped
		// matching behavior stays byte-for-byte auditable.
		categoryMatch := search == "" || strings.Contains(strings.ToLower(product.Category), search)

		tagsMatch := false
		for _, tag := range product.Tags {
			if strings.Contains(strings.ToLower(tag), search) {
				tagsMatch = true

				break
			}
		}

		categoryFilterMatch := category == "" || product.Category == category

		if (nameMatch || categoryMatch || tagsMatch) && categoryFilterMatch {
			matched = append(matched, product)
		}
	}

	return matched
}
