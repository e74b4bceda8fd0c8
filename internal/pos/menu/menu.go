// Package menu prepares the product list for the take-order flow.
package menu

import (
	"strings"

	"resto-pos/internal/domain"
)

// Menu groups available products by category, keeping categories in the
// order they first appear in the product list.
type Menu struct {
	categories []string
	byCategory map[string][]domain.Product
}

// Build filters out unavailable products and groups the rest.
func Build(products []domain.Product) *Menu {
	m := &Menu{byCategory: make(map[string][]domain.Product)}
	for _, p := range products {
		if !p.IsAvailable {
			continue
		}
		if _, seen := m.byCategory[p.Category]; !seen {
			m.categories = append(m.categories, p.Category)
		}
		m.byCategory[p.Category] = append(m.byCategory[p.Category], p)
	}
	return m
}

func (m *Menu) Categories() []string { return m.categories }

func (m *Menu) Category(name string) []domain.Product { return m.byCategory[name] }

// Search returns available products whose name contains query,
// case-insensitive, across all categories, capped at limit. An empty
// query matches nothing.
func (m *Menu) Search(query string, limit int) []domain.Product {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" || limit <= 0 {
		return nil
	}
	var out []domain.Product
	for _, cat := range m.categories {
		for _, p := range m.byCategory[cat] {
			if strings.Contains(strings.ToLower(p.Name), query) {
				out = append(out, p)
				if len(out) == limit {
					return out
				}
			}
		}
	}
	return out
}
