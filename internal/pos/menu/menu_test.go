package menu

import (
	"testing"

	"resto-pos/internal/domain"
)

var products = []domain.Product{
	{ID: "1", Name: "Butter Naan", Category: "Breads", IsAvailable: true},
	{ID: "2", Name: "Dal Makhani", Category: "Mains", IsAvailable: true},
	{ID: "3", Name: "Garlic Naan", Category: "Breads", IsAvailable: true},
	{ID: "4", Name: "Old Special", Category: "Mains", IsAvailable: false},
	{ID: "5", Name: "Masala Chai", Category: "Drinks", IsAvailable: true},
}

func TestBuildGroupsByCategoryInOrder(t *testing.T) {
	m := Build(products)
	cats := m.Categories()
	want := []string{"Breads", "Mains", "Drinks"}
	if len(cats) != len(want) {
		t.Fatalf("categories = %v", cats)
	}
	for i := range want {
		if cats[i] != want[i] {
			t.Fatalf("categories = %v, want %v", cats, want)
		}
	}
	if got := m.Category("Breads"); len(got) != 2 {
		t.Errorf("Breads has %d products, want 2", len(got))
	}
}

func TestBuildDropsUnavailable(t *testing.T) {
	m := Build(products)
	for _, p := range m.Category("Mains") {
		if !p.IsAvailable {
			t.Fatalf("unavailable product %q kept in menu", p.Name)
		}
	}
}

func TestSearchIsCaseInsensitiveAndCapped(t *testing.T) {
	m := Build(products)
	got := m.Search("NAAN", 5)
	if len(got) != 2 {
		t.Fatalf("Search(NAAN) = %d results, want 2", len(got))
	}
	if got := m.Search("a", 2); len(got) != 2 {
		t.Fatalf("limit not applied: %d results", len(got))
	}
}

func TestSearchEmptyQuery(t *testing.T) {
	if got := Build(products).Search("  ", 5); got != nil {
		t.Fatalf("empty query returned %v", got)
	}
}
