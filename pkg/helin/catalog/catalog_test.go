package catalog

import "testing"

func TestLoadEmbeddedCatalog(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(c.Faqs()) == 0 {
		t.Fatal("embedded catalog has no FAQ items")
	}
	if len(c.Products()) == 0 {
		t.Fatal("embedded catalog has no products")
	}

	greeting, ok := c.FaqByID("faq-greeting")
	if !ok {
		t.Fatal("faq-greeting missing from embedded catalog")
	}
	if greeting.Answer == "" {
		t.Error("faq-greeting has an empty answer")
	}

	for _, f := range c.Faqs() {
		if f.Answer == "" {
			t.Errorf("faq %s has an empty answer", f.ID)
		}
		if len(f.Keywords) == 0 {
			t.Errorf("faq %s has no keywords", f.ID)
		}
	}
}

func TestProductLookup(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	bySlug, ok := c.ProductBySlug("gulet-azra")
	if !ok {
		t.Fatal("gulet-azra missing from embedded catalog")
	}
	byID, ok := c.ProductByID(bySlug.ID)
	if !ok {
		t.Fatalf("product id %s not resolvable", bySlug.ID)
	}
	if byID.Slug != bySlug.Slug {
		t.Errorf("id and slug lookups disagree: %q vs %q", byID.Slug, bySlug.Slug)
	}

	if _, ok := c.ProductBySlug("no-such-boat"); ok {
		t.Error("unknown slug resolved to a product")
	}
}

func TestPriceOnRequestProductExists(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	var withoutPrice int
	for _, p := range c.Products() {
		if !p.HasPrice() {
			withoutPrice++
		}
	}
	if withoutPrice == 0 {
		t.Error("catalog carries no price-on-request product")
	}
}

func TestNewRejectsDuplicates(t *testing.T) {
	tests := []struct {
		name     string
		faqs     []FaqItem
		products []Product
	}{
		{
			name: "duplicate faq id",
			faqs: []FaqItem{
				{ID: "faq-x", Keywords: []string{"a"}, Answer: "a"},
				{ID: "faq-x", Keywords: []string{"b"}, Answer: "b"},
			},
		},
		{
			name: "empty faq id",
			faqs: []FaqItem{{Keywords: []string{"a"}, Answer: "a"}},
		},
		{
			name: "duplicate product slug",
			products: []Product{
				{ID: "p1", Slug: "boat", Name: "Boat 1"},
				{ID: "p2", Slug: "boat", Name: "Boat 2"},
			},
		},
		{
			name: "duplicate product id",
			products: []Product{
				{ID: "p1", Slug: "boat-a", Name: "Boat A"},
				{ID: "p1", Slug: "boat-b", Name: "Boat B"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.faqs, tt.products); err == nil {
				t.Error("New() accepted invalid catalog")
			}
		})
	}
}

func TestFaqOrderIsRegistrationOrder(t *testing.T) {
	c, err := New([]FaqItem{
		{ID: "faq-1", Keywords: []string{"one"}, Answer: "1"},
		{ID: "faq-2", Keywords: []string{"two"}, Answer: "2"},
		{ID: "faq-3", Keywords: []string{"three"}, Answer: "3"},
	}, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	want := []string{"faq-1", "faq-2", "faq-3"}
	got := c.Faqs()
	for i, f := range got {
		if f.ID != want[i] {
			t.Errorf("Faqs()[%d] = %s, want %s", i, f.ID, want[i])
		}
	}
}
