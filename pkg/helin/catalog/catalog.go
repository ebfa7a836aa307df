package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
)

//go:embed data/faq.json data/products.json
var dataFS embed.FS

// FaqItem is a single entry of the static FAQ catalog.
type FaqItem struct {
	ID       string   `json:"id"`
	Category string   `json:"category"`
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	Keywords []string `json:"keywords"`
}

// Product is a single entry of the static product catalog.
type Product struct {
	ID          string  `json:"id"`
	Slug        string  `json:"slug"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price,omitempty"`
	Currency    string  `json:"currency,omitempty"`
	Capacity    int     `json:"capacity,omitempty"`
	Description string  `json:"description,omitempty"`
}

// HasPrice reports whether the product carries a quotable price.
// Products without one are answered with the price-on-request reply.
func (p Product) HasPrice() bool {
	return p.Price > 0
}

// Catalog holds the FAQ and product catalogs, read-only after load.
// Slices preserve registration order so keyword-score ties resolve
// deterministically (first registered wins).
type Catalog struct {
	faqs     []FaqItem
	faqByID  map[string]FaqItem
	products []Product
	byID     map[string]Product
	bySlug   map[string]Product
}

// New builds a catalog from already-decoded items, rejecting duplicate
// FAQ ids, product ids and product slugs.
func New(faqs []FaqItem, products []Product) (*Catalog, error) {
	c := &Catalog{
		faqs:     faqs,
		faqByID:  make(map[string]FaqItem, len(faqs)),
		products: products,
		byID:     make(map[string]Product, len(products)),
		bySlug:   make(map[string]Product, len(products)),
	}

	for _, f := range faqs {
		if f.ID == "" {
			return nil, fmt.Errorf("catalog: faq with empty id (question: %q)", f.Question)
		}
		if _, ok := c.faqByID[f.ID]; ok {
			return nil, fmt.Errorf("catalog: duplicate faq id %q", f.ID)
		}
		c.faqByID[f.ID] = f
	}

	for _, p := range products {
		if p.ID == "" || p.Slug == "" {
			return nil, fmt.Errorf("catalog: product with empty id or slug (name: %q)", p.Name)
		}
		if _, ok := c.byID[p.ID]; ok {
			return nil, fmt.Errorf("catalog: duplicate product id %q", p.ID)
		}
		if _, ok := c.bySlug[p.Slug]; ok {
			return nil, fmt.Errorf("catalog: duplicate product slug %q", p.Slug)
		}
		c.byID[p.ID] = p
		c.bySlug[p.Slug] = p
	}

	return c, nil
}

// Load decodes the embedded catalogs. Called once at process start.
func Load() (*Catalog, error) {
	faqRaw, err := dataFS.ReadFile("data/faq.json")
	if err != nil {
		return nil, fmt.Errorf("catalog: read faq data: %w", err)
	}
	var faqs []FaqItem
	if err := json.Unmarshal(faqRaw, &faqs); err != nil {
		return nil, fmt.Errorf("catalog: decode faq data: %w", err)
	}

	productRaw, err := dataFS.ReadFile("data/products.json")
	if err != nil {
		return nil, fmt.Errorf("catalog: read product data: %w", err)
	}
	var products []Product
	if err := json.Unmarshal(productRaw, &products); err != nil {
		return nil, fmt.Errorf("catalog: decode product data: %w", err)
	}

	return New(faqs, products)
}

// Faqs returns the FAQ items in registration order.
func (c *Catalog) Faqs() []FaqItem {
	return c.faqs
}

// FaqByID looks up a FAQ item by id.
func (c *Catalog) FaqByID(id string) (FaqItem, bool) {
	f, ok := c.faqByID[id]
	return f, ok
}

// Products returns the products in registration order.
func (c *Catalog) Products() []Product {
	return c.products
}

// ProductByID looks up a product by id.
func (c *Catalog) ProductByID(id string) (Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// ProductBySlug looks up a product by slug.
func (c *Catalog) ProductBySlug(slug string) (Product, bool) {
	p, ok := c.bySlug[slug]
	return p, ok
}
