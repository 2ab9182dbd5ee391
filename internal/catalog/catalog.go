package catalog

import (
	"sort"
	"strings"
)

// Recommendation pairs a product with its match analysis
type Recommendation struct {
	Product Product `json:"product"`
	Match   Match   `json:"match"`
}

// Catalog is an in-memory product inventory
type Catalog struct {
	products []Product
}

// New creates a Catalog over the built-in inventory
func New() *Catalog {
	return &Catalog{products: seedProducts}
}

// NewWithProducts creates a Catalog over a custom inventory
func NewWithProducts(products []Product) *Catalog {
	return &Catalog{products: products}
}

// All returns every product
func (c *Catalog) All() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// FindByID looks up one product, accepting both "product-7" and the
// bare "7" form.
func (c *Catalog) FindByID(id string) (*Product, bool) {
	normalized := normalizeID(id)
	for i := range c.products {
		if c.products[i].ID == normalized {
			return &c.products[i], true
		}
	}
	return nil, false
}

// ByCategory returns products in one category. Necklaces and pendants
// are interchangeable from the shopper's point of view, so asking for
// either returns both.
func (c *Catalog) ByCategory(category string) []Product {
	var out []Product
	for _, p := range c.products {
		if categoryMatches(category, p.Category) {
			out = append(out, p)
		}
	}
	return out
}

func categoryMatches(want, have string) bool {
	if want == "" || strings.EqualFold(want, have) {
		return true
	}
	neckwear := func(cat string) bool {
		return strings.EqualFold(cat, "Pendant") || strings.EqualFold(cat, "Necklace")
	}
	return neckwear(want) && neckwear(have)
}

// Recommend ranks the category's products against the stylist query
// and returns the top limit results. String values inside the query
// metadata count as extra preference tags. A limit of zero or less
// means no cap.
func (c *Catalog) Recommend(category string, tags []string, metadata map[string]interface{}, limit int) []Recommendation {
	userTags := append([]string{}, tags...)
	userTags = append(userTags, metadataTags(metadata)...)

	candidates := c.ByCategory(category)
	recs := make([]Recommendation, 0, len(candidates))
	for _, p := range candidates {
		recs = append(recs, Recommendation{
			Product: p,
			Match:   CalculateMatch(userTags, p.Tags, p.Metadata),
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].Match.Score != recs[j].Match.Score {
			return recs[i].Match.Score > recs[j].Match.Score
		}
		return recs[i].Product.Name < recs[j].Product.Name
	})

	if limit > 0 && len(recs) > limit {
		recs = recs[:limit]
	}
	return recs
}

// metadataTags flattens the string-valued parts of a stylist metadata
// query into plain preference tags. Numeric ranges have no tag
// equivalent and are skipped.
func metadataTags(metadata map[string]interface{}) []string {
	keys := make([]string, 0, len(metadata))
	for key := range metadata {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var out []string
	for _, key := range keys {
		switch v := metadata[key].(type) {
		case string:
			out = append(out, v)
		case []string:
			out = append(out, v...)
		case []interface{}:
			for _, item := range v {
				if s, ok := item.(string); ok {
					out = append(out, s)
				}
			}
		}
	}
	return out
}
