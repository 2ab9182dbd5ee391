package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_FindByID(t *testing.T) {
	c := New()

	p, ok := c.FindByID("product-1")
	require.True(t, ok)
	assert.Equal(t, "Solitaire Radiance Ring", p.Name)

	// Bare ids are normalized into the product namespace
	p, ok = c.FindByID("1")
	require.True(t, ok)
	assert.Equal(t, "product-1", p.ID)

	_, ok = c.FindByID("product-999")
	assert.False(t, ok)
}

func TestCatalog_ByCategory(t *testing.T) {
	c := New()

	for _, p := range c.ByCategory("Ring") {
		assert.Equal(t, "Ring", p.Category)
	}
	assert.NotEmpty(t, c.ByCategory("Ring"))

	// Pendants and necklaces are one shopper-facing group
	neckwear := c.ByCategory("Pendant")
	categories := make(map[string]bool)
	for _, p := range neckwear {
		categories[p.Category] = true
	}
	assert.True(t, categories["Pendant"])
	assert.True(t, categories["Necklace"])

	// Empty category means everything
	assert.Len(t, c.ByCategory(""), len(c.All()))
}

func TestCatalog_Recommend_RanksByScore(t *testing.T) {
	c := New()

	recs := c.Recommend("Ring", []string{"classic", "solitaire", "diamond"}, nil, 0)
	require.NotEmpty(t, recs)

	for i := 1; i < len(recs); i++ {
		assert.GreaterOrEqual(t, recs[i-1].Match.Score, recs[i].Match.Score)
	}
	assert.Equal(t, "Solitaire Radiance Ring", recs[0].Product.Name)
	assert.Equal(t, "Ring", recs[0].Product.Category)
}

func TestCatalog_Recommend_Limit(t *testing.T) {
	c := New()

	recs := c.Recommend("", []string{"elegant"}, nil, 3)
	assert.Len(t, recs, 3)
}

func TestCatalog_Recommend_MetadataQuery(t *testing.T) {
	c := New()

	// Metadata string values act as extra preference tags; the
	// integer ranges a stylist sends are ignored.
	metadata := map[string]interface{}{
		"outfit_style":    []interface{}{"wedding"},
		"formality_level": []interface{}{8.0, 9.0},
	}
	recs := c.Recommend("Ring", nil, metadata, 2)
	require.NotEmpty(t, recs)
	assert.Greater(t, recs[0].Match.Score, 0)
	assert.Contains(t, []string{"Solitaire Radiance Ring", "Eterna Band"}, recs[0].Product.Name)
}

func TestCatalog_Recommend_NoPreferences(t *testing.T) {
	c := New()

	recs := c.Recommend("Bracelet", nil, nil, 0)
	require.Len(t, recs, 2)
	for _, rec := range recs {
		assert.Equal(t, 0, rec.Match.Score)
		assert.NotEmpty(t, rec.Match.AdditionalFeatures)
	}
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "$895", FormatPrice(895))
	assert.Equal(t, "$2,495", FormatPrice(2495))
	assert.Equal(t, "$1,250,000", FormatPrice(1250000))
}

func TestCategoryDisplayName(t *testing.T) {
	assert.Equal(t, "Earrings", CategoryDisplayName("Earring"))
	assert.Equal(t, "Rings", CategoryDisplayName("Ring"))
	assert.Equal(t, "Custom", CategoryDisplayName("Custom"))
}

func TestSeedProductsAreWellFormed(t *testing.T) {
	for _, p := range New().All() {
		assert.NotEmpty(t, p.ID)
		assert.NotEmpty(t, p.Name)
		assert.Contains(t, []string{"Ring", "Earring", "Pendant", "Bracelet", "Necklace"}, p.Category)
		assert.Greater(t, p.Price, 0)
		assert.NotEmpty(t, p.Tags)
		assert.NotEmpty(t, p.Metadata)
	}
}
