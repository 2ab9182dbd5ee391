package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateMatch_NoUserTags(t *testing.T) {
	m := CalculateMatch(nil, []string{"elegant", "classic"}, nil)

	assert.Equal(t, 0, m.Score)
	assert.Equal(t, 0, m.MatchPercentage)
	assert.Empty(t, m.Matches)
	assert.Equal(t, []string{"elegant", "classic"}, m.AdditionalFeatures)
}

func TestCalculateMatch_DirectTags(t *testing.T) {
	m := CalculateMatch(
		[]string{"romantic", "elegant"},
		[]string{"romantic", "elegant", "luxury"},
		nil,
	)

	assert.Equal(t, 2, m.Score)
	assert.Equal(t, 100, m.MatchPercentage)
	assert.ElementsMatch(t, []string{"romantic", "elegant"}, m.Matches)
	assert.Equal(t, []string{"luxury"}, m.AdditionalFeatures)
}

func TestCalculateMatch_SubstringBothDirections(t *testing.T) {
	// User tag contained in product tag
	m := CalculateMatch([]string{"cascade"}, []string{"cascade-design"}, nil)
	assert.Equal(t, 1, m.Score)

	// Product tag contained in user tag
	m = CalculateMatch([]string{"cascade-style"}, []string{"cascade"}, nil)
	assert.Equal(t, 1, m.Score)

	// Case-insensitive
	m = CalculateMatch([]string{"Romantic"}, []string{"romantic"}, nil)
	assert.Equal(t, 1, m.Score)
}

func TestCalculateMatch_Metadata(t *testing.T) {
	metadata := map[string]interface{}{
		"outfit_style":   []string{"wedding", "formal"},
		"trendiness":     "timeless",
		"style_intensity": 7,
	}

	m := CalculateMatch([]string{"wedding", "timeless", "bohemian"}, nil, metadata)

	assert.Equal(t, 2, m.Score)
	assert.Contains(t, m.Matches, "outfit_style: wedding, formal")
	assert.Contains(t, m.Matches, "trendiness: timeless")
	assert.Equal(t, 67, m.MatchPercentage)
}

func TestCalculateMatch_DedupesAcrossSources(t *testing.T) {
	// "classic" hits both a product tag and a metadata value; it
	// counts once as a tag match plus once per metadata field.
	metadata := map[string]interface{}{
		"design_pattern": []string{"classic"},
	}

	m := CalculateMatch([]string{"classic"}, []string{"classic"}, metadata)

	assert.Equal(t, []string{"classic", "design_pattern: classic"}, m.Matches)
	assert.Equal(t, 2, m.Score)
	assert.Equal(t, 100, m.MatchPercentage, "percentage is capped at 100")
}

func TestCalculateMatch_NoMatches(t *testing.T) {
	m := CalculateMatch([]string{"bohemian"}, []string{"classic"}, nil)

	assert.Equal(t, 0, m.Score)
	assert.Equal(t, 0, m.MatchPercentage)
	assert.Equal(t, []string{"classic"}, m.AdditionalFeatures)
}
