package catalog

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Match is the scored comparison of a shopper's preferences against
// one product. Score counts distinct matched requirements;
// MatchPercentage is that count over the number of requested tags,
// capped at 100. AdditionalFeatures lists product tags the shopper
// never asked about.
type Match struct {
	Score              int      `json:"score"`
	Matches            []string `json:"matches"`
	AdditionalFeatures []string `json:"additionalFeatures"`
	MatchPercentage    int      `json:"matchPercentage"`
}

func tagsOverlap(a, b string) bool {
	la, lb := strings.ToLower(a), strings.ToLower(b)
	return strings.Contains(la, lb) || strings.Contains(lb, la)
}

// CalculateMatch scores userTags against a product's tags and
// metadata. Tag comparison is substring-based in both directions, so
// "romantic" matches a "romantic-vintage" product tag and vice versa.
func CalculateMatch(userTags, productTags []string, productMetadata map[string]interface{}) Match {
	if len(userTags) == 0 {
		return Match{
			Matches:            []string{},
			AdditionalFeatures: productTags,
		}
	}

	var direct []string
	for _, tag := range userTags {
		for _, productTag := range productTags {
			if tagsOverlap(productTag, tag) {
				direct = append(direct, tag)
				break
			}
		}
	}

	metadataKeys := make([]string, 0, len(productMetadata))
	for key := range productMetadata {
		metadataKeys = append(metadataKeys, key)
	}
	sort.Strings(metadataKeys)

	var metadataMatches []string
	for _, tag := range userTags {
		lower := strings.ToLower(tag)
		for _, key := range metadataKeys {
			switch v := productMetadata[key].(type) {
			case []string:
				for _, item := range v {
					if strings.Contains(strings.ToLower(item), lower) {
						metadataMatches = append(metadataMatches, fmt.Sprintf("%s: %s", key, strings.Join(v, ", ")))
						break
					}
				}
			case string:
				if strings.Contains(strings.ToLower(v), lower) {
					metadataMatches = append(metadataMatches, fmt.Sprintf("%s: %s", key, v))
				}
			}
		}
	}

	unique := dedupe(append(direct, metadataMatches...))

	var additional []string
	for _, productTag := range productTags {
		requested := false
		for _, tag := range userTags {
			if tagsOverlap(productTag, tag) {
				requested = true
				break
			}
		}
		if !requested {
			additional = append(additional, productTag)
		}
	}

	percentage := int(math.Round(float64(len(unique)) / float64(len(userTags)) * 100))
	if percentage > 100 {
		percentage = 100
	}

	return Match{
		Score:              len(unique),
		Matches:            unique,
		AdditionalFeatures: additional,
		MatchPercentage:    percentage,
	}
}

func dedupe(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}
