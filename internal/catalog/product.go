package catalog

import (
	"fmt"
	"strings"
)

// Product is one catalog entry. Tags and Metadata carry the styling
// vocabulary the stylist matches against; Metadata values are strings,
// string lists, or integers depending on the field.
type Product struct {
	ID          string                 `json:"id"`
	Name        string                 `json:"name"`
	Category    string                 `json:"category"`
	Price       int                    `json:"price"`
	Image       string                 `json:"image"`
	Description string                 `json:"description"`
	Tags        []string               `json:"tags"`
	Metadata    map[string]interface{} `json:"metadata"`
}

// FormatPrice renders a price in the kiosk's display format
func FormatPrice(price int) string {
	s := fmt.Sprintf("%d", price)
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	return "$" + s
}

// DisplayPrice is the shopper-facing price string
func (p *Product) DisplayPrice() string {
	return FormatPrice(p.Price)
}

// CategoryDisplayName pluralizes a category for display
func CategoryDisplayName(category string) string {
	names := map[string]string{
		"Earring":  "Earrings",
		"Ring":     "Rings",
		"Pendant":  "Pendants",
		"Bracelet": "Bracelets",
		"Necklace": "Necklaces",
	}
	if name, ok := names[category]; ok {
		return name
	}
	return category
}

// StyleIntensityDescription describes a 1-10 style intensity score
func StyleIntensityDescription(intensity int) string {
	switch {
	case intensity <= 3:
		return "Subtle & Minimal"
	case intensity <= 5:
		return "Moderate & Balanced"
	case intensity <= 7:
		return "Bold & Statement"
	case intensity <= 9:
		return "Dramatic & Eye-catching"
	default:
		return "Ultra-dramatic & Show-stopping"
	}
}

// FormalityDescription describes a 1-10 formality level
func FormalityDescription(formality int) string {
	switch {
	case formality <= 3:
		return "Casual & Everyday"
	case formality <= 5:
		return "Smart Casual"
	case formality <= 7:
		return "Semi-formal"
	case formality <= 9:
		return "Formal & Elegant"
	default:
		return "Ultra-formal & Black-tie"
	}
}

// normalizeID maps bare ids onto the catalog's "product-" namespace
func normalizeID(id string) string {
	if strings.HasPrefix(id, "product-") {
		return id
	}
	return "product-" + id
}
