package catalog

// seedProducts is the kiosk's built-in inventory. Tags and metadata
// use the same vocabulary the stylist prompt advertises, so model
// queries line up with what products actually carry.
var seedProducts = []Product{
	{
		ID:          "product-1",
		Name:        "Solitaire Radiance Ring",
		Category:    "Ring",
		Price:       2495,
		Image:       "/products/solitaire-radiance-ring.jpg",
		Description: "A brilliant round-cut diamond held in a timeless solitaire setting",
		Tags:        []string{"solitaire", "classic", "elegant", "round-cut", "diamond-heavy", "special-occasion"},
		Metadata: map[string]interface{}{
			"materials":       []string{"diamond", "gold"},
			"gemstone_count":  "single",
			"setting_style":   "solitaire",
			"design_pattern":  []string{"classic", "timeless", "elegant"},
			"outfit_style":    []string{"formal", "wedding", "special-occasion"},
			"trendiness":      "timeless",
			"style_intensity": 6,
			"formality_level": 8,
		},
	},
	{
		ID:          "product-2",
		Name:        "Trinity Embrace Ring",
		Category:    "Ring",
		Price:       3150,
		Image:       "/products/trinity-embrace-ring.jpg",
		Description: "Three stones intertwined in a sculpted trinity band",
		Tags:        []string{"trinity-design", "three-stone", "romantic", "symbolic", "meaningful"},
		Metadata: map[string]interface{}{
			"materials":       []string{"diamond", "gold"},
			"gemstone_count":  "three",
			"setting_style":   "trinity",
			"design_pattern":  []string{"romantic", "symbolic"},
			"outfit_style":    []string{"romantic", "sentimental", "evening"},
			"trendiness":      "classic",
			"style_intensity": 7,
			"formality_level": 7,
		},
	},
	{
		ID:          "product-3",
		Name:        "Geometric Apex Ring",
		Category:    "Ring",
		Price:       1895,
		Image:       "/products/geometric-apex-ring.jpg",
		Description: "Sharp modern lines with a split geometric setting",
		Tags:        []string{"modern", "geometric", "contemporary", "split-design", "bold"},
		Metadata: map[string]interface{}{
			"materials":       []string{"gold"},
			"gemstone_count":  "multiple",
			"setting_style":   "split",
			"design_pattern":  []string{"geometric", "modern", "bold"},
			"outfit_style":    []string{"modern", "business", "evening"},
			"trendiness":      "trendy",
			"style_intensity": 8,
			"formality_level": 6,
		},
	},
	{
		ID:          "product-4",
		Name:        "Eterna Band",
		Category:    "Ring",
		Price:       4250,
		Image:       "/products/eterna-band.jpg",
		Description: "A full eternity band of round diamonds for a lifetime of sparkle",
		Tags:        []string{"eternity-band", "wedding", "eternal", "luxury", "diamond-heavy", "classic"},
		Metadata: map[string]interface{}{
			"materials":       []string{"diamond", "gold"},
			"gemstone_count":  "multiple",
			"setting_style":   "eternity",
			"design_pattern":  []string{"classic", "timeless"},
			"outfit_style":    []string{"wedding", "formal"},
			"trendiness":      "timeless",
			"style_intensity": 7,
			"formality_level": 9,
		},
	},
	{
		ID:          "product-5",
		Name:        "Halo Bloom Earrings",
		Category:    "Earring",
		Price:       1650,
		Image:       "/products/halo-bloom-earrings.jpg",
		Description: "Floral halo studs with a soft feminine sparkle",
		Tags:        []string{"halo-style", "floral", "feminine", "delicate", "romantic"},
		Metadata: map[string]interface{}{
			"materials":       []string{"diamond", "gold"},
			"gemstone_count":  "multiple",
			"setting_style":   "halo",
			"design_pattern":  []string{"floral", "romantic", "organic"},
			"outfit_style":    []string{"feminine", "romantic", "special-occasion"},
			"trendiness":      "classic",
			"style_intensity": 5,
			"formality_level": 6,
		},
	},
	{
		ID:          "product-6",
		Name:        "Cascade Chandelier Earrings",
		Category:    "Earring",
		Price:       3875,
		Image:       "/products/cascade-chandelier-earrings.jpg",
		Description: "Dramatic cascading drops that catch light from every angle",
		Tags:        []string{"chandelier-style", "cascade-design", "dramatic", "statement", "luxury", "drop-style"},
		Metadata: map[string]interface{}{
			"materials":       []string{"diamond", "gold"},
			"gemstone_count":  "multiple",
			"setting_style":   "chandelier",
			"design_pattern":  []string{"cascade", "flowing", "bold"},
			"outfit_style":    []string{"evening", "formal", "special-occasion"},
			"trendiness":      "classic",
			"style_intensity": 9,
			"formality_level": 9,
		},
	},
	{
		ID:          "product-7",
		Name:        "Petal Whisper Studs",
		Category:    "Earring",
		Price:       795,
		Image:       "/products/petal-whisper-studs.jpg",
		Description: "Minimal leaf-shaped studs made for everyday wear",
		Tags:        []string{"minimalist", "everyday", "leaf-design", "delicate", "contemporary"},
		Metadata: map[string]interface{}{
			"materials":       []string{"gold"},
			"gemstone_count":  "single",
			"setting_style":   "leaf",
			"design_pattern":  []string{"minimalist", "nature-inspired"},
			"outfit_style":    []string{"everyday", "casual", "work"},
			"trendiness":      "timeless",
			"style_intensity": 3,
			"formality_level": 4,
		},
	},
	{
		ID:          "product-8",
		Name:        "Celestial Aurora Pendant",
		Category:    "Pendant",
		Price:       2250,
		Image:       "/products/celestial-aurora-pendant.jpg",
		Description: "An aurora-inspired pendant glowing with celestial enamel accents",
		Tags:        []string{"celestial", "aurora-inspired", "ethereal", "enamel-accent", "cosmic", "unique"},
		Metadata: map[string]interface{}{
			"materials":       []string{"diamond", "enamel", "gold"},
			"gemstone_count":  "multiple",
			"setting_style":   "drop",
			"design_pattern":  []string{"celestial", "ethereal", "artistic"},
			"outfit_style":    []string{"evening", "artistic", "special-occasion"},
			"trendiness":      "trendy",
			"style_intensity": 7,
			"formality_level": 6,
		},
	},
	{
		ID:          "product-9",
		Name:        "Infinity Heart Pendant",
		Category:    "Pendant",
		Price:       1195,
		Image:       "/products/infinity-heart-pendant.jpg",
		Description: "An infinity loop cradling a heart, a keepsake of lasting love",
		Tags:        []string{"infinity-symbol", "heart", "love", "romantic", "sentimental", "valentine", "meaningful"},
		Metadata: map[string]interface{}{
			"materials":       []string{"diamond", "gold"},
			"gemstone_count":  "single",
			"setting_style":   "infinity",
			"design_pattern":  []string{"romantic", "symbolic"},
			"outfit_style":    []string{"romantic", "sentimental", "everyday"},
			"trendiness":      "classic",
			"style_intensity": 4,
			"formality_level": 5,
		},
	},
	{
		ID:          "product-10",
		Name:        "Emerald Eden Pendant",
		Category:    "Pendant",
		Price:       5400,
		Image:       "/products/emerald-eden-pendant.jpg",
		Description: "A deep green emerald wrapped in vine-worked gold",
		Tags:        []string{"emerald", "colored-gems", "vine-design", "luxury", "nature-inspired", "paradise", "eden"},
		Metadata: map[string]interface{}{
			"materials":       []string{"emerald", "gold"},
			"gemstone_count":  "single",
			"setting_style":   "vine",
			"design_pattern":  []string{"nature-inspired", "organic", "elegant"},
			"outfit_style":    []string{"formal", "evening", "cultural"},
			"trendiness":      "classic",
			"style_intensity": 7,
			"formality_level": 8,
		},
	},
	{
		ID:          "product-11",
		Name:        "Lace Heritage Necklace",
		Category:    "Necklace",
		Price:       2950,
		Image:       "/products/lace-heritage-necklace.jpg",
		Description: "Intricate lace-pattern goldwork with a cultural, regal air",
		Tags:        []string{"lace-pattern", "cultural", "regal", "elegant", "special-occasion", "feminine"},
		Metadata: map[string]interface{}{
			"materials":       []string{"gold"},
			"gemstone_count":  "multiple",
			"setting_style":   "layered",
			"design_pattern":  []string{"lace", "elegant", "cultural"},
			"outfit_style":    []string{"cultural", "wedding", "special-occasion"},
			"trendiness":      "timeless",
			"style_intensity": 6,
			"formality_level": 8,
		},
	},
	{
		ID:          "product-12",
		Name:        "Helios Statement Necklace",
		Category:    "Necklace",
		Price:       6800,
		Image:       "/products/helios-statement-necklace.jpg",
		Description: "A radiant sun-inspired collar worthy of its namesake",
		Tags:        []string{"helios", "sun-inspired", "radiant", "statement", "ultra-luxury", "bold", "impressive"},
		Metadata: map[string]interface{}{
			"materials":       []string{"diamond", "gold"},
			"gemstone_count":  "multiple",
			"setting_style":   "crown",
			"design_pattern":  []string{"radiant", "bold", "mythological"},
			"outfit_style":    []string{"evening", "formal"},
			"trendiness":      "classic",
			"style_intensity": 10,
			"formality_level": 9,
		},
	},
	{
		ID:          "product-13",
		Name:        "Paan Heritage Bangle",
		Category:    "Bracelet",
		Price:       2150,
		Image:       "/products/paan-heritage-bangle.jpg",
		Description: "A paan-collection bangle with tribal engraving and enamel color",
		Tags:        []string{"paan-collection", "bangle", "cultural", "tribal", "enamel-accent", "artistic"},
		Metadata: map[string]interface{}{
			"materials":       []string{"gold", "enamel"},
			"gemstone_count":  "multiple",
			"setting_style":   "stackable",
			"design_pattern":  []string{"tribal", "cultural", "artistic"},
			"outfit_style":    []string{"cultural", "special-occasion"},
			"trendiness":      "classic",
			"style_intensity": 7,
			"formality_level": 6,
		},
	},
	{
		ID:          "product-14",
		Name:        "Butterfly Reverie Bracelet",
		Category:    "Bracelet",
		Price:       1475,
		Image:       "/products/butterfly-reverie-bracelet.jpg",
		Description: "Whimsical butterflies in flight along a flexible gold chain",
		Tags:        []string{"butterfly", "whimsical", "playful", "flexible", "feminine", "delicate"},
		Metadata: map[string]interface{}{
			"materials":       []string{"diamond", "gold"},
			"gemstone_count":  "multiple",
			"setting_style":   "butterfly",
			"design_pattern":  []string{"organic", "flowing"},
			"outfit_style":    []string{"feminine", "casual", "everyday"},
			"trendiness":      "trendy",
			"style_intensity": 5,
			"formality_level": 4,
		},
	},
	{
		ID:          "product-15",
		Name:        "Colossus Signet Ring",
		Category:    "Ring",
		Price:       3600,
		Image:       "/products/colossus-signet-ring.jpg",
		Description: "A powerful sculpted signet with serious presence",
		Tags:        []string{"signet-style", "colossus", "powerful", "bold", "sculpted", "statement", "confident"},
		Metadata: map[string]interface{}{
			"materials":       []string{"gold"},
			"gemstone_count":  "single",
			"setting_style":   "signet",
			"design_pattern":  []string{"sculpted", "bold", "colossus"},
			"outfit_style":    []string{"business", "evening", "modern"},
			"trendiness":      "classic",
			"style_intensity": 8,
			"formality_level": 7,
		},
	},
}
