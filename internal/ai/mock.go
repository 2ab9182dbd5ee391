package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/MayankBansal12/evol-kiosk/internal/shared/types"
)

// MockClient is a scripted stylist used in development and tests. It
// walks a fixed question sequence and switches to a product query once
// enough shopper answers are in, or as soon as the shopper asks for
// recommendations outright.
type MockClient struct{}

// NewMockClient creates a scripted stylist
func NewMockClient() *MockClient { return &MockClient{} }

func (m *MockClient) Respond(_ context.Context, turns []types.Turn, userName, _ string) (*Response, error) {
	if shouldRecommend(turns) {
		return m.recommend(turns), nil
	}
	return m.nextQuestion(turns, userName), nil
}

// shouldRecommend ends the survey after five shopper answers, or
// earlier when the shopper explicitly asks to see pieces.
func shouldRecommend(turns []types.Turn) bool {
	userCount := 0
	lastUser := ""
	for _, turn := range turns {
		if turn.Role == types.RoleUser {
			userCount++
			lastUser = turn.Content
		}
	}
	if userCount >= 5 {
		return true
	}

	lower := strings.ToLower(lastUser)
	return strings.Contains(lower, "recommend") ||
		strings.Contains(lower, "show me") ||
		strings.Contains(lower, "suggestions")
}

// asked reports whether any assistant turn already touched on one of
// the given topics.
func asked(turns []types.Turn, topics ...string) bool {
	for _, turn := range turns {
		if turn.Role != types.RoleAssistant {
			continue
		}
		lower := strings.ToLower(turn.Content)
		for _, topic := range topics {
			if strings.Contains(lower, topic) {
				return true
			}
		}
	}
	return false
}

func (m *MockClient) nextQuestion(turns []types.Turn, userName string) *Response {
	greeting := ""
	if userName != "" {
		greeting = ", " + userName
	}

	userCount := 0
	for _, turn := range turns {
		if turn.Role == types.RoleUser {
			userCount++
		}
	}

	switch {
	case userCount == 0:
		return &Response{
			Type:    TypeQuestion,
			Message: fmt.Sprintf("Beep boop! Hello%s! I'm Evol-e, your jewelry stylist today. Who are you looking to buy jewelry for?", greeting),
			Options: []types.Option{
				{Value: "self", Label: "For myself"},
				{Value: "partner", Label: "For my partner"},
				{Value: "family", Label: "For a family member"},
				{Value: "friend", Label: "For a friend"},
				{Value: "other", Label: "Someone else"},
			},
		}
	case !asked(turns, "type", "piece"):
		return &Response{
			Type:    TypeQuestion,
			Message: fmt.Sprintf("Wonderful%s! What type of jewelry piece are you interested in today?", greeting),
			Options: []types.Option{
				{Value: "ring", Label: "Ring"},
				{Value: "necklace", Label: "Necklace"},
				{Value: "bracelet", Label: "Bracelet"},
				{Value: "earrings", Label: "Earrings"},
				{Value: "other", Label: "Something else"},
			},
		}
	case !asked(turns, "occasion", "event"):
		return &Response{
			Type:    TypeQuestion,
			Message: "Excellent choice! And what's the occasion you're shopping for?",
			Options: []types.Option{
				{Value: "everyday", Label: "Everyday wear"},
				{Value: "special", Label: "Special occasion"},
				{Value: "wedding", Label: "Wedding"},
				{Value: "engagement", Label: "Engagement"},
				{Value: "anniversary", Label: "Anniversary"},
				{Value: "gift", Label: "Birthday/Gift"},
			},
		}
	case !asked(turns, "budget", "price", "spend"):
		return &Response{
			Type:    TypeQuestion,
			Message: "Processing... And what price range are you considering for this piece?",
			Options: []types.Option{
				{Value: "budget", Label: "Under $500"},
				{Value: "mid-range", Label: "$500 - $2,000"},
				{Value: "premium", Label: "$2,000 - $5,000"},
				{Value: "luxury", Label: "Over $5,000"},
			},
		}
	case !asked(turns, "style", "design"):
		return &Response{
			Type:    TypeQuestion,
			Message: "Thank you! Now, which style do you find yourself drawn to?",
			Options: []types.Option{
				{Value: "classic", Label: "Classic & Timeless"},
				{Value: "modern", Label: "Modern & Contemporary"},
				{Value: "minimal", Label: "Minimal & Clean"},
				{Value: "statement", Label: "Bold & Statement"},
			},
		}
	default:
		return &Response{
			Type:    TypeQuestion,
			Message: fmt.Sprintf("Circuit activated%s! I think I have enough to suggest some beautiful pieces. Would you like to see my recommendations?", greeting),
			Options: []types.Option{
				{Value: "show-recommendations", Label: "Show me recommendations"},
				{Value: "more-questions", Label: "Ask me more questions"},
			},
		}
	}
}

func (m *MockClient) recommend(turns []types.Turn) *Response {
	category := preferredCategory(turns)
	style := preferredStyle(turns)

	tags := []string{style}
	switch style {
	case "classic":
		tags = append(tags, "elegant", "timeless")
	case "modern":
		tags = append(tags, "contemporary", "geometric")
	case "minimalist":
		tags = append(tags, "delicate", "everyday")
	case "statement":
		tags = append(tags, "bold", "dramatic")
	}

	return &Response{
		Type:     TypeProducts,
		Category: category,
		Tags:     tags,
		Metadata: map[string]interface{}{
			"design_pattern": []string{style},
			"trendiness":     []string{"classic", "timeless"},
		},
	}
}

// preferredCategory maps shopper wording onto catalog categories, with
// necklaces folded into pendants the way the catalog organizes them.
func preferredCategory(turns []types.Turn) string {
	for i := len(turns) - 1; i >= 0; i-- {
		if turns[i].Role != types.RoleUser {
			continue
		}
		lower := strings.ToLower(turns[i].Content)
		switch {
		case strings.Contains(lower, "earring"):
			return "Earring"
		case strings.Contains(lower, "ring"):
			return "Ring"
		case strings.Contains(lower, "necklace"), strings.Contains(lower, "pendant"):
			return "Pendant"
		case strings.Contains(lower, "bracelet"), strings.Contains(lower, "bangle"):
			return "Bracelet"
		}
	}
	return "Pendant"
}

func preferredStyle(turns []types.Turn) string {
	for _, turn := range turns {
		if turn.Role != types.RoleUser {
			continue
		}
		lower := strings.ToLower(turn.Content)
		switch {
		case strings.Contains(lower, "classic"), strings.Contains(lower, "timeless"):
			return "classic"
		case strings.Contains(lower, "modern"), strings.Contains(lower, "contemporary"):
			return "modern"
		case strings.Contains(lower, "minimal"), strings.Contains(lower, "simple"):
			return "minimalist"
		case strings.Contains(lower, "statement"), strings.Contains(lower, "bold"):
			return "statement"
		}
	}
	return "classic"
}
