package ai

import (
	"regexp"
	"strings"

	"github.com/bytedance/sonic"

	"github.com/MayankBansal12/evol-kiosk/internal/shared/types"
)

// jsonObject grabs the outermost brace-delimited span, tolerating
// models that wrap their JSON in prose or markdown fences.
var jsonObject = regexp.MustCompile(`(?s)\{.*\}`)

func defaultQuestionOptions() []types.Option {
	return []types.Option{
		{Value: "continue", Label: "Continue"},
		{Value: "restart", Label: "Start over"},
	}
}

// parseResponse turns raw model output into a Response. It never
// returns an error: anything unusable degrades to a clarifying
// question so the kiosk conversation always has a next step.
func parseResponse(raw string) *Response {
	match := jsonObject.FindString(raw)
	if match == "" {
		// Plain text; surface its first line as a question
		message := strings.TrimSpace(strings.SplitN(raw, "\n", 2)[0])
		if message == "" {
			message = "What would you like to know about jewellery?"
		}
		return &Response{
			Type:    TypeQuestion,
			Message: message,
			Options: []types.Option{
				{Value: "yes", Label: "Yes"},
				{Value: "no", Label: "No"},
				{Value: "more", Label: "Tell me more"},
				{Value: "show", Label: "Show me options"},
			},
		}
	}

	var resp Response
	if err := sonic.Unmarshal([]byte(match), &resp); err != nil {
		return &Response{
			Type:    TypeQuestion,
			Message: "I'm not sure I understood. Would you like to see some jewellery options?",
			Options: []types.Option{
				{Value: "yes", Label: "Yes, show me options"},
				{Value: "no", Label: "No, ask me something else"},
			},
		}
	}

	if resp.Type == TypeProducts {
		return &resp
	}

	resp.Type = TypeQuestion
	if resp.Message == "" {
		resp.Message = "What would you like to know about jewellery?"
	}
	if len(resp.Options) == 0 {
		resp.Options = defaultQuestionOptions()
	}
	return &resp
}
