package ai

import (
	"context"
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/MayankBansal12/evol-kiosk/internal/infrastructure/config"
	"github.com/MayankBansal12/evol-kiosk/internal/infrastructure/httpx"
	"github.com/MayankBansal12/evol-kiosk/internal/infrastructure/logging"
	"github.com/MayankBansal12/evol-kiosk/internal/infrastructure/monitoring"
	"github.com/MayankBansal12/evol-kiosk/internal/shared/types"
)

// GeminiClient calls the hosted Gemini model with the stylist prompt
// and the conversation so far, and parses the JSON reply.
type GeminiClient struct {
	http     *httpx.Client
	endpoint string
	apiKey   string
	logger   *logging.Logger
	metrics  *monitoring.Metrics
}

// NewGeminiClient creates a stylist client from config
func NewGeminiClient(cfg config.AIConfig, logger *logging.Logger, metrics *monitoring.Metrics) *GeminiClient {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &GeminiClient{
		http: httpx.New(httpx.Options{
			Name:    "gemini",
			Timeout: cfg.Timeout,
			Logger:  logger,
		}),
		endpoint: cfg.Endpoint,
		apiKey:   cfg.APIKey,
		logger:   logger.Named("gemini"),
		metrics:  metrics,
	}
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents         []geminiContent  `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopP            float64 `json:"topP"`
	TopK            int     `json:"topK"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// conversationContext is attached after the prompt so the model sees
// the full exchange plus shopper metadata.
type conversationContext struct {
	Messages []types.Turn    `json:"messages"`
	Metadata contextMetadata `json:"metadata"`
}

type contextMetadata struct {
	UserName string `json:"userName"`
	Language string `json:"language,omitempty"`
}

// Respond sends the conversation to Gemini and parses the stylist
// reply. Transport and API failures return an error; a malformed but
// delivered reply degrades to a clarifying question instead.
func (c *GeminiClient) Respond(ctx context.Context, turns []types.Turn, userName, language string) (*Response, error) {
	timer := monitoring.NewTimer(c.metrics, "gemini")

	contextJSON, err := sonic.Marshal(conversationContext{
		Messages: turns,
		Metadata: contextMetadata{UserName: userName, Language: language},
	})
	if err != nil {
		timer.Stop("error")
		return nil, fmt.Errorf("encode conversation: %w", err)
	}

	body := geminiRequest{
		Contents: []geminiContent{{
			Role: "user",
			Parts: []geminiPart{{
				Text: stylistPrompt + "\n\nConversation context:\n" + string(contextJSON),
			}},
		}},
		GenerationConfig: generationConfig{
			Temperature:     0.7,
			TopP:            0.95,
			TopK:            40,
			MaxOutputTokens: 1024,
		},
	}

	var result geminiResponse
	_, err = c.http.Execute(ctx, func() (*resty.Response, error) {
		return c.http.Resty.R().
			SetContext(ctx).
			SetHeader("Content-Type", "application/json").
			SetHeader("x-api-key", c.apiKey).
			SetBody(body).
			SetResult(&result).
			ForceContentType("application/json").
			Post(c.endpoint)
	})
	if err != nil {
		timer.Stop("error")
		c.logger.Error("Gemini call failed", zap.Error(err))
		return nil, fmt.Errorf("gemini: %w", err)
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		timer.Stop("error")
		if result.Error != nil {
			return nil, fmt.Errorf("gemini: %s", result.Error.Message)
		}
		return nil, fmt.Errorf("gemini: empty response")
	}

	timer.Stop("ok")
	return parseResponse(result.Candidates[0].Content.Parts[0].Text), nil
}
