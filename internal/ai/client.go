package ai

import (
	"context"

	"github.com/MayankBansal12/evol-kiosk/internal/shared/types"
)

// ResponseType discriminates the two shapes a stylist reply can take
type ResponseType string

const (
	TypeQuestion ResponseType = "question"
	TypeProducts ResponseType = "products"
)

// Response is the stylist's structured reply. A question carries
// Message and Options; a products reply carries the recommendation
// query (Category, Tags, Metadata) to run against the catalog.
type Response struct {
	Type     ResponseType           `json:"type"`
	Message  string                 `json:"message,omitempty"`
	Options  []types.Option         `json:"options,omitempty"`
	Category string                 `json:"category,omitempty"`
	Tags     []string               `json:"tags,omitempty"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// IsProducts reports whether the reply ends the survey
func (r *Response) IsProducts() bool { return r.Type == TypeProducts }

// Client produces the next stylist reply for a conversation. Respond
// never fails with a user-visible error shape: implementations fall
// back to a clarifying question when the model misbehaves, and return
// an error only for transport-level failures the caller may retry.
type Client interface {
	Respond(ctx context.Context, turns []types.Turn, userName, language string) (*Response, error)
}
