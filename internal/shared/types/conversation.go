package types

import "encoding/json"

// Role identifies the author of a conversation turn
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one role-tagged message in the conversation history.
// Turns are append-only; a turn is never mutated after being recorded.
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Option is one selectable answer for a question
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// UnmarshalJSON accepts both the object form {"value","label"} and the
// bare-string form the inference endpoint sometimes emits.
func (o *Option) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		o.Value = s
		o.Label = s
		return nil
	}

	type alias Option
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*o = Option(a)
	return nil
}

// Question is the last-served question and its option set
type Question struct {
	Message string   `json:"message"`
	Options []Option `json:"options,omitempty"`
}

// ConversationState is the coarse state tag persisted with a session
type ConversationState string

const (
	StateUserDetails ConversationState = "userDetails"
	StateSurvey      ConversationState = "survey"
)
