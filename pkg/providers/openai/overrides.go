package openai

import (
	"encoding/json"

	"github.com/armandmorin/wp-autoplugin/pkg/chats/message"
)

// ResponseFormat constrains the shape of the model's output.
type ResponseFormat struct {
	Type       string          `json:"type"` // "text", "json_object" or "json_schema"
	JSONSchema json.RawMessage `json:"json_schema,omitempty"`
}

// Overrides replaces fields of the request built from the client
// configuration. Only the fields below can be overridden; nil fields keep
// the configured value. A non-nil Messages slice replaces the whole
// conversation, including the system and user messages.
//
// Overrides apply to the first request of a SendPrompt call only. A
// continuation request is built from the client configuration.
type Overrides struct {
	Model          *string
	Temperature    *float64
	MaxTokens      *int
	Messages       []message.Message
	ResponseFormat *ResponseFormat
}

// Ptr returns a pointer to v, for filling Overrides literals.
func Ptr[T any](v T) *T {
	return &v
}

// IsZero reports whether o overrides nothing.
func (o *Overrides) IsZero() bool {
	return o == nil || (o.Model == nil && o.Temperature == nil && o.MaxTokens == nil &&
		o.Messages == nil && o.ResponseFormat == nil)
}

// apply merges o over req field by field. A nil receiver is a no-op.
func (o *Overrides) apply(req *apiRequest) {
	if o == nil {
		return
	}
	if o.Model != nil {
		req.Model = *o.Model
	}
	if o.Temperature != nil {
		req.Temperature = *o.Temperature
	}
	if o.MaxTokens != nil {
		req.MaxTokens = *o.MaxTokens
	}
	if o.Messages != nil {
		req.Messages = toAPIMessages(o.Messages)
	}
	if o.ResponseFormat != nil {
		rf := *o.ResponseFormat
		req.ResponseFormat = &rf
	}
}
