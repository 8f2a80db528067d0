// Package openai provides a client for the OpenAI Chat Completions API.
//
// A Client sends a prompt with an optional system message and returns the
// generated text. When the API reports that the answer was cut off at the
// token limit, the client sends the conversation back once with the partial
// answer as an assistant turn and appends the continuation to it.
package openai

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/armandmorin/wp-autoplugin/pkg/chats/chat"
	"github.com/armandmorin/wp-autoplugin/pkg/chats/message"
	"github.com/armandmorin/wp-autoplugin/pkg/chats/role"
	"github.com/armandmorin/wp-autoplugin/pkg/modeladapter"
	"github.com/armandmorin/wp-autoplugin/pkg/modeladapter/usage"
	"github.com/armandmorin/wp-autoplugin/pkg/providers/model"
	"github.com/armandmorin/wp-autoplugin/pkg/sanitize"
)

const (
	// DefaultBaseURL is the OpenAI API origin.
	DefaultBaseURL = "https://api.openai.com"

	completionsPath = "/v1/chat/completions"

	// finishLength is the finish reason reported for truncated output.
	finishLength = "length"
)

// Client sends prompts to the Chat Completions API. Configuration is changed
// only through SetAPIKey and SetModel; SendPrompt reads a snapshot of it.
// A Client must not be reconfigured concurrently with SendPrompt.
type Client struct {
	modeladapter.ModelAdapter

	log *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at another OpenAI-compatible origin.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.BaseURL = baseURL
	}
}

// WithHTTPClient replaces the default HTTP client and its 60 second timeout.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.Client = hc
	}
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// WithAPIKey is the option form of SetAPIKey.
func WithAPIKey(key string) Option {
	return func(c *Client) {
		c.SetAPIKey(key)
	}
}

// WithModel is the option form of SetModel.
func WithModel(name string) Option {
	return func(c *Client) {
		c.SetModel(name)
	}
}

// New creates a Client for DefaultBaseURL with the default generation
// parameters and no model selected.
func New(opts ...Option) *Client {
	c := &Client{log: slog.New(slog.DiscardHandler)}
	c.BaseURL = DefaultBaseURL
	c.Model = model.Default()

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Config is an immutable snapshot of a client's configuration.
type Config struct {
	APIKey string
	Model  model.Model
}

// Config returns the current configuration.
func (c *Client) Config() Config {
	return Config{APIKey: c.Auth.Key, Model: c.Model}
}

// SetAPIKey stores a sanitized copy of key. The key is not validated.
func (c *Client) SetAPIKey(key string) {
	c.Auth.Key = sanitize.TextField(key)
}

// SetModel selects a model by name. Known models also reset temperature and
// max tokens; unknown models keep the current values.
func (c *Client) SetModel(name string) {
	c.Model = c.Model.Select(sanitize.TextField(name))
}

// SendPrompt sends prompt, preceded by systemMessage when it is non-empty,
// and returns the generated text. Set fields of overrides replace the
// corresponding request fields of the first request only.
//
// If the answer is truncated, one continuation request is sent and its
// content is appended to the partial answer. Network failures are returned
// as *TransportError; responses without message content as
// *MissingContentError.
func (c *Client) SendPrompt(ctx context.Context, prompt, systemMessage string, overrides *Overrides) (string, error) {
	cfg := c.Config()
	conv := chat.ForPrompt(systemMessage, prompt)

	req := newRequest(cfg.Model, conv)
	overrides.apply(&req)

	first, err := c.roundTrip(ctx, StageInitial, req)
	if err != nil {
		return "", err
	}

	text, ok := first.resp.content()

	if first.resp.finishReason() == finishLength {
		conv.Append(message.New(role.Assistant, text))

		c.log.DebugContext(ctx, "completion truncated, requesting continuation",
			"model", req.Model, "partial_len", len(text), "messages", conv.Len())

		next, err := c.roundTrip(ctx, StageContinuation, newRequest(cfg.Model, conv))
		if err != nil {
			return "", err
		}

		more, found := next.resp.content()
		if !found {
			return "", next.missingContent()
		}

		text += more
		ok = true
	}

	if !ok {
		return "", first.missingContent()
	}

	return text, nil
}

// exchange is one request/response pair. decodeErr is set when the choices
// could not be decoded; resp is then the zero value.
type exchange struct {
	stage     Stage
	reply     modeladapter.Reply
	resp      apiResponse
	decodeErr error
}

func (e exchange) missingContent() *MissingContentError {
	return &MissingContentError{
		Stage:      e.stage,
		StatusCode: e.reply.StatusCode,
		Payload:    e.reply.Body,
		Err:        e.decodeErr,
	}
}

func (c *Client) roundTrip(ctx context.Context, stage Stage, req apiRequest) (exchange, error) {
	c.log.DebugContext(ctx, "sending completion request",
		"stage", stage, "model", req.Model, "messages", len(req.Messages))

	reply, err := c.PostJSON(ctx, completionsPath, req)
	if err != nil {
		return exchange{}, &TransportError{Stage: stage, Err: err}
	}

	ex := exchange{stage: stage, reply: reply}
	if err := json.Unmarshal(reply.Body, &ex.resp); err != nil {
		ex.decodeErr = err
		ex.resp = apiResponse{}
	}

	// Usage is informational: a malformed usage object is skipped and never
	// affects the content.
	var u apiUsageEnvelope
	if err := json.Unmarshal(reply.Body, &u); err == nil && u.Usage != nil {
		c.Usage.Add(usage.TokenCount{
			PromptTokens:     u.Usage.PromptTokens,
			CompletionTokens: u.Usage.CompletionTokens,
			Continuation:     stage == StageContinuation,
		})
	}

	c.log.DebugContext(ctx, "completion response",
		"stage", stage, "status", reply.StatusCode, "finish_reason", ex.resp.finishReason())

	return ex, nil
}

// --- request types ---

type apiRequest struct {
	Model          string          `json:"model"`
	Temperature    float64         `json:"temperature"`
	MaxTokens      int             `json:"max_tokens"`
	Messages       []apiMessage    `json:"messages"`
	ResponseFormat *ResponseFormat `json:"response_format,omitempty"`
}

type apiMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// newRequest builds the request body from configuration alone.
func newRequest(m model.Model, conv *chat.Chat) apiRequest {
	return apiRequest{
		Model:       m.Name,
		Temperature: m.Temperature,
		MaxTokens:   m.MaxTokens,
		Messages:    toAPIMessages(conv.Messages()),
	}
}

func toAPIMessages(msgs []message.Message) []apiMessage {
	out := make([]apiMessage, len(msgs))
	for i, m := range msgs {
		out[i] = apiMessage{Role: m.Role.String(), Content: m.Content}
	}
	return out
}

// --- response types ---

// apiResponse holds only what a completion is read for: the first choice's
// content and finish reason.
type apiResponse struct {
	Choices []apiChoice `json:"choices"`
}

type apiChoice struct {
	Message      apiRespMessage `json:"message"`
	FinishReason *string        `json:"finish_reason"`
}

type apiRespMessage struct {
	Content *string `json:"content"`
}

type apiUsageEnvelope struct {
	Usage *apiUsage `json:"usage"`
}

type apiUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
}

// content returns the first choice's message content. The bool is false when
// there is no choice or the content is absent or null.
func (r apiResponse) content() (string, bool) {
	if len(r.Choices) == 0 || r.Choices[0].Message.Content == nil {
		return "", false
	}
	return *r.Choices[0].Message.Content, true
}

func (r apiResponse) finishReason() string {
	if len(r.Choices) == 0 || r.Choices[0].FinishReason == nil {
		return ""
	}
	return *r.Choices[0].FinishReason
}
