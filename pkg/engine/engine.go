package engine

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/armandmorin/wp-autoplugin/pkg/modeladapter/usage"
	"github.com/armandmorin/wp-autoplugin/pkg/providers/openai"
)

// Engine sends prompts using a client assembled from a Config.
type Engine struct {
	cfg       Config
	client    *openai.Client
	overrides *openai.Overrides
	log       *slog.Logger
}

// Option configures an Engine.
type Option func(*options)

type options struct {
	httpClient *http.Client
	log        *slog.Logger
}

// WithHTTPClient sets the HTTP client used for API requests. It takes
// precedence over the configured timeout.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *options) { o.httpClient = hc }
}

// WithLogger sets the logger passed down to the client.
func WithLogger(log *slog.Logger) Option {
	return func(o *options) { o.log = log }
}

// New validates cfg and creates an Engine.
func New(cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = slog.New(slog.DiscardHandler)
	}

	clientOpts := []openai.Option{
		openai.WithLogger(o.log),
		openai.WithAPIKey(cfg.APIKey),
		openai.WithModel(cfg.Model),
	}
	if cfg.BaseURL != "" {
		clientOpts = append(clientOpts, openai.WithBaseURL(cfg.BaseURL))
	}

	switch timeout, _ := cfg.TimeoutDuration(); {
	case o.httpClient != nil:
		clientOpts = append(clientOpts, openai.WithHTTPClient(o.httpClient))
	case timeout > 0:
		clientOpts = append(clientOpts, openai.WithHTTPClient(&http.Client{Timeout: timeout}))
	}

	return &Engine{
		cfg:       cfg,
		client:    openai.New(clientOpts...),
		overrides: cfg.RequestOverrides(),
		log:       o.log,
	}, nil
}

// Config returns the configuration the engine was built from.
func (e *Engine) Config() Config { return e.cfg }

// Client returns the underlying completion client.
func (e *Engine) Client() *openai.Client { return e.client }

// Prompt sends prompt with the configured system message and overrides.
func (e *Engine) Prompt(ctx context.Context, prompt string) (string, error) {
	return e.PromptWithSystem(ctx, prompt, e.cfg.SystemMessage)
}

// PromptWithSystem sends prompt with an explicit system message and the
// configured overrides.
func (e *Engine) PromptWithSystem(ctx context.Context, prompt, systemMessage string) (string, error) {
	start := e.client.Usage.Count()

	text, err := e.client.SendPrompt(ctx, prompt, systemMessage, e.overrides)
	if err != nil {
		e.log.ErrorContext(ctx, "prompt failed", "model", e.cfg.Model, "error", err)
		return "", err
	}

	used := e.client.Usage.Since(start)
	e.log.InfoContext(ctx, "prompt finished",
		"model", e.cfg.Model,
		"chars", len(text),
		"prompt_tokens", used.PromptTokens,
		"completion_tokens", used.CompletionTokens,
		"continued", used.Continuation,
	)

	return text, nil
}

// Usage returns the token usage accumulated across all prompts.
func (e *Engine) Usage() usage.TokenCount {
	return e.client.Usage.Total()
}
