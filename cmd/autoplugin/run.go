package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/armandmorin/wp-autoplugin/pkg/engine"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/joho/godotenv"
)

const (
	defaultConfigFile = "autoplugin.yaml"
	envModelHint      = "$" + engine.EnvModel
)

var errNoPrompt = errors.New("no prompt given")

// options collects everything main derives from flags and the terminal.
type options struct {
	configPath  string
	model       string
	system      string
	json        bool
	render      bool
	verbose     bool
	args        []string
	interactive bool
	spinner     bool
	httpClient  *http.Client // Tests only.
}

func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// run resolves configuration, reads the prompt, sends it and prints the answer.
func run(ctx context.Context, opts options, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := resolveConfig(opts)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	eng, err := engine.New(cfg, engine.WithLogger(log), engine.WithHTTPClient(opts.httpClient))
	if err != nil {
		return err
	}

	prompt, err := readPrompt(opts.args, stdin, opts.interactive)
	if err != nil {
		return err
	}

	send := func() (string, error) { return eng.Prompt(ctx, prompt) }

	var text string
	if opts.spinner {
		text, err = withSpinner(thinkingTitle(), send)
	} else {
		text, err = send()
	}
	if err != nil {
		return err
	}

	if opts.render {
		text = renderMarkdown(text, 100)
	}

	if _, err := fmt.Fprintln(stdout, text); err != nil {
		return err
	}

	if opts.verbose {
		u := eng.Usage()
		fmt.Fprintln(stderr, dimStyle.Render(fmt.Sprintf("%s model · %s in · %s out",
			cfg.Model, fmtTokens(u.PromptTokens), fmtTokens(u.CompletionTokens))))
	}

	return nil
}

// resolveConfig loads the config file (explicit, or the default file when it
// exists), fills gaps from the environment and applies flag overrides.
func resolveConfig(opts options) (engine.Config, error) {
	cfg := engine.Default()

	path := opts.configPath
	if path == "" {
		if _, err := os.Stat(defaultConfigFile); err == nil {
			path = defaultConfigFile
		}
	}

	if path != "" {
		loaded, err := engine.LoadConfig(path)
		if err != nil {
			return engine.Config{}, err
		}
		cfg = loaded
	}

	cfg.ApplyEnv()

	if opts.model != "" {
		cfg.Model = opts.model
	}
	if opts.system != "" {
		cfg.SystemMessage = opts.system
	}
	if opts.json {
		cfg.Overrides.ResponseFormat = "json_object"
	}

	return cfg, nil
}

// readPrompt returns the prompt from args, an interactive form, or stdin, in
// that order of preference.
func readPrompt(args []string, stdin io.Reader, interactive bool) (string, error) {
	var prompt string

	switch {
	case len(args) > 0:
		prompt = strings.Join(args, " ")
	case interactive:
		err := huh.NewText().
			Title("Prompt").
			Description("Describe the plugin you want. Alt+Enter for a new line.").
			Value(&prompt).
			Run()
		if err != nil {
			return "", fmt.Errorf("read prompt: %w", err)
		}
	default:
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read prompt: %w", err)
		}
		prompt = string(data)
	}

	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", errNoPrompt
	}

	return prompt, nil
}

// withSpinner runs fn while a spinner is shown on the terminal.
func withSpinner(title string, fn func() (string, error)) (string, error) {
	var (
		text    string
		sendErr error
	)

	err := spinner.New().
		Title(title).
		Action(func() { text, sendErr = fn() }).
		Run()
	if err != nil {
		return "", err
	}

	return text, sendErr
}
