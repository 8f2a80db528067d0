package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/armandmorin/wp-autoplugin/pkg/providers/model"
	"github.com/mattn/go-isatty"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: autoplugin [flags] [prompt...]\n\nSend a prompt to the OpenAI Chat Completions API and print the answer.\nWithout a prompt argument the prompt is read from stdin, or asked for\ninteractively when stdin is a terminal.\n\nFlags:\n")
		flag.PrintDefaults()
	}

	configPath := flag.String("config", "", "path to configuration file (default: "+defaultConfigFile+" if present)")
	envFile := flag.String("env", ".env", "path to .env file (ignored if missing)")
	modelName := flag.String("model", "", "model to use (overrides config and "+envModelHint+"; known: "+strings.Join(model.Known(), ", ")+")")
	system := flag.String("system", "", "system message (overrides config)")
	jsonOut := flag.Bool("json", false, "request a JSON object response")
	render := flag.Bool("render", false, "render the answer as markdown")
	verbose := flag.Bool("verbose", false, "log requests and token usage to stderr")
	flag.Parse()

	if err := loadDotEnv(*envFile); err != nil {
		fmt.Fprintln(os.Stderr, renderError(err))
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := options{
		configPath:  *configPath,
		model:       *modelName,
		system:      *system,
		json:        *jsonOut,
		render:      *render,
		verbose:     *verbose,
		args:        flag.Args(),
		interactive: isTerminal(os.Stdin),
		spinner:     isTerminal(os.Stdout),
	}

	err := run(ctx, opts, os.Stdin, os.Stdout, os.Stderr)
	cancel()
	if err != nil {
		fmt.Fprintln(os.Stderr, renderError(err))
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
