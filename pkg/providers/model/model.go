// Package model holds the generation parameters of a chat-completion model
// and the table of models with known defaults.
package model

import (
	"maps"
	"slices"
)

const (
	// DefaultTemperature is used until a known model overrides it.
	DefaultTemperature = 0.2
	// DefaultMaxTokens is used until a known model overrides it.
	DefaultMaxTokens = 4096
)

// Params are the generation parameters associated with a model.
type Params struct {
	Temperature float64
	MaxTokens   int
}

// known maps model identifiers to their generation parameters.
var known = map[string]Params{
	"gpt-4o":        {Temperature: 0.2, MaxTokens: 4096},
	"gpt-4o-mini":   {Temperature: 0.2, MaxTokens: 4096},
	"gpt-4-turbo":   {Temperature: 0.2, MaxTokens: 4096},
	"gpt-3.5-turbo": {Temperature: 0.2, MaxTokens: 4096},
}

// Lookup returns the parameters for a known model identifier.
func Lookup(name string) (Params, bool) {
	p, ok := known[name]
	return p, ok
}

// Known returns the sorted identifiers of all models with known parameters.
func Known() []string {
	return slices.Sorted(maps.Keys(known))
}

// Model is a model identifier plus the parameters sent with every request.
type Model struct {
	Name        string
	Temperature float64
	MaxTokens   int
}

// Default returns an unnamed Model carrying the default parameters.
func Default() Model {
	return Model{Temperature: DefaultTemperature, MaxTokens: DefaultMaxTokens}
}

// Select returns m with its name set to name. When name is a known model its
// parameters replace m's; otherwise m's parameters are kept, so callers can
// use arbitrary models configured through request overrides.
func (m Model) Select(name string) Model {
	m.Name = name
	if p, ok := Lookup(name); ok {
		m.Temperature = p.Temperature
		m.MaxTokens = p.MaxTokens
	}
	return m
}
