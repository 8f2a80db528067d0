// Package engine is the composition root that assembles a completion client
// from configuration. Frontends load a Config, create an Engine and send
// prompts through it without importing the provider packages directly.
package engine
