// Package providers holds chat-completion clients and the model parameters
// they send.
//
// It is organized into sub-packages:
//   - [github.com/armandmorin/wp-autoplugin/pkg/providers/model] — model identifiers, default parameters and the known-model table
//   - [github.com/armandmorin/wp-autoplugin/pkg/providers/openai] — client for the OpenAI Chat Completions API with transparent continuation of truncated answers
package providers
