// Package modeladapter provides the HTTP transport shared by chat-completion
// clients.
//
// It contains:
//   - embeddable [ModelAdapter] base struct with request building, auth,
//     custom headers, a JSON POST helper and token usage tracking
//   - [github.com/armandmorin/wp-autoplugin/pkg/modeladapter/usage] — thread-safe token usage tracker
//
// Model configuration (name, temperature, max tokens) is embedded from
// [github.com/armandmorin/wp-autoplugin/pkg/providers/model]. This package
// does not interpret response bodies; that is left to the concrete client.
package modeladapter
