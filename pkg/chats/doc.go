// Package chats provides the conversation data model sent to the
// chat-completion API.
//
// It is organized into sub-packages:
//   - [github.com/armandmorin/wp-autoplugin/pkg/chats/role] — conversation roles (system, user, assistant)
//   - [github.com/armandmorin/wp-autoplugin/pkg/chats/message] — messages composed of a role and text content
//   - [github.com/armandmorin/wp-autoplugin/pkg/chats/chat] — ordered, mutable conversation container
//
// No API code is included; the openai provider builds its wire format on top
// of these types.
package chats
