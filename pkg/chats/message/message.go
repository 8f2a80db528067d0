// Package message defines the Message type used in chat-completion conversations.
package message

import "github.com/armandmorin/wp-autoplugin/pkg/chats/role"

// Message is a single conversation turn. It is a value type that copies cheaply.
type Message struct {
	Role    role.Role
	Content string
}

// New creates a message with the given role and text content.
func New(r role.Role, text string) Message {
	return Message{Role: r, Content: text}
}
