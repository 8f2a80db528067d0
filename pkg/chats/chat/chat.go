// Package chat provides an ordered, mutable conversation container for
// chat-completion requests.
package chat

import (
	"github.com/armandmorin/wp-autoplugin/pkg/chats/message"
	"github.com/armandmorin/wp-autoplugin/pkg/chats/role"
)

// Chat is a mutable conversation container. The zero value is ready to use.
// Messages are sent to the API in the order they were appended. Chat is not
// safe for concurrent use.
type Chat struct {
	messages []message.Message
}

// ForPrompt builds the opening conversation for a single prompt: a system
// message when systemMessage is non-empty, followed by the user prompt.
func ForPrompt(systemMessage, prompt string) *Chat {
	c := &Chat{messages: make([]message.Message, 0, 2)}
	if systemMessage != "" {
		c.Append(message.New(role.System, systemMessage))
	}
	c.Append(message.New(role.User, prompt))

	return c
}

// Append adds one or more messages to the conversation.
func (c *Chat) Append(msgs ...message.Message) {
	c.messages = append(c.messages, msgs...)
}

// Len returns the number of messages in the conversation.
func (c *Chat) Len() int {
	return len(c.messages)
}

// Messages returns a copy of all messages in the conversation.
func (c *Chat) Messages() []message.Message {
	cp := make([]message.Message, len(c.messages))
	copy(cp, c.messages)
	return cp
}
