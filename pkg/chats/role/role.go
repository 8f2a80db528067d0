// Package role defines the sender roles used in chat-completion conversations.
package role

// Role represents the sender of a message in a conversation.
type Role string

const (
	System    Role = "system"
	User      Role = "user"
	Assistant Role = "assistant"
)

// String returns the underlying string value of the role.
func (r Role) String() string {
	return string(r)
}
