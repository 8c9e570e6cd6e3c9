package models

// Role identifies who authored a transcript message
type Role string

const (
	RoleUser Role = "user"
	RoleBot  Role = "bot"
)

// String returns the role name
func (r Role) String() string {
	return string(r)
}

// Message is a single transcript entry. Messages are values and are never
// modified after they are appended to a transcript.
type Message struct {
	Role Role
	Text string
}

// NewUserMessage creates a message authored by the user
func NewUserMessage(text string) Message {
	return Message{Role: RoleUser, Text: text}
}

// NewBotMessage creates a message authored by the answering service
func NewBotMessage(text string) Message {
	return Message{Role: RoleBot, Text: text}
}

// IsUser reports whether the message was authored by the user
func (m Message) IsUser() bool {
	return m.Role == RoleUser
}

// IsBot reports whether the message was authored by the answering service
func (m Message) IsBot() bool {
	return m.Role == RoleBot
}
