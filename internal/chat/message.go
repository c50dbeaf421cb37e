// Package chat holds the client side of a conversation: the transcript the user
// sees and the guard that allows one outstanding request at a time.
package chat

// Sender identifies who produced a message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// Message is one transcript entry. It is never modified after it is appended.
type Message struct {
	Text   string
	Sender Sender
}

// Reply is what the relay answered. At most one field is set on a well-formed
// response; both empty means the relay sent neither.
type Reply struct {
	Reply string `json:"reply,omitempty"`
	Error string `json:"error,omitempty"`
}
