package chat

// Transcript is an append-only, insertion-ordered list of messages.
// The zero value is ready to use.
type Transcript struct {
	messages []Message
}

func (t *Transcript) append(m Message) {
	t.messages = append(t.messages, m)
}

// Messages returns a copy of the entries in order.
func (t *Transcript) Messages() []Message {
	out := make([]Message, len(t.messages))
	copy(out, t.messages)
	return out
}

// Len reports how many messages have been appended.
func (t *Transcript) Len() int {
	return len(t.messages)
}
