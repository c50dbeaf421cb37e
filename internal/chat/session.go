package chat

import (
	"context"
	"strings"
	"sync"
)

// Fixed bot texts used when the relay gives no usable answer.
const (
	ConnectionFailedText = "Connection failed. Check server status."
	NoReplyText          = "Could not connect to AI service."
)

// State is the request guard of a Session.
type State int

const (
	StateIdle State = iota
	StateAwaitingReply
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAwaitingReply:
		return "awaiting_reply"
	default:
		return "unknown"
	}
}

// Relay sends one message to the chat relay.
type Relay interface {
	Send(ctx context.Context, text string) (Reply, error)
}

// Session owns a transcript and enforces a single outstanding request.
type Session struct {
	mu         sync.Mutex
	relay      Relay
	transcript Transcript
	state      State
	onAppend   func(Message)
}

type Option func(*Session)

// WithAppendHook registers fn to run after every append, e.g. to scroll a view.
// fn is called without the session lock held.
func WithAppendHook(fn func(Message)) Option {
	return func(s *Session) {
		s.onAppend = fn
	}
}

func NewSession(relay Relay, opts ...Option) *Session {
	s := &Session{relay: relay}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Begin starts a submission. It returns the trimmed text and true when a user
// message was appended and the session moved to StateAwaitingReply. Empty input
// or a request already in flight leaves the session untouched.
func (s *Session) Begin(text string) (string, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", false
	}

	s.mu.Lock()
	if s.state != StateIdle {
		s.mu.Unlock()
		return "", false
	}
	msg := Message{Text: trimmed, Sender: SenderUser}
	s.transcript.append(msg)
	s.state = StateAwaitingReply
	s.mu.Unlock()

	s.notify(msg)
	return trimmed, true
}

// Complete records the outcome of the request started by Begin as one bot
// message and returns the session to StateIdle. It is a no-op when no request
// is outstanding.
func (s *Session) Complete(reply Reply, err error) {
	s.mu.Lock()
	if s.state != StateAwaitingReply {
		s.mu.Unlock()
		return
	}
	msg := Message{Text: botText(reply, err), Sender: SenderBot}
	s.transcript.append(msg)
	s.state = StateIdle
	s.mu.Unlock()

	s.notify(msg)
}

// Submit runs a whole exchange synchronously: Begin, one relay call, Complete.
// It reports whether a request was issued.
func (s *Session) Submit(ctx context.Context, text string) bool {
	trimmed, ok := s.Begin(text)
	if !ok {
		return false
	}
	reply, err := s.relay.Send(ctx, trimmed)
	s.Complete(reply, err)
	return true
}

// Send performs the relay call for text previously accepted by Begin.
func (s *Session) Send(ctx context.Context, text string) (Reply, error) {
	return s.relay.Send(ctx, text)
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) AwaitingReply() bool {
	return s.State() == StateAwaitingReply
}

// Messages returns a snapshot of the transcript.
func (s *Session) Messages() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.transcript.Messages()
}

func (s *Session) notify(m Message) {
	if s.onAppend != nil {
		s.onAppend(m)
	}
}

func botText(reply Reply, err error) string {
	switch {
	case err != nil:
		return ConnectionFailedText
	case reply.Reply != "":
		return reply.Reply
	case reply.Error != "":
		return reply.Error
	default:
		return NoReplyText
	}
}
