package services

import (
	"errors"
	"fmt"
)

// ErrEmptyReply means the model answered without any text, usually a safety block.
var ErrEmptyReply = errors.New("gemini returned no text")

// BlockedError carries the upstream reasons for an empty reply. They are for
// operator logs only and never reach the client.
type BlockedError struct {
	FinishReason string
	BlockReason  string
}

func (e *BlockedError) Error() string {
	return fmt.Sprintf("%s (finish reason: %s, block reason: %s)", ErrEmptyReply, e.FinishReason, e.BlockReason)
}

func (e *BlockedError) Unwrap() error { return ErrEmptyReply }
