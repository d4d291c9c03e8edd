package domain

import "github.com/pkg/errors"

// Sentinel errors surfaced across layers. Handlers map these to HTTP status
// codes; everything else is a server error.
var (
	// ErrNotFound indicates an id that does not resolve to a stored conversation.
	ErrNotFound = errors.New("conversation not found")
	// ErrEmptyMessage indicates a chat request with an empty message.
	ErrEmptyMessage = errors.New("message must not be empty")
	// ErrInvalidRole indicates a message role outside user/assistant.
	ErrInvalidRole = errors.New("invalid message role")
)
