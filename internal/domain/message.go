package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role identifies the author of a message turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Valid reports whether the role is one of the two known values.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAssistant
}

// Message is one turn in a conversation. The conversation reference is an
// application-level contract only; the store enforces no referential integrity.
type Message struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	ConversationID string             `bson:"conversation_id" json:"conversation_id"`
	Role           Role               `bson:"role" json:"role"`
	Content        string             `bson:"content" json:"content"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
}

// NewMessage creates a message under the given conversation.
func NewMessage(conversationID string, role Role, content string) (*Message, error) {
	if !role.Valid() {
		return nil, ErrInvalidRole
	}
	if content == "" {
		return nil, ErrEmptyMessage
	}
	return &Message{
		ConversationID: conversationID,
		Role:           role,
		Content:        content,
		CreatedAt:      time.Now().UTC(),
	}, nil
}
