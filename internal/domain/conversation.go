package domain

import (
	"time"
	"unicode/utf8"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultConversationTitle is used when a conversation is created without one.
const DefaultConversationTitle = "New Chat"

// titleMaxRunes caps titles derived from a first message.
const titleMaxRunes = 40

// Conversation is a named thread grouping an ordered sequence of messages,
// stored in MongoDB. Conversations are never mutated or deleted.
type Conversation struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title     string             `bson:"title" json:"title"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

// ConversationSummary is a conversation annotated with its message count,
// as returned by the list endpoint.
type ConversationSummary struct {
	Conversation  `bson:",inline"`
	MessagesCount int64 `json:"messages_count"`
}

// NewConversation creates a conversation with the given title, falling back
// to the default title when none is supplied.
func NewConversation(title string) *Conversation {
	if title == "" {
		title = DefaultConversationTitle
	}
	return &Conversation{
		Title:     title,
		CreatedAt: time.Now().UTC(),
	}
}

// TitleFromMessage derives a conversation title from the first message of a
// chat turn: the first 40 runes, with an ellipsis marker when truncated.
func TitleFromMessage(message string) string {
	if utf8.RuneCountInString(message) <= titleMaxRunes {
		return message
	}
	runes := []rune(message)
	return string(runes[:titleMaxRunes]) + "…"
}
