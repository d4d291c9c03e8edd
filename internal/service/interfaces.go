package service

import (
	"context"

	"codebro-server/internal/domain"
)

// --- Service Interfaces ---

// IConversationService defines the interface for conversation-related business logic.
type IConversationService interface {
	CreateConversation(ctx context.Context, title string) (*domain.Conversation, error)
	ListConversations(ctx context.Context) ([]*domain.ConversationSummary, error)
	GetConversation(ctx context.Context, id string) (*domain.Conversation, []*domain.Message, error)
}

// IChatService defines the interface for the chat turn use case.
type IChatService interface {
	Chat(ctx context.Context, message, conversationID string) (string, string, error)
}

// --- Repository Interfaces ---

// IConversationRepository defines the interface for conversation persistence.
type IConversationRepository interface {
	Insert(ctx context.Context, conversation *domain.Conversation) error
	FindRecent(ctx context.Context, limit int64) ([]*domain.Conversation, error)
	FindByID(ctx context.Context, id string) (*domain.Conversation, error)
}

// IMessageRepository defines the interface for message persistence.
type IMessageRepository interface {
	Insert(ctx context.Context, message *domain.Message) error
	FindByConversation(ctx context.Context, conversationID string) ([]*domain.Message, error)
	CountByConversation(ctx context.Context, conversationID string) (int64, error)
}
