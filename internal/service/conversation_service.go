package service

import (
	"context"

	"github.com/pkg/errors"

	"codebro-server/internal/domain"
)

// listLimit caps the number of conversations returned by a listing.
const listLimit = 50

// ConversationService provides conversation-related services.
type ConversationService struct {
	conversationRepo IConversationRepository
	messageRepo      IMessageRepository
}

// NewConversationService creates a new ConversationService.
func NewConversationService(conversationRepo IConversationRepository, messageRepo IMessageRepository) *ConversationService {
	return &ConversationService{
		conversationRepo: conversationRepo,
		messageRepo:      messageRepo,
	}
}

// CreateConversation creates a new conversation. An empty title falls back to
// the default title.
func (s *ConversationService) CreateConversation(ctx context.Context, title string) (*domain.Conversation, error) {
	conversation := domain.NewConversation(title)
	if err := s.conversationRepo.Insert(ctx, conversation); err != nil {
		return nil, errors.Wrap(err, "creating conversation")
	}
	return conversation, nil
}

// ListConversations returns the most recent conversations, newest first, each
// annotated with its message count. Counts are computed per conversation on
// every call, never cached.
func (s *ConversationService) ListConversations(ctx context.Context) ([]*domain.ConversationSummary, error) {
	conversations, err := s.conversationRepo.FindRecent(ctx, listLimit)
	if err != nil {
		return nil, errors.Wrap(err, "listing conversations")
	}

	summaries := make([]*domain.ConversationSummary, 0, len(conversations))
	for _, conversation := range conversations {
		count, err := s.messageRepo.CountByConversation(ctx, conversation.ID.Hex())
		if err != nil {
			return nil, errors.Wrap(err, "counting messages")
		}
		summaries = append(summaries, &domain.ConversationSummary{
			Conversation:  *conversation,
			MessagesCount: count,
		})
	}
	return summaries, nil
}

// GetConversation returns a conversation and its messages, oldest first.
// Returns domain.ErrNotFound when the id does not resolve.
func (s *ConversationService) GetConversation(ctx context.Context, id string) (*domain.Conversation, []*domain.Message, error) {
	conversation, err := s.conversationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	messages, err := s.messageRepo.FindByConversation(ctx, conversation.ID.Hex())
	if err != nil {
		return nil, nil, errors.Wrap(err, "fetching messages")
	}
	return conversation, messages, nil
}
