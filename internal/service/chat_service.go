package service

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"codebro-server/internal/domain"
	"codebro-server/internal/responder"
)

// ChatService orchestrates a single chat turn: resolve the conversation,
// persist the user message, compute the reply, persist the assistant message.
type ChatService struct {
	conversationRepo IConversationRepository
	messageRepo      IMessageRepository
}

// NewChatService creates a new ChatService.
func NewChatService(conversationRepo IConversationRepository, messageRepo IMessageRepository) *ChatService {
	return &ChatService{
		conversationRepo: conversationRepo,
		messageRepo:      messageRepo,
	}
}

// Chat processes one chat turn and returns the conversation id and the reply.
// When conversationID is empty, a new conversation is created with a title
// derived from the message. There is no rollback: if persisting the assistant
// message fails, the user message stays stored.
func (s *ChatService) Chat(ctx context.Context, message, conversationID string) (string, string, error) {
	if strings.TrimSpace(message) == "" {
		return "", "", domain.ErrEmptyMessage
	}

	if conversationID == "" {
		conversation := domain.NewConversation(domain.TitleFromMessage(message))
		if err := s.conversationRepo.Insert(ctx, conversation); err != nil {
			return "", "", errors.Wrap(err, "creating conversation")
		}
		conversationID = conversation.ID.Hex()
	}

	userMessage, err := domain.NewMessage(conversationID, domain.RoleUser, message)
	if err != nil {
		return "", "", err
	}
	if err := s.messageRepo.Insert(ctx, userMessage); err != nil {
		return "", "", errors.Wrap(err, "storing user message")
	}

	reply := responder.Respond(message)

	assistantMessage, err := domain.NewMessage(conversationID, domain.RoleAssistant, reply)
	if err != nil {
		return "", "", err
	}
	if err := s.messageRepo.Insert(ctx, assistantMessage); err != nil {
		return "", "", errors.Wrap(err, "storing assistant message")
	}

	return conversationID, reply, nil
}
