package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"codebro-server/internal/domain"
	"codebro-server/internal/responder"
)

// --- In-memory fakes ---

type fakeConversationRepo struct {
	conversations []*domain.Conversation
	insertErr     error
}

func (f *fakeConversationRepo) Insert(_ context.Context, conversation *domain.Conversation) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	conversation.ID = primitive.NewObjectID()
	f.conversations = append(f.conversations, conversation)
	return nil
}

func (f *fakeConversationRepo) FindRecent(_ context.Context, limit int64) ([]*domain.Conversation, error) {
	// Newest first, as the store would return them.
	var out []*domain.Conversation
	for i := len(f.conversations) - 1; i >= 0 && int64(len(out)) < limit; i-- {
		out = append(out, f.conversations[i])
	}
	return out, nil
}

func (f *fakeConversationRepo) FindByID(_ context.Context, id string) (*domain.Conversation, error) {
	for _, conversation := range f.conversations {
		if conversation.ID.Hex() == id {
			return conversation, nil
		}
	}
	return nil, domain.ErrNotFound
}

type fakeMessageRepo struct {
	messages  []*domain.Message
	insertErr error
}

func (f *fakeMessageRepo) Insert(_ context.Context, message *domain.Message) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	message.ID = primitive.NewObjectID()
	f.messages = append(f.messages, message)
	return nil
}

func (f *fakeMessageRepo) FindByConversation(_ context.Context, conversationID string) ([]*domain.Message, error) {
	var out []*domain.Message
	for _, message := range f.messages {
		if message.ConversationID == conversationID {
			out = append(out, message)
		}
	}
	return out, nil
}

func (f *fakeMessageRepo) CountByConversation(_ context.Context, conversationID string) (int64, error) {
	var count int64
	for _, message := range f.messages {
		if message.ConversationID == conversationID {
			count++
		}
	}
	return count, nil
}

// --- ChatService ---

func TestChatCreatesConversationAndTwoMessages(t *testing.T) {
	conversationRepo := &fakeConversationRepo{}
	messageRepo := &fakeMessageRepo{}
	chatService := NewChatService(conversationRepo, messageRepo)

	conversationID, reply, err := chatService.Chat(context.Background(), "what database should I use", "")
	require.NoError(t, err)
	assert.NotEmpty(t, conversationID)
	assert.Contains(t, reply, "MongoDB patterns")

	require.Len(t, conversationRepo.conversations, 1)
	assert.Equal(t, "what database should I use", conversationRepo.conversations[0].Title)

	require.Len(t, messageRepo.messages, 2)
	assert.Equal(t, domain.RoleUser, messageRepo.messages[0].Role)
	assert.Equal(t, "what database should I use", messageRepo.messages[0].Content)
	assert.Equal(t, domain.RoleAssistant, messageRepo.messages[1].Role)
	assert.Equal(t, reply, messageRepo.messages[1].Content)
	for _, message := range messageRepo.messages {
		assert.Equal(t, conversationID, message.ConversationID)
	}
}

func TestChatDerivesTruncatedTitle(t *testing.T) {
	conversationRepo := &fakeConversationRepo{}
	messageRepo := &fakeMessageRepo{}
	chatService := NewChatService(conversationRepo, messageRepo)

	long := "this message is well over forty characters long and keeps going"
	_, _, err := chatService.Chat(context.Background(), long, "")
	require.NoError(t, err)

	require.Len(t, conversationRepo.conversations, 1)
	title := conversationRepo.conversations[0].Title
	assert.Equal(t, domain.TitleFromMessage(long), title)
	assert.Contains(t, title, "…")
}

func TestChatReusesExistingConversation(t *testing.T) {
	conversationRepo := &fakeConversationRepo{}
	messageRepo := &fakeMessageRepo{}
	chatService := NewChatService(conversationRepo, messageRepo)

	existing := primitive.NewObjectID().Hex()
	conversationID, _, err := chatService.Chat(context.Background(), "hello", existing)
	require.NoError(t, err)
	assert.Equal(t, existing, conversationID)
	assert.Empty(t, conversationRepo.conversations, "no conversation should be created")
	assert.Len(t, messageRepo.messages, 2)
}

func TestChatRejectsEmptyMessage(t *testing.T) {
	chatService := NewChatService(&fakeConversationRepo{}, &fakeMessageRepo{})

	_, _, err := chatService.Chat(context.Background(), "", "")
	assert.ErrorIs(t, err, domain.ErrEmptyMessage)

	_, _, err = chatService.Chat(context.Background(), "   \t  ", "")
	assert.ErrorIs(t, err, domain.ErrEmptyMessage)
}

func TestChatUserMessageSurvivesAssistantFailure(t *testing.T) {
	conversationRepo := &fakeConversationRepo{}
	messageRepo := &fakeMessageRepo{}
	chatService := NewChatService(conversationRepo, messageRepo)

	// Fail the second insert only: store the user turn, then flip the error on.
	_, _, err := chatService.Chat(context.Background(), "hello", primitive.NewObjectID().Hex())
	require.NoError(t, err)
	require.Len(t, messageRepo.messages, 2)

	messageRepo.messages = nil
	insertCount := 0
	failing := &failingAfterFirstInsert{inner: messageRepo, count: &insertCount}
	chatService = NewChatService(conversationRepo, failing)

	_, _, err = chatService.Chat(context.Background(), "hello again", primitive.NewObjectID().Hex())
	require.Error(t, err)
	// The user message stays; there is no compensating delete.
	require.Len(t, messageRepo.messages, 1)
	assert.Equal(t, domain.RoleUser, messageRepo.messages[0].Role)
}

type failingAfterFirstInsert struct {
	inner *fakeMessageRepo
	count *int
}

func (f *failingAfterFirstInsert) Insert(ctx context.Context, message *domain.Message) error {
	*f.count++
	if *f.count > 1 {
		return assert.AnError
	}
	return f.inner.Insert(ctx, message)
}

func (f *failingAfterFirstInsert) FindByConversation(ctx context.Context, conversationID string) ([]*domain.Message, error) {
	return f.inner.FindByConversation(ctx, conversationID)
}

func (f *failingAfterFirstInsert) CountByConversation(ctx context.Context, conversationID string) (int64, error) {
	return f.inner.CountByConversation(ctx, conversationID)
}

// --- ConversationService ---

func TestCreateConversationDefaultsTitle(t *testing.T) {
	conversationRepo := &fakeConversationRepo{}
	conversationService := NewConversationService(conversationRepo, &fakeMessageRepo{})

	conversation, err := conversationService.CreateConversation(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConversationTitle, conversation.Title)
	assert.False(t, conversation.ID.IsZero())

	conversation, err = conversationService.CreateConversation(context.Background(), "My thread")
	require.NoError(t, err)
	assert.Equal(t, "My thread", conversation.Title)
}

func TestListConversationsOrderAndCounts(t *testing.T) {
	conversationRepo := &fakeConversationRepo{}
	messageRepo := &fakeMessageRepo{}
	conversationService := NewConversationService(conversationRepo, messageRepo)
	chatService := NewChatService(conversationRepo, messageRepo)

	_, _, err := chatService.Chat(context.Background(), "first thread", "")
	require.NoError(t, err)
	second, _, err := chatService.Chat(context.Background(), "second thread", "")
	require.NoError(t, err)
	// One more turn on the second conversation.
	_, _, err = chatService.Chat(context.Background(), "followup", second)
	require.NoError(t, err)

	summaries, err := conversationService.ListConversations(context.Background())
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	// Newest first.
	assert.Equal(t, "second thread", summaries[0].Title)
	assert.Equal(t, int64(4), summaries[0].MessagesCount)
	assert.Equal(t, "first thread", summaries[1].Title)
	assert.Equal(t, int64(2), summaries[1].MessagesCount)
}

func TestGetConversationReturnsOrderedMessages(t *testing.T) {
	conversationRepo := &fakeConversationRepo{}
	messageRepo := &fakeMessageRepo{}
	conversationService := NewConversationService(conversationRepo, messageRepo)
	chatService := NewChatService(conversationRepo, messageRepo)

	conversationID, _, err := chatService.Chat(context.Background(), "hello", "")
	require.NoError(t, err)

	conversation, messages, err := conversationService.GetConversation(context.Background(), conversationID)
	require.NoError(t, err)
	assert.Equal(t, conversationID, conversation.ID.Hex())
	require.Len(t, messages, 2)
	assert.Equal(t, domain.RoleUser, messages[0].Role)
	assert.Equal(t, domain.RoleAssistant, messages[1].Role)
	assert.Equal(t, responder.Respond("hello"), messages[1].Content)
}

func TestGetConversationNotFound(t *testing.T) {
	conversationService := NewConversationService(&fakeConversationRepo{}, &fakeMessageRepo{})

	_, _, err := conversationService.GetConversation(context.Background(), primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
