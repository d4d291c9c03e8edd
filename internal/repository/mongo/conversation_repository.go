package mongo

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"codebro-server/internal/domain"
)

const conversationCollection = "conversation"

// ConversationRepository handles database operations for conversations.
type ConversationRepository struct {
	DB *mongo.Database
}

// NewConversationRepository creates a new ConversationRepository.
func NewConversationRepository(db *mongo.Database) *ConversationRepository {
	return &ConversationRepository{DB: db}
}

// Insert stores a new conversation and fills in its store-assigned id.
func (r *ConversationRepository) Insert(ctx context.Context, conversation *domain.Conversation) error {
	collection := r.DB.Collection(conversationCollection)
	result, err := collection.InsertOne(ctx, conversation)
	if err != nil {
		return errors.Wrap(err, "inserting conversation")
	}
	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return errors.New("unexpected inserted id type")
	}
	conversation.ID = id
	return nil
}

// FindRecent returns up to limit conversations, newest first.
func (r *ConversationRepository) FindRecent(ctx context.Context, limit int64) ([]*domain.Conversation, error) {
	collection := r.DB.Collection(conversationCollection)

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)
	cursor, err := collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, errors.Wrap(err, "querying conversations")
	}
	defer cursor.Close(ctx)

	var conversations []*domain.Conversation
	if err := cursor.All(ctx, &conversations); err != nil {
		return nil, errors.Wrap(err, "decoding conversations")
	}
	return conversations, nil
}

// FindByID returns the conversation with the given hex id.
// Returns domain.ErrNotFound when the id is malformed or unknown.
func (r *ConversationRepository) FindByID(ctx context.Context, id string) (*domain.Conversation, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}

	collection := r.DB.Collection(conversationCollection)
	var conversation domain.Conversation
	err = collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&conversation)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "querying conversation")
	}
	return &conversation, nil
}
