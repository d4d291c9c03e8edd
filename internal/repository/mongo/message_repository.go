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

const messageCollection = "message"

// MessageRepository handles database operations for chat messages.
type MessageRepository struct {
	DB *mongo.Database
}

// NewMessageRepository creates a new MessageRepository.
func NewMessageRepository(db *mongo.Database) *MessageRepository {
	return &MessageRepository{DB: db}
}

// Insert stores a new message and fills in its store-assigned id.
func (r *MessageRepository) Insert(ctx context.Context, message *domain.Message) error {
	collection := r.DB.Collection(messageCollection)
	result, err := collection.InsertOne(ctx, message)
	if err != nil {
		return errors.Wrap(err, "inserting message")
	}
	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return errors.New("unexpected inserted id type")
	}
	message.ID = id
	return nil
}

// FindByConversation returns all messages of a conversation, oldest first.
func (r *MessageRepository) FindByConversation(ctx context.Context, conversationID string) ([]*domain.Message, error) {
	collection := r.DB.Collection(messageCollection)

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := collection.Find(ctx, bson.M{"conversation_id": conversationID}, opts)
	if err != nil {
		return nil, errors.Wrap(err, "querying messages")
	}
	defer cursor.Close(ctx)

	var messages []*domain.Message
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, errors.Wrap(err, "decoding messages")
	}
	return messages, nil
}

// CountByConversation returns the number of messages stored for a conversation.
func (r *MessageRepository) CountByConversation(ctx context.Context, conversationID string) (int64, error) {
	collection := r.DB.Collection(messageCollection)
	count, err := collection.CountDocuments(ctx, bson.M{"conversation_id": conversationID})
	if err != nil {
		return 0, errors.Wrap(err, "counting messages")
	}
	return count, nil
}
