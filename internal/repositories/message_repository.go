package repositories

import (
	"context"
	"time"

	"github.com/nazmul-dev/campusmart/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MessageRepository defines the interface for message data operations
type MessageRepository interface {
	CreateMessage(ctx context.Context, message *models.Message) error
	ListByConversation(ctx context.Context, conversationID string) ([]models.Message, error)
	ListByConversationIDs(ctx context.Context, conversationIDs []string) ([]models.Message, error)
}

// MongoMessageRepository implements MessageRepository for MongoDB
type MongoMessageRepository struct {
	collection *mongo.Collection
}

// NewMongoMessageRepository creates a new MongoMessageRepository
func NewMongoMessageRepository(db *mongo.Database) *MongoMessageRepository {
	return &MongoMessageRepository{collection: db.Collection("messages")}
}

// CreateMessage inserts a new message into MongoDB
func (r *MongoMessageRepository) CreateMessage(ctx context.Context, message *models.Message) error {
	message.ID = primitive.NewObjectID()
	if message.SentAt.IsZero() {
		message.SentAt = time.Now()
	}
	_, err := r.collection.InsertOne(ctx, message)
	return err
}

// ListByConversation retrieves all messages of a conversation, oldest first
func (r *MongoMessageRepository) ListByConversation(ctx context.Context, conversationID string) ([]models.Message, error) {
	var messages []models.Message
	findOptions := options.Find().SetSort(bson.D{{Key: "sent_at", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"conversation_id": conversationID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

// ListByConversationIDs retrieves the messages of several conversations in one
// query, newest first. An empty id set returns an empty slice without a query.
func (r *MongoMessageRepository) ListByConversationIDs(ctx context.Context, conversationIDs []string) ([]models.Message, error) {
	if len(conversationIDs) == 0 {
		return []models.Message{}, nil
	}
	var messages []models.Message
	findOptions := options.Find().SetSort(bson.D{{Key: "sent_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"conversation_id": bson.M{"$in": conversationIDs}}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}
