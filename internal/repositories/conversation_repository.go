package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/nazmul-dev/campusmart/backend/internal/models"
	"gorm.io/gorm"
)

// ConversationRepository defines the interface for conversation operations
type ConversationRepository interface {
	GetOrCreateConversation(userA, userB string) (*models.Conversation, error)
	GetConversationByID(id string) (*models.Conversation, error)
	ListForUser(ctx context.Context, userID string) ([]models.Conversation, error)
	TouchLastMessage(id string, at time.Time) error
}

type postgresConversationRepository struct {
	db *gorm.DB
}

func NewPostgresConversationRepository(db *gorm.DB) ConversationRepository {
	return &postgresConversationRepository{db: db}
}

// GetOrCreateConversation finds the conversation between two users in either
// participant order, creating it if none exists yet.
func (r *postgresConversationRepository) GetOrCreateConversation(userA, userB string) (*models.Conversation, error) {
	var conversation models.Conversation
	err := r.db.Where("(user_id1 = ? AND user_id2 = ?) OR (user_id1 = ? AND user_id2 = ?)",
		userA, userB, userB, userA).First(&conversation).Error
	if err == nil {
		return &conversation, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	conversation = models.Conversation{
		ID:            uuid.NewString(),
		UserID1:       userA,
		UserID2:       userB,
		CreatedAt:     time.Now(),
		LastMessageAt: time.Now(),
	}
	if err := r.db.Create(&conversation).Error; err != nil {
		return nil, err
	}
	return &conversation, nil
}

func (r *postgresConversationRepository) GetConversationByID(id string) (*models.Conversation, error) {
	var conversation models.Conversation
	if err := r.db.First(&conversation, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &conversation, nil
}

// ListForUser returns conversations where the user occupies either
// participant column, most recently active first.
func (r *postgresConversationRepository) ListForUser(ctx context.Context, userID string) ([]models.Conversation, error) {
	var conversations []models.Conversation
	err := r.db.WithContext(ctx).
		Where("user_id1 = ? OR user_id2 = ?", userID, userID).
		Order("last_message_at DESC").
		Find(&conversations).Error
	return conversations, err
}

func (r *postgresConversationRepository) TouchLastMessage(id string, at time.Time) error {
	return r.db.Model(&models.Conversation{}).Where("id = ?", id).Update("last_message_at", at).Error
}
