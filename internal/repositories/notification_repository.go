package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/nazmul-dev/campusmart/backend/internal/models"
	"gorm.io/gorm"
)

// NotificationRepository defines the interface for notification operations
type NotificationRepository interface {
	CreateNotification(notification *models.Notification) error
	ListByTransactionIDs(ctx context.Context, tranIDs []string) ([]models.Notification, error)
	MarkAsRead(notificationID string) error
	MarkAllRead(notificationIDs []string) error
}

type postgresNotificationRepository struct {
	db *gorm.DB
}

func NewPostgresNotificationRepository(db *gorm.DB) NotificationRepository {
	return &postgresNotificationRepository{db: db}
}

func (r *postgresNotificationRepository) CreateNotification(notification *models.Notification) error {
	if notification.ID == "" {
		notification.ID = uuid.NewString()
	}
	notification.CreatedAt = time.Now()
	return r.db.Create(notification).Error
}

// ListByTransactionIDs fetches notifications belonging to any of the given
// transactions. An empty id set short-circuits to an empty result; no query
// with an empty IN predicate is ever sent.
func (r *postgresNotificationRepository) ListByTransactionIDs(ctx context.Context, tranIDs []string) ([]models.Notification, error) {
	if len(tranIDs) == 0 {
		return []models.Notification{}, nil
	}
	var notifications []models.Notification
	err := r.db.WithContext(ctx).Where("transaction_id IN ?", tranIDs).Find(&notifications).Error
	return notifications, err
}

func (r *postgresNotificationRepository) MarkAsRead(notificationID string) error {
	return r.db.Model(&models.Notification{}).Where("id = ?", notificationID).Update("is_read", true).Error
}

func (r *postgresNotificationRepository) MarkAllRead(notificationIDs []string) error {
	if len(notificationIDs) == 0 {
		return nil
	}
	return r.db.Model(&models.Notification{}).Where("id IN ? AND is_read = false", notificationIDs).Update("is_read", true).Error
}
