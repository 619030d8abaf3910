package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/nazmul-dev/campusmart/backend/internal/models"
	"gorm.io/gorm"
)

// TransactionRepository defines the interface for transaction data operations
type TransactionRepository interface {
	CreateTransaction(transaction *models.Transaction) error
	GetTransactionByID(id string) (*models.Transaction, error)
	UpdateStatus(id string, status models.TransactionStatus) error
	ListByCounterpart(ctx context.Context, userID string) ([]models.Transaction, error)
	ListPendingForListings(ctx context.Context, listingIDs []string) ([]models.Transaction, error)
}

// PostgresTransactionRepository implements TransactionRepository for PostgreSQL
type PostgresTransactionRepository struct {
	db *gorm.DB
}

func NewPostgresTransactionRepository(db *gorm.DB) *PostgresTransactionRepository {
	return &PostgresTransactionRepository{db: db}
}

func (r *PostgresTransactionRepository) CreateTransaction(transaction *models.Transaction) error {
	if transaction.ID == "" {
		transaction.ID = uuid.NewString()
	}
	if transaction.Status == "" {
		transaction.Status = models.TransactionPending
	}
	transaction.CreatedAt = time.Now()
	transaction.UpdatedAt = transaction.CreatedAt
	return r.db.Create(transaction).Error
}

func (r *PostgresTransactionRepository) GetTransactionByID(id string) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := r.db.First(&transaction, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &transaction, nil
}

func (r *PostgresTransactionRepository) UpdateStatus(id string, status models.TransactionStatus) error {
	return r.db.Model(&models.Transaction{}).Where("id = ?", id).
		Updates(map[string]interface{}{"status": status, "updated_at": time.Now()}).Error
}

// ListByCounterpart returns every transaction where the user is the
// buyer/requester side, regardless of status.
func (r *PostgresTransactionRepository) ListByCounterpart(ctx context.Context, userID string) ([]models.Transaction, error) {
	var transactions []models.Transaction
	err := r.db.WithContext(ctx).Where("counterpart_id = ?", userID).Find(&transactions).Error
	return transactions, err
}

// ListPendingForListings returns Pending transactions against any of the given
// listings. An empty id set returns an empty slice without touching the
// database; an empty IN predicate is never issued.
func (r *PostgresTransactionRepository) ListPendingForListings(ctx context.Context, listingIDs []string) ([]models.Transaction, error) {
	if len(listingIDs) == 0 {
		return []models.Transaction{}, nil
	}
	var transactions []models.Transaction
	err := r.db.WithContext(ctx).
		Where("listing_id IN ? AND status = ?", listingIDs, models.TransactionPending).
		Find(&transactions).Error
	return transactions, err
}
