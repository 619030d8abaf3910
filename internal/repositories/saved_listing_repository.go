package repositories

import (
	"fmt"

	"github.com/nazmul-dev/campusmart/backend/internal/models"
	"gorm.io/gorm"
)

// SavedListingRepository defines the interface for saved listing operations
type SavedListingRepository interface {
	SaveListing(saved *models.SavedListing) error
	UnsaveListing(userID, listingID string) error
	IsListingSaved(userID, listingID string) (bool, error)
	GetSavedListingsByUser(userID string) ([]models.SavedListing, error)
}

// PostgresSavedListingRepository implements SavedListingRepository
type PostgresSavedListingRepository struct {
	db *gorm.DB
}

func NewPostgresSavedListingRepository(db *gorm.DB) *PostgresSavedListingRepository {
	return &PostgresSavedListingRepository{db: db}
}

func (r *PostgresSavedListingRepository) SaveListing(saved *models.SavedListing) error {
	return r.db.Create(saved).Error
}

func (r *PostgresSavedListingRepository) UnsaveListing(userID, listingID string) error {
	res := r.db.Where("user_id = ? AND listing_id = ?", userID, listingID).Delete(&models.SavedListing{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("saved listing not found")
	}
	return nil
}

func (r *PostgresSavedListingRepository) IsListingSaved(userID, listingID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.SavedListing{}).Where("user_id = ? AND listing_id = ?", userID, listingID).Count(&count).Error
	return count > 0, err
}

func (r *PostgresSavedListingRepository) GetSavedListingsByUser(userID string) ([]models.SavedListing, error) {
	var saved []models.SavedListing
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&saved).Error
	return saved, err
}
