package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/nazmul-dev/campusmart/backend/internal/models"
	"gorm.io/gorm"
)

// ListingRepository defines the interface for listing data operations
type ListingRepository interface {
	CreateListing(listing *models.Listing) error
	GetListingByID(id string) (*models.Listing, error)
	ListOpenListings(limit, offset int) ([]models.Listing, error)
	ListByOwner(ownerID string) ([]models.Listing, error)
	ListOfferedBySeller(ctx context.Context, sellerID string) ([]models.Listing, error)
	UpdateListing(listing *models.Listing) error
}

// PostgresListingRepository implements ListingRepository for PostgreSQL
type PostgresListingRepository struct {
	db *gorm.DB
}

func NewPostgresListingRepository(db *gorm.DB) *PostgresListingRepository {
	return &PostgresListingRepository{db: db}
}

func (r *PostgresListingRepository) CreateListing(listing *models.Listing) error {
	if listing.ID == "" {
		listing.ID = uuid.NewString()
	}
	listing.CreatedAt = time.Now()
	listing.UpdatedAt = listing.CreatedAt
	if listing.Status == "" {
		listing.Status = models.ListingAvailable
	}
	return r.db.Create(listing).Error
}

func (r *PostgresListingRepository) GetListingByID(id string) (*models.Listing, error) {
	var listing models.Listing
	if err := r.db.First(&listing, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &listing, nil
}

// ListOpenListings returns available listings for browsing, newest first
func (r *PostgresListingRepository) ListOpenListings(limit, offset int) ([]models.Listing, error) {
	var listings []models.Listing
	err := r.db.Where("status = ?", models.ListingAvailable).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&listings).Error
	return listings, err
}

// ListByOwner returns every listing a user has posted, regardless of type
func (r *PostgresListingRepository) ListByOwner(ownerID string) ([]models.Listing, error) {
	var listings []models.Listing
	err := r.db.Where("seller_id = ?", ownerID).Order("created_at DESC").Find(&listings).Error
	return listings, err
}

// ListOfferedBySeller returns the listings a user is offering to others,
// i.e. everything they posted except Wanted ads.
func (r *PostgresListingRepository) ListOfferedBySeller(ctx context.Context, sellerID string) ([]models.Listing, error) {
	var listings []models.Listing
	err := r.db.WithContext(ctx).
		Where("seller_id = ? AND type <> ?", sellerID, models.ListingWanted).
		Find(&listings).Error
	return listings, err
}

func (r *PostgresListingRepository) UpdateListing(listing *models.Listing) error {
	listing.UpdatedAt = time.Now()
	return r.db.Save(listing).Error
}
