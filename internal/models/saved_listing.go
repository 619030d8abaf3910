package models

import "time"

// SavedListing represents a bookmarked listing by a user
type SavedListing struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"size:64;index;uniqueIndex:idx_user_listing_save"`
	ListingID string    `json:"listing_id" gorm:"size:64;index;uniqueIndex:idx_user_listing_save"`
	CreatedAt time.Time `json:"created_at"`
}
