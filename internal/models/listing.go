package models

import "time"

// ListingType classifies what a listing asks of other users.
type ListingType string

const (
	ListingSale   ListingType = "Sale"
	ListingFree   ListingType = "Free"
	ListingWanted ListingType = "Wanted"
)

// ListingStatus tracks availability.
type ListingStatus string

const (
	ListingAvailable ListingStatus = "Available"
	ListingReserved  ListingStatus = "Reserved"
	ListingClosed    ListingStatus = "Closed"
)

// Listing represents an item posted on the marketplace (PostgreSQL)
type Listing struct {
	ID          string        `json:"id" gorm:"primaryKey;size:64"`
	SellerID    string        `json:"seller_id" gorm:"size:64;index"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	Price       int           `json:"price"`
	Type        ListingType   `json:"type" gorm:"size:10;index"`
	Status      ListingStatus `json:"status" gorm:"size:12;index;default:Available"`
	CreatedAt   time.Time     `json:"created_at" gorm:"index"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

type CreateListingRequest struct {
	Title       string `json:"title" validate:"required,min=2,max=120"`
	Description string `json:"description" validate:"omitempty,max=2000"`
	Price       int    `json:"price" validate:"min=0"`
	Type        string `json:"type" validate:"required,oneof=Sale Free Wanted"`
}
