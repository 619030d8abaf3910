package models

import "time"

// NotificationKind is the enumerated audience/event tag stored with each
// notification at creation time. Legacy rows predate the column and carry an
// empty kind; for those, audience is inferred from the message text.
type NotificationKind string

const (
	// Seller-facing
	KindListingRequested NotificationKind = "listing_requested"
	KindOfferReceived    NotificationKind = "offer_received"
	// Requester-facing
	KindRequestAccepted      NotificationKind = "request_accepted"
	KindRequestRejected      NotificationKind = "request_rejected"
	KindTransactionCompleted NotificationKind = "transaction_completed"
)

// Notification records transaction activity (PostgreSQL). It is tied to a
// transaction, not a user; which users see it is derived at read time.
type Notification struct {
	ID            string           `json:"id" gorm:"primaryKey;size:64"`
	TransactionID string           `json:"transaction_id" gorm:"size:64;index"`
	Kind          NotificationKind `json:"kind,omitempty" gorm:"size:40;index"`
	Message       string           `json:"message"`
	IsRead        bool             `json:"is_read" gorm:"default:false;index"`
	CreatedAt     time.Time        `json:"created_at" gorm:"index"`
}
