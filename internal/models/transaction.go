package models

import "time"

// TransactionStatus is the lifecycle state of a transaction.
type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "Pending"
	TransactionAccepted  TransactionStatus = "Accepted"
	TransactionDeclined  TransactionStatus = "Declined"
	TransactionCompleted TransactionStatus = "Completed"
)

// Transaction links a listing to the one non-seller participant acting on it (PostgreSQL).
// CounterpartID is the buyer/requester and must never be the listing's seller.
type Transaction struct {
	ID            string            `json:"id" gorm:"primaryKey;size:64"`
	ListingID     string            `json:"listing_id" gorm:"size:64;index"`
	CounterpartID string            `json:"counterpart_id" gorm:"size:64;index"`
	Status        TransactionStatus `json:"status" gorm:"size:12;index;default:Pending"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

type CreateTransactionRequest struct {
	ListingID string `json:"listing_id" validate:"required"`
}

type UpdateTransactionStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Accepted Declined Completed"`
}
