package models

import "time"

// Conversation is a symmetric chat thread between two users (PostgreSQL).
// Neither side owns it; participant order carries no meaning.
type Conversation struct {
	ID            string    `json:"id" gorm:"primaryKey;size:64"`
	UserID1       string    `json:"user_id_1" gorm:"column:user_id1;size:64;index"`
	UserID2       string    `json:"user_id_2" gorm:"column:user_id2;size:64;index"`
	CreatedAt     time.Time `json:"created_at"`
	LastMessageAt time.Time `json:"last_message_at" gorm:"index"`
}

type CreateConversationRequest struct {
	OtherUserID string `json:"other_user_id" validate:"required"`
}
