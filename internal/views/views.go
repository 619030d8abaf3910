// Package views assembles the per-user derived views — notification feed,
// conversation list and conversation thread — at request time from the
// independently stored record sets. None of the views exist as stored data;
// every call is a pure function of the store contents and the input ids.
package views

import (
	"context"
	"time"

	"github.com/nazmul-dev/campusmart/backend/internal/models"
)

// UserFinder batch-resolves user display records.
type UserFinder interface {
	ListUsersByIDs(ctx context.Context, ids []string) ([]models.User, error)
}

// ListingFinder resolves the listings a user offers to others (Wanted ads excluded).
type ListingFinder interface {
	ListOfferedBySeller(ctx context.Context, sellerID string) ([]models.Listing, error)
}

// TransactionFinder resolves transactions by counterpart or by listing set.
type TransactionFinder interface {
	ListByCounterpart(ctx context.Context, userID string) ([]models.Transaction, error)
	ListPendingForListings(ctx context.Context, listingIDs []string) ([]models.Transaction, error)
}

// NotificationFinder resolves notifications by owning transaction.
type NotificationFinder interface {
	ListByTransactionIDs(ctx context.Context, tranIDs []string) ([]models.Notification, error)
}

// ConversationFinder resolves the conversations a user participates in.
type ConversationFinder interface {
	ListForUser(ctx context.Context, userID string) ([]models.Conversation, error)
}

// MessageFinder resolves messages per conversation or per conversation set.
type MessageFinder interface {
	ListByConversation(ctx context.Context, conversationID string) ([]models.Message, error)
	ListByConversationIDs(ctx context.Context, conversationIDs []string) ([]models.Message, error)
}

// Store bundles read access to every record set the builders correlate. It is
// passed in explicitly so the engine can run against the production
// repositories or an in-memory fake without any process-wide state.
type Store struct {
	Users         UserFinder
	Listings      ListingFinder
	Transactions  TransactionFinder
	Notifications NotificationFinder
	Conversations ConversationFinder
	Messages      MessageFinder
}

// Engine builds the derived views. It holds no state besides the store handle
// and is safe for concurrent use.
type Engine struct {
	store Store
}

// NewEngine creates an Engine backed by the given store.
func NewEngine(store Store) *Engine {
	return &Engine{store: store}
}

// UnknownUser is the display name substituted when a referenced user profile
// is missing. Broken references degrade to this default instead of failing
// the whole view.
const UnknownUser = "Unknown User"

// NotificationView is one shaped entry of the notification feed.
type NotificationView struct {
	ID            string                  `json:"id"`
	TransactionID string                  `json:"transaction_id"`
	Kind          models.NotificationKind `json:"kind,omitempty"`
	Message       string                  `json:"message"`
	IsRead        bool                    `json:"is_read"`
	CreatedAt     time.Time               `json:"created_at"`
}

// ConversationView is one shaped row of the conversation list. LastMessageAt
// is the conversation's own timestamp, not the latest message's; the two may
// diverge when the store is inconsistent and the conversation row wins.
type ConversationView struct {
	ID               string    `json:"id"`
	OtherPartyID     string    `json:"other_party_id,omitempty"`
	OtherPartyName   string    `json:"other_party_name"`
	OtherPartyAvatar string    `json:"other_party_avatar,omitempty"`
	LastMessage      string    `json:"last_message"`
	LastMessageAt    time.Time `json:"last_message_at"`
}

// MessageView is one shaped entry of a conversation thread. Time is a
// locale-style clock label only; callers needing a date must keep the raw
// message around, this layer does not expose it.
type MessageView struct {
	ID         string `json:"id"`
	Content    string `json:"content"`
	Time       string `json:"time"`
	Mine       bool   `json:"mine"`
	SenderName string `json:"sender_name"`
}
