package views

import (
	"context"
	"errors"
	"time"

	"github.com/nazmul-dev/campusmart/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeStore is an in-memory record store. Setting failOn to one of the
// finder names makes that fetch return errStoreDown, which lets tests assert
// the abort-on-first-failure contract.
type fakeStore struct {
	users         []models.User
	listings      []models.Listing
	transactions  []models.Transaction
	notifications []models.Notification
	conversations []models.Conversation
	messages      []models.Message

	failOn string
}

var errStoreDown = errors.New("store unavailable")

func (f *fakeStore) fail(op string) bool { return f.failOn == op }

func (f *fakeStore) ListUsersByIDs(_ context.Context, ids []string) ([]models.User, error) {
	if f.fail("users") {
		return nil, errStoreDown
	}
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var out []models.User
	for _, u := range f.users {
		if want[u.ID] {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeStore) ListOfferedBySeller(_ context.Context, sellerID string) ([]models.Listing, error) {
	if f.fail("listings") {
		return nil, errStoreDown
	}
	var out []models.Listing
	for _, l := range f.listings {
		if l.SellerID == sellerID && l.Type != models.ListingWanted {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeStore) ListByCounterpart(_ context.Context, userID string) ([]models.Transaction, error) {
	if f.fail("transactions") {
		return nil, errStoreDown
	}
	var out []models.Transaction
	for _, t := range f.transactions {
		if t.CounterpartID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeStore) ListPendingForListings(_ context.Context, listingIDs []string) ([]models.Transaction, error) {
	if f.fail("pending") {
		return nil, errStoreDown
	}
	want := make(map[string]bool, len(listingIDs))
	for _, id := range listingIDs {
		want[id] = true
	}
	var out []models.Transaction
	for _, t := range f.transactions {
		if want[t.ListingID] && t.Status == models.TransactionPending {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeStore) ListByTransactionIDs(_ context.Context, tranIDs []string) ([]models.Notification, error) {
	if f.fail("notifications") {
		return nil, errStoreDown
	}
	want := make(map[string]bool, len(tranIDs))
	for _, id := range tranIDs {
		want[id] = true
	}
	var out []models.Notification
	for _, n := range f.notifications {
		if want[n.TransactionID] {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeStore) ListForUser(_ context.Context, userID string) ([]models.Conversation, error) {
	if f.fail("conversations") {
		return nil, errStoreDown
	}
	var out []models.Conversation
	for _, c := range f.conversations {
		if c.UserID1 == userID || c.UserID2 == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeStore) ListByConversation(_ context.Context, conversationID string) ([]models.Message, error) {
	if f.fail("messages") {
		return nil, errStoreDown
	}
	var out []models.Message
	for _, m := range f.messages {
		if m.ConversationID == conversationID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeStore) ListByConversationIDs(_ context.Context, conversationIDs []string) ([]models.Message, error) {
	if f.fail("messages") {
		return nil, errStoreDown
	}
	want := make(map[string]bool, len(conversationIDs))
	for _, id := range conversationIDs {
		want[id] = true
	}
	var out []models.Message
	for _, m := range f.messages {
		if want[m.ConversationID] {
			out = append(out, m)
		}
	}
	return out, nil
}

func newTestEngine(f *fakeStore) *Engine {
	return NewEngine(Store{
		Users:         f,
		Listings:      f,
		Transactions:  f,
		Notifications: f,
		Conversations: f,
		Messages:      f,
	})
}

func at(hour, min int) time.Time {
	return time.Date(2026, time.March, 14, hour, min, 0, 0, time.UTC)
}

func msg(conv, sender, content string, sentAt time.Time) models.Message {
	return models.Message{
		ID:             primitive.NewObjectID(),
		ConversationID: conv,
		SenderID:       sender,
		Content:        content,
		SentAt:         sentAt,
	}
}
