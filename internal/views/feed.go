package views

import (
	"context"
	"fmt"
	"sort"

	"github.com/nazmul-dev/campusmart/backend/internal/models"
)

// GetNotificationFeed assembles the notification feed for a user. A
// notification is relevant when the user is the seller behind its pending
// transaction and the notification is seller-facing, or the user is the
// transaction's counterpart and the notification is requester-facing. The
// union is deduplicated by notification id and returned newest first. Empty
// candidate sets at any step yield an empty part, never an error.
func (e *Engine) GetNotificationFeed(ctx context.Context, userID string) ([]NotificationView, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: empty user id", ErrInvalidInput)
	}

	listings, err := e.store.Listings.ListOfferedBySeller(ctx, userID)
	if err != nil {
		return nil, storeErr("fetch seller listings", err)
	}
	counterpartTrans, err := e.store.Transactions.ListByCounterpart(ctx, userID)
	if err != nil {
		return nil, storeErr("fetch counterpart transactions", err)
	}

	sellerPart, err := e.sellerFacingNotifications(ctx, listings)
	if err != nil {
		return nil, err
	}
	requesterPart, err := e.requesterFacingNotifications(ctx, counterpartTrans)
	if err != nil {
		return nil, err
	}

	// A notification cannot legally match both paths, but dedup by id keeps
	// the output stable even on bad data.
	seen := make(map[string]bool)
	feed := make([]NotificationView, 0, len(sellerPart)+len(requesterPart))
	for _, n := range append(sellerPart, requesterPart...) {
		if seen[n.ID] {
			continue
		}
		seen[n.ID] = true
		feed = append(feed, NotificationView{
			ID:            n.ID,
			TransactionID: n.TransactionID,
			Kind:          n.Kind,
			Message:       n.Message,
			IsRead:        n.IsRead,
			CreatedAt:     n.CreatedAt,
		})
	}

	sort.SliceStable(feed, func(i, j int) bool {
		return feed[i].CreatedAt.After(feed[j].CreatedAt)
	})
	return feed, nil
}

// sellerFacingNotifications finds notifications the user must act on as a
// seller: pending transactions against their offered listings, filtered to
// the seller-facing audience.
func (e *Engine) sellerFacingNotifications(ctx context.Context, listings []models.Listing) ([]models.Notification, error) {
	if len(listings) == 0 {
		return nil, nil
	}
	listingIDs := make([]string, len(listings))
	for i, l := range listings {
		listingIDs[i] = l.ID
	}

	pending, err := e.store.Transactions.ListPendingForListings(ctx, listingIDs)
	if err != nil {
		return nil, storeErr("fetch pending transactions", err)
	}
	if len(pending) == 0 {
		return nil, nil
	}

	tranIDs := make([]string, len(pending))
	for i, t := range pending {
		tranIDs[i] = t.ID
	}
	notifications, err := e.store.Notifications.ListByTransactionIDs(ctx, tranIDs)
	if err != nil {
		return nil, storeErr("fetch seller notifications", err)
	}
	return filterByAudience(notifications, audienceSeller), nil
}

// requesterFacingNotifications finds notifications addressed to the user as a
// buyer/requester across all their transactions, regardless of status.
func (e *Engine) requesterFacingNotifications(ctx context.Context, transactions []models.Transaction) ([]models.Notification, error) {
	if len(transactions) == 0 {
		return nil, nil
	}
	tranIDs := make([]string, len(transactions))
	for i, t := range transactions {
		tranIDs[i] = t.ID
	}
	notifications, err := e.store.Notifications.ListByTransactionIDs(ctx, tranIDs)
	if err != nil {
		return nil, storeErr("fetch requester notifications", err)
	}
	return filterByAudience(notifications, audienceRequester), nil
}
