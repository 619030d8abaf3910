package views

import (
	"context"
	"errors"
	"testing"

	"github.com/nazmul-dev/campusmart/backend/internal/models"
)

func TestGetNotificationFeedEmptyUserID(t *testing.T) {
	e := newTestEngine(&fakeStore{})
	if _, err := e.GetNotificationFeed(context.Background(), ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestGetNotificationFeedNoActivity(t *testing.T) {
	e := newTestEngine(&fakeStore{
		users: []models.User{{ID: "u1", FirstName: "Idle", LastName: "User"}},
	})
	feed, err := e.GetNotificationFeed(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(feed) != 0 {
		t.Fatalf("expected empty feed, got %d items", len(feed))
	}
}

func TestGetNotificationFeedSellerAndRequesterPaths(t *testing.T) {
	// U1 sells L1; U2 opened pending T1 on it and a seller-facing
	// notification exists. U2 also sees nothing until a requester-facing
	// notification is created.
	store := &fakeStore{
		listings: []models.Listing{
			{ID: "L1", SellerID: "u1", Type: models.ListingSale},
		},
		transactions: []models.Transaction{
			{ID: "T1", ListingID: "L1", CounterpartID: "u2", Status: models.TransactionPending},
		},
		notifications: []models.Notification{
			{ID: "N1", TransactionID: "T1", Kind: models.KindListingRequested,
				Message: "Jane Doe has requested your listing", CreatedAt: at(10, 0)},
		},
	}
	e := newTestEngine(store)

	sellerFeed, err := e.GetNotificationFeed(context.Background(), "u1")
	if err != nil {
		t.Fatalf("seller feed: %v", err)
	}
	if len(sellerFeed) != 1 || sellerFeed[0].ID != "N1" {
		t.Fatalf("expected exactly N1 in seller feed, got %+v", sellerFeed)
	}

	requesterFeed, err := e.GetNotificationFeed(context.Background(), "u2")
	if err != nil {
		t.Fatalf("requester feed: %v", err)
	}
	if len(requesterFeed) != 0 {
		t.Fatalf("expected empty requester feed before acceptance, got %+v", requesterFeed)
	}

	// Seller accepts: status flips and a requester-facing notification lands.
	store.transactions[0].Status = models.TransactionAccepted
	store.notifications = append(store.notifications, models.Notification{
		ID: "N2", TransactionID: "T1", Kind: models.KindRequestAccepted,
		Message: "John Smith has accepted your request", CreatedAt: at(11, 0),
	})

	requesterFeed, err = e.GetNotificationFeed(context.Background(), "u2")
	if err != nil {
		t.Fatalf("requester feed after accept: %v", err)
	}
	if len(requesterFeed) != 1 || requesterFeed[0].ID != "N2" {
		t.Fatalf("expected exactly N2 in requester feed, got %+v", requesterFeed)
	}

	// The accepted transaction is no longer pending, so the seller-facing
	// notification drops out of the seller feed too.
	sellerFeed, err = e.GetNotificationFeed(context.Background(), "u1")
	if err != nil {
		t.Fatalf("seller feed after accept: %v", err)
	}
	if len(sellerFeed) != 0 {
		t.Fatalf("expected empty seller feed after accept, got %+v", sellerFeed)
	}
}

func TestGetNotificationFeedLegacyTextClassification(t *testing.T) {
	// Rows without a kind fall back to the message-text patterns,
	// case-insensitively.
	store := &fakeStore{
		listings: []models.Listing{
			{ID: "L1", SellerID: "u1", Type: models.ListingFree},
		},
		transactions: []models.Transaction{
			{ID: "T1", ListingID: "L1", CounterpartID: "u2", Status: models.TransactionPending},
		},
		notifications: []models.Notification{
			{ID: "N1", TransactionID: "T1", Message: "U2 HAS REQUESTED YOUR LISTING", CreatedAt: at(9, 0)},
			{ID: "N2", TransactionID: "T1", Message: "u1 has accepted your request", CreatedAt: at(9, 5)},
			{ID: "N3", TransactionID: "T1", Message: "completely unrelated text", CreatedAt: at(9, 10)},
		},
	}
	e := newTestEngine(store)

	sellerFeed, err := e.GetNotificationFeed(context.Background(), "u1")
	if err != nil {
		t.Fatalf("seller feed: %v", err)
	}
	if len(sellerFeed) != 1 || sellerFeed[0].ID != "N1" {
		t.Fatalf("expected only N1 for seller, got %+v", sellerFeed)
	}

	requesterFeed, err := e.GetNotificationFeed(context.Background(), "u2")
	if err != nil {
		t.Fatalf("requester feed: %v", err)
	}
	if len(requesterFeed) != 1 || requesterFeed[0].ID != "N2" {
		t.Fatalf("expected only N2 for requester, got %+v", requesterFeed)
	}
}

func TestGetNotificationFeedExcludesWantedListings(t *testing.T) {
	store := &fakeStore{
		listings: []models.Listing{
			{ID: "L1", SellerID: "u1", Type: models.ListingWanted},
		},
		transactions: []models.Transaction{
			{ID: "T1", ListingID: "L1", CounterpartID: "u2", Status: models.TransactionPending},
		},
		notifications: []models.Notification{
			{ID: "N1", TransactionID: "T1", Kind: models.KindOfferReceived,
				Message: "U2 wants to offer item to your listing", CreatedAt: at(8, 0)},
		},
	}
	e := newTestEngine(store)

	feed, err := e.GetNotificationFeed(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(feed) != 0 {
		t.Fatalf("wanted-ad notifications must not surface in the seller path, got %+v", feed)
	}
}

func TestGetNotificationFeedDeduplicatesByID(t *testing.T) {
	// Force the same notification through both paths: the user is seller of
	// the listing and (corrupt data) counterpart of the same transaction.
	store := &fakeStore{
		listings: []models.Listing{
			{ID: "L1", SellerID: "u1", Type: models.ListingSale},
		},
		transactions: []models.Transaction{
			{ID: "T1", ListingID: "L1", CounterpartID: "u1", Status: models.TransactionPending},
		},
		notifications: []models.Notification{
			{ID: "N1", TransactionID: "T1", Kind: models.KindListingRequested,
				Message: "someone has requested your listing", CreatedAt: at(10, 0)},
		},
	}
	e := newTestEngine(store)

	feed, err := e.GetNotificationFeed(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(feed) != 1 {
		t.Fatalf("expected N1 exactly once, got %d items", len(feed))
	}
}

func TestGetNotificationFeedSortsNewestFirst(t *testing.T) {
	store := &fakeStore{
		listings: []models.Listing{
			{ID: "L1", SellerID: "u1", Type: models.ListingSale},
		},
		transactions: []models.Transaction{
			{ID: "T1", ListingID: "L1", CounterpartID: "u2", Status: models.TransactionPending},
			{ID: "T2", ListingID: "L1", CounterpartID: "u3", Status: models.TransactionPending},
		},
		notifications: []models.Notification{
			{ID: "N1", TransactionID: "T1", Kind: models.KindListingRequested, Message: "a has requested your listing", CreatedAt: at(9, 0)},
			{ID: "N2", TransactionID: "T2", Kind: models.KindListingRequested, Message: "b has requested your listing", CreatedAt: at(12, 0)},
		},
	}
	e := newTestEngine(store)

	feed, err := e.GetNotificationFeed(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(feed) != 2 || feed[0].ID != "N2" || feed[1].ID != "N1" {
		t.Fatalf("expected [N2 N1], got %+v", feed)
	}
}

func TestGetNotificationFeedStoreFailure(t *testing.T) {
	for _, op := range []string{"listings", "transactions", "pending", "notifications"} {
		store := &fakeStore{
			listings: []models.Listing{
				{ID: "L1", SellerID: "u1", Type: models.ListingSale},
			},
			transactions: []models.Transaction{
				{ID: "T1", ListingID: "L1", CounterpartID: "u1", Status: models.TransactionPending},
			},
			failOn: op,
		}
		e := newTestEngine(store)

		_, err := e.GetNotificationFeed(context.Background(), "u1")
		var se *StoreError
		if !errors.As(err, &se) {
			t.Fatalf("failOn=%s: expected StoreError, got %v", op, err)
		}
		if !errors.Is(err, errStoreDown) {
			t.Fatalf("failOn=%s: StoreError must wrap the original cause, got %v", op, err)
		}
	}
}
