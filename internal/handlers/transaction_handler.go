package handlers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nazmul-dev/campusmart/backend/internal/models"
	"github.com/nazmul-dev/campusmart/backend/internal/repositories"
	"gorm.io/gorm"
)

// TransactionHandler handles transaction-related HTTP requests. Creating a
// transaction or moving it through its lifecycle also records the
// notification the other party will see in their feed.
type TransactionHandler struct {
	transactionRepository  repositories.TransactionRepository
	listingRepository      repositories.ListingRepository
	userRepository         repositories.UserRepository
	notificationRepository repositories.NotificationRepository
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(
	tranRepo repositories.TransactionRepository,
	listingRepo repositories.ListingRepository,
	userRepo repositories.UserRepository,
	notifRepo repositories.NotificationRepository,
) *TransactionHandler {
	return &TransactionHandler{
		transactionRepository:  tranRepo,
		listingRepository:      listingRepo,
		userRepository:         userRepo,
		notificationRepository: notifRepo,
	}
}

// RegisterTransactionRoutes registers transaction routes
func (h *TransactionHandler) RegisterTransactionRoutes(g *echo.Group) {
	g.POST("/transactions", h.CreateTransaction)
	g.PUT("/transactions/:id/status", h.UpdateTransactionStatus)
}

// CreateTransaction opens a transaction against a listing on behalf of the
// current user and records the seller-facing notification.
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	listing, err := h.listingRepository.GetListingByID(req.ListingID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Listing not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if listing.SellerID == currentUserID {
		return echo.NewHTTPError(http.StatusBadRequest, "Cannot open a transaction on your own listing")
	}
	if listing.Status != models.ListingAvailable {
		return echo.NewHTTPError(http.StatusConflict, "Listing is not available")
	}

	transaction := &models.Transaction{
		ListingID:     listing.ID,
		CounterpartID: currentUserID,
		Status:        models.TransactionPending,
	}
	if err := h.transactionRepository.CreateTransaction(transaction); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	h.notifySeller(transaction, listing)

	return c.JSON(http.StatusCreated, echo.Map{"success": true, "data": echo.Map{"transaction": transaction}})
}

// notifySeller records the seller-facing notification for a new transaction.
// Notification writes are best-effort: a failed insert never rolls back the
// transaction itself.
func (h *TransactionHandler) notifySeller(transaction *models.Transaction, listing *models.Listing) {
	counterpartName := "Someone"
	if user, err := h.userRepository.GetUserByID(transaction.CounterpartID); err == nil {
		counterpartName = user.DisplayName()
	}

	kind := models.KindListingRequested
	message := fmt.Sprintf("%s has requested your listing", counterpartName)
	if listing.Type == models.ListingWanted {
		kind = models.KindOfferReceived
		message = fmt.Sprintf("%s wants to offer item to your listing", counterpartName)
	}

	_ = h.notificationRepository.CreateNotification(&models.Notification{
		TransactionID: transaction.ID,
		Kind:          kind,
		Message:       message,
	})
}

// UpdateTransactionStatus lets the listing's seller accept, decline or
// complete a transaction, recording the requester-facing notification.
func (h *TransactionHandler) UpdateTransactionStatus(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.UpdateTransactionStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	transaction, err := h.transactionRepository.GetTransactionByID(c.Param("id"))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Transaction not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	listing, err := h.listingRepository.GetListingByID(transaction.ListingID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Listing behind this transaction no longer exists")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if listing.SellerID != currentUserID {
		return echo.NewHTTPError(http.StatusForbidden, "Only the seller can update this transaction")
	}

	status := models.TransactionStatus(req.Status)
	if err := h.transactionRepository.UpdateStatus(transaction.ID, status); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	transaction.Status = status

	h.notifyRequester(transaction, listing, status)

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"transaction": transaction}})
}

// notifyRequester records the requester-facing notification for a status
// change, using the same texts the feed's legacy classifier matches on.
func (h *TransactionHandler) notifyRequester(transaction *models.Transaction, listing *models.Listing, status models.TransactionStatus) {
	sellerName := "The seller"
	if user, err := h.userRepository.GetUserByID(listing.SellerID); err == nil {
		sellerName = user.DisplayName()
	}

	var kind models.NotificationKind
	var message string
	switch status {
	case models.TransactionAccepted:
		kind = models.KindRequestAccepted
		message = fmt.Sprintf("%s has accepted your request", sellerName)
	case models.TransactionDeclined:
		kind = models.KindRequestRejected
		message = fmt.Sprintf("%s has rejected your request", sellerName)
	case models.TransactionCompleted:
		kind = models.KindTransactionCompleted
		message = "Your transaction is successful"
	default:
		return
	}

	_ = h.notificationRepository.CreateNotification(&models.Notification{
		TransactionID: transaction.ID,
		Kind:          kind,
		Message:       message,
	})
}
