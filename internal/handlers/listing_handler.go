package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/nazmul-dev/campusmart/backend/internal/models"
	"github.com/nazmul-dev/campusmart/backend/internal/repositories"
	"gorm.io/gorm"
)

// ListingHandler handles listing-related HTTP requests
type ListingHandler struct {
	listingRepository      repositories.ListingRepository
	userRepository         repositories.UserRepository
	savedListingRepository repositories.SavedListingRepository
}

// NewListingHandler creates a new ListingHandler
func NewListingHandler(
	listingRepo repositories.ListingRepository,
	userRepo repositories.UserRepository,
	savedRepo repositories.SavedListingRepository,
) *ListingHandler {
	return &ListingHandler{
		listingRepository:      listingRepo,
		userRepository:         userRepo,
		savedListingRepository: savedRepo,
	}
}

// RegisterListingRoutes registers listing-related routes
func (h *ListingHandler) RegisterListingRoutes(g *echo.Group) {
	g.POST("/listings", h.CreateListing)
	g.GET("/listings", h.BrowseListings)
	g.GET("/listings/mine", h.GetMyListings)
	g.GET("/listings/:id", h.GetListing)
	g.POST("/listings/:id/save", h.SaveListing)
	g.DELETE("/listings/:id/save", h.UnsaveListing)
	g.GET("/listings/saved", h.GetSavedListings)
}

// EnrichedListing includes seller info
type EnrichedListing struct {
	models.Listing
	Seller models.UserCompact `json:"seller"`
}

// CreateListing creates a new listing owned by the current user
func (h *ListingHandler) CreateListing(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.CreateListingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	listing := &models.Listing{
		SellerID:    currentUserID,
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Type:        models.ListingType(req.Type),
	}
	if err := h.listingRepository.CreateListing(listing); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, echo.Map{"success": true, "data": echo.Map{"listing": listing}})
}

// BrowseListings returns available listings with seller info
func (h *ListingHandler) BrowseListings(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 20
	}

	listings, err := h.listingRepository.ListOpenListings(limit, (page-1)*limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	enriched := h.enrichListings(c, listings)
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    echo.Map{"listings": enriched},
	})
}

func (h *ListingHandler) enrichListings(c echo.Context, listings []models.Listing) []EnrichedListing {
	sellerIDs := make([]string, 0, len(listings))
	seen := make(map[string]bool)
	for _, l := range listings {
		if !seen[l.SellerID] {
			seen[l.SellerID] = true
			sellerIDs = append(sellerIDs, l.SellerID)
		}
	}

	sellerMap := make(map[string]models.UserCompact)
	sellers, err := h.userRepository.ListUsersByIDs(c.Request().Context(), sellerIDs)
	if err == nil {
		for _, s := range sellers {
			sellerMap[s.ID] = s.ToCompact()
		}
	}

	enriched := make([]EnrichedListing, len(listings))
	for i, l := range listings {
		enriched[i] = EnrichedListing{Listing: l, Seller: sellerMap[l.SellerID]}
	}
	return enriched
}

// GetMyListings returns all listings posted by the current user
func (h *ListingHandler) GetMyListings(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	listings, err := h.listingRepository.ListByOwner(currentUserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"listings": listings}})
}

// GetListing returns a single listing with seller info
func (h *ListingHandler) GetListing(c echo.Context) error {
	listing, err := h.listingRepository.GetListingByID(c.Param("id"))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Listing not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	enriched := h.enrichListings(c, []models.Listing{*listing})
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"listing": enriched[0]}})
}

// SaveListing bookmarks a listing for the current user
func (h *ListingHandler) SaveListing(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	listingID := c.Param("id")

	if _, err := h.listingRepository.GetListingByID(listingID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Listing not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	saved, err := h.savedListingRepository.IsListingSaved(currentUserID, listingID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if saved {
		return echo.NewHTTPError(http.StatusConflict, "Listing already saved")
	}

	if err := h.savedListingRepository.SaveListing(&models.SavedListing{
		UserID:    currentUserID,
		ListingID: listingID,
	}); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, echo.Map{"success": true, "data": echo.Map{"success": true}})
}

// UnsaveListing removes a bookmark
func (h *ListingHandler) UnsaveListing(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	if err := h.savedListingRepository.UnsaveListing(currentUserID, c.Param("id")); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"success": true}})
}

// GetSavedListings returns the current user's bookmarked listings
func (h *ListingHandler) GetSavedListings(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	saved, err := h.savedListingRepository.GetSavedListingsByUser(currentUserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	listings := make([]models.Listing, 0, len(saved))
	for _, s := range saved {
		listing, err := h.listingRepository.GetListingByID(s.ListingID)
		if err != nil {
			// Listing deleted since it was saved, skip it
			continue
		}
		listings = append(listings, *listing)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"listings": listings}})
}
