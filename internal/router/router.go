package router

import (
	"log"

	"firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/nazmul-dev/campusmart/backend/internal/handlers"
	"github.com/nazmul-dev/campusmart/backend/internal/middleware"
	"github.com/nazmul-dev/campusmart/backend/internal/models"
	"github.com/nazmul-dev/campusmart/backend/internal/repositories"
	"github.com/nazmul-dev/campusmart/backend/internal/views"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, pgdb *gorm.DB, mgClient *mongo.Client, firebaseAuthClient *auth.Client) {
	// AutoMigrate PostgreSQL models
	err := pgdb.AutoMigrate(
		&models.User{},
		&models.Listing{},
		&models.Transaction{},
		&models.Notification{},
		&models.Conversation{},
		&models.SavedListing{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	log.Println("PostgreSQL auto-migrations completed for all models.")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(pgdb)
	listingRepo := repositories.NewPostgresListingRepository(pgdb)
	transactionRepo := repositories.NewPostgresTransactionRepository(pgdb)
	notificationRepo := repositories.NewPostgresNotificationRepository(pgdb)
	conversationRepo := repositories.NewPostgresConversationRepository(pgdb)
	savedListingRepo := repositories.NewPostgresSavedListingRepository(pgdb)
	messageRepo := repositories.NewMongoMessageRepository(mgClient.Database("campusmart"))

	// --- Derived-view engine (explicit store handle, no globals) ---
	engine := views.NewEngine(views.Store{
		Users:         userRepo,
		Listings:      listingRepo,
		Transactions:  transactionRepo,
		Notifications: notificationRepo,
		Conversations: conversationRepo,
		Messages:      messageRepo,
	})

	// --- Unprotected routes for authentication ---
	authGroup := e.Group("/api/v1/auth")
	authHandler := handlers.NewAuthHandler(userRepo, firebaseAuthClient)
	authHandler.RegisterAuthRoutes(authGroup)
	log.Println("Auth routes configured.")

	// --- Protected routes (require JWT authentication) ---
	api := e.Group("/api/v1")
	api.Use(middleware.JWTAuthMiddleware())
	log.Println("JWT authentication middleware applied to /api/v1 group.")

	// User profile routes
	userHandler := handlers.NewUserHandler(userRepo)
	userHandler.RegisterProfileRoutes(api)
	log.Println("User profile routes configured.")

	// Firebase-token profile access (mobile clients without a local JWT yet)
	fbGroup := e.Group("/api/v1/firebase")
	fbGroup.Use(middleware.FirebaseAuthMiddleware(firebaseAuthClient))
	userHandler.RegisterFirebaseRoutes(fbGroup)
	log.Println("Firebase profile routes configured.")

	// Listing routes
	listingHandler := handlers.NewListingHandler(listingRepo, userRepo, savedListingRepo)
	listingHandler.RegisterListingRoutes(api)
	log.Println("Listing routes configured.")

	// Transaction routes
	transactionHandler := handlers.NewTransactionHandler(transactionRepo, listingRepo, userRepo, notificationRepo)
	transactionHandler.RegisterTransactionRoutes(api)
	log.Println("Transaction routes configured.")

	// Notification routes
	notificationHandler := handlers.NewNotificationHandler(engine, notificationRepo)
	notificationHandler.RegisterNotificationRoutes(api)
	log.Println("Notification routes configured.")

	// Conversation routes
	conversationHandler := handlers.NewConversationHandler(engine, conversationRepo, messageRepo, userRepo)
	conversationHandler.RegisterConversationRoutes(api)
	log.Println("Conversation routes configured.")

	log.Println("All routes configured.")
}
