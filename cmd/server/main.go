package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fitflow/catalog-api/internal/api"
	"fitflow/catalog-api/internal/catalog"
	"fitflow/catalog-api/internal/config"
	"fitflow/catalog-api/internal/provider"
	"fitflow/catalog-api/internal/repository/mongo"
	"fitflow/catalog-api/internal/service"
	"fitflow/catalog-api/internal/storage"

	"github.com/gin-gonic/gin"
)

func main() {
	log.Println("Starting FitFlow Catalog API...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	log.Println("Configuration loaded.")

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		log.Fatalf("FATAL: Could not connect to MongoDB: %v", err)
	}
	defer func() {
		log.Println("Disconnecting MongoDB...")
		if err := mongo.DisconnectDB(dbClient); err != nil {
			log.Printf("ERROR: Failed to disconnect MongoDB: %v", err)
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	log.Println("Database connection established.")

	// --- Ensure Indexes ---
	log.Println("Ensuring database indexes...")
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		mongo.EnsureUserIndexes(ctx, appDB.Collection("users"))
		mongo.EnsureCatalogIndexes(ctx, appDB.Collection("catalog_exercises"))
		mongo.EnsureTemplateIndexes(ctx, appDB.Collection("workout_templates"))
		mongo.EnsureBlogIndexes(ctx, appDB.Collection("blog_posts"))
		mongo.EnsureTicketIndexes(ctx, appDB.Collection("support_tickets"))
		mongo.EnsureGalleryIndexes(ctx, appDB.Collection("gallery_items"))
		log.Println("Index creation process completed.")
	}()

	// --- Initialize Storage ---
	log.Println("Initializing file storage service...")
	fileStorage, err := storage.NewS3Storage(cfg.S3)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize S3 storage: %v", err)
	}

	// --- Initialize Repositories ---
	log.Println("Initializing repositories...")
	userRepo := mongo.NewMongoUserRepository(appDB)
	catalogRepo := mongo.NewMongoCatalogRepository(appDB)
	templateRepo := mongo.NewMongoTemplateRepository(appDB)
	blogRepo := mongo.NewMongoBlogRepository(appDB)
	ticketRepo := mongo.NewMongoTicketRepository(appDB)
	galleryRepo := mongo.NewMongoGalleryRepository(appDB)

	// --- Initialize Providers ---
	log.Println("Initializing exercise catalog providers...")
	primary := provider.NewExerciseDB(cfg.Providers.ExerciseDB, nil)
	fallback := provider.NewOpenExDB(cfg.Providers.OpenExDB, nil)
	orchestrator := provider.NewOrchestrator(primary, fallback)
	if cfg.Providers.ExerciseDB.APIKey == "" {
		log.Println("WARN: ExerciseDB API key not set; all catalog queries will use the fallback provider.")
	}

	resolver := catalog.NewResolver(cfg.Media.ImageBase, cfg.Media.AnimationBase, cfg.Media.VideoBase)

	// --- Initialize Services ---
	log.Println("Initializing services...")
	authService := service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.Expiration)
	catalogService := service.NewCatalogService(orchestrator, resolver, catalogRepo)
	templateService := service.NewTemplateService(templateRepo, catalogRepo)
	contentService := service.NewContentService(blogRepo, ticketRepo)
	galleryService := service.NewGalleryService(galleryRepo, fileStorage)

	// --- Initialize Gin Engine ---
	router := gin.Default()

	// --- Setup Routes ---
	log.Println("Setting up API routes...")
	api.SetupRoutes(router, cfg.JWT.Secret, authService, catalogService, templateService, contentService, galleryService)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Server starting on %s", cfg.Server.Address)

	// --- Graceful Shutdown ---
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe Error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("FATAL: Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}
