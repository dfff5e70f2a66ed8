package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/vcaron/dialogue/internal/config"
	"github.com/vcaron/dialogue/internal/database"
	postgresrepo "github.com/vcaron/dialogue/internal/repository/postgres"
	"github.com/vcaron/dialogue/internal/service"
	"github.com/vcaron/dialogue/internal/storage"
	"github.com/vcaron/dialogue/internal/transport/http/handlers"
	"github.com/vcaron/dialogue/internal/transport/http/middleware"
)

func main() {
	cfg := config.Load()

	// Database
	if err := database.Migrate(context.Background(), cfg); err != nil {
		log.Fatal(err)
	}
	pool, err := database.Connect(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()
	log.Println("Connected to database")

	// Photo blob storage
	var blobs storage.BlobStore
	switch cfg.PhotoStorage {
	case "s3":
		blobs, err = storage.NewS3Store(context.Background(), storage.S3Config{
			Endpoint:  cfg.S3Endpoint,
			Region:    cfg.S3Region,
			Bucket:    cfg.S3Bucket,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
		})
	default:
		blobs, err = storage.NewDiskStore(cfg.PhotoDir)
	}
	if err != nil {
		log.Fatal(err)
	}

	// Repositories
	userRepo := postgresrepo.NewUserRepo(pool)
	convRepo := postgresrepo.NewConversationRepo(pool)
	msgRepo := postgresrepo.NewMessageRepo(pool)
	photoRepo := postgresrepo.NewPhotoRepo(pool)

	// Services
	authService := service.NewAuthService(userRepo, cfg.JWTSecret)
	userService := service.NewUserService(userRepo)
	convService := service.NewConversationService(convRepo, userRepo)
	photoService := service.NewPhotoService(photoRepo, blobs, cfg.PhotoURLPrefix)
	msgService := service.NewMessageService(msgRepo, convRepo, photoService)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	convHandler := handlers.NewConversationHandler(convService)
	msgHandler := handlers.NewMessageHandler(msgService, convService)

	// Auth middleware
	auth := middleware.Auth(cfg.JWTSecret)

	// Routes
	mux := http.NewServeMux()

	// Public
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "ok"}`))
	})
	mux.HandleFunc("POST /api/v1/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/v1/auth/login", authHandler.Login)

	// Protected - User directory
	mux.Handle("GET /api/v1/users", auth(http.HandlerFunc(userHandler.List)))
	mux.Handle("GET /api/v1/users/{id}", auth(http.HandlerFunc(userHandler.Get)))

	// Protected - Conversations
	mux.Handle("GET /api/v1/conversations", auth(http.HandlerFunc(convHandler.List)))
	mux.Handle("POST /api/v1/conversations", auth(http.HandlerFunc(convHandler.GetOrCreate)))
	mux.Handle("GET /api/v1/conversations/{id}", auth(http.HandlerFunc(convHandler.Get)))

	// Protected - Messages & gallery
	mux.Handle("GET /api/v1/conversations/{id}/messages", auth(http.HandlerFunc(msgHandler.List)))
	mux.Handle("POST /api/v1/conversations/{id}/messages", auth(http.HandlerFunc(msgHandler.Send)))
	mux.Handle("GET /api/v1/conversations/{id}/gallery", auth(http.HandlerFunc(msgHandler.Gallery)))

	// Uploaded photos are served straight off the disk root; with the s3
	// backend the stored URLs point at the bucket instead.
	if cfg.PhotoStorage != "s3" {
		mux.Handle("GET /uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.PhotoDir))))
	}

	// Start server with CORS
	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Printf("Starting server on %s", addr)
	log.Fatal(http.ListenAndServe(addr, middleware.CORS(mux)))
}
