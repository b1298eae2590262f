// server/cmd/api/main.go
package main

import (
	"time"

	"github.com/joho/godotenv"

	"a2z-ipm-api-server/config"
	"a2z-ipm-api-server/internal/api/routes"
	"a2z-ipm-api-server/internal/auth"
	"a2z-ipm-api-server/internal/database"
	"a2z-ipm-api-server/internal/s3"
	"a2z-ipm-api-server/internal/socket"
	"a2z-ipm-api-server/internal/store"
)

func main() {
	log := config.GetLogger()

	// .env is optional; a deployed server gets its environment from the host.
	godotenv.Load()

	cfg, err := config.LoadConfig("./config")
	if err != nil {
		log.Fatalf("Could not load config: %v", err)
	}

	db, err := database.Connect(cfg.Mongo)
	if err != nil {
		log.Fatalf("Could not connect to MongoDB: %v", err)
	}

	if err := database.SeedDefaultAdmin(db, cfg); err != nil {
		log.Fatalf("Could not seed default admin: %v", err)
	}

	expiry, err := time.ParseDuration(cfg.JWT.Expiration)
	if err != nil {
		expiry = 24 * time.Hour
	}
	authSvc := auth.NewService(cfg.JWT.Secret, expiry)

	s3Uploader, err := s3.NewUploader(cfg.S3)
	if err != nil {
		log.Fatalf("Could not create S3 uploader: %v", err)
	}

	wsHub := socket.NewHub()
	st := store.New(db, wsHub)

	router := routes.SetupRouter(cfg, st, authSvc, s3Uploader, wsHub)

	log.WithField("port", cfg.Server.Port).Info("starting API server")
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
