// server/internal/database/seeder.go
package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"a2z-ipm-api-server/config"
	"a2z-ipm-api-server/internal/auth"
	"a2z-ipm-api-server/internal/models"
)

// SeedDefaultAdmin creates the bootstrap administrator account if no admin
// exists yet, so a fresh database is immediately usable.
func SeedDefaultAdmin(db *mongo.Database, cfg config.Config) error {
	log := config.GetLogger()
	userCollection := db.Collection(models.CollUsers)

	count, err := userCollection.CountDocuments(context.Background(), bson.M{"role": models.RoleAdmin})
	if err != nil {
		return err
	}
	if count > 0 {
		log.Info("admin account already exists, seeding skipped")
		return nil
	}

	log.Info("no admin account found, seeding default admin")
	hashedPassword, err := auth.HashPassword(cfg.Seed.AdminPassword)
	if err != nil {
		return err
	}

	now := models.NowMillis()
	admin := models.User{
		EmpID:     "ADM001",
		Name:      "Administrator",
		Username:  cfg.Seed.AdminUsername,
		Password:  hashedPassword,
		Role:      models.RoleAdmin,
		Projects:  []string{},
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := userCollection.InsertOne(context.Background(), admin); err != nil {
		return err
	}

	log.WithField("username", admin.Username).Info("default admin seeded")
	return nil
}
