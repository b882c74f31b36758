package main

import (
	"log"
	"log/slog"
	"time"

	"voting-service/configs"
	"voting-service/configs/database"
	"voting-service/internal/ports/models"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	config := configs.Load()

	slog.Info("Starting database seeding...")

	db, err := database.NewMySQLConnection(
		config.MySQLUser,
		config.MySQLPassword,
		config.MySQLHost,
		config.MySQLPort,
		config.MySQLDB,
	)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := database.MigrateMySQL(db); err != nil {
		log.Fatal("Migration failed:", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("admin-password"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	admin := models.User{
		Username:  "admin",
		Email:     "admin@example.com",
		Password:  string(hashed),
		Role:      models.RoleAdmin,
		IsActive:  true,
		LastLogin: time.Now().UTC(),
	}
	if err := db.Where(models.User{Email: admin.Email}).FirstOrCreate(&admin).Error; err != nil {
		log.Fatal("Failed to seed admin user:", err)
	}

	event := models.Event{
		Name:        "Demo Event",
		Description: "Seeded voting round",
		VotingOpen:  true,
	}
	if err := db.Where(models.Event{Name: event.Name}).FirstOrCreate(&event).Error; err != nil {
		log.Fatal("Failed to seed event:", err)
	}

	candidates := []models.Candidate{
		{EventID: event.ID, Name: "Team Alpha"},
		{EventID: event.ID, Name: "Team Beta"},
		{EventID: event.ID, Name: "Team Gamma"},
	}
	for i := range candidates {
		if err := db.Where(models.Candidate{
			EventID: event.ID,
			Name:    candidates[i].Name,
		}).FirstOrCreate(&candidates[i]).Error; err != nil {
			log.Fatal("Failed to seed candidate:", err)
		}
	}

	slog.Info("Database seeding completed successfully!")
}
