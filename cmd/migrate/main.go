package main

import (
	"log"
	"log/slog"

	"voting-service/configs"
	"voting-service/configs/database"
)

func main() {
	config := configs.Load()

	slog.Info("Starting database migration...")

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

	slog.Info("Database connection established")

	if err := database.MigrateMySQL(db); err != nil {
		log.Fatal("Migration failed:", err)
	}

	slog.Info("Database migration completed successfully!")
}
