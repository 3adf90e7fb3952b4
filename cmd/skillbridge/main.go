package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/skillbridge-dev/skillbridge/db"
	"github.com/skillbridge-dev/skillbridge/internal/auth"
	"github.com/skillbridge-dev/skillbridge/internal/config"
	"github.com/skillbridge-dev/skillbridge/internal/router"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	if err := auth.InitJWTSecret(cfg.JWTSecret); err != nil {
		log.Fatalf("Failed to initialize token signing: %v", err)
	}

	gdb, err := db.Connect(cfg.DatabaseURL)

	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.Migrate(gdb); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	r := router.New(gdb)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
