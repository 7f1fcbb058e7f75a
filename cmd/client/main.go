package main

import (
	"log"

	"github.com/joho/godotenv"

	"socialcli/internal/client"
	"socialcli/internal/client/config"
)

func main() {
	// A missing .env file is fine; config falls back to defaults.
	_ = godotenv.Load()

	cfg := config.LoadConfig()

	app, err := client.NewApp(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(); err != nil {
		log.Fatalf("%v", err)
	}
}
