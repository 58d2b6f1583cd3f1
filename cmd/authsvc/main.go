package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/thegridly/authsvc/internal/app"
	"github.com/thegridly/authsvc/internal/config"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, proceeding with system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := app.Run(cfg); err != nil {
		log.Fatalf("app: %v", err)
	}
}
