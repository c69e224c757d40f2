package main

import (
	"os"

	"github.com/joho/godotenv"

	"firmscrape/pkg/logger"
)

func main() {
	// .env is optional; deployed environments set variables directly.
	_ = godotenv.Load()
	logger.Init(logger.IsDev())

	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
