package main

import (
	"healthtracker/internal/app/dsn"
	"healthtracker/internal/app/repository"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func main() {
	_ = godotenv.Load()

	repo, err := repository.New(dsn.Dialector())
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	defer repo.Close()

	// Migrate the schema
	if err := repo.AutoMigrate(); err != nil {
		log.Fatalf("cant migrate db: %v", err)
	}
	log.Info("schema migrated")
}
