package main

import (
	"context"

	"healthtracker/internal/app/api"
	"healthtracker/internal/app/config"

	log "github.com/sirupsen/logrus"
)

func main() {
	log.Println("Application start!")

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	app, err := api.New(context.Background(), cfg)
	if err != nil {
		log.Fatalf("init: %v", err)
	}
	defer app.Close()

	if err := app.Run(); err != nil {
		log.Errorf("server: %v", err)
	}
	log.Println("Application terminated!")
}
