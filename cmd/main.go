package main

import (
	"context"
	"os"
	"time"

	"github.com/promit1201/fitin-v3-20177/config"
	"github.com/promit1201/fitin-v3-20177/routes"
	"github.com/promit1201/fitin-v3-20177/services"
	"github.com/promit1201/fitin-v3-20177/utils"

	log "github.com/sirupsen/logrus"
)

func main() {
	config.InitDB()

	ctx := context.Background()

	store, err := utils.NewS3Store(ctx)
	if err != nil {
		log.Fatalf("S3 init failed: %v", err)
	}
	if err := utils.InitMailer(ctx); err != nil {
		log.Fatalf("mailer init failed: %v", err)
	}

	photoSvc := services.NewPhotoService(config.DB, store)
	go photoSvc.ReconcileLoop(ctx, 5*time.Minute)

	r := routes.SetupRouter(config.DB, photoSvc)

	addr := ":8080"
	if p := os.Getenv("PORT"); p != "" {
		addr = ":" + p
	}
	if err := r.Run(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
