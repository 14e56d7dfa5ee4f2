package config

import (
	"fmt"
	"os"

	"github.com/promit1201/fitin-v3-20177/models"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	if err := godotenv.Load(); err != nil {
		log.Warn("no .env file found, relying on environment")
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	DB = db

	if err := DB.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.NutritionLog{},
		&models.WorkoutLog{},
		&models.UserPlan{},
		&models.UserGoal{},
		&models.RestDay{},
		&models.ProgressPhoto{},
		&models.OrphanBlob{},
	); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
}
