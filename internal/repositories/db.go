package repositories

import (
	"log"

	"github.com/murmurlabs/murmur/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func ConnectDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}
	// Run migrations
	if err := db.AutoMigrate(&models.User{}); err != nil {
		return nil, err
	}
	log.Println("Successfully connected to database")
	return db, nil
}
