package config

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"newsroom/models"
)

// InitDB opens the postgres connection and migrates the schema.
func InitDB() *gorm.DB {
	db, err := gorm.Open(postgres.Open(DatabaseDSN()), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatal("Failed to migrate database: ", err)
	}

	return db
}

// Migrate creates the schema. Shared with the test suite, which runs it
// against sqlite instead.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Publisher{},
		&models.Article{},
		&models.Newsletter{},
	)
}
