package database

import (
	"log"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/sneezelab/SneezeBot/app/models"
	"github.com/sneezelab/SneezeBot/internal/pkg/env"
	"gorm.io/gorm"
)

const maxRetries = 5
const retryDelay = 5 * time.Second

// SetupDatabase opens the sqlite database configured via DATABASE_PATH and
// migrates the schema. The returned handle is passed explicitly to the
// repositories; there is no package-level connection.
func SetupDatabase() (*gorm.DB, error) {
	path := env.GetEnv("DATABASE_PATH", "sneezes.db")

	var db *gorm.DB
	var err error
	for i := 0; i < maxRetries; i++ {
		db, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
		if err == nil {
			if err = db.AutoMigrate(&models.SneezeRecord{}); err != nil {
				return nil, err
			}
			return db, nil
		}

		log.Printf("Failed to open database (try %d/%d): %v", i+1, maxRetries, err)
		if i < maxRetries-1 {
			time.Sleep(retryDelay)
		}
	}

	return nil, err
}
