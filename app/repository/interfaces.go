package repository

import (
	"github.com/sneezelab/SneezeBot/app/models"
	"gorm.io/gorm"
)

// SneezeRepository defines the database operations for sneeze records.
// Day arguments are ISO "YYYY-MM-DD" strings; range bounds are half-open
// [startDay, endDay). Empty bounds on the aggregate queries mean unbounded.
type SneezeRepository interface {
	Upsert(userID int64, day string, count int) error
	Increment(userID int64, day string) (int, error)
	GetDay(userID int64, day string) (int, bool, error)
	RangeScan(userID int64, startDay, endDay string) ([]models.DailyCount, error)
	GroupTotals(startDay, endDay string) ([]models.UserTotal, error)
	AllDetailed(startDay, endDay string) ([]models.SneezeRecord, error)
}

// Repositories struct holds all repository instances
type Repositories struct {
	Sneeze SneezeRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Sneeze: NewSneezeRepository(db),
	}
}
