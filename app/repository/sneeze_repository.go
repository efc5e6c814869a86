package repository

import (
	"errors"
	"fmt"

	"github.com/sneezelab/SneezeBot/app/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// sneezeRepository implements the SneezeRepository interface
type sneezeRepository struct {
	db *gorm.DB
}

// NewSneezeRepository creates a new sneeze repository instance
func NewSneezeRepository(db *gorm.DB) SneezeRepository {
	return &sneezeRepository{db: db}
}

// Upsert inserts or overwrites the count for (userID, day). The count
// replaces the stored value, it is not added to it.
func (r *sneezeRepository) Upsert(userID int64, day string, count int) error {
	record := models.SneezeRecord{
		UserID: userID,
		Day:    day,
		Count:  count,
	}
	if err := record.Validate(); err != nil {
		return fmt.Errorf("invalid sneeze record: %w", err)
	}

	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "user_id"},
			{Name: "day"},
		},
		DoUpdates: clause.AssignmentColumns([]string{
			"count",
			"updated_at",
		}),
	}).Create(&record).Error
}

// Increment adds one to the count for (userID, day), creating the row with
// count = 1 when it does not exist, and returns the resulting count.
func (r *sneezeRepository) Increment(userID int64, day string) (int, error) {
	record := models.SneezeRecord{
		UserID: userID,
		Day:    day,
		Count:  1,
	}
	if err := record.Validate(); err != nil {
		return 0, fmt.Errorf("invalid sneeze record: %w", err)
	}

	if err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "user_id"},
			{Name: "day"},
		},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"count": gorm.Expr("count + 1"),
		}),
	}).Create(&record).Error; err != nil {
		return 0, err
	}

	// Re-read so the caller sees the stored value after the upsert.
	var stored models.SneezeRecord
	if err := r.db.Where("user_id = ? AND day = ?", userID, day).
		First(&stored).Error; err != nil {
		return 0, err
	}
	return stored.Count, nil
}

// GetDay returns the count for (userID, day); the bool is false when no row exists.
func (r *sneezeRepository) GetDay(userID int64, day string) (int, bool, error) {
	var record models.SneezeRecord
	err := r.db.Where("user_id = ? AND day = ?", userID, day).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return record.Count, true, nil
}

// RangeScan returns one user's (day, count) rows with startDay <= day < endDay,
// ascending by day.
func (r *sneezeRepository) RangeScan(userID int64, startDay, endDay string) ([]models.DailyCount, error) {
	var results []models.DailyCount
	err := r.db.Model(&models.SneezeRecord{}).
		Select("day, count").
		Where("user_id = ? AND day >= ? AND day < ?", userID, startDay, endDay).
		Order("day").
		Find(&results).Error
	if err != nil {
		return nil, fmt.Errorf("failed to scan range for user %d: %w", userID, err)
	}
	return results, nil
}

// GroupTotals returns every user's total over the range, descending by total.
func (r *sneezeRepository) GroupTotals(startDay, endDay string) ([]models.UserTotal, error) {
	query := r.db.Model(&models.SneezeRecord{}).
		Select("user_id, SUM(count) as total").
		Group("user_id").
		Order("total DESC")
	if startDay != "" && endDay != "" {
		query = query.Where("day >= ? AND day < ?", startDay, endDay)
	}

	var results []models.UserTotal
	if err := query.Find(&results).Error; err != nil {
		return nil, fmt.Errorf("failed to get group totals: %w", err)
	}
	return results, nil
}

// AllDetailed returns every record in the range, ordered by user then day.
func (r *sneezeRepository) AllDetailed(startDay, endDay string) ([]models.SneezeRecord, error) {
	query := r.db.Order("user_id, day")
	if startDay != "" && endDay != "" {
		query = query.Where("day >= ? AND day < ?", startDay, endDay)
	}

	var records []models.SneezeRecord
	if err := query.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to get detailed records: %w", err)
	}
	return records, nil
}
