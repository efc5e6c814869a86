package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// DayFormat is the canonical on-disk day layout (ISO 8601, date only).
const DayFormat = "2006-01-02"

// SneezeRecord stores one user's sneeze count for one calendar day.
// At most one row exists per (UserID, Day); writes go through upsert.
type SneezeRecord struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    int64     `gorm:"uniqueIndex:idx_user_day;not null" json:"user_id"`
	Day       string    `gorm:"type:varchar(10);uniqueIndex:idx_user_day;not null" json:"day" validate:"required,datetime=2006-01-02"`
	Count     int       `gorm:"not null;default:0" json:"count" validate:"gte=0"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (r *SneezeRecord) Validate() error {
	v := validator.New()

	return v.Struct(r)
}

// DayTime parses the stored day back into a time.Time.
func (r *SneezeRecord) DayTime() (time.Time, error) {
	return time.Parse(DayFormat, r.Day)
}
