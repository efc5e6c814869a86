package models

// DailyCount is one day of a single user's range scan.
type DailyCount struct {
	Day   string `json:"day"`
	Count int    `json:"count"`
}

// UserTotal is one user's aggregate over a range, used by the admin views.
type UserTotal struct {
	UserID int64 `json:"user_id"`
	Total  int   `json:"total"`
}
