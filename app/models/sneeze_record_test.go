package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSneezeRecordValidate(t *testing.T) {
	record := SneezeRecord{UserID: 1, Day: "2024-12-15", Count: 5}
	assert.NoError(t, record.Validate())

	record = SneezeRecord{UserID: 1, Day: "2024-12-15", Count: 0}
	assert.NoError(t, record.Validate())
}

func TestSneezeRecordValidateNegativeCount(t *testing.T) {
	record := SneezeRecord{UserID: 1, Day: "2024-12-15", Count: -1}
	assert.Error(t, record.Validate())
}

func TestSneezeRecordValidateDayShape(t *testing.T) {
	for _, day := range []string{"", "15.12.2024", "2024-12", "2024-13-01"} {
		record := SneezeRecord{UserID: 1, Day: day, Count: 1}
		assert.Error(t, record.Validate(), "day %q should be rejected", day)
	}
}

func TestSneezeRecordDayTime(t *testing.T) {
	record := SneezeRecord{UserID: 1, Day: "2024-12-15", Count: 1}

	got, err := record.DayTime()
	require.NoError(t, err)
	assert.Equal(t, 2024, got.Year())
	assert.Equal(t, "December", got.Month().String())
	assert.Equal(t, 15, got.Day())
}
