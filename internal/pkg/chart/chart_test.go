package chart

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sneezelab/SneezeBot/app/models"
)

var pngMagic = []byte{0x89, 0x50, 0x4e, 0x47}

func makeDays(t *testing.T, n int) []time.Time {
	t.Helper()

	days := make([]time.Time, n)
	for i := range days {
		days[i] = time.Date(2024, time.December, 1+i, 0, 0, 0, 0, time.UTC)
	}
	return days
}

func TestRenderEmptyInput(t *testing.T) {
	img, err := Render(nil, "неделю")
	require.NoError(t, err)
	// Empty input yields no image; the caller sends a text fallback.
	assert.Nil(t, img)
}

func TestRenderWeek(t *testing.T) {
	rows := []models.DailyCount{
		{Day: "2024-12-13", Count: 2},
		{Day: "2024-12-14", Count: 5},
		{Day: "2024-12-15", Count: 3},
	}

	img, err := Render(rows, "неделю (09.12 - 15.12.2024)")
	require.NoError(t, err)
	require.NotEmpty(t, img)
	assert.Equal(t, pngMagic, img[:4])
}

func TestRenderRejectsMalformedDay(t *testing.T) {
	rows := []models.DailyCount{{Day: "13.12.2024", Count: 2}}

	_, err := Render(rows, "неделю")
	assert.Error(t, err)
}

func TestDayTicksDensity(t *testing.T) {
	week := makeDays(t, 7)
	ticks := dayTicks(week)
	// One tick per day for week-sized ranges.
	assert.Len(t, ticks, 7)

	month := makeDays(t, 30)
	ticks = dayTicks(month)
	assert.GreaterOrEqual(t, len(ticks), 10)
	assert.LessOrEqual(t, len(ticks), 12)

	// The last day always carries a tick.
	assert.Equal(t, "30.12", ticks[len(ticks)-1].Label)
}
