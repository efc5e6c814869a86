// Package stats aggregates range-scan rows and renders the reply texts.
package stats

import (
	"fmt"
	"strings"
	"time"

	"github.com/sneezelab/SneezeBot/app/models"
)

// Summary aggregates one user's rows for a period. Days counts days with a
// record, not calendar days in the range; Average divides by Days and is 0
// when there are no records.
type Summary struct {
	Total   int
	Days    int
	Average float64
}

// Summarize computes the summary for a range scan result.
func Summarize(rows []models.DailyCount) Summary {
	s := Summary{Days: len(rows)}
	for _, row := range rows {
		s.Total += row.Count
	}
	if s.Days > 0 {
		s.Average = float64(s.Total) / float64(s.Days)
	}
	return s
}

// FormatUser renders the single-user stats reply. An empty scan produces the
// "no records" message; no numeric average appears in that case.
func FormatUser(rows []models.DailyCount, periodLabel string) string {
	if len(rows) == 0 {
		return fmt.Sprintf("За период %s записей нет.", periodLabel)
	}

	s := Summarize(rows)

	var b strings.Builder
	fmt.Fprintf(&b, "📊 Статистика за %s:\n\n", periodLabel)
	fmt.Fprintf(&b, "Всего дней с записями: %d\n", s.Days)
	fmt.Fprintf(&b, "Общее количество чиханий: %d\n", s.Total)
	fmt.Fprintf(&b, "Среднее за день: %.1f\n\n", s.Average)
	b.WriteString("Детализация по дням:\n")

	for _, row := range rows {
		fmt.Fprintf(&b, "  %s: %d раз\n", shortDay(row.Day), row.Count)
	}
	return b.String()
}

// FormatAdmin renders the all-users stats reply: per-user totals (already
// ordered descending by the store), a grand total and the user count.
func FormatAdmin(totals []models.UserTotal, periodLabel string) string {
	if len(totals) == 0 {
		return fmt.Sprintf("За период %s записей нет.", periodLabel)
	}

	grand := 0
	for _, t := range totals {
		grand += t.Total
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📊 Статистика по всем пользователям за %s:\n\n", periodLabel)
	for _, t := range totals {
		fmt.Fprintf(&b, "  %d: %d чиханий\n", t.UserID, t.Total)
	}
	fmt.Fprintf(&b, "\nПользователей: %d\n", len(totals))
	fmt.Fprintf(&b, "Всего чиханий: %d\n", grand)
	return b.String()
}

// shortDay converts an ISO YYYY-MM-DD day into the DD.MM shape used in the
// per-day breakdown.
func shortDay(day string) string {
	t, err := time.Parse(models.DayFormat, day)
	if err != nil {
		return day
	}
	return t.Format("02.01")
}
