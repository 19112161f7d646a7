package insights

import (
	"time"

	"github.com/thrashered1/SmartSaveAI/internal/models"
)

// DailyPoint is one day of the spending series.
type DailyPoint struct {
	Date          models.Date `json:"date"`
	Total         int64       `json:"total"`
	MovingAverage float64     `json:"moving_average"`
}

// movingWindow is the trailing window for the moving average.
const movingWindow = 7

// DailySeries buckets expenses into one point per calendar day from the
// earliest to the latest expense date, inclusive, with empty days at
// zero. The moving average at each point is the mean of the trailing
// seven-day window (shorter at the start of the range).
func DailySeries(expenses []models.Expense) []DailyPoint {
	if len(expenses) == 0 {
		return nil
	}

	minDate, maxDate := expenses[0].Date, expenses[0].Date
	for _, e := range expenses[1:] {
		if e.Date.Before(minDate) {
			minDate = e.Date
		}
		if e.Date.After(maxDate) {
			maxDate = e.Date
		}
	}

	totals := make(map[models.Date]int64)
	for _, e := range expenses {
		totals[e.Date] += e.Amount
	}

	n := maxDate.DaysSince(minDate) + 1
	series := make([]DailyPoint, 0, n)
	for d := minDate; !d.After(maxDate); d = d.AddDays(1) {
		series = append(series, DailyPoint{Date: d, Total: totals[d]})
	}

	for i := range series {
		start := i - movingWindow + 1
		if start < 0 {
			start = 0
		}
		var sum int64
		for _, p := range series[start : i+1] {
			sum += p.Total
		}
		series[i].MovingAverage = float64(sum) / float64(i+1-start)
	}
	return series
}

// WeekendStats contrasts weekend and weekday spending habits.
type WeekendStats struct {
	WeekendAverage  float64 `json:"weekend_average"`
	WeekdayAverage  float64 `json:"weekday_average"`
	DifferentialPct float64 `json:"differential_pct"`
}

// WeekendBreakdown averages weekend and weekday spend over days that saw
// any spending at all; zero-spend days do not dilute the averages. The
// differential is the weekend average relative to the weekday average,
// zero when there was no weekday spending.
func WeekendBreakdown(series []DailyPoint) WeekendStats {
	var weekendTotal, weekdayTotal int64
	var weekendDays, weekdayDays int

	for _, p := range series {
		if p.Total == 0 {
			continue
		}
		switch p.Date.Weekday() {
		case time.Saturday, time.Sunday:
			weekendTotal += p.Total
			weekendDays++
		default:
			weekdayTotal += p.Total
			weekdayDays++
		}
	}

	var stats WeekendStats
	if weekendDays > 0 {
		stats.WeekendAverage = float64(weekendTotal) / float64(weekendDays)
	}
	if weekdayDays > 0 {
		stats.WeekdayAverage = float64(weekdayTotal) / float64(weekdayDays)
		stats.DifferentialPct = (stats.WeekendAverage - stats.WeekdayAverage) / stats.WeekdayAverage * 100
	}
	return stats
}
