// Package metrics normalizes the heterogeneous numbers coming back from the
// analytics endpoint and derives the dashboard's comparison figures.
package metrics

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/nexodus-tech/vendor-console/internal/models"
)

var nonNumeric = regexp.MustCompile(`[^0-9.-]+`)

// ParseCurrency extracts a numeric amount from a raw currency string such as
// "$1,234.56". Empty or unparseable input yields 0.
func ParseCurrency(raw string) float64 {
	cleaned := nonNumeric.ReplaceAllString(raw, "")
	if cleaned == "" {
		return 0
	}
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return f
}

// PercentChange returns the percentage change from previous to current.
// A zero previous value yields 0 rather than a division error.
func PercentChange(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return (current - previous) / previous * 100
}

// Trend is a resolved metric comparison for a dashboard badge.
type Trend struct {
	Change float64 `json:"change"` // absolute percentage
	Up     bool    `json:"up"`
}

// WeeklyTrend compares a last-7-days figure against one quarter of the
// all-time total. This baseline is a deliberate approximation carried over
// from the product requirements, not a true week-over-week comparison.
func WeeklyTrend(last7, allTime float64) Trend {
	change := PercentChange(last7, allTime/4)
	return Trend{Change: math.Abs(change), Up: change >= 0}
}

// MonthlySeries builds a 12-slot revenue vector for the given year from the
// analytics monthly trends. Entries for other years or with malformed month
// keys are skipped.
func MonthlySeries(trends []models.MonthlyTrend, year int) [12]float64 {
	var series [12]float64
	for _, t := range trends {
		parts := strings.SplitN(t.Month, "-", 2)
		if len(parts) != 2 {
			continue
		}
		y, err := strconv.Atoi(parts[0])
		if err != nil || y != year {
			continue
		}
		m, err := strconv.Atoi(parts[1])
		if err != nil || m < 1 || m > 12 {
			continue
		}
		series[m-1] = t.Revenue
	}
	return series
}
