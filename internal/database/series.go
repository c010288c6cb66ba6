// Labstock - Lab Inventory Usage Analysis Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labstock

package database

import (
	"time"

	"github.com/tomtom215/labstock/internal/models"
)

// dayLayout is the Go layout matching UsageDateFormat.
const dayLayout = "2006-01-02"

// LookbackStart returns the instant days calendar days before now, in UTC.
// AddDate keeps very large windows in range where a Duration would overflow.
func LookbackStart(now time.Time, days int) time.Time {
	return now.UTC().AddDate(0, 0, -days)
}

// UsageStart returns 00:00 UTC of the first day in a days-long window ending today.
func UsageStart(now time.Time, days int) time.Time {
	first := now.UTC().AddDate(0, 0, -(days - 1))
	return time.Date(first.Year(), first.Month(), first.Day(), 0, 0, 0, 0, time.UTC)
}

// FillDailySeries expands sparse per-day totals into exactly days ascending
// entries starting at start. Days absent from totals are zero.
func FillDailySeries(start time.Time, days int, totals map[string]int) []models.UsagePoint {
	if days <= 0 {
		return []models.UsagePoint{}
	}
	series := make([]models.UsagePoint, days)
	for i := range series {
		date := start.AddDate(0, 0, i).Format(dayLayout)
		series[i] = models.UsagePoint{Date: date, Total: totals[date]}
	}
	return series
}
