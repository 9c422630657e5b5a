// Package stats computes the derived dashboard figures from already-fetched
// collections. Everything here is pure and recomputed wholesale on every
// refresh; nothing is persisted between runs.
package stats

import (
	"sort"
	"time"

	"trips/entity"
)

// TrendMonths is the fixed trailing window of the booking trend, current
// month included.
const TrendMonths = 6

const monthKeyFormat = "2006-01"

func countsRevenue(bookings []entity.Booking, priceByPackage map[string]float64) (pending int, revenue float64) {
	for _, booking := range bookings {
		switch booking.Status {
		case entity.BookingStatusPending:
			pending++
		case entity.BookingStatusConfirmed, entity.BookingStatusCompleted, entity.BookingStatusPaid:
			revenue += priceByPackage[booking.PackageID]
		}
	}

	return pending, revenue
}

func packagePrices(packages []entity.TravelPackage) map[string]float64 {
	prices := make(map[string]float64, len(packages))
	for _, pkg := range packages {
		prices[pkg.ID] = pkg.AdultPrice
	}

	return prices
}

// Overview aggregates the admin dashboard figures.
func Overview(users []entity.User, packages []entity.TravelPackage, bookings []entity.Booking, now time.Time) entity.AdminStats {
	pending, revenue := countsRevenue(bookings, packagePrices(packages))

	return entity.AdminStats{
		TotalUsers:      len(users),
		TotalPackages:   len(packages),
		TotalBookings:   len(bookings),
		PendingBookings: pending,
		Revenue:         revenue,
		TopDestinations: TopDestinations(packages, bookings, 5),
		MonthlyTrend:    MonthlyTrend(bookings, now),
	}
}

// AgentOverview aggregates the agent dashboard figures over the agent's own
// packages. Bookings for other agents' packages are ignored.
func AgentOverview(agentID string, packages []entity.TravelPackage, bookings []entity.Booking, now time.Time) entity.AgentStats {
	var owned []entity.TravelPackage
	var active int
	for _, pkg := range packages {
		if pkg.AgentID != agentID {
			continue
		}
		owned = append(owned, pkg)
		if pkg.Active {
			active++
		}
	}

	ownedIDs := make(map[string]struct{}, len(owned))
	for _, pkg := range owned {
		ownedIDs[pkg.ID] = struct{}{}
	}

	var ownBookings []entity.Booking
	for _, booking := range bookings {
		if _, ok := ownedIDs[booking.PackageID]; ok {
			ownBookings = append(ownBookings, booking)
		}
	}

	pending, revenue := countsRevenue(ownBookings, packagePrices(owned))

	return entity.AgentStats{
		TotalPackages:   len(owned),
		ActivePackages:  active,
		TotalBookings:   len(ownBookings),
		PendingBookings: pending,
		Revenue:         revenue,
		TopDestinations: TopDestinations(owned, ownBookings, 5),
		MonthlyTrend:    MonthlyTrend(ownBookings, now),
	}
}

// TopDestinations ranks destinations by booking count, descending. Counts
// accumulate in booking iteration order and ties keep that first-encountered
// order, so the ranking is stable across refreshes of the same data.
func TopDestinations(packages []entity.TravelPackage, bookings []entity.Booking, n int) []entity.DestinationCount {
	destinationByPackage := make(map[string]string, len(packages))
	for _, pkg := range packages {
		destinationByPackage[pkg.ID] = pkg.Destination
	}

	index := make(map[string]int)
	var counts []entity.DestinationCount
	for _, booking := range bookings {
		destination, ok := destinationByPackage[booking.PackageID]
		if !ok {
			continue
		}

		i, seen := index[destination]
		if !seen {
			index[destination] = len(counts)
			counts = append(counts, entity.DestinationCount{Destination: destination})
			i = len(counts) - 1
		}
		counts[i].Bookings++
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Bookings > counts[j].Bookings
	})

	if len(counts) > n {
		counts = counts[:n]
	}

	return counts
}

// MonthlyTrend buckets bookings by creation month over the trailing
// TrendMonths window ending at now. Empty months are present with zero.
func MonthlyTrend(bookings []entity.Booking, now time.Time) []entity.MonthCount {
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	index := make(map[string]int, TrendMonths)
	trend := make([]entity.MonthCount, 0, TrendMonths)
	for i := TrendMonths - 1; i >= 0; i-- {
		key := firstOfMonth.AddDate(0, -i, 0).Format(monthKeyFormat)
		index[key] = len(trend)
		trend = append(trend, entity.MonthCount{Month: key})
	}

	for _, booking := range bookings {
		if i, ok := index[booking.CreatedAt.Format(monthKeyFormat)]; ok {
			trend[i].Bookings++
		}
	}

	return trend
}
