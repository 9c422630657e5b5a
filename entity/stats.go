package entity

type DestinationCount struct {
	Destination string `json:"destination"`
	Bookings    int    `json:"bookings"`
}

type MonthCount struct {
	Month    string `json:"month"` // YYYY-MM
	Bookings int    `json:"bookings"`
}

type AdminStats struct {
	TotalUsers      int                `json:"total_users"`
	TotalPackages   int                `json:"total_packages"`
	TotalBookings   int                `json:"total_bookings"`
	PendingBookings int                `json:"pending_bookings"`
	Revenue         float64            `json:"revenue"`
	TopDestinations []DestinationCount `json:"top_destinations"`
	MonthlyTrend    []MonthCount       `json:"monthly_trend"`
}

type AgentStats struct {
	TotalPackages   int                `json:"total_packages"`
	ActivePackages  int                `json:"active_packages"`
	TotalBookings   int                `json:"total_bookings"`
	PendingBookings int                `json:"pending_bookings"`
	Revenue         float64            `json:"revenue"`
	TopDestinations []DestinationCount `json:"top_destinations"`
	MonthlyTrend    []MonthCount       `json:"monthly_trend"`
}
