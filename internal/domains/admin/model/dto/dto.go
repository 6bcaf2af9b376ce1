package dto

// DashboardStats is the aggregate snapshot behind the back-office dashboard
// cards. Revenue counts confirmed bookings only.
type DashboardStats struct {
	TotalContacts     int     `json:"totalContacts"`
	NewContacts       int     `json:"newContacts"`
	TotalBookings     int     `json:"totalBookings"`
	PendingBookings   int     `json:"pendingBookings"`
	ConfirmedBookings int     `json:"confirmedBookings"`
	TotalRevenue      float64 `json:"totalRevenue"`
}
