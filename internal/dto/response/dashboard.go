package response

import "github.com/shopspring/decimal"

type DashboardStatsResponse struct {
	TotalHalls        int64           `json:"total_halls"`
	ActiveHalls       int64           `json:"active_halls"`
	TotalBookings     int64           `json:"total_bookings"`
	PendingBookings   int64           `json:"pending_bookings"`
	ApprovedBookings  int64           `json:"approved_bookings"`
	RejectedBookings  int64           `json:"rejected_bookings"`
	CancelledBookings int64           `json:"cancelled_bookings"`
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
	RecentBookings    int64           `json:"recent_bookings"`
}
