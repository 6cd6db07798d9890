package readmodel

// DashboardRM aggregates the admin dashboard counters in one round trip.
type DashboardRM struct {
	Users      UserStatsRM     `json:"users"`
	Tours      TourStatsRM     `json:"tours"`
	Categories CategoryStatsRM `json:"categories"`
	Bookings   BookingStatsRM  `json:"bookings"`
	Coupons    CouponStatsRM   `json:"coupons"`
}

type UserStatsRM struct {
	Total   int64 `json:"total"`
	Admins  int64 `json:"admins"`
	Active  int64 `json:"active"`
	Blocked int64 `json:"blocked"`
}

type TourStatsRM struct {
	Total      int64 `json:"total"`
	Popular    int64 `json:"popular"`
	Discounted int64 `json:"discounted"`
	Active     int64 `json:"active"`
}

type CategoryStatsRM struct {
	Total  int64 `json:"total"`
	Active int64 `json:"active"`
}

type BookingStatsRM struct {
	Total     int64 `json:"total"`
	Pending   int64 `json:"pending"`
	Confirmed int64 `json:"confirmed"`
	Cancelled int64 `json:"cancelled"`
	Completed int64 `json:"completed"`
}

type CouponStatsRM struct {
	Total     int64 `json:"total"`
	Active    int64 `json:"active"`
	Inactive  int64 `json:"inactive"`
	Personal  int64 `json:"personal"`
	TotalUses int64 `json:"total_uses"`
}
