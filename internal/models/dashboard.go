package models

import "github.com/shopspring/decimal"

// DashboardStats is the aggregate snapshot shown on the dashboard.
type DashboardStats struct {
	OrdersLengthInSixMonth         Series          `json:"ordersLengthInSixMonth"`
	OrdersLengthPercentageChange   decimal.Decimal `json:"ordersLengthPercentageChange"`
	UsersLengthInSixMonth          Series          `json:"usersLengthInSixMonth"`
	UsersLengthPercentageChange    decimal.Decimal `json:"usersLengthPercentageChange"`
	OrdersTotalInSixMonth          Series          `json:"ordersTotalInSixMonth"`
	OrdersTotalPercentageChange    decimal.Decimal `json:"ordersTotalPercentageChange"`
	ProductsLengthInSixMonth       Series          `json:"productsLengthInSixMonth"`
	ProductsLengthPercentageChange decimal.Decimal `json:"productsLengthPercentageChange"`
	LastSoldOrdersInTenDays        Series          `json:"lastSoldOrdersInTenDays"`
	LastSoldOrdersTotalInTenDays   Series          `json:"lastSoldOrdersTotalInTenDays"`

	TenLastOrders []Order `json:"tenLastOrders"`
	TenLastUsers  []User  `json:"tenLastUsers"`

	OrdersDetails              MonthOrderBreakdown   `json:"ordersDetails"`
	OrdersDetailsLength        MonthOrderBreakdown   `json:"ordersDetailsLength"`
	OrdersAllTimeDetails       AllTimeOrderBreakdown `json:"ordersAllTimeDetails"`
	OrdersAllTimeDetailsLength AllTimeOrderBreakdown `json:"ordersAllTimeDetailsLength"`

	ProductsDetails      ProductBreakdown `json:"productsDetails"`
	ProductsStockDetails StockBreakdown   `json:"productsStockDetails"`
	UsersDetails         UserBreakdown    `json:"usersDetails"`
	UsersDetailsLength   UserBreakdown    `json:"usersDetailsLength"`
}

// MonthOrderBreakdown splits this month's orders by status.
type MonthOrderBreakdown struct {
	Sold      int64 `json:"thisMonthSold"`
	Pending   int64 `json:"thisMonthPending"`
	Cancelled int64 `json:"thisMonthCancelled"`
}

// AllTimeOrderBreakdown splits all orders by status.
type AllTimeOrderBreakdown struct {
	Sold      int64 `json:"allTimeSold"`
	Pending   int64 `json:"allTimePending"`
	Cancelled int64 `json:"allTimeCancelled"`
}

type ProductBreakdown struct {
	Active  int64 `json:"active"`
	Deleted int64 `json:"deleted"`
}

type StockBreakdown struct {
	InStock    int64 `json:"inStock"`
	LowStock   int64 `json:"lowStock"`
	OutOfStock int64 `json:"outOfStock"`
}

// UserBreakdown counts verified (active) and unverified (inactive) users.
type UserBreakdown struct {
	Active   int64 `json:"active"`
	Inactive int64 `json:"inactive"`
}
