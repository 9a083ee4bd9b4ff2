package view

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/example/shafran-admin/internal/models"
)

// Detail is one labelled figure under a dashboard card.
type Detail struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Tone  Tone   `json:"tone"`
}

// Card is a headline figure with its trend and six-month chart.
type Card struct {
	Title   string   `json:"title"`
	Value   string   `json:"value"`
	Change  string   `json:"change"`
	Trend   string   `json:"trend"`
	Chart   Chart    `json:"chart"`
	Details []Detail `json:"details"`
}

// Dashboard is the presentation form of the aggregate snapshot.
type Dashboard struct {
	Revenue      Card       `json:"revenue"`
	Orders       Card       `json:"orders"`
	Products     Card       `json:"products"`
	Users        Card       `json:"users"`
	DailyOrders  Chart      `json:"dailyOrders"`
	DailyRevenue Chart      `json:"dailyRevenue"`
	AllTime      []Detail   `json:"allTime"`
	Stock        []Detail   `json:"stock"`
	LastOrders   []OrderRow `json:"lastOrders"`
	LastUsers    []UserRow  `json:"lastUsers"`
}

func count(n int64) string {
	return strconv.FormatInt(n, 10)
}

func newCard(title, value string, change decimal.Decimal, chart Chart, details ...Detail) Card {
	return Card{
		Title:   title,
		Value:   value,
		Change:  FormatPercent(change),
		Trend:   Trend(change),
		Chart:   chart,
		Details: details,
	}
}

// BuildDashboard derives the dashboard view from a snapshot as of now.
func BuildDashboard(s models.DashboardStats, now time.Time, assets Assets) Dashboard {
	return Dashboard{
		Revenue: newCard("Daromad", FormatPrice(s.OrdersDetails.Sold), s.OrdersTotalPercentageChange,
			MonthlyChart(s.OrdersTotalInSixMonth, now),
			Detail{Label: "Sotildi", Value: FormatPrice(s.OrdersDetails.Sold), Tone: ToneSuccess},
			Detail{Label: "Kutilmoqda", Value: FormatPrice(s.OrdersDetails.Pending), Tone: ToneWarning},
			Detail{Label: "Bekor qilindi", Value: FormatPrice(s.OrdersDetails.Cancelled), Tone: ToneError},
		),
		Orders: newCard("Buyurtmalar", count(s.OrdersDetailsLength.Sold), s.OrdersLengthPercentageChange,
			MonthlyChart(s.OrdersLengthInSixMonth, now),
			Detail{Label: "Sotildi", Value: count(s.OrdersDetailsLength.Sold), Tone: ToneSuccess},
			Detail{Label: "Kutilmoqda", Value: count(s.OrdersDetailsLength.Pending), Tone: ToneWarning},
			Detail{Label: "Bekor qilindi", Value: count(s.OrdersDetailsLength.Cancelled), Tone: ToneError},
		),
		Products: newCard("Mahsulotlar", count(s.ProductsDetails.Active), s.ProductsLengthPercentageChange,
			MonthlyChart(s.ProductsLengthInSixMonth, now),
			Detail{Label: "Faol", Value: count(s.ProductsDetails.Active), Tone: ToneSuccess},
			Detail{Label: "O'chirilgan", Value: count(s.ProductsDetails.Deleted), Tone: ToneError},
		),
		Users: newCard("Foydalanuvchilar", count(s.UsersDetails.Active+s.UsersDetails.Inactive), s.UsersLengthPercentageChange,
			MonthlyChart(s.UsersLengthInSixMonth, now),
			Detail{Label: "Tasdiqlangan", Value: count(s.UsersDetailsLength.Active), Tone: ToneSuccess},
			Detail{Label: "Tasdiqlanmagan", Value: count(s.UsersDetailsLength.Inactive), Tone: ToneError},
		),
		DailyOrders:  DailyChart(s.LastSoldOrdersInTenDays, now),
		DailyRevenue: DailyChart(s.LastSoldOrdersTotalInTenDays, now),
		AllTime: []Detail{
			{Label: "Sotildi", Value: count(s.OrdersAllTimeDetailsLength.Sold), Tone: ToneSuccess},
			{Label: "Kutilmoqda", Value: count(s.OrdersAllTimeDetailsLength.Pending), Tone: ToneWarning},
			{Label: "Bekor qilindi", Value: count(s.OrdersAllTimeDetailsLength.Cancelled), Tone: ToneError},
		},
		Stock: []Detail{
			{Label: stockBadges[InStock].Label, Value: count(s.ProductsStockDetails.InStock), Tone: ToneSuccess},
			{Label: stockBadges[LowStock].Label, Value: count(s.ProductsStockDetails.LowStock), Tone: ToneWarning},
			{Label: stockBadges[OutOfStock].Label, Value: count(s.ProductsStockDetails.OutOfStock), Tone: ToneError},
		},
		LastOrders: OrderRows(s.TenLastOrders, assets),
		LastUsers:  UserRows(s.TenLastUsers),
	}
}
