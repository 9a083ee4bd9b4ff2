package view

import "github.com/example/shafran-admin/internal/models"

// Tone is the color family a status is rendered with.
type Tone string

const (
	ToneSuccess Tone = "success"
	ToneWarning Tone = "warning"
	ToneError   Tone = "error"
	ToneInfo    Tone = "info"
	TonePrimary Tone = "primary"
	ToneNeutral Tone = "neutral"
)

// Badge is a derived {label, tone} pair for a status cell.
type Badge struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Tone  Tone   `json:"tone"`
}

// StockStatus buckets a product's stock count.
type StockStatus string

const (
	InStock    StockStatus = "in_stock"
	LowStock   StockStatus = "low_stock"
	OutOfStock StockStatus = "out_of_stock"
)

// LowStockThreshold is the largest stock count still considered low.
const LowStockThreshold = 10

// StockStatusOf classifies a stock count. Negative counts are out of stock.
func StockStatusOf(stock int64) StockStatus {
	switch {
	case stock <= 0:
		return OutOfStock
	case stock <= LowStockThreshold:
		return LowStock
	default:
		return InStock
	}
}

var stockRank = map[StockStatus]int{
	InStock:    1,
	LowStock:   2,
	OutOfStock: 3,
}

var stockBadges = map[StockStatus]Badge{
	InStock:    {Value: string(InStock), Label: "Mavjud", Tone: ToneSuccess},
	LowStock:   {Value: string(LowStock), Label: "Kam Qoldi", Tone: ToneWarning},
	OutOfStock: {Value: string(OutOfStock), Label: "Tugagan", Tone: ToneError},
}

// StockBadge returns the badge for a stock count.
func StockBadge(stock int64) Badge {
	return stockBadges[StockStatusOf(stock)]
}

var orderBadges = map[string]Badge{
	models.OrderStatusNew:              {Label: "Yangi", Tone: ToneInfo},
	models.OrderStatusConfirmed:        {Label: "Tasdiqlangan", Tone: ToneWarning},
	models.OrderStatusDelivering:       {Label: "Yetkazilmoqda", Tone: TonePrimary},
	models.OrderStatusDelivered:        {Label: "Yetkazildi", Tone: ToneSuccess},
	models.OrderStatusPending:          {Label: "Kutilmoqda", Tone: ToneWarning},
	models.OrderStatusSold:             {Label: "Sotildi", Tone: ToneSuccess},
	models.OrderStatusCancelledByAdmin: {Label: "Admin tomonidan bekor qilindi", Tone: ToneError},
	models.OrderStatusCancelledByUser:  {Label: "Mijoz tomonidan bekor qilindi", Tone: ToneError},
}

// OrderStatusBadge maps a server status onto its label and tone. Unknown
// statuses are shown verbatim.
func OrderStatusBadge(status string) Badge {
	if status == "" {
		return Badge{Label: "N/A", Tone: ToneNeutral}
	}
	b, ok := orderBadges[status]
	if !ok {
		return Badge{Value: status, Label: status, Tone: ToneNeutral}
	}
	b.Value = status
	return b
}

// orderStatusRank follows an order's lifecycle; cancellations sort last.
var orderStatusRank = map[string]int{
	models.OrderStatusNew:              1,
	models.OrderStatusPending:          2,
	models.OrderStatusConfirmed:        3,
	models.OrderStatusDelivering:       4,
	models.OrderStatusDelivered:        5,
	models.OrderStatusSold:             6,
	models.OrderStatusCancelledByAdmin: 7,
	models.OrderStatusCancelledByUser:  8,
}

// OrderStatuses lists the statuses an admin may assign, in lifecycle order.
func OrderStatuses() []Badge {
	statuses := []string{
		models.OrderStatusNew,
		models.OrderStatusPending,
		models.OrderStatusConfirmed,
		models.OrderStatusDelivering,
		models.OrderStatusDelivered,
		models.OrderStatusSold,
		models.OrderStatusCancelledByAdmin,
		models.OrderStatusCancelledByUser,
	}
	out := make([]Badge, len(statuses))
	for i, s := range statuses {
		out[i] = OrderStatusBadge(s)
	}
	return out
}

// KnownOrderStatus reports whether status is one the server accepts.
func KnownOrderStatus(status string) bool {
	_, ok := orderBadges[status]
	return ok
}

// User verification filter values.
const (
	UserVerified   = "verified"
	UserUnverified = "unverified"
)

// UnknownUserLabel replaces the name of a user whose identity is not collected.
const UnknownUserLabel = "Noma'lum"

// VerificationBadge returns the verified/unverified badge.
func VerificationBadge(verified bool) Badge {
	if verified {
		return Badge{Value: UserVerified, Label: "Tasdiqlangan", Tone: ToneSuccess}
	}
	return Badge{Value: UserUnverified, Label: "Tasdiqlanmagan", Tone: ToneError}
}
