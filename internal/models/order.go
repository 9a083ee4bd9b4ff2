package models

import (
	"strings"
	"time"
)

// Known order statuses. The server owns the set; unknown values are kept verbatim.
const (
	OrderStatusNew              = "new"
	OrderStatusConfirmed        = "confirmed"
	OrderStatusDelivering       = "delivering"
	OrderStatusDelivered        = "delivered"
	OrderStatusPending          = "pending"
	OrderStatusSold             = "sold"
	OrderStatusCancelledByAdmin = "cancelled by admin"
	OrderStatusCancelledByUser  = "cancelled by user"
)

// Order is a customer order.
type Order struct {
	ID          string      `json:"_id"`
	OrderNumber FlexString  `json:"orderNumber"`
	UserName    string      `json:"userName"`
	UserSurname string      `json:"userSurname"`
	UserPhone   string      `json:"userPhone"`
	Address     string      `json:"address"`
	Comment     string      `json:"comment,omitempty"`
	Total       int64       `json:"total"`
	Status      string      `json:"status"`
	CreatedAt   time.Time   `json:"createdAt"`
	Products    []OrderLine `json:"products"`
}

// OrderLine is one ordered product. Product is nil when it was deleted.
type OrderLine struct {
	Product      *Product `json:"product"`
	Quantity     int64    `json:"quantity"`
	PriceAtOrder int64    `json:"priceAtOrder"`
}

// CustomerName joins first and last name.
func (o Order) CustomerName() string {
	return strings.TrimSpace(o.UserName + " " + o.UserSurname)
}

// LinesTotal sums priceAtOrder*quantity over all lines.
func (o Order) LinesTotal() int64 {
	var total int64
	for _, line := range o.Products {
		total += line.PriceAtOrder * line.Quantity
	}
	return total
}
