package view

import (
	"strings"

	"github.com/example/shafran-admin/internal/models"
)

// Order sort keys.
const (
	OrderSortNumber    = "orderNumber"
	OrderSortCustomer  = "customer"
	OrderSortTotal     = "total"
	OrderSortStatus    = "status"
	OrderSortCreatedAt = "createdAt"
)

// DefaultOrderQuery lists the newest orders first.
func DefaultOrderQuery() Query {
	return Query{Filter: FilterAll, Sort: Sort{Key: OrderSortCreatedAt, Direction: Desc}}
}

// OrderSpec searches order numbers and customer names and filters by status.
func OrderSpec(coll *Collator) Spec[models.Order] {
	if coll == nil {
		coll = DefaultCollator()
	}
	return Spec[models.Order]{
		Fields: func(o models.Order) []string {
			return []string{o.OrderNumber.String(), o.UserName + " " + o.UserSurname}
		},
		Filter: func(o models.Order, value string) bool { return o.Status == value },
		Comparators: map[string]Comparator[models.Order]{
			OrderSortNumber: compareOrderNumbers(coll),
			OrderSortCustomer: func(a, b models.Order) int {
				return coll.Compare(a.CustomerName(), b.CustomerName())
			},
			OrderSortTotal:  Numeric(func(o models.Order) int64 { return o.Total }),
			OrderSortStatus: Ranked(orderStatusRank, func(o models.Order) string { return o.Status }),
			OrderSortCreatedAt: func(a, b models.Order) int {
				return a.CreatedAt.Compare(b.CreatedAt)
			},
		},
		Field:    orderField,
		Collator: coll,
	}
}

// compareOrderNumbers orders numeric order numbers by value and falls back to
// collation when either side is not a number.
func compareOrderNumbers(coll *Collator) Comparator[models.Order] {
	byValue := Numeric(func(o models.Order) int64 { return o.OrderNumber.Int() })
	return func(a, b models.Order) int {
		if isInteger(a.OrderNumber) && isInteger(b.OrderNumber) {
			return byValue(a, b)
		}
		return coll.Compare(a.OrderNumber.String(), b.OrderNumber.String())
	}
}

func isInteger(f models.FlexString) bool {
	s := f.String()
	if s == "" {
		return false
	}
	return f.Int() != 0 || s == "0"
}

func orderField(o models.Order, key string) string {
	switch key {
	case "address":
		return o.Address
	case "userPhone":
		return o.UserPhone
	default:
		return ""
	}
}

// ValidOrderFilter reports whether value is an order filter. Any status the
// server sends can be filtered to, known or not.
func ValidOrderFilter(value string) bool {
	return value == "" || strings.TrimSpace(value) != ""
}

// OrderLineRow is one line of an order detail.
type OrderLineRow struct {
	ProductID  string `json:"productId,omitempty"`
	Name       string `json:"name"`
	Image      string `json:"image,omitempty"`
	Quantity   int64  `json:"quantity"`
	Price      int64  `json:"price"`
	PriceLabel string `json:"priceLabel"`
	Subtotal   string `json:"subtotal"`
}

// OrderRow is the presentation form of an order.
type OrderRow struct {
	ID          string         `json:"id"`
	OrderNumber string         `json:"orderNumber"`
	Customer    string         `json:"customer"`
	Phone       string         `json:"phone"`
	Address     string         `json:"address"`
	Comment     string         `json:"comment,omitempty"`
	Total       int64          `json:"total"`
	TotalLabel  string         `json:"totalLabel"`
	Status      Badge          `json:"status"`
	CreatedAt   string         `json:"createdAt"`
	Lines       []OrderLineRow `json:"lines,omitempty"`
}

// DeletedProductName stands in for a line whose product no longer exists.
const DeletedProductName = "O'chirilgan mahsulot"

// NewOrderRow derives the row of o. Lines are included only when withLines is set.
func NewOrderRow(o models.Order, assets Assets, withLines bool) OrderRow {
	row := OrderRow{
		ID:          o.ID,
		OrderNumber: o.OrderNumber.String(),
		Customer:    o.CustomerName(),
		Phone:       FormatPhone(o.UserPhone),
		Address:     o.Address,
		Comment:     o.Comment,
		Total:       o.Total,
		TotalLabel:  FormatPrice(o.Total),
		Status:      OrderStatusBadge(o.Status),
		CreatedAt:   FormatDate(o.CreatedAt),
	}
	if !withLines {
		return row
	}

	row.Lines = make([]OrderLineRow, 0, len(o.Products))
	for _, line := range o.Products {
		lr := OrderLineRow{
			Name:       DeletedProductName,
			Quantity:   line.Quantity,
			Price:      line.PriceAtOrder,
			PriceLabel: FormatPrice(line.PriceAtOrder),
			Subtotal:   FormatPrice(line.PriceAtOrder * line.Quantity),
		}
		if line.Product != nil {
			lr.ProductID = line.Product.ID
			lr.Name = line.Product.Name
			if primary, ok := line.Product.PrimaryImage(); ok {
				lr.Image = assets.URL(primary)
			}
		}
		row.Lines = append(row.Lines, lr)
	}
	return row
}

// OrderRows maps orders to rows without lines.
func OrderRows(orders []models.Order, assets Assets) []OrderRow {
	rows := make([]OrderRow, len(orders))
	for i, o := range orders {
		rows[i] = NewOrderRow(o, assets, false)
	}
	return rows
}
