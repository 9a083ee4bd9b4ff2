package view

import (
	"strconv"

	"github.com/example/shafran-admin/internal/models"
)

// Product sort keys.
const (
	ProductSortName      = "name"
	ProductSortPrice     = "price"
	ProductSortStock     = "stock"
	ProductSortStatus    = "status"
	ProductSortCreatedAt = "createdAt"
)

// DefaultProductQuery lists products by name.
func DefaultProductQuery() Query {
	return Query{Filter: FilterAll, Sort: Sort{Key: ProductSortName, Direction: Asc}}
}

// ProductSpec searches by name and filters by stock bucket.
func ProductSpec(coll *Collator) Spec[models.Product] {
	return Spec[models.Product]{
		Fields: func(p models.Product) []string { return []string{p.Name} },
		Filter: func(p models.Product, value string) bool {
			return StockStatusOf(p.Stock) == StockStatus(value)
		},
		Comparators: map[string]Comparator[models.Product]{
			ProductSortPrice:  Numeric(func(p models.Product) int64 { return p.Price }),
			ProductSortStock:  Numeric(func(p models.Product) int64 { return p.Stock }),
			ProductSortStatus: Ranked(stockRank, func(p models.Product) StockStatus { return StockStatusOf(p.Stock) }),
			ProductSortCreatedAt: func(a, b models.Product) int {
				return a.CreatedAt.Compare(b.CreatedAt)
			},
		},
		Field:    productField,
		Collator: coll,
	}
}

func productField(p models.Product, key string) string {
	switch key {
	case ProductSortName:
		return p.Name
	case "size":
		return p.Size
	case "description":
		return p.Description
	case "quantityInBox":
		return strconv.FormatInt(p.QuantityInBox, 10)
	default:
		return ""
	}
}

// ValidProductFilter reports whether value is a product filter.
func ValidProductFilter(value string) bool {
	switch StockStatus(value) {
	case InStock, LowStock, OutOfStock:
		return true
	}
	return value == FilterAll || value == ""
}

// ProductRow is the presentation form of a product.
type ProductRow struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Price         int64    `json:"price"`
	PriceLabel    string   `json:"priceLabel"`
	Size          string   `json:"size"`
	QuantityInBox int64    `json:"quantityInBox"`
	Description   string   `json:"description"`
	Stock         int64    `json:"stock"`
	Status        Badge    `json:"status"`
	Image         string   `json:"image,omitempty"`
	Images        []string `json:"images"`
	CreatedAt     string   `json:"createdAt"`
	DeletedAt     string   `json:"deletedAt,omitempty"`
}

// NewProductRow derives the row of p.
func NewProductRow(p models.Product, assets Assets) ProductRow {
	row := ProductRow{
		ID:            p.ID,
		Name:          p.Name,
		Price:         p.Price,
		PriceLabel:    FormatPrice(p.Price),
		Size:          p.Size,
		QuantityInBox: p.QuantityInBox,
		Description:   p.Description,
		Stock:         p.Stock,
		Status:        StockBadge(p.Stock),
		Images:        assets.URLs(p.Images),
		CreatedAt:     FormatDate(p.CreatedAt),
	}
	if primary, ok := p.PrimaryImage(); ok {
		row.Image = assets.URL(primary)
	}
	if p.DeletedAt != nil {
		row.DeletedAt = FormatDate(*p.DeletedAt)
	}
	return row
}

// ProductRows maps products to rows.
func ProductRows(products []models.Product, assets Assets) []ProductRow {
	rows := make([]ProductRow, len(products))
	for i, p := range products {
		rows[i] = NewProductRow(p, assets)
	}
	return rows
}
