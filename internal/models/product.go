package models

import "time"

// Product is a catalog item as returned by the admin API.
// Price is in minor currency units.
type Product struct {
	ID            string     `json:"_id"`
	Name          string     `json:"name"`
	Price         int64      `json:"price"`
	Size          string     `json:"size"`
	QuantityInBox int64      `json:"quantityInBox"`
	Description   string     `json:"description"`
	Stock         int64      `json:"stock"`
	Images        []string   `json:"images"`
	CreatedAt     time.Time  `json:"createdAt"`
	DeletedAt     *time.Time `json:"deletedAt,omitempty"`
}

// Deleted reports whether the product is soft-deleted.
func (p Product) Deleted() bool {
	return p.DeletedAt != nil
}

// PrimaryImage returns the image at position 0, the product's cover.
func (p Product) PrimaryImage() (string, bool) {
	if len(p.Images) == 0 {
		return "", false
	}
	return p.Images[0], true
}

// Category is a product category.
type Category struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// Upload is a binary file staged for a multipart request.
type Upload struct {
	Name        string
	ContentType string
	Data        []byte
}

// ProductInput carries the fields of a product to create.
type ProductInput struct {
	Name          string
	Price         int64
	Size          string
	QuantityInBox int64
	Description   string
	Stock         int64
	Photos        []Upload
}

// ProductUpdate carries a partial product update. Nil scalar fields are left
// untouched by the server. ExistingPhotos is the retained image list in its
// final order; Photos are appended after it.
type ProductUpdate struct {
	Name           *string
	Price          *int64
	Size           *string
	QuantityInBox  *int64
	Description    *string
	Stock          *int64
	ExistingPhotos []string
	Photos         []Upload
}
