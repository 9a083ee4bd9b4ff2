// Package pages holds per-page state: the fetched collection, the active
// query and the mutation rules that decide between an in-place patch and a
// full refetch.
package pages

import (
	"context"

	"github.com/example/shafran-admin/internal/models"
	"github.com/example/shafran-admin/internal/view"
)

// ProductService is the product half of the data service.
type ProductService interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	ListDeletedProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	CreateProduct(ctx context.Context, in models.ProductInput) error
	UpdateProduct(ctx context.Context, id string, up models.ProductUpdate) error
	DeleteProduct(ctx context.Context, id string) error
	RestoreProduct(ctx context.Context, id string) error
	DeleteProductImage(ctx context.Context, id string, index int) error
}

// OrderService is the order half of the data service.
type OrderService interface {
	ListOrders(ctx context.Context) ([]models.Order, error)
	GetOrder(ctx context.Context, orderNumber string) (*models.Order, error)
	UpdateOrderStatus(ctx context.Context, orderNumber, status string) error
	DeleteOrder(ctx context.Context, id string) error
}

// UserService is the user half of the data service.
type UserService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	SetUserVerified(ctx context.Context, id string, verified bool) error
	DeleteUser(ctx context.Context, id string) error
}

// DashboardService fetches the aggregate snapshot.
type DashboardService interface {
	GetDashboardStats(ctx context.Context) (*models.DashboardStats, error)
}

// Notifier records completed destructive actions.
type Notifier interface {
	Audit(ctx context.Context, action, target string)
}

type noopNotifier struct{}

func (noopNotifier) Audit(context.Context, string, string) {}

// Invalidator is a page whose cached server state can be marked stale.
type Invalidator interface {
	Invalidate()
}

// Options carries what every page shares.
type Options struct {
	Notifier  Notifier
	Assets    view.Assets
	Collator  *view.Collator
	MaxPhotos int
}

func (o Options) notifier() Notifier {
	if o.Notifier == nil {
		return noopNotifier{}
	}
	return o.Notifier
}
