package pages

import (
	"context"
	"net/http"
	"sync"

	"github.com/example/shafran-admin/internal/apperrors"
	"github.com/example/shafran-admin/internal/models"
)

// fakeAPI implements every service interface over in-memory records.
type fakeAPI struct {
	mu       sync.Mutex
	calls    map[string]int
	fail     map[string]error
	products []models.Product
	deleted  []models.Product
	orders   []models.Order
	users    []models.User
	stats    *models.DashboardStats
	updates  []models.ProductUpdate

	// block, when set, is waited on by the next ListProducts call; entered
	// is closed once that call is waiting.
	block   chan struct{}
	entered chan struct{}
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{calls: make(map[string]int), fail: make(map[string]error)}
}

func (f *fakeAPI) record(name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[name]++
	return f.fail[name]
}

func (f *fakeAPI) count(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func serverError(status int, msg string) error {
	return &apperrors.RequestError{Status: status, Message: msg}
}

var errBoom = serverError(http.StatusInternalServerError, "Server xatosi")

func (f *fakeAPI) ListProducts(ctx context.Context) ([]models.Product, error) {
	f.mu.Lock()
	block, entered := f.block, f.entered
	f.block, f.entered = nil, nil
	f.mu.Unlock()
	if block != nil {
		close(entered)
		<-block
	}
	if err := f.record("ListProducts"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Product(nil), f.products...), nil
}

func (f *fakeAPI) ListDeletedProducts(ctx context.Context) ([]models.Product, error) {
	if err := f.record("ListDeletedProducts"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Product(nil), f.deleted...), nil
}

func (f *fakeAPI) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	if err := f.record("GetProduct"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.products {
		if p.ID == id {
			p.Images = append([]string(nil), p.Images...)
			return &p, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (f *fakeAPI) CreateProduct(ctx context.Context, in models.ProductInput) error {
	if err := f.record("CreateProduct"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.products = append(f.products, models.Product{ID: "new", Name: in.Name, Stock: in.Stock})
	return nil
}

func (f *fakeAPI) UpdateProduct(ctx context.Context, id string, up models.ProductUpdate) error {
	if err := f.record("UpdateProduct"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates = append(f.updates, up)
	for i := range f.products {
		if f.products[i].ID != id {
			continue
		}
		images := append([]string(nil), up.ExistingPhotos...)
		for _, ph := range up.Photos {
			images = append(images, "uploads/"+ph.Name)
		}
		f.products[i].Images = images
		if up.Name != nil {
			f.products[i].Name = *up.Name
		}
	}
	return nil
}

func (f *fakeAPI) DeleteProduct(ctx context.Context, id string) error {
	if err := f.record("DeleteProduct"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, p := range f.products {
		if p.ID == id {
			f.deleted = append(f.deleted, p)
			f.products = append(f.products[:i], f.products[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeAPI) RestoreProduct(ctx context.Context, id string) error {
	if err := f.record("RestoreProduct"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, p := range f.deleted {
		if p.ID == id {
			f.products = append(f.products, p)
			f.deleted = append(f.deleted[:i], f.deleted[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeAPI) DeleteProductImage(ctx context.Context, id string, index int) error {
	if err := f.record("DeleteProductImage"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.products {
		if f.products[i].ID == id && index < len(f.products[i].Images) {
			imgs := f.products[i].Images
			f.products[i].Images = append(imgs[:index:index], imgs[index+1:]...)
		}
	}
	return nil
}

func (f *fakeAPI) ListOrders(ctx context.Context) ([]models.Order, error) {
	if err := f.record("ListOrders"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Order(nil), f.orders...), nil
}

func (f *fakeAPI) GetOrder(ctx context.Context, number string) (*models.Order, error) {
	if err := f.record("GetOrder"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, o := range f.orders {
		if o.OrderNumber.String() == number {
			return &o, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (f *fakeAPI) UpdateOrderStatus(ctx context.Context, number, status string) error {
	if err := f.record("UpdateOrderStatus"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.orders {
		if f.orders[i].OrderNumber.String() == number {
			f.orders[i].Status = status
		}
	}
	return nil
}

func (f *fakeAPI) DeleteOrder(ctx context.Context, id string) error {
	if err := f.record("DeleteOrder"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, o := range f.orders {
		if o.ID == id {
			f.orders = append(f.orders[:i], f.orders[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeAPI) ListUsers(ctx context.Context) ([]models.User, error) {
	if err := f.record("ListUsers"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.User(nil), f.users...), nil
}

func (f *fakeAPI) SetUserVerified(ctx context.Context, id string, verified bool) error {
	return f.record("SetUserVerified")
}

func (f *fakeAPI) DeleteUser(ctx context.Context, id string) error {
	if err := f.record("DeleteUser"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, u := range f.users {
		if u.ID == id {
			f.users = append(f.users[:i], f.users[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeAPI) GetDashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	if err := f.record("GetDashboardStats"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.stats == nil {
		return &models.DashboardStats{}, nil
	}
	cp := *f.stats
	cp.TenLastUsers = append([]models.User(nil), f.stats.TenLastUsers...)
	return &cp, nil
}

type auditLog struct {
	mu      sync.Mutex
	actions []string
}

func (a *auditLog) Audit(ctx context.Context, action, target string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.actions = append(a.actions, action+" "+target)
}
