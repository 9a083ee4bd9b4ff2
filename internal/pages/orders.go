package pages

import (
	"context"
	"log"
	"sync"

	"github.com/example/shafran-admin/internal/apperrors"
	"github.com/example/shafran-admin/internal/models"
	"github.com/example/shafran-admin/internal/utils"
	"github.com/example/shafran-admin/internal/view"
)

// Orders is the order list page.
type Orders struct {
	svc      OrderService
	notifier Notifier
	assets   view.Assets
	list     *collection[models.Order]
}

func NewOrders(svc OrderService, opts Options) *Orders {
	return &Orders{
		svc:      svc,
		notifier: opts.notifier(),
		assets:   opts.Assets,
		list:     newCollection("orders", svc.ListOrders, view.OrderSpec(opts.Collator), view.DefaultOrderQuery()),
	}
}

func (o *Orders) Load(ctx context.Context) error   { return o.list.load(ctx) }
func (o *Orders) Ensure(ctx context.Context) error { return o.list.ensure(ctx) }
func (o *Orders) Search(term string)               { o.list.search(term) }
func (o *Orders) Sort(key string) view.Sort        { return o.list.sort(key) }

// SetFilter selects an order status, or "all".
func (o *Orders) SetFilter(value string) error {
	if !view.ValidOrderFilter(value) {
		return apperrors.NewValidationError("filter", "Unknown filter %q", value)
	}
	o.list.setFilter(value)
	return nil
}

func (o *Orders) View(pg utils.Pagination) ViewModel[view.OrderRow] {
	return derive(o.list, pg, func(items []models.Order) []view.OrderRow {
		return view.OrderRows(items, o.assets)
	})
}

// Invalidate marks the list stale after an order changed elsewhere.
func (o *Orders) Invalidate() { o.list.invalidate() }

// Delete removes an order and refetches the list.
func (o *Orders) Delete(ctx context.Context, id string) error {
	if err := o.svc.DeleteOrder(ctx, id); err != nil {
		return err
	}
	o.notifier.Audit(ctx, "Buyurtma o'chirildi", id)
	return o.list.load(ctx)
}

// OrderDetail is the single-order page.
type OrderDetail struct {
	svc      OrderService
	notifier Notifier
	assets   view.Assets

	mu      sync.Mutex
	number  string
	order   *models.Order
	loading bool
	err     string
	gen     uint64
}

func NewOrderDetail(svc OrderService, opts Options) *OrderDetail {
	return &OrderDetail{svc: svc, notifier: opts.notifier(), assets: opts.Assets}
}

// Open fetches the order with number. Switching numbers drops the previous order.
func (d *OrderDetail) Open(ctx context.Context, number string) error {
	d.mu.Lock()
	if d.number != number {
		d.order = nil
		d.err = ""
	}
	d.number = number
	d.gen++
	gen := d.gen
	d.loading = true
	d.mu.Unlock()

	order, err := d.svc.GetOrder(ctx, number)

	d.mu.Lock()
	defer d.mu.Unlock()
	if gen != d.gen {
		log.Printf("[Pages] order %s: dropped stale response", number)
		return nil
	}
	d.loading = false
	if err != nil {
		d.err = apperrors.Message(err)
		return err
	}
	d.order = order
	d.err = ""
	return nil
}

// UpdateStatus changes the order status and refetches the order.
func (d *OrderDetail) UpdateStatus(ctx context.Context, number, status string) error {
	if !view.KnownOrderStatus(status) {
		return apperrors.NewValidationError("status", "Unknown status %q", status)
	}
	if err := d.svc.UpdateOrderStatus(ctx, number, status); err != nil {
		return err
	}
	d.notifier.Audit(ctx, "Buyurtma holati: "+view.OrderStatusBadge(status).Label, number)
	return d.Open(ctx, number)
}

// OrderDetailView is what the single-order page renders.
type OrderDetailView struct {
	Order    *view.OrderRow `json:"order"`
	Statuses []view.Badge   `json:"statuses"`
	Loading  bool           `json:"loading"`
	Error    *string        `json:"error"`
}

func (d *OrderDetail) View() OrderDetailView {
	d.mu.Lock()
	order, loading, errMsg := d.order, d.loading, d.err
	d.mu.Unlock()

	v := OrderDetailView{Statuses: view.OrderStatuses(), Loading: loading}
	if order != nil {
		row := view.NewOrderRow(*order, d.assets, true)
		v.Order = &row
	}
	if errMsg != "" {
		v.Error = &errMsg
	}
	return v
}
