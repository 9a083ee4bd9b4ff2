package pages

import (
	"context"
	"log"

	"github.com/example/shafran-admin/internal/apperrors"
	"github.com/example/shafran-admin/internal/images"
	"github.com/example/shafran-admin/internal/models"
	"github.com/example/shafran-admin/internal/utils"
	"github.com/example/shafran-admin/internal/view"
)

// Products is the product list page.
type Products struct {
	svc       ProductService
	notifier  Notifier
	assets    view.Assets
	maxPhotos int
	list      *collection[models.Product]
}

func NewProducts(svc ProductService, opts Options) *Products {
	return &Products{
		svc:       svc,
		notifier:  opts.notifier(),
		assets:    opts.Assets,
		maxPhotos: maxPhotos(opts.MaxPhotos),
		list:      newCollection("products", svc.ListProducts, view.ProductSpec(opts.Collator), view.DefaultProductQuery()),
	}
}

func (p *Products) Load(ctx context.Context) error   { return p.list.load(ctx) }
func (p *Products) Ensure(ctx context.Context) error { return p.list.ensure(ctx) }
func (p *Products) Search(term string)               { p.list.search(term) }
func (p *Products) Sort(key string) view.Sort        { return p.list.sort(key) }

// SetFilter selects a stock bucket, or "all".
func (p *Products) SetFilter(value string) error {
	if !view.ValidProductFilter(value) {
		return apperrors.NewValidationError("filter", "Unknown filter %q", value)
	}
	p.list.setFilter(value)
	return nil
}

// View returns the derived product list.
func (p *Products) View(pg utils.Pagination) ViewModel[view.ProductRow] {
	return derive(p.list, pg, func(items []models.Product) []view.ProductRow {
		return view.ProductRows(items, p.assets)
	})
}

// Invalidate marks the list stale after a product changed elsewhere.
func (p *Products) Invalidate() { p.list.invalidate() }

// Create adds a product and refetches the list.
func (p *Products) Create(ctx context.Context, in models.ProductInput) error {
	if len(in.Photos) > p.maxPhotos {
		return apperrors.NewValidationError("photos", "Maximum %d photos allowed", p.maxPhotos)
	}
	if err := p.svc.CreateProduct(ctx, in); err != nil {
		return err
	}
	log.Printf("[Pages] product %q created", in.Name)
	return p.list.load(ctx)
}

// Delete soft-deletes a product and refetches the list.
func (p *Products) Delete(ctx context.Context, id string) error {
	if err := p.svc.DeleteProduct(ctx, id); err != nil {
		return err
	}
	p.notifier.Audit(ctx, "Mahsulot o'chirildi", id)
	return p.list.load(ctx)
}

// DeletedProducts is the soft-deleted product list.
type DeletedProducts struct {
	svc      ProductService
	notifier Notifier
	assets   view.Assets
	list     *collection[models.Product]
}

func NewDeletedProducts(svc ProductService, opts Options) *DeletedProducts {
	return &DeletedProducts{
		svc:      svc,
		notifier: opts.notifier(),
		assets:   opts.Assets,
		list:     newCollection("deleted products", svc.ListDeletedProducts, view.ProductSpec(opts.Collator), view.DefaultProductQuery()),
	}
}

func (p *DeletedProducts) Load(ctx context.Context) error   { return p.list.load(ctx) }
func (p *DeletedProducts) Ensure(ctx context.Context) error { return p.list.ensure(ctx) }
func (p *DeletedProducts) Search(term string)               { p.list.search(term) }
func (p *DeletedProducts) Sort(key string) view.Sort        { return p.list.sort(key) }

func (p *DeletedProducts) View(pg utils.Pagination) ViewModel[view.ProductRow] {
	return derive(p.list, pg, func(items []models.Product) []view.ProductRow {
		return view.ProductRows(items, p.assets)
	})
}

// Invalidate marks the list stale after a product was deleted elsewhere.
func (p *DeletedProducts) Invalidate() { p.list.invalidate() }

// Restore brings a product back and refetches the deleted list.
func (p *DeletedProducts) Restore(ctx context.Context, id string) error {
	if err := p.svc.RestoreProduct(ctx, id); err != nil {
		return err
	}
	p.notifier.Audit(ctx, "Mahsulot tiklandi", id)
	return p.list.load(ctx)
}

func maxPhotos(n int) int {
	if n <= 0 {
		return images.DefaultMaxPhotos
	}
	return n
}
