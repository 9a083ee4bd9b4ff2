package pages

import (
	"context"
	"log"
	"sync"

	"github.com/example/shafran-admin/internal/apperrors"
	"github.com/example/shafran-admin/internal/images"
	"github.com/example/shafran-admin/internal/models"
	"github.com/example/shafran-admin/internal/view"
)

var errNotEditing = apperrors.NewValidationError("edit", "Product is not in edit mode")

// ProductDetails keeps one detail page per open product.
type ProductDetails struct {
	svc       ProductService
	notifier  Notifier
	assets    view.Assets
	previews  *images.Previews
	maxPhotos int

	mu   sync.Mutex
	open map[string]*ProductDetail
}

func NewProductDetails(svc ProductService, previews *images.Previews, opts Options) *ProductDetails {
	if previews == nil {
		previews = images.NewPreviews()
	}
	return &ProductDetails{
		svc:       svc,
		notifier:  opts.notifier(),
		assets:    opts.Assets,
		previews:  previews,
		maxPhotos: maxPhotos(opts.MaxPhotos),
		open:      make(map[string]*ProductDetail),
	}
}

// Open returns the detail page for id, fetching the product on first use or
// when reload is set.
func (d *ProductDetails) Open(ctx context.Context, id string, reload bool) (*ProductDetail, error) {
	d.mu.Lock()
	page, ok := d.open[id]
	if !ok {
		page = &ProductDetail{id: id, parent: d}
		d.open[id] = page
	}
	d.mu.Unlock()

	if ok && !reload {
		return page, nil
	}
	if err := page.Load(ctx); err != nil {
		return page, err
	}
	return page, nil
}

// Close drops the page for id and releases its previews.
func (d *ProductDetails) Close(id string) {
	d.mu.Lock()
	page, ok := d.open[id]
	delete(d.open, id)
	d.mu.Unlock()
	if ok {
		page.Cancel()
	}
}

// ProductDetail is one product with its optional image editing session.
type ProductDetail struct {
	id     string
	parent *ProductDetails

	mu      sync.Mutex
	product *models.Product
	editor  *images.Editor
	loading bool
	err     string
	gen     uint64
}

// Load refetches the product. A stale response is dropped.
func (p *ProductDetail) Load(ctx context.Context) error {
	p.mu.Lock()
	p.gen++
	gen := p.gen
	p.loading = true
	p.mu.Unlock()

	product, err := p.parent.svc.GetProduct(ctx, p.id)

	p.mu.Lock()
	defer p.mu.Unlock()
	if gen != p.gen {
		log.Printf("[Pages] product %s: dropped stale response", p.id)
		return nil
	}
	p.loading = false
	if err != nil {
		p.err = apperrors.Message(err)
		return err
	}
	p.product = product
	p.err = ""
	return nil
}

// StartEdit opens an editor over the saved images. It is a no-op when one is open.
func (p *ProductDetail) StartEdit() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.product == nil {
		return apperrors.ErrNotFound
	}
	if p.editor == nil {
		p.editor = images.NewEditor(p.product.Images, p.parent.previews, p.parent.maxPhotos)
	}
	return nil
}

func (p *ProductDetail) withEditor(fn func(e *images.Editor) error) error {
	p.mu.Lock()
	e := p.editor
	p.mu.Unlock()
	if e == nil {
		return errNotEditing
	}
	return fn(e)
}

// Stage replaces the staged uploads.
func (p *ProductDetail) Stage(files []models.Upload) error {
	return p.withEditor(func(e *images.Editor) error {
		_, err := e.Stage(files)
		return err
	})
}

func (p *ProductDetail) MarkDeleted(index int) error {
	return p.withEditor(func(e *images.Editor) error { return e.MarkDeleted(index) })
}

func (p *ProductDetail) Reorder(from, to int) error {
	return p.withEditor(func(e *images.Editor) error { return e.Reorder(from, to) })
}

// ResetEdits restores the saved image list and keeps edit mode on.
func (p *ProductDetail) ResetEdits() error {
	return p.withEditor(func(e *images.Editor) error {
		e.Reset()
		return nil
	})
}

// Cancel leaves edit mode and releases previews.
func (p *ProductDetail) Cancel() {
	p.mu.Lock()
	e := p.editor
	p.editor = nil
	p.mu.Unlock()
	if e != nil {
		e.Discard()
	}
}

// Save sends fields together with the editor's image channels, then refetches.
// On failure the editor stays as it was.
func (p *ProductDetail) Save(ctx context.Context, fields models.ProductUpdate) error {
	p.mu.Lock()
	e, product := p.editor, p.product
	p.mu.Unlock()

	up := fields
	if e != nil {
		channels := e.Update()
		up.ExistingPhotos = channels.ExistingPhotos
		up.Photos = channels.Photos
	} else if product != nil {
		up.ExistingPhotos = append([]string(nil), product.Images...)
	}
	if len(up.Photos) > p.parent.maxPhotos {
		return apperrors.NewValidationError("photos", "Maximum %d photos allowed", p.parent.maxPhotos)
	}

	if err := p.parent.svc.UpdateProduct(ctx, p.id, up); err != nil {
		return err
	}
	log.Printf("[Pages] product %s saved (%d kept, %d new images)", p.id, len(up.ExistingPhotos), len(up.Photos))

	p.Cancel()
	return p.Load(ctx)
}

// DeleteImage removes one saved image on the server and refetches. An open
// editor is rebuilt over the new list.
func (p *ProductDetail) DeleteImage(ctx context.Context, index int) error {
	if err := p.parent.svc.DeleteProductImage(ctx, p.id, index); err != nil {
		return err
	}
	p.parent.notifier.Audit(ctx, "Mahsulot rasmi o'chirildi", p.id)

	p.mu.Lock()
	editing := p.editor != nil
	p.mu.Unlock()

	p.Cancel()
	if err := p.Load(ctx); err != nil {
		return err
	}
	if editing {
		return p.StartEdit()
	}
	return nil
}

// ProductDetailView is what the product detail page renders.
type ProductDetailView struct {
	Product *view.ProductRow `json:"product"`
	Editing bool             `json:"editing"`
	Editor  *images.State    `json:"editor,omitempty"`
	Loading bool             `json:"loading"`
	Error   *string          `json:"error"`
}

func (p *ProductDetail) View() ProductDetailView {
	p.mu.Lock()
	product, e, loading, errMsg := p.product, p.editor, p.loading, p.err
	p.mu.Unlock()

	v := ProductDetailView{Loading: loading, Editing: e != nil}
	if product != nil {
		row := view.NewProductRow(*product, p.parent.assets)
		v.Product = &row
	}
	if e != nil {
		st := e.Snapshot()
		for i := range st.Existing {
			st.Existing[i].URL = p.parent.assets.URL(st.Existing[i].Ref)
		}
		v.Editor = &st
	}
	if errMsg != "" {
		v.Error = &errMsg
	}
	return v
}
