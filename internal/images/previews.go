// Package images holds the product image editor and the registry of local
// preview handles for staged uploads.
package images

import (
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/example/shafran-admin/internal/models"
)

// PreviewPrefix starts every preview handle.
const PreviewPrefix = "preview/"

// Previews maps preview handles to staged uploads until they are revoked.
type Previews struct {
	mu      sync.RWMutex
	uploads map[string]models.Upload
}

func NewPreviews() *Previews {
	return &Previews{uploads: make(map[string]models.Upload)}
}

// Create registers upload and returns its handle.
func (p *Previews) Create(upload models.Upload) string {
	handle := PreviewPrefix + uuid.NewString()
	p.mu.Lock()
	p.uploads[handle] = upload
	p.mu.Unlock()
	return handle
}

// Get returns the upload behind handle. The prefix may be omitted.
func (p *Previews) Get(handle string) (models.Upload, bool) {
	if !strings.HasPrefix(handle, PreviewPrefix) {
		handle = PreviewPrefix + handle
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	upload, ok := p.uploads[handle]
	return upload, ok
}

// Revoke releases handles. Unknown handles are ignored.
func (p *Previews) Revoke(handles ...string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, h := range handles {
		delete(p.uploads, h)
	}
}

// Len reports how many handles are live.
func (p *Previews) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.uploads)
}
