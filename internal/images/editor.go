package images

import (
	"sync"

	"github.com/example/shafran-admin/internal/apperrors"
	"github.com/example/shafran-admin/internal/models"
)

// DefaultMaxPhotos is the server-side limit on staged files.
const DefaultMaxPhotos = 5

type entry struct {
	ref     string
	deleted bool
}

// Staged is a staged upload with its preview handle.
type Staged struct {
	Upload models.Upload
	Handle string
}

// Editor tracks edits to one product's image set until commit. Indexes given
// to MarkDeleted and Reorder address the current ordering of existing images,
// deleted ones included, so a deleted image keeps its slot and never shifts
// the others.
type Editor struct {
	mu       sync.Mutex
	saved    []string
	entries  []entry
	staged   []Staged
	previews *Previews
	max      int
}

// NewEditor starts an editor over the last-saved image list.
func NewEditor(saved []string, previews *Previews, maxPhotos int) *Editor {
	if maxPhotos <= 0 {
		maxPhotos = DefaultMaxPhotos
	}
	if previews == nil {
		previews = NewPreviews()
	}
	e := &Editor{
		saved:    append([]string(nil), saved...),
		previews: previews,
		max:      maxPhotos,
	}
	e.entries = entriesOf(e.saved)
	return e
}

func entriesOf(refs []string) []entry {
	out := make([]entry, len(refs))
	for i, ref := range refs {
		out[i] = entry{ref: ref}
	}
	return out
}

// Stage replaces the staged set. More than the maximum fails with a
// ValidationError and keeps the previous staged files.
func (e *Editor) Stage(files []models.Upload) ([]Staged, error) {
	if len(files) > e.max {
		return nil, apperrors.NewValidationError("photos", "Maximum %d photos allowed", e.max)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.releaseStaged()
	e.staged = make([]Staged, len(files))
	for i, f := range files {
		e.staged[i] = Staged{Upload: f, Handle: e.previews.Create(f)}
	}
	return append([]Staged(nil), e.staged...), nil
}

// MarkDeleted soft-removes the existing image at index.
func (e *Editor) MarkDeleted(index int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if index < 0 || index >= len(e.entries) {
		return apperrors.NewValidationError("index", "Image index %d out of range", index)
	}
	e.entries[index].deleted = true
	return nil
}

// Reorder moves the existing image at from to to, shifting the ones between.
// to is clamped into range.
func (e *Editor) Reorder(from, to int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	n := len(e.entries)
	if from < 0 || from >= n {
		return apperrors.NewValidationError("from", "Image index %d out of range", from)
	}
	to = max(0, min(to, n-1))
	if from == to {
		return nil
	}

	moved := e.entries[from]
	rest := append(e.entries[:from:from], e.entries[from+1:]...)
	e.entries = append(rest[:to:to], append([]entry{moved}, rest[to:]...)...)
	return nil
}

// Reset drops all staged, deleted and reorder state.
func (e *Editor) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.releaseStaged()
	e.entries = entriesOf(e.saved)
}

// Discard releases every preview handle. The editor must not be used after.
func (e *Editor) Discard() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.releaseStaged()
}

func (e *Editor) releaseStaged() {
	for _, s := range e.staged {
		e.previews.Revoke(s.Handle)
	}
	e.staged = nil
}

// Commit returns the retained existing images in order and the staged files.
func (e *Editor) Commit() (existing []string, photos []models.Upload) {
	e.mu.Lock()
	defer e.mu.Unlock()

	existing = make([]string, 0, len(e.entries))
	for _, en := range e.entries {
		if !en.deleted {
			existing = append(existing, en.ref)
		}
	}
	photos = make([]models.Upload, len(e.staged))
	for i, s := range e.staged {
		photos[i] = s.Upload
	}
	return existing, photos
}

// Update wraps Commit into a product update carrying only the image channels.
func (e *Editor) Update() models.ProductUpdate {
	existing, photos := e.Commit()
	return models.ProductUpdate{ExistingPhotos: existing, Photos: photos}
}

// Modified reports whether anything differs from the saved list.
func (e *Editor) Modified() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(e.staged) > 0 || len(e.entries) != len(e.saved) {
		return true
	}
	for i, en := range e.entries {
		if en.deleted || en.ref != e.saved[i] {
			return true
		}
	}
	return false
}

// Slot is one existing image as the editor shows it.
type Slot struct {
	Index   int    `json:"index"`
	Ref     string `json:"ref"`
	URL     string `json:"url,omitempty"`
	Deleted bool   `json:"deleted"`
	Primary bool   `json:"primary"`
}

// State is a snapshot of the editor.
type State struct {
	Existing []Slot   `json:"existing"`
	Staged   []string `json:"staged"`
	Primary  string   `json:"primary,omitempty"`
	Modified bool     `json:"modified"`
	Max      int      `json:"maxPhotos"`
}

// Snapshot returns the current state. The primary image is the first retained
// existing image, or the first staged preview when none is retained.
func (e *Editor) Snapshot() State {
	modified := e.Modified()

	e.mu.Lock()
	defer e.mu.Unlock()

	st := State{
		Existing: make([]Slot, len(e.entries)),
		Staged:   make([]string, len(e.staged)),
		Modified: modified,
		Max:      e.max,
	}
	for i, en := range e.entries {
		st.Existing[i] = Slot{Index: i, Ref: en.ref, Deleted: en.deleted}
		if !en.deleted && st.Primary == "" {
			st.Primary = en.ref
			st.Existing[i].Primary = true
		}
	}
	for i, s := range e.staged {
		st.Staged[i] = s.Handle
	}
	if st.Primary == "" && len(st.Staged) > 0 {
		st.Primary = st.Staged[0]
	}
	return st
}
