package view

import (
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Collator is a goroutine-safe locale-aware string comparer.
type Collator struct {
	mu sync.Mutex
	c  *collate.Collator
}

// NewCollator builds a collator for a BCP 47 locale; unparsable locales fall
// back to the root collation.
func NewCollator(locale string) *Collator {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Und
	}
	return &Collator{c: collate.New(tag)}
}

var (
	defaultCollatorOnce sync.Once
	defaultCollator     *Collator
)

// DefaultCollator returns the shared Uzbek collator.
func DefaultCollator() *Collator {
	defaultCollatorOnce.Do(func() {
		defaultCollator = NewCollator("uz")
	})
	return defaultCollator
}

// Compare returns -1, 0 or 1.
func (c *Collator) Compare(a, b string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.c.CompareString(a, b)
}
