package entities

import "sort"

// Catalog is one locale's complete key→text mapping. It is immutable after
// construction: the entries map is copied in and never exposed by reference,
// so concurrent readers need no synchronization.
type Catalog struct {
	locale  string
	entries map[string]string
}

// NewCatalog builds a Catalog for locale from the given entries.
// The map is copied; later mutation of the argument does not affect the catalog.
func NewCatalog(locale string, entries map[string]string) *Catalog {
	copied := make(map[string]string, len(entries))
	for key, text := range entries {
		copied[key] = text
	}
	return &Catalog{locale: locale, entries: copied}
}

// Get returns the text for key. An empty text with ok=true is a deliberate
// author choice ("no subtitle for this event") and is distinct from ok=false.
func (c *Catalog) Get(key string) (string, bool) {
	text, ok := c.entries[key]
	return text, ok
}

// Locale returns the locale identifier this catalog was loaded under.
func (c *Catalog) Locale() string { return c.locale }

// Len returns the number of entries.
func (c *Catalog) Len() int { return len(c.entries) }

// Keys returns all message keys, sorted.
func (c *Catalog) Keys() []string {
	keys := make([]string, 0, len(c.entries))
	for key := range c.entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Entries returns a copy of the full mapping.
func (c *Catalog) Entries() map[string]string {
	copied := make(map[string]string, len(c.entries))
	for key, text := range c.entries {
		copied[key] = text
	}
	return copied
}
