package output

import "context"

// CatalogSource supplies raw catalog source text per locale. Loading is the
// engine's only I/O point; it happens at registry init and on explicit
// reloads, never on the lookup path.
type CatalogSource interface {
	// Load returns a mapping from locale identifier to raw catalog source.
	Load(ctx context.Context) (map[string]string, error)
}
