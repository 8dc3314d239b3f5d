package application

import (
	"subloc/internal/domain"
	"subloc/pkg/locale"
)

// Resolution is a successful lookup: the display text and the locale whose
// catalog actually supplied it. Locale differing from the requested one
// signals a translation coverage gap worth logging.
type Resolution struct {
	Text   string
	Locale string
}

// effectiveChain builds the ordered, deduplicated list of locales to consult
// for requested: the locale itself, its base language (so "cs-CZ" reaches a
// "cs" catalog), its configured fallbacks, then the default locale.
func effectiveChain(s *snapshot, requested string) []string {
	heads := []string{requested}
	if base := locale.Base(requested); base != "" {
		heads = append(heads, base)
	}

	candidates := make([]string, 0, 4)
	for _, head := range heads {
		candidates = append(candidates, head)
		candidates = append(candidates, s.fallbacks.ChainFor(head)...)
	}
	if s.fallbacks.Default != "" {
		candidates = append(candidates, s.fallbacks.Default)
	}

	chain := make([]string, 0, len(candidates))
	seen := make(map[string]struct{}, len(candidates))
	for _, loc := range candidates {
		if loc == "" {
			continue
		}
		if _, dup := seen[loc]; dup {
			continue
		}
		seen[loc] = struct{}{}
		chain = append(chain, loc)
	}
	return chain
}

// resolve walks the effective fallback chain over one immutable snapshot.
// It never mutates state and is safe for any number of concurrent callers.
func resolve(s *snapshot, requested, key string) (Resolution, error) {
	chain := effectiveChain(s, requested)
	for _, loc := range chain {
		catalog, ok := s.catalogs[loc]
		if !ok {
			continue
		}
		if text, ok := catalog.Get(key); ok {
			return Resolution{Text: text, Locale: loc}, nil
		}
	}
	return Resolution{}, &domain.NotFoundError{Key: key, Chain: chain}
}
