package application

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync/atomic"

	"go.uber.org/zap"

	"subloc/internal/domain"
	"subloc/internal/domain/entities"
	"subloc/internal/ports/output"
)

// ErrClosed is returned by all registry operations after Close.
var ErrClosed = errors.New("registry: closed")

// snapshot is one immutable, fully consistent view of every loaded catalog.
// Lookups load it once and never see a mix of old and new catalogs.
type snapshot struct {
	catalogs  map[string]*entities.Catalog
	fallbacks domain.Fallbacks
}

// Registry owns the loaded catalogs and the fallback configuration. It is an
// explicit handle, not a package global; tests and embedders may hold several
// independent registries. Lookups are lock-free: reloads publish a fresh
// snapshot through an atomic pointer swap.
type Registry struct {
	current atomic.Pointer[snapshot]
	logger  *zap.Logger
	metrics output.ResolutionMetrics
}

type nopMetrics struct{}

func (nopMetrics) ResolutionHit(_, _ string) {}
func (nopMetrics) ResolutionMiss(_ string)   {}
func (nopMetrics) CatalogReloaded(_ string)  {}

// NewRegistry loads every locale supplied by src, parses all catalogs, and
// fails fast if any of them is broken: the error is a *domain.AggregateLoadError
// listing every individual failure, and no registry is returned. A broken
// catalog must never silently degrade to missing subtitles in production.
//
// logger and metrics may be nil.
func NewRegistry(ctx context.Context, src output.CatalogSource, fallbacks domain.Fallbacks, logger *zap.Logger, metrics output.ResolutionMetrics) (*Registry, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if metrics == nil {
		metrics = nopMetrics{}
	}

	sources, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog sources: %w", err)
	}

	catalogs := make(map[string]*entities.Catalog, len(sources))
	var failures []*domain.LocaleError
	for loc, text := range sources {
		catalog, err := domain.ParseCatalog(loc, text)
		if err != nil {
			logger.Error("catalog parse failed",
				zap.String("locale", loc),
				zap.Error(err),
			)
			failures = append(failures, &domain.LocaleError{Locale: loc, Err: err})
			continue
		}
		catalogs[loc] = catalog
	}
	if len(failures) > 0 {
		return nil, &domain.AggregateLoadError{Errors: failures}
	}

	r := &Registry{logger: logger, metrics: metrics}
	r.current.Store(&snapshot{catalogs: catalogs, fallbacks: fallbacks})

	logger.Info("catalog registry initialized",
		zap.Strings("locales", localeNames(catalogs)),
		zap.String("default_locale", fallbacks.Default),
	)
	return r, nil
}

// Lookup resolves key for the requested locale, walking the fallback chain.
// On success it reports which locale actually supplied the text; on failure
// the error is a *domain.NotFoundError carrying the attempted chain. Lookup
// never blocks and is safe for concurrent readers.
func (r *Registry) Lookup(requestedLocale, key string) (Resolution, error) {
	s := r.current.Load()
	if s == nil {
		return Resolution{}, ErrClosed
	}

	res, err := resolve(s, requestedLocale, key)
	if err != nil {
		r.metrics.ResolutionMiss(requestedLocale)
		var nf *domain.NotFoundError
		if errors.As(err, &nf) {
			r.logger.Warn("subtitle key not found",
				zap.String("key", key),
				zap.Strings("chain", nf.Chain),
			)
		}
		return Resolution{}, err
	}

	r.metrics.ResolutionHit(requestedLocale, res.Locale)
	return res, nil
}

// Reload re-parses one locale's catalog from newSource and swaps it in
// atomically. Other locales are untouched; in-flight lookups observe either
// the old or the new catalog in full, never a mix. On parse failure the
// previous catalog stays in place.
func (r *Registry) Reload(locale, newSource string) error {
	catalog, err := domain.ParseCatalog(locale, newSource)
	if err != nil {
		r.logger.Error("catalog reload rejected",
			zap.String("locale", locale),
			zap.Error(err),
		)
		return &domain.LocaleError{Locale: locale, Err: err}
	}

	for {
		old := r.current.Load()
		if old == nil {
			return ErrClosed
		}
		next := &snapshot{
			catalogs:  make(map[string]*entities.Catalog, len(old.catalogs)+1),
			fallbacks: old.fallbacks,
		}
		for loc, c := range old.catalogs {
			next.catalogs[loc] = c
		}
		next.catalogs[locale] = catalog
		if r.current.CompareAndSwap(old, next) {
			break
		}
	}

	r.metrics.CatalogReloaded(locale)
	r.logger.Info("catalog reloaded",
		zap.String("locale", locale),
		zap.Int("entries", catalog.Len()),
	)
	return nil
}

// CoverageReport compares every loaded locale's key set against the reference
// locale (normally the most complete one) and returns, per non-reference
// locale, the sorted keys it is missing. Intended as a pre-release gate.
func (r *Registry) CoverageReport(referenceLocale string) (map[string][]string, error) {
	s := r.current.Load()
	if s == nil {
		return nil, ErrClosed
	}
	reference, ok := s.catalogs[referenceLocale]
	if !ok {
		return nil, fmt.Errorf("coverage report: reference locale %q is not loaded", referenceLocale)
	}

	report := make(map[string][]string, len(s.catalogs)-1)
	for loc, catalog := range s.catalogs {
		if loc == referenceLocale {
			continue
		}
		var missing []string
		for _, key := range reference.Keys() {
			if _, ok := catalog.Get(key); !ok {
				missing = append(missing, key)
			}
		}
		report[loc] = missing
	}
	return report, nil
}

// Locales returns the sorted identifiers of all loaded locales.
func (r *Registry) Locales() []string {
	s := r.current.Load()
	if s == nil {
		return nil
	}
	return localeNames(s.catalogs)
}

// Catalogs returns the current catalogs, sorted by locale. The catalogs are
// immutable; the slice is the caller's to keep.
func (r *Registry) Catalogs() []*entities.Catalog {
	s := r.current.Load()
	if s == nil {
		return nil
	}
	out := make([]*entities.Catalog, 0, len(s.catalogs))
	for _, loc := range localeNames(s.catalogs) {
		out = append(out, s.catalogs[loc])
	}
	return out
}

// DefaultLocale returns the configured locale of last resort.
func (r *Registry) DefaultLocale() string {
	s := r.current.Load()
	if s == nil {
		return ""
	}
	return s.fallbacks.Default
}

// Close drops the current snapshot. Subsequent operations return ErrClosed.
func (r *Registry) Close() {
	r.current.Store(nil)
}

func localeNames(catalogs map[string]*entities.Catalog) []string {
	names := make([]string, 0, len(catalogs))
	for loc := range catalogs {
		names = append(names, loc)
	}
	sort.Strings(names)
	return names
}
