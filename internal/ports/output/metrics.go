package output

// ResolutionMetrics receives lookup and reload outcomes for telemetry on
// translation coverage gaps. Implementations must be safe for concurrent use.
type ResolutionMetrics interface {
	// ResolutionHit records a lookup satisfied by resolvedLocale. A hit with
	// resolvedLocale != requestedLocale marks a coverage gap in requestedLocale.
	ResolutionHit(requestedLocale, resolvedLocale string)

	// ResolutionMiss records a lookup no catalog in the chain could satisfy.
	ResolutionMiss(requestedLocale string)

	// CatalogReloaded records an atomic catalog swap for locale.
	CatalogReloaded(locale string)
}
