package domain

// Fallbacks configures the fallback chains consulted when a key is absent
// from the requested locale's catalog. Default is the locale of last resort,
// conventionally the one guaranteed to contain every key callers use.
type Fallbacks struct {
	Default string
	Chains  map[string][]string
}

// ChainFor returns the configured fallback chain for locale, without the
// locale itself and without the default (both are added by the resolver).
func (f Fallbacks) ChainFor(locale string) []string {
	return f.Chains[locale]
}
