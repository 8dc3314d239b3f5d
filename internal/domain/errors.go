package domain

import (
	"fmt"
	"sort"
	"strings"
)

// MalformedLineError reports a source line that does not match the
// `key = text` entry grammar. It aborts the whole catalog load.
type MalformedLineError struct {
	Line    int
	Content string
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("malformed line %d: %q", e.Line, e.Content)
}

// DuplicateKeyError reports a key defined twice within one catalog source.
// Duplicates are never resolved last-write-wins; the load fails instead.
type DuplicateKeyError struct {
	Key        string
	FirstLine  int
	SecondLine int
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate key %q: lines %d and %d", e.Key, e.FirstLine, e.SecondLine)
}

// NotFoundError reports a key absent from every catalog in the attempted
// fallback chain. Recoverable: the caller decides what to render instead.
type NotFoundError struct {
	Key   string
	Chain []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("key %q not found in locales [%s]", e.Key, strings.Join(e.Chain, ", "))
}

// LocaleError pairs a locale identifier with the error its catalog produced.
type LocaleError struct {
	Locale string
	Err    error
}

func (e *LocaleError) Error() string {
	return fmt.Sprintf("locale %s: %v", e.Locale, e.Err)
}

func (e *LocaleError) Unwrap() error { return e.Err }

// AggregateLoadError collects every per-locale failure of a registry
// initialization. The registry never starts serving with a partial set.
type AggregateLoadError struct {
	Errors []*LocaleError
}

func (e *AggregateLoadError) Error() string {
	sorted := make([]*LocaleError, len(e.Errors))
	copy(sorted, e.Errors)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Locale < sorted[j].Locale })

	parts := make([]string, len(sorted))
	for i, le := range sorted {
		parts[i] = le.Error()
	}
	return fmt.Sprintf("loading %d catalog(s) failed: %s", len(sorted), strings.Join(parts, "; "))
}

func (e *AggregateLoadError) Unwrap() []error {
	errs := make([]error, len(e.Errors))
	for i, le := range e.Errors {
		errs[i] = le
	}
	return errs
}
