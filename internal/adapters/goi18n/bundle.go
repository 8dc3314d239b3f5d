// Package goi18n exports loaded catalogs into a go-i18n Bundle so consumers
// that need templating or plural forms (UI strings, not subtitles) can share
// the same catalog data. The core grammar stays flat; this adapter is the
// extension surface for richer message syntax.
package goi18n

import (
	"fmt"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"subloc/internal/domain/entities"
)

// Export builds a Bundle with defaultLocale as its default language and one
// message per catalog entry. An unparseable locale tag fails the export;
// the same fail-loud policy as registry initialization.
//
// Entries with an empty key or empty text are skipped: go-i18n can neither
// address the former nor represent the latter (a deliberately silent
// subtitle has no meaning outside the resolution engine).
func Export(defaultLocale string, catalogs []*entities.Catalog) (*i18n.Bundle, error) {
	defaultTag, err := language.Parse(defaultLocale)
	if err != nil {
		return nil, fmt.Errorf("parse default locale %q: %w", defaultLocale, err)
	}

	bundle := i18n.NewBundle(defaultTag)
	for _, catalog := range catalogs {
		tag, err := language.Parse(catalog.Locale())
		if err != nil {
			return nil, fmt.Errorf("parse locale %q: %w", catalog.Locale(), err)
		}

		messages := make([]*i18n.Message, 0, catalog.Len())
		for _, key := range catalog.Keys() {
			if key == "" {
				continue
			}
			text, _ := catalog.Get(key)
			if text == "" {
				continue
			}
			messages = append(messages, &i18n.Message{ID: key, Other: text})
		}
		if len(messages) == 0 {
			continue
		}
		if err := bundle.AddMessages(tag, messages...); err != nil {
			return nil, fmt.Errorf("add messages for %q: %w", catalog.Locale(), err)
		}
	}
	return bundle, nil
}
