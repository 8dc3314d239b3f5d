// Package locale provides small helpers over BCP 47 language tags.
package locale

import "golang.org/x/text/language"

// Normalize parses id as a BCP 47 tag and returns its canonical form.
func Normalize(id string) (string, error) {
	tag, err := language.Parse(id)
	if err != nil {
		return "", err
	}
	return tag.String(), nil
}

// Base returns the base language of id (e.g. "cs" for "cs-CZ"), or "" when
// id has no parseable base or the base equals id itself.
func Base(id string) string {
	tag, err := language.Parse(id)
	if err != nil {
		return ""
	}
	base, _ := tag.Base()
	b := base.String()
	if b == "und" || b == id {
		return ""
	}
	return b
}
