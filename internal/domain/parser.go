package domain

import (
	"bufio"
	"strings"

	"subloc/internal/domain/entities"
)

// commentMarker introduces a comment line. Comments and blank lines are
// structural separators only and carry no semantic weight.
const commentMarker = "#"

// ParseCatalog parses a catalog source into an immutable Catalog for locale.
//
// The grammar is one entry per line, `<key> = <text>`, with surrounding
// whitespace stripped from both key and text. An empty key or empty text is
// legal. Any line that is not blank, a comment, or an entry fails the whole
// load with MalformedLineError; a repeated key fails it with
// DuplicateKeyError. No partial catalog is ever returned.
func ParseCatalog(locale, source string) (*entities.Catalog, error) {
	entries := make(map[string]string)
	seenAt := make(map[string]int)

	scanner := bufio.NewScanner(strings.NewReader(source))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		raw := scanner.Text()

		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, commentMarker) {
			continue
		}

		key, text, ok := strings.Cut(line, "=")
		if !ok {
			return nil, &MalformedLineError{Line: lineNo, Content: raw}
		}
		key = strings.TrimSpace(key)
		text = strings.TrimSpace(text)

		if first, dup := seenAt[key]; dup {
			return nil, &DuplicateKeyError{Key: key, FirstLine: first, SecondLine: lineNo}
		}
		seenAt[key] = lineNo
		entries[key] = text
	}
	if err := scanner.Err(); err != nil {
		// Only reachable for lines beyond the scanner buffer limit.
		return nil, &MalformedLineError{Line: lineNo + 1, Content: err.Error()}
	}

	return entities.NewCatalog(locale, entries), nil
}
