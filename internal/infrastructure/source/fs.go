// Package source loads raw catalog text from filesystems. Catalog files are
// named `<locale>.catalog`; the file name is the locale identifier.
package source

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"subloc/internal/ports/output"
)

//go:embed locales/*.catalog
var embeddedFS embed.FS

const catalogExt = ".catalog"

var _ output.CatalogSource = (*FS)(nil)

// FS is a CatalogSource over any fs.FS.
type FS struct {
	fsys fs.FS
	dir  string
}

// NewFS wraps fsys, reading catalog files from dir ("." for the root).
func NewFS(fsys fs.FS, dir string) *FS {
	return &FS{fsys: fsys, dir: dir}
}

// NewDir reads catalog files from a directory on the host filesystem.
func NewDir(dir string) *FS {
	return &FS{fsys: os.DirFS(dir), dir: "."}
}

// Embedded returns the compiled-in default catalogs.
func Embedded() *FS {
	return &FS{fsys: embeddedFS, dir: "locales"}
}

// Load reads every `<locale>.catalog` file and returns locale → raw text.
func (s *FS) Load(ctx context.Context) (map[string]string, error) {
	pattern := path.Join(s.dir, "*"+catalogExt)
	paths, err := fs.Glob(s.fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob catalogs %q: %w", pattern, err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no %s files found in %q", catalogExt, s.dir)
	}

	sources := make(map[string]string, len(paths))
	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, err := fs.ReadFile(s.fsys, p)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", p, err)
		}
		locale := strings.TrimSuffix(path.Base(p), catalogExt)
		sources[locale] = string(data)
	}
	return sources, nil
}
