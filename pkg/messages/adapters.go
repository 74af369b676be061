package messages

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/rubenmartin/motech/pkg/locale"
)

// DefaultBaseName is the bundle file prefix used when none is given.
const DefaultBaseName = "messages"

// Root is the bundle key for messages that apply to every locale.
const Root = ""

// Bundles maps a locale identifier (locale.Locale.String, or Root) to its
// messages.
type Bundles map[string]map[string]string

// Adapter loads bundles from some storage.
type Adapter interface {
	Load(ctx context.Context) (Bundles, error)
}

// MapAdapter serves bundles kept in memory.
type MapAdapter struct {
	Data Bundles
}

func (a *MapAdapter) Load(ctx context.Context) (Bundles, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	if a.Data == nil {
		return Bundles{}, nil
	}
	return a.Data, nil
}

// FSAdapter loads bundle files from a directory of an fs.FS, such as an
// embed.FS or os.DirFS. Files with unknown extensions or other base names
// are ignored.
type FSAdapter struct {
	fsys fs.FS
	dir  string
	base string
}

// NewFSAdapter creates an adapter reading dir inside fsys. An empty dir means
// the root of fsys and an empty base means DefaultBaseName.
func NewFSAdapter(fsys fs.FS, dir, base string) *FSAdapter {
	if dir == "" {
		dir = "."
	}
	if base == "" {
		base = DefaultBaseName
	}
	return &FSAdapter{fsys: fsys, dir: dir, base: base}
}

// NewDirectoryAdapter creates an FSAdapter over a directory on disk.
func NewDirectoryAdapter(dir, base string) (*FSAdapter, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, errors.Join(ErrReadBundle, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, dir)
	}
	return NewFSAdapter(os.DirFS(dir), ".", base), nil
}

func (a *FSAdapter) Load(ctx context.Context) (Bundles, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	entries, err := fs.ReadDir(a.fsys, a.dir)
	if err != nil {
		return nil, errors.Join(ErrReadBundle, err)
	}

	bundles := make(Bundles)
	sources := make(map[string]string)

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if err := checkContext(ctx); err != nil {
			return nil, err
		}

		name := entry.Name()
		parser := NewParserForFile(name)
		if parser == nil {
			continue
		}
		id, ok := bundleID(name, a.base)
		if !ok {
			continue
		}

		if prev, exists := sources[id]; exists {
			return nil, fmt.Errorf("%w: %q in %s and %s", ErrDuplicateBundle, id, prev, name)
		}

		content, err := fs.ReadFile(a.fsys, path.Join(a.dir, name))
		if err != nil {
			return nil, errors.Join(ErrReadBundle, err)
		}

		msgs, err := parser.Parse(ctx, content)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}

		bundles[id] = msgs
		sources[id] = name
	}

	if len(bundles) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoBundles, a.dir)
	}
	return bundles, nil
}

// bundleID derives the bundle key from a file name: "messages.yaml" is Root,
// "messages_pl_PL.yaml" is "pl_PL".
func bundleID(filename, base string) (string, bool) {
	name := strings.TrimSuffix(filename, path.Ext(filename))
	if name == base {
		return Root, true
	}

	rest, ok := strings.CutPrefix(name, base+"_")
	if !ok || rest == "" {
		return "", false
	}

	l := locale.Parse(rest)
	if l.Language == "" {
		return "", false
	}
	return l.Canonical().String(), true
}
