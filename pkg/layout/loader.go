package layout

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
)

// Loader resolves layout versions to built tables. Tables are cached per
// version for the process lifetime: version content is immutable, so the
// cache is never invalidated. A failed load leaves the cache unpopulated
// so a later request for the same version retries.
type Loader struct {
	dir   string
	mu    sync.RWMutex
	cache map[string]*Tables
}

// NewLoader creates a loader reading version files from dir.
func NewLoader(dir string) *Loader {
	return &Loader{
		dir:   dir,
		cache: make(map[string]*Tables),
	}
}

// Tables returns the built tables for version, loading <dir>/<version>.json
// on first use.
func (l *Loader) Tables(version string) (*Tables, error) {
	l.mu.RLock()
	tables, ok := l.cache[version]
	l.mu.RUnlock()
	if ok {
		return tables, nil
	}

	path := filepath.Join(l.dir, version+".json")
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("layout %q: %w", version, err)
	}
	defer f.Close()

	raw, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("layout %q: %w", version, err)
	}
	tables = Build(raw)

	l.mu.Lock()
	// another caller may have raced the load; first store wins
	if cached, ok := l.cache[version]; ok {
		tables = cached
	} else {
		l.cache[version] = tables
	}
	l.mu.Unlock()

	log.Debugf("Loaded layout %q from %s (%d/%d/%d/%d candidates)",
		version, path, len(tables.Initials), len(tables.Vowels), len(tables.Finals), len(tables.Suffixes))
	return tables, nil
}

// Cached reports whether version is already in the cache.
func (l *Loader) Cached(version string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.cache[version]
	return ok
}
