// Package template implements the first-party placeholder path: stored
// designs carrying {{TOKEN}} markers and well-known element ids are rendered
// directly against a hotel record, no source page involved.
package template

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"hotel_builder/internal/domain"
)

// DefaultName is always listed and always resolvable, even with an empty
// designs directory.
const DefaultName = "default"

// FSStore serves templates from a designs directory. A template is either
// <dir>/<name>.html or <dir>/<name>/index.html.
type FSStore struct {
	dir string
}

func NewFSStore(dir string) *FSStore {
	return &FSStore{dir: dir}
}

func (s *FSStore) Get(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || name == DefaultName {
		return defaultTemplate, nil
	}
	if name != filepath.Base(name) || strings.Contains(name, "..") {
		return "", fmt.Errorf("%w: invalid template name %q", domain.ErrNotFound, name)
	}
	for _, p := range []string{
		filepath.Join(s.dir, name+".html"),
		filepath.Join(s.dir, name, "index.html"),
	} {
		if b, err := os.ReadFile(p); err == nil {
			return string(b), nil
		}
	}
	return "", fmt.Errorf("%w: template %q", domain.ErrNotFound, name)
}

func (s *FSStore) List() ([]string, error) {
	names := map[string]bool{DefaultName: true}
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{DefaultName}, nil
		}
		return nil, err
	}
	for _, e := range entries {
		if e.IsDir() {
			if _, err := os.Stat(filepath.Join(s.dir, e.Name(), "index.html")); err == nil {
				names[e.Name()] = true
			}
			continue
		}
		if strings.HasSuffix(e.Name(), ".html") {
			names[strings.TrimSuffix(e.Name(), ".html")] = true
		}
	}
	out := make([]string, 0, len(names))
	for n := range names {
		out = append(out, n)
	}
	sort.Strings(out)
	return out, nil
}
