package ignore

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultPatterns covers caches, VCS directories, common virtualenv names,
// compiled bytecode and OS metadata files.
func DefaultPatterns() []string {
	return []string{
		"**/__pycache__/",
		"**/.git/",
		"**/.hg/",
		"**/.svn/",
		"**/.tox/",
		"**/.mypy_cache/",
		"**/.pytest_cache/",
		"**/venv/",
		"**/.venv/",
		"**/env/",
		"**/node_modules/",
		"*.pyc",
		"*.pyo",
		".DS_Store",
	}
}

// Matcher decides whether a path should be skipped during traversal.
// Patterns use doublestar glob syntax with "/" separators. A pattern ending
// in a separator matches the directory and everything beneath it.
type Matcher struct {
	patterns []string
}

func NewMatcher(patterns ...string) *Matcher {
	normalized := make([]string, 0, len(patterns))
	for _, p := range patterns {
		p = filepath.ToSlash(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		if strings.HasSuffix(p, "/") {
			p += "**"
		}
		normalized = append(normalized, p)
	}
	return &Matcher{patterns: normalized}
}

// Match reports whether relPath, or any ancestor of it, matches one of the
// patterns. Slash-less patterns are also tried against each path segment so
// that "*.pyc" style patterns apply at any depth. Unmatched input returns
// false; there are no error conditions.
func (m *Matcher) Match(relPath string) bool {
	rel := path.Clean(filepath.ToSlash(relPath))
	if rel == "." || rel == "/" || rel == "" {
		return false
	}

	for _, pat := range m.patterns {
		bare := !strings.Contains(pat, "/")
		dirPat, isDir := strings.CutSuffix(pat, "/**")

		for p := rel; p != "." && p != "/"; p = path.Dir(p) {
			if ok, _ := doublestar.Match(pat, p); ok {
				return true
			}
			// a directory pattern also excludes the directory itself
			if isDir {
				if ok, _ := doublestar.Match(dirPat, p); ok {
					return true
				}
			}
			if bare {
				if ok, _ := doublestar.Match(pat, path.Base(p)); ok {
					return true
				}
			}
		}
	}
	return false
}

// Patterns returns the normalized pattern list.
func (m *Matcher) Patterns() []string {
	return m.patterns
}
