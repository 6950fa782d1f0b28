// Package anchor turns heading text into unique URL fragment identifiers.
package anchor

import (
	"strconv"
	"strings"
	"unicode"
)

// Sanitize converts heading text into an anchor fragment.
//
// The text is lowercased first, whitespace then becomes '-', and finally any
// rune other than ASCII letters, digits, '-' and '_' is dropped. Applying
// Sanitize to its own output returns the same string.
func Sanitize(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		if unicode.IsSpace(r) {
			b.WriteByte('-')
			continue
		}
		if allowed(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func allowed(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		return true
	case r == '-' || r == '_':
		return true
	}
	return false
}

// Registry hands out document-unique identifiers.
//
// A Registry belongs to a single conversion; the zero value is not usable,
// call NewRegistry.
type Registry struct {
	counts map[string]int
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{counts: make(map[string]int)}
}

// Allocate returns base the first time it is seen and base-N afterwards,
// where N counts the repeats of base starting at 1.
//
// Generated ids are not registered as bases of their own: a later heading
// whose text sanitizes to "foo-1" is handed "foo-1" even if that id was
// already produced for the second "foo".
func (r *Registry) Allocate(base string) string {
	count, seen := r.counts[base]
	if !seen {
		r.counts[base] = 0
		return base
	}
	count++
	r.counts[base] = count
	return base + "-" + strconv.Itoa(count)
}

// Reserve marks id as taken without allocating a suffix. It is a no-op when
// id has already been seen.
func (r *Registry) Reserve(id string) {
	if _, seen := r.counts[id]; !seen {
		r.counts[id] = 0
	}
}

// Len returns the number of distinct bases seen so far.
func (r *Registry) Len() int {
	return len(r.counts)
}
