// Package path implements the dotted key-path addressing scheme used to
// read and write leaves of a config tree (spec.md §3, §4.4). A Path is a
// non-empty ordered sequence of string keys; this package also renders
// paths back to their dotted, quoted-where-necessary string form.
package path

import (
	"strconv"
	"strings"
)

// Path is an ordered sequence of keys. The zero value is the empty path
// (the root), which several operations (Remainder, Parent) can produce
// even though a freshly-Parsed Path is always non-empty.
type Path struct {
	keys []string
}

// New builds a Path from the given keys in order.
func New(keys ...string) Path {
	out := make([]string, len(keys))
	copy(out, keys)
	return Path{keys: out}
}

// IsEmpty reports whether this path has no keys (the root).
func (p Path) IsEmpty() bool { return len(p.keys) == 0 }

// Len returns the number of keys.
func (p Path) Len() int { return len(p.keys) }

// Keys returns a copy of the key sequence.
func (p Path) Keys() []string {
	out := make([]string, len(p.keys))
	copy(out, p.keys)
	return out
}

// First returns the first key. Panics if the path is empty; callers should
// check IsEmpty first, as the parser and resolver always do.
func (p Path) First() string { return p.keys[0] }

// Last returns the final key.
func (p Path) Last() string { return p.keys[len(p.keys)-1] }

// Remainder returns the path with its first key dropped. May be empty.
func (p Path) Remainder() Path {
	if len(p.keys) <= 1 {
		return Path{}
	}
	return Path{keys: p.keys[1:]}
}

// Parent returns the path with its last key dropped. May be empty.
// For a non-singleton p, Parent().Append(p.Last()) == p (spec.md §3).
func (p Path) Parent() Path {
	if len(p.keys) <= 1 {
		return Path{}
	}
	return Path{keys: p.keys[:len(p.keys)-1]}
}

// Prepend returns a new path with key inserted at the front.
func (p Path) Prepend(key string) Path {
	out := make([]string, 0, len(p.keys)+1)
	out = append(out, key)
	out = append(out, p.keys...)
	return Path{keys: out}
}

// Append returns a new path with key added at the end.
func (p Path) Append(key string) Path {
	out := make([]string, 0, len(p.keys)+1)
	out = append(out, p.keys...)
	out = append(out, key)
	return Path{keys: out}
}

// Concat returns p followed by other.
func (p Path) Concat(other Path) Path {
	out := make([]string, 0, len(p.keys)+len(other.keys))
	out = append(out, p.keys...)
	out = append(out, other.keys...)
	return Path{keys: out}
}

// Sub returns the sub-path [start, end).
func (p Path) Sub(start, end int) Path {
	return Path{keys: append([]string(nil), p.keys[start:end]...)}
}

// StartsWith reports whether p begins with the same keys as prefix.
func (p Path) StartsWith(prefix Path) bool {
	if len(prefix.keys) > len(p.keys) {
		return false
	}
	for i, k := range prefix.keys {
		if p.keys[i] != k {
			return false
		}
	}
	return true
}

// Equal reports whether p and other have identical key sequences.
func (p Path) Equal(other Path) bool {
	if len(p.keys) != len(other.keys) {
		return false
	}
	for i, k := range p.keys {
		if other.keys[i] != k {
			return false
		}
	}
	return true
}

// String renders the path dot-joined, quoting any key that needs it per
// spec.md §3: a key is quoted iff empty, begins with a non-alphabetic
// character, or contains any character outside [A-Za-z0-9_-].
func (p Path) String() string {
	parts := make([]string, len(p.keys))
	for i, k := range p.keys {
		parts[i] = quoteKeyIfNeeded(k)
	}
	return strings.Join(parts, ".")
}

func quoteKeyIfNeeded(key string) string {
	if needsQuote(key) {
		return strconv.Quote(key)
	}
	return key
}

func needsQuote(key string) bool {
	if key == "" {
		return true
	}
	first := rune(key[0])
	if !isAlpha(first) {
		return true
	}
	for _, r := range key {
		if !isSimpleChar(r) {
			return true
		}
	}
	return false
}

func isAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isSimpleChar(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9') || r == '_' || r == '-'
}
