package path

import (
	"fmt"
	"strings"
)

// Parse reads a dot-separated path expression, with quoted segments using
// JSON string syntax, per spec.md §4.4. It is a small single-pass scanner
// in its own right rather than a reuse of the tokenizer package: path
// expressions use '.' as a structural separator that the general tokenizer
// treats as ordinary unquoted text, so splitting on top-level dots (while
// treating quoted runs as atomic) needs its own pass. The one-rune
// peek/next cursor below follows parse/parse.go's next/peek pattern in the
// teacher, narrowed to this tiny grammar; it never backs up.
func Parse(expr string) (Path, error) {
	s := &scanner{runes: []rune(expr)}
	var keys []string
	for {
		key, err := s.readSegment()
		if err != nil {
			return Path{}, err
		}
		keys = append(keys, key)
		if s.atEnd() {
			break
		}
		if s.peek() != '.' {
			return Path{}, fmt.Errorf("path %q: expected '.' or end, found %q", expr, string(s.peek()))
		}
		s.next() // consume '.'
		if s.atEnd() {
			// Trailing dot leaves a final empty key, matching the quoting
			// rule's allowance for empty keys.
			keys = append(keys, "")
			break
		}
	}
	if len(keys) == 0 {
		return Path{}, fmt.Errorf("path %q: empty path expression", expr)
	}
	return Path{keys: keys}, nil
}

type scanner struct {
	runes []rune
	pos   int
}

func (s *scanner) atEnd() bool { return s.pos >= len(s.runes) }

func (s *scanner) peek() rune {
	if s.atEnd() {
		return 0
	}
	return s.runes[s.pos]
}

func (s *scanner) next() rune {
	r := s.peek()
	s.pos++
	return r
}

// readSegment reads one key: either a JSON-quoted string or a run of
// unquoted characters up to the next top-level '.'.
func (s *scanner) readSegment() (string, error) {
	if s.atEnd() {
		return "", nil
	}
	if s.peek() == '"' {
		return s.readQuotedSegment()
	}
	var b strings.Builder
	for !s.atEnd() && s.peek() != '.' {
		b.WriteRune(s.next())
	}
	return b.String(), nil
}

func (s *scanner) readQuotedSegment() (string, error) {
	s.next() // consume opening quote
	var b strings.Builder
	for {
		if s.atEnd() {
			return "", fmt.Errorf("unterminated quoted path segment")
		}
		r := s.next()
		if r == '"' {
			return b.String(), nil
		}
		if r == '\\' {
			if s.atEnd() {
				return "", fmt.Errorf("unterminated escape in quoted path segment")
			}
			esc := s.next()
			switch esc {
			case '"':
				b.WriteRune('"')
			case '\\':
				b.WriteRune('\\')
			case '/':
				b.WriteRune('/')
			case 'b':
				b.WriteRune('\b')
			case 'f':
				b.WriteRune('\f')
			case 'n':
				b.WriteRune('\n')
			case 'r':
				b.WriteRune('\r')
			case 't':
				b.WriteRune('\t')
			case 'u':
				var v rune
				for i := 0; i < 4; i++ {
					if s.atEnd() {
						return "", fmt.Errorf("unterminated unicode escape")
					}
					d := s.next()
					v <<= 4
					switch {
					case d >= '0' && d <= '9':
						v |= d - '0'
					case d >= 'a' && d <= 'f':
						v |= d - 'a' + 10
					case d >= 'A' && d <= 'F':
						v |= d - 'A' + 10
					default:
						return "", fmt.Errorf("invalid unicode escape digit %q", string(d))
					}
				}
				b.WriteRune(v)
			default:
				return "", fmt.Errorf("invalid escape \\%c in quoted path segment", esc)
			}
			continue
		}
		b.WriteRune(r)
	}
}
