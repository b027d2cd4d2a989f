// Package token defines the lexical tokens produced by the tokenizer and
// consumed by the parser. It mirrors parse/lexer.go's item/itemType from
// the teacher (a type tag plus a payload, with a debug String() method),
// narrowed to HOCON's token set per spec.md §4.1.
package token

import (
	"fmt"

	"github.com/chris-martin/hocon-go/origin"
)

// Kind identifies the lexical category of a Token.
type Kind int

const (
	Invalid Kind = iota
	Start
	End
	Comma
	Equals
	Colon
	OpenCurly
	CloseCurly
	OpenSquare
	CloseSquare
	Newline
	PlusEquals

	// Value literals.
	Bool
	Null
	Number
	String

	UnquotedText // bare word, or whitespace between two simple values
	Substitution // ${path} or ${?path}
	Problem      // a lexical error, deferred as a token
	Comment      // # or // line comment (CONF syntax only)
)

func (k Kind) String() string {
	switch k {
	case Start:
		return "START"
	case End:
		return "END"
	case Comma:
		return ","
	case Equals:
		return "="
	case Colon:
		return ":"
	case OpenCurly:
		return "{"
	case CloseCurly:
		return "}"
	case OpenSquare:
		return "["
	case CloseSquare:
		return "]"
	case Newline:
		return "\\n"
	case PlusEquals:
		return "+="
	case Bool:
		return "<bool>"
	case Null:
		return "<null>"
	case Number:
		return "<number>"
	case String:
		return "<string>"
	case UnquotedText:
		return "<unquoted-text>"
	case Substitution:
		return "<substitution>"
	case Problem:
		return "<problem>"
	case Comment:
		return "<comment>"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Token is one lexical unit. Exactly which fields are meaningful depends on
// Kind; see the field comments below.
type Token struct {
	Kind   Kind
	Origin origin.Origin
	Text   string // the raw source text this token spans

	BoolValue bool
	// NumberText is the literal exactly as written, preserved so a value
	// too large for int64 can still render identically (spec.md §3, Number).
	NumberText string
	IsDouble   bool // true if NumberText contains '.', 'e', or 'E'

	StringValue    string // unescaped content, for Kind == String
	TripleQuoted   bool

	// Substitution payload.
	SubstitutionOptional bool
	SubstitutionPath     []Token // the inner token run between ${ and }

	// Problem payload.
	ProblemMessage       string
	ProblemChar          rune
	ProblemSuggestQuotes bool
}

func (t Token) String() string {
	switch t.Kind {
	case Problem:
		return fmt.Sprintf("<problem: %s>", t.ProblemMessage)
	case String:
		if len(t.StringValue) > 10 {
			return fmt.Sprintf("%.10q...", t.StringValue)
		}
		return fmt.Sprintf("%q", t.StringValue)
	default:
		if len(t.Text) > 10 {
			return fmt.Sprintf("%s(%.10q...)", t.Kind, t.Text)
		}
		return fmt.Sprintf("%s(%q)", t.Kind, t.Text)
	}
}

// Simple builds a token with no payload beyond its kind, origin, and text —
// used for punctuation and structural tokens.
func Simple(kind Kind, o origin.Origin, text string) Token {
	return Token{Kind: kind, Origin: o, Text: text}
}
