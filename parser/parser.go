// Package parser consumes a token stream from the tokenizer and builds a
// value.Value tree, including deferred nodes for constructs that cannot
// be evaluated until the full tree is known (spec.md §4.2). Its control
// structure — a two-token-lookahead tree walking a token buffer, with
// next/backup/peek/expect/unexpected/errorf and a panic/recover error
// boundary — is lifted directly from parse/parse.go in the teacher.
package parser

import (
	"fmt"
	"runtime"

	"github.com/chris-martin/hocon-go/origin"
	"github.com/chris-martin/hocon-go/token"
	"github.com/chris-martin/hocon-go/tokenizer"
	"github.com/chris-martin/hocon-go/value"
)

// Syntax selects which grammar dialect governs root-level shape and
// comment handling (spec.md §6).
type Syntax int

const (
	SyntaxConf Syntax = iota
	SyntaxJSON
)

// Includer is the capability the parser delegates `include` directives
// to (spec.md §1, §6): the core only consumes this interface, never
// implements file/URL/classpath loading policy itself.
type Includer interface {
	// WithFallback must return the receiver unchanged if other is already
	// chained onto it, per spec.md §6.
	WithFallback(other Includer) Includer
	Include(ctx IncludeContext, what string) (value.Value, error)
	IncludeFile(ctx IncludeContext, path string) (value.Value, error)
	IncludeURL(ctx IncludeContext, url string) (value.Value, error)
	IncludeClasspath(ctx IncludeContext, path string) (value.Value, error)
}

// IncludeContext carries what an Includer needs to resolve a relative
// include path and to build origins for whatever it loads.
type IncludeContext struct {
	// OriginDescription of the file doing the including, used to build a
	// new origin for the included material and, for file includers, as a
	// base directory for relative paths.
	OriginDescription string
}

// Options configures a single parse call (spec.md §6, Parse options).
type Options struct {
	Syntax            Syntax
	OriginDescription string
	AllowMissing      bool
	Includer          Includer
}

// WithOriginDescription returns a copy of o with a new origin description.
func (o Options) WithOriginDescription(d string) Options {
	o.OriginDescription = d
	return o
}

// WithIncluder returns a copy of o with a new includer.
func (o Options) WithIncluder(inc Includer) Options {
	o.Includer = inc
	return o
}

// Parse tokenizes and parses input into a value tree, per spec.md §4.2.
// The root origin description comes from opts.OriginDescription.
func Parse(input string, opts Options) (result value.Value, err error) {
	base := origin.Simple(opts.OriginDescription)
	tz := tokenizer.New(base, input, tokenizer.Options{AllowComments: opts.Syntax != SyntaxJSON})
	t := &tree{lex: tz, opts: opts, base: base}
	defer t.recover(&err)
	result = t.parseRoot()
	return result, nil
}

// tree is the parse state for a single input, mirroring the teacher's
// tree: a token source plus a small lookahead buffer and panic-based
// error propagation.
type tree struct {
	lex       *tokenizer.Tokenizer
	token     [2]token.Token
	peekCount int
	opts      Options
	base      origin.Origin
}

func (t *tree) next() token.Token {
	if t.peekCount > 0 {
		t.peekCount--
	} else {
		t.token[0] = t.lex.Next()
	}
	return t.token[t.peekCount]
}

// backup un-consumes the most recently returned token.
func (t *tree) backup() {
	t.peekCount++
}

// backup2 un-consumes two tokens; t1 is the token that was current before
// the most recent next() call.
func (t *tree) backup2(t1 token.Token) {
	t.token[1] = t1
	t.peekCount = 2
}

func (t *tree) peek() token.Token {
	if t.peekCount > 0 {
		return t.token[t.peekCount-1]
	}
	t.peekCount = 1
	t.token[0] = t.lex.Next()
	return t.token[0]
}

// nextSignificant skips Start, Newline, and Comment tokens, returning the
// first token that carries grammar significance. Callers that care about
// newlines as statement separators use next()/peek() directly instead.
func (t *tree) nextSignificant() token.Token {
	for {
		tok := t.next()
		switch tok.Kind {
		case token.Start, token.Newline, token.Comment:
			continue
		default:
			return tok
		}
	}
}

func (t *tree) expect(k token.Kind, context string) token.Token {
	tok := t.next()
	if tok.Kind != k {
		t.unexpected(tok, fmt.Sprintf("%s (expected %v)", context, k))
	}
	return tok
}

func (t *tree) unexpected(tok token.Token, context string) {
	if tok.Kind == token.Problem {
		t.errorAt(tok.Origin, "%s", tok.ProblemMessage)
	}
	t.errorAt(tok.Origin, "unexpected %v in %s", tok, context)
}

// errorf raises a Parse error anchored at the current token's origin.
func (t *tree) errorf(format string, args ...interface{}) {
	tok := t.token[0]
	if t.peekCount > 0 {
		tok = t.token[t.peekCount-1]
	}
	t.errorAt(tok.Origin, format, args...)
}

func (t *tree) errorAt(o origin.Origin, format string, args ...interface{}) {
	panic(origin.Newf(origin.Parse, o, format, args...))
}

// recover turns a panicking *origin.Error into a returned error, letting
// genuine Go runtime errors (nil pointer dereferences, etc.) keep
// propagating as bugs rather than being swallowed as parse failures.
func (t *tree) recover(errp *error) {
	e := recover()
	if e == nil {
		return
	}
	if _, ok := e.(runtime.Error); ok {
		panic(e)
	}
	if perr, ok := e.(*origin.Error); ok {
		*errp = perr
		return
	}
	panic(e)
}
