// Package tokenizer converts a character stream into a lazy sequence of
// token.Token values. The design is lifted directly from parse/lexer.go in
// the teacher repo (robfig/soy): a goroutine runs a chain of state
// functions and emits tokens onto a channel, so Next() blocks until the
// next token is ready rather than requiring the whole input up front.
//
// Unlike the teacher's lexer, which only ever backs up one rune (it tracks
// a single "last rune width"), this tokenizer pre-decodes the input into a
// rune slice and tracks a plain index, so backing up arbitrarily many
// runes — needed for triple-quote and "+=" lookahead — is just arithmetic.
package tokenizer

import (
	"strconv"
	"strings"

	"github.com/chris-martin/hocon-go/origin"
	"github.com/chris-martin/hocon-go/token"
)

const eof = -1

// reserved delimiter characters for unquoted text, per spec.md §4.1.
const reservedChars = "$\"{}[]:=,+#`^?!@*&\\"

// Options configures tokenizer behavior that differs between CONF and JSON
// input, per spec.md §9's note that allowComments is gated by flavor.
type Options struct {
	AllowComments bool
}

// stateFn represents one step of the lexing state machine; it mirrors
// parse/lexer.go's stateFn exactly.
type stateFn func(*Tokenizer) stateFn

// Tokenizer scans one source's worth of runes into tokens.
type Tokenizer struct {
	base  origin.Origin
	runes []rune
	pos   int
	start int
	line  int // 1-based line number of pos

	opts     Options
	items    chan token.Token
	state    stateFn
	lastEmit token.Token
	started  bool
	atEOF    bool // the last next() hit end of input and consumed nothing
}

// New creates a tokenizer over the given input, associated with base for
// diagnostics. The goroutine is started lazily on the first call to Next.
func New(base origin.Origin, input string, opts Options) *Tokenizer {
	return &Tokenizer{
		base:  base,
		runes: []rune(input),
		line:  1,
		opts:  opts,
		items: make(chan token.Token),
		state: lexStart,
	}
}

// Next returns the next token. The sequence always begins with a
// token.Start and ends with a token.End; callers should keep calling Next
// until they observe token.End.
func (z *Tokenizer) Next() token.Token {
	if !z.started {
		z.started = true
		go z.run()
	}
	return <-z.items
}

func (z *Tokenizer) run() {
	for z.state != nil {
		z.state = z.state(z)
	}
	close(z.items)
}

// --- rune cursor -----------------------------------------------------------

func (z *Tokenizer) next() rune {
	if z.pos >= len(z.runes) {
		z.atEOF = true
		return eof
	}
	z.atEOF = false
	r := z.runes[z.pos]
	z.pos++
	if r == '\n' {
		z.line++
	}
	return r
}

func (z *Tokenizer) backup() {
	if z.atEOF {
		z.atEOF = false
		return
	}
	if z.pos == 0 {
		return
	}
	z.pos--
	if z.runes[z.pos] == '\n' {
		z.line--
	}
}

func (z *Tokenizer) backupN(n int) {
	for i := 0; i < n; i++ {
		z.backup()
	}
}

func (z *Tokenizer) peek() rune {
	r := z.next()
	z.backup()
	return r
}

// peekAt looks ahead offset runes past pos without consuming anything;
// offset 0 is the same as peek().
func (z *Tokenizer) peekAt(offset int) rune {
	i := z.pos + offset
	if i < 0 || i >= len(z.runes) {
		return eof
	}
	return z.runes[i]
}

func (z *Tokenizer) accept(valid string) bool {
	if strings.ContainsRune(valid, z.next()) {
		return true
	}
	z.backup()
	return false
}

func (z *Tokenizer) acceptRun(valid string) bool {
	n := 0
	for strings.ContainsRune(valid, z.next()) {
		n++
	}
	z.backup()
	return n > 0
}

func (z *Tokenizer) ignore() {
	z.start = z.pos
}

func (z *Tokenizer) currentText() string {
	return string(z.runes[z.start:z.pos])
}

// originHere builds the origin for a token starting at z.start.
func (z *Tokenizer) originHere() origin.Origin {
	return z.base.WithLineNumber(z.lineAt(z.start))
}

func (z *Tokenizer) lineAt(pos int) int {
	line := 1
	for i := 0; i < pos && i < len(z.runes); i++ {
		if z.runes[i] == '\n' {
			line++
		}
	}
	return line
}

// --- emission ----------------------------------------------------------

func (z *Tokenizer) emit(kind token.Kind) {
	t := token.Simple(kind, z.originHere(), z.currentText())
	z.send(t)
}

func (z *Tokenizer) send(t token.Token) {
	z.lastEmit = t
	z.items <- t
	z.start = z.pos
}

func (z *Tokenizer) problem(message string, offending rune, suggestQuotes bool) {
	z.send(token.Token{
		Kind:                 token.Problem,
		Origin:               z.originHere(),
		Text:                 z.currentText(),
		ProblemMessage:       message,
		ProblemChar:          offending,
		ProblemSuggestQuotes: suggestQuotes,
	})
}

// --- state functions -----------------------------------------------------

func lexStart(z *Tokenizer) stateFn {
	z.send(token.Token{Kind: token.Start, Origin: z.originHere()})
	return lexMain
}

func lexMain(z *Tokenizer) stateFn {
	r := z.next()
	switch {
	case r == eof:
		z.backup()
		z.emit(token.End)
		return nil
	case r == '\n':
		z.emit(token.Newline)
		return lexMain
	case r == ' ' || r == '\t' || r == '\r':
		return lexWhitespace
	case r == '#':
		if z.opts.AllowComments {
			return lexLineComment
		}
		z.problem("unexpected character '#'", r, true)
		return lexMain
	case r == '/':
		if z.peek() == '/' && z.opts.AllowComments {
			z.next()
			return lexLineComment
		}
		z.backup()
		return lexUnquoted
	case r == '"':
		return lexQuoteOpened
	case r == '{':
		z.emit(token.OpenCurly)
		return lexMain
	case r == '}':
		z.emit(token.CloseCurly)
		return lexMain
	case r == '[':
		z.emit(token.OpenSquare)
		return lexMain
	case r == ']':
		z.emit(token.CloseSquare)
		return lexMain
	case r == ',':
		z.emit(token.Comma)
		return lexMain
	case r == ':':
		z.emit(token.Colon)
		return lexMain
	case r == '=':
		z.emit(token.Equals)
		return lexMain
	case r == '+':
		if z.peek() == '=' {
			z.next()
			z.emit(token.PlusEquals)
			return lexMain
		}
		z.problem("'+' not followed by '=' is not a valid token", r, false)
		return lexMain
	case r == '$':
		if z.peek() == '{' {
			z.next()
			return lexSubstitution
		}
		z.problem("'$' not followed by '{' must be quoted", r, true)
		return lexMain
	case r == '-' || isDigit(r):
		z.backup()
		return lexNumber
	case strings.ContainsRune(reservedChars, r):
		z.problem("reserved character '"+string(r)+"' is not allowed outside of quotes", r, true)
		return lexMain
	default:
		z.backup()
		return lexUnquoted
	}
}

// lexWhitespace consumes a run of non-newline whitespace and decides,
// per spec.md §4.1's whitespace policy, whether it becomes an UnquotedText
// token (because it sits between two simple values, enabling later
// concatenation) or is simply discarded.
func lexWhitespace(z *Tokenizer) stateFn {
	z.acceptRun(" \t\r")
	wasAfterSimpleValue := isSimpleValueKind(z.lastEmit.Kind)
	nextStartsSimple := z.peekStartsSimpleValue()
	if wasAfterSimpleValue && nextStartsSimple {
		z.emit(token.UnquotedText)
	} else {
		z.ignore()
	}
	return lexMain
}

func isSimpleValueKind(k token.Kind) bool {
	switch k {
	case token.Bool, token.Null, token.Number, token.String, token.UnquotedText, token.Substitution:
		return true
	default:
		return false
	}
}

// peekStartsSimpleValue reports whether the upcoming (unconsumed) runes
// begin a value, unquoted-text, or substitution token, without consuming
// anything.
func (z *Tokenizer) peekStartsSimpleValue() bool {
	r := z.peekAt(0)
	switch {
	case r == eof || r == '\n':
		return false
	case r == '{' || r == '}' || r == '[' || r == ']' || r == ',' || r == ':' || r == '=':
		return false
	case r == '+' && z.peekAt(1) == '=':
		return false
	case r == '#':
		return !z.opts.AllowComments
	case r == '/':
		return !(z.peekAt(1) == '/' && z.opts.AllowComments)
	case r == ' ' || r == '\t' || r == '\r':
		return false
	default:
		return true
	}
}

func lexLineComment(z *Tokenizer) stateFn {
	for {
		r := z.next()
		if r == eof {
			z.backup()
			z.emit(token.Comment)
			return lexMain
		}
		if r == '\n' {
			z.backup()
			z.emit(token.Comment)
			return lexMain
		}
	}
}

// lexUnquoted scans a run of characters not in the reserved set and not
// whitespace, per spec.md §4.1, then recognizes true/false/null as exact
// matches of the accumulated run.
func lexUnquoted(z *Tokenizer) stateFn {
	for {
		r := z.peekAt(0)
		if r == eof || isUnquotedStop(z, r) {
			break
		}
		z.next()
	}
	word := z.currentText()
	switch word {
	case "true":
		z.sendBool(true)
	case "false":
		z.sendBool(false)
	case "null":
		z.emit(token.Null)
	default:
		if word == "" {
			// Nothing consumed (shouldn't normally happen); avoid looping forever.
			z.next()
			z.problem("unrecognized character", z.currentRune(), true)
			return lexMain
		}
		z.emit(token.UnquotedText)
	}
	return lexMain
}

func (z *Tokenizer) currentRune() rune {
	if z.start < len(z.runes) {
		return z.runes[z.start]
	}
	return eof
}

func isUnquotedStop(z *Tokenizer, r rune) bool {
	if r == ' ' || r == '\t' || r == '\r' || r == '\n' {
		return true
	}
	if r == '#' && z.opts.AllowComments {
		return true
	}
	if r == '/' && z.peekAt(1) == '/' && z.opts.AllowComments {
		return true
	}
	return strings.ContainsRune(reservedChars, r)
}

func (z *Tokenizer) sendBool(v bool) {
	z.send(token.Token{Kind: token.Bool, Origin: z.originHere(), Text: z.currentText(), BoolValue: v})
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

// lexNumber scans a numeric literal per spec.md §4.1: greedily consumes
// [0-9eE+\-.], then validates; on failure it falls back to the broader
// unquoted-text scan instead of raising an error.
func lexNumber(z *Tokenizer) stateFn {
	z.acceptRun("0123456789eE+-.")
	text := z.currentText()
	isDouble := strings.ContainsAny(text, ".eE")
	if isDouble {
		if _, err := strconv.ParseFloat(text, 64); err == nil {
			z.send(token.Token{Kind: token.Number, Origin: z.originHere(), Text: text, NumberText: text, IsDouble: true})
			return lexMain
		}
	} else {
		if _, err := strconv.ParseInt(text, 10, 64); err == nil {
			z.send(token.Token{Kind: token.Number, Origin: z.originHere(), Text: text, NumberText: text, IsDouble: false})
			return lexMain
		}
	}
	// Fall back: re-scan this span as unquoted text using the broader
	// delimiter-based stop set (e.g. "-bar" is a word, not a bad number).
	z.pos = z.start
	return lexUnquoted
}

// lexQuoteOpened is entered with the opening '"' already consumed.
func lexQuoteOpened(z *Tokenizer) stateFn {
	r := z.next()
	if r == '"' {
		if z.peek() == '"' {
			z.next()
			return lexTripleQuoted
		}
		z.sendString("", false)
		return lexMain
	}
	z.backup()
	return lexQuotedContent
}

func (z *Tokenizer) sendString(value string, triple bool) {
	z.send(token.Token{Kind: token.String, Origin: z.originHere(), Text: z.currentText(), StringValue: value, TripleQuoted: triple})
}

func lexQuotedContent(z *Tokenizer) stateFn {
	var b strings.Builder
	for {
		r := z.next()
		switch r {
		case eof:
			z.problem("unterminated quoted string", eof, false)
			return lexMain
		case '"':
			z.sendString(b.String(), false)
			return lexMain
		case '\\':
			esc, ok := readEscape(z)
			if !ok {
				z.problem("invalid escape sequence in quoted string", esc, false)
				return lexMain
			}
			b.WriteRune(esc)
		default:
			b.WriteRune(r)
		}
	}
}

// readEscape consumes the character(s) after a backslash and returns the
// decoded rune, per spec.md §4.1's escape table: \" \\ \/ \b \f \n \r \t
// \uXXXX.
func readEscape(z *Tokenizer) (rune, bool) {
	r := z.next()
	switch r {
	case '"':
		return '"', true
	case '\\':
		return '\\', true
	case '/':
		return '/', true
	case 'b':
		return '\b', true
	case 'f':
		return '\f', true
	case 'n':
		return '\n', true
	case 'r':
		return '\r', true
	case 't':
		return '\t', true
	case 'u':
		var v rune
		for i := 0; i < 4; i++ {
			d := z.next()
			v <<= 4
			switch {
			case d >= '0' && d <= '9':
				v |= d - '0'
			case d >= 'a' && d <= 'f':
				v |= d - 'a' + 10
			case d >= 'A' && d <= 'F':
				v |= d - 'A' + 10
			default:
				return d, false
			}
		}
		return v, true
	default:
		return r, false
	}
}

// lexTripleQuoted is entered with the three opening quotes already
// consumed. It scans raw content (no escapes) until three consecutive
// quotes terminate it; a run of more than three leaves the extras inside
// the string, per spec.md §4.1.
func lexTripleQuoted(z *Tokenizer) stateFn {
	var b strings.Builder
	for {
		r := z.next()
		if r == eof {
			z.problem("unterminated triple-quoted string", eof, false)
			return lexMain
		}
		if r != '"' {
			b.WriteRune(r)
			continue
		}
		count := 1
		for z.peek() == '"' {
			z.next()
			count++
		}
		if count >= 3 {
			for i := 0; i < count-3; i++ {
				b.WriteRune('"')
			}
			z.sendString(b.String(), true)
			return lexMain
		}
		for i := 0; i < count; i++ {
			b.WriteRune('"')
		}
	}
}

// lexSubstitution is entered with "${" already consumed.
func lexSubstitution(z *Tokenizer) stateFn {
	optional := false
	if z.peek() == '?' {
		z.next()
		optional = true
	}
	innerStart := z.pos
	depth := 1
	for depth > 0 {
		r := z.next()
		switch r {
		case eof:
			z.problem("unterminated substitution", eof, false)
			return lexMain
		case '"':
			skipQuotedSpan(z)
		case '{':
			depth++
		case '}':
			depth--
		}
	}
	innerEnd := z.pos - 1 // exclude the closing '}' just consumed
	inner := string(z.runes[innerStart:innerEnd])

	nested := New(z.base, inner, z.opts)
	var path []token.Token
	for {
		t := nested.Next()
		if t.Kind == token.End {
			break
		}
		if t.Kind == token.Start {
			continue
		}
		path = append(path, t)
	}

	z.send(token.Token{
		Kind:                 token.Substitution,
		Origin:               z.originHere(),
		Text:                 z.currentText(),
		SubstitutionOptional: optional,
		SubstitutionPath:     path,
	})
	return lexMain
}

// skipQuotedSpan is called with the opening '"' of a string already
// consumed, purely to keep substitution brace-depth scanning from being
// confused by a '}' that appears inside a quoted string.
func skipQuotedSpan(z *Tokenizer) {
	if z.peek() == '"' && z.peekAt(1) == '"' {
		z.next()
		z.next()
		for {
			r := z.next()
			if r == eof {
				return
			}
			if r == '"' {
				count := 1
				for z.peek() == '"' {
					z.next()
					count++
				}
				if count >= 3 {
					return
				}
			}
		}
	}
	for {
		r := z.next()
		if r == eof || r == '"' {
			return
		}
		if r == '\\' {
			z.next()
		}
	}
}
