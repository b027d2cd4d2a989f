package parser

import (
	"strings"

	"github.com/chris-martin/hocon-go/origin"
	hpath "github.com/chris-martin/hocon-go/path"
	"github.com/chris-martin/hocon-go/token"
	"github.com/chris-martin/hocon-go/value"
)

// parseRoot implements spec.md §4.2's Root rule: JSON mode requires a
// top-level object or array; CONF mode additionally permits a bare
// top-level object with the braces omitted.
func (t *tree) parseRoot() value.Value {
	tok := t.peekSignificant()
	switch tok.Kind {
	case token.OpenSquare:
		t.next()
		return t.parseArray(tok.Origin)
	case token.OpenCurly:
		t.next()
		return t.parseObjectBody(tok.Origin, token.CloseCurly)
	case token.End:
		return value.EmptyObject(t.base)
	default:
		if t.opts.Syntax == SyntaxJSON {
			t.unexpected(tok, "root value (JSON requires an object or array)")
		}
		return t.parseObjectBody(tok.Origin, token.End)
	}
}

// peekSignificant skips Start, Comment, and leading Newline tokens and
// returns the next token without consuming it.
func (t *tree) peekSignificant() token.Token {
	for {
		tok := t.next()
		if tok.Kind == token.Start || tok.Kind == token.Comment || tok.Kind == token.Newline {
			continue
		}
		t.backup()
		return tok
	}
}

// parseObjectBody parses a sequence of fields, separated by commas
// and/or newlines, until it sees until (CloseCurly for a braced object,
// End for a bare CONF root). The opening brace, if any, has already been
// consumed by the caller. In JSON mode (spec.md §6, "strict subset
// rejects duplicate keys, trailing commas, comments"), seen tracks every
// key already assigned at this object's level so a repeat raises a Parse
// error instead of silently overwriting; CONF mode leaves seen nil and
// skips the check, since CONF's last-field-wins and dotted-key-merge
// idioms depend on revisiting the same key.
func (t *tree) parseObjectBody(o origin.Origin, until token.Kind) *value.Object {
	obj := value.EmptyObject(o)
	var seen map[string]bool
	if t.opts.Syntax == SyntaxJSON {
		seen = map[string]bool{}
	}
	for {
		tok := t.nextFieldStart()
		if tok.Kind == until {
			return obj
		}
		if tok.Kind == token.End && until == token.CloseCurly {
			t.unexpected(tok, "object body (missing '}')")
		}
		t.backup()
		obj = t.parseField(obj, seen)
	}
}

// nextFieldStart consumes separators (comma, newline, comment) and
// returns the first token that begins a field/element or terminates the
// enclosing object or array. In JSON mode, a comma immediately followed
// by another comma or by the terminator is a trailing/empty comma, which
// strict JSON rejects (spec.md §6); CONF mode tolerates it, matching the
// grammar's general comma-or-newline separator leniency.
func (t *tree) nextFieldStart() token.Token {
	sawComma := false
	for {
		tok := t.next()
		switch tok.Kind {
		case token.Comma:
			if t.opts.Syntax == SyntaxJSON && sawComma {
				t.errorAt(tok.Origin, "duplicate ',' is not allowed in JSON mode")
			}
			sawComma = true
			continue
		case token.Newline, token.Comment, token.Start:
			continue
		default:
			if t.opts.Syntax == SyntaxJSON && sawComma &&
				(tok.Kind == token.CloseCurly || tok.Kind == token.CloseSquare) {
				t.errorAt(tok.Origin, "trailing ',' is not allowed in JSON mode")
			}
			return tok
		}
	}
}

// parseField parses one `key (separator) value` item, including the
// `include` directive and `+=` desugaring, and folds it into obj (spec.md
// §4.2, Object body). seen is non-nil only in JSON mode, where a repeated
// key is rejected rather than merged/overwritten.
func (t *tree) parseField(obj *value.Object, seen map[string]bool) *value.Object {
	tok := t.peek()
	if tok.Kind == token.UnquotedText && tok.Text == "include" {
		t.next()
		return t.parseInclude(obj)
	}

	keyOrigin := tok.Origin
	p := t.parseKeyPath()

	if seen != nil {
		key := p.String()
		if seen[key] {
			t.errorAt(keyOrigin, "duplicate key %q is not allowed in JSON mode", key)
		}
		seen[key] = true
	}

	sep := t.next()
	switch sep.Kind {
	case token.Equals, token.Colon:
		v := t.parseConcatenation()
		return obj.InsertPath(p.Keys(), v)
	case token.PlusEquals:
		// `key += value` desugars to `key = ${?key} [ value ]`
		// (spec.md §4.2): append is modeled directly as a self-referential
		// optional substitution folded in front of a singleton list, so
		// the resolver's existing substitution and concatenation handling
		// does the actual appending.
		v := t.parseConcatenation()
		sub := value.NewSubstitution(keyOrigin, p, true)
		list := value.NewList(keyOrigin, []value.Value{v})
		appended := value.NewConcatenation(keyOrigin, []value.Value{sub, list}, value.KindList)
		return obj.InsertPath(p.Keys(), appended)
	case token.OpenCurly:
		// `key { ... }` omits the separator before an object value.
		t.backup()
		v := t.parseConcatenation()
		return obj.InsertPath(p.Keys(), v)
	default:
		t.unexpected(sep, "field separator ('=', ':', '+=', or object)")
		return obj
	}
}

// parseKeyPath reads a dotted key expression: a run of adjacent
// String/UnquotedText/Number/Bool/Null tokens (bare words, quoted
// segments, or a mix, per spec.md §2's "funky-character forms") up to
// the field separator, and parses it as a path expression.
func (t *tree) parseKeyPath() hpath.Path {
	var b strings.Builder
	start := t.peek().Origin
	for {
		tok := t.peek()
		switch tok.Kind {
		case token.String, token.UnquotedText, token.Number, token.Bool, token.Null:
			t.next()
			b.WriteString(tok.Text)
		default:
			goto done
		}
	}
done:
	if b.Len() == 0 {
		t.unexpected(t.peek(), "object key")
	}
	p, err := hpath.Parse(b.String())
	if err != nil {
		t.errorAt(start, "invalid key: %s", err)
	}
	return p
}

// parseConcatenation implements spec.md §4.2/§4.3's Concatenation rule: a
// run of adjacent simple values (no intervening comma/newline) combine
// according to their kinds.
func (t *tree) parseConcatenation() value.Value {
	var pieces []value.Value
	origin0 := t.peek().Origin
	for t.startsValue(t.peek()) {
		pieces = append(pieces, t.parseSimpleValue())
	}
	if len(pieces) == 0 {
		t.unexpected(t.peek(), "value")
	}
	return combineConcatenation(pieces, origin0)
}

func (t *tree) startsValue(tok token.Token) bool {
	switch tok.Kind {
	case token.OpenCurly, token.OpenSquare, token.String, token.Number,
		token.Bool, token.Null, token.UnquotedText, token.Substitution:
		return true
	default:
		return false
	}
}

// parseSimpleValue consumes exactly one value-position token (or a full
// nested object/array) and returns its value.Value.
func (t *tree) parseSimpleValue() value.Value {
	tok := t.next()
	switch tok.Kind {
	case token.OpenCurly:
		return t.parseObjectBody(tok.Origin, token.CloseCurly)
	case token.OpenSquare:
		return t.parseArray(tok.Origin)
	case token.String:
		return value.NewString(tok.Origin, tok.StringValue)
	case token.Number:
		n, err := value.NewNumber(tok.Origin, tok.NumberText, tok.IsDouble)
		if err != nil {
			t.errorAt(tok.Origin, "invalid number literal %q: %s", tok.Text, err)
		}
		return n
	case token.Bool:
		return value.NewBool(tok.Origin, tok.BoolValue)
	case token.Null:
		return value.NewNull(tok.Origin)
	case token.UnquotedText:
		return value.NewString(tok.Origin, tok.Text)
	case token.Substitution:
		return t.parseSubstitutionToken(tok)
	default:
		t.unexpected(tok, "value")
		return nil
	}
}

// parseSubstitutionToken builds a Substitution node from a already-lexed
// ${...} token, whose inner path expression was captured as its own
// token run by the tokenizer (spec.md §4.1).
func (t *tree) parseSubstitutionToken(tok token.Token) value.Value {
	var b strings.Builder
	for _, inner := range tok.SubstitutionPath {
		switch inner.Kind {
		case token.Newline, token.Comment, token.Start, token.End:
			continue
		case token.Problem:
			t.errorAt(inner.Origin, "%s", inner.ProblemMessage)
		default:
			b.WriteString(inner.Text)
		}
	}
	p, err := hpath.Parse(b.String())
	if err != nil {
		t.errorAt(tok.Origin, "invalid substitution path %q: %s", b.String(), err)
	}
	return value.NewSubstitution(tok.Origin, p, tok.SubstitutionOptional)
}

// parseArray implements the Array value rule: elements separated by
// commas and/or newlines, each itself a concatenation.
func (t *tree) parseArray(o origin.Origin) *value.List {
	var items []value.Value
	for {
		tok := t.nextFieldStart()
		if tok.Kind == token.CloseSquare {
			return value.NewList(o, items)
		}
		if tok.Kind == token.End {
			t.unexpected(tok, "array (missing ']')")
		}
		t.backup()
		items = append(items, t.parseConcatenation())
	}
}

// combineConcatenation implements spec.md §4.2's concatenation kind
// table. A lone piece needs no combining.
func combineConcatenation(pieces []value.Value, o origin.Origin) value.Value {
	if len(pieces) == 1 {
		return pieces[0]
	}

	hasDeferred := false
	sawScalar, sawObject, sawList := false, false, false
	for _, p := range pieces {
		if _, ok := p.(value.Unmergeable); ok {
			hasDeferred = true
			continue
		}
		switch p.(type) {
		case *value.Object:
			sawObject = true
		case *value.List:
			sawList = true
		default:
			sawScalar = true
		}
	}

	if sawScalar && (sawObject || sawList) {
		panic(origin.Newf(origin.Parse, o, "cannot concatenate a scalar with an object or list"))
	}
	if sawObject && sawList {
		panic(origin.Newf(origin.Parse, o, "cannot concatenate an object with a list"))
	}

	concatKind := value.KindString
	switch {
	case sawObject:
		concatKind = value.KindObject
	case sawList:
		concatKind = value.KindList
	}

	if hasDeferred {
		return value.NewConcatenation(o, pieces, concatKind)
	}

	switch concatKind {
	case value.KindObject:
		return foldObjects(pieces)
	case value.KindList:
		return foldLists(o, pieces)
	default:
		return foldScalarsToString(o, pieces)
	}
}

func foldObjects(pieces []value.Value) value.Value {
	acc := pieces[0]
	for _, p := range pieces[1:] {
		acc = value.WithFallback(p, acc)
	}
	return acc
}

func foldLists(o origin.Origin, pieces []value.Value) value.Value {
	var items []value.Value
	for _, p := range pieces {
		items = append(items, p.(*value.List).Items...)
	}
	return value.NewList(o, items)
}

func foldScalarsToString(o origin.Origin, pieces []value.Value) value.Value {
	var b strings.Builder
	for _, p := range pieces {
		b.WriteString(value.ScalarText(p))
	}
	return value.NewString(o, b.String())
}
