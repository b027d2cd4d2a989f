package parser

import (
	"strings"

	"github.com/chris-martin/hocon-go/token"
	"github.com/chris-martin/hocon-go/value"
)

// parseInclude implements spec.md §4.2's Include rule: `include
// "quoted-string"` or `include file("…")`/`url("…")`/`classpath("…")`.
// The word "include" has already been consumed by the caller. The
// resulting object is merged onto obj as a fallback: fields already set
// earlier in this same object body win over what the include supplies.
func (t *tree) parseInclude(obj *value.Object) *value.Object {
	first := t.nextNonGlue()

	var kind string
	var pathTok token.Token

	switch {
	case first.Kind == token.String:
		kind = "heuristic"
		pathTok = first
	case first.Kind == token.UnquotedText && strings.HasSuffix(first.Text, "("):
		kind = strings.TrimSuffix(first.Text, "(")
		if kind != "file" && kind != "url" && kind != "classpath" {
			t.unexpected(first, "include target")
		}
		pathTok = t.expect(token.String, "include "+kind+"(...)")
		closeParen := t.nextNonGlue()
		if closeParen.Kind != token.UnquotedText || closeParen.Text != ")" {
			t.unexpected(closeParen, "include "+kind+"(...) closing ')'")
		}
	default:
		t.unexpected(first, "include target (a quoted string, or file(...)/url(...)/classpath(...))")
		return obj
	}

	if t.opts.Includer == nil {
		if t.opts.AllowMissing {
			return obj
		}
		t.errorAt(first.Origin, "include %q: no includer configured", pathTok.StringValue)
		return obj
	}

	ctx := IncludeContext{OriginDescription: t.opts.OriginDescription}
	var included value.Value
	var err error
	switch kind {
	case "file":
		included, err = t.opts.Includer.IncludeFile(ctx, pathTok.StringValue)
	case "url":
		included, err = t.opts.Includer.IncludeURL(ctx, pathTok.StringValue)
	case "classpath":
		included, err = t.opts.Includer.IncludeClasspath(ctx, pathTok.StringValue)
	default:
		included, err = t.opts.Includer.Include(ctx, pathTok.StringValue)
	}
	if err != nil {
		if t.opts.AllowMissing {
			return obj
		}
		t.errorAt(first.Origin, "include %q: %s", pathTok.StringValue, err)
	}
	if included == nil {
		return obj
	}
	includedObj, ok := included.(*value.Object)
	if !ok {
		t.errorAt(first.Origin, "include %q: included content must be an object", pathTok.StringValue)
	}
	return value.WithFallback(obj, includedObj).(*value.Object)
}

// nextNonGlue returns the next token that is not pure-whitespace glue
// (the UnquotedText the tokenizer emits between two simple values, per
// spec.md §4.1's whitespace policy).
func (t *tree) nextNonGlue() token.Token {
	for {
		tok := t.next()
		if tok.Kind == token.UnquotedText && strings.TrimSpace(tok.Text) == "" {
			continue
		}
		return tok
	}
}
