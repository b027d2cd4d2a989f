package tokenizer_test

import (
	"testing"

	"github.com/chris-martin/hocon-go/origin"
	"github.com/chris-martin/hocon-go/token"
	"github.com/chris-martin/hocon-go/tokenizer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenKinds(t *testing.T, input string, opts tokenizer.Options) []token.Kind {
	t.Helper()
	tz := tokenizer.New(origin.Simple("test"), input, opts)
	var kinds []token.Kind
	for {
		tok := tz.Next()
		kinds = append(kinds, tok.Kind)
		if tok.Kind == token.End {
			return kinds
		}
	}
}

func TestTokenizer_Punctuation(t *testing.T) {
	kinds := tokenKinds(t, "{}[]:,=", tokenizer.Options{AllowComments: true})
	assert.Equal(t, []token.Kind{
		token.Start, token.OpenCurly, token.CloseCurly, token.OpenSquare,
		token.CloseSquare, token.Colon, token.Comma, token.Equals, token.End,
	}, kinds)
}

func TestTokenizer_PlusEquals(t *testing.T) {
	kinds := tokenKinds(t, "+=", tokenizer.Options{AllowComments: true})
	assert.Equal(t, []token.Kind{token.Start, token.PlusEquals, token.End}, kinds)
}

func TestTokenizer_BooleansAndNull(t *testing.T) {
	tz := tokenizer.New(origin.Simple("t"), "true false null", tokenizer.Options{AllowComments: true})
	var got []token.Kind
	for {
		tok := tz.Next()
		if tok.Kind == token.Start || tok.Kind == token.UnquotedText {
			continue
		}
		got = append(got, tok.Kind)
		if tok.Kind == token.End {
			break
		}
	}
	assert.Equal(t, []token.Kind{token.Bool, token.Bool, token.Null, token.End}, got)
}

func TestTokenizer_NumberIntVsDouble(t *testing.T) {
	tz := tokenizer.New(origin.Simple("t"), "42 3.14", tokenizer.Options{AllowComments: true})
	tz.Next() // START
	n1 := tz.Next()
	require.Equal(t, token.Number, n1.Kind)
	assert.False(t, n1.IsDouble)
	tz.Next() // whitespace glue
	n2 := tz.Next()
	require.Equal(t, token.Number, n2.Kind)
	assert.True(t, n2.IsDouble)
}

func TestTokenizer_QuotedStringEscapes(t *testing.T) {
	tz := tokenizer.New(origin.Simple("t"), `"a\nb"`, tokenizer.Options{AllowComments: true})
	tz.Next() // START
	s := tz.Next()
	require.Equal(t, token.String, s.Kind)
	assert.Equal(t, "a\nb", s.StringValue)
}

func TestTokenizer_TripleQuotedString(t *testing.T) {
	tz := tokenizer.New(origin.Simple("t"), `"""a"b""""`, tokenizer.Options{AllowComments: true})
	tz.Next() // START
	s := tz.Next()
	require.Equal(t, token.String, s.Kind)
	assert.True(t, s.TripleQuoted)
	assert.Equal(t, `a"b"`, s.StringValue)
}

func TestTokenizer_LineCommentCONF(t *testing.T) {
	kinds := tokenKinds(t, "# hi\n1", tokenizer.Options{AllowComments: true})
	assert.Contains(t, kinds, token.Comment)
}

func TestTokenizer_HashIsProblemInJSON(t *testing.T) {
	kinds := tokenKinds(t, "#", tokenizer.Options{AllowComments: false})
	assert.Contains(t, kinds, token.Problem)
}

func TestTokenizer_Substitution(t *testing.T) {
	tz := tokenizer.New(origin.Simple("t"), "${?a.b}", tokenizer.Options{AllowComments: true})
	tz.Next() // START
	sub := tz.Next()
	require.Equal(t, token.Substitution, sub.Kind)
	assert.True(t, sub.SubstitutionOptional)
}

func TestTokenizer_WhitespaceBetweenSimpleValuesIsGlue(t *testing.T) {
	tz := tokenizer.New(origin.Simple("t"), `a b`, tokenizer.Options{AllowComments: true})
	tz.Next() // START
	first := tz.Next()
	require.Equal(t, token.UnquotedText, first.Kind)
	glue := tz.Next()
	assert.Equal(t, token.UnquotedText, glue.Kind)
	assert.Equal(t, " ", glue.Text)
}
