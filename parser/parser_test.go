package parser_test

import (
	"testing"

	"github.com/chris-martin/hocon-go/origin"
	"github.com/chris-martin/hocon-go/parser"
	"github.com/chris-martin/hocon-go/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, input string) *value.Object {
	t.Helper()
	v, err := parser.Parse(input, parser.Options{Syntax: parser.SyntaxConf, OriginDescription: "test", AllowMissing: true})
	require.NoError(t, err)
	return v.(*value.Object)
}

func TestParse_DottedKeysExpand(t *testing.T) {
	root := parse(t, "a.b.c = 1")
	a := root.Get("a").(*value.Object)
	b := a.Get("b").(*value.Object)
	assert.Equal(t, int64(1), b.Get("c").(value.Number).IntValue)
}

func TestParse_BareRootObjectInCONF(t *testing.T) {
	root := parse(t, "a = 1\nb = 2")
	assert.Equal(t, int64(1), root.Get("a").(value.Number).IntValue)
	assert.Equal(t, int64(2), root.Get("b").(value.Number).IntValue)
}

func TestParse_JSONModeRequiresBraces(t *testing.T) {
	_, err := parser.Parse("a = 1", parser.Options{Syntax: parser.SyntaxJSON, OriginDescription: "t"})
	require.Error(t, err)
}

func TestParse_TripleQuotedString(t *testing.T) {
	root := parse(t, `s = """a"b""""`)
	assert.Equal(t, `a"b"`, root.Get("s").(value.String).Val)
}

func TestParse_ObjectConcatenationLaterWins(t *testing.T) {
	root := parse(t, `a = {x: 1} {x: 2, y: 3}`)
	a := root.Get("a").(*value.Object)
	assert.Equal(t, int64(2), a.Get("x").(value.Number).IntValue)
	assert.Equal(t, int64(3), a.Get("y").(value.Number).IntValue)
}

func TestParse_StringConcatenation(t *testing.T) {
	root := parse(t, `s = foo bar`)
	assert.Equal(t, "foo bar", root.Get("s").(value.String).Val)
}

func TestParse_ListConcatenation(t *testing.T) {
	root := parse(t, `xs = [1, 2] [3]`)
	xs := root.Get("xs").(*value.List)
	require.Equal(t, 3, xs.Len())
}

func TestParse_ScalarObjectConcatenationIsError(t *testing.T) {
	_, err := parser.Parse(`a = 1 {x: 2}`, parser.Options{Syntax: parser.SyntaxConf, OriginDescription: "t"})
	require.Error(t, err)
}

func TestParse_SubstitutionNode(t *testing.T) {
	root := parse(t, `a = ${?FOO}`)
	sub, ok := root.Get("a").(*value.Substitution)
	require.True(t, ok)
	assert.True(t, sub.Optional)
	assert.Equal(t, "FOO", sub.Path.String())
}

func TestParseProperties_ObjectWinsOverScalar(t *testing.T) {
	v, err := parser.ParseProperties(map[string]string{
		"a":   "scalar",
		"a.b": "nested",
	}, origin.Simple("app.properties"))
	require.NoError(t, err)
	root := v.(*value.Object)
	a := root.Get("a").(*value.Object)
	assert.Equal(t, "nested", a.Get("b").(value.String).Val)
}

