package hocon_test

import (
	"testing"

	"github.com/chris-martin/hocon-go"
	hpath "github.com/chris-martin/hocon-go/path"
	"github.com/chris-martin/hocon-go/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These mirror spec.md §8's end-to-end scenarios, exercised through the
// public façade rather than any one internal package.

func TestE2E_DottedKeysExpand(t *testing.T) {
	cfg, err := hocon.ParseString("a.b.c = 1", hocon.DefaultParseOptions())
	require.NoError(t, err)
	resolved, err := cfg.Resolve(hocon.DefaultResolveOptions())
	require.NoError(t, err)

	v, err := resolved.GetValue(hpath.New("a", "b", "c"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), v.(value.Number).IntValue)
	assert.Equal(t, `{"a":{"b":{"c":1}}}`, resolved.RenderJSON())
}

func TestE2E_FallbackMerge(t *testing.T) {
	base, err := hocon.ParseString(`a { x = 1, y = 2 }`, hocon.DefaultParseOptions())
	require.NoError(t, err)
	fallback, err := hocon.ParseString(`a { y = 9, z = 3 }, w = 4`, hocon.DefaultParseOptions())
	require.NoError(t, err)

	merged := base.WithFallback(fallback)
	resolved, err := merged.Resolve(hocon.DefaultResolveOptions())
	require.NoError(t, err)
	assert.Equal(t, `{"a":{"x":1,"y":2,"z":3},"w":4}`, resolved.RenderJSON())
}

func TestE2E_SubstitutionWithEnvironment(t *testing.T) {
	t.Setenv("HOST", "example")
	cfg, err := hocon.ParseString("host = ${?HOST}\nport = 80", hocon.DefaultParseOptions())
	require.NoError(t, err)

	resolved, err := cfg.Resolve(hocon.DefaultResolveOptions())
	require.NoError(t, err)
	assert.Equal(t, `{"host":"example","port":80}`, resolved.RenderJSON())
}

func TestE2E_SubstitutionWithoutEnvironmentIsUnresolved(t *testing.T) {
	cfg, err := hocon.ParseString("host = ${HOST}\nport = 80", hocon.DefaultParseOptions())
	require.NoError(t, err)

	_, err = cfg.Resolve(hocon.DefaultResolveOptions().NoSystem())
	require.Error(t, err)
}

func TestE2E_SelfReferenceAppend(t *testing.T) {
	cfg, err := hocon.ParseString(`path = "/bin"
path = ${path}":/usr/bin"`, hocon.DefaultParseOptions())
	require.NoError(t, err)

	resolved, err := cfg.Resolve(hocon.DefaultResolveOptions())
	require.NoError(t, err)
	assert.Equal(t, `{"path":"/bin:/usr/bin"}`, resolved.RenderJSON())
}

func TestE2E_TripleQuotedString(t *testing.T) {
	cfg, err := hocon.ParseString(`s = """a"b""""`, hocon.DefaultParseOptions())
	require.NoError(t, err)
	resolved, err := cfg.Resolve(hocon.DefaultResolveOptions())
	require.NoError(t, err)

	v, err := resolved.GetValue(hpath.New("s"))
	require.NoError(t, err)
	assert.Equal(t, `a"b"`, v.(value.String).Val)
}

func TestE2E_PlusEqualsDesugar(t *testing.T) {
	cfg, err := hocon.ParseString("xs = [1]\nxs += 2\nxs += 3", hocon.DefaultParseOptions())
	require.NoError(t, err)
	resolved, err := cfg.Resolve(hocon.DefaultResolveOptions())
	require.NoError(t, err)
	assert.Equal(t, `{"xs":[1,2,3]}`, resolved.RenderJSON())
}

func TestE2E_WithOnlyPath(t *testing.T) {
	cfg, err := hocon.ParseString(`a { b = 1, c = 2 }, d = 3`, hocon.DefaultParseOptions())
	require.NoError(t, err)
	resolved, err := cfg.Resolve(hocon.DefaultResolveOptions())
	require.NoError(t, err)

	only := resolved.WithOnlyPath(hpath.New("a", "b"))
	assert.Equal(t, `{"a":{"b":1}}`, only.RenderJSON())
}

func TestE2E_ResolveIsIdempotent(t *testing.T) {
	cfg, err := hocon.ParseString(`a = 1, b = ${a}`, hocon.DefaultParseOptions())
	require.NoError(t, err)
	once, err := cfg.Resolve(hocon.DefaultResolveOptions())
	require.NoError(t, err)
	twice, err := once.Resolve(hocon.DefaultResolveOptions())
	require.NoError(t, err)
	assert.Equal(t, once.RenderJSON(), twice.RenderJSON())
}

func TestE2E_CycleIsUnresolvable(t *testing.T) {
	cfg, err := hocon.ParseString(`a = ${b}, b = ${a}`, hocon.DefaultParseOptions())
	require.NoError(t, err)
	_, err = cfg.Resolve(hocon.DefaultResolveOptions())
	require.Error(t, err)
}

func TestE2E_PropertiesMapObjectWinsOverScalar(t *testing.T) {
	cfg, err := hocon.ParseProperties(map[string]string{
		"a":   "scalar",
		"a.b": "nested",
	}, "app.properties")
	require.NoError(t, err)
	resolved, err := cfg.Resolve(hocon.DefaultResolveOptions())
	require.NoError(t, err)
	assert.Equal(t, `{"a":{"b":"nested"}}`, resolved.RenderJSON())
}

func TestE2E_JSONRoundTrips(t *testing.T) {
	input := `{"a":1,"b":[1,2,3],"c":{"d":true,"e":null}}`
	cfg, err := hocon.ParseString(input, hocon.DefaultParseOptions().WithSyntax(hocon.SyntaxJSON))
	require.NoError(t, err)
	resolved, err := cfg.Resolve(hocon.DefaultResolveOptions())
	require.NoError(t, err)
	assert.Equal(t, input, resolved.RenderJSON())
}

func TestE2E_SubstitutionThenObjectExtendMergesKeys(t *testing.T) {
	cfg, err := hocon.ParseString(`foo { m = 1 }
a = ${foo}
a { p = 2 }`, hocon.DefaultParseOptions())
	require.NoError(t, err)
	resolved, err := cfg.Resolve(hocon.DefaultResolveOptions())
	require.NoError(t, err)
	assert.Equal(t, `{"foo":{"m":1},"a":{"p":2,"m":1}}`, resolved.RenderJSON())
}

func TestE2E_JSONRejectsDuplicateKey(t *testing.T) {
	_, err := hocon.ParseString(`{"a":1,"a":2}`, hocon.DefaultParseOptions().WithSyntax(hocon.SyntaxJSON))
	require.Error(t, err)
}

func TestE2E_JSONRejectsTrailingComma(t *testing.T) {
	_, err := hocon.ParseString(`{"a":1,}`, hocon.DefaultParseOptions().WithSyntax(hocon.SyntaxJSON))
	require.Error(t, err)
}

func TestE2E_JSONRejectsTrailingCommaInArray(t *testing.T) {
	_, err := hocon.ParseString(`{"a":[1,2,]}`, hocon.DefaultParseOptions().WithSyntax(hocon.SyntaxJSON))
	require.Error(t, err)
}

func TestE2E_CONFAllowsDuplicateKeyAndTrailingComma(t *testing.T) {
	cfg, err := hocon.ParseString(`a = 1, a = 2,`, hocon.DefaultParseOptions())
	require.NoError(t, err)
	resolved, err := cfg.Resolve(hocon.DefaultResolveOptions())
	require.NoError(t, err)
	assert.Equal(t, `{"a":2}`, resolved.RenderJSON())
}
