package value_test

import (
	"testing"

	"github.com/chris-martin/hocon-go/origin"
	"github.com/chris-martin/hocon-go/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func o() origin.Origin { return origin.Simple("test") }

func obj(fields map[string]value.Value) *value.Object {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	return value.NewObject(o(), keys, fields)
}

func TestEqual_IgnoresOriginAndResolveStatus(t *testing.T) {
	a := value.NewString(origin.Simple("a.conf"), "x")
	b := value.NewString(origin.Simple("b.conf").WithLineNumber(9), "x")
	assert.True(t, value.Equal(a, b))
}

func TestEqual_NumberAcrossKinds(t *testing.T) {
	intN, err := value.NewNumber(o(), "2", false)
	require.NoError(t, err)
	doubleN, err := value.NewNumber(o(), "2.0", true)
	require.NoError(t, err)
	assert.True(t, value.Equal(intN, doubleN))
}

func TestWithFallback_ObjectMergesKeyWise(t *testing.T) {
	base := obj(map[string]value.Value{
		"a": obj(map[string]value.Value{"x": mustInt(t, "1"), "y": mustInt(t, "2")}),
	})
	fallback := obj(map[string]value.Value{
		"a": obj(map[string]value.Value{"y": mustInt(t, "9"), "z": mustInt(t, "3")}),
		"w": mustInt(t, "4"),
	})

	merged := value.WithFallback(base, fallback).(*value.Object)
	a := merged.Get("a").(*value.Object)
	assert.Equal(t, int64(1), a.Get("x").(value.Number).IntValue)
	assert.Equal(t, int64(2), a.Get("y").(value.Number).IntValue)
	assert.Equal(t, int64(3), a.Get("z").(value.Number).IntValue)
	assert.Equal(t, int64(4), merged.Get("w").(value.Number).IntValue)
}

func TestWithFallback_ScalarShadowsObject(t *testing.T) {
	scalar := mustInt(t, "1")
	object := obj(map[string]value.Value{"x": mustInt(t, "2")})
	assert.True(t, value.Equal(scalar, value.WithFallback(scalar, object)))
}

func TestWithFallback_Associative(t *testing.T) {
	a := obj(map[string]value.Value{"a": mustInt(t, "1")})
	b := obj(map[string]value.Value{"b": mustInt(t, "2")})
	c := obj(map[string]value.Value{"c": mustInt(t, "3")})

	left := value.WithFallback(value.WithFallback(a, b), c)
	right := value.WithFallback(a, value.WithFallback(b, c))
	assert.True(t, value.Equal(left, right))
}

func TestWithFallback_EmptyIsIdentity(t *testing.T) {
	x := obj(map[string]value.Value{"a": mustInt(t, "1")})
	empty := value.EmptyObject(o())
	assert.True(t, value.Equal(x, value.WithFallback(empty, x)))
	assert.True(t, value.Equal(x, value.WithFallback(x, empty)))
}

func TestObject_WithOnlyPath(t *testing.T) {
	root := obj(map[string]value.Value{
		"a": obj(map[string]value.Value{"b": mustInt(t, "1"), "c": mustInt(t, "2")}),
		"d": mustInt(t, "3"),
	})
	only := root.WithOnlyPath([]string{"a", "b"})
	a := only.Get("a").(*value.Object)
	assert.Equal(t, int64(1), a.Get("b").(value.Number).IntValue)
	assert.False(t, a.Has("c"))
	assert.False(t, only.Has("d"))
}

func TestObject_WithoutPath(t *testing.T) {
	root := obj(map[string]value.Value{
		"a": obj(map[string]value.Value{"b": mustInt(t, "1")}),
	})
	pruned := root.WithoutPath([]string{"a", "b"})
	assert.False(t, pruned.Has("a"))
}

func TestObject_ResolveStatusReflectsChildren(t *testing.T) {
	resolved := obj(map[string]value.Value{"a": mustInt(t, "1")})
	assert.Equal(t, value.Resolved, resolved.ResolveStatus())
}

func TestRenderJSON(t *testing.T) {
	root := obj(map[string]value.Value{
		"a": mustInt(t, "1"),
		"s": value.NewString(o(), "hi"),
	})
	out := value.RenderJSON(root)
	assert.Contains(t, out, `"a":1`)
	assert.Contains(t, out, `"s":"hi"`)
}

func TestRenderFormatted(t *testing.T) {
	root := obj(map[string]value.Value{
		"a": value.NewString(origin.Simple("test").WithComments([]string{"a comment"}), "hi"),
	})
	out := value.RenderFormatted(root)
	assert.Contains(t, out, `# test`)
	assert.Contains(t, out, `# a comment`)
	assert.Contains(t, out, `"a" : "hi"`)
}

func mustInt(t *testing.T, text string) value.Number {
	t.Helper()
	n, err := value.NewNumber(o(), text, false)
	require.NoError(t, err)
	return n
}
