package path_test

import (
	"testing"

	hpath "github.com/chris-martin/hocon-go/path"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_DottedKeys(t *testing.T) {
	p, err := hpath.Parse("a.b.c")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, p.Keys())
}

func TestParse_QuotedSegmentWithDot(t *testing.T) {
	p, err := hpath.Parse(`a."b.c".d`)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b.c", "d"}, p.Keys())
}

func TestPath_ParentLastRoundTrip(t *testing.T) {
	p := hpath.New("a", "b", "c")
	assert.Equal(t, p, p.Parent().Append(p.Last()))
}

func TestPath_FirstRemainder(t *testing.T) {
	p := hpath.New("a", "b", "c")
	assert.Equal(t, "a", p.First())
	assert.Equal(t, hpath.New("b", "c"), p.Remainder())
}

func TestPath_Prepend(t *testing.T) {
	p := hpath.New("b", "c")
	assert.Equal(t, hpath.New("a", "b", "c"), p.Prepend("a"))
}

func TestPath_StringQuotesWhenNeeded(t *testing.T) {
	assert.Equal(t, "a.b", hpath.New("a", "b").String())
	assert.Equal(t, `"1st"`, hpath.New("1st").String())
	assert.Equal(t, `"a b"`, hpath.New("a b").String())
	assert.Equal(t, `""`, hpath.New("").String())
}

func TestPath_StartsWith(t *testing.T) {
	p := hpath.New("a", "b", "c")
	assert.True(t, p.StartsWith(hpath.New("a", "b")))
	assert.False(t, p.StartsWith(hpath.New("a", "x")))
}
