package origin_test

import (
	"errors"
	"testing"

	"github.com/chris-martin/hocon-go/origin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrigin_MergeConcatenatesDescriptionsAndUnionsComments(t *testing.T) {
	a := origin.Simple("a.conf").WithComments([]string{"# one"})
	b := origin.Simple("b.conf").WithComments([]string{"# one", "# two"})

	m := a.Merge(b)
	assert.Equal(t, "a.conf,b.conf", m.Description)
	assert.Equal(t, []string{"# one", "# two"}, m.Comments)
}

func TestOrigin_MergeIsAssociativeInObservableContent(t *testing.T) {
	a := origin.Simple("a")
	b := origin.Simple("b")
	c := origin.Simple("c")

	left := a.Merge(b).Merge(c)
	right := a.Merge(b.Merge(c))
	assert.Equal(t, left.Comments, right.Comments)
}

func TestOrigin_HasLine(t *testing.T) {
	o := origin.Simple("x")
	assert.False(t, o.HasLine())
	assert.True(t, o.WithLineNumber(3).HasLine())
}

func TestError_FormatsDescriptionAndLine(t *testing.T) {
	err := origin.Newf(origin.Parse, origin.Simple("a.conf").WithLineNumber(5), "unexpected %q", "}")
	assert.Equal(t, `a.conf: 5: unexpected "}"`, err.Error())
}

func TestError_FormatsWithoutLine(t *testing.T) {
	err := origin.Newf(origin.Missing, origin.Simple("a.conf"), "no such path")
	assert.Equal(t, "a.conf: no such path", err.Error())
}

func TestError_IsAndAsChaseCause(t *testing.T) {
	cause := errors.New("disk full")
	wrapped := origin.Wrap(origin.IO, origin.Simple("a.conf"), cause, "read failed")

	assert.True(t, origin.Is(wrapped, origin.IO))
	assert.False(t, origin.Is(wrapped, origin.Parse))
	require.NotNil(t, origin.As(wrapped))
	assert.Equal(t, origin.IO, origin.As(wrapped).Kind)
	assert.ErrorIs(t, wrapped, cause)
}
