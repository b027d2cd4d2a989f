package value

import (
	"github.com/chris-martin/hocon-go/origin"
	hpath "github.com/chris-martin/hocon-go/path"
)

// Substitution is an unresolved ${path} or ${?path} reference (spec.md
// §3, §5). It is replaced by the resolver once the full tree is known;
// until then it stands in for whatever value the path will eventually
// name.
type Substitution struct {
	org      origin.Origin
	Path     hpath.Path
	Optional bool
}

// NewSubstitution builds a Substitution node.
func NewSubstitution(o origin.Origin, p hpath.Path, optional bool) *Substitution {
	return &Substitution{org: o, Path: p, Optional: optional}
}

func (s *Substitution) Kind() Kind                   { return KindSubstitution }
func (s *Substitution) Origin() origin.Origin        { return s.org }
func (s *Substitution) ResolveStatus() ResolveStatus { return Unresolved }
func (s *Substitution) IgnoresFallbacks() bool       { return false }
func (s *Substitution) WithOrigin(o origin.Origin) Value {
	cp := *s
	cp.org = o
	return &cp
}

// UnmergedValues implements Unmergeable: a substitution's fallback stack
// is just itself, following original_source's ConfigSubstitution, which
// defers entirely to resolution rather than attempting to merge eagerly.
func (s *Substitution) UnmergedValues() []Value { return []Value{s} }

// DelayedMerge is the deferred result of merging two values where at
// least one side was still unresolved (spec.md §4.3, "at least one
// unresolved" row). It records the fallback stack, first-wins order, to
// be folded once every entry resolves. concat distinguishes the join
// semantics of a parsed concatenation (spec.md §4.2) from the
// withFallback-fold semantics of an object/array merge: both produce a
// node that must wait for resolution, but they combine their stack
// differently once resolved, so the tag travels with the node rather
// than living as a fourth Kind the rest of the package has to match on.
type DelayedMerge struct {
	org         origin.Origin
	Stack       []Value
	Concat      bool
	knownObject bool

	// ConcatKind records which join the resolver should perform once
	// every stack entry resolves (string/object/list), determined at
	// parse time from whichever concrete piece anchored the
	// concatenation. Meaningful only when Concat is true.
	ConcatKind Kind
}

// NewDelayedMerge builds a merge-fold deferred node (concat=false). If
// every stack entry is (or would resolve to) an object, pass
// knownObject=true so Kind reports KindDelayedMergeObject, letting
// consumers peek into its shape before resolution completes (spec.md §3,
// "delayed-merge-object").
func NewDelayedMerge(o origin.Origin, stack []Value, knownObject bool) *DelayedMerge {
	return &DelayedMerge{org: o, Stack: stack, knownObject: knownObject}
}

// NewConcatenation builds a join-fold deferred node (spec.md §4.2): its
// pieces are joined according to concatKind once resolved, rather than
// folded by withFallback.
func NewConcatenation(o origin.Origin, pieces []Value, concatKind Kind) *DelayedMerge {
	return &DelayedMerge{org: o, Stack: pieces, Concat: true, ConcatKind: concatKind, knownObject: concatKind == KindObject}
}

func (d *DelayedMerge) Kind() Kind {
	if d.knownObject {
		return KindDelayedMergeObject
	}
	return KindDelayedMerge
}
func (d *DelayedMerge) Origin() origin.Origin        { return d.org }
func (d *DelayedMerge) ResolveStatus() ResolveStatus { return Unresolved }
func (d *DelayedMerge) IgnoresFallbacks() bool       { return false }
func (d *DelayedMerge) WithOrigin(o origin.Origin) Value {
	cp := *d
	cp.org = o
	return &cp
}

// UnmergedValues implements Unmergeable: a delayed-merge stack's fallback
// contribution is its own stack flattened in, rather than itself as a
// single opaque unit, so that merging it with yet another fallback just
// extends the stack instead of nesting DelayedMerge nodes.
func (d *DelayedMerge) UnmergedValues() []Value {
	if d.Concat {
		return []Value{d}
	}
	return d.Stack
}
