// Package resolve implements the substitution resolver of spec.md §4.5: a
// depth-first walk that replaces ${path} and ${?path} references with the
// value they name, memoizing per (node-identity, restriction) and
// detecting cycles via an explicit in-progress stack (spec.md §9 — no
// parent pointers, a stable per-node identity instead).
package resolve

import (
	"strings"

	"github.com/chris-martin/hocon-go/origin"
	hpath "github.com/chris-martin/hocon-go/path"
	"github.com/chris-martin/hocon-go/value"
)

// Resolve fully resolves root against itself and, if opts.UseSystemEnvironment,
// env. It is idempotent: resolving an already-resolved tree is a no-op.
func Resolve(root value.Value, opts Options, env Environment) (value.Value, error) {
	return ResolveRestricted(root, opts, env, hpath.Path{})
}

// ResolveRestricted resolves only the subtree needed to answer a lookup at
// restriction (spec.md §4.5, "Restriction"): object keys outside the
// restriction's path are left untouched rather than descended into. An
// empty restriction resolves everything.
func ResolveRestricted(root value.Value, opts Options, env Environment, restriction hpath.Path) (value.Value, error) {
	if root.ResolveStatus() == value.Resolved {
		return root, nil
	}
	c := &ctx{root: root, opts: opts, env: env, memo: map[memoKey]memoEntry{}, inStack: map[interface{}]bool{}}
	var r *hpath.Path
	if !restriction.IsEmpty() {
		r = &restriction
	}
	out, err := c.resolveValue(root, r, hpath.Path{})
	if err != nil {
		return nil, err
	}
	if out == nil {
		return value.EmptyObject(root.Origin()), nil
	}
	return out, nil
}

// frame records, while folding the merge stack for the field at path, what
// remains of that stack after the element currently being resolved — the
// self-reference rule of spec.md §4.2/§4.5.3a: a substitution that targets
// its own enclosing key resolves against this remainder instead of
// re-entering the same field and cycling.
type frame struct {
	path      hpath.Path
	remainder []value.Value
}

type memoKey struct {
	node        interface{}
	restriction string
}

type memoEntry struct {
	value value.Value // nil means "resolved to undefined" (spec.md §4.5, memo table)
}

type ctx struct {
	root    value.Value
	opts    Options
	env     Environment
	memo    map[memoKey]memoEntry
	inStack map[interface{}]bool
	frames  []frame
}

func restrictionKey(r *hpath.Path) string {
	if r == nil {
		return "*"
	}
	return r.String()
}

// resolveValue resolves v, which sits at the absolute path `at` if it is a
// direct field of an object (used only for self-reference matching; list
// elements and concatenation pieces reuse their container's `at`).
func (c *ctx) resolveValue(v value.Value, restriction *hpath.Path, at hpath.Path) (value.Value, error) {
	if v == nil || v.ResolveStatus() == value.Resolved {
		return v, nil
	}
	switch t := v.(type) {
	case *value.Object:
		return c.resolveObject(t, restriction, at)
	case *value.List:
		return c.resolveList(t, at)
	case *value.Substitution:
		return c.resolveSubstitution(t)
	case *value.DelayedMerge:
		return c.resolveDelayedMerge(t, at)
	default:
		return v, nil
	}
}

func (c *ctx) enter(identity interface{}, at hpath.Path) error {
	if c.inStack[identity] {
		return origin.Newf(origin.Parse, c.root.Origin(), "circular reference while resolving substitutions involving %q", at.String())
	}
	c.inStack[identity] = true
	return nil
}

func (c *ctx) leave(identity interface{}) {
	delete(c.inStack, identity)
}

func (c *ctx) resolveObject(o *value.Object, restriction *hpath.Path, at hpath.Path) (*value.Object, error) {
	key := memoKey{node: o, restriction: restrictionKey(restriction)}
	if e, ok := c.memo[key]; ok {
		if e.value == nil {
			return value.EmptyObject(o.Origin()), nil
		}
		return e.value.(*value.Object), nil
	}
	if err := c.enter(o, at); err != nil {
		return nil, err
	}
	defer c.leave(o)

	keys := o.Keys()
	fields := make(map[string]value.Value, len(keys))
	for _, k := range keys {
		child := o.Get(k)
		if restriction != nil && restriction.Len() > 0 && restriction.First() != k {
			fields[k] = child
			continue
		}
		var childRestriction *hpath.Path
		if restriction != nil && restriction.Len() > 0 {
			rem := restriction.Remainder()
			childRestriction = &rem
		}
		resolved, err := c.resolveValue(child, childRestriction, at.Append(k))
		if err != nil {
			return nil, err
		}
		if resolved == nil {
			continue // optional substitution resolved to undefined: field disappears
		}
		fields[k] = resolved
	}
	orderedKeys := make([]string, 0, len(keys))
	for _, k := range keys {
		if _, ok := fields[k]; ok {
			orderedKeys = append(orderedKeys, k)
		}
	}
	result := value.NewObject(o.Origin(), orderedKeys, fields)
	c.memo[key] = memoEntry{value: result}
	return result, nil
}

func (c *ctx) resolveList(l *value.List, at hpath.Path) (*value.List, error) {
	key := memoKey{node: l, restriction: "*"}
	if e, ok := c.memo[key]; ok {
		return e.value.(*value.List), nil
	}
	if err := c.enter(l, at); err != nil {
		return nil, err
	}
	defer c.leave(l)

	items := make([]value.Value, 0, len(l.Items))
	for _, item := range l.Items {
		resolved, err := c.resolveValue(item, nil, at)
		if err != nil {
			return nil, err
		}
		if resolved == nil {
			continue
		}
		items = append(items, resolved)
	}
	result := value.NewList(l.Origin(), items)
	c.memo[key] = memoEntry{value: result}
	return result, nil
}

// resolveSubstitution implements spec.md §4.5.3: path shadow check against
// the active self-reference frames, then root lookup, then environment
// fallback, then optional/required disposition.
func (c *ctx) resolveSubstitution(s *value.Substitution) (value.Value, error) {
	for i := len(c.frames) - 1; i >= 0; i-- {
		if c.frames[i].path.Equal(s.Path) {
			return c.foldStack(c.frames[i].remainder, s.Path)
		}
	}

	if obj, ok := c.root.(*value.Object); ok {
		if v, found := obj.GetPath(s.Path.Keys()); found {
			if err := c.enter(s, s.Path); err != nil {
				return nil, err
			}
			resolved, err := c.resolveValue(v, nil, s.Path)
			c.leave(s)
			if err != nil {
				return nil, err
			}
			return resolved, nil
		}
	}

	if c.opts.UseSystemEnvironment && c.env != nil {
		if str, found := c.env.Lookup(strings.Join(s.Path.Keys(), ".")); found {
			return value.NewString(s.Origin(), str), nil
		}
	}

	if s.Optional {
		return nil, nil
	}
	if c.opts.AllowUnresolved {
		return nil, nil
	}
	return nil, origin.Newf(origin.Parse, s.Origin(), "could not resolve substitution to a value: ${%s}", s.Path.String())
}

// resolveDelayedMerge dispatches on whether d is a concatenation join
// (spec.md §4.2) or a withFallback merge fold (spec.md §4.3) deferred
// until resolution.
func (c *ctx) resolveDelayedMerge(d *value.DelayedMerge, at hpath.Path) (value.Value, error) {
	key := memoKey{node: d, restriction: "*"}
	if e, ok := c.memo[key]; ok {
		return e.value, nil
	}
	if err := c.enter(d, at); err != nil {
		return nil, err
	}
	defer c.leave(d)

	var result value.Value
	var err error
	if d.Concat {
		result, err = c.resolveConcatenation(d, at)
	} else {
		result, err = c.foldStack(d.Stack, at)
	}
	if err != nil {
		return nil, err
	}
	c.memo[key] = memoEntry{value: result}
	return result, nil
}

// foldStack resolves each element of a merge-fold stack in turn, pushing a
// self-reference frame recording what remains of the stack so a
// substitution inside elem that targets `at` resolves against the
// remainder instead of cycling (spec.md §4.5.3a). It short-circuits once
// the accumulator IgnoresFallbacks — true only for a resolved non-object,
// per spec.md §4.3's "resolved-object x anything" row — since withFallback
// would no-op from there anyway. An accumulated *Object never reports
// IgnoresFallbacks, so further stack entries (including more objects that
// must still key-wise merge on top of it) keep being folded in.
func (c *ctx) foldStack(stack []value.Value, at hpath.Path) (value.Value, error) {
	var acc value.Value
	for i, elem := range stack {
		if acc != nil && acc.IgnoresFallbacks() {
			break
		}
		c.frames = append(c.frames, frame{path: at, remainder: stack[i+1:]})
		resolved, err := c.resolveValue(elem, nil, at)
		c.frames = c.frames[:len(c.frames)-1]
		if err != nil {
			return nil, err
		}
		if resolved == nil {
			continue
		}
		if acc == nil {
			acc = resolved
		} else {
			acc = value.WithFallback(acc, resolved)
		}
	}
	return acc, nil
}

// resolveConcatenation resolves every piece of a deferred concatenation
// and joins them per d.ConcatKind, mirroring the parser's
// combineConcatenation but over already-resolved pieces, some of which may
// be undefined holes left by an optional substitution.
func (c *ctx) resolveConcatenation(d *value.DelayedMerge, at hpath.Path) (value.Value, error) {
	pieces := make([]value.Value, len(d.Stack))
	for i, p := range d.Stack {
		resolved, err := c.resolveValue(p, nil, at)
		if err != nil {
			return nil, err
		}
		pieces[i] = resolved
	}

	switch d.ConcatKind {
	case value.KindList:
		var items []value.Value
		for _, p := range pieces {
			if p == nil {
				continue
			}
			if lst, ok := p.(*value.List); ok {
				items = append(items, lst.Items...)
			} else {
				items = append(items, p)
			}
		}
		return value.NewList(d.Origin(), items), nil
	case value.KindObject:
		var acc value.Value
		for _, p := range pieces {
			if p == nil {
				continue
			}
			if acc == nil {
				acc = p
			} else {
				acc = value.WithFallback(p, acc)
			}
		}
		if acc == nil {
			return value.EmptyObject(d.Origin()), nil
		}
		return acc, nil
	default:
		var b strings.Builder
		for _, p := range pieces {
			if p == nil {
				continue
			}
			b.WriteString(value.ScalarText(p))
		}
		return value.NewString(d.Origin(), b.String()), nil
	}
}
