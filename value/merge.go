package value

// WithFallback implements the merge algebra of spec.md §4.3: l is
// falling back to r, i.e. r supplies values l doesn't have. It is a
// package-level function rather than a Value method because the result
// kind depends on the concrete kinds of BOTH operands (object × object
// merges key-wise; anything else lets the first resolved value win), a
// double dispatch Go's single-receiver methods can't express directly —
// so, following the "kind-specific match arms" approach of spec.md §9,
// the dispatch lives in one place as a type switch instead of being
// spread across per-kind WithFallback methods.
func WithFallback(l, r Value) Value {
	if l == nil {
		return r
	}
	if r == nil {
		return l
	}

	// The table's "unmergeable"/"unresolved" rows describe L or R's own
	// node kind (a Substitution or DelayedMerge standing in for a value
	// not yet known), not whether some descendant elsewhere in the tree
	// still has a substitution — an object with an unresolved field still
	// merges key-wise with its fallback; only a node that IS itself a
	// placeholder defers to a new delayed-merge.
	_, lUnmergeable := l.(Unmergeable)
	_, rUnmergeable := r.(Unmergeable)
	if lUnmergeable || rUnmergeable {
		return mergeDeferred(l, r)
	}

	lo, lIsObj := l.(*Object)
	ro, rIsObj := r.(*Object)
	if lIsObj && rIsObj {
		return mergeObjects(lo, ro)
	}

	// resolved-scalar (or list) × anything: l wins outright and r is
	// never consulted again, per IgnoresFallbacks.
	return l
}

// mergeObjects key-wise merges two resolved objects: fields unique to one
// side pass through; fields present in both recurse through WithFallback,
// with l's value taking priority. Field order follows l, then any
// r-only fields appended in r's order.
func mergeObjects(l, r *Object) *Object {
	out := EmptyObject(l.org.Merge(r.org))
	for _, k := range l.keys {
		lv := l.fields[k]
		if rv, ok := r.fields[k]; ok {
			out = out.withField(k, WithFallback(lv, rv))
		} else {
			out = out.withField(k, lv)
		}
	}
	for _, k := range r.keys {
		if !l.Has(k) {
			out = out.withField(k, r.fields[k])
		}
	}
	return out
}

// mergeDeferred builds (or extends) a DelayedMerge node when at least one
// side is still unresolved. Unmergeable operands flatten their own stack
// into the new node instead of nesting, matching
// original_source's Unmergeable.py contract.
func mergeDeferred(l, r Value) Value {
	stack := unmergedValuesOf(l)
	stack = append(stack, unmergedValuesOf(r)...)
	return NewDelayedMerge(l.Origin().Merge(r.Origin()), stack, looksObjectish(l) && looksObjectish(r))
}

func unmergedValuesOf(v Value) []Value {
	if um, ok := v.(Unmergeable); ok {
		return append([]Value(nil), um.UnmergedValues()...)
	}
	return []Value{v}
}

// looksObjectish reports whether v is known, independent of resolution,
// to behave like an object — a concrete *Object, or a DelayedMergeObject
// already tagged as such. A bare Substitution is not objectish: its
// eventual kind is unknown until it resolves.
func looksObjectish(v Value) bool {
	switch v.(type) {
	case *Object:
		return true
	}
	return v.Kind() == KindDelayedMergeObject
}
