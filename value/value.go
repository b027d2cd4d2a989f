// Package value implements the HOCON value tree: the closed sum type of
// spec.md §3 (six leaf kinds plus three deferred kinds), its merge algebra
// (§4.3), and its pruning operations. Values are immutable; every mutator
// returns a new value, following the teacher's data/value.go, where Value
// is a closed interface implemented by a fixed set of concrete kinds
// instead of a class hierarchy (tagged-union dispatch over inheritance,
// per spec.md §9).
package value

import "github.com/chris-martin/hocon-go/origin"

// Kind tags which variant of the sum type a Value is.
type Kind int

const (
	KindNull Kind = iota
	KindBoolean
	KindNumber
	KindString
	KindList
	KindObject

	// Deferred kinds: constructs that cannot be evaluated until the full
	// tree is known (spec.md §2 step 4, §3 "Deferred values").
	KindSubstitution
	KindDelayedMerge       // delayed-merge scalar/list
	KindDelayedMergeObject // delayed-merge whose result is structurally known to be an object
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBoolean:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindObject:
		return "object"
	case KindSubstitution:
		return "substitution"
	case KindDelayedMerge:
		return "delayed-merge"
	case KindDelayedMergeObject:
		return "delayed-merge-object"
	default:
		return "unknown"
	}
}

// IsDeferred reports whether k is one of the three deferred kinds.
func (k Kind) IsDeferred() bool {
	return k == KindSubstitution || k == KindDelayedMerge || k == KindDelayedMergeObject
}

// ResolveStatus indicates whether a value's subtree still contains
// substitutions.
type ResolveStatus int

const (
	Resolved ResolveStatus = iota
	Unresolved
)

// Value is the interface every tree node implements. It is a closed sum
// type: the only implementations live in this package.
type Value interface {
	Kind() Kind
	Origin() origin.Origin
	ResolveStatus() ResolveStatus

	// IgnoresFallbacks reports whether this value has already committed to
	// not consulting any fallback (spec.md §3 invariant: implies Resolved).
	IgnoresFallbacks() bool

	// WithOrigin returns a copy of this value with a different origin.
	WithOrigin(o origin.Origin) Value
}

// Unmergeable is implemented by deferred values that, instead of merging
// directly, contribute their own fallback stack to a new delayed-merge
// node (spec.md §4.3 table, "unmergeable R" column).
type Unmergeable interface {
	Value
	// UnmergedValues returns the stack of values this node stands in for,
	// in fallback order, following original_source's Unmergeable.py.
	UnmergedValues() []Value
}

// Equal implements spec.md §3's equality rule: same Kind and deeply
// unwrapped contents; Origin, ResolveStatus, and IgnoresFallbacks are not
// part of equality.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind() != b.Kind() {
		// Numbers compare equal across numeric kinds (spec.md §3).
		return false
	}
	switch av := a.(type) {
	case Null:
		return true
	case Bool:
		bv := b.(Bool)
		return av.Val == bv.Val
	case Number:
		bv := b.(Number)
		return av.equalValue(bv)
	case String:
		bv := b.(String)
		return av.Val == bv.Val
	case *List:
		bv := b.(*List)
		if len(av.Items) != len(bv.Items) {
			return false
		}
		for i := range av.Items {
			if !Equal(av.Items[i], bv.Items[i]) {
				return false
			}
		}
		return true
	case *Object:
		bv := b.(*Object)
		if len(av.keys) != len(bv.keys) {
			return false
		}
		for _, k := range av.keys {
			bfield, ok := bv.fields[k]
			if !ok {
				return false
			}
			if !Equal(av.fields[k], bfield) {
				return false
			}
		}
		return true
	default:
		// Deferred kinds have no meaningful equality before resolution.
		return a == b
	}
}
