package value

import "github.com/chris-martin/hocon-go/origin"

// List is a HOCON array. Items may themselves be Unresolved if the list
// contains substitutions or delayed-merge elements; ResolveStatus()
// reflects that without requiring a tree walk at read time.
type List struct {
	org    origin.Origin
	Items  []Value
	status ResolveStatus
}

// NewList builds a resolved-or-not List from items, computing its status
// from its contents.
func NewList(o origin.Origin, items []Value) *List {
	status := Resolved
	for _, it := range items {
		if it.ResolveStatus() == Unresolved {
			status = Unresolved
			break
		}
	}
	return &List{org: o, Items: items, status: status}
}

func (l *List) Kind() Kind                   { return KindList }
func (l *List) Origin() origin.Origin        { return l.org }
func (l *List) ResolveStatus() ResolveStatus { return l.status }

// IgnoresFallbacks is true for any resolved list: spec.md §4.3's
// "resolved-object x anything" rule treats concrete lists the same as
// concrete scalars, since a list never accretes further keys from a
// fallback the way an object can.
func (l *List) IgnoresFallbacks() bool { return l.status == Resolved }

func (l *List) WithOrigin(o origin.Origin) Value {
	cp := *l
	cp.org = o
	return &cp
}

// Len returns the number of elements.
func (l *List) Len() int { return len(l.Items) }
