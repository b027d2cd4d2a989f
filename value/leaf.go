package value

import "github.com/chris-martin/hocon-go/origin"

// Null is the HOCON null leaf.
type Null struct {
	org origin.Origin
}

func NewNull(o origin.Origin) Null { return Null{org: o} }

func (n Null) Kind() Kind                   { return KindNull }
func (n Null) Origin() origin.Origin        { return n.org }
func (n Null) ResolveStatus() ResolveStatus { return Resolved }
func (n Null) IgnoresFallbacks() bool       { return true }
func (n Null) WithOrigin(o origin.Origin) Value {
	n.org = o
	return n
}

// Bool is the HOCON boolean leaf.
type Bool struct {
	org origin.Origin
	Val bool
}

func NewBool(o origin.Origin, v bool) Bool { return Bool{org: o, Val: v} }

func (b Bool) Kind() Kind                   { return KindBoolean }
func (b Bool) Origin() origin.Origin        { return b.org }
func (b Bool) ResolveStatus() ResolveStatus { return Resolved }
func (b Bool) IgnoresFallbacks() bool       { return true }
func (b Bool) WithOrigin(o origin.Origin) Value {
	b.org = o
	return b
}

// String is the HOCON string leaf. Val holds the unescaped content.
type String struct {
	org origin.Origin
	Val string
}

func NewString(o origin.Origin, v string) String { return String{org: o, Val: v} }

func (s String) Kind() Kind                   { return KindString }
func (s String) Origin() origin.Origin        { return s.org }
func (s String) ResolveStatus() ResolveStatus { return Resolved }
func (s String) IgnoresFallbacks() bool       { return true }
func (s String) WithOrigin(o origin.Origin) Value {
	s.org = o
	return s
}
