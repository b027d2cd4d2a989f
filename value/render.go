package value

import (
	"fmt"
	"strconv"
	"strings"
)

// RenderJSON renders a fully-resolved value tree as JSON. Callers must
// resolve the tree first; rendering a deferred node panics, since there
// is no JSON representation of "not yet known".
func RenderJSON(v Value) string {
	var b strings.Builder
	renderJSON(&b, v)
	return b.String()
}

func renderJSON(b *strings.Builder, v Value) {
	switch t := v.(type) {
	case Null:
		b.WriteString("null")
	case Bool:
		if t.Val {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case Number:
		b.WriteString(t.Text)
	case String:
		b.WriteString(strconv.Quote(t.Val))
	case *List:
		b.WriteByte('[')
		for i, item := range t.Items {
			if i > 0 {
				b.WriteByte(',')
			}
			renderJSON(b, item)
		}
		b.WriteByte(']')
	case *Object:
		b.WriteByte('{')
		for i, k := range t.keys {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.Quote(k))
			b.WriteByte(':')
			renderJSON(b, t.fields[k])
		}
		b.WriteByte('}')
	default:
		panic("value: RenderJSON called on an unresolved " + v.Kind().String() + " node")
	}
}

// RenderFormatted renders a fully-resolved value tree as indented HOCON,
// preceding every object field with a "# <origin>" comment and, if the
// field's origin carries any, its source comments, in that order. This is
// the annotated render mode of spec.md §6.
func RenderFormatted(v Value) string {
	var b strings.Builder
	renderFormatted(&b, v, 0)
	return b.String()
}

func renderFormatted(b *strings.Builder, v Value, indent int) {
	switch t := v.(type) {
	case Null:
		b.WriteString("null")
	case Bool:
		if t.Val {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case Number:
		b.WriteString(t.Text)
	case String:
		b.WriteString(strconv.Quote(t.Val))
	case *List:
		if len(t.Items) == 0 {
			b.WriteString("[]")
			return
		}
		b.WriteString("[\n")
		for _, item := range t.Items {
			writeIndent(b, indent+1)
			renderFormatted(b, item, indent+1)
			b.WriteString(",\n")
		}
		writeIndent(b, indent)
		b.WriteByte(']')
	case *Object:
		if len(t.keys) == 0 {
			b.WriteString("{}")
			return
		}
		b.WriteString("{\n")
		for _, k := range t.keys {
			field := t.fields[k]
			writeIndent(b, indent+1)
			fmt.Fprintf(b, "# %s\n", field.Origin().String())
			for _, c := range field.Origin().Comments {
				writeIndent(b, indent+1)
				fmt.Fprintf(b, "# %s\n", c)
			}
			writeIndent(b, indent+1)
			b.WriteString(strconv.Quote(k))
			b.WriteString(" : ")
			renderFormatted(b, field, indent+1)
			b.WriteString("\n")
		}
		writeIndent(b, indent)
		b.WriteByte('}')
	default:
		panic("value: RenderFormatted called on an unresolved " + v.Kind().String() + " node")
	}
}

func writeIndent(b *strings.Builder, indent int) {
	for i := 0; i < indent; i++ {
		b.WriteString("  ")
	}
}
