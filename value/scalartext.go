package value

// ScalarText renders a leaf's unquoted-string representation, used both
// by the parser's eager scalar concatenation and the resolver's
// post-resolution concatenation fold (spec.md §4.2, "All-strings (or
// scalars coercible to strings)").
func ScalarText(v Value) string {
	switch t := v.(type) {
	case String:
		return t.Val
	case Number:
		return t.Text
	case Bool:
		if t.Val {
			return "true"
		}
		return "false"
	case Null:
		return "null"
	default:
		return ""
	}
}
