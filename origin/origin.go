// Package origin describes where a token or value came from: a source
// description, an optional line number, and the comments that preceded it.
// Every token the tokenizer emits and every value the parser builds carries
// one, so that error messages and formatted renders can point back at the
// input.
package origin

import "fmt"

// Origin is a source descriptor. It is carried by tokens and values for
// diagnostics but never participates in value equality or merge outcomes.
type Origin struct {
	Description string
	LineNumber  int // 0 means "no line known"
	Comments    []string
}

// String renders the origin the way error messages quote it.
func (o Origin) String() string {
	if o.LineNumber > 0 {
		return fmt.Sprintf("%s: %d", o.Description, o.LineNumber)
	}
	return o.Description
}

// HasLine reports whether this origin carries a known line number.
func (o Origin) HasLine() bool {
	return o.LineNumber > 0
}

// WithLineNumber returns a copy of o with the line number set.
func (o Origin) WithLineNumber(line int) Origin {
	o.LineNumber = line
	return o
}

// WithComments returns a copy of o with the given comments attached,
// replacing any it already carried.
func (o Origin) WithComments(comments []string) Origin {
	o.Comments = comments
	return o
}

// Merge combines two origins, as happens when two values merge into one.
// Descriptions concatenate; comments union (in the order: o's comments,
// then any of other's not already present); merge is associative and
// order-insensitive in observable content, since the comment union
// de-duplicates regardless of which side repeats a comment.
func (o Origin) Merge(other Origin) Origin {
	desc := o.Description
	switch {
	case desc == "":
		desc = other.Description
	case other.Description != "" && other.Description != desc:
		desc = desc + "," + other.Description
	}

	line := o.LineNumber
	if line == 0 {
		line = other.LineNumber
	}

	return Origin{
		Description: desc,
		LineNumber:  line,
		Comments:    unionComments(o.Comments, other.Comments),
	}
}

func unionComments(a, b []string) []string {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for _, c := range a {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	for _, c := range b {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

// Simple is an Origin with only a description, no line or comments. It is
// the usual starting point for a freshly-parsed root.
func Simple(description string) Origin {
	return Origin{Description: description}
}
