package value

import "github.com/chris-martin/hocon-go/origin"

// Object is a HOCON object (map). Field order is insertion order, kept in
// keys alongside the fields map, following the teacher's approach to
// preserving declaration order for namespaces (parse/parse.go keeps
// templates in a slice parallel to a lookup map for the same reason).
type Object struct {
	org    origin.Origin
	keys   []string
	fields map[string]Value
	status ResolveStatus
}

// NewObject builds an Object from an ordered key list and field map. keys
// must have no duplicates and must exactly match fields' key set.
func NewObject(o origin.Origin, keys []string, fields map[string]Value) *Object {
	status := Resolved
	for _, k := range keys {
		if fields[k].ResolveStatus() == Unresolved {
			status = Unresolved
			break
		}
	}
	ks := make([]string, len(keys))
	copy(ks, keys)
	fs := make(map[string]Value, len(fields))
	for k, v := range fields {
		fs[k] = v
	}
	return &Object{org: o, keys: ks, fields: fs, status: status}
}

// EmptyObject returns a resolved object with no fields.
func EmptyObject(o origin.Origin) *Object {
	return &Object{org: o, fields: map[string]Value{}}
}

func (obj *Object) Kind() Kind                   { return KindObject }
func (obj *Object) Origin() origin.Origin        { return obj.org }
func (obj *Object) ResolveStatus() ResolveStatus { return obj.status }

// IgnoresFallbacks is always false for an object: spec.md §4.3 only sets
// ignoresFallbacks for a resolved *non-object* (the "resolved-object x
// anything" row still key-wise merges with whatever fallback follows), so
// an object must keep consulting further stack entries no matter how
// many of its own fields are already concrete.
func (obj *Object) IgnoresFallbacks() bool { return false }

func (obj *Object) WithOrigin(o origin.Origin) Value {
	cp := obj.clone()
	cp.org = o
	return cp
}

// Keys returns the field names in declaration order.
func (obj *Object) Keys() []string {
	out := make([]string, len(obj.keys))
	copy(out, obj.keys)
	return out
}

// Get returns the direct child field named key, or nil if absent.
func (obj *Object) Get(key string) Value {
	return obj.fields[key]
}

// Has reports whether key is a direct field.
func (obj *Object) Has(key string) bool {
	_, ok := obj.fields[key]
	return ok
}

func (obj *Object) clone() *Object {
	ks := make([]string, len(obj.keys))
	copy(ks, obj.keys)
	fs := make(map[string]Value, len(obj.fields))
	for k, v := range obj.fields {
		fs[k] = v
	}
	return &Object{org: obj.org, keys: ks, fields: fs, status: obj.status}
}

// withField returns a copy of obj with key set to v, preserving key's
// existing position or appending it if new.
func (obj *Object) withField(key string, v Value) *Object {
	cp := obj.clone()
	if _, exists := cp.fields[key]; !exists {
		cp.keys = append(cp.keys, key)
	}
	cp.fields[key] = v
	if v.ResolveStatus() == Unresolved {
		cp.status = Unresolved
	} else {
		cp.status = recomputeStatus(cp)
	}
	return cp
}

func recomputeStatus(obj *Object) ResolveStatus {
	for _, k := range obj.keys {
		if obj.fields[k].ResolveStatus() == Unresolved {
			return Unresolved
		}
	}
	return Resolved
}

// withoutKey returns a copy of obj with key removed, if present.
func (obj *Object) withoutKey(key string) *Object {
	if !obj.Has(key) {
		return obj
	}
	cp := obj.clone()
	delete(cp.fields, key)
	for i, k := range cp.keys {
		if k == key {
			cp.keys = append(cp.keys[:i], cp.keys[i+1:]...)
			break
		}
	}
	cp.status = recomputeStatus(cp)
	return cp
}

// GetPath reads a nested value by dotted path, descending through Object
// children. It does not traverse into deferred or list values.
func (obj *Object) GetPath(p pathKeys) (Value, bool) {
	if len(p) == 0 {
		return obj, true
	}
	child, ok := obj.fields[p[0]]
	if !ok {
		return nil, false
	}
	if len(p) == 1 {
		return child, true
	}
	childObj, ok := child.(*Object)
	if !ok {
		return nil, false
	}
	return childObj.GetPath(p[1:])
}

// WithValueAt returns a copy of obj with a nested value set at p,
// creating intermediate objects as needed (spec.md §4.4, withValue).
func (obj *Object) WithValueAt(p pathKeys, v Value) *Object {
	if len(p) == 0 {
		return obj
	}
	if len(p) == 1 {
		return obj.withField(p[0], v)
	}
	var child *Object
	if existing, ok := obj.fields[p[0]].(*Object); ok {
		child = existing
	} else {
		child = EmptyObject(obj.org)
	}
	return obj.withField(p[0], child.WithValueAt(p[1:], v))
}

// WithoutPath returns a copy of obj with the value at p removed, pruning
// empty intermediate objects left behind (spec.md §4.4, withoutPath).
func (obj *Object) WithoutPath(p pathKeys) *Object {
	if len(p) == 0 {
		return obj
	}
	if len(p) == 1 {
		return obj.withoutKey(p[0])
	}
	child, ok := obj.fields[p[0]].(*Object)
	if !ok {
		return obj
	}
	newChild := child.WithoutPath(p[1:])
	if len(newChild.keys) == 0 {
		return obj.withoutKey(p[0])
	}
	return obj.withField(p[0], newChild)
}

// WithOnlyPath returns an object retaining only the subtree at p
// (spec.md §4.4, withOnlyPath), or an empty object if p is absent.
func (obj *Object) WithOnlyPath(p pathKeys) *Object {
	if len(p) == 0 {
		return obj
	}
	child, ok := obj.fields[p[0]]
	if !ok {
		return EmptyObject(obj.org)
	}
	if len(p) == 1 {
		return EmptyObject(obj.org).withField(p[0], child)
	}
	childObj, ok := child.(*Object)
	if !ok {
		return EmptyObject(obj.org)
	}
	return EmptyObject(obj.org).withField(p[0], childObj.WithOnlyPath(p[1:]))
}

// pathKeys is the minimal shape object.go needs from path.Path, avoiding
// an import cycle (the path package has no reason to depend on value).
type pathKeys = []string

// InsertPath is how the parser assigns a (possibly dotted) key within an
// object literal (spec.md §4.2, "Dotted-path keys... expand into nested
// objects"). It descends through existing child objects along keys, then
// merges a one-branch fragment nesting v at the rest of the path onto
// whatever is there, with the fragment winning: a plain key simply
// overwrites (or, if both sides turn out to be objects, merges key-wise)
// whatever was already at that path. A key that already exists keeps its
// position; a new key is appended, so fields stay in insertion order.
func (obj *Object) InsertPath(keys []string, v Value) *Object {
	if len(keys) == 0 {
		return obj
	}
	if child, ok := obj.fields[keys[0]].(*Object); ok && len(keys) > 1 {
		return obj.withField(keys[0], child.InsertPath(keys[1:], v))
	}
	fragment := wrapPath(keys, v, v.Origin())
	merged := WithFallback(fragment, obj).(*Object)
	return obj.withField(keys[0], merged.Get(keys[0]))
}

func wrapPath(keys []string, v Value, o origin.Origin) *Object {
	if len(keys) == 1 {
		return NewObject(o, []string{keys[0]}, map[string]Value{keys[0]: v})
	}
	return NewObject(o, []string{keys[0]}, map[string]Value{keys[0]: wrapPath(keys[1:], v, o)})
}
