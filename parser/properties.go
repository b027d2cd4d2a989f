package parser

import (
	"sort"

	"github.com/chris-martin/hocon-go/origin"
	hpath "github.com/chris-martin/hocon-go/path"
	"github.com/chris-martin/hocon-go/value"
)

// ParseProperties implements spec.md §4.2's Properties mode: a flat
// key→string map, each key split on '.' into a path and inserted. When a
// prefix path is assigned both as a scalar and as an object (because a
// longer key exists under it), the object wins — this is deterministic
// regardless of map iteration order, unlike the last-one-wins rule for
// repeated keys in CONF object bodies, since a flat properties map
// cannot itself contain the same key twice (spec.md §9, Open Question).
func ParseProperties(props map[string]string, o origin.Origin) (value.Value, error) {
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	result := value.Value(value.EmptyObject(o))
	for _, k := range keys {
		p, err := hpath.Parse(k)
		if err != nil {
			return nil, origin.Newf(origin.BadPath, o, "invalid properties key %q: %s", k, err)
		}
		fragment := wrapPropertiesPath(p.Keys(), value.NewString(o, props[k]), o)
		result = propertiesMerge(fragment, result)
	}
	return result, nil
}

func wrapPropertiesPath(keys []string, v value.Value, o origin.Origin) value.Value {
	if len(keys) == 0 {
		return v
	}
	if len(keys) == 1 {
		return value.NewObject(o, []string{keys[0]}, map[string]value.Value{keys[0]: v})
	}
	return value.NewObject(o, []string{keys[0]}, map[string]value.Value{keys[0]: wrapPropertiesPath(keys[1:], v, o)})
}

// propertiesMerge combines two values built from properties keys. Unlike
// the general withFallback algebra, an object always wins over a scalar
// here regardless of which argument it is, since the "object wins"
// outcome must not depend on map-iteration order.
func propertiesMerge(a, b value.Value) value.Value {
	ao, aIsObj := a.(*value.Object)
	bo, bIsObj := b.(*value.Object)
	switch {
	case aIsObj && bIsObj:
		var orderedKeys []string
		fields := map[string]value.Value{}
		seen := map[string]bool{}
		for _, k := range bo.Keys() {
			orderedKeys = append(orderedKeys, k)
			seen[k] = true
			fields[k] = bo.Get(k)
		}
		for _, k := range ao.Keys() {
			if seen[k] {
				fields[k] = propertiesMerge(ao.Get(k), fields[k])
			} else {
				orderedKeys = append(orderedKeys, k)
				fields[k] = ao.Get(k)
			}
		}
		return value.NewObject(ao.Origin().Merge(bo.Origin()), orderedKeys, fields)
	case aIsObj:
		return a
	case bIsObj:
		return b
	default:
		return a
	}
}
