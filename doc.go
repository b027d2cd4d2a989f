// Package hocon parses and evaluates HOCON (Human-Optimized Config Object
// Notation), a strict superset of JSON. It also accepts pure JSON and a
// flat properties-style key format. Parsed inputs form a value tree (see
// the value subpackage); ${path} substitutions against that tree are
// resolved on demand (see the resolve subpackage) with memoization and
// cycle detection.
//
// A minimal round trip:
//
//	cfg, err := hocon.ParseString(`a.b = ${c}, c = 1`, hocon.DefaultParseOptions())
//	if err != nil {
//		log.Fatal(err)
//	}
//	resolved, err := cfg.Resolve(hocon.DefaultResolveOptions())
//	v, err := resolved.GetValue(path.New("a", "b"))
//
// The tokenizer, parser, value tree, merge algebra, and substitution
// resolver are each their own package (tokenizer, parser, value, resolve);
// this package is the thin façade gluing them together plus the Includer
// capability that lets a caller supply `include` semantics without the
// core depending on any particular file, URL, or classpath loader.
package hocon
