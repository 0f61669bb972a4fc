package confmerge

// resolveDefinition returns the node for key, extending def when the key is
// unknown and flexible is set. inferred reports whether a node was added.
//
// p is the path of the key itself; an UndefinedKey issue is reported against
// its container.
func resolveDefinition(value any, key string, def Definition, p keyPath, flexible bool) (n Node, inferred bool, err error) {
	if hasValidKind(def, key) {
		return def[key], false, nil
	}
	if !flexible {
		return Node{}, false, undefinedKey(p.parent(), key)
	}
	if isMapping(value) {
		n = Block(nil)
	} else {
		n = Leaf(KindWildcard)
	}
	def[key] = n
	return n, true, nil
}

// checkType validates value against n and returns the value to store.
//
// Block kinds require a mapping in both modes. Leaf kinds are coerced when cast
// is set and must match exactly otherwise. Wildcards pass through.
func checkType(value any, n Node, p keyPath, cast bool) (any, error) {
	switch {
	case IsAnyBlock(n.Kind):
		if !isMapping(value) {
			return nil, invalidValue(p, n.Kind, value)
		}
		return value, nil
	case IsLeaf(n.Kind):
		if cast {
			return castValue(n.Kind, value), nil
		}
		if !matchesStrict(n.Kind, value) {
			return nil, invalidValue(p, n.Kind, value)
		}
		return value, nil
	default:
		return value, nil
	}
}
