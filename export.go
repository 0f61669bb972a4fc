package confmerge

import "strconv"

// export deep-copies conf following def so that blocks can be rendered as
// lists where their keys allow it.
func export(conf map[string]any, def Definition) map[string]any {
	out := make(map[string]any, len(conf))
	for key, v := range conf {
		n := def[key]
		switch {
		case IsBlock(n.Kind):
			m, _ := v.(map[string]any)
			out[key] = listify(export(m, n.Nested))
		case IsList(n.Kind):
			m, _ := v.(map[string]any)
			members := make(map[string]any, len(m))
			for mk, mv := range m {
				mm, _ := mv.(map[string]any)
				members[mk] = listify(export(mm, n.Nested))
			}
			out[key] = listify(members)
		default:
			out[key] = deepCopy(v)
		}
	}
	return out
}

// listify turns a non-empty block keyed exactly "0".."n-1" into []any.
func listify(m map[string]any) any {
	if len(m) == 0 {
		return m
	}
	out := make([]any, len(m))
	for i := range out {
		v, ok := m[strconv.Itoa(i)]
		if !ok {
			return m
		}
		out[i] = v
	}
	return out
}
