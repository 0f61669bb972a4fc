package confmerge

// Presence is the bit flag recorded for every path written by Add.
type Presence uint8

const (
	PresenceSeen           Presence = 1 << iota // Value came from a fragment.
	PresenceDefaultApplied                      // Default value was applied.
)

// PresenceMap maps JSON Pointers to Presence flags.
type PresenceMap map[string]Presence

// Has reports whether every bit of f is set for path.
func (pm PresenceMap) Has(path string, f Presence) bool { return pm[path]&f == f }

func (pm PresenceMap) mark(path string, f Presence) { pm[path] |= f }

// mergePresenceMaps returns a new PresenceMap that is the bitwise-OR merge of a and b.
func mergePresenceMaps(a, b PresenceMap) PresenceMap {
	out := make(PresenceMap, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] |= v
	}
	return out
}
