package confmerge

import "fmt"

// Kind is the declared category of a definition node.
type Kind int

const (
	KindInvalid  Kind = iota
	KindBool          // Leaf: bool.
	KindInt           // Leaf: int.
	KindFloat         // Leaf: float64.
	KindString        // Leaf: string.
	KindWildcard      // Any value, stored unchanged.
	KindBlock         // A single nested block.
	KindList          // A keyed collection of nested blocks.
)

var kindNames = map[Kind]string{
	KindBool:     "bool",
	KindInt:      "int",
	KindFloat:    "float",
	KindString:   "string",
	KindWildcard: "*",
	KindBlock:    "conf",
	KindList:     "list",
}

// String returns the name used in definition documents ("int", "conf", "*", ...).
func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return "invalid"
}

// ParseKind maps a definition type name back to its Kind.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return KindInvalid, fmt.Errorf("confmerge: unknown kind %q", name)
}

// Valid reports whether k is one of the recognised kinds.
func (k Kind) Valid() bool { return IsLeaf(k) || IsWildcard(k) || IsAnyBlock(k) }

// IsLeaf reports whether k is a scalar value kind.
func IsLeaf(k Kind) bool {
	return k == KindBool || k == KindInt || k == KindFloat || k == KindString
}

func IsWildcard(k Kind) bool { return k == KindWildcard }

// IsBlock reports whether k is a single nested block.
func IsBlock(k Kind) bool { return k == KindBlock }

// IsList reports whether k is a keyed list of nested blocks.
func IsList(k Kind) bool { return k == KindList }

func IsAnyBlock(k Kind) bool { return IsBlock(k) || IsList(k) }

// hasValidKind is false when key is absent from def or carries an invalid kind.
func hasValidKind(def Definition, key string) bool {
	n, ok := def[key]
	return ok && n.Kind.Valid()
}
