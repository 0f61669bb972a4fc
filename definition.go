package confmerge

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// ErrInvalidDefinition is returned (wrapped) when a definition violates the
// node invariants or cannot be parsed.
var ErrInvalidDefinition = errors.New("confmerge: invalid definition")

// Definition maps configuration keys to their definition nodes.
type Definition map[string]Node

// Node describes one key of a Definition.
//
// Block kinds (KindBlock, KindList) always carry a non-nil Nested definition,
// leaf and wildcard kinds never do. Default is applied to absent leaf and
// wildcard keys; nil means "no default".
type Node struct {
	Kind    Kind
	Nested  Definition
	Default any
}

// Leaf returns a node of the given leaf or wildcard kind.
func Leaf(k Kind) Node { return Node{Kind: k} }

// Block returns a single-block node over nested.
func Block(nested Definition) Node {
	if nested == nil {
		nested = Definition{}
	}
	return Node{Kind: KindBlock, Nested: nested}
}

// List returns a list-block node whose members follow nested.
func List(nested Definition) Node {
	if nested == nil {
		nested = Definition{}
	}
	return Node{Kind: KindList, Nested: nested}
}

// WithDefault returns a copy of n carrying the default value v.
func (n Node) WithDefault(v any) Node {
	n.Default = v
	return n
}

// Clone returns a deep copy of d. Defaults are deep-copied as well.
func (d Definition) Clone() Definition {
	if d == nil {
		return nil
	}
	out := make(Definition, len(d))
	for k, n := range d {
		out[k] = Node{Kind: n.Kind, Nested: n.Nested.Clone(), Default: deepCopy(n.Default)}
	}
	return out
}

func (d Definition) validate(p keyPath) error {
	for _, key := range slices.Sorted(maps.Keys(d)) {
		n := d[key]
		kp := p.push(key)
		switch {
		case !n.Kind.Valid():
			return fmt.Errorf("%w: %q has kind %q", ErrInvalidDefinition, kp.trail(), n.Kind)
		case IsAnyBlock(n.Kind) && n.Nested == nil:
			return fmt.Errorf("%w: %q is %q without nested definition", ErrInvalidDefinition, kp.trail(), n.Kind)
		case !IsAnyBlock(n.Kind) && n.Nested != nil:
			return fmt.Errorf("%w: %q is %q but carries a nested definition", ErrInvalidDefinition, kp.trail(), n.Kind)
		case IsAnyBlock(n.Kind) && n.Default != nil:
			return fmt.Errorf("%w: %q is %q and cannot have a default", ErrInvalidDefinition, kp.trail(), n.Kind)
		}
		if IsAnyBlock(n.Kind) {
			if err := n.Nested.validate(kp); err != nil {
				return err
			}
		}
	}
	return nil
}

// ParseDefinition builds a Definition from its document form, as decoded
// from JSON or YAML:
//
//	host:    {type: string, default: localhost}
//	server:  {type: conf, definition: {port: {type: int}}}
//	workers: {type: list, definition: {name: {type: string}}}
//
// The result is validated before it is returned.
func ParseDefinition(raw map[string]any) (Definition, error) {
	def, err := parseDefinition(raw, rootPath())
	if err != nil {
		return nil, err
	}
	if err := def.validate(rootPath()); err != nil {
		return nil, err
	}
	return def, nil
}

func parseDefinition(raw map[string]any, p keyPath) (Definition, error) {
	def := make(Definition, len(raw))
	for _, key := range slices.Sorted(maps.Keys(raw)) {
		kp := p.push(key)
		entry, ok := asMapping(raw[key])
		if !ok {
			return nil, fmt.Errorf("%w: %q must be a mapping, got %s", ErrInvalidDefinition, kp.trail(), runtimeKindName(raw[key]))
		}
		name, ok := entry["type"].(string)
		if !ok {
			return nil, fmt.Errorf("%w: %q has no type", ErrInvalidDefinition, kp.trail())
		}
		k, err := ParseKind(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidDefinition, kp.trail(), err)
		}
		n := Node{Kind: k, Default: deepCopy(entry["default"])}
		if nestedRaw, ok := entry["definition"]; ok {
			nested, ok := asMapping(nestedRaw)
			if !ok {
				return nil, fmt.Errorf("%w: %q definition must be a mapping", ErrInvalidDefinition, kp.trail())
			}
			if n.Nested, err = parseDefinition(nested, kp); err != nil {
				return nil, err
			}
		} else if IsAnyBlock(k) {
			n.Nested = Definition{}
		}
		def[key] = n
	}
	return def, nil
}

// Map renders d back into its document form (see ParseDefinition).
func (d Definition) Map() map[string]any {
	out := make(map[string]any, len(d))
	for key, n := range d {
		entry := map[string]any{"type": n.Kind.String()}
		if n.Default != nil {
			entry["default"] = deepCopy(n.Default)
		}
		if n.Nested != nil {
			entry["definition"] = n.Nested.Map()
		}
		out[key] = entry
	}
	return out
}
