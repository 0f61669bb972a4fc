package confmerge

import (
	"fmt"

	"go.uber.org/zap"
)

// Configuration accumulates fragments into a validated configuration tree.
//
// A Configuration owns a private copy of its Definition; under KeyFlexible the
// copy grows with inferred nodes. It is not safe for concurrent use.
type Configuration struct {
	definition    Definition
	flexibleKey   bool
	castType      bool
	logger        *zap.Logger
	configuration map[string]any
	presence      PresenceMap
}

// New returns an empty Configuration over a copy of def.
//
// It fails with ErrInvalidMode for out-of-range modes and with
// ErrInvalidDefinition when def violates the node invariants.
func New(def Definition, opts ...Option) (*Configuration, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !o.keyMode.valid() {
		return nil, fmt.Errorf("%w: key mode %d", ErrInvalidMode, int(o.keyMode))
	}
	if !o.typeMode.valid() {
		return nil, fmt.Errorf("%w: type mode %d", ErrInvalidMode, int(o.typeMode))
	}
	if err := def.validate(rootPath()); err != nil {
		return nil, err
	}
	owned := def.Clone()
	if owned == nil {
		owned = Definition{}
	}
	return &Configuration{
		definition:    owned,
		flexibleKey:   o.keyMode == KeyFlexible,
		castType:      o.typeMode == TypeCast,
		logger:        o.logger,
		configuration: map[string]any{},
		presence:      PresenceMap{},
	}, nil
}

// MustNew is like New but panics on error.
func MustNew(def Definition, opts ...Option) *Configuration {
	c, err := New(def, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Add validates fragment and merges it into the configuration.
//
// On failure the returned error is Issues holding a single issue. The merge
// is not transactional: values written before the failing key stay merged, so
// callers that need all-or-nothing semantics must discard the Configuration.
func (c *Configuration) Add(fragment map[string]any) error {
	return c.addToConfiguration(c.configuration, fragment, c.definition, rootPath())
}

// AddAll adds fragments in order and stops at the first failure.
func (c *Configuration) AddAll(fragments ...map[string]any) error {
	for _, f := range fragments {
		if err := c.Add(f); err != nil {
			return err
		}
	}
	return nil
}

// Get returns a deep copy of the merged configuration. Blocks whose keys are
// exactly "0".."n-1" are returned as []any, every other block as map[string]any.
func (c *Configuration) Get() map[string]any {
	return export(c.configuration, c.definition)
}

// Definition returns a copy of the definition in use, including nodes
// inferred under KeyFlexible.
func (c *Configuration) Definition() Definition { return c.definition.Clone() }

// Presence returns a copy of the presence flags collected so far.
func (c *Configuration) Presence() PresenceMap { return mergePresenceMaps(nil, c.presence) }
