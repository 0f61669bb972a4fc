package confmerge

import (
	"cmp"
	"maps"
	"slices"
	"strconv"

	"go.uber.org/zap"
)

// addToConfiguration merges one level of fragment into conf.
//
// Every key of the level is resolved against def before any value of the level
// is checked or written, so unknown keys are reported ahead of type errors.
func (c *Configuration) addToConfiguration(conf, fragment map[string]any, def Definition, p keyPath) error {
	keys := orderedKeys(fragment)
	nodes := make([]Node, len(keys))
	for i, key := range keys {
		kp := p.push(key)
		n, inferred, err := resolveDefinition(fragment[key], key, def, kp, c.flexibleKey)
		if err != nil {
			return err
		}
		if inferred {
			c.logger.Debug("inferred definition", zap.String("path", kp.pointer()), zap.Stringer("kind", n.Kind))
		}
		nodes[i] = n
	}

	for i, key := range keys {
		kp := p.push(key)
		n := nodes[i]
		value, err := checkType(fragment[key], n, kp, c.castType)
		if err != nil {
			return err
		}
		c.presence.mark(kp.pointer(), PresenceSeen)

		switch {
		case IsLeaf(n.Kind), IsWildcard(n.Kind):
			conf[key] = deepCopy(value)
		case IsBlock(n.Kind):
			sub, _ := asMapping(value)
			if err := c.addToConfiguration(ensureBlock(conf, key), sub, n.Nested, kp); err != nil {
				return err
			}
		case IsList(n.Kind):
			if err := c.addList(ensureBlock(conf, key), value, n.Nested, kp); err != nil {
				return err
			}
		}
	}

	c.fillDefaults(conf, def, p)
	return c.checkMissing(conf, def, p)
}

// addList merges the members of value into container. When both sides are
// index-keyed the members are appended after the highest existing index;
// otherwise members are matched by key.
func (c *Configuration) addList(container map[string]any, value any, nested Definition, p keyPath) error {
	appending := onlyIndexKeys(value) && onlyIndexKeys(container)
	members, _ := asMapping(value)
	next := highestIndex(container)

	for _, mk := range orderedKeys(members) {
		target := mk
		if appending {
			next++
			target = strconv.Itoa(next)
			c.logger.Debug("appended list member", zap.String("path", p.pointer()), zap.String("member", target))
		}
		mp := p.push(target)
		raw := members[mk]
		sub, ok := asMapping(raw)
		if !ok {
			return invalidValue(mp, KindBlock, raw)
		}
		c.presence.mark(mp.pointer(), PresenceSeen)
		if err := c.addToConfiguration(ensureBlock(container, target), sub, nested, mp); err != nil {
			return err
		}
	}
	return nil
}

// fillDefaults sets the default of every absent non-block key of def whose
// default is not empty (see emptyDefault).
func (c *Configuration) fillDefaults(conf map[string]any, def Definition, p keyPath) {
	for _, key := range slices.Sorted(maps.Keys(def)) {
		n := def[key]
		if IsAnyBlock(n.Kind) || emptyDefault(n.Default) || present(conf, key) {
			continue
		}
		conf[key] = deepCopy(n.Default)
		ptr := p.push(key).pointer()
		c.presence.mark(ptr, PresenceDefaultApplied)
		c.logger.Debug("applied default", zap.String("path", ptr))
	}
}

// checkMissing reports the first absent non-block key of def under KeyStrict.
func (c *Configuration) checkMissing(conf map[string]any, def Definition, p keyPath) error {
	if c.flexibleKey {
		return nil
	}
	for _, key := range slices.Sorted(maps.Keys(def)) {
		n := def[key]
		if IsAnyBlock(n.Kind) || present(conf, key) {
			continue
		}
		return emptyValue(p.push(key), n.Kind)
	}
	return nil
}

// present mirrors "set and not nil".
func present(conf map[string]any, key string) bool {
	v, ok := conf[key]
	return ok && v != nil
}

// ensureBlock returns conf[key] as a block, replacing anything that is not one.
func ensureBlock(conf map[string]any, key string) map[string]any {
	if m, ok := conf[key].(map[string]any); ok {
		return m
	}
	m := map[string]any{}
	conf[key] = m
	return m
}

// orderedKeys gives Go maps a deterministic merge order: numeric when every
// key is an index, lexicographic otherwise.
func orderedKeys(m map[string]any) []string {
	keys := slices.Collect(maps.Keys(m))
	if onlyIndexKeys(m) {
		slices.SortFunc(keys, func(a, b string) int {
			x, _ := indexKey(a)
			y, _ := indexKey(b)
			return cmp.Compare(x, y)
		})
		return keys
	}
	slices.Sort(keys)
	return keys
}
