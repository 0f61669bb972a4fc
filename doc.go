// Package confmerge incrementally builds a validated configuration tree from
// loosely typed fragments (maps decoded from JSON, YAML, env files, flags, ...).
//
// A Definition declares per key a Kind (bool, int, float, string, wildcard,
// single block or keyed list of blocks), an optional nested Definition and an
// optional default. A Configuration owns a copy of the Definition and merges
// every fragment passed to Add into its running result:
//
//   - leaf and wildcard values: last fragment wins
//   - single blocks: merged recursively
//   - list blocks: merged by member key, or appended when both sides are
//     index-keyed lists
//   - defaults fill absent leaf keys of every visited level
//
// Two policies are fixed at construction. KeyFlexible infers definitions for
// unknown keys while KeyStrict rejects them and reports required keys that stay
// empty. TypeCast coerces leaf values while TypeStrict rejects mismatches.
//
// Typical usage:
//
//	def, _ := confmerge.ParseDefinition(raw)
//	c, err := confmerge.New(def, confmerge.WithKeyMode(confmerge.KeyStrict))
//	if err := c.Add(base); err != nil {
//		iss, _ := confmerge.AsIssues(err)
//		...
//	}
//	_ = c.Add(override)
//	result := c.Get()
//
// Failures are reported as Issues carrying a JSON Pointer path and a stable
// code. The package performs no I/O; see the source subpackage for decoders.
package confmerge
