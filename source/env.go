package source

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultSeparator splits variable names into nesting levels.
const DefaultSeparator = "__"

// Dotenv parses a dotenv document and turns its variables into a fragment
// (see Environ for the naming rules).
func Dotenv(r io.Reader, prefix, sep string, opts ...Option) (map[string]any, error) {
	vars, err := godotenv.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("source: dotenv: %w", err)
	}
	return fromVars(vars, prefix, sep, buildOptions(opts)), nil
}

// Environ turns KEY=value pairs (as returned by os.Environ) into a fragment.
//
// Only variables named PREFIX<sep>... are used when prefix is set. The rest of
// the name is split on sep and every segment is lower-cased, so with prefix
// "APP" and sep "__" the variable APP__SERVER__PORT=80 becomes
// {"server": {"port": "80"}}. Lower-casing means a camelCase key such as
// "maxConns" is only reachable with WithPreserveCase. Values stay strings.
// When a name is both a value and a block (APP__DB=x and APP__DB__HOST=y) the
// block wins. An empty sep means DefaultSeparator.
func Environ(env []string, prefix, sep string, opts ...Option) map[string]any {
	vars := make(map[string]string, len(env))
	for _, kv := range env {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		vars[k] = v
	}
	return fromVars(vars, prefix, sep, buildOptions(opts))
}

func fromVars(vars map[string]string, prefix, sep string, o options) map[string]any {
	if sep == "" {
		sep = DefaultSeparator
	}
	out := map[string]any{}
	for _, name := range slices.Sorted(maps.Keys(vars)) {
		rest := name
		if prefix != "" {
			var ok bool
			if rest, ok = strings.CutPrefix(name, prefix+sep); !ok {
				continue
			}
		}
		if !o.preserveCase {
			rest = strings.ToLower(rest)
		}
		segs := strings.Split(rest, sep)
		if slices.Contains(segs, "") {
			continue
		}
		insert(out, segs, vars[name])
	}
	return out
}

func insert(m map[string]any, segs []string, value string) {
	for _, s := range segs[:len(segs)-1] {
		next, ok := m[s].(map[string]any)
		if !ok {
			next = map[string]any{}
			m[s] = next
		}
		m = next
	}
	last := segs[len(segs)-1]
	if _, isBlock := m[last].(map[string]any); isBlock {
		return
	}
	m[last] = value
}
