package confmerge_test

import (
	"testing"

	"pgregory.net/rapid"

	confmerge "github.com/reoring/confmerge"
)

func leafFragment(t *rapid.T) map[string]any {
	raw := rapid.MapOf(rapid.StringMatching(`[a-z]{1,6}`), rapid.Int()).Draw(t, "fragment")
	frag := make(map[string]any, len(raw))
	for k, v := range raw {
		frag[k] = v
	}
	return frag
}

func TestProperty_LeafMergeIsIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		frag := leafFragment(t)
		c := confmerge.MustNew(nil)
		if err := c.Add(frag); err != nil {
			t.Fatalf("add: %v", err)
		}
		first := c.Get()
		if err := c.Add(frag); err != nil {
			t.Fatalf("re-add: %v", err)
		}
		second := c.Get()
		if len(first) != len(second) {
			t.Fatalf("size changed: %d -> %d", len(first), len(second))
		}
		for k, v := range first {
			if second[k] != v {
				t.Fatalf("key %q changed: %v -> %v", k, v, second[k])
			}
		}
	})
}

func TestProperty_LastFragmentWins(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := leafFragment(t)
		b := leafFragment(t)
		c := confmerge.MustNew(nil)
		if err := c.AddAll(a, b); err != nil {
			t.Fatalf("add: %v", err)
		}
		got := c.Get()
		for k, v := range b {
			if got[k] != v {
				t.Fatalf("key %q: want %v got %v", k, v, got[k])
			}
		}
		for k, v := range a {
			if _, over := b[k]; !over && got[k] != v {
				t.Fatalf("key %q lost: want %v got %v", k, v, got[k])
			}
		}
	})
}

func TestProperty_NumericListAppends(t *testing.T) {
	def := confmerge.Definition{
		"items": confmerge.List(confmerge.Definition{"n": confmerge.Leaf(confmerge.KindInt)}),
	}
	rapid.Check(t, func(t *rapid.T) {
		c := confmerge.MustNew(def)
		rounds := rapid.SliceOfN(rapid.IntRange(1, 5), 1, 4).Draw(t, "rounds")
		total := 0
		for _, n := range rounds {
			members := make([]any, n)
			for i := range members {
				members[i] = map[string]any{"n": total + i}
			}
			if err := c.Add(map[string]any{"items": members}); err != nil {
				t.Fatalf("add: %v", err)
			}
			total += n
		}
		items, ok := c.Get()["items"].([]any)
		if !ok {
			t.Fatalf("expected []any items, got %T", c.Get()["items"])
		}
		if len(items) != total {
			t.Fatalf("expected %d members, got %d", total, len(items))
		}
		for i, it := range items {
			if got := it.(map[string]any)["n"]; got != i {
				t.Fatalf("member %d out of order: %v", i, got)
			}
		}
	})
}

func TestProperty_ExplicitValueBeatsDefault(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		def := rapid.Int().Filter(func(v int) bool { return v != 0 }).Draw(t, "default")
		explicit := rapid.Int().Draw(t, "explicit")
		c := confmerge.MustNew(confmerge.Definition{"a": confmerge.Leaf(confmerge.KindInt).WithDefault(def)})
		if err := c.Add(nil); err != nil {
			t.Fatalf("add: %v", err)
		}
		if got := c.Get()["a"]; got != def {
			t.Fatalf("default not applied: %v", got)
		}
		if err := c.AddAll(map[string]any{"a": explicit}, nil); err != nil {
			t.Fatalf("add: %v", err)
		}
		if got := c.Get()["a"]; got != explicit {
			t.Fatalf("explicit value lost: want %d got %v", explicit, got)
		}
	})
}
