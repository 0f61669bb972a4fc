package confmerge

import (
	"reflect"
	"testing"
)

func TestIndexKey(t *testing.T) {
	for k, want := range map[string]bool{"0": true, "12": true, "01": false, "-1": false, "": false, "a": false, "1.0": false} {
		if _, ok := indexKey(k); ok != want {
			t.Fatalf("indexKey(%q) = %v, want %v", k, ok, want)
		}
	}
}

func TestOnlyIndexKeysAndHighest(t *testing.T) {
	if !onlyIndexKeys(map[string]any{}) || !onlyIndexKeys([]any{"x"}) {
		t.Fatalf("empty maps and slices are index-keyed")
	}
	if onlyIndexKeys(map[string]any{"0": 1, "x": 2}) || onlyIndexKeys("s") {
		t.Fatalf("mixed keys and scalars are not index-keyed")
	}
	if h := highestIndex(map[string]any{"3": 1, "10": 1, "2": 1}); h != 10 {
		t.Fatalf("highestIndex = %d", h)
	}
	if h := highestIndex(map[string]any{}); h != -1 {
		t.Fatalf("highestIndex(empty) = %d", h)
	}
}

func TestListify(t *testing.T) {
	if got := listify(map[string]any{"1": "b", "0": "a"}); !reflect.DeepEqual(got, []any{"a", "b"}) {
		t.Fatalf("listify contiguous: %#v", got)
	}
	gap := map[string]any{"0": "a", "2": "c"}
	if got := listify(gap); !reflect.DeepEqual(got, gap) {
		t.Fatalf("listify gap: %#v", got)
	}
	empty := map[string]any{}
	if got := listify(empty); !reflect.DeepEqual(got, empty) {
		t.Fatalf("listify empty: %#v", got)
	}
}

func TestOrderedKeys(t *testing.T) {
	if got := orderedKeys(map[string]any{"10": 1, "2": 1, "0": 1}); !reflect.DeepEqual(got, []string{"0", "2", "10"}) {
		t.Fatalf("numeric order: %v", got)
	}
	if got := orderedKeys(map[string]any{"b": 1, "10": 1, "a": 1}); !reflect.DeepEqual(got, []string{"10", "a", "b"}) {
		t.Fatalf("lexicographic order: %v", got)
	}
}

func TestDeepCopy(t *testing.T) {
	src := map[string]any{"a": []any{map[string]any{"b": 1}}}
	cp := deepCopy(src).(map[string]any)
	cp["a"].([]any)[0].(map[string]any)["b"] = 2
	if src["a"].([]any)[0].(map[string]any)["b"] != 1 {
		t.Fatalf("deepCopy aliased nested values")
	}
}
