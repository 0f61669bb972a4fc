package confmerge

import (
	"encoding/json"
	"testing"
)

func TestResolveDefinition(t *testing.T) {
	def := Definition{"a": Leaf(KindInt)}

	n, inferred, err := resolveDefinition(1, "a", def, rootPath().push("a"), false)
	if err != nil || inferred || n.Kind != KindInt {
		t.Fatalf("known key: n=%v inferred=%v err=%v", n, inferred, err)
	}

	n, inferred, err = resolveDefinition(map[string]any{}, "blk", def, rootPath().push("blk"), true)
	if err != nil || !inferred || n.Kind != KindBlock || n.Nested == nil {
		t.Fatalf("mapping: n=%v inferred=%v err=%v", n, inferred, err)
	}
	if def["blk"].Kind != KindBlock {
		t.Fatalf("definition not extended: %v", def)
	}

	n, _, _ = resolveDefinition("x", "w", def, rootPath().push("w"), true)
	if n.Kind != KindWildcard {
		t.Fatalf("expected wildcard, got %v", n.Kind)
	}

	_, _, err = resolveDefinition("x", "zz", def, rootPath().push("blk").push("zz"), false)
	iss, ok := AsIssues(err)
	if !ok || iss[0].Code != CodeUndefinedKey || iss[0].Path != "/blk" {
		t.Fatalf("expected undefined_key at /blk, got %v", err)
	}
	if _, exists := def["zz"]; exists {
		t.Fatalf("strict mode must not extend the definition")
	}
}

func TestCheckType_Cast(t *testing.T) {
	cases := []struct {
		kind Kind
		in   any
		want any
	}{
		{KindString, 1, "1"},
		{KindInt, "2", 2},
		{KindInt, 12.9, 12},
		{KindFloat, "3.5", 3.5},
		{KindBool, 1, true},
		{KindBool, 0, false},
		{KindInt, "010", 10},
		{KindInt, "0x1F", 0},
		{KindInt, " 42 ", 42},
		{KindInt, "12abc", 12},
		{KindInt, "12.9", 12},
		{KindInt, "-3", -3},
		{KindInt, "1e3", 1000},
		{KindInt, "abc", 0},
		{KindFloat, " 2.5x", 2.5},
		{KindFloat, "abc", 0.0},
		{KindBool, "yes", true},
		{KindBool, "abc", true},
		{KindBool, "false", true},
		{KindBool, "0", false},
		{KindBool, "", false},
		{KindWildcard, []any{1}, []any{1}},
	}
	for _, tc := range cases {
		got, err := checkType(tc.in, Leaf(tc.kind), rootPath().push("k"), true)
		if err != nil {
			t.Fatalf("%v(%v): unexpected err %v", tc.kind, tc.in, err)
		}
		if s, ok := tc.want.([]any); ok {
			if g, ok := got.([]any); !ok || len(g) != len(s) {
				t.Fatalf("%v(%v): got %#v", tc.kind, tc.in, got)
			}
			continue
		}
		if got != tc.want {
			t.Fatalf("%v(%v): want %#v got %#v", tc.kind, tc.in, tc.want, got)
		}
	}
}

func TestCheckType_Strict(t *testing.T) {
	ok := []struct {
		kind Kind
		in   any
	}{
		{KindInt, int64(3)},
		{KindInt, uint8(3)},
		{KindInt, json.Number("3")},
		{KindFloat, float32(1.5)},
		{KindFloat, json.Number("1.5")},
		{KindString, ""},
		{KindBool, false},
		{KindWildcard, struct{}{}},
	}
	for _, tc := range ok {
		if _, err := checkType(tc.in, Leaf(tc.kind), rootPath().push("k"), false); err != nil {
			t.Fatalf("%v(%#v): unexpected err %v", tc.kind, tc.in, err)
		}
	}

	bad := []struct {
		kind Kind
		in   any
		got  string
	}{
		{KindInt, 1.0, "float"},
		{KindFloat, 1, "int"},
		{KindBool, "true", "string"},
		{KindString, nil, "null"},
		{KindString, map[string]any{}, "array"},
		{KindInt, struct{}{}, "object"},
	}
	for _, tc := range bad {
		_, err := checkType(tc.in, Leaf(tc.kind), rootPath().push("k"), false)
		iss, isIss := AsIssues(err)
		if !isIss || iss[0].Params["got"] != tc.got {
			t.Fatalf("%v(%#v): expected got=%s, err=%v", tc.kind, tc.in, tc.got, err)
		}
	}
}

func TestCheckType_BlockKinds(t *testing.T) {
	for _, cast := range []bool{true, false} {
		if _, err := checkType([]any{}, List(nil), rootPath().push("l"), cast); err != nil {
			t.Fatalf("slice must count as mapping: %v", err)
		}
		if _, err := checkType(map[any]any{1: "x"}, Block(nil), rootPath().push("b"), cast); err != nil {
			t.Fatalf("map[any]any must count as mapping: %v", err)
		}
		if _, err := checkType(3, Block(nil), rootPath().push("b"), cast); err == nil {
			t.Fatalf("scalar accepted for block (cast=%v)", cast)
		}
	}
}
