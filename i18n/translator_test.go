package i18n

import "testing"

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	data := map[string]string{"path": "* > a", "expected": "int", "got": "float"}
	want := `invalid value for "* > a": expected type "int", got "float"`
	if msg := T("invalid_value", data); msg != want {
		t.Fatalf("expected %q, got %q", want, msg)
	}

	SetLanguage("ja")
	if msg := T("invalid_value", data); msg == want {
		t.Fatalf("expected japanese message, got %q", msg)
	}

	// reset to en
	SetLanguage("en")
}

func TestTranslator_UnknownCodeEchoes(t *testing.T) {
	if msg := T("nope", nil); msg != "nope" {
		t.Fatalf("expected code echo, got %q", msg)
	}
}

type upper struct{}

func (upper) Message(code string, data map[string]string) string { return "X:" + code }

func TestSetTranslator(t *testing.T) {
	SetTranslator(upper{})
	defer SetTranslator(nil)
	if msg := T("empty_value", nil); msg != "X:empty_value" {
		t.Fatalf("custom translator not used, got %q", msg)
	}
}

func TestRender_MissingPlaceholder(t *testing.T) {
	if got := render(`a "{key}" b {nope}`, map[string]string{"key": "k"}); got != `a "k" b ` {
		t.Fatalf("unexpected render: %q", got)
	}
}
