package i18n

import "strings"

// Translator retrieves localized messages for issue codes.
// data provides the values to embed in the message ("path", "key",
// "expected", "got").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

var templates = map[string]map[string]string{
	"en": {
		"undefined_key": `undefined configuration key "{key}" for "{path}"`,
		"invalid_value": `invalid value for "{path}": expected type "{expected}", got "{got}"`,
		"empty_value":   `empty value for "{path}": expected type "{expected}"`,
	},
	"ja": {
		"undefined_key": `"{path}" に未定義の設定キー "{key}" があります`,
		"invalid_value": `"{path}" の値が不正です: 期待する型 "{expected}", 実際の型 "{got}"`,
		"empty_value":   `"{path}" の値が空です: 期待する型 "{expected}"`,
	},
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	tpl, ok := templates[t.lang][code]
	if !ok {
		return code
	}
	return render(tpl, data)
}

// render substitutes {name} placeholders; unknown placeholders render empty.
func render(tpl string, data map[string]string) string {
	b := &strings.Builder{}
	for {
		open := strings.IndexByte(tpl, '{')
		if open < 0 {
			b.WriteString(tpl)
			return b.String()
		}
		end := strings.IndexByte(tpl[open:], '}')
		if end < 0 {
			b.WriteString(tpl)
			return b.String()
		}
		b.WriteString(tpl[:open])
		b.WriteString(data[tpl[open+1:open+end]])
		tpl = tpl[open+end+1:]
	}
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
