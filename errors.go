package confmerge

import (
	"errors"
	"fmt"
	"strings"

	"github.com/reoring/confmerge/i18n"
)

// Issue codes.
const (
	CodeUndefinedKey = "undefined_key" // Unknown key under KeyStrict.
	CodeInvalidValue = "invalid_value" // Value does not match the declared kind.
	CodeEmptyValue   = "empty_value"   // Required key without value or default under KeyStrict.
)

// ErrInvalidMode is returned by New when a KeyMode or TypeMode is out of range.
var ErrInvalidMode = errors.New("confmerge: invalid mode")

// Issue represents a single merge diagnostic.
type Issue struct {
	Path    string // JSON Pointer of the offending location (for example: /server/port).
	Code    string // One of the codes listed above.
	Message string
	// Params carries the structured payload: "path" (human trail), "key",
	// "expected" and "got", depending on Code.
	Params map[string]any
}

// Issues is a collection of merge diagnostics that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	lim := min(len(iss), maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		if iss[i].Message != "" {
			b.WriteString(iss[i].Message)
			continue
		}
		fmt.Fprintf(b, "%s at %s", iss[i].Code, iss[i].Path)
	}
	if len(iss) > lim {
		fmt.Fprintf(b, "; ... (total %d)", len(iss))
	}
	return b.String()
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// HasCode reports whether err carries an issue with the given code.
func HasCode(err error, code string) bool {
	iss, ok := AsIssues(err)
	if !ok {
		return false
	}
	for _, it := range iss {
		if it.Code == code {
			return true
		}
	}
	return false
}

// undefinedKey is reported against the container of key, not the key itself.
func undefinedKey(container keyPath, key string) Issues {
	data := map[string]string{"key": key, "path": container.trail()}
	return Issues{{
		Path:    container.pointer(),
		Code:    CodeUndefinedKey,
		Message: i18n.T(CodeUndefinedKey, data),
		Params:  map[string]any{"key": key, "path": container.trail()},
	}}
}

func invalidValue(p keyPath, expected Kind, value any) Issues {
	got := runtimeKindName(value)
	data := map[string]string{"path": p.trail(), "expected": expected.String(), "got": got}
	return Issues{{
		Path:    p.pointer(),
		Code:    CodeInvalidValue,
		Message: i18n.T(CodeInvalidValue, data),
		Params:  map[string]any{"path": p.trail(), "expected": expected.String(), "got": got},
	}}
}

func emptyValue(p keyPath, expected Kind) Issues {
	data := map[string]string{"path": p.trail(), "expected": expected.String()}
	return Issues{{
		Path:    p.pointer(),
		Code:    CodeEmptyValue,
		Message: i18n.T(CodeEmptyValue, data),
		Params:  map[string]any{"path": p.trail(), "expected": expected.String()},
	}}
}
