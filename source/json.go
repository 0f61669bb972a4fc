package source

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	eng "github.com/reoring/confmerge/internal/engine"
)

// ErrNotMapping is returned when a document's top-level value is not a mapping.
var ErrNotMapping = errors.New("source: top-level value is not a mapping")

// JSON decodes a single JSON object into a fragment. Numbers become int when
// integral and float64 otherwise; duplicate keys are rejected with an
// engine.IssueError carrying the JSON Pointer of the duplicate.
func JSON(r io.Reader, opts ...Option) (map[string]any, error) {
	o := buildOptions(opts)
	src := eng.WrapWithEnforcement(newTokenSource(r), eng.EnforceOptions{MaxDepth: o.maxDepth})
	v, err := eng.DecodeAny(src)
	if err != nil {
		return nil, fmt.Errorf("source: json: %w", err)
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w (json)", ErrNotMapping)
	}
	if _, err := src.NextToken(); !errors.Is(err, io.EOF) {
		if err == nil {
			return nil, errors.New("source: json: trailing data after top-level object")
		}
		return nil, fmt.Errorf("source: json: %w", err)
	}
	return m, nil
}

// JSONBytes is JSON over a byte slice.
func JSONBytes(b []byte, opts ...Option) (map[string]any, error) {
	return JSON(bytes.NewReader(b), opts...)
}
