package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"
)

// File loads the fragments stored at path, picking the decoder by extension:
// .json (one fragment), .yaml/.yml (one per document) and .env (one fragment,
// all variables, DefaultSeparator nesting). opts apply to the JSON and dotenv
// decoders.
func File(path string, opts ...Option) ([]map[string]any, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("source: %w", err)
	}
	defer f.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		m, err := JSON(f, opts...)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return []map[string]any{m}, nil
	case ".yaml", ".yml":
		docs, err := YAML(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return docs, nil
	case ".env":
		m, err := Dotenv(f, "", DefaultSeparator, opts...)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return []map[string]any{m}, nil
	default:
		return nil, fmt.Errorf("source: %s: unsupported extension %q", path, ext)
	}
}

// Files loads every path concurrently and returns the fragments in path order,
// documents of one file in document order. The first failure cancels the
// remaining loads.
func Files(ctx context.Context, paths []string, opts ...Option) ([]map[string]any, error) {
	loaded := make([][]map[string]any, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, p := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			docs, err := File(p, opts...)
			if err != nil {
				return err
			}
			loaded[i] = docs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	var out []map[string]any
	for _, docs := range loaded {
		out = append(out, docs...)
	}
	return out, nil
}
