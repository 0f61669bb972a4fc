// Package source decodes configuration fragments from JSON, YAML, dotenv
// documents and the process environment.
package source

// Option configures decoding.
type Option func(*options)

type options struct {
	maxDepth     int
	preserveCase bool
}

// WithMaxDepth rejects documents nested deeper than n containers. n <= 0
// disables the limit.
func WithMaxDepth(n int) Option {
	return func(o *options) { o.maxDepth = n }
}

// WithPreserveCase keeps the case of environment variable segments, so
// APP__maxConns reaches a "maxConns" key. By default segments are lower-cased.
func WithPreserveCase() Option {
	return func(o *options) { o.preserveCase = true }
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
