package confmerge

import "go.uber.org/zap"

// Option configures a Configuration at construction.
type Option func(*options)

type options struct {
	keyMode  KeyMode
	typeMode TypeMode
	logger   *zap.Logger
}

func defaultOptions() options {
	return options{keyMode: KeyFlexible, typeMode: TypeCast, logger: zap.NewNop()}
}

// WithKeyMode sets the unknown/missing key policy (default KeyFlexible).
func WithKeyMode(m KeyMode) Option { return func(o *options) { o.keyMode = m } }

// WithTypeMode sets the leaf type policy (default TypeCast).
func WithTypeMode(m TypeMode) Option { return func(o *options) { o.typeMode = m } }

// WithLogger sets the logger receiving debug entries about inferred keys,
// applied defaults and list appends. A nil logger disables logging.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.logger = l
	}
}
