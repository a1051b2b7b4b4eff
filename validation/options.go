package validation

import "github.com/kbukum/validify/logger"

// Option configures a validator.
type Option func(*options)

type options struct {
	log *logger.Logger
}

// WithLogger logs every recorded violation and message override at debug
// level. Without it validators log nothing.
func WithLogger(l *logger.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l.WithComponent("validation")
		}
	}
}
