// SPDX-License-Identifier: MIT

package matrixio

// Defaults used by Write and Format.
const (
	// DefaultSeparator separates values on one line.
	DefaultSeparator = " "

	// DefaultPrecision (-1) prints floats with the shortest exact
	// representation, as fmt's %v does.
	DefaultPrecision = -1

	// DefaultRowTerminator ends every emitted line.
	DefaultRowTerminator = "\n"
)

const panicPrecisionInvalid = "matrixio: WithPrecision: precision must be >= -1"

// Option configures Write and Format.
type Option func(*Options)

// Options is the effective writer configuration.
type Options struct {
	separator  string
	precision  int
	terminator string
}

// WithSeparator sets the string placed between values on a line.
func WithSeparator(sep string) Option {
	return func(o *Options) { o.separator = sep }
}

// WithPrecision fixes the number of decimals for float32/float64 elements.
// -1 restores the shortest representation. Panics below -1.
func WithPrecision(p int) Option {
	if p < -1 {
		panic(panicPrecisionInvalid)
	}

	return func(o *Options) { o.precision = p }
}

// WithRowTerminator sets the string written after every line.
func WithRowTerminator(term string) Option {
	return func(o *Options) { o.terminator = term }
}

func gatherOptions(opts ...Option) Options {
	o := Options{
		separator:  DefaultSeparator,
		precision:  DefaultPrecision,
		terminator: DefaultRowTerminator,
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// DefaultMaxLineLength bounds a single input line read by a ReadSession.
const DefaultMaxLineLength = 64 << 20

// initialLineBuffer is the scanner buffer allocated up front; it grows on
// demand up to the maximum line length.
const initialLineBuffer = 64 << 10

const panicMaxLineInvalid = "matrixio: WithMaxLineLength: length must be > 0"

// SessionOption configures a ReadSession.
type SessionOption func(*sessionOptions)

type sessionOptions struct {
	maxLine int
}

// WithMaxLineLength sets the longest line, in bytes, a ReadSession accepts.
// Longer lines fail with ErrLineTooLong. Panics when n <= 0.
func WithMaxLineLength(n int) SessionOption {
	if n <= 0 {
		panic(panicMaxLineInvalid)
	}

	return func(o *sessionOptions) { o.maxLine = n }
}

func gatherSessionOptions(opts ...SessionOption) sessionOptions {
	o := sessionOptions{maxLine: DefaultMaxLineLength}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
