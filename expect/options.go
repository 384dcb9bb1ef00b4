package expect

import (
	"io"
	"os"
)

// DefaultExitCode is the exit status used by [Abort], 128+SIGABRT.
const DefaultExitCode = 134

type options struct {
	policy     Policy
	location   Location
	explicit   bool
	noLocation bool
	skip       int
	out        io.Writer
	json       bool
	exitCode   int
}

// Option configures a check or a [Checker].
type Option func(*options)

func newOptions(base, call []Option) *options {
	o := &options{
		policy:   DefaultPolicy,
		out:      os.Stderr,
		exitCode: DefaultExitCode,
	}

	for _, opt := range base {
		opt(o)
	}

	for _, opt := range call {
		opt(o)
	}

	return o
}

// WithPolicy sets the reaction to a failed check. Undefined values behave
// like [RaiseError].
func WithPolicy(p Policy) Option {
	return func(o *options) {
		o.policy = p
	}
}

// WithLocation reports loc as the call site instead of capturing it.
func WithLocation(loc Location) Option {
	return func(o *options) {
		o.location = loc
		o.explicit = true
		o.noLocation = false
	}
}

// WithoutLocation disables call-site capture. Failures then carry only
// their message.
func WithoutLocation() Option {
	return func(o *options) {
		o.location = Location{}
		o.noLocation = true
		o.explicit = false
	}
}

// WithCallerSkip skips n additional stack frames when capturing the call
// site, for helpers that wrap a check.
func WithCallerSkip(n int) Option {
	return func(o *options) {
		o.skip = n
	}
}

// WithOutput sets the diagnostic output used by [Log] and [Abort]. A nil
// w discards output.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		if w == nil {
			w = io.Discard
		}
		o.out = w
	}
}

// WithJSON makes [Log] write one JSON object per failure instead of the
// plain "expect(<message>)" line.
func WithJSON() Option {
	return func(o *options) {
		o.json = true
	}
}

// WithExitCode sets the exit status used by [Abort].
func WithExitCode(code int) Option {
	return func(o *options) {
		o.exitCode = code
	}
}
