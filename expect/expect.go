package expect

import (
	"os"
	"strings"

	"go.dw1.io/guard/internal/json"
)

// Expect runs cond and reacts to a false result according to the policy
// in effect, [RaiseError] unless an option says otherwise. A nil cond
// counts as false.
//
// The returned error is non-nil only under RaiseError.
func Expect(cond func() bool, msg string, opts ...Option) error {
	if !Enabled || (cond != nil && cond()) {
		return nil
	}

	return fail(newOptions(nil, opts), msg)
}

// That is like [Expect] for a condition that is already evaluated.
func That(cond bool, msg string, opts ...Option) error {
	if !Enabled || cond {
		return nil
	}

	return fail(newOptions(nil, opts), msg)
}

// Must panics with err if it is non-nil. It turns the result of a
// [RaiseError] check into a panic.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// Checker is a check site with preset options. The zero value uses the
// defaults. A Checker is immutable and safe for concurrent use.
type Checker struct {
	opts []Option
}

// New returns a Checker that applies opts to every check. Options passed
// to a single call are applied after them, for that call only.
func New(opts ...Option) Checker {
	return Checker{opts: append([]Option(nil), opts...)}
}

// Policy returns the policy c applies when no per-call option overrides it.
func (c Checker) Policy() Policy {
	return newOptions(c.opts, nil).policy
}

// Expect is like the package-level [Expect] with c's options.
func (c Checker) Expect(cond func() bool, msg string, opts ...Option) error {
	if !Enabled || (cond != nil && cond()) {
		return nil
	}

	return fail(newOptions(c.opts, opts), msg)
}

// That is like the package-level [That] with c's options.
func (c Checker) That(cond bool, msg string, opts ...Option) error {
	if !Enabled || cond {
		return nil
	}

	return fail(newOptions(c.opts, opts), msg)
}

// fail must be called directly by the exported check so that the caller
// is two frames up.
func fail(o *options, msg string) error {
	if o.policy == Ignore {
		return nil
	}

	loc := o.location
	if !o.explicit && !o.noLocation {
		loc = Caller(2 + o.skip)
	}

	switch o.policy {
	case Log:
		o.log(msg, loc)
		return nil
	case Abort:
		o.abort(&Error{Message: msg, Location: loc})
	}

	return &Error{Message: msg, Location: loc}
}

type logLine struct {
	Expect   string `json:"expect"`
	File     string `json:"file,omitempty"`
	Line     int    `json:"line,omitempty"`
	Column   int    `json:"column,omitempty"`
	Function string `json:"function,omitempty"`
}

// lineEscaper keeps a plain diagnostic on one line.
var lineEscaper = strings.NewReplacer("\n", `\n`, "\r", `\r`)

// log writes a single line with a single Write call. Write errors are
// dropped: a failed diagnostic must not change control flow.
func (o *options) log(msg string, loc Location) {
	if o.json {
		err := json.NewEncoder(o.out).Encode(logLine{
			Expect:   msg,
			File:     loc.File,
			Line:     loc.Line,
			Column:   loc.Column,
			Function: loc.Function,
		})
		if err == nil {
			return
		}
	}

	_, _ = o.out.Write([]byte("expect(" + lineEscaper.Replace(msg) + ")\n"))
}

func (o *options) abort(err *Error) {
	_, _ = o.out.Write([]byte(lineEscaper.Replace(err.Error()) + "\n"))
	os.Exit(o.exitCode)
}
