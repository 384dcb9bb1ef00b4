// Package expect provides runtime expectation checks with a failure policy
// chosen at the call site.
//
// A check evaluates a condition and, when it does not hold, reacts
// according to its [Policy]:
//
//   - [Ignore] does nothing.
//   - [Log] writes one line, "expect(<message>)", to the diagnostic output
//     (os.Stderr unless [WithOutput] says otherwise) and returns nil.
//     Newlines and carriage returns in the message are written as \n and
//     \r so that the entry stays on one line.
//   - [RaiseError] returns an [*Error] that describes the failure and the
//     call site. This is the default.
//   - [Abort] writes the failure to the diagnostic output and exits the
//     process. It never returns; deferred functions do not run.
//
// Conditions are preferably passed as predicates so that they are only
// evaluated when the check runs:
//
//	if err := expect.Expect(func() bool { return len(buf) <= limit }, "buffer within limit"); err != nil {
//		return err
//	}
//
// There is no process-wide policy switch. A [Checker] captures a set of
// options once so a call site, or a group of them, can share a policy:
//
//	var check = expect.New(expect.WithPolicy(expect.Log))
//
//	check.Expect(func() bool { return n > 0 }, "n is positive")
//
// # Call-site location
//
// Failures record the file, line and function of the caller by default.
// Go does not expose column information, so the column is reported only
// when supplied explicitly with [WithLocation]. [WithoutLocation] disables
// capture entirely, in which case messages carry no location.
//
// # Compiling checks out
//
// Building with the noexpect tag turns every check into a no-op that never
// evaluates its predicate. [Enabled] reports which mode is compiled in.
package expect
