//go:build noexpect

package expect

// Enabled reports whether checks are compiled in. It is false when
// building with the noexpect tag.
const Enabled = false
