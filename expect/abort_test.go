//go:build !noexpect

package expect

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"testing"
)

const abortEnv = "GUARD_EXPECT_ABORT_CHILD"

// runAbortChild re-executes the test binary so that only the child dies.
func runAbortChild(t *testing.T, name string, code int) (stdout, stderr string, exit int) {
	t.Helper()

	cmd := exec.Command(os.Args[0], "-test.run=^"+name+"$")
	cmd.Env = append(os.Environ(), abortEnv+"="+strconv.Itoa(code))

	var out, errOut strings.Builder
	cmd.Stdout = &out
	cmd.Stderr = &errOut

	err := cmd.Run()

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("child exited without error status: %v", err)
	}

	return out.String(), errOut.String(), exitErr.ExitCode()
}

func abortInChild(t *testing.T) {
	t.Helper()

	code, err := strconv.Atoi(os.Getenv(abortEnv))
	if err != nil {
		t.Fatalf("bad %s: %v", abortEnv, err)
	}

	defer fmt.Println("deferred")

	opts := []Option{WithPolicy(Abort)}
	if code != DefaultExitCode {
		opts = append(opts, WithExitCode(code))
	}

	_ = Expect(func() bool { return false }, "fatal expectation", opts...)
	fmt.Println("unreachable")
}

func TestAbortTerminates(t *testing.T) {
	if os.Getenv(abortEnv) != "" {
		abortInChild(t)
		return
	}

	stdout, stderr, exit := runAbortChild(t, "TestAbortTerminates", DefaultExitCode)

	if exit != DefaultExitCode {
		t.Fatalf("exit code = %d, want %d", exit, DefaultExitCode)
	}
	if strings.Contains(stdout, "unreachable") || strings.Contains(stdout, "deferred") {
		t.Fatalf("code after Abort ran: %q", stdout)
	}
	if !strings.Contains(stderr, "expect_error @ ") || !strings.Contains(stderr, "fatal expectation") {
		t.Fatalf("stderr = %q, want failure line", stderr)
	}
}

func TestAbortExitCode(t *testing.T) {
	if os.Getenv(abortEnv) != "" {
		abortInChild(t)
		return
	}

	_, _, exit := runAbortChild(t, "TestAbortExitCode", 3)
	if exit != 3 {
		t.Fatalf("exit code = %d, want 3", exit)
	}
}
