//go:build !noexpect

package expect_test

import (
	"errors"
	"fmt"
	"os"

	"go.dw1.io/guard/expect"
)

func ExampleExpect() {
	err := expect.Expect(func() bool { return false }, "always fails", expect.WithoutLocation())

	fmt.Println(err)
	fmt.Println(errors.Is(err, expect.ErrExpectation))
	// Output:
	// expect_error: always fails
	// true
}

func ExampleExpect_log() {
	err := expect.Expect(
		func() bool { return 2+2 == 5 },
		"basic arithmetic",
		expect.WithPolicy(expect.Log),
		expect.WithOutput(os.Stdout),
	)

	fmt.Println(err)
	// Output:
	// expect(basic arithmetic)
	// <nil>
}

func ExampleNew() {
	check := expect.New(expect.WithPolicy(expect.Ignore))

	fmt.Println(check.That(false, "ignored"))
	// Output: <nil>
}

func ExampleWithLocation() {
	loc := expect.Location{File: "main.go", Line: 12, Column: 5, Function: "main.main"}

	fmt.Println(expect.That(false, "explicit position", expect.WithLocation(loc)))
	// Output: expect_error @ main.go(12:5) `main.main`: explicit position
}
