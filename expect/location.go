package expect

import (
	"runtime"
	"strconv"
	"strings"
)

// Location is a source position.
type Location struct {
	File     string
	Line     int
	Column   int
	Function string
}

// Caller returns the location of the function that called Caller, or of one
// of its callers when skip > 0. It returns the zero Location if the stack is
// not that deep. Column is always 0.
func Caller(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Location{}
	}

	loc := Location{File: file, Line: line}
	if fn := runtime.FuncForPC(pc); fn != nil {
		loc.Function = fn.Name()
	}

	return loc
}

// IsZero reports whether l holds no information.
func (l Location) IsZero() bool {
	return l == Location{}
}

// String renders l as <file>(<line>:<column>) `<function>`. The column is
// left out when 0, the parenthesised part when the line is 0 and the
// function part when it is empty.
func (l Location) String() string {
	var b strings.Builder

	b.WriteString(l.File)

	if l.Line > 0 {
		b.WriteByte('(')
		b.WriteString(strconv.Itoa(l.Line))
		if l.Column > 0 {
			b.WriteByte(':')
			b.WriteString(strconv.Itoa(l.Column))
		}
		b.WriteByte(')')
	}

	if l.Function != "" {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteByte('`')
		b.WriteString(l.Function)
		b.WriteByte('`')
	}

	return b.String()
}
