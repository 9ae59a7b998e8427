// Package errors provides the typed error used across mdgen to classify
// failures as IO, render or argument errors.
package errors

import stdErrors "errors"

type Kind string

const (
	KindIO       Kind = "io"
	KindRender   Kind = "render"
	KindArgument Kind = "argument"
)

// Error is a classified failure. Op names the step that failed and Path the
// file it was working on, when there is one.
type Error struct {
	Kind Kind
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	msg := string(e.Kind) + ": " + e.Op
	if e.Path != "" {
		msg += " " + e.Path
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func IO(op, path string, err error) *Error {
	return &Error{Kind: KindIO, Op: op, Path: path, Err: err}
}

func Render(op string, err error) *Error {
	return &Error{Kind: KindRender, Op: op, Err: err}
}

func Argument(err error) *Error {
	return &Error{Kind: KindArgument, Op: "parse arguments", Err: err}
}

// IsKind reports whether any error in err's chain is an *Error of kind k.
func IsKind(err error, k Kind) bool {
	var e *Error
	if !stdErrors.As(err, &e) {
		return false
	}
	if e.Kind == k {
		return true
	}
	return IsKind(e.Err, k)
}

func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case IsKind(err, KindArgument):
		return 2
	default:
		return 1
	}
}

