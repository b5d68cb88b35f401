package textfile

import (
	"errors"
	"fmt"

	"lesiw.io/fs"
)

var (
	// ErrNilArgument is returned when a required argument is nil.
	ErrNilArgument = errors.New("textfile: nil argument")

	// ErrInvalidValue is returned when an argument is present but unusable,
	// such as an empty or whitespace-only name or a negative byte count.
	ErrInvalidValue = errors.New("textfile: invalid value")

	// ErrNotDescendant is returned by [RelFromAncestor] when the path does
	// not lie below the given ancestor.
	ErrNotDescendant = errors.New("textfile: path is not a descendant")

	// ErrNoFile is returned when an operation requires an existing file.
	// It matches [fs.ErrNotExist] as well.
	ErrNoFile = fmt.Errorf("textfile: %w", fs.ErrNotExist)
)

// ArgError records an argument that was rejected before any I/O took place.
type ArgError struct {
	// Op is the operation that rejected the argument.
	Op string

	// Arg names the offending argument.
	Arg string

	// Err is [ErrNilArgument], [ErrInvalidValue] or [ErrNotDescendant].
	Err error
}

func (e *ArgError) Error() string {
	return e.Op + " " + e.Arg + ": " + e.Err.Error()
}

func (e *ArgError) Unwrap() error { return e.Err }

// Invalid reports whether err was caused by a rejected argument.
//
// Invalid uses errors.As to probe the error chain for an [ArgError].
// Filesystem and I/O failures are never Invalid.
func Invalid(err error) bool {
	var argErr *ArgError
	return errors.As(err, &argErr)
}

func nilArg(op, arg string) error {
	return &ArgError{Op: op, Arg: arg, Err: ErrNilArgument}
}

func badArg(op, arg string) error {
	return &ArgError{Op: op, Arg: arg, Err: ErrInvalidValue}
}

func noFile(op, name string) error {
	return &fs.PathError{Op: op, Path: name, Err: ErrNoFile}
}
