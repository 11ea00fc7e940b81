package sdkerr

import (
	"errors"
	"fmt"
)

var (
	// ErrUnrecognizedTriple indicates the target string did not parse.
	ErrUnrecognizedTriple = errors.New("unrecognized target triple")

	// ErrUnsupportedConfiguration indicates a parsed target and feature
	// combination has no valid link directives.
	ErrUnsupportedConfiguration = errors.New("unsupported configuration")

	// ErrMissingEnvironment indicates a required external input was not supplied.
	ErrMissingEnvironment = errors.New("missing environment")

	// ErrPathEncoding indicates a path could not be represented as UTF-8 text.
	ErrPathEncoding = errors.New("path is not valid UTF-8")

	// ErrSDKVersion indicates the installed SDK does not satisfy the
	// configured version constraint.
	ErrSDKVersion = errors.New("sdk version mismatch")
)

// Error wraps an error kind with the operation and the offending subject.
type Error struct {
	Op      string // Operation that failed
	Subject string // Triple, feature, path or variable involved
	Err     error  // Underlying kind
}

func (e *Error) Error() string {
	if e.Subject != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Subject, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Unrecognized returns an ErrUnrecognizedTriple for the given input.
func Unrecognized(triple, reason string) error {
	return &Error{
		Op:      "parse target",
		Subject: fmt.Sprintf("%q", triple),
		Err:     fmt.Errorf("%w: %s", ErrUnrecognizedTriple, reason),
	}
}

// Unsupported returns an ErrUnsupportedConfiguration naming the combination.
func Unsupported(subject, format string, args ...any) error {
	return &Error{
		Op:      "resolve",
		Subject: subject,
		Err:     fmt.Errorf("%w: %s", ErrUnsupportedConfiguration, fmt.Sprintf(format, args...)),
	}
}

// Missing returns an ErrMissingEnvironment naming the input and how to supply it.
func Missing(input, hint string) error {
	return &Error{
		Op:      "configure",
		Subject: input,
		Err:     fmt.Errorf("%w: %s", ErrMissingEnvironment, hint),
	}
}

// BadPath returns an ErrPathEncoding for a path that is not valid UTF-8.
func BadPath(op, path string) error {
	return &Error{
		Op:      op,
		Subject: fmt.Sprintf("%q", path),
		Err:     ErrPathEncoding,
	}
}
