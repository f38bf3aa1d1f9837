// Package fault classifies failures into the small closed set of kinds the
// API maps to HTTP status codes.
package fault

import (
	"errors"
	"fmt"
)

// Kind identifies which stage of a relay call failed.
type Kind int

const (
	// KindUnknown is any error that was never classified.
	KindUnknown Kind = iota
	// KindInput is a caller mistake: undecodable body, missing field, missing upload.
	KindInput
	// KindVendor is a network or vendor API failure.
	KindVendor
	// KindMalformed means the vendor responded but its output fails the declared schema.
	KindMalformed
)

func (k Kind) String() string {
	switch k {
	case KindInput:
		return "input"
	case KindVendor:
		return "vendor"
	case KindMalformed:
		return "malformed"
	default:
		return "unknown"
	}
}

// Error is an error tagged with a Kind. The message is what ends up in the
// JSON error body, so it must stand on its own.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string { return e.Err.Error() }
func (e *Error) Unwrap() error { return e.Err }

// Input wraps err as a caller-input failure.
func Input(format string, args ...any) error {
	return &Error{Kind: KindInput, Err: fmt.Errorf(format, args...)}
}

// Vendor wraps err as a vendor/network failure.
func Vendor(err error) error {
	return &Error{Kind: KindVendor, Err: err}
}

// Malformed wraps err as a malformed-vendor-output failure.
func Malformed(err error) error {
	return &Error{Kind: KindMalformed, Err: err}
}

// KindOf returns the Kind of err, or KindUnknown if it carries none.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return KindUnknown
}
