package vmap

import "github.com/pkg/errors"

// InvalidArgumentError reports a malformed caller-supplied value: a negative
// position, or an (offset, length) pair that doesn't fit the destination
// buffer.
type InvalidArgumentError struct {
	cause error
}

func newInvalidArgument(format string, args ...interface{}) *InvalidArgumentError {
	return &InvalidArgumentError{cause: errors.Errorf(format, args...)}
}

func (e *InvalidArgumentError) Error() string { return "vmap: invalid argument: " + e.cause.Error() }
func (e *InvalidArgumentError) Unwrap() error  { return e.cause }

// UnderflowError reports a read that would extend past the file's current
// length. No bytes are transferred and the cursor is left untouched.
type UnderflowError struct {
	cause error
}

func newUnderflow(format string, args ...interface{}) *UnderflowError {
	return &UnderflowError{cause: errors.Errorf(format, args...)}
}

func (e *UnderflowError) Error() string { return "vmap: underflow: " + e.cause.Error() }
func (e *UnderflowError) Unwrap() error  { return e.cause }

// IoSizeError wraps a failure to determine the file's length.
type IoSizeError struct {
	cause error
}

func wrapIoSize(err error, context string) *IoSizeError {
	if err == nil {
		return nil
	}
	return &IoSizeError{cause: errors.Wrap(err, context)}
}

func (e *IoSizeError) Error() string { return "vmap: io size: " + e.cause.Error() }
func (e *IoSizeError) Unwrap() error  { return e.cause }

// IoMapError wraps a failure of the OS map(2) call, whether during
// construction or during a later transfer.
type IoMapError struct {
	cause error
}

func wrapIoMap(err error, context string) *IoMapError {
	if err == nil {
		return nil
	}
	return &IoMapError{cause: errors.Wrap(err, context)}
}

func (e *IoMapError) Error() string { return "vmap: io map: " + e.cause.Error() }
func (e *IoMapError) Unwrap() error  { return e.cause }

// IoFlushOrUnmapError wraps a failure of msync(2) or munmap(2) during
// eviction or close.
type IoFlushOrUnmapError struct {
	cause error
}

func wrapIoFlushOrUnmap(err error, context string) *IoFlushOrUnmapError {
	if err == nil {
		return nil
	}
	return &IoFlushOrUnmapError{cause: errors.Wrap(err, context)}
}

func (e *IoFlushOrUnmapError) Error() string { return "vmap: io flush/unmap: " + e.cause.Error() }
func (e *IoFlushOrUnmapError) Unwrap() error  { return e.cause }

// RegionOverflowError indicates a region-local offset didn't fit the
// mapping's native addressing width. This means vmap computed an impossible
// geometry; it should never happen outside a programming error.
type RegionOverflowError struct {
	cause error
}

func newRegionOverflow(format string, args ...interface{}) *RegionOverflowError {
	return &RegionOverflowError{cause: errors.Errorf(format, args...)}
}

func (e *RegionOverflowError) Error() string { return "vmap: region overflow: " + e.cause.Error() }
func (e *RegionOverflowError) Unwrap() error  { return e.cause }

// InvariantViolationError indicates the region table's neighbor bookkeeping
// disagreed with itself during insertion. This should never happen outside a
// programming error.
type InvariantViolationError struct {
	cause error
}

func newInvariantViolation(format string, args ...interface{}) *InvariantViolationError {
	return &InvariantViolationError{cause: errors.Errorf(format, args...)}
}

func (e *InvariantViolationError) Error() string {
	return "vmap: invariant violation: " + e.cause.Error()
}
func (e *InvariantViolationError) Unwrap() error { return e.cause }

// PanicOnInvariant, when true, makes vmap panic instead of returning
// RegionOverflowError or InvariantViolationError. It defaults to false: a
// library should not be able to crash its host process just because a
// caller wants to keep running after detecting the bug. Tests that want to
// observe the panic path set this explicitly.
var PanicOnInvariant = false

func fatal(err error) error {
	if PanicOnInvariant {
		panic(err)
	}
	return err
}
