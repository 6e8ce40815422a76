// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ant

import (
	"fmt"

	"github.com/pkg/errors"
)

// Sentinel errors identifying the fatal structural failure kinds named in
// spec.md §7: bad depth, BlackHole reentry, degree mismatch, and unknown
// word tags (value aliasing has no sentinel of its own), plus ErrFrozen for
// registration after Freeze. StructuralError wraps one of these with
// call-site context via github.com/pkg/errors, the annotated-error
// library the retrieved AleutianLocal codebase itself reaches for.
var (
	ErrBlackHoleReentry = errors.New("ant: blackhole reentry")
	ErrDepthMismatch    = errors.New("ant: depth mismatch")
	ErrDegreeMismatch   = errors.New("ant: degree mismatch")
	ErrUnknownWordTag   = errors.New("ant: unknown word tag")
	ErrFrozen           = errors.New("ant: evaluator frozen")
)

// StructuralError is a fatal, non-recoverable protocol violation: a bug in
// the code generator or in the memoizer itself, never in ordinary fetch
// misses (those are plain (FetchResult, bool) returns, not errors).
type StructuralError struct {
	cause error
}

func (e *StructuralError) Error() string { return e.cause.Error() }

func (e *StructuralError) Unwrap() error { return e.cause }

// errorf wraps sentinel with a formatted message, stack-annotated via
// github.com/pkg/errors, and returns it as a *StructuralError.
func errorf(sentinel error, format string, args ...any) *StructuralError {
	return &StructuralError{cause: errors.Wrap(sentinel, fmt.Sprintf(format, args...))}
}

// wrapPanic converts a panic recovered during ExecCEK into a
// *StructuralError, mirroring kont's own "panic on protocol violation"
// shape while still giving ExecCEK's caller a plain error, since ant sits
// at a boundary with a possibly-buggy external code generator rather than
// being used directly by trusted CPS-generated code.
func wrapPanic(rec any) error {
	if se, ok := rec.(*StructuralError); ok {
		return se
	}
	if err, ok := rec.(error); ok {
		return errorf(err, "ant: recovered panic")
	}
	return errorf(ErrDepthMismatch, "ant: recovered panic: %v", rec)
}
