package seqfn

import (
	stderrors "errors"
	"fmt"
	"reflect"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidArgument is wrapped by the panic value of every operator
	// called with a nil source, predicate, selector or key function.
	ErrInvalidArgument = stderrors.New("invalid argument")

	// ErrOutOfRange is wrapped by the panic value of operators called with a
	// numeric argument outside of its accepted range, such as a negative
	// Range count.
	ErrOutOfRange = stderrors.New("argument out of range")

	// ErrInvalidCast is wrapped by every CastError.
	ErrInvalidCast = stderrors.New("invalid cast")
)

// ArgumentError describes a rejected operator argument.
//
// Operators never return an ArgumentError: they panic with it, wrapped with
// the stack trace of the offending call.
type ArgumentError struct {
	Op    string
	Param string
	// Err is ErrInvalidArgument or ErrOutOfRange.
	Err    error
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("seqfn.%s: %s: %s", e.Op, e.Param, e.Reason)
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}

// CastError is produced when an element of an untyped sequence is not of
// the type requested by Cast or TryCast.
type CastError struct {
	// Index is the zero-based position of the element within the pass.
	Index  int
	Value  any
	Target reflect.Type
}

func (e *CastError) Error() string {
	return fmt.Sprintf("seqfn: cannot cast element %d of type %T to %v", e.Index, e.Value, e.Target)
}

func (e *CastError) Unwrap() error {
	return ErrInvalidCast
}

func panicArgument(op, param string, err error, reason string) {
	panic(errors.WithStack(&ArgumentError{
		Op:     op,
		Param:  param,
		Err:    err,
		Reason: reason,
	}))
}

// mustNotNil panics with an invalid-argument error for param when isNil.
func mustNotNil(op, param string, isNil bool) {
	if isNil {
		panicArgument(op, param, ErrInvalidArgument, "can't be nil")
	}
}
