package service

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinels matched by the typed errors below through errors.Is.
var (
	ErrUnknownItem      = errors.New("unknown item")
	ErrInvalidQuantity  = errors.New("invalid quantity")
	ErrCapacityExceeded = errors.New("capacity exceeded")
	ErrInfeasible       = errors.New("no feasible allocation")
	ErrSolverData       = errors.New("solver data unavailable")
)

// Error kinds reported by ErrorKind.
const (
	KindUnknownItem      = "unknown_item"
	KindInvalidQuantity  = "invalid_quantity"
	KindCapacityExceeded = "capacity_exceeded"
	KindInfeasible       = "infeasible"
	KindSolverData       = "solver_data"
)

// UnknownItemError lists every order key absent from the catalog.
type UnknownItemError struct {
	Keys []string
}

func (e *UnknownItemError) Error() string {
	return fmt.Sprintf("unknown items: %s", strings.Join(e.Keys, ", "))
}

func (e *UnknownItemError) Is(target error) bool { return target == ErrUnknownItem }

// InvalidQuantityError reports a quantity that is not a non-negative integer.
type InvalidQuantityError struct {
	Key    string
	Value  any
	Reason string
}

func (e *InvalidQuantityError) Error() string {
	return fmt.Sprintf("invalid quantity for %q (%v): %s", e.Key, e.Value, e.Reason)
}

func (e *InvalidQuantityError) Is(target error) bool { return target == ErrInvalidQuantity }

// CapacityExceededError reports optimizable demand above the catalog ceiling.
type CapacityExceededError struct {
	Requested int
	Ceiling   int
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("order too large: %d items, maximum is %d", e.Requested, e.Ceiling)
}

func (e *CapacityExceededError) Is(target error) bool { return target == ErrCapacityExceeded }

// InfeasibleError means the solver found no allocation covering the demand.
type InfeasibleError struct {
	Pieces int
	Shirts int
}

func (e *InfeasibleError) Error() string {
	return fmt.Sprintf("no feasible allocation for %d pieces and %d shirts", e.Pieces, e.Shirts)
}

func (e *InfeasibleError) Is(target error) bool { return target == ErrInfeasible }

// SolverDataError means an optimum was reported but its assignment could
// not be reconstructed or did not check out.
type SolverDataError struct {
	Detail string
}

func (e *SolverDataError) Error() string {
	return "solver data unavailable: " + e.Detail
}

func (e *SolverDataError) Is(target error) bool { return target == ErrSolverData }

// ErrorKind returns the kind of an optimizer error, or "" for other errors.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, ErrUnknownItem):
		return KindUnknownItem
	case errors.Is(err, ErrInvalidQuantity):
		return KindInvalidQuantity
	case errors.Is(err, ErrCapacityExceeded):
		return KindCapacityExceeded
	case errors.Is(err, ErrInfeasible):
		return KindInfeasible
	case errors.Is(err, ErrSolverData):
		return KindSolverData
	default:
		return ""
	}
}

// IsValidationError reports whether err was caused by the order itself.
func IsValidationError(err error) bool {
	switch ErrorKind(err) {
	case KindUnknownItem, KindInvalidQuantity, KindCapacityExceeded:
		return true
	}
	return false
}
