// Package guard provides a defensive-construction helper for domain objects.
// Embedding a ConstructorGuard in a struct makes zero-value instances
// distinguishable from instances created through their constructor, so
// validation can reject objects that bypassed construction rules.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a zero-value guard
// is checked and no specific error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks whether its owner was created through a constructor.
// The zero value is "not constructed" and fails validation, which is the
// whole point: domain objects embed the guard privately and only their
// constructors can set it.
//
// Example:
//
//	type CutSet struct {
//	    points []int
//	    guard  guard.ConstructorGuard
//	}
//
//	func NewCutSet(points []int) CutSet {
//	    return CutSet{points: points, guard: guard.NewConstructorGuard()}
//	}
//
//	func (c CutSet) Validate() error {
//	    return c.guard.Validate(ErrCutSetIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking its owner as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero-value guard it
// returns validationError, or ErrDefaultConstructorGuard when that is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
