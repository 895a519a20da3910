// Package guard provides the constructor guard pattern used by domain
// objects, commands and queries to reject zero-value instances.
package guard

import "errors"

// ErrDefaultConstructorGuard is the default error returned by ConstructorGuard.Validate()
// when a nil error is passed as the validation error. This ensures that validation
// always fails with a meaningful message even if no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures value objects and entities are only created through
// their designated constructor functions. Embedding a ConstructorGuard in a
// struct makes a zero-value instance detectable: the internal flag is only set
// when the object is built through its constructor.
//
// Example usage:
//
//	var ErrReviewNotConstructed = errors.New("Review must be created via NewReview")
//
//	type Review struct {
//	    status string
//	    guard  ConstructorGuard
//	}
//
//	func NewReview(status string) Review {
//	    return Review{status: status, guard: NewConstructorGuard()}
//	}
//
//	func (r Review) Validate() error {
//	    return r.guard.Validate(ErrReviewNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a ConstructorGuard that marks an object as
// properly constructed. Call it in the constructor of domain objects so they
// can be distinguished from zero-value instances.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate checks whether the guarded object was properly constructed.
// Returns nil for constructed objects, validationError otherwise, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
