// Package guard implements the constructor guard pattern used by commands,
// queries, and value objects to reject zero-value instances that bypassed
// their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error
// is provided for a zero-value object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard distinguishes objects built through their designated
// constructor from zero values. Embedding a guard in a struct and checking it
// in Validate keeps invariants enforced even when the struct is exported.
//
// Example:
//
//	type ReportHarvestCommand struct {
//	    commodity string
//	    guard     guard.ConstructorGuard
//	}
//
//	func NewReportHarvestCommand(commodity string) (ReportHarvestCommand, error) {
//	    // ... validation ...
//	    return ReportHarvestCommand{commodity: commodity, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c ReportHarvestCommand) Validate() error {
//	    return c.guard.Validate(ErrReportHarvestCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking an object as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for properly constructed objects. For zero values it
// returns validationError, or ErrDefaultConstructorGuard when validationError
// is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
