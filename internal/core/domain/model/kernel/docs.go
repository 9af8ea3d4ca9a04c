// Package kernel contains shared value objects used across all domain
// aggregates: UUID identifiers, two-decimal Money amounts, and City locations
// with the coarse distance proxy used by offer ranking.
//
// All kernel types are immutable value objects constructed through factory
// functions that enforce their invariants. Zero values fail Validate.
package kernel
