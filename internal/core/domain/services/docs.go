// Package services contains stateless domain services that coordinate
// behavior across aggregates. OfferSelector implements the deterministic
// matching ranking between harvest lots and buyer offers.
package services
