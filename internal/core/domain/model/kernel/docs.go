// Package kernel contains the shared value objects of the domain model.
//
// It provides:
//   - UUID: a validated wrapper around github.com/google/uuid used as the
//     identity type for every aggregate
//   - Money: a non-negative amount in minor currency units used for product
//     prices and order line items
//
// Value objects in this package are immutable and safe for concurrent use.
// The zero value of each type is invalid; instances must be created through
// the provided constructor functions and can be checked with Validate.
package kernel
