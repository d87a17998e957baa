// Package services provides domain services that coordinate business
// operations across aggregates.
//
// The package includes:
//   - CourierDispatcher: selects a courier for a handed-over line item based
//     on verification state and current load
//
// Domain services hold logic that spans aggregates and does not naturally
// belong to a single aggregate root.
package services
