// Package queries contains read-only projections over the storage model.
// Handlers bypass the aggregates and read with raw SQL, returning flat
// response structs shaped for the HTTP layer.
package queries
