// Package product provides the vendor-owned catalog aggregate.
// Product ownership is the authority boundary for catalog mutations and the
// join key for vendor-scoped order projections.
package product
