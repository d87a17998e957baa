// Package order provides the order aggregate of the storefront domain.
//
// An Order is placed by a customer and holds a list of line items. Each line
// item references a product, carries a denormalized snapshot of the product
// (name, image, price, vendor), and moves through four independent status
// machines:
//
//   - VendorStatus: the vendor's acceptance decision for the item
//   - HandoverStatus: the vendor-to-courier handoff, which requires the item
//     to be vendor-accepted first
//   - CourierStatus: the courier's acceptance decision for the item
//   - DeliveryStatus: delivery completion, which requires the courier to have
//     accepted the item first
//
// The aggregate also carries the customer's shipping address snapshot and the
// payment fields, which are settable exactly once.
//
// Line items are the only place where two actor roles (vendor and courier)
// write to the same aggregate. Every item mutation is scoped to one item and
// validated against the caller's identity, so the persistence layer can write
// items row by row without whole-aggregate rewrites.
package order
