// Package account provides the account aggregate shared by every actor role
// (customer, vendor, courier, admin). It owns password hashing, the
// back-office verification tri-state, and the uploaded document paths
// reviewed during verification.
package account
