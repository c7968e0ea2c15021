// Package kernel provides the primitives shared by the order domain.
//
// The package includes:
//   - UUID: a value object wrapping a random (v4) identifier
//   - IdentityProvider: the source of new identifiers and timestamps used when an
//     order is accepted, with a system implementation backed by google/uuid and
//     the wall clock in UTC
//
// UUID values are immutable and safe for concurrent use. A zero UUID is invalid.
package kernel
