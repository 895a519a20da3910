// Package kernel provides core domain primitives shared across the aquaserve
// domain model. It implements fundamental building blocks following
// Domain-Driven Design principles.
//
// The package includes:
//   - UUID: a value object for unique identifiers with validation and comparison
//   - OrgID: the tenant identifier every aggregate carries and every query filters by
//   - KycStatus: the verification vocabulary shared by customers and technicians
//   - DeviceLinkStatus: the device-link vocabulary shared by customers and technicians
//
// These primitives enforce domain invariants and validation rules, ensuring
// that domain objects are always in a valid state. They are immutable and
// thread-safe, making them suitable for concurrent use.
package kernel
