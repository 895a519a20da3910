package kernel

import (
	"fmt"

	"aquaserve/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrOrgIDIsNotConstructed indicates that an OrgID was not properly initialized
// through one of the constructor functions.
var ErrOrgIDIsNotConstructed = errs.NewValueIsRequiredError("OrgID must be created via NewOrgID or OrgIDFromString")

// OrgID is the tenant identifier: one customer organization using the
// platform. It is the isolation boundary of the whole system - every
// aggregate carries it, every repository query and mutation filters by it,
// and no operation may read or write a record whose OrgID differs from the
// caller's resolved tenant.
//
// OrgID is an opaque value object; callers never inspect its contents, they
// only compare and propagate it. The zero value is invalid.
type OrgID struct {
	id uuid.UUID
}

// NewOrgID generates a new random tenant identifier.
// Used when provisioning a new organization.
func NewOrgID() OrgID {
	return OrgID{id: uuid.New()}
}

// OrgIDFromString parses a tenant identifier from its string representation,
// typically a claim in an authenticated identity token.
func OrgIDFromString(s string) (OrgID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return OrgID{}, fmt.Errorf("invalid OrgID format: %w", err)
	}
	return OrgID{id: id}, nil
}

// OrgIDFromBytes reconstructs a tenant identifier from its raw UUID bytes,
// typically when restoring a persisted record.
func OrgIDFromBytes(b []byte) (OrgID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return OrgID{}, fmt.Errorf("invalid OrgID bytes: %w", err)
	}
	return OrgID{id: id}, nil
}

// String returns the standard string representation of the tenant identifier.
func (o OrgID) String() string {
	return o.id.String()
}

// Bytes returns the underlying UUID value for persistence adapters.
func (o OrgID) Bytes() uuid.UUID {
	return o.id
}

// IsEqual compares two tenant identifiers.
func (o OrgID) IsEqual(other OrgID) bool {
	return o.id == other.id
}

// Validate checks if the OrgID is properly constructed.
// Returns ErrOrgIDIsNotConstructed for the zero value.
func (o OrgID) Validate() error {
	if o.id == uuid.Nil {
		return ErrOrgIDIsNotConstructed
	}
	return nil
}
