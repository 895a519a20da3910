// Package principal models the authenticated caller of a workflow operation.
//
// Roles are typed variants rather than strings compared across operations:
// each variant carries its own tenant-resolution strategy, so the decision
// "which tenant does this caller act in" lives in exactly one place.
package principal

import (
	"fmt"

	"aquaserve/internal/core/domain/model/kernel"
	"aquaserve/internal/pkg/errs"
)

// Role names the principal variants understood by the platform.
type Role string

const (
	// RoleSuperAdmin is a platform operator able to act in any tenant.
	RoleSuperAdmin Role = "super_admin"

	// RoleHeadAdmin is the owner of one tenant.
	RoleHeadAdmin Role = "head_admin"

	// RoleAdmin is a reviewer/dispatcher inside one tenant.
	RoleAdmin Role = "admin"

	// RoleTechnician is a field worker inside one tenant.
	RoleTechnician Role = "technician"
)

// Principal is an authenticated caller. ResolveTenant returns the tenant the
// principal operates in for this request: tenant-bound roles always resolve
// to their own organization, ignoring whatever a client supplied, while the
// platform role resolves to the explicitly requested tenant.
type Principal interface {
	UserID() kernel.UUID
	Role() Role
	ResolveTenant(requested kernel.OrgID) (kernel.OrgID, error)
}

// New constructs the principal variant for role. Tenant-bound roles require
// a valid orgID binding; the super admin carries none.
func New(role Role, userID kernel.UUID, orgID kernel.OrgID) (Principal, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	switch role {
	case RoleSuperAdmin:
		return SuperAdmin{userID: userID}, nil
	case RoleHeadAdmin, RoleAdmin, RoleTechnician:
		if err := orgID.Validate(); err != nil {
			return nil, err
		}
		return tenantBound{userID: userID, orgID: orgID, role: role}, nil
	default:
		return nil, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", string(role)))
	}
}

// SuperAdmin is the platform-operator variant. It holds no tenant binding
// and acts in the tenant a request explicitly names.
type SuperAdmin struct {
	userID kernel.UUID
}

// UserID returns the operator's user identity.
func (p SuperAdmin) UserID() kernel.UUID {
	return p.userID
}

// Role returns RoleSuperAdmin.
func (p SuperAdmin) Role() Role {
	return RoleSuperAdmin
}

// ResolveTenant returns the explicitly requested tenant.
// A super admin acting without naming a tenant is a validation error.
func (p SuperAdmin) ResolveTenant(requested kernel.OrgID) (kernel.OrgID, error) {
	if err := requested.Validate(); err != nil {
		return kernel.OrgID{}, err
	}
	return requested, nil
}

// tenantBound covers the head-admin, admin and technician variants, which
// share one strategy: they act only in their own organization.
type tenantBound struct {
	userID kernel.UUID
	orgID  kernel.OrgID
	role   Role
}

func (p tenantBound) UserID() kernel.UUID {
	return p.userID
}

func (p tenantBound) Role() Role {
	return p.role
}

// ResolveTenant returns the principal's own organization, ignoring the
// requested one entirely - a tenant-bound caller can never escape its
// isolation boundary by naming another tenant.
func (p tenantBound) ResolveTenant(_ kernel.OrgID) (kernel.OrgID, error) {
	return p.orgID, nil
}
