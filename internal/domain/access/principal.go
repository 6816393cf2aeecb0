package access

// Role represents the authenticated caller's role
type Role string

const (
	// RoleSuperAdmin is a global override: it bypasses the entitlement layer
	// entirely. It does not bypass the toggle layer.
	RoleSuperAdmin Role = "super_admin"
	// RoleOwner is a restaurant owner bound to a single tenant
	RoleOwner Role = "owner"
	// RoleStaff is restaurant staff bound to a single tenant
	RoleStaff Role = "staff"
)

// IsValid checks if the role is valid
func (r Role) IsValid() bool {
	switch r {
	case RoleSuperAdmin, RoleOwner, RoleStaff:
		return true
	default:
		return false
	}
}

// String returns the string representation of the role
func (r Role) String() string {
	return string(r)
}

// Principal is the authenticated caller. RestaurantID is zero for principals
// not bound to a tenant (platform administrators).
type Principal struct {
	UserID       uint
	Role         Role
	RestaurantID uint
}

// IsSuperAdmin reports whether the principal carries the global override role
func (p *Principal) IsSuperAdmin() bool {
	return p != nil && p.Role == RoleSuperAdmin
}

// TenantID returns the principal's bound tenant id, zero when unbound or
// when the request is anonymous.
func (p *Principal) TenantID() uint {
	if p == nil {
		return 0
	}
	return p.RestaurantID
}
