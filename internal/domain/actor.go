// Package domain holds the identity types shared by middleware and services.
package domain

// RoleID is the fixed role enumeration. The ids are seed data and stable.
type RoleID uint

const (
	RoleAdmin      RoleID = 1
	RoleDispatcher RoleID = 2
	RoleDriver     RoleID = 3
	RoleCustomer   RoleID = 4
)

func (r RoleID) Valid() bool {
	return r >= RoleAdmin && r <= RoleCustomer
}

// IsStaff reports membership in the staff capability tier: admins,
// dispatchers and drivers. Customers are not staff.
func (r RoleID) IsStaff() bool {
	switch r {
	case RoleAdmin, RoleDispatcher, RoleDriver:
		return true
	default:
		return false
	}
}

func (r RoleID) String() string {
	switch r {
	case RoleAdmin:
		return "ADMIN"
	case RoleDispatcher:
		return "DISPATCHER"
	case RoleDriver:
		return "DRIVER"
	case RoleCustomer:
		return "CUSTOMER"
	default:
		return "UNKNOWN"
	}
}

// Actor is the verified caller identity. The auth middleware builds it from
// token claims and handlers pass it explicitly into service calls; services
// never look identity up from ambient state.
type Actor struct {
	UserID uint
	Role   RoleID
}
