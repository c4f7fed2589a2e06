package models

import "sort"

// Role is the semantic purpose a column fulfills, independent of its header text.
type Role string

const (
	RoleDate       Role = "date"
	RoleQuantity   Role = "quantity"
	RoleRevenue    Role = "revenue"
	RoleCost       Role = "cost"
	RoleProduct    Role = "product"
	RoleDepartment Role = "department"
	// RoleBrand and RoleColor are grouping roles used only by aggregation.
	RoleBrand Role = "brand"
	RoleColor Role = "color"
)

// AllRoles lists every role in resolution order.
var AllRoles = []Role{
	RoleDate,
	RoleQuantity,
	RoleRevenue,
	RoleCost,
	RoleProduct,
	RoleDepartment,
	RoleBrand,
	RoleColor,
}

// GroupingRoles lists the roles AggregateBy accepts.
var GroupingRoles = []Role{RoleProduct, RoleDepartment, RoleBrand, RoleColor}

// IsNumeric reports whether the role holds numeric values.
func (r Role) IsNumeric() bool {
	return r == RoleQuantity || r == RoleRevenue || r == RoleCost
}

// IsGrouping reports whether the role can be used as an aggregation key.
func (r Role) IsGrouping() bool {
	for _, g := range GroupingRoles {
		if g == r {
			return true
		}
	}
	return false
}

// ParseRole converts a role name into a Role.
func ParseRole(s string) (Role, bool) {
	for _, r := range AllRoles {
		if string(r) == s {
			return r, true
		}
	}
	if s == "colour" {
		return RoleColor, true
	}
	return "", false
}

// RoleMap maps each resolved role to a concrete column name.
// Unresolved roles are absent.
type RoleMap map[Role]string

// Column returns the column resolved for role.
func (m RoleMap) Column(role Role) (string, bool) {
	col, ok := m[role]
	return col, ok
}

// Missing returns the roles among required that are not resolved, in the given order.
func (m RoleMap) Missing(required ...Role) []Role {
	var missing []Role
	for _, r := range required {
		if _, ok := m[r]; !ok {
			missing = append(missing, r)
		}
	}
	return missing
}

// Roles returns the resolved roles sorted by name.
func (m RoleMap) Roles() []Role {
	roles := make([]Role, 0, len(m))
	for r := range m {
		roles = append(roles, r)
	}
	sort.Slice(roles, func(i, j int) bool { return roles[i] < roles[j] })
	return roles
}
