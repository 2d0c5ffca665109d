package model

// Role is the ordinal authorization tier. The gating primitive everywhere is
// the ordinal comparison level >= required; the page allow-list in the access
// package is declared independently and is NOT derived from this ordering.
type Role int

const (
	RoleKasir   Role = 1
	RoleManager Role = 2
	RoleAdmin   Role = 3
)

// Valid reports whether r is one of the three recognized tiers. An invalid
// role fails every access check.
func (r Role) Valid() bool { return r >= RoleKasir && r <= RoleAdmin }

// Name returns the display name shown in the UI header and user forms.
func (r Role) Name() string {
	switch r {
	case RoleKasir:
		return "Petugas"
	case RoleManager:
		return "Manager"
	case RoleAdmin:
		return "Admin"
	default:
		return "Unknown"
	}
}

// Icon returns the Font Awesome class used by the sidebar badge.
func (r Role) Icon() string {
	switch r {
	case RoleKasir:
		return "fas fa-cash-register"
	case RoleManager:
		return "fas fa-user-tie"
	case RoleAdmin:
		return "fas fa-crown"
	default:
		return "fas fa-question"
	}
}

// Color returns the badge color for the role.
func (r Role) Color() string {
	switch r {
	case RoleKasir:
		return "#4CAF50"
	case RoleManager:
		return "#2196F3"
	case RoleAdmin:
		return "#FF9800"
	default:
		return "#9E9E9E"
	}
}
