// Package access is the single source of truth for role-based routing and
// capability decisions. Views and handlers call it; nothing else compares
// role strings directly.
package access

import (
	"fmt"

	"github.com/samadhan-setu/grievance-service/internal/domain"
)

// Route identifies a canonical navigation destination.
type Route string

const (
	RouteLogin         Route = "/login"
	RouteCitizenHome   Route = "/citizen/home"
	RouteCMDashboard   Route = "/dashboard/cm"
	RouteDeptDashboard Route = "/dashboard/dept"
)

// HomeRoute maps a role to its post-login destination. It is total over the
// four-role enum; an unrecognized role is a programming error and fails fast.
func HomeRoute(role domain.Role) (Route, error) {
	switch role {
	case domain.RoleCitizen:
		return RouteCitizenHome, nil
	case domain.RoleAdminCM:
		return RouteCMDashboard, nil
	case domain.RoleHeadDept, domain.RoleHeadSub:
		return RouteDeptDashboard, nil
	default:
		return "", fmt.Errorf("access: no home route for role %q", role)
	}
}

// IsAuthorized reports whether role may reach a target guarded by required.
// An empty required set means any authenticated role; an empty role (no
// authenticated caller) is always denied.
func IsAuthorized(role domain.Role, required []domain.Role) bool {
	if role == "" {
		return false
	}
	if len(required) == 0 {
		return role.Valid()
	}
	for _, r := range required {
		if r == role {
			return true
		}
	}
	return false
}

// DeniedRoute is the silent-redirect destination when role is denied a
// target: login for the unauthenticated, otherwise the role's own home.
func DeniedRoute(role domain.Role) Route {
	home, err := HomeRoute(role)
	if err != nil {
		return RouteLogin
	}
	return home
}

// CanManageStaff reports whether role may create or list subordinate
// officials. Both dashboard tiers share one route; only these roles see the
// staff-management capability inside it.
func CanManageStaff(role domain.Role) bool {
	return role == domain.RoleAdminCM || role == domain.RoleHeadDept
}

// CreatableRole returns the single official role a creator may appoint:
// the CM appoints department heads, a department head appoints sub-heads.
func CreatableRole(creator domain.Role) (domain.Role, error) {
	switch creator {
	case domain.RoleAdminCM:
		return domain.RoleHeadDept, nil
	case domain.RoleHeadDept:
		return domain.RoleHeadSub, nil
	default:
		return "", fmt.Errorf("access: role %q may not create officials", creator)
	}
}

// CanResolve reports whether role may move a complaint out of PENDING.
func CanResolve(role domain.Role) bool {
	return role.IsOfficial()
}
