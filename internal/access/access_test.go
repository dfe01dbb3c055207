package access

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samadhan-setu/grievance-service/internal/domain"
)

func TestHomeRoute_TotalOverRoleEnum(t *testing.T) {
	t.Parallel()

	tests := []struct {
		role domain.Role
		want Route
	}{
		{domain.RoleCitizen, RouteCitizenHome},
		{domain.RoleAdminCM, RouteCMDashboard},
		{domain.RoleHeadDept, RouteDeptDashboard},
		{domain.RoleHeadSub, RouteDeptDashboard},
	}
	for _, tc := range tests {
		got, err := HomeRoute(tc.role)
		require.NoError(t, err, "role %s", tc.role)
		assert.Equal(t, tc.want, got, "role %s", tc.role)
	}
}

func TestHomeRoute_UnknownRoleFailsFast(t *testing.T) {
	t.Parallel()

	_, err := HomeRoute("SUPER_ADMIN")
	require.Error(t, err)

	_, err = HomeRoute("")
	require.Error(t, err)
}

func TestIsAuthorized_Membership(t *testing.T) {
	t.Parallel()

	for _, role := range domain.Roles {
		assert.True(t, IsAuthorized(role, []domain.Role{role}), "role in its own set")
	}

	others := []domain.Role{domain.RoleAdminCM, domain.RoleHeadDept}
	assert.False(t, IsAuthorized(domain.RoleCitizen, others))
	assert.False(t, IsAuthorized(domain.RoleHeadSub, others))
}

func TestIsAuthorized_EmptyRequiredMeansAnyAuthenticated(t *testing.T) {
	t.Parallel()

	for _, role := range domain.Roles {
		assert.True(t, IsAuthorized(role, nil), "role %s", role)
	}
	assert.False(t, IsAuthorized("", nil), "unauthenticated always denied")
	assert.False(t, IsAuthorized("", []domain.Role{domain.RoleCitizen}))
}

func TestDeniedRoute(t *testing.T) {
	t.Parallel()

	assert.Equal(t, RouteLogin, DeniedRoute(""))
	assert.Equal(t, RouteCitizenHome, DeniedRoute(domain.RoleCitizen))
	assert.Equal(t, RouteDeptDashboard, DeniedRoute(domain.RoleHeadSub))
}

func TestCreatableRole(t *testing.T) {
	t.Parallel()

	got, err := CreatableRole(domain.RoleAdminCM)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleHeadDept, got)

	got, err = CreatableRole(domain.RoleHeadDept)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleHeadSub, got)

	_, err = CreatableRole(domain.RoleHeadSub)
	require.Error(t, err)
	_, err = CreatableRole(domain.RoleCitizen)
	require.Error(t, err)
}

func TestCapabilities(t *testing.T) {
	t.Parallel()

	assert.True(t, CanManageStaff(domain.RoleAdminCM))
	assert.True(t, CanManageStaff(domain.RoleHeadDept))
	assert.False(t, CanManageStaff(domain.RoleHeadSub))
	assert.False(t, CanManageStaff(domain.RoleCitizen))

	assert.True(t, CanResolve(domain.RoleHeadSub))
	assert.False(t, CanResolve(domain.RoleCitizen))
}
