package hierarchy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samadhan-setu/grievance-service/internal/domain"
)

func strptr(s string) *string { return &s }

func official(id, name string, role domain.Role, dept string) domain.User {
	return domain.User{ID: id, Name: name, Role: role, Department: strptr(dept)}
}

func TestBuild_DeptHeadViewerSeesOnlyOwnDepartment(t *testing.T) {
	t.Parallel()

	water := "Jal Sansthan (Water)"
	users := []domain.User{
		official("u1", "Head PWD", domain.RoleHeadDept, "Public Works Department (PWD)"),
		official("u2", "Head Water", domain.RoleHeadDept, water),
		official("u3", "Sub Water A", domain.RoleHeadSub, water),
		official("u4", "Sub PWD", domain.RoleHeadSub, "Public Works Department (PWD)"),
		official("u5", "Sub Water B", domain.RoleHeadSub, water),
	}

	nodes, err := Build(users, domain.RoleHeadDept, water)
	require.NoError(t, err)

	require.Len(t, nodes, 1)
	node := nodes[water]
	require.NotNil(t, node)
	require.NotNil(t, node.Head)
	assert.Equal(t, "u2", node.Head.ID)
	require.Len(t, node.SubHeads, 2)
	assert.Equal(t, "u3", node.SubHeads[0].ID, "input order preserved")
	assert.Equal(t, "u5", node.SubHeads[1].ID)
}

func TestBuild_CMViewerGetsEveryCanonicalDepartmentEvenWhenVacant(t *testing.T) {
	t.Parallel()

	nodes, err := Build(nil, domain.RoleAdminCM, "")
	require.NoError(t, err)

	require.Len(t, nodes, len(domain.Departments))
	for _, dept := range domain.Departments {
		node := nodes[dept]
		require.NotNil(t, node, "department %s must have a node", dept)
		assert.Nil(t, node.Head)
		require.NotNil(t, node.SubHeads)
		assert.Empty(t, node.SubHeads)
	}
}

func TestBuild_NonCanonicalDepartmentFallsIntoUnassigned(t *testing.T) {
	t.Parallel()

	users := []domain.User{
		official("u1", "Stray Sub", domain.RoleHeadSub, "Forest Department"),
	}

	nodes, err := Build(users, domain.RoleAdminCM, "")
	require.NoError(t, err)

	node := nodes[domain.UnassignedDepartment]
	require.NotNil(t, node)
	require.Len(t, node.SubHeads, 1)
	assert.Equal(t, "u1", node.SubHeads[0].ID)
}

func TestBuild_FirstEncounteredHeadWins(t *testing.T) {
	t.Parallel()

	dept := "Panchayati Raj"
	users := []domain.User{
		official("u1", "First Head", domain.RoleHeadDept, dept),
		official("u2", "Duplicate Head", domain.RoleHeadDept, dept),
	}

	nodes, err := Build(users, domain.RoleAdminCM, "")
	require.NoError(t, err)
	require.NotNil(t, nodes[dept].Head)
	assert.Equal(t, "u1", nodes[dept].Head.ID)
}

func TestBuild_ViewerValidation(t *testing.T) {
	t.Parallel()

	_, err := Build(nil, domain.RoleCitizen, "")
	require.Error(t, err)

	_, err = Build(nil, domain.RoleHeadSub, "Panchayati Raj")
	require.Error(t, err)

	_, err = Build(nil, domain.RoleHeadDept, "")
	require.Error(t, err)
}
