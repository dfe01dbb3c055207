// Package hierarchy groups flat official listings into the two-level
// department -> sub-department org tree the dashboards render.
package hierarchy

import (
	"fmt"

	"github.com/samadhan-setu/grievance-service/internal/domain"
)

// DepartmentNode is a derived view artifact: one department with its head
// and sub-heads. Built fresh on every aggregation, never persisted.
type DepartmentNode struct {
	Department string
	Head       *domain.User
	SubHeads   []domain.User
}

// Build groups a flat list of HEAD_DEPT and HEAD_SUB users by department,
// scoped to what the viewer may see.
//
// ADMIN_CM viewers get every canonical department, vacant ones included, so
// the consumer can render unfilled positions; officials outside the canonical
// enumeration land in the Unassigned bucket. HEAD_DEPT viewers get exactly
// their own department. Within a department the first HEAD_DEPT row
// encountered wins and HEAD_SUB rows keep input order. Rows with neither
// official role are ignored.
func Build(users []domain.User, viewerRole domain.Role, viewerDepartment string) (map[string]*DepartmentNode, error) {
	switch viewerRole {
	case domain.RoleAdminCM:
	case domain.RoleHeadDept:
		if viewerDepartment == "" {
			return nil, fmt.Errorf("hierarchy: HEAD_DEPT viewer requires a department")
		}
	default:
		return nil, fmt.Errorf("hierarchy: role %q may not view the org tree", viewerRole)
	}

	nodes := make(map[string]*DepartmentNode)

	if viewerRole == domain.RoleAdminCM {
		for _, dept := range domain.Departments {
			nodes[dept] = &DepartmentNode{Department: dept, SubHeads: []domain.User{}}
		}
	}

	for _, u := range users {
		dept := u.DepartmentName()

		if viewerRole == domain.RoleHeadDept {
			if dept != viewerDepartment {
				continue
			}
		} else if dept == "" || !domain.IsCanonicalDepartment(dept) {
			dept = domain.UnassignedDepartment
		}

		node, ok := nodes[dept]
		if !ok {
			node = &DepartmentNode{Department: dept, SubHeads: []domain.User{}}
			nodes[dept] = node
		}

		switch u.Role {
		case domain.RoleHeadDept:
			if node.Head == nil {
				head := u
				node.Head = &head
			}
		case domain.RoleHeadSub:
			node.SubHeads = append(node.SubHeads, u)
		}
	}

	return nodes, nil
}
