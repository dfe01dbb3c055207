package domain

import (
	"fmt"
	"time"
)

// Role enumerates the closed set of account roles.
type Role string

const (
	RoleCitizen  Role = "CITIZEN"
	RoleAdminCM  Role = "ADMIN_CM"
	RoleHeadDept Role = "HEAD_DEPT"
	RoleHeadSub  Role = "HEAD_SUB"
)

// Roles lists every valid role in declaration order.
var Roles = []Role{RoleCitizen, RoleAdminCM, RoleHeadDept, RoleHeadSub}

// Valid reports whether r is a member of the role enum.
func (r Role) Valid() bool {
	switch r {
	case RoleCitizen, RoleAdminCM, RoleHeadDept, RoleHeadSub:
		return true
	}
	return false
}

// IsOfficial reports whether r is any non-citizen authenticated role.
func (r Role) IsOfficial() bool {
	return r == RoleAdminCM || r == RoleHeadDept || r == RoleHeadSub
}

// User is the domain model for citizens and officials.
type User struct {
	ID            string
	Name          string
	Email         string
	PasswordHash  string
	Role          Role
	District      string
	Department    *string
	SubDepartment *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Validate enforces the role/department invariant: department is set iff
// the role is HEAD_DEPT or HEAD_SUB.
func (u *User) Validate() error {
	if !u.Role.Valid() {
		return fmt.Errorf("unknown role %q", u.Role)
	}
	needsDept := u.Role == RoleHeadDept || u.Role == RoleHeadSub
	hasDept := u.Department != nil && *u.Department != ""
	if needsDept && !hasDept {
		return fmt.Errorf("role %s requires a department", u.Role)
	}
	if !needsDept && hasDept {
		return fmt.Errorf("role %s must not carry a department", u.Role)
	}
	return nil
}

// DepartmentName returns the user's department or "" when absent.
func (u *User) DepartmentName() string {
	if u.Department == nil {
		return ""
	}
	return *u.Department
}

// SubDepartmentName returns the user's sub-department or "" when absent.
func (u *User) SubDepartmentName() string {
	if u.SubDepartment == nil {
		return ""
	}
	return *u.SubDepartment
}
