package dto

import (
	"github.com/samadhan-setu/grievance-service/internal/domain"
	"github.com/samadhan-setu/grievance-service/internal/hierarchy"
)

// UserResponse is the public view of an account. The password credential
// never leaves the persistence layer.
type UserResponse struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	Email         string      `json:"email"`
	Role          domain.Role `json:"role"`
	District      string      `json:"district,omitempty"`
	Department    *string     `json:"department,omitempty"`
	SubDepartment *string     `json:"sub_department,omitempty"`
}

// NewUserResponse maps a domain user.
func NewUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:            u.ID,
		Name:          u.Name,
		Email:         u.Email,
		Role:          u.Role,
		District:      u.District,
		Department:    u.Department,
		SubDepartment: u.SubDepartment,
	}
}

// UpdateProfileRequest payload for self-service profile edits.
type UpdateProfileRequest struct {
	Name     string `json:"name" validate:"required"`
	District string `json:"district"`
}

// NewUserResponses maps a slice of domain users.
func NewUserResponses(users []domain.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, NewUserResponse(&users[i]))
	}
	return out
}

// DepartmentNodeResponse is one entry of the org tree.
type DepartmentNodeResponse struct {
	Department string         `json:"department"`
	Head       *UserResponse  `json:"head"`
	SubHeads   []UserResponse `json:"sub_heads"`
}

// NewHierarchyResponse maps the aggregated org tree.
func NewHierarchyResponse(nodes map[string]*hierarchy.DepartmentNode) map[string]DepartmentNodeResponse {
	out := make(map[string]DepartmentNodeResponse, len(nodes))
	for name, node := range nodes {
		resp := DepartmentNodeResponse{
			Department: node.Department,
			SubHeads:   NewUserResponses(node.SubHeads),
		}
		if node.Head != nil {
			head := NewUserResponse(node.Head)
			resp.Head = &head
		}
		out[name] = resp
	}
	return out
}
