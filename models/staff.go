package models

import "time"

// PermissionMatrix maps module -> action -> granted. Modules carry a
// module-dependent subset of actions; anything absent is not granted.
type PermissionMatrix map[string]map[string]bool

// ModuleActions enumerates the editable matrix: which actions exist per
// module. The editor must never render or accept a cell outside this.
var ModuleActions = map[string][]string{
	"orders":    {"view", "create", "update", "assign", "cancel"},
	"customers": {"view", "create", "update", "delete"},
	"branches":  {"view", "create", "update", "delete"},
	"services":  {"view", "create", "update", "delete"},
	"financial": {"view", "refund", "approve", "export"},
	"reports":   {"view", "export"},
	"users":     {"view", "create", "update", "delete", "assignRole"},
	"settings":  {"view", "update"},
}

// Allows reports whether the matrix grants an action on a module.
func (m PermissionMatrix) Allows(module, action string) bool {
	actions, ok := m[module]
	if !ok {
		return false
	}
	return actions[action]
}

// AnyGranted reports whether at least one cell is true.
func (m PermissionMatrix) AnyGranted() bool {
	for _, actions := range m {
		for _, granted := range actions {
			if granted {
				return true
			}
		}
	}
	return false
}

// Clamp returns a copy of the matrix with every grant the editor does
// not itself hold forced to false, and cells outside ModuleActions
// dropped. A delegated permission set can never exceed its delegator's.
func (m PermissionMatrix) Clamp(max PermissionMatrix) PermissionMatrix {
	clamped := PermissionMatrix{}
	for module, actions := range m {
		valid, ok := ModuleActions[module]
		if !ok {
			continue
		}
		for action, granted := range actions {
			if !granted || !containsAction(valid, action) {
				continue
			}
			if !max.Allows(module, action) {
				continue
			}
			if clamped[module] == nil {
				clamped[module] = map[string]bool{}
			}
			clamped[module][action] = true
		}
	}
	return clamped
}

func containsAction(actions []string, action string) bool {
	for _, a := range actions {
		if a == action {
			return true
		}
	}
	return false
}

// StaffMember is an admin-portal user with a delegated permission set.
type StaffMember struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Email       string           `json:"email"`
	Phone       string           `json:"phone,omitempty"`
	Role        string           `json:"role"`
	Permissions PermissionMatrix `json:"permissions"`
	IsActive    bool             `json:"isActive"`
	CreatedAt   time.Time        `json:"createdAt"`
}

// CenterAdmin is a branch-scoped administrative role.
type CenterAdmin struct {
	StaffMember
	BranchID string `json:"branchId"`
}

type StaffPage struct {
	Items      []StaffMember `json:"items"`
	Pagination Pagination    `json:"pagination"`
}

// StaffInput is the create/update request for staff and center admins.
type StaffInput struct {
	Name        string           `json:"name"`
	Email       string           `json:"email"`
	Phone       string           `json:"phone,omitempty"`
	Password    string           `json:"password,omitempty"`
	Role        string           `json:"role,omitempty"`
	BranchID    string           `json:"branchId,omitempty"` // required for center admins
	Permissions PermissionMatrix `json:"permissions"`
}
