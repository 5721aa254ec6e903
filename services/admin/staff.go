package admin

import (
	"context"
	"strings"

	"freshpress/models"
)

// StaffAPI is the upstream slice the staff/RBAC editor needs.
type StaffAPI interface {
	ListStaff(ctx context.Context, token string, f models.ListFilter) (*models.StaffPage, error)
	CreateStaff(ctx context.Context, token string, input models.StaffInput) (*models.StaffMember, error)
	UpdateStaffPermissions(ctx context.Context, token, id string, permissions models.PermissionMatrix) error
	ListCenterAdmins(ctx context.Context, token string, f models.ListFilter) (*models.StaffPage, error)
	CreateCenterAdmin(ctx context.Context, token string, input models.StaffInput) (*models.CenterAdmin, error)
}

// StaffService enforces the delegation contract of the permission
// editor: whatever matrix is submitted, nothing outside the editing
// admin's own permission set survives.
type StaffService struct {
	API StaffAPI
}

// List fetches a page of staff members.
func (s *StaffService) List(ctx context.Context, token string, f models.ListFilter) (*models.StaffPage, error) {
	f.Sanitize()
	return s.API.ListStaff(ctx, token, f)
}

// ListCenterAdmins fetches a page of branch-scoped admins.
func (s *StaffService) ListCenterAdmins(ctx context.Context, token string, f models.ListFilter) (*models.StaffPage, error) {
	f.Sanitize()
	return s.API.ListCenterAdmins(ctx, token, f)
}

// Create validates and creates a staff member. The submitted matrix is
// clamped to the editor's own permissions before anything leaves this
// process; an all-false result is rejected locally.
func (s *StaffService) Create(ctx context.Context, token string, input models.StaffInput, editorMax models.PermissionMatrix) (*models.StaffMember, error) {
	if err := validateStaffInput(input); err != nil {
		return nil, err
	}
	input.Permissions = input.Permissions.Clamp(editorMax)
	if !input.Permissions.AnyGranted() {
		return nil, NewValidationError("assign at least one permission")
	}
	return s.API.CreateStaff(ctx, token, input)
}

// CreateCenterAdmin additionally requires a branch assignment.
func (s *StaffService) CreateCenterAdmin(ctx context.Context, token string, input models.StaffInput, editorMax models.PermissionMatrix) (*models.CenterAdmin, error) {
	if err := validateStaffInput(input); err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.BranchID) == "" {
		return nil, NewValidationError("a branch assignment is required for a center admin")
	}
	input.Permissions = input.Permissions.Clamp(editorMax)
	if !input.Permissions.AnyGranted() {
		return nil, NewValidationError("assign at least one permission")
	}
	return s.API.CreateCenterAdmin(ctx, token, input)
}

// UpdatePermissions replaces a staff member's matrix under the same
// clamp-and-reject rules as creation.
func (s *StaffService) UpdatePermissions(ctx context.Context, token, id string, permissions, editorMax models.PermissionMatrix) error {
	clamped := permissions.Clamp(editorMax)
	if !clamped.AnyGranted() {
		return NewValidationError("assign at least one permission")
	}
	return s.API.UpdateStaffPermissions(ctx, token, id, clamped)
}

func validateStaffInput(input models.StaffInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return NewValidationError("a name is required")
	}
	if strings.TrimSpace(input.Email) == "" {
		return NewValidationError("an email is required")
	}
	if strings.TrimSpace(input.Password) == "" {
		return NewValidationError("a password is required")
	}
	return nil
}
