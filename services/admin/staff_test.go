package admin

import (
	"context"
	"testing"

	"freshpress/models"
)

type fakeStaffAPI struct {
	created     []models.StaffInput
	permissions map[string]models.PermissionMatrix
}

func (f *fakeStaffAPI) ListStaff(ctx context.Context, token string, filter models.ListFilter) (*models.StaffPage, error) {
	return &models.StaffPage{}, nil
}

func (f *fakeStaffAPI) CreateStaff(ctx context.Context, token string, input models.StaffInput) (*models.StaffMember, error) {
	f.created = append(f.created, input)
	return &models.StaffMember{ID: "st-1", Name: input.Name, Permissions: input.Permissions}, nil
}

func (f *fakeStaffAPI) UpdateStaffPermissions(ctx context.Context, token, id string, permissions models.PermissionMatrix) error {
	if f.permissions == nil {
		f.permissions = map[string]models.PermissionMatrix{}
	}
	f.permissions[id] = permissions
	return nil
}

func (f *fakeStaffAPI) ListCenterAdmins(ctx context.Context, token string, filter models.ListFilter) (*models.StaffPage, error) {
	return &models.StaffPage{}, nil
}

func (f *fakeStaffAPI) CreateCenterAdmin(ctx context.Context, token string, input models.StaffInput) (*models.CenterAdmin, error) {
	return &models.CenterAdmin{StaffMember: models.StaffMember{ID: "ca-1"}, BranchID: input.BranchID}, nil
}

func validStaffInput() models.StaffInput {
	return models.StaffInput{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "secret",
		Permissions: models.PermissionMatrix{
			"orders": {"view": true, "update": true},
		},
	}
}

func editorWithOrdersView() models.PermissionMatrix {
	return models.PermissionMatrix{
		"orders": {"view": true},
	}
}

func TestCreateClampsToEditorPermissions(t *testing.T) {
	api := &fakeStaffAPI{}
	svc := &StaffService{API: api}

	member, err := svc.Create(context.Background(), "tok", validStaffInput(), editorWithOrdersView())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if member.Permissions.Allows("orders", "update") {
		t.Fatalf("expected orders:update clamped away, editor does not hold it")
	}
	if !member.Permissions.Allows("orders", "view") {
		t.Fatalf("expected orders:view to survive the clamp")
	}
}

func TestCreateRejectsAllFalseMatrix(t *testing.T) {
	api := &fakeStaffAPI{}
	svc := &StaffService{API: api}

	// The editor holds nothing the input asks for, so the clamp empties
	// the matrix entirely.
	input := validStaffInput()
	editor := models.PermissionMatrix{"reports": {"view": true}}
	if _, err := svc.Create(context.Background(), "tok", input, editor); err == nil {
		t.Fatalf("expected an all-false matrix to be rejected")
	}
	if len(api.created) != 0 {
		t.Fatalf("expected no upstream create call")
	}
}

func TestCreateValidatesRequiredFields(t *testing.T) {
	svc := &StaffService{API: &fakeStaffAPI{}}

	input := validStaffInput()
	input.Email = "  "
	if _, err := svc.Create(context.Background(), "tok", input, editorWithOrdersView()); err == nil {
		t.Fatalf("expected a missing email to be rejected")
	}
}

func TestCenterAdminRequiresBranch(t *testing.T) {
	svc := &StaffService{API: &fakeStaffAPI{}}

	input := validStaffInput()
	if _, err := svc.CreateCenterAdmin(context.Background(), "tok", input, editorWithOrdersView()); err == nil {
		t.Fatalf("expected a center admin without a branch to be rejected")
	}

	input.BranchID = "br-3"
	centerAdmin, err := svc.CreateCenterAdmin(context.Background(), "tok", input, editorWithOrdersView())
	if err != nil {
		t.Fatalf("create center admin failed: %v", err)
	}
	if centerAdmin.BranchID != "br-3" {
		t.Fatalf("expected branch recorded, got %q", centerAdmin.BranchID)
	}
}

func TestUpdatePermissionsClampsAndRejectsEmpty(t *testing.T) {
	api := &fakeStaffAPI{}
	svc := &StaffService{API: api}

	submitted := models.PermissionMatrix{
		"orders":   {"view": true, "cancel": true},
		"settings": {"update": true},
	}
	editor := models.PermissionMatrix{
		"orders": {"view": true, "cancel": true},
	}
	if err := svc.UpdatePermissions(context.Background(), "tok", "st-1", submitted, editor); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	saved := api.permissions["st-1"]
	if saved.Allows("settings", "update") {
		t.Fatalf("expected settings:update clamped away")
	}
	if !saved.Allows("orders", "cancel") {
		t.Fatalf("expected orders:cancel to survive")
	}

	if err := svc.UpdatePermissions(context.Background(), "tok", "st-1", submitted, models.PermissionMatrix{}); err == nil {
		t.Fatalf("expected an empty clamped matrix to be rejected")
	}
}
