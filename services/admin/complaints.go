package admin

import (
	"context"
	"strings"

	"freshpress/models"
)

// ComplaintAPI is the upstream slice the complaint dashboard needs.
type ComplaintAPI interface {
	ListComplaints(ctx context.Context, token string, f models.ComplaintFilter) (*models.ComplaintPage, error)
	AssignComplaint(ctx context.Context, token, id, assignee string) error
	ResolveComplaint(ctx context.Context, token, id, note string) error
	EscalateComplaint(ctx context.Context, token, id, reason string) error
}

type ComplaintService struct {
	API ComplaintAPI
}

// List fetches a page of complaints with sanitized paging.
func (s *ComplaintService) List(ctx context.Context, token string, f models.ComplaintFilter) (*models.ComplaintPage, error) {
	f.Sanitize()
	return s.API.ListComplaints(ctx, token, f)
}

// Assign routes a complaint to a staff member.
func (s *ComplaintService) Assign(ctx context.Context, token, id, assignee string) error {
	if strings.TrimSpace(assignee) == "" {
		return NewValidationError("an assignee is required")
	}
	return s.API.AssignComplaint(ctx, token, id, assignee)
}

// Resolve closes a complaint; the resolution note is mandatory.
func (s *ComplaintService) Resolve(ctx context.Context, token, id, note string) error {
	if strings.TrimSpace(note) == "" {
		return NewValidationError("a resolution note is required")
	}
	return s.API.ResolveComplaint(ctx, token, id, note)
}

// Escalate raises a complaint; the escalation reason is mandatory.
func (s *ComplaintService) Escalate(ctx context.Context, token, id, reason string) error {
	if strings.TrimSpace(reason) == "" {
		return NewValidationError("an escalation reason is required")
	}
	return s.API.EscalateComplaint(ctx, token, id, reason)
}
