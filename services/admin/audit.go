package admin

import (
	"context"

	"freshpress/models"
)

// AuditAPI is the upstream slice the audit viewer needs.
type AuditAPI interface {
	ListAudit(ctx context.Context, token string, f models.AuditFilter) (*models.AuditPage, error)
}

// AuditService is a read-only, filtered proxy of the upstream audit log.
type AuditService struct {
	API AuditAPI
}

func (s *AuditService) List(ctx context.Context, token string, f models.AuditFilter) (*models.AuditPage, error) {
	f.Sanitize()
	return s.API.ListAudit(ctx, token, f)
}
