package models

import "time"

// AuditEntry is a single upstream audit-log record. Read-only here.
type AuditEntry struct {
	ID         string    `json:"id"`
	Actor      string    `json:"actor"`
	ActorRole  string    `json:"actorRole,omitempty"`
	Action     string    `json:"action"`
	EntityType string    `json:"entityType"`
	EntityID   string    `json:"entityId"`
	Detail     string    `json:"detail,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

type AuditPage struct {
	Items      []AuditEntry `json:"items"`
	Pagination Pagination   `json:"pagination"`
}

type AuditFilter struct {
	ListFilter
	Actor      string `form:"actor" json:"actor,omitempty"`
	EntityType string `form:"entityType" json:"entityType,omitempty"`
	From       string `form:"from" json:"from,omitempty"` // YYYY-MM-DD
	To         string `form:"to" json:"to,omitempty"`
}
