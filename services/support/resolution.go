package support

import (
	"fmt"
	"strings"
)

// ResolutionKind tags how a ticket was resolved.
type ResolutionKind string

const (
	ResolutionResolved     ResolutionKind = "resolved"
	ResolutionRefund       ResolutionKind = "refund"
	ResolutionRewash       ResolutionKind = "rewash"
	ResolutionCompensation ResolutionKind = "compensation"
)

// Resolution is the structured outcome of a ticket. The upstream
// resolution field still expects the historical bracketed-prefix text,
// so EncodeLegacy renders it; everything on this side stays structured.
type Resolution struct {
	Kind   ResolutionKind `json:"kind"`
	Amount float64        `json:"amount,omitempty"` // refund / compensation
	Notes  string         `json:"notes"`
}

// Validate checks the tagged union's per-kind requirements.
func (r Resolution) Validate() error {
	if strings.TrimSpace(r.Notes) == "" {
		return NewTicketError("resolution notes are required")
	}
	switch r.Kind {
	case ResolutionResolved, ResolutionRewash:
		return nil
	case ResolutionRefund, ResolutionCompensation:
		if r.Amount <= 0 {
			return NewTicketError("a positive amount is required for this resolution type")
		}
		return nil
	default:
		return NewTicketError("unknown resolution type")
	}
}

// EncodeLegacy renders the bracketed text marker the upstream field
// still consumes, e.g. "[REFUND: ₹150.00] duplicate charge".
func (r Resolution) EncodeLegacy() string {
	switch r.Kind {
	case ResolutionRefund:
		return fmt.Sprintf("[REFUND: ₹%.2f] %s", r.Amount, r.Notes)
	case ResolutionRewash:
		return fmt.Sprintf("[REWASH SCHEDULED] %s", r.Notes)
	case ResolutionCompensation:
		return fmt.Sprintf("[COMPENSATION: ₹%.2f] %s", r.Amount, r.Notes)
	default:
		return r.Notes
	}
}
