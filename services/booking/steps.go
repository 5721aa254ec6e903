package booking

import "freshpress/models"

// CanProceed reports whether the session may advance past the given
// step. Authentication at the items step is handled separately by
// Advance so it can surface ErrLoginRequired instead of a plain block.
func CanProceed(s *models.WizardSession, step int) bool {
	return proceedBlock(s, step) == ""
}

// proceedBlock returns the user-facing reason a forward transition is
// blocked, or "" when it is allowed.
func proceedBlock(s *models.WizardSession, step int) string {
	switch step {
	case models.StepBranch:
		if s.BranchID == "" {
			return "select a branch to continue"
		}
	case models.StepService:
		if s.ServiceCode == "" {
			return "select a service to continue"
		}
	case models.StepItems:
		if s.TotalQuantity() <= 0 {
			return "add at least one item to continue"
		}
	case models.StepAddress:
		if s.AddressID == "" {
			return "select a pickup address to continue"
		}
		// An unserviceable area blocks progress; an uncomputed preview
		// does not.
		if s.Delivery != nil && !s.Delivery.IsServiceable {
			return "the selected address is outside our serviceable area"
		}
	case models.StepSchedule:
		if s.Date == "" || s.Timeslot == "" {
			return "choose a pickup date and timeslot to continue"
		}
	default:
		// Step 6 has no forward step; its terminal action is Submit.
		return "no further step"
	}
	return ""
}

// submitBlock validates the whole session ahead of order creation.
func submitBlock(s *models.WizardSession) string {
	for step := models.StepBranch; step <= models.StepSchedule; step++ {
		if reason := proceedBlock(s, step); reason != "" {
			return reason
		}
	}
	if s.Payment == "" {
		return "choose a payment method to place the order"
	}
	return ""
}
