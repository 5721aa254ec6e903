package support

import "testing"

func TestResolutionValidate(t *testing.T) {
	cases := []struct {
		name       string
		resolution Resolution
		wantErr    bool
	}{
		{"plain resolved", Resolution{Kind: ResolutionResolved, Notes: "called the customer"}, false},
		{"rewash", Resolution{Kind: ResolutionRewash, Notes: "pickup tomorrow"}, false},
		{"refund with amount", Resolution{Kind: ResolutionRefund, Amount: 150, Notes: "stained shirt"}, false},
		{"refund without amount", Resolution{Kind: ResolutionRefund, Notes: "stained shirt"}, true},
		{"compensation without amount", Resolution{Kind: ResolutionCompensation, Notes: "late delivery"}, true},
		{"missing notes", Resolution{Kind: ResolutionResolved, Notes: "   "}, true},
		{"unknown kind", Resolution{Kind: "voucher", Notes: "n/a"}, true},
	}
	for _, tc := range cases {
		err := tc.resolution.Validate()
		if tc.wantErr && err == nil {
			t.Errorf("%s: expected an error", tc.name)
		}
		if !tc.wantErr && err != nil {
			t.Errorf("%s: unexpected error %v", tc.name, err)
		}
	}
}

func TestEncodeLegacyMarkers(t *testing.T) {
	refund := Resolution{Kind: ResolutionRefund, Amount: 150, Notes: "duplicate charge"}
	if got := refund.EncodeLegacy(); got != "[REFUND: ₹150.00] duplicate charge" {
		t.Fatalf("unexpected refund encoding: %q", got)
	}

	rewash := Resolution{Kind: ResolutionRewash, Notes: "pickup tomorrow"}
	if got := rewash.EncodeLegacy(); got != "[REWASH SCHEDULED] pickup tomorrow" {
		t.Fatalf("unexpected rewash encoding: %q", got)
	}

	compensation := Resolution{Kind: ResolutionCompensation, Amount: 75.5, Notes: "late delivery"}
	if got := compensation.EncodeLegacy(); got != "[COMPENSATION: ₹75.50] late delivery" {
		t.Fatalf("unexpected compensation encoding: %q", got)
	}

	plain := Resolution{Kind: ResolutionResolved, Notes: "called the customer"}
	if got := plain.EncodeLegacy(); got != "called the customer" {
		t.Fatalf("expected a plain resolution to carry no marker, got %q", got)
	}
}
