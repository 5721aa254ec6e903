package booking

import (
	"context"
	"errors"
	"testing"

	"freshpress/models"
	"freshpress/upstream"
)

// memStore mimics the Redis store's JSON roundtrip: sessions are stored
// by value so callers never share a live pointer with the store.
type memStore struct {
	sessions map[string]models.WizardSession
}

func newMemStore() *memStore {
	return &memStore{sessions: map[string]models.WizardSession{}}
}

func (m *memStore) Save(ctx context.Context, session *models.WizardSession) error {
	m.sessions[session.SessionID] = *session
	return nil
}

func (m *memStore) Get(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	session, ok := m.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	copied := session
	return &copied, nil
}

func (m *memStore) Delete(ctx context.Context, sessionID string) error {
	delete(m.sessions, sessionID)
	return nil
}

// fakeAPI lets each test override only the calls it cares about.
type fakeAPI struct {
	serviceItems      func(ctx context.Context, branchID, serviceCode string) ([]models.ServiceItem, error)
	calculateDistance func(ctx context.Context, token string, req upstream.DistanceRequest) (*models.DeliveryInfo, error)
	calculatePricing  func(ctx context.Context, token string, req upstream.PricingRequest) (*models.PricingResult, error)
	createOrder       func(ctx context.Context, token string, payload models.OrderPayload) (*models.OrderConfirmation, error)
	rescheduleOrder   func(ctx context.Context, token, orderID, date, timeslot string) error
}

func (f *fakeAPI) ServiceItems(ctx context.Context, branchID, serviceCode string) ([]models.ServiceItem, error) {
	if f.serviceItems != nil {
		return f.serviceItems(ctx, branchID, serviceCode)
	}
	return nil, nil
}

func (f *fakeAPI) CalculateDistance(ctx context.Context, token string, req upstream.DistanceRequest) (*models.DeliveryInfo, error) {
	if f.calculateDistance != nil {
		return f.calculateDistance(ctx, token, req)
	}
	return &models.DeliveryInfo{IsServiceable: true}, nil
}

func (f *fakeAPI) CalculatePricing(ctx context.Context, token string, req upstream.PricingRequest) (*models.PricingResult, error) {
	if f.calculatePricing != nil {
		return f.calculatePricing(ctx, token, req)
	}
	return &models.PricingResult{}, nil
}

func (f *fakeAPI) CreateOrder(ctx context.Context, token string, payload models.OrderPayload) (*models.OrderConfirmation, error) {
	if f.createOrder != nil {
		return f.createOrder(ctx, token, payload)
	}
	return &models.OrderConfirmation{OrderID: "ord-1", OrderNumber: "FP-1001"}, nil
}

func (f *fakeAPI) RescheduleOrder(ctx context.Context, token, orderID, date, timeslot string) error {
	if f.rescheduleOrder != nil {
		return f.rescheduleOrder(ctx, token, orderID, date, timeslot)
	}
	return nil
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func newTestService(api *fakeAPI) (*DefaultWizardService, *memStore) {
	store := newMemStore()
	return &DefaultWizardService{Store: store, API: api}, store
}

func TestInitiateStartsAtStepOne(t *testing.T) {
	svc, _ := newTestService(&fakeAPI{})
	session, err := svc.Initiate(context.Background(), "")
	if err != nil {
		t.Fatalf("initiate failed: %v", err)
	}
	if session.Step != models.StepBranch {
		t.Fatalf("expected step %d, got %d", models.StepBranch, session.Step)
	}
	if session.SessionID == "" {
		t.Fatalf("expected a session id")
	}
}

func TestAdvanceRequiresLoginLeavingItemsStep(t *testing.T) {
	svc, store := newTestService(&fakeAPI{})
	session, _ := svc.Initiate(context.Background(), "")
	session.Step = models.StepItems
	session.BranchID = "br-1"
	session.ServiceCode = "wash_fold"
	session.Quantities = map[string]int{"shirt": 2}
	if err := store.Save(context.Background(), session); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	_, err := svc.Advance(context.Background(), session.SessionID)
	if !errors.Is(err, ErrLoginRequired) {
		t.Fatalf("expected ErrLoginRequired, got %v", err)
	}

	// The same session advances once the customer is attached.
	session.CustomerID = "cust-1"
	if err := store.Save(context.Background(), session); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	advanced, err := svc.Advance(context.Background(), session.SessionID)
	if err != nil {
		t.Fatalf("advance failed: %v", err)
	}
	if advanced.Step != models.StepAddress {
		t.Fatalf("expected step %d, got %d", models.StepAddress, advanced.Step)
	}
}

func TestServiceChangeClearsQuantities(t *testing.T) {
	api := &fakeAPI{
		serviceItems: func(ctx context.Context, branchID, serviceCode string) ([]models.ServiceItem, error) {
			return []models.ServiceItem{{ID: "shirt", Name: "Shirt", BasePrice: 20}}, nil
		},
	}
	svc, store := newTestService(api)
	session, _ := svc.Initiate(context.Background(), "cust-1")
	session.BranchID = "br-1"
	session.ServiceCode = "wash_fold"
	session.Quantities = map[string]int{"shirt": 3}
	if err := store.Save(context.Background(), session); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	updated, err := svc.Update(context.Background(), session.SessionID, "", UpdateInput{
		ServiceCode: strPtr("dry_clean"),
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if len(updated.Quantities) != 0 {
		t.Fatalf("expected quantities cleared on service change, got %v", updated.Quantities)
	}
	if updated.Pricing != nil {
		t.Fatalf("expected pricing reset on service change")
	}

	// Re-selecting the same service is still a reset: the catalog is
	// service-scoped and the selection is a deliberate re-entry.
	updated.Quantities = map[string]int{"shirt": 1}
	if err := store.Save(context.Background(), updated); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	again, err := svc.Update(context.Background(), session.SessionID, "", UpdateInput{
		ServiceCode: strPtr("dry_clean"),
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if len(again.Quantities) != 0 {
		t.Fatalf("expected quantities cleared on same-service reselect, got %v", again.Quantities)
	}
}

func TestUpdateRejectsNegativeQuantities(t *testing.T) {
	svc, store := newTestService(&fakeAPI{})
	session, _ := svc.Initiate(context.Background(), "cust-1")
	session.BranchID = "br-1"
	session.ServiceCode = "wash_fold"
	if err := store.Save(context.Background(), session); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	_, err := svc.Update(context.Background(), session.SessionID, "", UpdateInput{
		Quantities: map[string]int{"shirt": -1},
	})
	if err == nil {
		t.Fatalf("expected negative quantity to be rejected")
	}

	// Zero quantities fall out of the map instead of lingering.
	updated, err := svc.Update(context.Background(), session.SessionID, "", UpdateInput{
		Quantities: map[string]int{"shirt": 2, "towel": 0},
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if _, ok := updated.Quantities["towel"]; ok {
		t.Fatalf("expected zero-quantity item to be dropped")
	}
	if updated.Quantities["shirt"] != 2 {
		t.Fatalf("expected shirt quantity 2, got %d", updated.Quantities["shirt"])
	}
}

func TestExpressToggleInvalidatesPricing(t *testing.T) {
	pricingCalls := 0
	api := &fakeAPI{
		calculatePricing: func(ctx context.Context, token string, req upstream.PricingRequest) (*models.PricingResult, error) {
			pricingCalls++
			if !req.IsExpress {
				t.Fatalf("expected express pricing request")
			}
			return &models.PricingResult{GrandTotal: 150}, nil
		},
	}
	svc, store := newTestService(api)
	session, _ := svc.Initiate(context.Background(), "cust-1")
	session.BranchID = "br-1"
	session.ServiceCode = "wash_fold"
	session.Quantities = map[string]int{"shirt": 2}
	session.Pricing = &models.PricingResult{GrandTotal: 100}
	if err := store.Save(context.Background(), session); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	updated, err := svc.Update(context.Background(), session.SessionID, "", UpdateInput{
		IsExpress: boolPtr(true),
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if pricingCalls != 1 {
		t.Fatalf("expected one pricing recompute, got %d", pricingCalls)
	}
	if updated.Pricing == nil || updated.Pricing.GrandTotal != 150 {
		t.Fatalf("expected express pricing committed, got %+v", updated.Pricing)
	}
	if updated.PricingRev != session.PricingRev+1 {
		t.Fatalf("expected pricing revision bump")
	}
}

func TestStaleDeliveryResponseIsDropped(t *testing.T) {
	var svc *DefaultWizardService
	var store *memStore
	api := &fakeAPI{}
	api.calculateDistance = func(ctx context.Context, token string, req upstream.DistanceRequest) (*models.DeliveryInfo, error) {
		// While this request is in flight the user edits the session
		// again, superseding the revision it was issued under.
		session, err := store.Get(ctx, "s-1")
		if err != nil {
			return nil, err
		}
		session.DeliveryRev++
		if err := store.Save(ctx, session); err != nil {
			return nil, err
		}
		return &models.DeliveryInfo{IsServiceable: true, DeliveryCharge: 40}, nil
	}
	store = newMemStore()
	svc = &DefaultWizardService{Store: store, API: api}

	session := &models.WizardSession{
		SessionID:   "s-1",
		CustomerID:  "cust-1",
		Step:        models.StepAddress,
		BranchID:    "br-1",
		ServiceCode: "wash_fold",
		Quantities:  map[string]int{},
	}
	if err := store.Save(context.Background(), session); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	updated, err := svc.Update(context.Background(), "s-1", "", UpdateInput{
		AddressID: strPtr("addr-1"),
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Delivery != nil {
		t.Fatalf("expected the superseded delivery response to be dropped, got %+v", updated.Delivery)
	}
}

func TestJumpToRejectsForwardJumps(t *testing.T) {
	svc, store := newTestService(&fakeAPI{})
	session, _ := svc.Initiate(context.Background(), "cust-1")
	session.Step = models.StepAddress
	if err := store.Save(context.Background(), session); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if _, err := svc.JumpTo(context.Background(), session.SessionID, models.StepPayment); err == nil {
		t.Fatalf("expected forward jump to be rejected")
	}
	jumped, err := svc.JumpTo(context.Background(), session.SessionID, models.StepBranch)
	if err != nil {
		t.Fatalf("backward jump failed: %v", err)
	}
	if jumped.Step != models.StepBranch {
		t.Fatalf("expected step %d, got %d", models.StepBranch, jumped.Step)
	}
}

func completeSession(id string) *models.WizardSession {
	return &models.WizardSession{
		SessionID:   id,
		CustomerID:  "cust-1",
		Step:        models.StepPayment,
		BranchID:    "br-1",
		ServiceCode: "wash_fold",
		Quantities:  map[string]int{"shirt": 2},
		Items:       []models.ServiceItem{{ID: "shirt", Name: "Shirt", Category: "normal"}},
		AddressID:   "addr-1",
		Date:        "2026-09-03",
		Timeslot:    "10-12",
		Payment:     "cod",
		Delivery:    &models.DeliveryInfo{IsServiceable: true, DeliveryCharge: 30},
	}
}

func TestSubmitCreatesOrderOnce(t *testing.T) {
	createCalls := 0
	api := &fakeAPI{
		createOrder: func(ctx context.Context, token string, payload models.OrderPayload) (*models.OrderConfirmation, error) {
			createCalls++
			if payload.DeliveryCharge != 30 {
				t.Fatalf("expected delivery charge carried into the payload, got %v", payload.DeliveryCharge)
			}
			if len(payload.Items) != 1 || payload.Items[0].ItemType != "Shirt" {
				t.Fatalf("expected catalog name on the order line, got %+v", payload.Items)
			}
			return &models.OrderConfirmation{OrderID: "ord-9", OrderNumber: "FP-2009"}, nil
		},
	}
	svc, store := newTestService(api)
	if err := store.Save(context.Background(), completeSession("s-1")); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	submitted, err := svc.Submit(context.Background(), "s-1", "tok")
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if !submitted.Submitted || submitted.OrderNumber != "FP-2009" {
		t.Fatalf("expected confirmation recorded, got %+v", submitted)
	}

	if _, err := svc.Submit(context.Background(), "s-1", "tok"); err == nil {
		t.Fatalf("expected a second submit to be rejected")
	}
	if createCalls != 1 {
		t.Fatalf("expected exactly one create-order call, got %d", createCalls)
	}
}

func TestSubmitFailureKeepsSessionRetryable(t *testing.T) {
	api := &fakeAPI{
		createOrder: func(ctx context.Context, token string, payload models.OrderPayload) (*models.OrderConfirmation, error) {
			return nil, errors.New("upstream unavailable")
		},
	}
	svc, store := newTestService(api)
	if err := store.Save(context.Background(), completeSession("s-1")); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if _, err := svc.Submit(context.Background(), "s-1", "tok"); err == nil {
		t.Fatalf("expected submit to fail")
	}
	session, err := store.Get(context.Background(), "s-1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if session.Submitted {
		t.Fatalf("expected the session to stay unsubmitted after a failed create")
	}
	if session.Step != models.StepPayment {
		t.Fatalf("expected the session to stay on the payment step")
	}
}

func TestRescheduleRequiresPlacedOrder(t *testing.T) {
	svc, store := newTestService(&fakeAPI{})
	if err := store.Save(context.Background(), completeSession("s-1")); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if _, err := svc.Reschedule(context.Background(), "s-1", "tok", "2026-09-05", "14-16"); err == nil {
		t.Fatalf("expected reschedule to be rejected before submit")
	}

	session, _ := store.Get(context.Background(), "s-1")
	session.Submitted = true
	session.OrderID = "ord-9"
	if err := store.Save(context.Background(), session); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	rescheduled, err := svc.Reschedule(context.Background(), "s-1", "tok", "2026-09-05", "14-16")
	if err != nil {
		t.Fatalf("reschedule failed: %v", err)
	}
	if rescheduled.Date != "2026-09-05" || rescheduled.Timeslot != "14-16" {
		t.Fatalf("expected new schedule recorded, got %s %s", rescheduled.Date, rescheduled.Timeslot)
	}
	if rescheduled.Step != models.StepSchedule {
		t.Fatalf("expected the session back on the schedule step, got %d", rescheduled.Step)
	}
}

func TestCancelDiscardsSession(t *testing.T) {
	svc, store := newTestService(&fakeAPI{})
	session, _ := svc.Initiate(context.Background(), "cust-1")
	if err := svc.Cancel(context.Background(), session.SessionID); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if _, err := store.Get(context.Background(), session.SessionID); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected the session gone after cancel, got %v", err)
	}
}
