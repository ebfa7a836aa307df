package state

import (
	"testing"

	"yatta-helin-be/pkg/helin/intent"
	"yatta-helin-be/pkg/store"
)

func TestStepHandoffTransition(t *testing.T) {
	machine := NewMachine()
	session := store.NewSessionContext()

	tr := machine.Step(session, intent.Result{Intent: intent.Handoff}, store.ReservationDraft{})

	if tr.Mode != store.ModeHumanHandoff {
		t.Errorf("Mode = %q, want HUMAN_HANDOFF", tr.Mode)
	}
	if !tr.NeedsHuman {
		t.Error("NeedsHuman = false after handoff")
	}
	if !tr.FirstHandoff {
		t.Error("FirstHandoff = false on first escalation")
	}
	if tr.Patch.HandoffCount == nil || *tr.Patch.HandoffCount != 1 {
		t.Errorf("HandoffCount patch = %v, want 1", tr.Patch.HandoffCount)
	}
	if tr.Patch.Mode == nil || *tr.Patch.Mode != store.ModeHumanHandoff {
		t.Errorf("Mode patch = %v, want HUMAN_HANDOFF", tr.Patch.Mode)
	}
}

func TestStepHandoffIsSticky(t *testing.T) {
	machine := NewMachine()
	session := store.SessionContext{Mode: store.ModeHumanHandoff, HandoffCount: 1}

	tr := machine.Step(session, intent.Result{Intent: intent.Handoff}, store.ReservationDraft{})

	if tr.Mode != store.ModeHumanHandoff {
		t.Errorf("Mode = %q, want HUMAN_HANDOFF", tr.Mode)
	}
	if tr.FirstHandoff {
		t.Error("FirstHandoff = true on repeated handoff")
	}
	if !tr.NeedsHuman {
		t.Error("NeedsHuman = false while handed off")
	}
}

func TestStepGreetingIncrementsCounter(t *testing.T) {
	machine := NewMachine()
	session := store.NewSessionContext()

	tr := machine.Step(session, intent.Result{Intent: intent.Greeting}, store.ReservationDraft{})

	if tr.Mode != store.ModeInfo {
		t.Errorf("Mode = %q, want INFO", tr.Mode)
	}
	if tr.Patch.GreetingCount == nil || *tr.Patch.GreetingCount != 1 {
		t.Errorf("GreetingCount patch = %v, want 1", tr.Patch.GreetingCount)
	}
	if tr.NeedsHuman {
		t.Error("NeedsHuman = true on greeting")
	}
}

func TestStepReservationCollectsSlots(t *testing.T) {
	machine := NewMachine()
	session := store.SessionContext{Mode: store.ModeInfo, SelectedService: store.ServiceYachtTour}

	tr := machine.Step(session, intent.Result{Intent: intent.Reservation}, store.ReservationDraft{Date: "yarin"})

	if tr.Mode != store.ModeReservationCollecting {
		t.Errorf("Mode = %q, want RESERVATION_COLLECTING", tr.Mode)
	}
	if tr.Patch.ReservationDraft == nil || tr.Patch.ReservationDraft.Date != "yarin" {
		t.Errorf("draft patch = %+v, want date yarin", tr.Patch.ReservationDraft)
	}
	if tr.ReservationCompleted {
		t.Error("ReservationCompleted = true with three slots missing")
	}
}

func TestStepReservationNeverRegressesSlots(t *testing.T) {
	machine := NewMachine()
	session := store.SessionContext{
		Mode:             store.ModeReservationCollecting,
		SelectedService:  store.ServiceYachtTour,
		ReservationDraft: &store.ReservationDraft{Date: "yarin", Time: "14:00"},
	}

	// message carried no recognizable slots
	tr := machine.Step(session, intent.Result{Intent: intent.Reservation}, store.ReservationDraft{})

	if tr.Draft.Date != "yarin" || tr.Draft.Time != "14:00" {
		t.Errorf("collected slots regressed: %+v", tr.Draft)
	}
	if tr.Patch.ReservationDraft != nil {
		t.Errorf("unchanged draft still patched: %+v", tr.Patch.ReservationDraft)
	}
}

func TestStepReservationCompletion(t *testing.T) {
	machine := NewMachine()
	session := store.SessionContext{
		Mode:             store.ModeReservationCollecting,
		SelectedService:  store.ServiceYachtTour,
		ReservationDraft: &store.ReservationDraft{Date: "yarin", Time: "14:00", People: 4},
	}

	tr := machine.Step(session, intent.Result{Intent: intent.Reservation}, store.ReservationDraft{Phone: "05321234567"})

	if !tr.ReservationCompleted {
		t.Fatal("ReservationCompleted = false after final slot")
	}
	if tr.Mode != store.ModeInfo {
		t.Errorf("Mode after completion = %q, want INFO", tr.Mode)
	}
	if !tr.Draft.Complete() {
		t.Errorf("completed draft not full: %+v", tr.Draft)
	}
	if tr.NeedsHuman {
		t.Error("NeedsHuman = true after reservation completion")
	}
}

func TestStepUnknownCountsTowardHandoff(t *testing.T) {
	machine := NewMachine()
	session := store.SessionContext{Mode: store.ModeInfo, HandoffCount: 1}

	tr := machine.Step(session, intent.Result{Intent: intent.Unknown}, store.ReservationDraft{})

	if tr.Mode != store.ModeInfo {
		t.Errorf("Mode = %q, want INFO", tr.Mode)
	}
	if tr.Patch.HandoffCount == nil || *tr.Patch.HandoffCount != 2 {
		t.Errorf("HandoffCount patch = %v, want 2", tr.Patch.HandoffCount)
	}
	if tr.NeedsHuman {
		t.Error("NeedsHuman = true on unknown below cap")
	}
}

func TestStepRecordsDetectedNameAndService(t *testing.T) {
	machine := NewMachine()
	session := store.NewSessionContext()

	tr := machine.Step(session, intent.Result{
		Intent:          intent.SalesFaq,
		DetectedName:    "Deniz",
		DetectedService: store.ServiceProposal,
	}, store.ReservationDraft{})

	if tr.Patch.UserName == nil || *tr.Patch.UserName != "Deniz" {
		t.Errorf("UserName patch = %v, want Deniz", tr.Patch.UserName)
	}
	if tr.Patch.SelectedService == nil || *tr.Patch.SelectedService != store.ServiceProposal {
		t.Errorf("SelectedService patch = %v, want %s", tr.Patch.SelectedService, store.ServiceProposal)
	}
}
