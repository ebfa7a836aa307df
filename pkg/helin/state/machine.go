package state

import (
	"yatta-helin-be/pkg/helin/intent"
	"yatta-helin-be/pkg/store"
)

// Transition is the outcome of one state-machine step: the resulting mode,
// the session patch carrying every state change, and signals for the caller.
type Transition struct {
	Mode       string
	Patch      store.SessionPatch
	NeedsHuman bool

	// FirstHandoff is set on the INFO/RESERVATION -> HUMAN_HANDOFF edge so
	// the composer can pick the long handoff reply and the caller can open
	// exactly one handoff request.
	FirstHandoff bool

	// ReservationCompleted is set when the draft's fourth slot fills.
	// The caller owns the completed-reservation counter.
	ReservationCompleted bool
	Draft                store.ReservationDraft
}

// Machine computes mode transitions. Stateless; every change is expressed
// as a patch for the caller to merge.
type Machine struct{}

func NewMachine() *Machine {
	return &Machine{}
}

// Step advances the conversation given the classified intent and the slots
// extracted from the current message. The input session is never mutated.
func (m *Machine) Step(session store.SessionContext, res intent.Result, slots store.ReservationDraft) Transition {
	t := Transition{Mode: session.Mode}
	if t.Mode == "" {
		t.Mode = store.ModeInfo
	}

	if res.DetectedName != "" && res.DetectedName != session.UserName {
		t.Patch.SetUserName(res.DetectedName)
	}
	if res.DetectedService != "" && res.DetectedService != session.SelectedService {
		t.Patch.SetSelectedService(res.DetectedService)
	}

	switch res.Intent {
	case intent.Greeting:
		t.Patch.SetGreetingCount(session.GreetingCount + 1)
		if t.Mode == store.ModeHumanHandoff {
			// only reachable after a configured reset keyword
			t.Mode = store.ModeInfo
		}

	case intent.Handoff:
		if session.Mode != store.ModeHumanHandoff {
			t.FirstHandoff = true
		}
		t.Patch.SetHandoffCount(session.HandoffCount + 1)
		t.Mode = store.ModeHumanHandoff

	case intent.Reservation:
		t.Mode = store.ModeReservationCollecting
		merged := session.Draft().Merge(slots)
		t.Draft = merged
		if d := session.Draft(); merged != d {
			t.Patch.ReservationDraft = &merged
		}
		if merged.Complete() {
			t.ReservationCompleted = true
			t.Mode = store.ModeInfo
		}

	case intent.Unknown:
		// Unanswerable turns count toward the handoff cap; the classifier
		// escalates once the cap is reached.
		t.Patch.SetHandoffCount(session.HandoffCount + 1)
		if t.Mode == store.ModeHumanHandoff {
			t.Mode = store.ModeInfo
		}

	default:
		// sales_faq, product_info, price_needs_service: informational turns
		// leave the mode alone, except after an explicit handoff reset.
		if t.Mode == store.ModeHumanHandoff {
			t.Mode = store.ModeInfo
		}
	}

	if t.Mode != session.Mode {
		t.Patch.SetMode(t.Mode)
	}
	t.NeedsHuman = t.Mode == store.ModeHumanHandoff

	return t
}
