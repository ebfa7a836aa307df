package helin

import (
	"strings"
	"testing"

	"yatta-helin-be/pkg/helin/catalog"
	"yatta-helin-be/pkg/helin/intent"
	"yatta-helin-be/pkg/store"
)

func testEngine(t *testing.T) *Engine {
	t.Helper()
	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("catalog.Load() error = %v", err)
	}
	return New(cat, DefaultConfig())
}

// applied returns the session that results from merging the result's patch,
// mirroring what the service layer does between turns.
func applied(session store.SessionContext, res EngineResult) store.SessionContext {
	if res.SessionPatch == nil {
		return session
	}
	return res.SessionPatch.Apply(session)
}

func TestProcessFirstGreeting(t *testing.T) {
	e := testEngine(t)

	res := e.Process(EngineRequest{Message: "merhaba"})

	if res.Intent != intent.Greeting {
		t.Fatalf("Intent = %s, want greeting", res.Intent)
	}
	if res.NeedsHuman {
		t.Error("NeedsHuman = true on a greeting")
	}
	if !strings.Contains(res.Reply, "Helin") {
		t.Errorf("first greeting does not introduce the assistant: %q", res.Reply)
	}
	if res.SessionPatch == nil || res.SessionPatch.GreetingCount == nil || *res.SessionPatch.GreetingCount != 1 {
		t.Errorf("patch = %+v, want greetingCount=1", res.SessionPatch)
	}
	if res.MatchedFaqID != intent.GreetingFaqID {
		t.Errorf("MatchedFaqID = %q, want %s", res.MatchedFaqID, intent.GreetingFaqID)
	}
}

func TestProcessPriceWithoutService(t *testing.T) {
	e := testEngine(t)

	res := e.Process(EngineRequest{Message: "evlilik teklifi organizasyonu ne kadar?"})

	if res.Intent != intent.PriceNeedsService {
		t.Fatalf("Intent = %s, want price_needs_service", res.Intent)
	}
	// the service named in the same message is recorded for the next turns
	if res.SessionPatch == nil || res.SessionPatch.SelectedService == nil ||
		*res.SessionPatch.SelectedService != store.ServiceProposal {
		t.Errorf("patch = %+v, want selectedService=evlilik-teklifi", res.SessionPatch)
	}
}

func TestProcessFaqReplyVerbatim(t *testing.T) {
	e := testEngine(t)
	faq, ok := e.Catalog().FaqByID("faq-payment")
	if !ok {
		t.Fatal("faq-payment missing from catalog")
	}

	res := e.Process(EngineRequest{Message: "kapora ödemesi nasıl yapılıyor?"})

	if res.Intent != intent.SalesFaq {
		t.Fatalf("Intent = %s, want sales_faq", res.Intent)
	}
	if res.MatchedFaqID != "faq-payment" {
		t.Errorf("MatchedFaqID = %q, want faq-payment", res.MatchedFaqID)
	}
	if res.Reply != faq.Answer {
		t.Errorf("FAQ reply not verbatim:\n got %q\nwant %q", res.Reply, faq.Answer)
	}
}

func TestProcessHandoff(t *testing.T) {
	e := testEngine(t)

	res := e.Process(EngineRequest{Message: "insanla görüşmek istiyorum"})

	if res.Intent != intent.Handoff {
		t.Fatalf("Intent = %s, want handoff", res.Intent)
	}
	if !res.NeedsHuman {
		t.Error("NeedsHuman = false on handoff")
	}
	if !res.FirstHandoff {
		t.Error("FirstHandoff = false on the first escalation")
	}
	if res.SessionPatch == nil || res.SessionPatch.Mode == nil || *res.SessionPatch.Mode != store.ModeHumanHandoff {
		t.Errorf("patch = %+v, want mode=HUMAN_HANDOFF", res.SessionPatch)
	}
	if !strings.Contains(res.Reply, "0530 487 23 33") {
		t.Errorf("first handoff reply lacks the contact phone: %q", res.Reply)
	}
}

func TestProcessHandoffIsSticky(t *testing.T) {
	e := testEngine(t)
	session := store.NewSessionContext()

	first := e.Process(EngineRequest{Message: "insanla görüşmek istiyorum", Session: &session})
	session = applied(session, first)

	// an ordinary FAQ question no longer gets an automated answer
	second := e.Process(EngineRequest{Message: "kapora ödemesi nasıl yapılıyor?", Session: &session})

	if second.Intent != intent.Handoff {
		t.Fatalf("Intent after handoff = %s, want handoff", second.Intent)
	}
	if !second.NeedsHuman {
		t.Error("NeedsHuman = false while handed off")
	}
	if second.FirstHandoff {
		t.Error("FirstHandoff = true on a later turn")
	}
	if second.Reply == first.Reply {
		t.Error("repeat handoff reply should differ from the first")
	}
}

func TestProcessIsIdempotent(t *testing.T) {
	e := testEngine(t)
	session := store.SessionContext{Mode: store.ModeInfo, UserName: "Deniz", GreetingCount: 1}

	req := EngineRequest{Message: "kapora ödemesi nasıl yapılıyor?", Session: &session}
	first := e.Process(req)
	second := e.Process(req)

	if first.Reply != second.Reply || first.Intent != second.Intent {
		t.Errorf("same input produced different results:\n %+v\n %+v", first, second)
	}
}

func TestProcessGreetingCap(t *testing.T) {
	e := testEngine(t)
	session := store.NewSessionContext()

	for i := 0; i < 2; i++ {
		res := e.Process(EngineRequest{Message: "merhaba", Session: &session})
		if res.Intent != intent.Greeting {
			t.Fatalf("turn %d: Intent = %s, want greeting", i+1, res.Intent)
		}
		session = applied(session, res)
	}

	res := e.Process(EngineRequest{Message: "merhaba", Session: &session})
	if res.Intent == intent.Greeting {
		t.Errorf("greeting still classified past the cap (count=%d)", session.GreetingCount)
	}
}

func TestProcessReservationFlow(t *testing.T) {
	e := testEngine(t)
	session := store.NewSessionContext()

	turns := []struct {
		message      string
		wantMissing  int
		wantComplete bool
	}{
		{"yat turu için rezervasyon yapmak istiyorum", 4, false},
		{"yarın olsun", 3, false},
		{"saat 14:00 uygun", 2, false},
		{"4 kişi olacağız", 1, false},
		{"numaram 0532 123 45 67", 0, true},
	}

	for i, turn := range turns {
		res := e.Process(EngineRequest{Message: turn.message, Session: &session})
		if res.Intent != intent.Reservation {
			t.Fatalf("turn %d (%q): Intent = %s, want reservation", i+1, turn.message, res.Intent)
		}
		if res.ReservationCompleted != turn.wantComplete {
			t.Fatalf("turn %d: ReservationCompleted = %v, want %v", i+1, res.ReservationCompleted, turn.wantComplete)
		}
		if got := len(res.Draft.MissingSlots()); got != turn.wantMissing {
			t.Fatalf("turn %d: %d slots missing (%v), want %d", i+1, got, res.Draft.MissingSlots(), turn.wantMissing)
		}
		session = applied(session, res)
	}

	if session.Mode != store.ModeInfo {
		t.Errorf("Mode after completion = %q, want INFO", session.Mode)
	}
	draft := session.Draft()
	if !draft.Complete() {
		t.Errorf("stored draft incomplete after the flow: %+v", draft)
	}
}

func TestProcessSlotsNeverRegress(t *testing.T) {
	e := testEngine(t)
	session := store.SessionContext{
		Mode:             store.ModeReservationCollecting,
		SelectedService:  store.ServiceYachtTour,
		ReservationDraft: &store.ReservationDraft{Date: "yarin", Time: "14:00"},
	}

	res := e.Process(EngineRequest{Message: "sey biz galiba", Session: &session})
	session = applied(session, res)

	draft := session.Draft()
	if draft.Date != "yarin" || draft.Time != "14:00" {
		t.Errorf("collected slots regressed: %+v", draft)
	}
}

func TestProcessProductContext(t *testing.T) {
	e := testEngine(t)

	res := e.Process(EngineRequest{
		Message: "bu teknenin fiyatı nedir?",
		Product: &ProductContext{Slug: "gulet-azra"},
	})

	if res.Intent != intent.ProductInfo {
		t.Fatalf("Intent = %s, want product_info", res.Intent)
	}
	if !strings.Contains(res.Reply, "Gulet Azra") || !strings.Contains(res.Reply, "5000 TL") {
		t.Errorf("product reply = %q", res.Reply)
	}
}

func TestProcessUnknownProductDegrades(t *testing.T) {
	e := testEngine(t)

	res := e.Process(EngineRequest{
		Message: "bu teknenin fiyatı nedir?",
		Product: &ProductContext{Slug: "no-such-boat"},
	})

	if res.Intent == intent.ProductInfo {
		t.Error("unresolvable product context still produced product_info")
	}
}

func TestProcessNamePersonalization(t *testing.T) {
	e := testEngine(t)
	session := store.NewSessionContext()

	first := e.Process(EngineRequest{Message: "ismim Deniz", Session: &session})
	if first.Intent != intent.Greeting {
		t.Fatalf("Intent = %s, want greeting", first.Intent)
	}
	if !strings.Contains(first.Reply, "Deniz Bey") {
		t.Errorf("name reply = %q", first.Reply)
	}
	session = applied(session, first)
	if session.UserName != "Deniz" {
		t.Fatalf("UserName after patch = %q, want Deniz", session.UserName)
	}

	second := e.Process(EngineRequest{Message: "kapora ödemesi nasıl yapılıyor?", Session: &session})
	if !strings.HasPrefix(second.Reply, "Deniz Bey, ") {
		t.Errorf("stored name not used in later replies: %q", second.Reply)
	}
}

func TestProcessUnknownEscalatesAtCap(t *testing.T) {
	e := testEngine(t)
	session := store.NewSessionContext()

	for i := 0; i < 2; i++ {
		res := e.Process(EngineRequest{Message: "xyzzy qwerty", Session: &session})
		if res.Intent != intent.Unknown {
			t.Fatalf("turn %d: Intent = %s, want unknown", i+1, res.Intent)
		}
		if res.NeedsHuman {
			t.Fatalf("turn %d: NeedsHuman before the cap", i+1)
		}
		session = applied(session, res)
	}

	res := e.Process(EngineRequest{Message: "xyzzy qwerty", Session: &session})
	if res.Intent != intent.Handoff {
		t.Fatalf("Intent at cap = %s, want handoff", res.Intent)
	}
	if !res.NeedsHuman {
		t.Error("NeedsHuman = false at the unanswerable cap")
	}
}

func TestProcessEmptyPatchOmitted(t *testing.T) {
	e := testEngine(t)
	session := store.SessionContext{Mode: store.ModeInfo, GreetingCount: 2, HandoffCount: 0, UserName: "Deniz"}

	res := e.Process(EngineRequest{Message: "kapora ödemesi nasıl yapılıyor?", Session: &session})

	if res.Intent != intent.SalesFaq {
		t.Fatalf("Intent = %s, want sales_faq", res.Intent)
	}
	if res.SessionPatch != nil {
		t.Errorf("no state changed but patch = %+v", res.SessionPatch)
	}
}
