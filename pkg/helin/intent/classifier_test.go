package intent

import (
	"testing"

	"yatta-helin-be/pkg/helin/catalog"
	"yatta-helin-be/pkg/store"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("catalog.Load() failed: %v", err)
	}
	return cat
}

func TestClassifyIntents(t *testing.T) {
	classifier := NewClassifier(testCatalog(t), DefaultConfig())

	tests := []struct {
		name    string
		message string
		session store.SessionContext
		want    Intent
	}{
		{
			name:    "greeting on empty session",
			message: "merhaba",
			session: store.NewSessionContext(),
			want:    Greeting,
		},
		{
			name:    "price question without selected service",
			message: "evlilik teklifi organizasyonu ne kadar?",
			session: store.NewSessionContext(),
			want:    PriceNeedsService,
		},
		{
			name:    "faq keyword match",
			message: "kapora ödemesi nasıl yapılıyor",
			session: store.NewSessionContext(),
			want:    SalesFaq,
		},
		{
			name:    "explicit human request",
			message: "insanla görüşmek istiyorum",
			session: store.NewSessionContext(),
			want:    Handoff,
		},
		{
			name:    "technical issue escalates",
			message: "siteye giremiyorum bir hata var",
			session: store.NewSessionContext(),
			want:    Handoff,
		},
		{
			name:    "reservation intent with service",
			message: "yat turu için rezervasyon yapmak istiyorum",
			session: store.NewSessionContext(),
			want:    Reservation,
		},
		{
			name:    "reservation keyword without service stays unresolved",
			message: "rezervasyon yapmak istiyorum",
			session: store.NewSessionContext(),
			want:    Unknown,
		},
		{
			name:    "mid collection message keeps reservation intent",
			message: "15.08.2026 saat 14:00",
			session: store.SessionContext{Mode: store.ModeReservationCollecting, SelectedService: store.ServiceYachtTour},
			want:    Reservation,
		},
		{
			name:    "bare name introduction",
			message: "ismim Deniz",
			session: store.NewSessionContext(),
			want:    Greeting,
		},
		{
			name:    "gibberish",
			message: "asdf qwerty",
			session: store.NewSessionContext(),
			want:    Unknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifier.Classify(tt.message, tt.session, nil)
			if got.Intent != tt.want {
				t.Errorf("Classify(%q).Intent = %q, want %q", tt.message, got.Intent, tt.want)
			}
		})
	}
}

func TestClassifyStickyHandoff(t *testing.T) {
	classifier := NewClassifier(testCatalog(t), DefaultConfig())
	session := store.SessionContext{Mode: store.ModeHumanHandoff, HandoffCount: 1}

	// once handed off, every message is forced to handoff regardless of shape
	for _, message := range []string{"merhaba", "yat turu ne kadar", "kapora ödemesi", "asdf"} {
		got := classifier.Classify(message, session, nil)
		if got.Intent != Handoff {
			t.Errorf("Classify(%q) in HUMAN_HANDOFF = %q, want handoff", message, got.Intent)
		}
	}
}

func TestClassifyHandoffResetKeyword(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ResetKeywords = []string{"bastan basla"}
	classifier := NewClassifier(testCatalog(t), cfg)
	session := store.SessionContext{Mode: store.ModeHumanHandoff, GreetingCount: 2}

	got := classifier.Classify("baştan başla, kapora ödemesi nasıl yapılıyor", session, nil)
	if got.Intent != SalesFaq {
		t.Errorf("reset keyword did not leave handoff: intent = %q", got.Intent)
	}
}

func TestClassifyGreetingCap(t *testing.T) {
	classifier := NewClassifier(testCatalog(t), DefaultConfig())

	below := classifier.Classify("merhaba", store.SessionContext{Mode: store.ModeInfo, GreetingCount: 1}, nil)
	if below.Intent != Greeting {
		t.Errorf("greeting below cap = %q, want greeting", below.Intent)
	}

	at := classifier.Classify("merhaba", store.SessionContext{Mode: store.ModeInfo, GreetingCount: 2}, nil)
	if at.Intent == Greeting {
		t.Error("greeting-shaped message still classified as greeting at cap")
	}
}

func TestClassifyFaqScoreAndTieBreak(t *testing.T) {
	cat, err := catalog.New(
		[]catalog.FaqItem{
			{ID: "faq-a", Answer: "A", Keywords: []string{"kapora"}},
			{ID: "faq-b", Answer: "B", Keywords: []string{"kapora"}},
		},
		nil,
	)
	if err != nil {
		t.Fatalf("catalog.New() failed: %v", err)
	}

	classifier := NewClassifier(cat, DefaultConfig())
	got := classifier.Classify("kapora ne zaman ödenir", store.NewSessionContext(), nil)
	if got.Intent != SalesFaq {
		t.Fatalf("intent = %q, want sales_faq", got.Intent)
	}
	if got.MatchedFaq == nil || got.MatchedFaq.ID != "faq-a" {
		t.Errorf("tie not broken by catalog order: matched %+v", got.MatchedFaq)
	}
}

func TestClassifyGreetingWindowCountsRunes(t *testing.T) {
	// The salutation keyword is shared with an earlier item. Only the exact
	// greeting match keeps the greeting entry; the substring fallback would
	// tie-break to the first-registered item instead.
	cat, err := catalog.New(
		[]catalog.FaqItem{
			{ID: "faq-working-hours", Answer: "Saatlerimiz", Keywords: []string{"iyi akşamlar"}},
			{ID: GreetingFaqID, Answer: "Merhaba!", Keywords: []string{"iyi akşamlar"}},
		},
		nil,
	)
	if err != nil {
		t.Fatalf("catalog.New() failed: %v", err)
	}
	classifier := NewClassifier(cat, DefaultConfig())

	// 18 runes but 20 bytes of UTF-8: the short-message window admits the
	// salutation only when its length is counted in runes.
	got := classifier.Classify("   İyi Akşamlar   ", store.NewSessionContext(), nil)
	if got.Intent != Greeting {
		t.Fatalf("intent = %q, want greeting", got.Intent)
	}
	if got.MatchedFaq == nil || got.MatchedFaq.ID != GreetingFaqID {
		t.Errorf("salutation matched %+v, want %s", got.MatchedFaq, GreetingFaqID)
	}
}

func TestClassifyProductContext(t *testing.T) {
	cat := testCatalog(t)
	classifier := NewClassifier(cat, DefaultConfig())

	product, ok := cat.ProductBySlug("gulet-azra")
	if !ok {
		t.Fatal("expected product gulet-azra in catalog")
	}

	got := classifier.Classify("bu teknenin detayları neler", store.NewSessionContext(), &product)
	if got.Intent != ProductInfo {
		t.Errorf("intent = %q, want product_info", got.Intent)
	}
}

func TestClassifyEmptyCatalogDegradesToUnknown(t *testing.T) {
	cat, err := catalog.New(nil, nil)
	if err != nil {
		t.Fatalf("catalog.New() failed: %v", err)
	}
	classifier := NewClassifier(cat, DefaultConfig())

	got := classifier.Classify("kapora ödemesi nasıl yapılıyor", store.NewSessionContext(), nil)
	if got.Intent != Unknown {
		t.Errorf("intent with empty catalog = %q, want unknown", got.Intent)
	}
}

func TestClassifyHandoffCounterCap(t *testing.T) {
	classifier := NewClassifier(testCatalog(t), DefaultConfig())

	got := classifier.Classify("hmmmm", store.SessionContext{Mode: store.ModeInfo, HandoffCount: 2}, nil)
	if got.Intent != Handoff {
		t.Errorf("intent at handoff cap = %q, want handoff", got.Intent)
	}
}
