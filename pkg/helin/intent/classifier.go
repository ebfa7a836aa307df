package intent

import (
	"unicode/utf8"

	"yatta-helin-be/pkg/helin/catalog"
	"yatta-helin-be/pkg/helin/textutil"
	"yatta-helin-be/pkg/store"
)

// Intent is the classified purpose of a single user message.
type Intent string

const (
	Greeting          Intent = "greeting"
	PriceNeedsService Intent = "price_needs_service"
	SalesFaq          Intent = "sales_faq"
	ProductInfo       Intent = "product_info"
	Reservation       Intent = "reservation"
	Handoff           Intent = "handoff"
	Unknown           Intent = "unknown"
)

// GreetingFaqID is the FAQ entry holding the greeting intro text. Short
// messages matching its keywords exactly are classified as greetings.
const GreetingFaqID = "faq-greeting"

// Config holds the classifier's caps, thresholds and keyword lists.
// These are deployment configuration, not constants.
type Config struct {
	// GreetingCap stops greeting replies after this many exchanged greetings.
	GreetingCap int
	// HandoffCap escalates to a human after this many unanswerable turns.
	HandoffCap int
	// FaqThreshold is the minimum keyword-overlap score for a FAQ match.
	// Each matched keyword scores 10 points.
	FaqThreshold int
	// ShortMessageLen bounds the exact-match greeting check.
	ShortMessageLen int

	PriceKeywords       []string
	HandoffKeywords     []string
	TechnicalKeywords   []string
	ReservationKeywords []string
	// ResetKeywords leave HUMAN_HANDOFF when matched. Empty disables reset.
	ResetKeywords []string
}

// DefaultConfig returns the production defaults.
func DefaultConfig() Config {
	return Config{
		GreetingCap:     2,
		HandoffCap:      2,
		FaqThreshold:    5,
		ShortMessageLen: 20,
		PriceKeywords:   []string{"fiyat", "ucret", "kac para", "ne kadar"},
		HandoffKeywords: []string{
			"temsilci", "yetkili", "canli destek", "gercek bir insan",
			"insanla gorus", "biriyle gorus", "yetkiliye baglan",
		},
		TechnicalKeywords: []string{
			"hata", "giremiyorum", "calismiyor", "problem", "sorun",
			"bug", "sikinti", "bozuk",
		},
		ReservationKeywords: []string{"rezervasyon", "ayirtmak", "ayirmak", "randevu", "yer ayir"},
		ResetKeywords:       nil,
	}
}

// Result carries the classified intent plus what the classifier already
// learned about the message on the way.
type Result struct {
	Intent          Intent
	MatchedFaq      *catalog.FaqItem
	Score           int
	DetectedName    string
	DetectedService string
	OnlyName        bool
}

// Classifier maps (message, session, product context) to an intent.
// Deterministic, case-insensitive, diacritic-tolerant. Stateless and safe
// for concurrent use; catalogs are read-only.
type Classifier struct {
	catalog *catalog.Catalog
	cfg     Config
}

func NewClassifier(cat *catalog.Catalog, cfg Config) *Classifier {
	return &Classifier{catalog: cat, cfg: cfg}
}

// Classify resolves the intent of one message. Rule order:
// sticky handoff, greeting (below cap), reservation, FAQ match, product
// context, price-without-service, handoff vocabulary or cap, unknown.
func (c *Classifier) Classify(message string, session store.SessionContext, product *catalog.Product) Result {
	msg := textutil.Normalize(message)

	res := Result{
		Intent:          Unknown,
		DetectedName:    textutil.ExtractUserName(message),
		DetectedService: textutil.ExtractService(message),
	}
	res.OnlyName = textutil.IsOnlyNameMessage(message, res.DetectedName)

	if msg == "" {
		return res
	}

	// HUMAN_HANDOFF is sticky: once an operator owns the conversation the
	// engine stops classifying, unless a reset keyword is configured and hit.
	if session.Mode == store.ModeHumanHandoff {
		if len(c.cfg.ResetKeywords) > 0 && textutil.ContainsAny(msg, normalizeAll(c.cfg.ResetKeywords)) {
			// fall through to normal classification
		} else {
			res.Intent = Handoff
			return res
		}
	}

	faq, score := c.matchFaq(message, msg)
	res.MatchedFaq = faq
	res.Score = score

	isGreetingFaq := faq != nil && faq.ID == GreetingFaqID
	if (isGreetingFaq || res.OnlyName) && session.GreetingCount < c.cfg.GreetingCap {
		res.Intent = Greeting
		return res
	}
	if isGreetingFaq {
		// Greeting cap reached: greeting-shaped messages stop counting as
		// greetings and fall through to the remaining rules.
		res.MatchedFaq = nil
		res.Score = 0
		faq = nil
	}

	// A message introducing a name never escalates; treat it as a greeting
	// even past the cap rather than routing "ben Deniz" to an operator.
	if res.OnlyName {
		res.Intent = Greeting
		return res
	}

	collecting := session.Mode == store.ModeReservationCollecting
	wantsReservation := textutil.ContainsAny(msg, normalizeAll(c.cfg.ReservationKeywords))
	if collecting || (wantsReservation && (res.DetectedService != "" || session.SelectedService != "")) {
		if !textutil.ContainsAny(msg, normalizeAll(c.cfg.HandoffKeywords)) {
			res.Intent = Reservation
			return res
		}
	}

	if faq != nil && score >= c.cfg.FaqThreshold {
		res.Intent = SalesFaq
		return res
	}

	// Product context beats the generic price rule: a price question asked
	// while viewing a product is a question about that product.
	if product != nil {
		res.Intent = ProductInfo
		return res
	}

	if textutil.ContainsAny(msg, normalizeAll(c.cfg.PriceKeywords)) && session.SelectedService == "" {
		res.Intent = PriceNeedsService
		return res
	}

	if textutil.ContainsAny(msg, normalizeAll(c.cfg.HandoffKeywords)) ||
		textutil.ContainsAny(msg, normalizeAll(c.cfg.TechnicalKeywords)) ||
		session.HandoffCount >= c.cfg.HandoffCap {
		res.Intent = Handoff
		return res
	}

	return res
}

// matchFaq scores every FAQ item's keywords against the message by substring
// overlap. Strictly-greater comparison keeps ties on the first-registered
// item, making the winner deterministic.
func (c *Classifier) matchFaq(raw, normalized string) (*catalog.FaqItem, int) {
	// Short salutations match the greeting entry exactly, not by substring,
	// so "selam" matches but "selamlar iptal kosullari neler" does not
	// short-circuit the real question.
	// Counted in runes: diacritics must not inflate the length of a
	// salutation past the window.
	if utf8.RuneCountInString(raw) < c.cfg.ShortMessageLen {
		if greeting, ok := c.catalog.FaqByID(GreetingFaqID); ok {
			for _, k := range greeting.Keywords {
				if normalized == textutil.Normalize(k) {
					g := greeting
					return &g, 10
				}
			}
		}
	}

	var best *catalog.FaqItem
	maxScore := 0
	for _, item := range c.catalog.Faqs() {
		matched := 0
		for _, k := range item.Keywords {
			if k == "" {
				continue
			}
			if textutil.ContainsAny(normalized, []string{textutil.Normalize(k)}) {
				matched++
			}
		}
		if matched == 0 {
			continue
		}
		score := matched * 10
		if score > maxScore {
			maxScore = score
			it := item
			best = &it
		}
	}
	return best, maxScore
}

func normalizeAll(keywords []string) []string {
	out := make([]string, len(keywords))
	for i, k := range keywords {
		out[i] = textutil.Normalize(k)
	}
	return out
}
