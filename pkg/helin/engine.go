// Package helin implements Yatta's rule-based sales assistant: a
// deterministic, stateful dialogue engine that classifies each user message,
// advances the conversation mode and composes the literal reply. The engine
// is pure computation; persistence, transport and chat logging belong to the
// caller.
package helin

import (
	"strings"

	"yatta-helin-be/pkg/helin/catalog"
	"yatta-helin-be/pkg/helin/intent"
	"yatta-helin-be/pkg/helin/reply"
	"yatta-helin-be/pkg/helin/state"
	"yatta-helin-be/pkg/helin/textutil"
	"yatta-helin-be/pkg/store"
)

// Config bundles the tunables of the engine's components.
type Config struct {
	Intent    intent.Config
	Templates reply.Templates
}

func DefaultConfig() Config {
	return Config{
		Intent:    intent.DefaultConfig(),
		Templates: reply.DefaultTemplates(),
	}
}

// ProductContext points the engine at the product page the widget is
// embedded on, by slug or id.
type ProductContext struct {
	Slug string `json:"slug,omitempty"`
	ID   string `json:"id,omitempty"`
}

// EngineRequest is one turn's input. Never mutated.
type EngineRequest struct {
	Message string
	Session *store.SessionContext
	Product *ProductContext
}

// EngineResult is one turn's output. SessionPatch is a partial-merge
// instruction for the caller, nil when the turn changed nothing.
type EngineResult struct {
	Reply        string
	Intent       intent.Intent
	NeedsHuman   bool
	MatchedFaqID string
	SessionPatch *store.SessionPatch

	// FirstHandoff marks the turn that moved the session into
	// HUMAN_HANDOFF, so the caller opens exactly one handoff request.
	FirstHandoff bool
	// ReservationCompleted marks the turn that filled the draft's last
	// slot; Draft holds the completed snapshot.
	ReservationCompleted bool
	Draft                store.ReservationDraft
}

// Engine wires classifier, state machine and composer over the static
// catalogs. Safe for concurrent use across independent sessions.
type Engine struct {
	catalog    *catalog.Catalog
	classifier *intent.Classifier
	machine    *state.Machine
	composer   *reply.Composer
}

func New(cat *catalog.Catalog, cfg Config) *Engine {
	return &Engine{
		catalog:    cat,
		classifier: intent.NewClassifier(cat, cfg.Intent),
		machine:    state.NewMachine(),
		composer:   reply.NewComposer(cat, cfg.Templates),
	}
}

// Process runs one turn: classify, transition, compose. Pure and
// deterministic; the same (message, session) pair always yields the same
// result. Unmatched input degrades to a clarification reply, never an error.
func (e *Engine) Process(req EngineRequest) EngineResult {
	session := store.NewSessionContext()
	if req.Session != nil {
		session = *req.Session
		if session.Mode == "" {
			session.Mode = store.ModeInfo
		}
	}

	product := e.resolveProduct(req.Product)
	res := e.classifier.Classify(req.Message, session, product)

	var slots store.ReservationDraft
	if res.Intent == intent.Reservation {
		slots = textutil.ExtractSlots(req.Message)
	}

	transition := e.machine.Step(session, res, slots)

	effectiveName := session.UserName
	if res.DetectedName != "" {
		effectiveName = res.DetectedName
	}
	effectiveService := session.SelectedService
	if res.DetectedService != "" {
		effectiveService = res.DetectedService
	}

	text := e.composer.Compose(reply.Input{
		Intent:               res.Intent,
		Session:              session,
		Matched:              res.MatchedFaq,
		Product:              product,
		UserName:             effectiveName,
		SelectedService:      effectiveService,
		OnlyName:             res.OnlyName,
		DetectedName:         res.DetectedName,
		FirstGreeting:        session.GreetingCount == 0,
		FirstHandoff:         transition.FirstHandoff,
		Draft:                transition.Draft,
		ReservationCompleted: transition.ReservationCompleted,
	})

	result := EngineResult{
		Reply:                text,
		Intent:               res.Intent,
		NeedsHuman:           transition.NeedsHuman,
		FirstHandoff:         transition.FirstHandoff,
		ReservationCompleted: transition.ReservationCompleted,
		Draft:                transition.Draft,
	}
	if res.MatchedFaq != nil && (res.Intent == intent.SalesFaq || res.Intent == intent.Greeting) {
		result.MatchedFaqID = res.MatchedFaq.ID
	}
	if !transition.Patch.IsZero() {
		p := transition.Patch
		result.SessionPatch = &p
	}
	return result
}

// Catalog exposes the loaded catalogs for boundary listings.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

func (e *Engine) resolveProduct(pc *ProductContext) *catalog.Product {
	if pc == nil {
		return nil
	}
	if pc.Slug != "" {
		if p, ok := e.catalog.ProductBySlug(strings.TrimSpace(pc.Slug)); ok {
			return &p
		}
	}
	if pc.ID != "" {
		if p, ok := e.catalog.ProductByID(strings.TrimSpace(pc.ID)); ok {
			return &p
		}
	}
	// catalog miss degrades to nil: classification falls through to unknown
	return nil
}
