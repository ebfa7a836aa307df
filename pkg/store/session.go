package store

// Mode is the conversation's current high-level phase.
const (
	ModeInfo                  = "INFO"
	ModeReservationCollecting = "RESERVATION_COLLECTING"
	ModeHumanHandoff          = "HUMAN_HANDOFF"
)

// Service slugs Helin can collect reservations for.
const (
	ServiceProposal  = "evlilik-teklifi"
	ServiceBirthday  = "dogum-gunu"
	ServiceYachtTour = "yat-turu"
)

// KnownServices returns the service slugs in presentation order.
func KnownServices() []string {
	return []string{ServiceProposal, ServiceBirthday, ServiceYachtTour}
}

// ReservationDraft holds the slots collected during RESERVATION_COLLECTING.
// Slots are filled incrementally and never regress to empty.
type ReservationDraft struct {
	Date   string `json:"date,omitempty"`
	Time   string `json:"time,omitempty"`
	People int    `json:"people,omitempty"`
	Phone  string `json:"phone,omitempty"`
}

// Merge fills empty slots of d from other. Filled slots are only replaced
// when other carries a non-empty value for them.
func (d ReservationDraft) Merge(other ReservationDraft) ReservationDraft {
	if other.Date != "" {
		d.Date = other.Date
	}
	if other.Time != "" {
		d.Time = other.Time
	}
	if other.People > 0 {
		d.People = other.People
	}
	if other.Phone != "" {
		d.Phone = other.Phone
	}
	return d
}

// Complete reports whether all four slots are filled.
func (d ReservationDraft) Complete() bool {
	return d.Date != "" && d.Time != "" && d.People > 0 && d.Phone != ""
}

// MissingSlots returns the unfilled slot names in collection order.
func (d ReservationDraft) MissingSlots() []string {
	var missing []string
	if d.Date == "" {
		missing = append(missing, "date")
	}
	if d.Time == "" {
		missing = append(missing, "time")
	}
	if d.People <= 0 {
		missing = append(missing, "people")
	}
	if d.Phone == "" {
		missing = append(missing, "phone")
	}
	return missing
}

// SessionContext is the persisted per-conversation state Helin accumulates
// across turns. The engine never mutates it; updates flow through SessionPatch.
type SessionContext struct {
	Mode             string            `json:"mode"`
	UserName         string            `json:"user_name,omitempty"`
	SelectedService  string            `json:"selected_service,omitempty"`
	ReservationDraft *ReservationDraft `json:"reservation_draft,omitempty"`
	GreetingCount    int               `json:"greeting_count,omitempty"`
	HandoffCount     int               `json:"handoff_count,omitempty"`
}

// NewSessionContext returns the implicit context of a session's first message.
func NewSessionContext() SessionContext {
	return SessionContext{Mode: ModeInfo}
}

// Draft returns the reservation draft, zero-valued when none was started.
func (s SessionContext) Draft() ReservationDraft {
	if s.ReservationDraft == nil {
		return ReservationDraft{}
	}
	return *s.ReservationDraft
}

// SessionPatch is a partial-merge instruction returned by the engine.
// Nil fields are left untouched by Apply.
type SessionPatch struct {
	Mode             *string           `json:"mode,omitempty"`
	UserName         *string           `json:"user_name,omitempty"`
	SelectedService  *string           `json:"selected_service,omitempty"`
	ReservationDraft *ReservationDraft `json:"reservation_draft,omitempty"`
	GreetingCount    *int              `json:"greeting_count,omitempty"`
	HandoffCount     *int              `json:"handoff_count,omitempty"`
}

// IsZero reports whether the patch carries no changes.
func (p SessionPatch) IsZero() bool {
	return p.Mode == nil && p.UserName == nil && p.SelectedService == nil &&
		p.ReservationDraft == nil && p.GreetingCount == nil && p.HandoffCount == nil
}

// SetMode records a mode change in the patch.
func (p *SessionPatch) SetMode(mode string) {
	p.Mode = &mode
}

// SetUserName records a userName change in the patch.
func (p *SessionPatch) SetUserName(name string) {
	p.UserName = &name
}

// SetSelectedService records a selectedService change in the patch.
func (p *SessionPatch) SetSelectedService(service string) {
	p.SelectedService = &service
}

// SetGreetingCount records a greetingCount change in the patch.
func (p *SessionPatch) SetGreetingCount(n int) {
	p.GreetingCount = &n
}

// SetHandoffCount records a handoffCount change in the patch.
func (p *SessionPatch) SetHandoffCount(n int) {
	p.HandoffCount = &n
}

// Apply merges the patch into a copy of s and returns it. Reservation slots
// are merged, never cleared: a patch cannot erase a previously collected slot.
func (p SessionPatch) Apply(s SessionContext) SessionContext {
	if p.Mode != nil {
		s.Mode = *p.Mode
	}
	if p.UserName != nil && *p.UserName != "" {
		s.UserName = *p.UserName
	}
	if p.SelectedService != nil && *p.SelectedService != "" {
		s.SelectedService = *p.SelectedService
	}
	if p.ReservationDraft != nil {
		merged := s.Draft().Merge(*p.ReservationDraft)
		s.ReservationDraft = &merged
	}
	if p.GreetingCount != nil {
		s.GreetingCount = *p.GreetingCount
	}
	if p.HandoffCount != nil {
		s.HandoffCount = *p.HandoffCount
	}
	return s
}
