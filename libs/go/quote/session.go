package quote

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/handyline/handyline-api/libs/go/types/business"
	"github.com/shopspring/decimal"
)

// LineItem is a single row being authored in a section.
type LineItem struct {
	ID               string           `json:"id"`
	RawInput         string           `json:"raw_input"`
	GeneratedContent string           `json:"generated_content"`
	Total            decimal.Decimal  `json:"total"`
	TotalStatus      ExtractionStatus `json:"total_status,omitempty"`
	Pending          bool             `json:"pending"`
	LastError        string           `json:"last_error,omitempty"`

	attempt uint64
}

// Section is one of the fixed groupings of an authoring session.
type Section struct {
	Kind     business.SectionKind `json:"kind"`
	Expanded bool                 `json:"expanded"`
	Items    []LineItem           `json:"items"`
}

// Snapshot is a point-in-time copy of a session.
type Snapshot struct {
	ID        string    `json:"id"`
	Sections  []Section `json:"sections"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EnhancementTicket identifies an in-flight enhancement. Results are only
// applied while the ticket still matches the item's current attempt.
type EnhancementTicket struct {
	SessionID      string
	Section        business.SectionKind
	ItemID         string
	RawInput       string
	AttachmentURLs []string
	attempt        uint64
}

// Session is the private authoring state of one quote. Every section always
// keeps at least one item. Methods are safe for concurrent use; enhancements
// complete on their own goroutines.
type Session struct {
	ID string

	mu         sync.Mutex
	sections   []*Section
	createdAt  time.Time
	updatedAt  time.Time
	lastAccess time.Time
	now        func() time.Time
	maxItems   int
}

// NewSession returns a session with one empty item in every section.
func NewSession() *Session {
	return newSession(time.Now)
}

func newSession(now func() time.Time) *Session {
	t := now().UTC()
	s := &Session{
		ID:         uuid.NewString(),
		createdAt:  t,
		updatedAt:  t,
		lastAccess: t,
		now:        now,
	}
	for _, kind := range business.SectionKinds {
		s.sections = append(s.sections, &Section{
			Kind:     kind,
			Expanded: kind == business.SectionLabor,
			Items:    []LineItem{newLineItem("")},
		})
	}
	return s
}

func newLineItem(raw string) LineItem {
	return LineItem{ID: uuid.NewString(), RawInput: raw, Total: decimal.Zero}
}

func (s *Session) section(kind business.SectionKind) (*Section, error) {
	for _, sec := range s.sections {
		if sec.Kind == kind {
			return sec, nil
		}
	}
	return nil, ErrUnknownSection
}

func (s *Session) item(kind business.SectionKind, id string) (*LineItem, error) {
	sec, err := s.section(kind)
	if err != nil {
		return nil, err
	}
	for i := range sec.Items {
		if sec.Items[i].ID == id {
			return &sec.Items[i], nil
		}
	}
	return nil, ErrItemNotFound
}

func (s *Session) touch() {
	s.updatedAt = s.now().UTC()
	s.lastAccess = s.updatedAt
}

// AddItem appends an item to the section and returns a copy of it.
func (s *Session) AddItem(kind business.SectionKind, rawInput string) (LineItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sec, err := s.section(kind)
	if err != nil {
		return LineItem{}, err
	}
	if s.maxItems > 0 && len(sec.Items) >= s.maxItems {
		return LineItem{}, ErrSectionFull
	}
	item := newLineItem(rawInput)
	sec.Items = append(sec.Items, item)
	s.touch()
	return item, nil
}

// UpdateRawInput replaces the free-text description of an item.
func (s *Session) UpdateRawInput(kind business.SectionKind, id, rawInput string) (LineItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, err := s.item(kind, id)
	if err != nil {
		return LineItem{}, err
	}
	item.RawInput = rawInput
	s.touch()
	return *item, nil
}

// RemoveItem deletes an item. Removing the last item of a section is a no-op
// and reports false.
func (s *Session) RemoveItem(kind business.SectionKind, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sec, err := s.section(kind)
	if err != nil {
		return false, err
	}
	idx := -1
	for i := range sec.Items {
		if sec.Items[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false, ErrItemNotFound
	}
	if len(sec.Items) == 1 {
		return false, nil
	}
	sec.Items = append(sec.Items[:idx], sec.Items[idx+1:]...)
	s.touch()
	return true, nil
}

// SetExpanded toggles the presentation state of a section.
func (s *Session) SetExpanded(kind business.SectionKind, expanded bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sec, err := s.section(kind)
	if err != nil {
		return err
	}
	sec.Expanded = expanded
	s.touch()
	return nil
}

// BeginEnhancement marks an item pending. A second request on the same item
// is refused until the first one resolves.
func (s *Session) BeginEnhancement(kind business.SectionKind, id string, attachmentURLs []string) (EnhancementTicket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, err := s.item(kind, id)
	if err != nil {
		return EnhancementTicket{}, err
	}
	if item.Pending {
		return EnhancementTicket{}, ErrEnhancementInFlight
	}
	if strings.TrimSpace(item.RawInput) == "" {
		return EnhancementTicket{}, ErrEmptyRawInput
	}

	item.attempt++
	item.Pending = true
	item.LastError = ""
	s.touch()

	return EnhancementTicket{
		SessionID:      s.ID,
		Section:        kind,
		ItemID:         id,
		RawInput:       item.RawInput,
		AttachmentURLs: append([]string(nil), attachmentURLs...),
		attempt:        item.attempt,
	}, nil
}

// resolve returns the item a ticket refers to, or nil when the item is gone
// or the ticket is stale.
func (s *Session) resolve(t EnhancementTicket) *LineItem {
	item, err := s.item(t.Section, t.ItemID)
	if err != nil || !item.Pending || item.attempt != t.attempt {
		return nil
	}
	return item
}

// CompleteEnhancement applies a generated result. It reports false when the
// item was removed while the request was in flight; the result is dropped.
func (s *Session) CompleteEnhancement(t EnhancementTicket, result Extraction) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := s.resolve(t)
	if item == nil {
		return false
	}
	item.GeneratedContent = result.Content
	item.Total = result.Total
	item.TotalStatus = result.Status
	item.Pending = false
	item.LastError = ""
	s.touch()
	return true
}

// FailEnhancement records a failed request. Content and total are kept.
func (s *Session) FailEnhancement(t EnhancementTicket, message string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := s.resolve(t)
	if item == nil {
		return false
	}
	item.Pending = false
	item.LastError = message
	s.touch()
	return true
}

// Snapshot returns a deep copy of the session.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		ID:        s.ID,
		CreatedAt: s.createdAt,
		UpdatedAt: s.updatedAt,
		Sections:  make([]Section, len(s.sections)),
	}
	for i, sec := range s.sections {
		snap.Sections[i] = Section{
			Kind:     sec.Kind,
			Expanded: sec.Expanded,
			Items:    append([]LineItem(nil), sec.Items...),
		}
	}
	return snap
}

// Item returns a copy of a single item.
func (s *Session) Item(kind business.SectionKind, id string) (LineItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, err := s.item(kind, id)
	if err != nil {
		return LineItem{}, err
	}
	return *item, nil
}

// InvoiceSections converts the session into persisted section shape. Items are
// copied as-is; filtering happens at submission.
func (snap Snapshot) InvoiceSections() []business.InvoiceSection {
	out := make([]business.InvoiceSection, 0, len(snap.Sections))
	for _, sec := range snap.Sections {
		is := business.InvoiceSection{Type: sec.Kind}
		for _, item := range sec.Items {
			is.Items = append(is.Items, business.InvoiceLineItem{
				Content: item.GeneratedContent,
				Total:   item.Total,
			})
		}
		out = append(out, is)
	}
	return out
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastAccess
}

func (s *Session) markAccessed() {
	s.mu.Lock()
	s.lastAccess = s.now().UTC()
	s.mu.Unlock()
}
