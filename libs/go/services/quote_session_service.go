package services

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/handyline/handyline-api/libs/go/interfaces"
	"github.com/handyline/handyline-api/libs/go/logger"
	"github.com/handyline/handyline-api/libs/go/quote"
	"github.com/handyline/handyline-api/libs/go/types/api/params"
	"github.com/handyline/handyline-api/libs/go/types/business"
	"golang.org/x/sync/errgroup"
)

// DefaultEnhanceConcurrency caps parallel generator calls of one EnhanceAll.
const DefaultEnhanceConcurrency = 4

// QuoteSessionService drives authoring sessions. Enhancements run on their own
// goroutines, detached from the request that started them, and land on the
// item that requested them.
type QuoteSessionService struct {
	sessions    *quote.SessionStore
	enhancer    interfaces.LineItemEnhancer
	invoices    interfaces.InvoiceService
	concurrency int
	logger      *logger.StructuredLogger

	baseCtx context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

func NewQuoteSessionService(sessions *quote.SessionStore, enhancer interfaces.LineItemEnhancer, invoices interfaces.InvoiceService, concurrency int) *QuoteSessionService {
	if concurrency <= 0 {
		concurrency = DefaultEnhanceConcurrency
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &QuoteSessionService{
		sessions:    sessions,
		enhancer:    enhancer,
		invoices:    invoices,
		concurrency: concurrency,
		logger:      logger.NewStructuredLogger(logger.ComponentEnhancement),
		baseCtx:     ctx,
		cancel:      cancel,
	}
}

func (s *QuoteSessionService) CreateSession() (quote.Snapshot, error) {
	sess, err := s.sessions.Create()
	if err != nil {
		s.logger.WithField("live_sessions", s.sessions.Len()).Warn("Quote session limit reached")
		return quote.Snapshot{}, err
	}
	s.logger.WithSessionID(sess.ID).Debug("Quote session created")
	return sess.Snapshot(), nil
}

func (s *QuoteSessionService) GetSession(sessionID string) (quote.Snapshot, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return quote.Snapshot{}, err
	}
	return sess.Snapshot(), nil
}

func (s *QuoteSessionService) AddItem(sessionID string, section business.SectionKind, rawInput string) (quote.LineItem, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return quote.LineItem{}, err
	}
	return sess.AddItem(section, rawInput)
}

func (s *QuoteSessionService) UpdateItem(sessionID string, section business.SectionKind, itemID, rawInput string) (quote.LineItem, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return quote.LineItem{}, err
	}
	return sess.UpdateRawInput(section, itemID, rawInput)
}

// RemoveItem reports false when the item is the last one of its section.
func (s *QuoteSessionService) RemoveItem(sessionID string, section business.SectionKind, itemID string) (bool, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return false, err
	}
	return sess.RemoveItem(section, itemID)
}

func (s *QuoteSessionService) SetExpanded(sessionID string, section business.SectionKind, expanded bool) error {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return err
	}
	return sess.SetExpanded(section, expanded)
}

// EnhanceItem marks the item pending and starts the generator call in the
// background. The returned item is the pending state.
func (s *QuoteSessionService) EnhanceItem(p params.EnhanceItemParams) (quote.LineItem, error) {
	sess, err := s.sessions.Get(p.SessionID)
	if err != nil {
		return quote.LineItem{}, err
	}
	ticket, err := sess.BeginEnhancement(p.Section, p.ItemID, p.AttachmentURLs)
	if err != nil {
		return quote.LineItem{}, err
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.runEnhancement(sess, ticket)
	}()

	return sess.Item(p.Section, p.ItemID)
}

// EnhanceAll starts an enhancement for every idle item that has a
// description and returns how many were started.
func (s *QuoteSessionService) EnhanceAll(ctx context.Context, sessionID string) (int, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return 0, err
	}

	var tickets []quote.EnhancementTicket
	for _, sec := range sess.Snapshot().Sections {
		for _, item := range sec.Items {
			if item.Pending || strings.TrimSpace(item.RawInput) == "" {
				continue
			}
			ticket, err := sess.BeginEnhancement(sec.Kind, item.ID, nil)
			if err != nil {
				if errors.Is(err, quote.ErrEnhancementInFlight) || errors.Is(err, quote.ErrEmptyRawInput) || errors.Is(err, quote.ErrItemNotFound) {
					continue
				}
				return len(tickets), err
			}
			tickets = append(tickets, ticket)
		}
	}
	if len(tickets) == 0 {
		return 0, nil
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		var g errgroup.Group
		g.SetLimit(s.concurrency)
		for _, ticket := range tickets {
			g.Go(func() error {
				s.runEnhancement(sess, ticket)
				return nil
			})
		}
		_ = g.Wait()
	}()

	s.logger.WithSessionID(sessionID).WithField("items", len(tickets)).Info("Enhancing all line items")
	return len(tickets), nil
}

func (s *QuoteSessionService) runEnhancement(sess *quote.Session, ticket quote.EnhancementTicket) {
	log := s.logger.WithSessionID(ticket.SessionID)

	result, err := s.enhancer.Enhance(s.baseCtx, params.EnhanceParams{
		Section:        ticket.Section,
		RawInput:       ticket.RawInput,
		AttachmentURLs: ticket.AttachmentURLs,
	})

	var applied bool
	if err != nil {
		applied = sess.FailEnhancement(ticket, EnhancementErrorMessage(err))
	} else {
		applied = sess.CompleteEnhancement(ticket, quote.Extraction{
			Content: result.Content,
			Total:   result.Total,
			Status:  result.TotalStatus,
		})
	}
	if !applied {
		log.WithField("item_id", ticket.ItemID).Debug("Enhancement result dropped, item no longer exists")
	}
}

// SubmitSession persists the session's current content as an invoice. It is
// refused while any item is still being enhanced.
func (s *QuoteSessionService) SubmitSession(ctx context.Context, sessionID string, customer business.CustomerInfo) (string, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return "", err
	}
	snap := sess.Snapshot()
	for _, sec := range snap.Sections {
		for _, item := range sec.Items {
			if item.Pending {
				return "", quote.ErrEnhancementInFlight
			}
		}
	}

	id, err := s.invoices.SubmitInvoice(ctx, params.SubmitInvoiceParams{
		Customer: customer,
		Sections: snap.InvoiceSections(),
	})
	if err != nil {
		return "", err
	}
	s.sessions.Delete(sessionID)
	s.logger.WithSessionID(sessionID).WithInvoiceID(id).Info("Quote session submitted")
	return id, nil
}

// Wait blocks until every background enhancement has resolved.
func (s *QuoteSessionService) Wait() {
	s.wg.Wait()
}

// Shutdown cancels in-flight enhancements once ctx expires.
func (s *QuoteSessionService) Shutdown(ctx context.Context) {
	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		s.cancel()
		<-done
	}
	s.cancel()
}
