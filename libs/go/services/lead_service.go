package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/handyline/handyline-api/libs/go/constants"
	"github.com/handyline/handyline-api/libs/go/interfaces"
	"github.com/handyline/handyline-api/libs/go/logger"
	"github.com/handyline/handyline-api/libs/go/types/business"
)

// DefaultLeadDispatchTimeout bounds a background lead dispatch.
const DefaultLeadDispatchTimeout = 15 * time.Second

// Lead dispatch channels.
const (
	LeadChannelQueue = "sqs"
	LeadChannelCRM   = "crm"
)

// LeadService delivers leads to the CRM. Dispatch never blocks the caller;
// failures are logged only.
type LeadService struct {
	crm       interfaces.LeadSender
	publisher interfaces.QueuePublisher
	timeout   time.Duration
	now       func() time.Time
	logger    *logger.StructuredLogger
	wg        sync.WaitGroup
}

// NewLeadService creates a lead service. With a non-nil publisher leads are
// queued for the lead processor instead of posted directly.
func NewLeadService(crm interfaces.LeadSender, publisher interfaces.QueuePublisher, timeout time.Duration) *LeadService {
	if timeout <= 0 {
		timeout = DefaultLeadDispatchTimeout
	}
	return &LeadService{
		crm:       crm,
		publisher: publisher,
		timeout:   timeout,
		now:       time.Now,
		logger:    logger.NewStructuredLogger(logger.ComponentLead),
	}
}

// Dispatch sends the lead in the background.
func (s *LeadService) Dispatch(ctx context.Context, lead business.Lead) {
	lead = s.withDefaults(lead)
	channel := LeadChannelCRM
	if s.publisher != nil {
		channel = LeadChannelQueue
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		dctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
		defer cancel()

		var err error
		if s.publisher != nil {
			_, err = s.publisher.Publish(dctx, lead, map[string]string{"lead_source": lead.Source})
		} else {
			err = s.send(dctx, lead)
		}
		s.logger.WithContext(ctx).LogLeadDispatch(lead.Source, channel, err)
	}()
}

// Forward posts the lead to the CRM and waits for the result.
func (s *LeadService) Forward(ctx context.Context, lead business.Lead) error {
	return s.send(ctx, s.withDefaults(lead))
}

// Wait blocks until background dispatches have finished.
func (s *LeadService) Wait() {
	s.wg.Wait()
}

func (s *LeadService) send(ctx context.Context, lead business.Lead) error {
	if s.crm == nil {
		return fmt.Errorf("no CRM client configured")
	}
	if err := s.crm.CreateLead(ctx, lead); err != nil {
		return fmt.Errorf("failed to create CRM lead: %w", err)
	}
	return nil
}

func (s *LeadService) withDefaults(lead business.Lead) business.Lead {
	if lead.Status == "" {
		lead.Status = constants.LeadStatusNew
	}
	if lead.Source == "" {
		lead.Source = constants.LeadSourceContact
	}
	if lead.CreatedAt.IsZero() {
		lead.CreatedAt = s.now().UTC()
	}
	return lead
}
