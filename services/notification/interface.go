package notification

import (
	"context"
	"fmt"
	"strings"

	catalogRepo "dispatchly/database/repository/catalog"
	quoteRepo "dispatchly/database/repository/quote"
	"dispatchly/models"
	"dispatchly/services/tasks"
	"dispatchly/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// QuoteDeliveryService sends committed quotes to customers. RequestDelivery
// marks the quote pending and enqueues the send; DeliverQuote is the worker
// side that renders and sends the message, then marks the quote sent.
type QuoteDeliveryService interface {
	RequestDelivery(ctx context.Context, quoteID, method string) error
	DeliverQuote(ctx context.Context, quoteID, method string) error
}

// EmailSender and SMSSender are the outbound transports. The defaults only
// log; wiring a real provider means swapping these implementations.
type EmailSender interface {
	SendEmail(ctx context.Context, to, subject, body string) error
}

type SMSSender interface {
	SendSMS(ctx context.Context, to, body string) error
}

// DefaultQuoteDeliveryService is the production implementation.
type DefaultQuoteDeliveryService struct {
	Quotes      quoteRepo.QuoteRepository
	Catalog     catalogRepo.CatalogRepository
	AsynqClient *asynq.Client
	Email       EmailSender
	SMS         SMSSender
}

func NewDefaultQuoteDeliveryService(
	quotes quoteRepo.QuoteRepository,
	catalog catalogRepo.CatalogRepository,
	asynqClient *asynq.Client,
) (*DefaultQuoteDeliveryService, error) {
	if quotes == nil || catalog == nil || asynqClient == nil {
		return nil, fmt.Errorf("quote delivery service initialization error: one or more dependencies are nil")
	}
	return &DefaultQuoteDeliveryService{
		Quotes:      quotes,
		Catalog:     catalog,
		AsynqClient: asynqClient,
		Email:       LogEmailSender{},
		SMS:         LogSMSSender{},
	}, nil
}

// RequestDelivery transitions the quote to pending and enqueues the delivery
// task. The method must be email, sms or both.
func (s *DefaultQuoteDeliveryService) RequestDelivery(ctx context.Context, quoteID, method string) error {
	switch method {
	case models.DeliveryEmail, models.DeliverySMS, models.DeliveryBoth:
	default:
		return fmt.Errorf("unknown delivery method %q", method)
	}

	quote, err := s.Quotes.GetByID(ctx, quoteID)
	if err != nil {
		return fmt.Errorf("quote not found: %w", err)
	}
	if quote.Status == models.QuoteStatusSent {
		return fmt.Errorf("quote %s has already been sent", quoteID)
	}

	if err := s.Quotes.SetStatus(ctx, quoteID, models.QuoteStatusPending, method); err != nil {
		return fmt.Errorf("failed to mark quote pending: %w", err)
	}

	task, opts, err := tasks.NewQuoteDeliveryTask(models.QuoteDeliveryPayload{
		QuoteID: quoteID,
		Method:  method,
	})
	if err != nil {
		return fmt.Errorf("failed to build delivery task: %w", err)
	}
	if _, err := s.AsynqClient.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue quote delivery: %w", err)
	}

	utils.GetLogger().Info("quote delivery enqueued",
		zap.String("quoteId", quoteID), zap.String("method", method))
	return nil
}

// DeliverQuote resolves the recipient, sends over the requested channels and
// marks the quote sent. A returned error makes asynq retry the task.
func (s *DefaultQuoteDeliveryService) DeliverQuote(ctx context.Context, quoteID, method string) error {
	quote, err := s.Quotes.GetByID(ctx, quoteID)
	if err != nil {
		return fmt.Errorf("DeliverQuote: quote %s not found: %w", quoteID, err)
	}

	email, phone, err := s.resolveRecipient(ctx, quote)
	if err != nil {
		return fmt.Errorf("DeliverQuote: %w", err)
	}

	body := renderQuoteBody(quote)
	if method == models.DeliveryEmail || method == models.DeliveryBoth {
		if email == "" {
			return fmt.Errorf("DeliverQuote: customer %s has no email address", quote.CustomerID)
		}
		subject := fmt.Sprintf("Your quote for %s", quote.ScheduledDate)
		if err := s.Email.SendEmail(ctx, email, subject, body); err != nil {
			return fmt.Errorf("DeliverQuote: email send failed: %w", err)
		}
	}
	if method == models.DeliverySMS || method == models.DeliveryBoth {
		if phone == "" {
			return fmt.Errorf("DeliverQuote: customer %s has no phone number", quote.CustomerID)
		}
		if err := s.SMS.SendSMS(ctx, phone, body); err != nil {
			return fmt.Errorf("DeliverQuote: sms send failed: %w", err)
		}
	}

	if err := s.Quotes.SetStatus(ctx, quoteID, models.QuoteStatusSent, method); err != nil {
		return fmt.Errorf("DeliverQuote: failed to mark quote sent: %w", err)
	}
	return nil
}

// resolveRecipient prefers the quote's contact, falling back to the customer
// record.
func (s *DefaultQuoteDeliveryService) resolveRecipient(ctx context.Context, quote *models.Quote) (email, phone string, err error) {
	if quote.ContactID != "" {
		contacts, cerr := s.Catalog.GetContacts(ctx, quote.CustomerID)
		if cerr != nil {
			return "", "", fmt.Errorf("could not load contacts for customer %s: %w", quote.CustomerID, cerr)
		}
		for _, c := range contacts {
			if c.ID == quote.ContactID {
				return c.Email, c.Phone, nil
			}
		}
	}

	customer, cerr := s.Catalog.GetCustomerByID(ctx, quote.CustomerID)
	if cerr != nil {
		return "", "", fmt.Errorf("could not resolve customer %s: %w", quote.CustomerID, cerr)
	}
	return customer.Email, customer.Phone, nil
}

func renderQuoteBody(quote *models.Quote) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Quote %s\n", quote.ID)
	fmt.Fprintf(&b, "Scheduled: %s", quote.ScheduledDate)
	if quote.ReturnDate != "" {
		fmt.Fprintf(&b, " through %s", quote.ReturnDate)
	}
	b.WriteString("\n\n")
	for _, line := range quote.Lines {
		if line.VisitCount > 0 {
			fmt.Fprintf(&b, "%s (%d visit%s): $%.2f\n", line.Name, line.VisitCount, plural(line.VisitCount), line.Amount)
		} else {
			fmt.Fprintf(&b, "%s: $%.2f\n", line.Name, line.Amount)
		}
	}
	fmt.Fprintf(&b, "\nTotal: $%.2f\n", quote.Total)
	return b.String()
}

// plural returns "s" if n is not 1, otherwise returns an empty string.
func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
