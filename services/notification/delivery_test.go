package notification

import (
	"context"
	"errors"
	"strings"
	"testing"

	"dispatchly/models"
)

// fakeCatalog mirrors the real repository's semantics: SearchCustomers matches
// against customer names, GetCustomerByID against ids.
type fakeCatalog struct {
	customers []models.Customer
	contacts  map[string][]models.Contact
}

func (f *fakeCatalog) SearchCustomers(_ context.Context, query string, limit int64) ([]models.Customer, error) {
	var out []models.Customer
	for _, c := range f.customers {
		if query == "" || strings.Contains(strings.ToLower(c.Name), strings.ToLower(query)) {
			out = append(out, c)
		}
		if limit > 0 && int64(len(out)) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeCatalog) GetCustomerByID(_ context.Context, id string) (*models.Customer, error) {
	for _, c := range f.customers {
		if c.ID == id {
			customer := c
			return &customer, nil
		}
	}
	return nil, errors.New("customer not found")
}

func (f *fakeCatalog) GetContacts(_ context.Context, customerID string) ([]models.Contact, error) {
	return f.contacts[customerID], nil
}

func (f *fakeCatalog) GetServiceLocations(_ context.Context, _ string) ([]models.ServiceLocation, error) {
	return nil, nil
}

func (f *fakeCatalog) GetProducts(_ context.Context) ([]models.Product, error) { return nil, nil }

func (f *fakeCatalog) GetProductByID(_ context.Context, _ string) (*models.Product, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeCatalog) GetUnits(_ context.Context, _ string) ([]models.InventoryUnit, error) {
	return nil, nil
}

func (f *fakeCatalog) GetServices(_ context.Context) ([]models.CatalogService, error) {
	return nil, nil
}

func (f *fakeCatalog) GetDrivers(_ context.Context) ([]models.Driver, error)   { return nil, nil }
func (f *fakeCatalog) GetVehicles(_ context.Context) ([]models.Vehicle, error) { return nil, nil }

func (f *fakeCatalog) GetSettings(_ context.Context) (*models.CompanySettings, error) {
	return nil, errors.New("not implemented")
}

type fakeQuoteStore struct {
	quote    *models.Quote
	statuses []string
}

func (f *fakeQuoteStore) CreateQuote(_ context.Context, _ *models.Quote) (string, error) {
	return "", errors.New("not implemented")
}

func (f *fakeQuoteStore) GetByID(_ context.Context, id string) (*models.Quote, error) {
	if f.quote == nil || f.quote.ID != id {
		return nil, errors.New("quote not found")
	}
	quote := *f.quote
	return &quote, nil
}

func (f *fakeQuoteStore) SetStatus(_ context.Context, _, status, _ string) error {
	f.statuses = append(f.statuses, status)
	return nil
}

type recordingEmailSender struct {
	to, subject, body string
	sent              int
}

func (r *recordingEmailSender) SendEmail(_ context.Context, to, subject, body string) error {
	r.to, r.subject, r.body = to, subject, body
	r.sent++
	return nil
}

type recordingSMSSender struct {
	to, body string
	sent     int
}

func (r *recordingSMSSender) SendSMS(_ context.Context, to, body string) error {
	r.to, r.body = to, body
	r.sent++
	return nil
}

func deliveryService(catalog *fakeCatalog, quotes *fakeQuoteStore) (*DefaultQuoteDeliveryService, *recordingEmailSender, *recordingSMSSender) {
	email := &recordingEmailSender{}
	sms := &recordingSMSSender{}
	return &DefaultQuoteDeliveryService{
		Quotes:  quotes,
		Catalog: catalog,
		Email:   email,
		SMS:     sms,
	}, email, sms
}

func TestDeliverQuoteResolvesCustomerByID(t *testing.T) {
	catalog := &fakeCatalog{
		customers: []models.Customer{
			{ID: "cust-42", Name: "Acme Rentals", Email: "billing@acme.test", Phone: "555-0100"},
		},
	}
	quotes := &fakeQuoteStore{quote: &models.Quote{
		ID:            "q1",
		CustomerID:    "cust-42",
		ScheduledDate: "2025-03-02",
		Total:         100,
	}}
	svc, email, _ := deliveryService(catalog, quotes)

	if err := svc.DeliverQuote(context.Background(), "q1", models.DeliveryEmail); err != nil {
		t.Fatalf("DeliverQuote: %v", err)
	}
	if email.sent != 1 || email.to != "billing@acme.test" {
		t.Errorf("email sent %d times to %q, want once to billing@acme.test", email.sent, email.to)
	}
	if len(quotes.statuses) != 1 || quotes.statuses[0] != models.QuoteStatusSent {
		t.Errorf("statuses = %v, want [sent]", quotes.statuses)
	}
}

func TestDeliverQuotePrefersQuoteContact(t *testing.T) {
	catalog := &fakeCatalog{
		customers: []models.Customer{
			{ID: "cust-42", Name: "Acme Rentals", Email: "billing@acme.test", Phone: "555-0100"},
		},
		contacts: map[string][]models.Contact{
			"cust-42": {
				{ID: "ct-1", CustomerID: "cust-42", Name: "Pat", Email: "pat@acme.test", Phone: "555-0111"},
			},
		},
	}
	quotes := &fakeQuoteStore{quote: &models.Quote{
		ID:            "q1",
		CustomerID:    "cust-42",
		ContactID:     "ct-1",
		ScheduledDate: "2025-03-02",
	}}
	svc, email, sms := deliveryService(catalog, quotes)

	if err := svc.DeliverQuote(context.Background(), "q1", models.DeliveryBoth); err != nil {
		t.Fatalf("DeliverQuote: %v", err)
	}
	if email.to != "pat@acme.test" {
		t.Errorf("email to %q, want the contact's address", email.to)
	}
	if sms.to != "555-0111" {
		t.Errorf("sms to %q, want the contact's phone", sms.to)
	}
}

func TestDeliverQuoteUnknownCustomerFails(t *testing.T) {
	quotes := &fakeQuoteStore{quote: &models.Quote{
		ID:            "q1",
		CustomerID:    "cust-missing",
		ScheduledDate: "2025-03-02",
	}}
	svc, email, _ := deliveryService(&fakeCatalog{}, quotes)

	err := svc.DeliverQuote(context.Background(), "q1", models.DeliveryEmail)
	if err == nil {
		t.Fatal("expected an error for an unknown customer")
	}
	if email.sent != 0 {
		t.Errorf("nothing should be sent, email sent %d times", email.sent)
	}
	if len(quotes.statuses) != 0 {
		t.Errorf("quote status must not change on failure, got %v", quotes.statuses)
	}
}

func TestDeliverQuoteMissingEmailFails(t *testing.T) {
	catalog := &fakeCatalog{
		customers: []models.Customer{
			{ID: "cust-42", Name: "Acme Rentals", Phone: "555-0100"},
		},
	}
	quotes := &fakeQuoteStore{quote: &models.Quote{
		ID:            "q1",
		CustomerID:    "cust-42",
		ScheduledDate: "2025-03-02",
	}}
	svc, email, _ := deliveryService(catalog, quotes)

	if err := svc.DeliverQuote(context.Background(), "q1", models.DeliveryEmail); err == nil {
		t.Fatal("expected an error when the customer has no email address")
	}
	if email.sent != 0 {
		t.Errorf("email sent %d times, want none", email.sent)
	}
}
