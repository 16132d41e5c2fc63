package models

// Catalog / reference-data models. These are read-only from the wizard's
// point of view; the step UI queries them to populate pickers.

type Customer struct {
	ID    string `bson:"id" json:"id"`
	Name  string `bson:"name" json:"name"`
	Email string `bson:"email" json:"email,omitempty"`
	Phone string `bson:"phone" json:"phone,omitempty"`
}

type Contact struct {
	ID         string `bson:"id" json:"id"`
	CustomerID string `bson:"customerId" json:"customerId"`
	Name       string `bson:"name" json:"name"`
	Email      string `bson:"email" json:"email,omitempty"`
	Phone      string `bson:"phone" json:"phone,omitempty"`
}

type ServiceLocation struct {
	ID         string  `bson:"id" json:"id"`
	CustomerID string  `bson:"customerId" json:"customerId"`
	Label      string  `bson:"label" json:"label,omitempty"`
	Address    Address `bson:"address" json:"address"`
}

// Product is a rentable product. Trackable products are reserved by
// individual unit id; the rest by quantity from per-location stock.
type Product struct {
	ID        string         `bson:"id" json:"id"`
	Name      string         `bson:"name" json:"name"`
	Trackable bool           `bson:"trackable" json:"trackable"`
	Stock     map[string]int `bson:"stock" json:"stock,omitempty"` // locationID -> on-hand quantity
	DailyRate float64        `bson:"dailyRate" json:"dailyRate,omitempty"`
}

// InventoryUnit is one individually tracked unit of a product.
type InventoryUnit struct {
	ID        string `bson:"id" json:"id"`
	ProductID string `bson:"productId" json:"productId"`
	Serial    string `bson:"serial" json:"serial,omitempty"`
	Status    string `bson:"status" json:"status,omitempty"`
}

// CatalogService is a recurring service offered alongside rentals.
type CatalogService struct {
	ID            string  `bson:"id" json:"id"`
	Name          string  `bson:"name" json:"name"`
	PricingMethod string  `bson:"pricingMethod" json:"pricingMethod"`
	BaseRate      float64 `bson:"baseRate" json:"baseRate"`
	HoursPerVisit float64 `bson:"hoursPerVisit" json:"hoursPerVisit,omitempty"`
}

type Driver struct {
	ID    string `bson:"id" json:"id"`
	Name  string `bson:"name" json:"name"`
	Phone string `bson:"phone" json:"phone,omitempty"`
}

type Vehicle struct {
	ID    string `bson:"id" json:"id"`
	Name  string `bson:"name" json:"name"`
	Plate string `bson:"plate" json:"plate,omitempty"`
}

// CompanySettings carries tenant-level defaults the wizard reads.
type CompanySettings struct {
	ID       string `bson:"id" json:"id"`
	Timezone string `bson:"timezone" json:"timezone"`
	Currency string `bson:"currency" json:"currency"`
}
