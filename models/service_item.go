package models

import "time"

// Pricing methods for catalog services.
const (
	PricingPerVisit = "per_visit"
	PricingPerHour  = "per_hour"
	PricingFlatRate = "flat_rate"
)

// Frequency values.
const (
	FrequencyOneTime = "one-time"
	FrequencyDaily   = "daily"
	FrequencyWeekly  = "weekly"
	FrequencyMonthly = "monthly"
	FrequencyCustom  = "custom"
)

// Custom frequency sub-types.
const (
	CustomDaysInterval  = "days_interval"
	CustomDaysOfWeek    = "days_of_week"
	CustomSpecificDates = "specific_dates"
)

// Price override methods.
const (
	OverridePerVisit   = "per_visit"
	OverrideFlatForJob = "flat_for_job"
)

// ServiceSelection is a catalog service plus job-specific overrides. It is
// created when a catalog service is toggled on, recalculated on every
// frequency or override mutation, and removed when toggled off.
type ServiceSelection struct {
	ServiceID     string  `bson:"serviceId" json:"serviceId"`
	Name          string  `bson:"name" json:"name"`
	PricingMethod string  `bson:"pricingMethod" json:"pricingMethod"`
	BaseRate      float64 `bson:"baseRate" json:"baseRate"`
	HoursPerVisit float64 `bson:"hoursPerVisit" json:"hoursPerVisit,omitempty"`

	Frequency     string         `bson:"frequency" json:"frequency"`
	CustomType    string         `bson:"customType" json:"customType,omitempty"`
	IntervalDays  int            `bson:"intervalDays" json:"intervalDays,omitempty"`
	DaysOfWeek    []time.Weekday `bson:"daysOfWeek" json:"daysOfWeek,omitempty"`
	SpecificDates []ServiceDate  `bson:"specificDates" json:"specificDates,omitempty"`

	// Visits pinned to the job's start/return date regardless of frequency.
	IncludeDropoffService bool `bson:"includeDropoffService" json:"includeDropoffService"`
	IncludePickupService  bool `bson:"includePickupService" json:"includePickupService"`

	PriceOverride *PriceOverride `bson:"priceOverride" json:"priceOverride,omitempty"`

	// Derived fields, never hand-edited.
	VisitCount     int      `bson:"visitCount" json:"visitCount"`
	CalculatedCost float64  `bson:"calculatedCost" json:"calculatedCost"`
	ServiceDates   []string `bson:"serviceDates" json:"serviceDates,omitempty"`
}

// ServiceDate is one explicitly chosen service date.
type ServiceDate struct {
	Date  string `bson:"date" json:"date"`
	Time  string `bson:"time" json:"time,omitempty"`
	Notes string `bson:"notes" json:"notes,omitempty"`
}

// PriceOverride replaces the computed per-visit or total cost when present.
type PriceOverride struct {
	Method string  `bson:"method" json:"method"`
	Amount float64 `bson:"amount" json:"amount"`
}
