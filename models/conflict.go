package models

import "time"

// ItemConflict reports an inventory shortfall or missing specific units for
// one requested line.
type ItemConflict struct {
	ProductID string `json:"productId"`
	Requested int    `json:"requested"`
	Available int    `json:"available"`
	// Shortfall is the numeric gap for bulk lines (requested - available).
	Shortfall int `json:"shortfall,omitempty"`
	// MissingUnitIDs lists requested specific unit ids that are not available
	// in the window.
	MissingUnitIDs []string `json:"missingUnitIds,omitempty"`
}

// CrewConflict reports a driver or vehicle already assigned on the same
// calendar day. This is a same-day exclusivity rule, not a time-range overlap
// check.
type CrewConflict struct {
	Kind          string `json:"kind"` // "driver" or "vehicle"
	ID            string `json:"id"`
	Date          string `json:"date"`
	ExistingJobID string `json:"existingJobId,omitempty"`
}

// UnverifiedCheck marks a check whose backing query failed. It must be shown
// as a caution and never treated as "no conflict".
type UnverifiedCheck struct {
	Check  string `json:"check"` // e.g. "item:PRODUCT_ID", "driver", "vehicle"
	Reason string `json:"reason"`
}

// ConflictReport is the aggregate availability result for a wizard document.
// It is read-only and safe to recompute at any time.
type ConflictReport struct {
	Generation      uint64            `json:"generation"`
	CheckedAt       time.Time         `json:"checkedAt"`
	ItemConflicts   []ItemConflict    `json:"itemConflicts,omitempty"`
	DriverConflict  *CrewConflict     `json:"driverConflict,omitempty"`
	VehicleConflict *CrewConflict     `json:"vehicleConflict,omitempty"`
	Unverified      []UnverifiedCheck `json:"unverified,omitempty"`
	HasConflicts    bool              `json:"hasConflicts"`
}
