package wizard

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"dispatchly/models"
)

type fakeAvailabilityRepo struct {
	quantities map[string]int
	unitIDs    map[string][]string
	failFor    map[string]error

	gotStart, gotEnd string
}

func (f *fakeAvailabilityRepo) AvailableQuantity(_ context.Context, productID, start, end string) (int, error) {
	f.gotStart, f.gotEnd = start, end
	if err := f.failFor[productID]; err != nil {
		return 0, err
	}
	return f.quantities[productID], nil
}

func (f *fakeAvailabilityRepo) AvailableUnitIDs(_ context.Context, productID, start, end string) ([]string, error) {
	f.gotStart, f.gotEnd = start, end
	if err := f.failFor[productID]; err != nil {
		return nil, err
	}
	return f.unitIDs[productID], nil
}

type fakeAssignmentRepo struct {
	byDriver  map[string]*models.CrewAssignment
	byVehicle map[string]*models.CrewAssignment
	created   []models.CrewAssignment
	exists    bool
	err       error
}

func (f *fakeAssignmentRepo) Create(_ context.Context, a *models.CrewAssignment) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.created = append(f.created, *a)
	return "assign-1", nil
}

func (f *fakeAssignmentRepo) FindByDate(_ context.Context, _ string) ([]models.CrewAssignment, error) {
	return nil, f.err
}

func (f *fakeAssignmentRepo) FindByDateAndDriver(_ context.Context, _, driverID string) (*models.CrewAssignment, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byDriver[driverID], nil
}

func (f *fakeAssignmentRepo) FindByDateAndVehicle(_ context.Context, _, vehicleID string) (*models.CrewAssignment, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byVehicle[vehicleID], nil
}

func (f *fakeAssignmentRepo) ExistsForDate(_ context.Context, _, _, _ string) (bool, error) {
	return f.exists, f.err
}

func newChecker(avail *fakeAvailabilityRepo, assign *fakeAssignmentRepo) *DefaultAvailabilityChecker {
	if avail == nil {
		avail = &fakeAvailabilityRepo{}
	}
	if assign == nil {
		assign = &fakeAssignmentRepo{}
	}
	return &DefaultAvailabilityChecker{Availability: avail, Assignments: assign}
}

func TestCheckBulkShortfall(t *testing.T) {
	checker := newChecker(&fakeAvailabilityRepo{quantities: map[string]int{"p1": 3}}, nil)
	doc := models.JobDocument{
		ScheduledDate: "2025-03-02",
		Items: []models.InventoryLineRequest{
			{ProductID: "p1", Quantity: 5, Strategy: models.StrategyBulk},
		},
	}

	report := checker.Check(context.Background(), doc, checker.NextGeneration())

	if !report.HasConflicts {
		t.Fatal("expected a conflict")
	}
	if len(report.ItemConflicts) != 1 {
		t.Fatalf("ItemConflicts = %+v, want one entry", report.ItemConflicts)
	}
	c := report.ItemConflicts[0]
	if c.Requested != 5 || c.Available != 3 || c.Shortfall != 2 {
		t.Errorf("conflict = %+v, want requested 5 / available 3 / shortfall 2", c)
	}
}

func TestCheckBulkSufficientStock(t *testing.T) {
	checker := newChecker(&fakeAvailabilityRepo{quantities: map[string]int{"p1": 5}}, nil)
	doc := models.JobDocument{
		ScheduledDate: "2025-03-02",
		Items: []models.InventoryLineRequest{
			{ProductID: "p1", Quantity: 5, Strategy: models.StrategyBulk},
		},
	}

	report := checker.Check(context.Background(), doc, checker.NextGeneration())
	if report.HasConflicts {
		t.Errorf("unexpected conflicts: %+v", report.ItemConflicts)
	}
}

func TestCheckSpecificMissingUnits(t *testing.T) {
	checker := newChecker(&fakeAvailabilityRepo{
		unitIDs: map[string][]string{"p1": {"u1", "u3"}},
	}, nil)
	doc := models.JobDocument{
		ScheduledDate: "2025-03-02",
		Items: []models.InventoryLineRequest{
			{ProductID: "p1", Quantity: 3, Strategy: models.StrategySpecific, SpecificItemIDs: []string{"u1", "u2", "u4"}},
		},
	}

	report := checker.Check(context.Background(), doc, checker.NextGeneration())

	if !report.HasConflicts {
		t.Fatal("expected a conflict")
	}
	want := []string{"u2", "u4"}
	if !reflect.DeepEqual(report.ItemConflicts[0].MissingUnitIDs, want) {
		t.Errorf("MissingUnitIDs = %v, want %v", report.ItemConflicts[0].MissingUnitIDs, want)
	}
}

func TestCheckFailedQueryIsUnverifiedNotClean(t *testing.T) {
	checker := newChecker(&fakeAvailabilityRepo{
		quantities: map[string]int{"p2": 10},
		failFor:    map[string]error{"p1": errors.New("connection reset")},
	}, nil)
	doc := models.JobDocument{
		ScheduledDate: "2025-03-02",
		Items: []models.InventoryLineRequest{
			{ProductID: "p1", Quantity: 2, Strategy: models.StrategyBulk},
			{ProductID: "p2", Quantity: 4, Strategy: models.StrategyBulk},
		},
	}

	report := checker.Check(context.Background(), doc, checker.NextGeneration())

	// The failed check is surfaced as unverified, the healthy one still ran.
	if len(report.Unverified) != 1 || report.Unverified[0].Check != "item:p1" {
		t.Errorf("Unverified = %+v, want item:p1", report.Unverified)
	}
	if report.HasConflicts {
		t.Errorf("an unverified check alone must not flag conflicts: %+v", report)
	}
}

func TestCheckWindowCoversFullHold(t *testing.T) {
	tests := []struct {
		name       string
		returnDate string
		pickupPlan *models.PickupPlan
		wantEnd    string
	}{
		{"return date bounds the hold", "2025-03-06", nil, "2025-03-06"},
		{"pickup date bounds it when no return date", "", &models.PickupPlan{CreatePickupJob: true, PickupDate: "2025-03-09"}, "2025-03-09"},
		{"return date wins over pickup date", "2025-03-06", &models.PickupPlan{CreatePickupJob: true, PickupDate: "2025-03-09"}, "2025-03-06"},
		{"single day without either", "", nil, "2025-03-02"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			avail := &fakeAvailabilityRepo{quantities: map[string]int{"p1": 10}}
			checker := newChecker(avail, nil)
			doc := models.JobDocument{
				ScheduledDate: "2025-03-02",
				ReturnDate:    tt.returnDate,
				PickupPlan:    tt.pickupPlan,
				Items: []models.InventoryLineRequest{
					{ProductID: "p1", Quantity: 2, Strategy: models.StrategyBulk},
				},
			}

			checker.Check(context.Background(), doc, checker.NextGeneration())

			if avail.gotStart != "2025-03-02" || avail.gotEnd != tt.wantEnd {
				t.Errorf("queried window %s..%s, want 2025-03-02..%s", avail.gotStart, avail.gotEnd, tt.wantEnd)
			}
		})
	}
}

func TestCheckCrewConflicts(t *testing.T) {
	assign := &fakeAssignmentRepo{
		byDriver: map[string]*models.CrewAssignment{
			"d1": {ID: "a1", Date: "2025-03-02", DriverID: "d1", JobID: "job-9"},
		},
		byVehicle: map[string]*models.CrewAssignment{},
	}
	checker := newChecker(nil, assign)
	doc := models.JobDocument{
		ScheduledDate: "2025-03-02",
		Assignment:    models.Assignment{DriverID: "d1", VehicleID: "v1"},
	}

	report := checker.Check(context.Background(), doc, checker.NextGeneration())

	if report.DriverConflict == nil {
		t.Fatal("expected a driver conflict")
	}
	if report.DriverConflict.ExistingJobID != "job-9" {
		t.Errorf("ExistingJobID = %q, want job-9", report.DriverConflict.ExistingJobID)
	}
	if report.VehicleConflict != nil {
		t.Errorf("unexpected vehicle conflict: %+v", report.VehicleConflict)
	}
	if !report.HasConflicts {
		t.Error("HasConflicts should be true")
	}
}

func TestCheckCrewQueryFailureIsUnverified(t *testing.T) {
	assign := &fakeAssignmentRepo{err: errors.New("timeout")}
	checker := newChecker(nil, assign)
	doc := models.JobDocument{
		ScheduledDate: "2025-03-02",
		Assignment:    models.Assignment{DriverID: "d1"},
	}

	report := checker.Check(context.Background(), doc, checker.NextGeneration())

	if len(report.Unverified) != 1 || report.Unverified[0].Check != "driver" {
		t.Errorf("Unverified = %+v, want one driver entry", report.Unverified)
	}
	if report.HasConflicts {
		t.Error("unverified crew check must not flag a conflict")
	}
}

func TestCheckIsRepeatable(t *testing.T) {
	avail := &fakeAvailabilityRepo{quantities: map[string]int{"p1": 1}}
	checker := newChecker(avail, nil)
	doc := models.JobDocument{
		ScheduledDate: "2025-03-02",
		Items: []models.InventoryLineRequest{
			{ProductID: "p1", Quantity: 2, Strategy: models.StrategyBulk},
		},
	}

	first := checker.Check(context.Background(), doc, 1)
	second := checker.Check(context.Background(), doc, 1)

	first.CheckedAt = second.CheckedAt
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeat check differed:\n%+v\n%+v", first, second)
	}
}

func TestNextGenerationIncreases(t *testing.T) {
	checker := newChecker(nil, nil)
	a := checker.NextGeneration()
	b := checker.NextGeneration()
	if b <= a {
		t.Errorf("generations not increasing: %d then %d", a, b)
	}
}
