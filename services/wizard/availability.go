package wizard

import (
	"context"
	"sync/atomic"
	"time"

	assignmentRepo "dispatchly/database/repository/assignment"
	availabilityRepo "dispatchly/database/repository/availability"
	"dispatchly/models"
	"dispatchly/utils"

	"go.uber.org/zap"
)

// AvailabilityChecker produces a conflict report for a wizard document. It
// never mutates state and is safe to re-run; identical inputs over identical
// backing data yield an identical report.
type AvailabilityChecker interface {
	Check(ctx context.Context, doc models.JobDocument, generation uint64) *models.ConflictReport
	NextGeneration() uint64
}

// DefaultAvailabilityChecker is the production implementation.
type DefaultAvailabilityChecker struct {
	Availability availabilityRepo.AvailabilityRepository
	Assignments  assignmentRepo.CrewAssignmentRepository

	generation uint64
}

// NextGeneration issues the sequence number for a new check. Reports carry
// their generation so stale results can be discarded (last request wins).
func (c *DefaultAvailabilityChecker) NextGeneration() uint64 {
	return atomic.AddUint64(&c.generation, 1)
}

// Check runs every availability check independently: one failing query never
// aborts the rest, and a failed query is reported as unverified rather than
// as "no conflict".
func (c *DefaultAvailabilityChecker) Check(ctx context.Context, doc models.JobDocument, generation uint64) *models.ConflictReport {
	logger := utils.GetLogger()

	report := &models.ConflictReport{
		Generation: generation,
		CheckedAt:  time.Now(),
	}

	// Inventory is held until it comes back, so the check window runs through
	// the same end date the schedules expand over: the return date, or the
	// planned pickup date when no return date is derived.
	startDate := doc.ScheduledDate
	endDate := windowEnd(doc)
	if endDate == "" {
		endDate = startDate
	}

	for _, line := range doc.Items {
		switch line.Strategy {
		case models.StrategySpecific:
			c.checkSpecificLine(ctx, line, startDate, endDate, report, logger)
		default:
			c.checkBulkLine(ctx, line, startDate, endDate, report, logger)
		}
	}

	if doc.Assignment.DriverID != "" {
		existing, err := c.Assignments.FindByDateAndDriver(ctx, startDate, doc.Assignment.DriverID)
		if err != nil {
			logger.Warn("availability: driver check failed",
				zap.String("driverId", doc.Assignment.DriverID), zap.Error(err))
			report.Unverified = append(report.Unverified, models.UnverifiedCheck{
				Check:  "driver",
				Reason: err.Error(),
			})
		} else if existing != nil {
			report.DriverConflict = &models.CrewConflict{
				Kind:          "driver",
				ID:            doc.Assignment.DriverID,
				Date:          startDate,
				ExistingJobID: existing.JobID,
			}
		}
	}

	if doc.Assignment.VehicleID != "" {
		existing, err := c.Assignments.FindByDateAndVehicle(ctx, startDate, doc.Assignment.VehicleID)
		if err != nil {
			logger.Warn("availability: vehicle check failed",
				zap.String("vehicleId", doc.Assignment.VehicleID), zap.Error(err))
			report.Unverified = append(report.Unverified, models.UnverifiedCheck{
				Check:  "vehicle",
				Reason: err.Error(),
			})
		} else if existing != nil {
			report.VehicleConflict = &models.CrewConflict{
				Kind:          "vehicle",
				ID:            doc.Assignment.VehicleID,
				Date:          startDate,
				ExistingJobID: existing.JobID,
			}
		}
	}

	report.HasConflicts = len(report.ItemConflicts) > 0 ||
		report.DriverConflict != nil ||
		report.VehicleConflict != nil
	return report
}

func (c *DefaultAvailabilityChecker) checkBulkLine(ctx context.Context, line models.InventoryLineRequest, startDate, endDate string, report *models.ConflictReport, logger *zap.Logger) {
	available, err := c.Availability.AvailableQuantity(ctx, line.ProductID, startDate, endDate)
	if err != nil {
		logger.Warn("availability: quantity check failed",
			zap.String("productId", line.ProductID), zap.Error(err))
		report.Unverified = append(report.Unverified, models.UnverifiedCheck{
			Check:  "item:" + line.ProductID,
			Reason: err.Error(),
		})
		return
	}
	if available < line.Quantity {
		report.ItemConflicts = append(report.ItemConflicts, models.ItemConflict{
			ProductID: line.ProductID,
			Requested: line.Quantity,
			Available: available,
			Shortfall: line.Quantity - available,
		})
	}
}

func (c *DefaultAvailabilityChecker) checkSpecificLine(ctx context.Context, line models.InventoryLineRequest, startDate, endDate string, report *models.ConflictReport, logger *zap.Logger) {
	freeIDs, err := c.Availability.AvailableUnitIDs(ctx, line.ProductID, startDate, endDate)
	if err != nil {
		logger.Warn("availability: unit check failed",
			zap.String("productId", line.ProductID), zap.Error(err))
		report.Unverified = append(report.Unverified, models.UnverifiedCheck{
			Check:  "item:" + line.ProductID,
			Reason: err.Error(),
		})
		return
	}

	free := make(map[string]bool, len(freeIDs))
	for _, id := range freeIDs {
		free[id] = true
	}
	var missing []string
	for _, id := range line.SpecificItemIDs {
		if !free[id] {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		report.ItemConflicts = append(report.ItemConflicts, models.ItemConflict{
			ProductID:      line.ProductID,
			Requested:      line.Quantity,
			Available:      len(freeIDs),
			MissingUnitIDs: missing,
		})
	}
}
