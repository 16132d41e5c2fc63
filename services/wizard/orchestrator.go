package wizard

import (
	"context"
	"fmt"

	assignmentRepo "dispatchly/database/repository/assignment"
	jobRepo "dispatchly/database/repository/job"
	quoteRepo "dispatchly/database/repository/quote"
	"dispatchly/models"
	"dispatchly/utils"

	"go.uber.org/zap"
)

// CommitOrchestrator turns a validated wizard document into committed
// records. Steps run strictly in order because later steps chain on ids
// produced by earlier ones; there is no multi-entity transaction behind them.
type CommitOrchestrator interface {
	Submit(ctx context.Context, session *models.WizardSession) (*models.CreationResult, error)
}

// DefaultCommitOrchestrator is the production implementation.
type DefaultCommitOrchestrator struct {
	Jobs        jobRepo.JobRepository
	Quotes      quoteRepo.QuoteRepository
	Assignments assignmentRepo.CrewAssignmentRepository
}

type commitState struct {
	doc          models.JobDocument
	mode         string
	primaryJobID string
	result       *models.CreationResult
}

// commitStep is one saga step. compensate is the undo seam for a future
// transactional or outbox-based path; every step currently registers nil and
// failures are reconciled manually from the CreationResult.
type commitStep struct {
	name       string
	run        func(ctx context.Context, st *commitState) error
	compensate func(ctx context.Context, st *commitState) error
}

// Submit executes the ordered creation sequence. On a step failure the
// returned result lists which step failed and every id already committed;
// nothing is rolled back.
func (o *DefaultCommitOrchestrator) Submit(ctx context.Context, session *models.WizardSession) (*models.CreationResult, error) {
	st := &commitState{
		doc:    session.Data,
		mode:   session.WizardMode,
		result: &models.CreationResult{},
	}

	for _, step := range o.steps(st) {
		if err := step.run(ctx, st); err != nil {
			st.result.FailedStep = step.name
			st.result.FailureDetail = err.Error()
			utils.GetLogger().Error("commit step failed",
				zap.String("step", step.name),
				zap.Int("jobsCreated", st.result.JobsCreated),
				zap.Error(err))
			return st.result, &CommitError{Result: st.result, Err: err}
		}
	}
	return st.result, nil
}

func (o *DefaultCommitOrchestrator) steps(st *commitState) []commitStep {
	if st.mode == models.WizardModeQuote {
		return []commitStep{
			{name: "quote", run: o.createQuote},
		}
	}

	steps := []commitStep{
		{name: "primaryJob", run: o.createPrimaryJob},
		{name: "pickupJob", run: o.createPickupJob},
		{name: "partialPickups", run: o.createPartialPickups},
		{name: "serviceItems", run: o.createServiceItems},
		{name: "crewAssignment", run: o.createCrewAssignment},
	}
	if st.mode == models.WizardModeJobAndQuote {
		steps = append(steps, commitStep{name: "quote", run: o.createQuote})
	}
	return steps
}

func (o *DefaultCommitOrchestrator) createPrimaryJob(ctx context.Context, st *commitState) error {
	job := jobFromDocument(st.doc)
	id, err := o.Jobs.CreateJob(ctx, &job)
	if err != nil {
		return fmt.Errorf("failed to create primary job: %w", err)
	}
	st.primaryJobID = id
	st.result.JobsCreated++
	st.result.Created = append(st.result.Created, models.CreatedEntity{Step: "primaryJob", Kind: "job", ID: id})
	return nil
}

func (o *DefaultCommitOrchestrator) createPickupJob(ctx context.Context, st *commitState) error {
	plan := st.doc.PickupPlan
	if plan == nil || !plan.CreatePickupJob {
		return nil
	}

	date := st.doc.ReturnDate
	if date == "" {
		date = plan.PickupDate
	}
	items := plan.Items
	if len(items) == 0 {
		items = st.doc.Items
	}

	job := jobFromDocument(st.doc)
	job.ID = ""
	job.JobType = models.JobTypePickup
	job.Date = date
	job.TimeOfDay = plan.PickupTime
	job.ReturnDate = ""
	job.Items = items
	job.SourceJobID = st.primaryJobID
	job.Note = "Pickup for job " + st.primaryJobID

	id, err := o.Jobs.CreateJob(ctx, &job)
	if err != nil {
		return fmt.Errorf("failed to create pickup job: %w", err)
	}
	st.result.JobsCreated++
	st.result.Created = append(st.result.Created, models.CreatedEntity{Step: "pickupJob", Kind: "job", ID: id})
	return nil
}

func (o *DefaultCommitOrchestrator) createPartialPickups(ctx context.Context, st *commitState) error {
	plan := st.doc.PickupPlan
	if plan == nil || !plan.CreatePartialPickups {
		return nil
	}

	for i, pp := range plan.PartialPickups {
		items := pp.Items
		if len(items) == 0 {
			items = st.doc.Items
		}

		job := jobFromDocument(st.doc)
		job.ID = ""
		job.JobType = models.JobTypePickup
		job.Date = pp.Date
		job.TimeOfDay = pp.Time
		job.ReturnDate = ""
		job.Items = items
		job.SourceJobID = st.primaryJobID
		job.Note = "PARTIAL PICKUP: " + pp.Note

		id, err := o.Jobs.CreateJob(ctx, &job)
		if err != nil {
			return fmt.Errorf("failed to create partial pickup %d: %w", i+1, err)
		}
		st.result.JobsCreated++
		st.result.Created = append(st.result.Created, models.CreatedEntity{Step: "partialPickups", Kind: "job", ID: id})
	}
	return nil
}

func (o *DefaultCommitOrchestrator) createServiceItems(ctx context.Context, st *commitState) error {
	if len(st.doc.Services) == 0 {
		return nil
	}

	window, err := ServiceWindow(st.doc)
	if err != nil {
		return fmt.Errorf("failed to resolve service window: %w", err)
	}

	for _, sel := range st.doc.Services {
		schedule := RecalculateService(&sel, window)
		item := models.JobLineItem{
			JobID:        st.primaryJobID,
			ServiceID:    sel.ServiceID,
			Name:         sel.Name,
			Frequency:    sel.Frequency,
			CustomType:   sel.CustomType,
			VisitDates:   sel.ServiceDates,
			VisitCount:   sel.VisitCount,
			TotalCost:    sel.CalculatedCost,
			PriceSummary: schedule.SummaryText,
		}
		id, err := o.Jobs.CreateLineItem(ctx, &item)
		if err != nil {
			return fmt.Errorf("failed to create service item %q: %w", sel.Name, err)
		}
		st.result.Created = append(st.result.Created, models.CreatedEntity{Step: "serviceItems", Kind: "lineItem", ID: id})
	}
	return nil
}

func (o *DefaultCommitOrchestrator) createCrewAssignment(ctx context.Context, st *commitState) error {
	driverID := st.doc.Assignment.DriverID
	vehicleID := st.doc.Assignment.VehicleID
	if driverID == "" || vehicleID == "" {
		return nil
	}

	exists, err := o.Assignments.ExistsForDate(ctx, st.doc.ScheduledDate, driverID, vehicleID)
	if err != nil {
		return fmt.Errorf("failed to check existing crew assignment: %w", err)
	}
	if exists {
		return nil
	}

	assignment := models.CrewAssignment{
		Date:      st.doc.ScheduledDate,
		DriverID:  driverID,
		VehicleID: vehicleID,
		JobID:     st.primaryJobID,
	}
	id, err := o.Assignments.Create(ctx, &assignment)
	if err != nil {
		return fmt.Errorf("failed to create crew assignment: %w", err)
	}
	st.result.Created = append(st.result.Created, models.CreatedEntity{Step: "crewAssignment", Kind: "assignment", ID: id})
	return nil
}

func (o *DefaultCommitOrchestrator) createQuote(ctx context.Context, st *commitState) error {
	quote := quoteFromDocument(st.doc)
	quote.JobID = st.primaryJobID

	id, err := o.Quotes.CreateQuote(ctx, &quote)
	if err != nil {
		return fmt.Errorf("failed to create quote: %w", err)
	}
	st.result.QuoteID = id
	st.result.Created = append(st.result.Created, models.CreatedEntity{Step: "quote", Kind: "quote", ID: id})

	if st.primaryJobID != "" {
		if err := o.Jobs.SetLinkedQuote(ctx, st.primaryJobID, id); err != nil {
			return fmt.Errorf("failed to link quote %s to job %s: %w", id, st.primaryJobID, err)
		}
	}
	return nil
}

// jobFromDocument maps the document's core fields onto a Job record.
func jobFromDocument(doc models.JobDocument) models.Job {
	return models.Job{
		CustomerID: doc.CustomerID,
		ContactID:  doc.ContactID,
		JobType:    doc.JobType,
		Date:       doc.ScheduledDate,
		TimeOfDay:  doc.ScheduledTime,
		Timezone:   doc.Timezone,
		ReturnDate: doc.ReturnDate,
		LocationID: doc.Location.SavedLocationID,
		Address:    doc.Location.NewAddress,
		DriverID:   doc.Assignment.DriverID,
		VehicleID:  doc.Assignment.VehicleID,
		Items:      doc.Items,
	}
}

// quoteFromDocument prices the document into a Quote record.
func quoteFromDocument(doc models.JobDocument) models.Quote {
	quote := models.Quote{
		CustomerID:    doc.CustomerID,
		ContactID:     doc.ContactID,
		JobType:       doc.JobType,
		ScheduledDate: doc.ScheduledDate,
		ReturnDate:    doc.ReturnDate,
		Items:         doc.Items,
		Status:        models.QuoteStatusDraft,
	}

	window, err := ServiceWindow(doc)
	for _, sel := range doc.Services {
		amount := sel.CalculatedCost
		visits := sel.VisitCount
		if err == nil {
			RecalculateService(&sel, window)
			amount = sel.CalculatedCost
			visits = sel.VisitCount
		}
		quote.Lines = append(quote.Lines, models.QuoteLine{
			ServiceID:  sel.ServiceID,
			Name:       sel.Name,
			VisitCount: visits,
			Amount:     amount,
		})
		quote.Total += amount
	}
	return quote
}
