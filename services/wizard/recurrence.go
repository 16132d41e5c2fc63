package wizard

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"dispatchly/models"
)

// DateLayout is the wire format for all wizard dates.
const DateLayout = "2006-01-02"

// DateWindow is the bounded rental window a recurrence expands over.
// Both bounds are inclusive.
type DateWindow struct {
	Start time.Time
	End   time.Time
}

// WindowFromStrings parses a window from "YYYY-MM-DD" bounds. An empty end
// collapses the window to a single day.
func WindowFromStrings(start, end string) (DateWindow, error) {
	s, err := time.Parse(DateLayout, start)
	if err != nil {
		return DateWindow{}, fmt.Errorf("invalid window start %q: %w", start, err)
	}
	if end == "" {
		return DateWindow{Start: s, End: s}, nil
	}
	e, err := time.Parse(DateLayout, end)
	if err != nil {
		return DateWindow{}, fmt.Errorf("invalid window end %q: %w", end, err)
	}
	return DateWindow{Start: s, End: e}, nil
}

// FrequencySpec is the abstract recurrence rule before expansion into visits.
type FrequencySpec struct {
	Frequency     string
	CustomType    string
	IntervalDays  int
	DaysOfWeek    []time.Weekday
	SpecificDates []models.ServiceDate
}

// SpecFromSelection lifts the frequency fields off a service selection.
func SpecFromSelection(sel models.ServiceSelection) FrequencySpec {
	return FrequencySpec{
		Frequency:     sel.Frequency,
		CustomType:    sel.CustomType,
		IntervalDays:  sel.IntervalDays,
		DaysOfWeek:    sel.DaysOfWeek,
		SpecificDates: sel.SpecificDates,
	}
}

// VisitFlags pin extra visits to the window bounds regardless of frequency.
type VisitFlags struct {
	Dropoff bool
	Pickup  bool
}

// Visit is one concrete dated occurrence of a recurring service.
type Visit struct {
	Date  string `json:"date"`
	Time  string `json:"time,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// VisitSchedule is the expanded, costed visit list for one service.
// TotalCost is always the uncapped computed cost; price overrides are applied
// by the caller so the override delta stays visible.
type VisitSchedule struct {
	Visits      []Visit  `json:"visits"`
	TotalCost   float64  `json:"totalCost"`
	SummaryText string   `json:"summaryText"`
	// OutOfWindowDates lists explicit dates that fell outside the window.
	// They are surfaced, not silently dropped, and are not fatal.
	OutOfWindowDates []string `json:"outOfWindowDates,omitempty"`
}

// ComputeVisits expands a frequency spec over a date window into an ordered
// visit list. Visits are sorted ascending by date and duplicate dates collapse
// into one visit (last write wins for any attached time or note). An inverted
// window yields zero visits and cost 0.
func ComputeVisits(window DateWindow, freq FrequencySpec, flags VisitFlags, perVisitCost float64) VisitSchedule {
	if window.End.Before(window.Start) {
		return VisitSchedule{SummaryText: "No visits (empty window)"}
	}

	byDate := make(map[string]Visit)
	var outOfWindow []string

	add := func(v Visit) {
		existing, ok := byDate[v.Date]
		if ok {
			// Last write wins for time/notes, but never blank out what an
			// earlier visit already carries.
			if v.Time == "" {
				v.Time = existing.Time
			}
			if v.Notes == "" {
				v.Notes = existing.Notes
			}
		}
		byDate[v.Date] = v
	}

	switch freq.Frequency {
	case models.FrequencyOneTime:
		add(Visit{Date: window.Start.Format(DateLayout)})

	case models.FrequencyDaily:
		for d := window.Start; !d.After(window.End); d = d.AddDate(0, 0, 1) {
			add(Visit{Date: d.Format(DateLayout)})
		}

	case models.FrequencyWeekly:
		for d := window.Start; !d.After(window.End); d = d.AddDate(0, 0, 7) {
			add(Visit{Date: d.Format(DateLayout)})
		}

	case models.FrequencyMonthly:
		for d := window.Start; !d.After(window.End); d = d.AddDate(0, 1, 0) {
			add(Visit{Date: d.Format(DateLayout)})
		}

	case models.FrequencyCustom:
		switch freq.CustomType {
		case models.CustomDaysInterval:
			interval := freq.IntervalDays
			if interval < 1 {
				interval = 1
			}
			for d := window.Start; !d.After(window.End); d = d.AddDate(0, 0, interval) {
				add(Visit{Date: d.Format(DateLayout)})
			}

		case models.CustomDaysOfWeek:
			// An empty weekday set yields zero visits; the validator treats
			// that as incomplete input, not this function.
			selected := make(map[time.Weekday]bool, len(freq.DaysOfWeek))
			for _, wd := range freq.DaysOfWeek {
				selected[wd] = true
			}
			for d := window.Start; !d.After(window.End); d = d.AddDate(0, 0, 1) {
				if selected[d.Weekday()] {
					add(Visit{Date: d.Format(DateLayout)})
				}
			}

		case models.CustomSpecificDates:
			for _, sd := range freq.SpecificDates {
				d, err := time.Parse(DateLayout, sd.Date)
				if err != nil {
					outOfWindow = append(outOfWindow, sd.Date)
					continue
				}
				if d.Before(window.Start) || d.After(window.End) {
					outOfWindow = append(outOfWindow, sd.Date)
					continue
				}
				add(Visit{Date: sd.Date, Time: sd.Time, Notes: sd.Notes})
			}
		}
	}

	// Pinned visits are deduplicated against already-generated dates so a
	// same-day visit is never double counted or double charged.
	if flags.Dropoff {
		date := window.Start.Format(DateLayout)
		if _, ok := byDate[date]; !ok {
			byDate[date] = Visit{Date: date, Notes: "Drop-off service"}
		}
	}
	if flags.Pickup {
		date := window.End.Format(DateLayout)
		if _, ok := byDate[date]; !ok {
			byDate[date] = Visit{Date: date, Notes: "Pickup service"}
		}
	}

	visits := make([]Visit, 0, len(byDate))
	for _, v := range byDate {
		visits = append(visits, v)
	}
	sort.Slice(visits, func(i, j int) bool { return visits[i].Date < visits[j].Date })

	return VisitSchedule{
		Visits:           visits,
		TotalCost:        perVisitCost * float64(len(visits)),
		SummaryText:      summarize(freq, len(visits)),
		OutOfWindowDates: outOfWindow,
	}
}

func summarize(freq FrequencySpec, count int) string {
	visitWord := "visits"
	if count == 1 {
		visitWord = "visit"
	}
	switch freq.Frequency {
	case models.FrequencyOneTime:
		return fmt.Sprintf("One-time service (%d %s)", count, visitWord)
	case models.FrequencyDaily:
		return fmt.Sprintf("Daily service (%d %s)", count, visitWord)
	case models.FrequencyWeekly:
		return fmt.Sprintf("Weekly service (%d %s)", count, visitWord)
	case models.FrequencyMonthly:
		return fmt.Sprintf("Monthly service (%d %s)", count, visitWord)
	case models.FrequencyCustom:
		switch freq.CustomType {
		case models.CustomDaysInterval:
			interval := freq.IntervalDays
			if interval < 1 {
				interval = 1
			}
			return fmt.Sprintf("Every %d days (%d %s)", interval, count, visitWord)
		case models.CustomDaysOfWeek:
			names := make([]string, len(freq.DaysOfWeek))
			for i, wd := range freq.DaysOfWeek {
				names[i] = wd.String()
			}
			return fmt.Sprintf("Weekly on %s (%d %s)", strings.Join(names, ", "), count, visitWord)
		case models.CustomSpecificDates:
			return fmt.Sprintf("On selected dates (%d %s)", count, visitWord)
		}
	}
	return fmt.Sprintf("%d %s", count, visitWord)
}
