package wizard

import (
	"reflect"
	"testing"
	"time"

	"dispatchly/models"
)

func mustWindow(t *testing.T, start, end string) DateWindow {
	t.Helper()
	w, err := WindowFromStrings(start, end)
	if err != nil {
		t.Fatalf("WindowFromStrings(%q, %q): %v", start, end, err)
	}
	return w
}

func visitDates(schedule VisitSchedule) []string {
	dates := make([]string, len(schedule.Visits))
	for i, v := range schedule.Visits {
		dates[i] = v.Date
	}
	return dates
}

func TestComputeVisitsFrequencies(t *testing.T) {
	tests := []struct {
		name      string
		start     string
		end       string
		freq      FrequencySpec
		wantDates []string
	}{
		{
			name:      "one-time lands on window start",
			start:     "2025-03-01",
			end:       "2025-03-10",
			freq:      FrequencySpec{Frequency: models.FrequencyOneTime},
			wantDates: []string{"2025-03-01"},
		},
		{
			name:  "daily over four days",
			start: "2025-03-01",
			end:   "2025-03-04",
			freq:  FrequencySpec{Frequency: models.FrequencyDaily},
			wantDates: []string{
				"2025-03-01", "2025-03-02", "2025-03-03", "2025-03-04",
			},
		},
		{
			name:      "daily zero-length window yields one visit",
			start:     "2025-03-01",
			end:       "2025-03-01",
			freq:      FrequencySpec{Frequency: models.FrequencyDaily},
			wantDates: []string{"2025-03-01"},
		},
		{
			name:      "weekly steps by seven days",
			start:     "2025-03-01",
			end:       "2025-03-20",
			freq:      FrequencySpec{Frequency: models.FrequencyWeekly},
			wantDates: []string{"2025-03-01", "2025-03-08", "2025-03-15"},
		},
		{
			name:      "monthly steps by calendar month",
			start:     "2025-01-15",
			end:       "2025-04-20",
			freq:      FrequencySpec{Frequency: models.FrequencyMonthly},
			wantDates: []string{"2025-01-15", "2025-02-15", "2025-03-15", "2025-04-15"},
		},
		{
			name:  "custom interval of 3 days",
			start: "2025-03-01",
			end:   "2025-03-10",
			freq: FrequencySpec{
				Frequency:    models.FrequencyCustom,
				CustomType:   models.CustomDaysInterval,
				IntervalDays: 3,
			},
			wantDates: []string{"2025-03-01", "2025-03-04", "2025-03-07", "2025-03-10"},
		},
		{
			name:  "custom interval below one clamps to daily",
			start: "2025-03-01",
			end:   "2025-03-03",
			freq: FrequencySpec{
				Frequency:    models.FrequencyCustom,
				CustomType:   models.CustomDaysInterval,
				IntervalDays: 0,
			},
			wantDates: []string{"2025-03-01", "2025-03-02", "2025-03-03"},
		},
		{
			name:  "custom Mon/Thu over two weeks",
			start: "2025-03-03",
			end:   "2025-03-17",
			freq: FrequencySpec{
				Frequency:  models.FrequencyCustom,
				CustomType: models.CustomDaysOfWeek,
				DaysOfWeek: []time.Weekday{time.Monday, time.Thursday},
			},
			wantDates: []string{
				"2025-03-03", "2025-03-06", "2025-03-10", "2025-03-13", "2025-03-17",
			},
		},
		{
			name:  "custom weekday set empty yields no visits",
			start: "2025-03-03",
			end:   "2025-03-17",
			freq: FrequencySpec{
				Frequency:  models.FrequencyCustom,
				CustomType: models.CustomDaysOfWeek,
			},
			wantDates: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schedule := ComputeVisits(mustWindow(t, tt.start, tt.end), tt.freq, VisitFlags{}, 10)
			got := visitDates(schedule)
			if len(got) == 0 && len(tt.wantDates) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.wantDates) {
				t.Errorf("visit dates = %v, want %v", got, tt.wantDates)
			}
			wantCost := 10 * float64(len(tt.wantDates))
			if schedule.TotalCost != wantCost {
				t.Errorf("TotalCost = %v, want %v", schedule.TotalCost, wantCost)
			}
		})
	}
}

func TestComputeVisitsInvertedWindow(t *testing.T) {
	window := DateWindow{
		Start: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	}
	schedule := ComputeVisits(window, FrequencySpec{Frequency: models.FrequencyDaily}, VisitFlags{Dropoff: true, Pickup: true}, 25)

	if len(schedule.Visits) != 0 {
		t.Errorf("expected no visits for inverted window, got %v", visitDates(schedule))
	}
	if schedule.TotalCost != 0 {
		t.Errorf("TotalCost = %v, want 0", schedule.TotalCost)
	}
}

func TestComputeVisitsPinnedFlags(t *testing.T) {
	t.Run("dropoff and pickup pin to window bounds", func(t *testing.T) {
		freq := FrequencySpec{
			Frequency:  models.FrequencyCustom,
			CustomType: models.CustomDaysOfWeek,
			DaysOfWeek: []time.Weekday{time.Wednesday},
		}
		// Mon 2025-03-03 .. Fri 2025-03-07: Wednesday plus both bounds.
		schedule := ComputeVisits(mustWindow(t, "2025-03-03", "2025-03-07"), freq, VisitFlags{Dropoff: true, Pickup: true}, 10)

		want := []string{"2025-03-03", "2025-03-05", "2025-03-07"}
		if got := visitDates(schedule); !reflect.DeepEqual(got, want) {
			t.Errorf("visit dates = %v, want %v", got, want)
		}
	})

	t.Run("same-day one-time with both flags collapses to one visit", func(t *testing.T) {
		schedule := ComputeVisits(mustWindow(t, "2025-03-01", "2025-03-01"),
			FrequencySpec{Frequency: models.FrequencyOneTime},
			VisitFlags{Dropoff: true, Pickup: true}, 40)

		if len(schedule.Visits) != 1 {
			t.Fatalf("expected exactly 1 visit, got %d: %v", len(schedule.Visits), visitDates(schedule))
		}
		if schedule.TotalCost != 40 {
			t.Errorf("TotalCost = %v, want 40 (no double charge)", schedule.TotalCost)
		}
	})

	t.Run("pinned visits never overwrite generated ones", func(t *testing.T) {
		schedule := ComputeVisits(mustWindow(t, "2025-03-01", "2025-03-02"),
			FrequencySpec{Frequency: models.FrequencyDaily},
			VisitFlags{Dropoff: true, Pickup: true}, 10)

		want := []string{"2025-03-01", "2025-03-02"}
		if got := visitDates(schedule); !reflect.DeepEqual(got, want) {
			t.Errorf("visit dates = %v, want %v", got, want)
		}
		for _, v := range schedule.Visits {
			if v.Notes != "" {
				t.Errorf("visit %s carries pinned note %q over generated visit", v.Date, v.Notes)
			}
		}
	})
}

func TestComputeVisitsSpecificDates(t *testing.T) {
	freq := FrequencySpec{
		Frequency:  models.FrequencyCustom,
		CustomType: models.CustomSpecificDates,
		SpecificDates: []models.ServiceDate{
			{Date: "2025-03-05", Time: "09:00", Notes: "setup"},
			{Date: "2025-03-02"},
			{Date: "2025-02-20"},    // before the window
			{Date: "2025-03-15"},    // after the window
			{Date: "not-a-date"},    // unparseable
			{Date: "2025-03-05"},    // duplicate, keeps earlier time/notes
		},
	}
	schedule := ComputeVisits(mustWindow(t, "2025-03-01", "2025-03-10"), freq, VisitFlags{}, 10)

	want := []string{"2025-03-02", "2025-03-05"}
	if got := visitDates(schedule); !reflect.DeepEqual(got, want) {
		t.Errorf("visit dates = %v, want %v", got, want)
	}

	wantOut := []string{"2025-02-20", "2025-03-15", "not-a-date"}
	if !reflect.DeepEqual(schedule.OutOfWindowDates, wantOut) {
		t.Errorf("OutOfWindowDates = %v, want %v", schedule.OutOfWindowDates, wantOut)
	}

	// The duplicate collapsed into one visit and the blank time/notes did not
	// erase what the first write carried.
	for _, v := range schedule.Visits {
		if v.Date == "2025-03-05" {
			if v.Time != "09:00" || v.Notes != "setup" {
				t.Errorf("deduplicated visit lost fields: time=%q notes=%q", v.Time, v.Notes)
			}
		}
	}

	if schedule.TotalCost != 20 {
		t.Errorf("TotalCost = %v, want 20", schedule.TotalCost)
	}
}

func TestComputeVisitsIdempotent(t *testing.T) {
	window := mustWindow(t, "2025-03-01", "2025-03-31")
	freq := FrequencySpec{
		Frequency:    models.FrequencyCustom,
		CustomType:   models.CustomDaysInterval,
		IntervalDays: 4,
	}

	first := ComputeVisits(window, freq, VisitFlags{Pickup: true}, 15)
	second := ComputeVisits(window, freq, VisitFlags{Pickup: true}, 15)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("identical inputs produced different schedules:\n%+v\n%+v", first, second)
	}
}
