package summary

import (
	"fmt"
	"testing"
	"time"

	"pet-health-tracker/internal/domain/healthlogs"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 10, 0, 0, 0, time.UTC)
}

func TestCompute_LatestWeightThisMonth(t *testing.T) {
	weights := []healthlogs.WeightLog{
		{ID: "1", PetID: "p", Weight: 25.5, Date: day(2024, 2, 25)},
		{ID: "2", PetID: "p", Weight: 26.0, Date: day(2024, 1, 25)},
	}

	got := ComputeCurrentPeriodSummary(nil, weights, day(2024, 2, 25))

	if got.LatestWeightLog == nil || got.LatestWeightLog.Weight != 25.5 {
		t.Fatalf("expected latest weight 25.5, got %#v", got.LatestWeightLog)
	}
	if got.LatestBodyConditionLog != nil {
		t.Fatalf("expected no body condition log, got %#v", got.LatestBodyConditionLog)
	}
	if got.WeightDisplay() != "25.5 kg" || got.BodyConditionDisplay() != NoData {
		t.Fatalf("unexpected display values %q / %q", got.WeightDisplay(), got.BodyConditionDisplay())
	}
}

func TestCompute_EmptyCollections(t *testing.T) {
	got := ComputeCurrentPeriodSummary([]healthlogs.BodyConditionLog{}, nil, time.Now())
	if got.LatestBodyConditionLog != nil || got.LatestWeightLog != nil {
		t.Fatalf("expected both nil, got %#v", got)
	}
}

func TestCompute_NilIffNoEntryInPeriod(t *testing.T) {
	now := day(2024, 3, 15)
	cases := []struct {
		name  string
		dates []time.Time
		want  bool // se espera resultado no-nil
	}{
		{"none", nil, false},
		{"other month same year", []time.Time{day(2024, 2, 28)}, false},
		{"same month other year", []time.Time{day(2023, 3, 15)}, false},
		{"zero date fails closed", []time.Time{{}}, false},
		{"one match", []time.Time{day(2023, 3, 1), day(2024, 3, 1)}, true},
		{"future day same month", []time.Time{day(2024, 3, 31)}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			bcs := make([]healthlogs.BodyConditionLog, 0, len(tc.dates))
			for i, d := range tc.dates {
				bcs = append(bcs, healthlogs.BodyConditionLog{ID: fmt.Sprint(i), BodyCondition: "3", Date: d})
			}
			got := ComputeCurrentPeriodSummary(bcs, nil, now)
			if (got.LatestBodyConditionLog != nil) != tc.want {
				t.Fatalf("expected non-nil=%v, got %#v", tc.want, got.LatestBodyConditionLog)
			}
		})
	}
}

func TestCompute_MaxDateRegardlessOfOrder(t *testing.T) {
	now := day(2024, 5, 20)
	logs := []healthlogs.WeightLog{
		{ID: "a", Weight: 10, Date: day(2024, 5, 2)},
		{ID: "b", Weight: 11, Date: day(2024, 5, 19)},
		{ID: "c", Weight: 12, Date: day(2024, 4, 30)},
		{ID: "d", Weight: 13, Date: day(2024, 5, 10)},
	}

	// Todas las rotaciones deben elegir el mismo log
	for r := 0; r < len(logs); r++ {
		rotated := append(append([]healthlogs.WeightLog{}, logs[r:]...), logs[:r]...)
		got := ComputeCurrentPeriodSummary(nil, rotated, now)
		if got.LatestWeightLog == nil || got.LatestWeightLog.ID != "b" {
			t.Fatalf("rotation %d: expected log b, got %#v", r, got.LatestWeightLog)
		}
		for _, l := range rotated {
			if InCurrentPeriod(l.Date, now) && l.Date.After(got.LatestWeightLog.Date) {
				t.Fatalf("rotation %d: %s is newer than the selected log", r, l.ID)
			}
		}
	}
}

func TestCompute_TieBrokenByID(t *testing.T) {
	now := day(2024, 5, 20)
	same := day(2024, 5, 5)
	forward := []healthlogs.BodyConditionLog{
		{ID: "b", BodyCondition: "4", Date: same},
		{ID: "a", BodyCondition: "3", Date: same},
	}
	backward := []healthlogs.BodyConditionLog{forward[1], forward[0]}

	for _, in := range [][]healthlogs.BodyConditionLog{forward, backward} {
		got := ComputeCurrentPeriodSummary(in, nil, now)
		if got.LatestBodyConditionLog == nil || got.LatestBodyConditionLog.ID != "a" {
			t.Fatalf("expected tie broken by id asc (a), got %#v", got.LatestBodyConditionLog)
		}
	}
}

func TestCompute_UsesReferenceLocationCalendar(t *testing.T) {
	// 2024-03-01 02:00 UTC es todavía febrero en UTC-5
	est := time.FixedZone("UTC-5", -5*3600)
	entry := time.Date(2024, 3, 1, 2, 0, 0, 0, time.UTC)
	logs := []healthlogs.WeightLog{{ID: "1", Weight: 9, Date: entry}}

	if got := ComputeCurrentPeriodSummary(nil, logs, time.Date(2024, 2, 20, 12, 0, 0, 0, est)); got.LatestWeightLog == nil {
		t.Fatalf("expected entry to fall in February for UTC-5 reference")
	}
	if got := ComputeCurrentPeriodSummary(nil, logs, time.Date(2024, 2, 20, 12, 0, 0, 0, time.UTC)); got.LatestWeightLog != nil {
		t.Fatalf("expected entry to fall in March for UTC reference")
	}
}

func TestDeriveHealthStatus_Label(t *testing.T) {
	cases := map[int]string{
		0:   LabelNeedsMoreData,
		1:   LabelNeedsMoreData,
		2:   LabelNeedsMoreData,
		3:   LabelNeedsMoreData,
		4:   LabelGood,
		100: LabelGood,
	}
	for n, want := range cases {
		weights := make([]healthlogs.WeightLog, n)
		if got := DeriveHealthStatus(weights, nil, nil).Label; got != want {
			t.Fatalf("count=%d: expected %q, got %q", n, want, got)
		}
	}
}

func TestDeriveHealthStatus_LastVetVisit(t *testing.T) {
	if got := DeriveHealthStatus(nil, nil, nil); got.LastVetVisit != NoData || got.LastVetVisitAt != nil {
		t.Fatalf("nil collection: expected %q, got %#v", NoData, got)
	}
	if got := DeriveHealthStatus(nil, []healthlogs.VetVisitLog{}, nil); got.LastVetVisit != NoData {
		t.Fatalf("empty collection: expected %q, got %q", NoData, got.LastVetVisit)
	}

	// Ascendente a propósito: no se asume orden previo
	visits := []healthlogs.VetVisitLog{
		{ID: "1", Date: day(2023, 11, 2)},
		{ID: "2", Date: day(2024, 2, 15)},
		{ID: "3", Date: day(2024, 1, 9)},
	}
	got := DeriveHealthStatus(nil, visits, time.UTC)
	if got.LastVetVisit != "2024-02-15" {
		t.Fatalf("expected latest visit 2024-02-15, got %q", got.LastVetVisit)
	}
	if got.LastVetVisitAt == nil || !got.LastVetVisitAt.Equal(day(2024, 2, 15)) {
		t.Fatalf("unexpected LastVetVisitAt %#v", got.LastVetVisitAt)
	}
}

func TestDeriveHealthStatus_LastVetVisitInReferenceLocation(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata not available: %v", err)
	}
	// 2024-02-29 22:00 en Nueva York se guarda como 2024-03-01 03:00 UTC
	stored := time.Date(2024, 2, 29, 22, 0, 0, 0, ny).UTC()
	visits := []healthlogs.VetVisitLog{{ID: "1", Date: stored}}

	cases := []struct {
		name string
		loc  *time.Location
		want string
	}{
		{"utc", time.UTC, "2024-03-01"},
		{"nil defaults to utc", nil, "2024-03-01"},
		{"new york", ny, "2024-02-29"},
		{"fixed utc-5", time.FixedZone("UTC-5", -5*3600), "2024-02-29"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := DeriveHealthStatus(nil, visits, tc.loc)
			if got.LastVetVisit != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got.LastVetVisit)
			}
			if got.LastVetVisitAt == nil || !got.LastVetVisitAt.Equal(stored) {
				t.Fatalf("unexpected LastVetVisitAt %#v", got.LastVetVisitAt)
			}
		})
	}
}

func TestBuild_FormatsVetVisitWithNowLocation(t *testing.T) {
	est := time.FixedZone("UTC-5", -5*3600)
	logs := healthlogs.PetLogs{
		VetVisits: []healthlogs.VetVisitLog{{ID: "1", Date: time.Date(2024, 3, 1, 3, 0, 0, 0, time.UTC)}},
	}
	got := Build(logs, time.Date(2024, 2, 29, 23, 0, 0, 0, est))
	if got.Health.LastVetVisit != "2024-02-29" {
		t.Fatalf("expected 2024-02-29, got %q", got.Health.LastVetVisit)
	}
}

func TestBuild_CombinesBoth(t *testing.T) {
	logs := healthlogs.PetLogs{
		Weights: []healthlogs.WeightLog{
			{ID: "1", Weight: 25.5, Date: day(2024, 2, 25)},
			{ID: "2", Weight: 26.0, Date: day(2024, 1, 25)},
		},
		BodyConditions: []healthlogs.BodyConditionLog{
			{ID: "1", BodyCondition: "3", Date: day(2024, 2, 25)},
			{ID: "2", BodyCondition: "4", Date: day(2024, 1, 25)},
		},
	}

	rep := Build(logs, day(2024, 2, 26))
	if rep.CurrentPeriod.BodyConditionDisplay() != "3" {
		t.Fatalf("expected body condition 3, got %q", rep.CurrentPeriod.BodyConditionDisplay())
	}
	if rep.Health.Label != LabelNeedsMoreData || rep.Health.LastVetVisit != NoData {
		t.Fatalf("unexpected health %#v", rep.Health)
	}
}
