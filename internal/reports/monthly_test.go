package reports

import (
	"testing"

	"a2z-ipm-api-server/internal/models"
)

func rec(formType, date string) models.Record {
	return models.Record{FormType: formType, ProjectKey: "p1", Date: date}
}

func TestBuildMonthlyDailyCounts(t *testing.T) {
	records := []models.Record{
		rec("attendance", "2026-03-03"),
		rec("insecticide", "2026-03-03"),
		rec("gluebox", "2026-03-15"),
		rec("attendance", "2026-04-01"), // outside the month
	}
	rep, err := BuildMonthly("p1", "2026-03", records, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rep.Total != 3 {
		t.Fatalf("expected 3 records in month, got %d", rep.Total)
	}
	if len(rep.Daily) != 31 {
		t.Fatalf("expected a row per calendar day, got %d", len(rep.Daily))
	}
	if rep.Daily[2].Counts["attendance"] != 1 || rep.Daily[2].Counts["insecticide"] != 1 {
		t.Fatalf("unexpected counts on day 3: %+v", rep.Daily[2].Counts)
	}
	if len(rep.ActiveDays) != 2 {
		t.Fatalf("expected 2 active days, got %d", len(rep.ActiveDays))
	}
}

func TestBuildMonthlyWeekFourAbsorbsMonthEnd(t *testing.T) {
	records := []models.Record{
		rec("attendance", "2026-03-01"),
		rec("attendance", "2026-03-08"),
		rec("attendance", "2026-03-22"),
		rec("attendance", "2026-03-29"),
		rec("attendance", "2026-03-31"),
	}
	rep, err := BuildMonthly("p1", "2026-03", records, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rep.Weekly) != 4 {
		t.Fatalf("monthly report always has 4 weekly buckets, got %d", len(rep.Weekly))
	}
	if rep.Weekly[0].Count != 1 || rep.Weekly[1].Count != 1 {
		t.Fatalf("unexpected early week counts: %+v", rep.Weekly)
	}
	if rep.Weekly[3].Count != 3 {
		t.Fatalf("days 29-31 belong to week 4, got %+v", rep.Weekly[3])
	}
	var sum int
	for _, w := range rep.Weekly {
		sum += w.Count
	}
	if sum != rep.Total {
		t.Fatalf("weekly buckets must partition the month: %d != %d", sum, rep.Total)
	}
}

func TestBuildMonthlyDistribution(t *testing.T) {
	records := []models.Record{
		rec("gluebox", "2026-03-02"),
		rec("gluebox", "2026-03-09"),
		rec("field_audit", "2026-03-02"),
	}
	rep, err := BuildMonthly("p1", "2026-03", records, map[string]string{"field_audit": "Field Audit"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rep.Distribution) != 2 {
		t.Fatalf("expected 2 distribution rows, got %d", len(rep.Distribution))
	}
	if rep.Distribution[0].Name != "Glue Box" || rep.Distribution[0].Count != 2 {
		t.Fatalf("distribution should sort by count desc: %+v", rep.Distribution[0])
	}
	if rep.Distribution[1].Name != "Field Audit" {
		t.Fatalf("custom form names should resolve: %+v", rep.Distribution[1])
	}
}

func TestBuildMonthlyDetailSlices(t *testing.T) {
	ins := rec("insecticide", "2026-03-05")
	ins.Chemical = "Cypermethrin 10%"
	ins.Qty = "50"
	ins.RemainingQty = "450"

	bait := rec("baitstation", "2026-03-06")
	bait.ActiveStations = 12
	bait.TotalStations = 20
	bait.BaitUsed = "300"

	att := rec("attendance", "2026-03-07")
	att.Time = "09:15"
	att.UserKey = "u1"
	att.Location = &models.RecordLocation{Verified: true, Distance: 12}

	rep, err := BuildMonthly("p1", "2026-03", []models.Record{ins, bait, att}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rep.Insecticide) != 1 || rep.Insecticide[0].Qty != 50 || rep.Insecticide[0].Remaining != 450 {
		t.Fatalf("unexpected insecticide rows: %+v", rep.Insecticide)
	}
	if len(rep.BaitStations) != 1 || rep.BaitStations[0].Active != 12 || rep.BaitStations[0].BaitUsed != 300 {
		t.Fatalf("unexpected bait station rows: %+v", rep.BaitStations)
	}
	if len(rep.Attendance) != 1 || !rep.Attendance[0].Verified {
		t.Fatalf("unexpected attendance rows: %+v", rep.Attendance)
	}
}

func TestBuildMonthlyRejectsBadMonth(t *testing.T) {
	if _, err := BuildMonthly("p1", "2026/03", nil, nil); err == nil {
		t.Fatal("expected error for malformed month")
	}
}

func TestBuildMonthlyFebruaryDays(t *testing.T) {
	rep, err := BuildMonthly("p1", "2026-02", nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rep.Daily) != 28 {
		t.Fatalf("February 2026 has 28 days, got %d", len(rep.Daily))
	}
}
