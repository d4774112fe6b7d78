package attendance

import (
	"errors"
	"testing"
	"time"

	"github.com/patiponrmutl/AcademyTrack/models"
)

func TestDailyStats_AdditivityAfterClose(t *testing.T) {
	store := newMemStore()
	dir := &memDirectory{subjects: []Subject{
		{Kind: models.KindLearner, ID: 1, Code: "L-001"},
		{Kind: models.KindLearner, ID: 2, Code: "L-002"},
		{Kind: models.KindCoach, ID: 7, Code: "C-007"},
	}}
	svc, _ := testService(store, dir)

	// #1 มาทัน, #2 มาสาย, coach เงียบ
	if _, err := svc.RecordScan(models.KindLearner, 1, time.Date(2026, 3, 2, 8, 0, 0, 0, time.Local)); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.RecordScan(models.KindLearner, 2, time.Date(2026, 3, 2, 8, 30, 0, 0, time.Local)); err != nil {
		t.Fatal(err)
	}

	// ก่อนปิดยอด: absent ยังเป็น 0 และ closed=false
	before, err := svc.DailyStats("2026-03-02")
	if err != nil {
		t.Fatal(err)
	}
	if before.Absent != 0 || before.Closed {
		t.Errorf("before closing: absent=%d closed=%v, want 0/false", before.Absent, before.Closed)
	}

	if _, err := svc.CloseAbsences("2026-03-02"); err != nil {
		t.Fatal(err)
	}

	after, err := svc.DailyStats("2026-03-02")
	if err != nil {
		t.Fatal(err)
	}
	if after.Present != 1 || after.Late != 1 || after.Absent != 1 {
		t.Errorf("counts = %d/%d/%d, want 1/1/1", after.Present, after.Late, after.Absent)
	}
	// present + late + absent == จำนวนคน active
	if after.Present+after.Late+after.Absent != after.TotalActive {
		t.Errorf("additivity broken: %d+%d+%d != %d", after.Present, after.Late, after.Absent, after.TotalActive)
	}
	if !after.Closed {
		t.Errorf("closed should be true once every subject has a row")
	}
}

func TestDailyStats_BadDate(t *testing.T) {
	store := newMemStore()
	svc, _ := testService(store, twoSubjects())
	if _, err := svc.DailyStats("not-a-date"); !errors.Is(err, ErrValidation) {
		t.Errorf("want ErrValidation, got %v", err)
	}
}

func TestMonthlyStats(t *testing.T) {
	store := newMemStore()
	svc, _ := testService(store, twoSubjects())

	// สองวันในเดือนมีนาคม + หนึ่งวันนอกเดือน
	days := []struct {
		day  time.Time
		id   uint
		kind models.SubjectKind
	}{
		{time.Date(2026, 3, 2, 8, 0, 0, 0, time.Local), 1, models.KindLearner},
		{time.Date(2026, 3, 3, 8, 30, 0, 0, time.Local), 1, models.KindLearner},
		{time.Date(2026, 4, 1, 8, 0, 0, 0, time.Local), 1, models.KindLearner},
	}
	for _, d := range days {
		if _, err := svc.RecordScan(d.kind, d.id, d.day); err != nil {
			t.Fatal(err)
		}
	}

	out, err := svc.MonthlyStats(2026, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(out.Days) != 2 {
		t.Fatalf("days in march = %d, want 2", len(out.Days))
	}
	if out.Days[0].Date != "2026-03-02" || out.Days[1].Date != "2026-03-03" {
		t.Errorf("days not ordered: %+v", out.Days)
	}
	if out.Totals.Present != 1 || out.Totals.Late != 1 {
		t.Errorf("totals = %+v, want present=1 late=1", out.Totals)
	}

	if _, err := svc.MonthlyStats(2026, 13); !errors.Is(err, ErrValidation) {
		t.Errorf("month 13 should be ErrValidation, got %v", err)
	}
}

func TestYearlyStats_GroupsByMonth(t *testing.T) {
	store := newMemStore()
	svc, _ := testService(store, twoSubjects())

	scans := []time.Time{
		time.Date(2026, 1, 5, 8, 0, 0, 0, time.Local),
		time.Date(2026, 1, 6, 8, 30, 0, 0, time.Local),
		time.Date(2026, 6, 10, 8, 0, 0, 0, time.Local),
	}
	for _, ts := range scans {
		if _, err := svc.RecordScan(models.KindLearner, 1, ts); err != nil {
			t.Fatal(err)
		}
	}
	// หนึ่งวันขาดในเดือนมิถุนายน
	if _, err := svc.CloseAbsences("2026-06-11"); err != nil {
		t.Fatal(err)
	}

	out, err := svc.YearlyStats(2026)
	if err != nil {
		t.Fatal(err)
	}
	if len(out.Months) != 2 {
		t.Fatalf("months with data = %d, want 2 (jan, jun)", len(out.Months))
	}
	jan, jun := out.Months[0], out.Months[1]
	if jan.Month != "2026-01" || jan.Present != 1 || jan.Late != 1 {
		t.Errorf("january = %+v", jan)
	}
	if jun.Month != "2026-06" || jun.Present != 1 || jun.Absent != 2 {
		t.Errorf("june = %+v (1 scan on the 10th, 2 closed absent on the 11th)", jun)
	}
}
