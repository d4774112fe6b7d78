package attendance

import (
	"errors"
	"testing"
	"time"

	"github.com/patiponrmutl/AcademyTrack/models"
)

func TestCloseAbsences_CreatesExplicitAbsentRows(t *testing.T) {
	store := newMemStore()
	svc, _ := testService(store, twoSubjects())

	// learner #1 สแกนแล้ว, coach #7 เงียบ
	if _, err := svc.RecordScan(models.KindLearner, 1, time.Date(2026, 3, 2, 8, 0, 0, 0, time.Local)); err != nil {
		t.Fatal(err)
	}

	closed, err := svc.CloseAbsences("2026-03-02")
	if err != nil {
		t.Fatalf("close: %v", err)
	}
	if closed != 1 {
		t.Fatalf("closed = %d, want 1 (only the silent coach)", closed)
	}

	rec, err := store.FindBySubjectDay(models.KindCoach, 7, "2026-03-02")
	if err != nil {
		t.Fatalf("absent row for coach missing: %v", err)
	}
	if rec.IsPresent || rec.IsLate {
		t.Errorf("closed row must be {is_present:false, is_late:false}, got %+v", rec)
	}
	if rec.ScanTime != nil {
		t.Errorf("closed row must have no scan_time, got %v", rec.ScanTime)
	}
	if st := DeriveStatus(rec); st != models.StatusToJustify {
		t.Errorf("closed row should derive TO_JUSTIFY, got %q", st)
	}

	// แถวของคนที่สแกนแล้วต้องไม่โดนทับ
	scanned, err := store.FindBySubjectDay(models.KindLearner, 1, "2026-03-02")
	if err != nil {
		t.Fatal(err)
	}
	if !scanned.IsPresent {
		t.Errorf("closer must not overwrite an existing scan row")
	}
}

func TestCloseAbsences_Idempotent(t *testing.T) {
	store := newMemStore()
	svc, _ := testService(store, twoSubjects())

	if _, err := svc.CloseAbsences("2026-03-02"); err != nil {
		t.Fatal(err)
	}
	rowsAfterFirst := store.totalRows()

	closed, err := svc.CloseAbsences("2026-03-02")
	if err != nil {
		t.Fatal(err)
	}
	if closed != 0 {
		t.Errorf("second run closed %d, want 0", closed)
	}
	if store.totalRows() != rowsAfterFirst {
		t.Errorf("second run changed row count: %d -> %d", rowsAfterFirst, store.totalRows())
	}
	for _, s := range []struct {
		kind models.SubjectKind
		id   uint
	}{{models.KindLearner, 1}, {models.KindCoach, 7}} {
		if n := store.rowCount(s.kind, s.id, "2026-03-02"); n != 1 {
			t.Errorf("%s #%d has %d rows, want 1", s.kind, s.id, n)
		}
	}
}

// คนหนึ่งพัง ต้องไม่พาทั้งชุดล้ม — รอบถัดไปเก็บตกคนที่พังได้
func TestCloseAbsences_PartialFailureIsIsolated(t *testing.T) {
	store := newMemStore()
	store.failWrite[subjKey(models.KindLearner, 1)] = true
	svc, _ := testService(store, twoSubjects())

	closed, err := svc.CloseAbsences("2026-03-02")
	if err != nil {
		t.Fatalf("batch must not abort on one failure, got %v", err)
	}
	if closed != 1 {
		t.Errorf("closed = %d, want 1 (the coach)", closed)
	}
	if _, err := store.FindBySubjectDay(models.KindCoach, 7, "2026-03-02"); err != nil {
		t.Errorf("healthy subject should still be closed: %v", err)
	}
	if _, err := store.FindBySubjectDay(models.KindLearner, 1, "2026-03-02"); !errors.Is(err, ErrRecordNotFound) {
		t.Errorf("failed subject should have no row yet, got %v", err)
	}

	// รอบถัดไป (DB หายดีแล้ว) ปิดคนที่ค้างได้
	delete(store.failWrite, subjKey(models.KindLearner, 1))
	closed, err = svc.CloseAbsences("2026-03-02")
	if err != nil {
		t.Fatal(err)
	}
	if closed != 1 {
		t.Errorf("retry run closed %d, want 1", closed)
	}
}

func TestCloseAbsencesForToday_UsesInjectedClock(t *testing.T) {
	store := newMemStore()
	svc, _ := testService(store, twoSubjects()) // นาฬิกา fix ที่ 2026-03-02 13:00

	if _, err := svc.CloseAbsencesForToday(); err != nil {
		t.Fatal(err)
	}
	if _, err := store.FindBySubjectDay(models.KindLearner, 1, "2026-03-02"); err != nil {
		t.Errorf("row should be on the clock's day: %v", err)
	}
}

func TestCloseAbsences_BadDate(t *testing.T) {
	store := newMemStore()
	svc, _ := testService(store, twoSubjects())

	if _, err := svc.CloseAbsences("02/03/2026"); !errors.Is(err, ErrValidation) {
		t.Errorf("bad date should be ErrValidation, got %v", err)
	}
}

// สแกนช้าหลังปิดยอด: แถวขาดเดิมถูกทับเป็นมา (last-scan-wins บน key เดียวกัน)
func TestLateScanAfterCloseOverwritesAbsentRow(t *testing.T) {
	store := newMemStore()
	svc, _ := testService(store, twoSubjects())

	if _, err := svc.CloseAbsences("2026-03-02"); err != nil {
		t.Fatal(err)
	}
	scan := time.Date(2026, 3, 2, 14, 0, 0, 0, time.Local)
	rec, err := svc.RecordScan(models.KindLearner, 1, scan)
	if err != nil {
		t.Fatal(err)
	}
	if !rec.IsPresent || !rec.IsLate {
		t.Errorf("late scan should flip the closed row to present+late, got %+v", rec)
	}
	if n := store.rowCount(models.KindLearner, 1, "2026-03-02"); n != 1 {
		t.Errorf("still exactly one row per subject-day, got %d", n)
	}
}
