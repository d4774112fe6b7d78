package attendance

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/patiponrmutl/AcademyTrack/models"
)

// Service คือแกนกลางของ attendance ทั้งหมด: รับสแกน, workflow ใบชี้แจง,
// งานปิดยอดขาด และสถิติ — ทุกอย่างผ่าน Store/Directory ที่ฉีดเข้ามา
// เพื่อให้เทสต์รันบน fake store + นาฬิกา fix ได้
type Service struct {
	store    Store
	dir      Directory
	notifier Notifier
	cutoff   Cutoff
	now      func() time.Time
}

func NewService(store Store, dir Directory, notifier Notifier, cutoff Cutoff, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	if notifier == nil {
		notifier = LogNotifier{}
	}
	return &Service{store: store, dir: dir, notifier: notifier, cutoff: cutoff, now: now}
}

// RecordScan บันทึกสแกนหนึ่งครั้งของ subject ในวันของ scanTime
// สแกนซ้ำวันเดียวกัน (เช่น ออกไปแล้วเข้าใหม่) = ทับของเดิม ไม่สร้างแถวใหม่
// ตั้งใจให้ last-scan-wins ตามพฤติกรรมหน้าเคาน์เตอร์จริง ไม่ reject
func (s *Service) RecordScan(kind models.SubjectKind, subjectID uint, scanTime time.Time) (*models.AttendanceRecord, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: unknown subject kind %q", ErrValidation, kind)
	}
	if _, err := s.dir.Resolve(kind, subjectID); err != nil {
		return nil, err
	}

	rec := &models.AttendanceRecord{
		ID:          uuid.NewString(),
		SubjectKind: kind,
		SubjectID:   subjectID,
		Date:        DayOf(scanTime),
		IsPresent:   true,
		IsLate:      Classify(scanTime, s.cutoff),
		ScanTime:    &scanTime,
		Status:      models.StatusNone,
	}
	// store เป็นคนกันแถวซ้ำด้วย unique key — ไม่ใช้ lock ในโปรเซส
	// เพราะรันหลาย instance พร้อมกันได้
	saved, err := s.store.UpsertScan(rec)
	if err != nil {
		return nil, err
	}
	out := WithDerivedStatus(*saved)
	return &out, nil
}

// RecordScanNow คือทางลัดของ handler หน้าเคาน์เตอร์ — ใช้นาฬิกาของ Service
func (s *Service) RecordScanNow(kind models.SubjectKind, subjectID uint) (*models.AttendanceRecord, error) {
	return s.RecordScan(kind, subjectID, s.now())
}

// LatestScans รวมสแกนล่าสุดของทั้งสองฝั่งไว้ให้หน้าจอเคาน์เตอร์
type LatestScans struct {
	LearnerScans []models.AttendanceRecord `json:"learner_scans"`
	CoachScans   []models.AttendanceRecord `json:"coach_scans"`
}

func (s *Service) LatestScans(limit int) (*LatestScans, error) {
	if limit < 1 || limit > 100 {
		limit = 20
	}
	learners, err := s.store.LatestScans(models.KindLearner, limit)
	if err != nil {
		return nil, err
	}
	coaches, err := s.store.LatestScans(models.KindCoach, limit)
	if err != nil {
		return nil, err
	}
	out := &LatestScans{
		LearnerScans: make([]models.AttendanceRecord, 0, len(learners)),
		CoachScans:   make([]models.AttendanceRecord, 0, len(coaches)),
	}
	for _, r := range learners {
		out.LearnerScans = append(out.LearnerScans, WithDerivedStatus(r))
	}
	for _, r := range coaches {
		out.CoachScans = append(out.CoachScans, WithDerivedStatus(r))
	}
	return out, nil
}

// Record อ่านแถวเดียวตาม id (สถานะเป็นค่าที่คำนวณแล้ว)
func (s *Service) Record(id string) (*models.AttendanceRecord, error) {
	rec, err := s.store.FindByID(id)
	if err != nil {
		return nil, err
	}
	out := WithDerivedStatus(*rec)
	return &out, nil
}
