package attendance

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/patiponrmutl/AcademyTrack/models"
)

// GormStore คือ Store จริงบน Postgres ผ่าน GORM
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore { return &GormStore{db: db} }

// แปลง error ของ GORM เข้า taxonomy ของเรา
func storeErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrRecordNotFound
	}
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}

var subjectDayKey = []clause.Column{
	{Name: "subject_kind"}, {Name: "subject_id"}, {Name: "date"},
}

func (s *GormStore) FindByID(id string) (*models.AttendanceRecord, error) {
	var rec models.AttendanceRecord
	if err := s.db.First(&rec, "id = ?", id).Error; err != nil {
		return nil, storeErr(err)
	}
	return &rec, nil
}

func (s *GormStore) FindBySubjectDay(kind models.SubjectKind, subjectID uint, date string) (*models.AttendanceRecord, error) {
	var rec models.AttendanceRecord
	err := s.db.
		Where("subject_kind = ? AND subject_id = ? AND date = ?", kind, subjectID, date).
		First(&rec).Error
	if err != nil {
		return nil, storeErr(err)
	}
	return &rec, nil
}

func (s *GormStore) UpsertScan(rec *models.AttendanceRecord) (*models.AttendanceRecord, error) {
	// ชนกับ unique key (kind, subject, date) = สแกนซ้ำวันเดิม → ทับเฉพาะฟิลด์สแกน
	// คอลัมน์ใบชี้แจง/สถานะไม่ถูกแตะ Postgres เป็นคน serialize การชนให้
	err := s.db.Clauses(clause.OnConflict{
		Columns: subjectDayKey,
		DoUpdates: clause.Assignments(map[string]any{
			"is_present": rec.IsPresent,
			"is_late":    rec.IsLate,
			"scan_time":  rec.ScanTime,
			"updated_at": gorm.Expr("NOW()"),
		}),
	}).Create(rec).Error
	if err != nil {
		return nil, storeErr(err)
	}
	// ตอน conflict แถวจริงใน DB ใช้ id เดิม ไม่ใช่ id ที่เพิ่ง gen — อ่านกลับเสมอ
	return s.FindBySubjectDay(rec.SubjectKind, rec.SubjectID, rec.Date)
}

func (s *GormStore) CreateIfMissing(rec *models.AttendanceRecord) (bool, error) {
	res := s.db.Clauses(clause.OnConflict{
		Columns:   subjectDayKey,
		DoNothing: true,
	}).Create(rec)
	if res.Error != nil {
		return false, storeErr(res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (s *GormStore) Save(rec *models.AttendanceRecord) error {
	if err := s.db.Save(rec).Error; err != nil {
		return storeErr(err)
	}
	return nil
}

func (s *GormStore) LatestScans(kind models.SubjectKind, limit int) ([]models.AttendanceRecord, error) {
	var rows []models.AttendanceRecord
	err := s.db.
		Where("subject_kind = ? AND is_present = ?", kind, true).
		Order("scan_time DESC, id DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, storeErr(err)
	}
	return rows, nil
}

func (s *GormStore) CountPendingJustifications() (int64, error) {
	var n int64
	err := s.db.Model(&models.AttendanceRecord{}).
		Where("status = ?", models.StatusPending).
		Count(&n).Error
	if err != nil {
		return 0, storeErr(err)
	}
	return n, nil
}

func (s *GormStore) CountsByDate(from, to string) ([]DateCounts, error) {
	var rows []DateCounts
	err := s.db.Model(&models.AttendanceRecord{}).
		Select(`date,
			SUM(CASE WHEN is_present AND NOT is_late THEN 1 ELSE 0 END) AS present,
			SUM(CASE WHEN is_present AND is_late THEN 1 ELSE 0 END) AS late,
			SUM(CASE WHEN NOT is_present THEN 1 ELSE 0 END) AS absent`).
		Where("date >= ? AND date <= ?", from, to).
		Group("date").
		Order("date ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, storeErr(err)
	}
	return rows, nil
}

// GormDirectory อ่านทะเบียน learner/coach จากตารางเดียวกับฝั่ง CRUD
type GormDirectory struct {
	db *gorm.DB
}

func NewGormDirectory(db *gorm.DB) *GormDirectory { return &GormDirectory{db: db} }

func (d *GormDirectory) Resolve(kind models.SubjectKind, subjectID uint) (*Subject, error) {
	switch kind {
	case models.KindLearner:
		var l models.Learner
		err := d.db.Where("id = ? AND status = ?", subjectID, "active").First(&l).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: learner #%d", ErrSubjectNotFound, subjectID)
			}
			return nil, storeErr(err)
		}
		return &Subject{Kind: kind, ID: l.ID, Code: l.LearnerCode, Name: l.FirstName + " " + l.LastName}, nil
	case models.KindCoach:
		var co models.Coach
		err := d.db.Where("id = ? AND status = ?", subjectID, "active").First(&co).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: coach #%d", ErrSubjectNotFound, subjectID)
			}
			return nil, storeErr(err)
		}
		return &Subject{Kind: kind, ID: co.ID, Code: co.CoachCode, Name: co.FirstName + " " + co.LastName}, nil
	default:
		return nil, fmt.Errorf("%w: unknown subject kind %q", ErrValidation, kind)
	}
}

func (d *GormDirectory) ActiveSubjects() ([]Subject, error) {
	var learners []models.Learner
	if err := d.db.Where("status = ?", "active").Find(&learners).Error; err != nil {
		return nil, storeErr(err)
	}
	var coaches []models.Coach
	if err := d.db.Where("status = ?", "active").Find(&coaches).Error; err != nil {
		return nil, storeErr(err)
	}

	out := make([]Subject, 0, len(learners)+len(coaches))
	for _, l := range learners {
		out = append(out, Subject{Kind: models.KindLearner, ID: l.ID, Code: l.LearnerCode, Name: l.FirstName + " " + l.LastName})
	}
	for _, co := range coaches {
		out = append(out, Subject{Kind: models.KindCoach, ID: co.ID, Code: co.CoachCode, Name: co.FirstName + " " + co.LastName})
	}
	return out, nil
}

func (d *GormDirectory) CountActive() (int64, error) {
	var nl, nc int64
	if err := d.db.Model(&models.Learner{}).Where("status = ?", "active").Count(&nl).Error; err != nil {
		return 0, storeErr(err)
	}
	if err := d.db.Model(&models.Coach{}).Where("status = ?", "active").Count(&nc).Error; err != nil {
		return 0, storeErr(err)
	}
	return nl + nc, nil
}
