package attendance

import "github.com/patiponrmutl/AcademyTrack/models"

// Subject คือตัวแทนผู้ถูกบันทึกเวลา (learner หรือ coach) แบบย่อ
// พอสำหรับงาน attendance — ข้อมูลเต็มอยู่ฝั่ง directory
type Subject struct {
	Kind models.SubjectKind `json:"kind"`
	ID   uint               `json:"id"`
	Code string             `json:"code"`
	Name string             `json:"name"`
}

// DateCounts คือยอด present/late/absent ของหนึ่งวัน
type DateCounts struct {
	Date    string `json:"date"`
	Present int64  `json:"present"`
	Late    int64  `json:"late"`
	Absent  int64  `json:"absent"`
}

// Store คือชั้นเก็บแถว attendance — implement จริงด้วย GORM/Postgres,
// ในเทสต์ใช้ตัว in-memory แทน
// สัญญา error: แถวไม่เจอ → ErrRecordNotFound, DB พัง → ห่อด้วย ErrStoreUnavailable
type Store interface {
	FindByID(id string) (*models.AttendanceRecord, error)
	FindBySubjectDay(kind models.SubjectKind, subjectID uint, date string) (*models.AttendanceRecord, error)

	// UpsertScan เขียนผลสแกนแบบ last-scan-wins ลงแถวของ (kind, subject, date)
	// ถ้ามีแถวอยู่แล้วให้ทับเฉพาะ scan_time/is_late/is_present — ห้ามเกิดแถวซ้ำ
	// คืนแถวสุดท้ายตามจริงใน DB
	UpsertScan(rec *models.AttendanceRecord) (*models.AttendanceRecord, error)

	// CreateIfMissing สร้างแถวเฉพาะเมื่อยังไม่มีของ (kind, subject, date) นั้น
	// คืน false ถ้าแถวมีอยู่แล้ว — งานปิดยอดขาดพึ่งอันนี้เพื่อ idempotent
	CreateIfMissing(rec *models.AttendanceRecord) (created bool, err error)

	// Save อัปเดตแถวเดิมทั้งแถว (ใช้โดย workflow ใบชี้แจง)
	Save(rec *models.AttendanceRecord) error

	// LatestScans คืนแถวที่สแกนแล้วของ kind นั้น เรียงสแกนล่าสุดก่อน
	LatestScans(kind models.SubjectKind, limit int) ([]models.AttendanceRecord, error)

	CountPendingJustifications() (int64, error)

	// CountsByDate คืนยอดรายวันในช่วง [from, to] เรียงตามวัน (วันไหนไม่มีแถวจะไม่อยู่ในผล)
	CountsByDate(from, to string) ([]DateCounts, error)
}

// Directory คือฝั่งทะเบียน learner/coach — attendance อ่านอย่างเดียว
// Resolve เจอเฉพาะคนสถานะ active; คนที่ลาออก/พักการเรียนถือว่าไม่รู้จัก
type Directory interface {
	Resolve(kind models.SubjectKind, subjectID uint) (*Subject, error)
	ActiveSubjects() ([]Subject, error)
	CountActive() (int64, error)
}

// Notifier รับ event ตอนเจ้าหน้าที่ตัดสินใบชี้แจง (ระบบแจ้งเตือนจริงอยู่ภายนอก)
type Notifier interface {
	JustificationDecided(rec *models.AttendanceRecord, approved bool)
}
