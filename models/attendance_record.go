package models

import "time"

// ชนิดของผู้ถูกบันทึกเวลา
type SubjectKind string

const (
	KindLearner SubjectKind = "learner"
	KindCoach   SubjectKind = "coach"
)

func (k SubjectKind) Valid() bool {
	return k == KindLearner || k == KindCoach
}

// สถานะใบชี้แจงของแถว attendance (TO_JUSTIFY ไม่เก็บลง DB — คำนวณตอนอ่าน)
const (
	StatusNone      = "NONE"
	StatusToJustify = "TO_JUSTIFY"
	StatusPending   = "PENDING"
	StatusApproved  = "APPROVED"
	StatusRejected  = "REJECTED"
)

// บันทึกการเข้าประจำวัน: 1 แถวต่อ (kind, subject, date) เสมอ
// บังคับด้วย uniqueIndex ที่ระดับ DB เพื่อกัน race ระหว่างสแกนกับงานปิดยอดขาด
type AttendanceRecord struct {
	ID          string      `json:"id" gorm:"primaryKey;size:36"`
	SubjectKind SubjectKind `json:"subject_kind" gorm:"size:10;not null;uniqueIndex:uq_subject_day"`
	SubjectID   uint        `json:"subject_id" gorm:"not null;uniqueIndex:uq_subject_day"`
	Date        string      `json:"date" gorm:"size:10;not null;uniqueIndex:uq_subject_day"` // YYYY-MM-DD

	IsPresent bool       `json:"is_present"`
	IsLate    bool       `json:"is_late"`
	ScanTime  *time.Time `json:"scan_time,omitempty"` // nil = ไม่เคยสแกนวันนั้น

	Justification string `json:"justification" gorm:"type:text"`
	DocumentURL   string `json:"document_url" gorm:"size:255"`
	Status        string `json:"status" gorm:"size:20;not null;default:NONE"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
