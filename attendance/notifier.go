package attendance

import (
	"log"

	"github.com/patiponrmutl/AcademyTrack/models"
)

// LogNotifier คือ Notifier แบบ log อย่างเดียว — ระบบแจ้งเตือนจริง (อีเมล/LINE)
// อยู่นอก repo นี้ แค่ต้องการให้ decision event ออกจาก workflow เสมอ
type LogNotifier struct{}

func (LogNotifier) JustificationDecided(rec *models.AttendanceRecord, approved bool) {
	decision := "rejected"
	if approved {
		decision = "approved"
	}
	log.Printf("[JUSTIFY] record=%s subject=%s/%d date=%s decision=%s",
		rec.ID, rec.SubjectKind, rec.SubjectID, rec.Date, decision)
}
