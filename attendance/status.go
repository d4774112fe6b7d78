package attendance

import (
	"strings"

	"github.com/patiponrmutl/AcademyTrack/models"
)

// DeriveStatus คำนวณสถานะที่ผู้ใช้เห็นจริงจากแถวใน DB
// TO_JUSTIFY ไม่ถูกเก็บลงคอลัมน์ status — มันคือแถว "ขาดหรือมาสาย"
// ที่ยังไม่เคยส่งคำชี้แจง จุดคำนวณมีที่เดียวตรงนี้ กันหลาย call site ตีความไม่ตรงกัน
func DeriveStatus(r *models.AttendanceRecord) string {
	if r.Status != models.StatusNone {
		return r.Status
	}
	if (!r.IsPresent || r.IsLate) && strings.TrimSpace(r.Justification) == "" {
		return models.StatusToJustify
	}
	return models.StatusNone
}

// WithDerivedStatus คืนสำเนาแถวที่ field Status ถูกแทนด้วยสถานะที่คำนวณแล้ว
// (ใช้ตอนส่งออกทาง API — ค่าใน DB ไม่ถูกแตะ)
func WithDerivedStatus(r models.AttendanceRecord) models.AttendanceRecord {
	r.Status = DeriveStatus(&r)
	return r
}
