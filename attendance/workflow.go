package attendance

import (
	"fmt"
	"strings"

	"github.com/patiponrmutl/AcademyTrack/models"
)

// SubmitJustification ยื่นคำชี้แจงของแถวขาด/มาสาย
// อนุญาตเฉพาะจากสถานะ TO_JUSTIFY (ยังไม่เคยยื่น) หรือ REJECTED (ยื่นใหม่ได้)
// เอกสารแนบเป็น URL ที่ฝั่ง upload ภายนอกออกให้ ไม่บังคับ
func (s *Service) SubmitJustification(recordID, text, documentURL string) (*models.AttendanceRecord, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: justification text is required", ErrValidation)
	}

	rec, err := s.store.FindByID(recordID)
	if err != nil {
		return nil, err
	}

	switch st := DeriveStatus(rec); st {
	case models.StatusToJustify, models.StatusRejected:
		// ผ่าน
	default:
		return nil, fmt.Errorf("%w: cannot submit justification from %s", ErrInvalidState, st)
	}

	rec.Justification = text
	if strings.TrimSpace(documentURL) != "" {
		rec.DocumentURL = strings.TrimSpace(documentURL)
	}
	rec.Status = models.StatusPending
	if err := s.store.Save(rec); err != nil {
		return nil, err
	}
	out := *rec
	return &out, nil
}

// Decide อนุมัติ/ปฏิเสธใบชี้แจง — ทำได้เฉพาะจาก PENDING
// อนุมัติซ้ำบนแถวที่ APPROVED แล้วถือเป็น conflict ไม่ใช่ no-op
func (s *Service) Decide(recordID string, approve bool) (*models.AttendanceRecord, error) {
	rec, err := s.store.FindByID(recordID)
	if err != nil {
		return nil, err
	}

	if st := DeriveStatus(rec); st != models.StatusPending {
		return nil, fmt.Errorf("%w: cannot decide justification from %s", ErrInvalidState, st)
	}

	if approve {
		rec.Status = models.StatusApproved
	} else {
		rec.Status = models.StatusRejected
	}
	if err := s.store.Save(rec); err != nil {
		return nil, err
	}
	s.notifier.JustificationDecided(rec, approve)
	out := *rec
	return &out, nil
}

// PendingJustifications คืนจำนวนใบชี้แจงที่รอเจ้าหน้าที่ตัดสิน (badge บนหน้าจอ)
func (s *Service) PendingJustifications() (int64, error) {
	return s.store.CountPendingJustifications()
}
