package attendance

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"github.com/patiponrmutl/AcademyTrack/models"
)

// CloseAbsences สร้างแถว "ขาด" ให้ทุกคนที่ยัง active แต่ไม่มีแถวของวันนั้น
// เปลี่ยนความเงียบให้เป็นข้อมูลขาดที่ query ได้จริง
// รันซ้ำวันเดิมได้ — รอบสองจะไม่เหลืออะไรให้ปิด (CreateIfMissing คืน false)
// คนไหนปิดไม่สำเร็จ log แล้วไปต่อ ไม่ abort ทั้งชุด — รอบหน้าเก็บตกเอง
func (s *Service) CloseAbsences(date string) (closed int, err error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return 0, fmt.Errorf("%w: bad date %q (want YYYY-MM-DD)", ErrValidation, date)
	}
	subjects, err := s.dir.ActiveSubjects()
	if err != nil {
		return 0, err
	}

	failed := 0
	for _, subj := range subjects {
		rec := &models.AttendanceRecord{
			ID:          uuid.NewString(),
			SubjectKind: subj.Kind,
			SubjectID:   subj.ID,
			Date:        date,
			IsPresent:   false,
			IsLate:      false,
			Status:      models.StatusNone,
		}
		created, err := s.store.CreateIfMissing(rec)
		if err != nil {
			log.Printf("[ABSENCE-CLOSER] close %s #%d on %s failed: %v", subj.Kind, subj.ID, date, err)
			failed++
			continue
		}
		if created {
			closed++
		}
	}
	if failed > 0 {
		log.Printf("[ABSENCE-CLOSER] %d subject(s) failed on %s, will be retried next run", failed, date)
	}
	return closed, nil
}

// CloseAbsencesForToday คือ entrypoint ของ cron — "วันนี้" มาจากนาฬิกาของ Service
func (s *Service) CloseAbsencesForToday() (int, error) {
	return s.CloseAbsences(DayOf(s.now()))
}

// StartCloserCron ตั้งงานปิดยอดขาดตามตาราง cron (ค่าเริ่มต้น จันทร์-ศุกร์ 13:00)
// SkipIfStillRunning กันรอบใหม่ซ้อนรอบเก่าที่ยังไม่จบ
func StartCloserCron(svc *Service, schedule string) (*cron.Cron, error) {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))
	_, err := c.AddFunc(schedule, func() {
		n, err := svc.CloseAbsencesForToday()
		if err != nil {
			log.Printf("[ABSENCE-CLOSER] run failed: %v", err)
			return
		}
		log.Printf("[ABSENCE-CLOSER] closed %d subject(s) as absent", n)
	})
	if err != nil {
		return nil, err
	}
	log.Printf("[ABSENCE-CLOSER] started schedule=%q", schedule)
	c.Start()
	return c, nil
}
