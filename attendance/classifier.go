package attendance

import (
	"fmt"
	"time"
)

// Cutoff คือเวลาตัดสายประจำวัน (ชั่วโมง:นาที ตามเวลาท้องถิ่น)
type Cutoff struct {
	Hour   int
	Minute int
}

// ParseCutoff อ่านรูปแบบ "HH:MM" เช่น "08:15"
func ParseCutoff(s string) (Cutoff, error) {
	var c Cutoff
	if _, err := fmt.Sscanf(s, "%d:%d", &c.Hour, &c.Minute); err != nil {
		return Cutoff{}, fmt.Errorf("%w: bad cutoff %q (want HH:MM)", ErrValidation, s)
	}
	if c.Hour < 0 || c.Hour > 23 || c.Minute < 0 || c.Minute > 59 {
		return Cutoff{}, fmt.Errorf("%w: bad cutoff %q (want HH:MM)", ErrValidation, s)
	}
	return c, nil
}

// OnDay คืนเวลาตัดสายบนวันเดียวกับ t (ใช้วันของเวลาสแกน ไม่ใช่ "ตอนนี้"
// เพื่อให้สแกนเดิม classify ได้ผลเดิมเสมอภายใต้เทสต์)
func (c Cutoff) OnDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), c.Hour, c.Minute, 0, 0, t.Location())
}

// Classify: สแกนหลังเวลาตัดสาย = มาสาย (เท่ากับเวลาตัดพอดี = ทัน)
func Classify(scanTime time.Time, cutoff Cutoff) (isLate bool) {
	return scanTime.After(cutoff.OnDay(scanTime))
}

// DayOf ตัดเวลาออก เหลือวันที่แบบ YYYY-MM-DD ที่ใช้เป็น key ใน DB
func DayOf(t time.Time) string {
	return t.Format("2006-01-02")
}
