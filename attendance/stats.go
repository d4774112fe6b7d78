package attendance

import (
	"fmt"
	"time"
)

// สถิติเป็น read-side ล้วน ๆ — นับจากแถวใน store ตามจริง
// ก่อนงานปิดยอดขาดรันของวันนั้น ยอด absent จะยังเป็น 0 เพราะยังไม่มีแถวขาด
// field closed บอกผู้เรียกว่าตัวเลขครบคนแล้วหรือยัง

type DailyStats struct {
	Date        string `json:"date"`
	Present     int64  `json:"present"`
	Late        int64  `json:"late"`
	Absent      int64  `json:"absent"`
	TotalActive int64  `json:"total_active"`
	Closed      bool   `json:"closed"`
}

type MonthlyStats struct {
	Year   int          `json:"year"`
	Month  int          `json:"month"`
	Days   []DateCounts `json:"days"`
	Totals DateCounts   `json:"totals"`
}

type MonthCounts struct {
	Month   string `json:"month"` // YYYY-MM
	Present int64  `json:"present"`
	Late    int64  `json:"late"`
	Absent  int64  `json:"absent"`
}

type YearlyStats struct {
	Year   int           `json:"year"`
	Months []MonthCounts `json:"months"`
}

func (s *Service) DailyStats(date string) (*DailyStats, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, fmt.Errorf("%w: bad date %q (want YYYY-MM-DD)", ErrValidation, date)
	}
	rows, err := s.store.CountsByDate(date, date)
	if err != nil {
		return nil, err
	}
	total, err := s.dir.CountActive()
	if err != nil {
		return nil, err
	}
	out := &DailyStats{Date: date, TotalActive: total}
	if len(rows) > 0 {
		out.Present = rows[0].Present
		out.Late = rows[0].Late
		out.Absent = rows[0].Absent
	}
	out.Closed = total > 0 && out.Present+out.Late+out.Absent >= total
	return out, nil
}

func (s *Service) MonthlyStats(year, month int) (*MonthlyStats, error) {
	if year < 2000 || year > 2100 || month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: bad year/month %d-%d", ErrValidation, year, month)
	}
	from := fmt.Sprintf("%04d-%02d-01", year, month)
	// วันสุดท้ายของเดือน: day 0 ของเดือนถัดไป
	last := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC)
	to := last.Format("2006-01-02")

	days, err := s.store.CountsByDate(from, to)
	if err != nil {
		return nil, err
	}
	out := &MonthlyStats{Year: year, Month: month, Days: days}
	for _, d := range days {
		out.Totals.Present += d.Present
		out.Totals.Late += d.Late
		out.Totals.Absent += d.Absent
	}
	return out, nil
}

func (s *Service) YearlyStats(year int) (*YearlyStats, error) {
	if year < 2000 || year > 2100 {
		return nil, fmt.Errorf("%w: bad year %d", ErrValidation, year)
	}
	from := fmt.Sprintf("%04d-01-01", year)
	to := fmt.Sprintf("%04d-12-31", year)
	days, err := s.store.CountsByDate(from, to)
	if err != nil {
		return nil, err
	}

	// จัดกลุ่มรายวัน → รายเดือน
	byMonth := map[string]*MonthCounts{}
	for _, d := range days {
		if len(d.Date) < 7 {
			continue
		}
		key := d.Date[:7]
		mc, ok := byMonth[key]
		if !ok {
			mc = &MonthCounts{Month: key}
			byMonth[key] = mc
		}
		mc.Present += d.Present
		mc.Late += d.Late
		mc.Absent += d.Absent
	}
	out := &YearlyStats{Year: year}
	for m := 1; m <= 12; m++ {
		key := fmt.Sprintf("%04d-%02d", year, m)
		if mc, ok := byMonth[key]; ok {
			out.Months = append(out.Months, *mc)
		}
	}
	return out, nil
}
