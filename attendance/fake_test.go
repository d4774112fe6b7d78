package attendance

import (
	"fmt"
	"sort"
	"sync"

	"github.com/patiponrmutl/AcademyTrack/models"
)

// ตัวปลอมสำหรับเทสต์: store ในหน่วยความจำ + directory แบบ fix รายชื่อ
// สัญญา error เดียวกับของจริง (ErrRecordNotFound / ErrStoreUnavailable)

type memStore struct {
	mu   sync.Mutex
	rows map[string]*models.AttendanceRecord // key = record id

	// สั่งให้เขียนของ subject นี้พังเพื่อเทสต์ partial failure ("kind/id")
	failWrite map[string]bool
}

func newMemStore() *memStore {
	return &memStore{
		rows:      map[string]*models.AttendanceRecord{},
		failWrite: map[string]bool{},
	}
}

func subjKey(kind models.SubjectKind, id uint) string {
	return fmt.Sprintf("%s/%d", kind, id)
}

func (s *memStore) findSubjectDay(kind models.SubjectKind, id uint, date string) *models.AttendanceRecord {
	for _, r := range s.rows {
		if r.SubjectKind == kind && r.SubjectID == id && r.Date == date {
			return r
		}
	}
	return nil
}

func (s *memStore) FindByID(id string) (*models.AttendanceRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rows[id]
	if !ok {
		return nil, ErrRecordNotFound
	}
	cp := *r
	return &cp, nil
}

func (s *memStore) FindBySubjectDay(kind models.SubjectKind, id uint, date string) (*models.AttendanceRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r := s.findSubjectDay(kind, id, date); r != nil {
		cp := *r
		return &cp, nil
	}
	return nil, ErrRecordNotFound
}

func (s *memStore) UpsertScan(rec *models.AttendanceRecord) (*models.AttendanceRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWrite[subjKey(rec.SubjectKind, rec.SubjectID)] {
		return nil, fmt.Errorf("%w: injected failure", ErrStoreUnavailable)
	}
	if existing := s.findSubjectDay(rec.SubjectKind, rec.SubjectID, rec.Date); existing != nil {
		existing.IsPresent = rec.IsPresent
		existing.IsLate = rec.IsLate
		existing.ScanTime = rec.ScanTime
		cp := *existing
		return &cp, nil
	}
	cp := *rec
	s.rows[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (s *memStore) CreateIfMissing(rec *models.AttendanceRecord) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWrite[subjKey(rec.SubjectKind, rec.SubjectID)] {
		return false, fmt.Errorf("%w: injected failure", ErrStoreUnavailable)
	}
	if s.findSubjectDay(rec.SubjectKind, rec.SubjectID, rec.Date) != nil {
		return false, nil
	}
	cp := *rec
	s.rows[cp.ID] = &cp
	return true, nil
}

func (s *memStore) Save(rec *models.AttendanceRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[rec.ID]; !ok {
		return ErrRecordNotFound
	}
	cp := *rec
	s.rows[cp.ID] = &cp
	return nil
}

func (s *memStore) LatestScans(kind models.SubjectKind, limit int) ([]models.AttendanceRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.AttendanceRecord
	for _, r := range s.rows {
		if r.SubjectKind == kind && r.IsPresent && r.ScanTime != nil {
			out = append(out, *r)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ScanTime.After(*out[j].ScanTime)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *memStore) CountPendingJustifications() (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for _, r := range s.rows {
		if r.Status == models.StatusPending {
			n++
		}
	}
	return n, nil
}

func (s *memStore) CountsByDate(from, to string) ([]DateCounts, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	byDate := map[string]*DateCounts{}
	for _, r := range s.rows {
		if r.Date < from || r.Date > to {
			continue
		}
		dc, ok := byDate[r.Date]
		if !ok {
			dc = &DateCounts{Date: r.Date}
			byDate[r.Date] = dc
		}
		switch {
		case r.IsPresent && !r.IsLate:
			dc.Present++
		case r.IsPresent && r.IsLate:
			dc.Late++
		default:
			dc.Absent++
		}
	}
	var out []DateCounts
	for _, dc := range byDate {
		out = append(out, *dc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

// จำนวนแถวของ subject ในวันหนึ่ง — ใช้เช็ค invariant "1 แถวต่อคนต่อวัน"
func (s *memStore) rowCount(kind models.SubjectKind, id uint, date string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, r := range s.rows {
		if r.SubjectKind == kind && r.SubjectID == id && r.Date == date {
			n++
		}
	}
	return n
}

func (s *memStore) totalRows() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rows)
}

type memDirectory struct {
	subjects []Subject
}

func (d *memDirectory) Resolve(kind models.SubjectKind, id uint) (*Subject, error) {
	for _, s := range d.subjects {
		if s.Kind == kind && s.ID == id {
			cp := s
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("%w: %s #%d", ErrSubjectNotFound, kind, id)
}

func (d *memDirectory) ActiveSubjects() ([]Subject, error) {
	return append([]Subject(nil), d.subjects...), nil
}

func (d *memDirectory) CountActive() (int64, error) {
	return int64(len(d.subjects)), nil
}

type memNotifier struct {
	decided []string // "recordID:approved|rejected"
}

func (n *memNotifier) JustificationDecided(rec *models.AttendanceRecord, approved bool) {
	d := "rejected"
	if approved {
		d = "approved"
	}
	n.decided = append(n.decided, rec.ID+":"+d)
}
