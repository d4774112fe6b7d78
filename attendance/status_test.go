package attendance

import (
	"testing"

	"github.com/patiponrmutl/AcademyTrack/models"
)

func TestDeriveStatus(t *testing.T) {
	cases := []struct {
		name string
		rec  models.AttendanceRecord
		want string
	}{
		{
			name: "present on time has no status",
			rec:  models.AttendanceRecord{IsPresent: true, IsLate: false, Status: models.StatusNone},
			want: models.StatusNone,
		},
		{
			name: "late without justification must justify",
			rec:  models.AttendanceRecord{IsPresent: true, IsLate: true, Status: models.StatusNone},
			want: models.StatusToJustify,
		},
		{
			name: "absent without justification must justify",
			rec:  models.AttendanceRecord{IsPresent: false, Status: models.StatusNone},
			want: models.StatusToJustify,
		},
		{
			name: "stored pending wins over derivation",
			rec:  models.AttendanceRecord{IsPresent: false, Justification: "sick", Status: models.StatusPending},
			want: models.StatusPending,
		},
		{
			name: "approved stays approved",
			rec:  models.AttendanceRecord{IsPresent: false, Justification: "sick", Status: models.StatusApproved},
			want: models.StatusApproved,
		},
		{
			name: "rejected stays rejected (resubmission allowed elsewhere)",
			rec:  models.AttendanceRecord{IsLate: true, IsPresent: true, Justification: "traffic", Status: models.StatusRejected},
			want: models.StatusRejected,
		},
		{
			name: "whitespace-only justification does not count as submitted",
			rec:  models.AttendanceRecord{IsPresent: false, Justification: "   ", Status: models.StatusNone},
			want: models.StatusToJustify,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DeriveStatus(&tc.rec); got != tc.want {
				t.Errorf("DeriveStatus = %q, want %q", got, tc.want)
			}
		})
	}
}
