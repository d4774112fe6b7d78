package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/patiponrmutl/AcademyTrack/attendance"
	"github.com/patiponrmutl/AcademyTrack/models"
)

type ScanHandler struct {
	svc *attendance.Service
}

func NewScanHandler(svc *attendance.Service) *ScanHandler { return &ScanHandler{svc: svc} }

// POST /terminal/scan  { subject_kind: "learner"|"coach", subject_id: 123 }
// เครื่องอ่าน QR หน้าเคาน์เตอร์ decode เสร็จแล้วส่งมาเป็น kind+id
// พัง = ตอบ error ทันทีให้เจ้าหน้าที่สั่งสแกนซ้ำ ไม่มี retry ฝั่งเรา
func (h *ScanHandler) Scan(c echo.Context) error {
	var req struct {
		SubjectKind string `json:"subject_kind"`
		SubjectID   uint   `json:"subject_id"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	kind := models.SubjectKind(strings.TrimSpace(strings.ToLower(req.SubjectKind)))
	if req.SubjectID == 0 || kind == "" {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "MISSING_FIELDS"})
	}

	rec, err := h.svc.RecordScanNow(kind, req.SubjectID)
	if err != nil {
		return domainJSON(c, err)
	}
	return c.JSON(http.StatusOK, rec)
}

// GET /terminal/scans/latest?limit=20
// จอหน้าเคาน์เตอร์โชว์รายการสแกนล่าสุดแยก learner/coach ใหม่สุดก่อน
func (h *ScanHandler) Latest(c echo.Context) error {
	limit := atoiOr(strings.TrimSpace(c.QueryParam("limit")), 20)
	out, err := h.svc.LatestScans(limit)
	if err != nil {
		return domainJSON(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
