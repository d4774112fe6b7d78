package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/patiponrmutl/AcademyTrack/attendance"
)

type JustificationHandler struct {
	svc *attendance.Service
}

func NewJustificationHandler(svc *attendance.Service) *JustificationHandler {
	return &JustificationHandler{svc: svc}
}

// POST /justifications/:recordId  { text, document_url? }
// เจ้าของแถว (learner/coach) ยื่นคำชี้แจงการขาด/มาสาย
// document_url มาจากบริการ upload ภายนอก — เราเก็บแค่ URL
func (h *JustificationHandler) Submit(c echo.Context) error {
	recordID := strings.TrimSpace(c.Param("recordId"))
	var req struct {
		Text        string `json:"text"`
		DocumentURL string `json:"document_url"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	rec, err := h.svc.SubmitJustification(recordID, req.Text, req.DocumentURL)
	if err != nil {
		return domainJSON(c, err)
	}
	return c.JSON(http.StatusOK, rec)
}

// PATCH /staff/justifications/:recordId  { approve: true|false }
func (h *JustificationHandler) Decide(c echo.Context) error {
	recordID := strings.TrimSpace(c.Param("recordId"))
	var req struct {
		Approve *bool `json:"approve"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	if req.Approve == nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "MISSING_FIELDS"})
	}
	rec, err := h.svc.Decide(recordID, *req.Approve)
	if err != nil {
		return domainJSON(c, err)
	}
	return c.JSON(http.StatusOK, rec)
}

// GET /staff/justifications/pending-count — badge หน้าจอเจ้าหน้าที่
func (h *JustificationHandler) PendingCount(c echo.Context) error {
	n, err := h.svc.PendingJustifications()
	if err != nil {
		return domainJSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"count": n})
}

// GET /records/:recordId — อ่านแถวเดียว (สถานะเป็นค่า derive แล้ว)
func (h *JustificationHandler) Get(c echo.Context) error {
	rec, err := h.svc.Record(strings.TrimSpace(c.Param("recordId")))
	if err != nil {
		return domainJSON(c, err)
	}
	return c.JSON(http.StatusOK, rec)
}
