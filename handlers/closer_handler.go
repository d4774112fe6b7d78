package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/patiponrmutl/AcademyTrack/attendance"
)

type CloserHandler struct {
	svc *attendance.Service
}

func NewCloserHandler(svc *attendance.Service) *CloserHandler { return &CloserHandler{svc: svc} }

// POST /admin/close-absences?date=YYYY-MM-DD (ว่าง = วันนี้)
// ตัว cron เรียก logic เดียวกันนี้ — endpoint มีไว้สั่งมือ/เก็บตกย้อนหลัง
func (h *CloserHandler) CloseToday(c echo.Context) error {
	date := strings.TrimSpace(c.QueryParam("date"))

	var (
		n   int
		err error
	)
	if date == "" {
		n, err = h.svc.CloseAbsencesForToday()
	} else {
		n, err = h.svc.CloseAbsences(date)
	}
	if err != nil {
		return domainJSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"closed": n})
}
