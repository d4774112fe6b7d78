package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/patiponrmutl/AcademyTrack/attendance"
)

type StatsHandler struct {
	svc *attendance.Service
}

func NewStatsHandler(svc *attendance.Service) *StatsHandler { return &StatsHandler{svc: svc} }

// GET /staff/stats/daily?date=YYYY-MM-DD (ว่าง = วันนี้)
// หมายเหตุ: ก่อนงานปิดยอดขาดของวันนั้นรัน absent ยังเป็น 0 — ดู field closed
func (h *StatsHandler) Daily(c echo.Context) error {
	date := strings.TrimSpace(c.QueryParam("date"))
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	out, err := h.svc.DailyStats(date)
	if err != nil {
		return domainJSON(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// GET /staff/stats/monthly?year=2026&month=8
func (h *StatsHandler) Monthly(c echo.Context) error {
	now := time.Now()
	year := atoiOr(strings.TrimSpace(c.QueryParam("year")), now.Year())
	month := atoiOr(strings.TrimSpace(c.QueryParam("month")), int(now.Month()))
	out, err := h.svc.MonthlyStats(year, month)
	if err != nil {
		return domainJSON(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// GET /staff/stats/yearly?year=2026
func (h *StatsHandler) Yearly(c echo.Context) error {
	year := atoiOr(strings.TrimSpace(c.QueryParam("year")), time.Now().Year())
	out, err := h.svc.YearlyStats(year)
	if err != nil {
		return domainJSON(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
