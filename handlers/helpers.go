package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/patiponrmutl/AcademyTrack/attendance"
)

// แปลง string -> int; ถ้าแปลงไม่ได้ให้คืนค่าเริ่มต้น
func atoiOr(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

// map error จากชั้น attendance → HTTP ตาม taxonomy เดียวทั้งระบบ
// NotFound=404, Validation=400, InvalidState=409 (ผู้ใช้เห็นเป็น conflict),
// StoreUnavailable=503 (ให้หน้าเคาน์เตอร์สแกนซ้ำเอง ไม่ retry เงียบ ๆ)
func domainJSON(c echo.Context, err error) error {
	switch {
	case errors.Is(err, attendance.ErrSubjectNotFound),
		errors.Is(err, attendance.ErrRecordNotFound):
		return c.JSON(http.StatusNotFound, map[string]any{"error": "NOT_FOUND", "detail": err.Error()})
	case errors.Is(err, attendance.ErrValidation):
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "VALIDATION_FAILED", "detail": err.Error()})
	case errors.Is(err, attendance.ErrInvalidState):
		return c.JSON(http.StatusConflict, map[string]any{"error": "INVALID_STATE", "detail": err.Error()})
	case errors.Is(err, attendance.ErrStoreUnavailable):
		return c.JSON(http.StatusServiceUnavailable, map[string]any{"error": "STORE_UNAVAILABLE"})
	default:
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
}
