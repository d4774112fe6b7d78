package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/patiponrmutl/AcademyTrack/database"
	"github.com/patiponrmutl/AcademyTrack/models"
)

type CoachHandler struct{}

func NewCoachHandler() *CoachHandler { return &CoachHandler{} }

type coachPayload struct {
	CoachCode string `json:"coach_code" validate:"required,max=20"`
	Prefix    string `json:"prefix"     validate:"max=20"`
	FirstName string `json:"first_name" validate:"required,max=50"`
	LastName  string `json:"last_name"  validate:"required,max=50"`
	Email     string `json:"email"      validate:"required,email,max=50"`
	Specialty string `json:"specialty"  validate:"max=50"`
	Status    string `json:"status"     validate:"required,oneof=active left"`
}

func (p *coachPayload) normalize() {
	p.CoachCode = strings.TrimSpace(p.CoachCode)
	p.Prefix = strings.TrimSpace(p.Prefix)
	p.FirstName = strings.Join(strings.Fields(p.FirstName), " ")
	p.LastName = strings.Join(strings.Fields(p.LastName), " ")
	p.Email = strings.TrimSpace(strings.ToLower(p.Email))
	p.Specialty = strings.TrimSpace(p.Specialty)
	p.Status = strings.TrimSpace(p.Status)
}

// GET /staff/coaches?status=&q=
func (h *CoachHandler) List(c echo.Context) error {
	status := strings.TrimSpace(c.QueryParam("status"))
	q := strings.TrimSpace(c.QueryParam("q"))

	tx := database.DB.Model(&models.Coach{})
	if status != "" {
		tx = tx.Where("status = ?", status)
	}
	if q != "" {
		like := "%" + strings.ToLower(q) + "%"
		tx = tx.Where("LOWER(coach_code) LIKE ? OR LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ?",
			like, like, like)
	}

	var rows []models.Coach
	if err := tx.Order("coach_code ASC").Find(&rows).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rows)
}

// POST /staff/coaches
func (h *CoachHandler) Create(c echo.Context) error {
	var p coachPayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	p.normalize()
	if err := validate.Struct(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "VALIDATION_FAILED", "detail": err.Error()})
	}

	var dup models.Coach
	if err := database.DB.Where("coach_code = ? OR email = ?", p.CoachCode, p.Email).First(&dup).Error; err == nil {
		return c.JSON(http.StatusConflict, map[string]any{"error": "CODE_OR_EMAIL_EXISTS"})
	}

	rec := models.Coach{
		CoachCode: p.CoachCode,
		Prefix:    p.Prefix,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Email:     p.Email,
		Specialty: p.Specialty,
		Status:    p.Status,
	}
	if err := database.DB.Create(&rec).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, rec)
}

// PUT /staff/coaches/:id
func (h *CoachHandler) Update(c echo.Context) error {
	id := c.Param("id")
	var rec models.Coach
	if err := database.DB.First(&rec, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
		}
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}

	var p coachPayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	p.normalize()
	if err := validate.Struct(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "VALIDATION_FAILED", "detail": err.Error()})
	}

	rec.CoachCode = p.CoachCode
	rec.Prefix = p.Prefix
	rec.FirstName = p.FirstName
	rec.LastName = p.LastName
	rec.Email = p.Email
	rec.Specialty = p.Specialty
	rec.Status = p.Status
	if err := database.DB.Save(&rec).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rec)
}

// DELETE /staff/coaches/:id
func (h *CoachHandler) Delete(c echo.Context) error {
	id := c.Param("id")
	res := database.DB.Delete(&models.Coach{}, "id = ?", id)
	if res.Error != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": res.Error.Error()})
	}
	if res.RowsAffected == 0 {
		return c.JSON(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
	}
	return c.JSON(http.StatusOK, map[string]any{"ok": true})
}
