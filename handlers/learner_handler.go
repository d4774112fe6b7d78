package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/patiponrmutl/AcademyTrack/database"
	"github.com/patiponrmutl/AcademyTrack/models"
)

// validator ตัวเดียวใช้ร่วมกันทุก handler (thread-safe)
var validate = validator.New()

type LearnerHandler struct{}

func NewLearnerHandler() *LearnerHandler { return &LearnerHandler{} }

type learnerPayload struct {
	LearnerCode string `json:"learner_code" validate:"required,max=20"`
	Prefix      string `json:"prefix"       validate:"max=20"`
	FirstName   string `json:"first_name"   validate:"required,max=50"`
	LastName    string `json:"last_name"    validate:"required,max=50"`
	Promotion   string `json:"promotion"    validate:"required,max=50"`
	Phone       string `json:"phone"        validate:"max=15"`
	Status      string `json:"status"       validate:"required,oneof=active left suspended"`
}

func (p *learnerPayload) normalize() {
	p.LearnerCode = strings.TrimSpace(p.LearnerCode)
	p.Prefix = strings.TrimSpace(p.Prefix)
	p.FirstName = strings.Join(strings.Fields(p.FirstName), " ")
	p.LastName = strings.Join(strings.Fields(p.LastName), " ")
	p.Promotion = strings.TrimSpace(p.Promotion)
	p.Phone = strings.TrimSpace(p.Phone)
	p.Status = strings.TrimSpace(p.Status)
}

// GET /staff/learners?promotion=&status=&q=
func (h *LearnerHandler) List(c echo.Context) error {
	promotion := strings.TrimSpace(c.QueryParam("promotion"))
	status := strings.TrimSpace(c.QueryParam("status"))
	q := strings.TrimSpace(c.QueryParam("q"))

	tx := database.DB.Model(&models.Learner{})
	if promotion != "" {
		tx = tx.Where("promotion = ?", promotion)
	}
	if status != "" {
		tx = tx.Where("status = ?", status)
	}
	if q != "" {
		like := "%" + strings.ToLower(q) + "%"
		tx = tx.Where("LOWER(learner_code) LIKE ? OR LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ?",
			like, like, like)
	}

	var rows []models.Learner
	if err := tx.Order("learner_code ASC").Find(&rows).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rows)
}

// POST /staff/learners
func (h *LearnerHandler) Create(c echo.Context) error {
	var p learnerPayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	p.normalize()
	if err := validate.Struct(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "VALIDATION_FAILED", "detail": err.Error()})
	}

	// กันรหัสซ้ำ
	var dup models.Learner
	if err := database.DB.Where("learner_code = ?", p.LearnerCode).First(&dup).Error; err == nil {
		return c.JSON(http.StatusConflict, map[string]any{"error": "CODE_EXISTS"})
	}

	rec := models.Learner{
		LearnerCode: p.LearnerCode,
		Prefix:      p.Prefix,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		Promotion:   p.Promotion,
		Phone:       p.Phone,
		Status:      p.Status,
	}
	if err := database.DB.Create(&rec).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, rec)
}

// PUT /staff/learners/:id
func (h *LearnerHandler) Update(c echo.Context) error {
	id := c.Param("id")
	var rec models.Learner
	if err := database.DB.First(&rec, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
		}
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}

	var p learnerPayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	p.normalize()
	if err := validate.Struct(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "VALIDATION_FAILED", "detail": err.Error()})
	}

	rec.LearnerCode = p.LearnerCode
	rec.Prefix = p.Prefix
	rec.FirstName = p.FirstName
	rec.LastName = p.LastName
	rec.Promotion = p.Promotion
	rec.Phone = p.Phone
	rec.Status = p.Status
	if err := database.DB.Save(&rec).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rec)
}

// DELETE /staff/learners/:id
// หมายเหตุ: แถว attendance ของคนนี้ไม่ถูกลบตาม — เป็น audit trail
// ทางปฏิบัติควรเปลี่ยน status เป็น left มากกว่าลบจริง
func (h *LearnerHandler) Delete(c echo.Context) error {
	id := c.Param("id")
	res := database.DB.Delete(&models.Learner{}, "id = ?", id)
	if res.Error != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": res.Error.Error()})
	}
	if res.RowsAffected == 0 {
		return c.JSON(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
	}
	return c.JSON(http.StatusOK, map[string]any{"ok": true})
}
