package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/patiponrmutl/AcademyTrack/attendance"
	"github.com/patiponrmutl/AcademyTrack/handlers"
	"github.com/patiponrmutl/AcademyTrack/middlewares"
)

// Register wires all HTTP routes.
func Register(e *echo.Echo, svc *attendance.Service, jwtSecret string) {
	// ===== Handlers (shared singletons) =====
	auth := handlers.NewAuthHandler(jwtSecret)
	scan := handlers.NewScanHandler(svc)
	just := handlers.NewJustificationHandler(svc)
	stats := handlers.NewStatsHandler(svc)
	lrn := handlers.NewLearnerHandler()
	coa := handlers.NewCoachHandler()

	// ===== Public =====
	e.GET("/health", handlers.Health)
	e.POST("/auth/login", auth.Login)

	authMW := middlewares.RequireAuth(jwtSecret)

	// ===== Terminal (เครื่องสแกนหน้าเคาน์เตอร์) =====
	terminal := e.Group("/terminal", authMW, middlewares.RequireRole("terminal", "staff", "admin"))
	terminal.POST("/scan", scan.Scan)
	terminal.GET("/scans/latest", scan.Latest)

	// ===== เจ้าของแถวยื่นคำชี้แจง (learner/coach login ผ่านระบบกลางของสถาบัน) =====
	me := e.Group("/me", authMW)
	me.GET("/records/:recordId", just.Get)
	me.POST("/justifications/:recordId", just.Submit)

	// ===== Staff =====
	staff := e.Group("/staff", authMW, middlewares.RequireRole("staff", "admin"))

	staff.PATCH("/justifications/:recordId", just.Decide)
	staff.GET("/justifications/pending-count", just.PendingCount)

	staff.GET("/stats/daily", stats.Daily)
	staff.GET("/stats/monthly", stats.Monthly)
	staff.GET("/stats/yearly", stats.Yearly)

	staff.PUT("/profile/password", auth.ChangePassword)

	// ทะเบียน learner/coach (ฝั่ง directory ที่ attendance ใช้ resolve)
	staff.GET("/learners", lrn.List)
	staff.POST("/learners", lrn.Create)
	staff.PUT("/learners/:id", lrn.Update)
	staff.DELETE("/learners/:id", lrn.Delete)

	staff.GET("/coaches", coa.List)
	staff.POST("/coaches", coa.Create)
	staff.PUT("/coaches/:id", coa.Update)
	staff.DELETE("/coaches/:id", coa.Delete)

	// ===== Admin =====
	admin := e.Group("/admin", authMW, middlewares.RequireRole("admin"))
	// ปิดยอดขาดด้วยมือ — ทางหนีไฟเวลา cron ไม่ได้รัน (เช่น deploy คร่อม 13:00)
	// idempotent: ยิงซ้ำวันเดิมไม่มีแถวเพิ่ม
	admin.POST("/close-absences", handlers.NewCloserHandler(svc).CloseToday)
}
