package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/patiponrmutl/AcademyTrack/attendance"
	"github.com/patiponrmutl/AcademyTrack/config"
	"github.com/patiponrmutl/AcademyTrack/database"
	"github.com/patiponrmutl/AcademyTrack/routes"
)

func main() {
	// .env ไม่มีไม่เป็นไร (บน server ใช้ env จริง)
	_ = godotenv.Load()

	cfg := config.Load()

	// เชื่อมต่อฐานข้อมูล (ถ้า DB ยังไม่ขึ้น โปรแกรมจะ error ทันที — เหมาะสำหรับ early fail)
	database.Connect(cfg)

	cutoff, err := attendance.ParseCutoff(cfg.ScanCutoff)
	if err != nil {
		log.Fatalf("bad SCAN_CUTOFF: %v", err)
	}

	svc := attendance.NewService(
		attendance.NewGormStore(database.DB),
		attendance.NewGormDirectory(database.DB),
		nil, // LogNotifier
		cutoff,
		nil, // time.Now
	)

	// งานปิดยอดขาด จันทร์-ศุกร์ 13:00 (ปรับผ่าน CLOSER_SCHEDULE ได้)
	if _, err := attendance.StartCloserCron(svc, cfg.CloserSchedule); err != nil {
		log.Fatalf("start closer cron failed: %v", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORS())

	routes.Register(e, svc, cfg.JWTSecret)

	addr := ":" + cfg.AppPort
	log.Printf("server listening at %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
