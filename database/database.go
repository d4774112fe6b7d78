package database

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/patiponrmutl/AcademyTrack/config"
	"github.com/patiponrmutl/AcademyTrack/models"
)

var DB *gorm.DB

func Connect(cfg *config.Config) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	DB = db

	// ----- AutoMigrate โครงสร้างทั้งหมดของเรา -----
	// uniqueIndex ของ attendance_records (kind, subject, date) ถูกสร้างตรงนี้
	// เป็นตัวการันตีว่าไม่มีแถวซ้ำต่อคนต่อวัน แม้สแกนกับงานปิดยอดชนกัน
	if err := DB.AutoMigrate(
		&models.Learner{},
		&models.Coach{},
		&models.User{},
		&models.AttendanceRecord{},
	); err != nil {
		log.Fatalf("auto migrate failed: %v", err)
	}
}
