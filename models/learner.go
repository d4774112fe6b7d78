package models

import "time"

type Learner struct {
	ID          uint      `gorm:"primaryKey"                   json:"id"`
	LearnerCode string    `gorm:"size:20;uniqueIndex;not null" json:"learner_code"` // รหัสบนบัตร/QR
	Prefix      string    `gorm:"size:20"                      json:"prefix"`
	FirstName   string    `gorm:"size:50;not null"             json:"first_name"`
	LastName    string    `gorm:"size:50;not null"             json:"last_name"`
	Promotion   string    `gorm:"size:50;not null"             json:"promotion"` // รุ่น เช่น "2026-A"
	Phone       string    `gorm:"size:15"                      json:"phone"`
	Status      string    `gorm:"size:20;not null"             json:"status"` // active|left|suspended
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
