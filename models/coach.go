package models

import "time"

type Coach struct {
	ID        uint      `gorm:"primaryKey"                   json:"id"`
	CoachCode string    `gorm:"size:20;uniqueIndex;not null" json:"coach_code"`
	Prefix    string    `gorm:"size:20"                      json:"prefix"`
	FirstName string    `gorm:"size:50;not null"             json:"first_name"`
	LastName  string    `gorm:"size:50;not null"             json:"last_name"`
	Email     string    `gorm:"size:50;uniqueIndex;not null" json:"email"`
	Specialty string    `gorm:"size:50"                      json:"specialty"` // วิชา/สายที่สอน
	Status    string    `gorm:"size:20;not null"             json:"status"`    // active|left
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
