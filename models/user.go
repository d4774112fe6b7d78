package models

import "time"

// บัญชีเจ้าหน้าที่ (staff = ฝ่ายธุรการ/ผู้ดูแล, terminal = เครื่องสแกนหน้าเคาน์เตอร์)
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"uniqueIndex;size:60;not null"`
	Password  string    `json:"-" gorm:"not null"`            // เก็บ bcrypt hash
	Role      string    `json:"role" gorm:"size:20;not null"` // "admin" | "staff" | "terminal"
	Name      string    `json:"name" gorm:"size:120"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
