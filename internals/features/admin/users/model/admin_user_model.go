package model

import (
	"time"

	"github.com/google/uuid"
)

/* ===================== Model ===================== */

// AdminUser memetakan identitas auth ke hak admin. Keberadaan baris
// untuk user_id yang login adalah SATU-SATUNYA cek otorisasi.
type AdminUser struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID       uuid.UUID `gorm:"column:user_id;type:uuid;not null;uniqueIndex" json:"user_id"`
	Email        string    `gorm:"column:email;not null;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"column:password_hash;not null" json:"-"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (AdminUser) TableName() string { return "admin_users" }
