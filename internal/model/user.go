package model

import "time"

// User: серверная модель пользователя. Email служит логином.
type User struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	Username string `gorm:"size:100;uniqueIndex;not null"`
	Email    string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"` // bcrypt hash

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
