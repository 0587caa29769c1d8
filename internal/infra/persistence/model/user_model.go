package model

import (
	"time"
)

// UserModel mirrors the 'users' table created by the embedded migrations.
type UserModel struct {
	ID               int64     `gorm:"primaryKey;autoIncrement"`
	FirstName        string    `gorm:"type:varchar(100);not null"`
	LastName         *string   `gorm:"type:varchar(100)"`
	Email            string    `gorm:"type:varchar(255);not null"`
	PasswordHash     string    `gorm:"type:varchar(255);not null"`
	Gender           *string   `gorm:"type:varchar(10)"`
	Photo            *string   `gorm:"type:varchar(255)"`
	RegistrationDate time.Time `gorm:"not null;default:now();<-:create"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
