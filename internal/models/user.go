// internal/models/user.go
package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

type User struct {
	BaseModel
	Username     string     `json:"username" gorm:"uniqueIndex;not null" validate:"required,min=3,max=50"`
	Email        string     `json:"email" gorm:"uniqueIndex;not null" validate:"required,email"`
	PasswordHash string     `json:"-" gorm:"not null"`
	Status       UserStatus `json:"status" gorm:"default:'active'"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`

	// Relationships
	Pages       []ProductPage `json:"pages,omitempty" gorm:"foreignKey:OwnerID"`
	Collections []Collection  `json:"collections,omitempty" gorm:"foreignKey:OwnerID"`
}

func (u *User) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

func (u *User) IsActive() bool {
	return u.Status == UserStatusActive
}
