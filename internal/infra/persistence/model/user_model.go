// Package model holds the GORM persistence models mirroring the database schema.
package model

import (
	"time"
)

// UserModel mirrors the 'users' table. Phone number and email carry unique
// indexes; those indexes are the final backstop for the duplicate checks the
// account service runs inside its registration transaction.
type UserModel struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	FirstName    string    `gorm:"type:varchar(30);not null"`
	LastName     string    `gorm:"type:varchar(30);not null"`
	Dob          time.Time `gorm:"type:date;not null"`
	Address      string    `gorm:"type:varchar(50);not null"`
	City         string    `gorm:"type:varchar(30);not null"`
	State        string    `gorm:"type:varchar(2);not null"`
	Zip          string    `gorm:"type:varchar(5);not null"`
	PhoneNumber  string    `gorm:"type:varchar(15);unique;not null"`
	Email        string    `gorm:"type:varchar(40);unique;not null"`
	PasswordHash string    `gorm:"type:varchar(130);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	FavoriteDrinks []FavoriteDrinkModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	RefreshTokens  []RefreshTokenModel  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
