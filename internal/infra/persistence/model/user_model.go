// Package model holds the GORM models of the PostgreSQL storage driver.
package model

import "time"

// UserModel is the GORM-specific struct for the 'users' table. The primary key
// is the UID issued by the identity service.
type UserModel struct {
	UID       string `gorm:"type:varchar(128);primaryKey"`
	Name      string `gorm:"type:varchar(255);not null;default:''"`
	Phone     string `gorm:"type:varchar(32);not null;index"`
	Address   string `gorm:"type:text;not null;default:''"`
	Role      string `gorm:"type:varchar(16);not null;default:'user';index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
