package model

import (
	"time"

	"gorm.io/gorm"
)

// UserDeviceModel is the GORM-specific struct for the 'user_devices' table.
// It represents a user's device registered for push notifications.
type UserDeviceModel struct {
	ID        string `gorm:"type:uuid;primaryKey"`
	UserID    string `gorm:"type:varchar(128);not null;uniqueIndex:idx_user_devices_user_device"`
	FCMToken  string `gorm:"type:varchar(255);not null;index"`
	DeviceID  string `gorm:"type:varchar(255);not null;uniqueIndex:idx_user_devices_user_device"`
	Platform  string `gorm:"type:varchar(50);not null"`
	IsActive  bool   `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (UserDeviceModel) TableName() string {
	return "user_devices"
}

// All lists every model of the schema, in migration order.
func All() []any {
	return []any{&UserModel{}, &ProductModel{}, &OrderModel{}, &UserDeviceModel{}}
}
