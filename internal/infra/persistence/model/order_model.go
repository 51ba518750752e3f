package model

import "time"

// OrderModel is the GORM-specific struct for the 'orders' table. Product
// fields are copied at placement time, so the row has no foreign key to
// products.
type OrderModel struct {
	ID           string    `gorm:"type:uuid;primaryKey"`
	UserID       string    `gorm:"type:varchar(128);not null;index:idx_orders_user_delivery"`
	ProductID    string    `gorm:"type:uuid;not null"`
	ProductName  string    `gorm:"type:varchar(255);not null"`
	Price        float64   `gorm:"type:numeric(12,2);not null"`
	Unit         string    `gorm:"type:varchar(8);not null"`
	Quantity     int       `gorm:"not null"`
	TotalPrice   float64   `gorm:"type:numeric(12,2);not null"`
	DeliveryDate time.Time `gorm:"not null;index:idx_orders_user_delivery"`
	OrderedAt    time.Time `gorm:"not null;index"`
	Status       string    `gorm:"type:varchar(16);not null"`
	Payment      string    `gorm:"type:varchar(16);not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}
