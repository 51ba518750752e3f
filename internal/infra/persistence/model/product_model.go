package model

import "time"

// ProductModel is the GORM-specific struct for the 'products' table.
type ProductModel struct {
	ID          string  `gorm:"type:uuid;primaryKey"`
	Name        string  `gorm:"type:varchar(255);not null"`
	Description string  `gorm:"type:text;not null;default:''"`
	Price       float64 `gorm:"type:numeric(12,2);not null"`
	Quantity    int     `gorm:"not null;default:0"`
	Unit        string  `gorm:"type:varchar(8);not null"`
	ImageURL    string  `gorm:"type:text;not null;default:''"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
