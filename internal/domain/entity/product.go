package entity

import "time"

// Unit is the measure a product is sold in.
type Unit string

const (
	// UnitKilogram sells by weight.
	UnitKilogram Unit = "kg"
	// UnitPieces sells by count.
	UnitPieces Unit = "pcs"
)

// IsValid checks if the Unit is a valid value.
func (u Unit) IsValid() bool {
	return u == UnitKilogram || u == UnitPieces
}

// Product is a catalog entry managed by administrators.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`    // Unit price, positive.
	Quantity    int       `json:"quantity"` // Stock count.
	Unit        Unit      `json:"unit"`
	ImageURL    string    `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProductChanges holds the editable product fields written on update.
type ProductChanges struct {
	Name        string
	Description string
	Price       float64
	Quantity    int
	Unit        Unit
	ImageURL    string
}
