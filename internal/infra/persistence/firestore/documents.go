package firestore

import (
	"time"

	"storefront/internal/domain/entity"
)

// Field names as stored in the documents.
const (
	fieldName         = "name"
	fieldAddress      = "address"
	fieldRole         = "role"
	fieldDescription  = "description"
	fieldPrice        = "price"
	fieldQuantity     = "quantity"
	fieldUnit         = "unit"
	fieldImageURL     = "imageUrl"
	fieldUpdatedAt    = "updatedAt"
	fieldUserID       = "userId"
	fieldDeliveryDate = "deliveryDate"
	fieldOrderedAt    = "orderedAt"
	fieldStatus       = "status"
	fieldPayment      = "payment"
	fieldFCMToken     = "fcmToken"
	fieldDeviceID     = "deviceId"
	fieldIsActive     = "isActive"
)

type userDocument struct {
	UID       string    `firestore:"uid"`
	Name      string    `firestore:"name"`
	Phone     string    `firestore:"phone"`
	Address   string    `firestore:"address"`
	Role      string    `firestore:"role"`
	CreatedAt time.Time `firestore:"createdAt,serverTimestamp"`
}

func newUserDocument(user *entity.User) *userDocument {
	return &userDocument{
		UID:     user.UID,
		Name:    user.Name,
		Phone:   user.Phone,
		Address: user.Address,
		Role:    user.Role.String(),
	}
}

func (d *userDocument) toEntity(id string) *entity.User {
	uid := d.UID
	if uid == "" {
		uid = id
	}

	return &entity.User{
		UID:       uid,
		Name:      d.Name,
		Phone:     d.Phone,
		Address:   d.Address,
		Role:      entity.ParseRole(d.Role),
		CreatedAt: d.CreatedAt,
	}
}

type productDocument struct {
	Name        string    `firestore:"name"`
	Description string    `firestore:"description"`
	Price       float64   `firestore:"price"`
	Quantity    int64     `firestore:"quantity"`
	Unit        string    `firestore:"unit"`
	ImageURL    string    `firestore:"imageUrl"`
	CreatedAt   time.Time `firestore:"createdAt,serverTimestamp"`
	UpdatedAt   time.Time `firestore:"updatedAt,serverTimestamp"`
}

func newProductDocument(product *entity.Product) *productDocument {
	return &productDocument{
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Quantity:    int64(product.Quantity),
		Unit:        string(product.Unit),
		ImageURL:    product.ImageURL,
	}
}

func (d *productDocument) toEntity(id string) *entity.Product {
	return &entity.Product{
		ID:          id,
		Name:        d.Name,
		Description: d.Description,
		Price:       d.Price,
		Quantity:    int(d.Quantity),
		Unit:        entity.Unit(d.Unit),
		ImageURL:    d.ImageURL,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

type orderDocument struct {
	UserID       string    `firestore:"userId"`
	ProductID    string    `firestore:"productId"`
	ProductName  string    `firestore:"productName"`
	Price        float64   `firestore:"price"`
	Unit         string    `firestore:"unit"`
	Quantity     int64     `firestore:"quantity"`
	TotalPrice   float64   `firestore:"totalPrice"`
	DeliveryDate time.Time `firestore:"deliveryDate"`
	OrderedAt    time.Time `firestore:"orderedAt,serverTimestamp"`
	Status       string    `firestore:"status"`
	Payment      string    `firestore:"payment"`
}

func newOrderDocument(order *entity.Order) *orderDocument {
	return &orderDocument{
		UserID:       order.UserID,
		ProductID:    order.ProductID,
		ProductName:  order.ProductName,
		Price:        order.Price,
		Unit:         string(order.Unit),
		Quantity:     int64(order.Quantity),
		TotalPrice:   order.TotalPrice,
		DeliveryDate: order.DeliveryDate,
		Status:       string(order.Status),
		Payment:      order.Payment,
	}
}

func (d *orderDocument) toEntity(id string) *entity.Order {
	return &entity.Order{
		ID:           id,
		UserID:       d.UserID,
		ProductID:    d.ProductID,
		ProductName:  d.ProductName,
		Price:        d.Price,
		Unit:         entity.Unit(d.Unit),
		Quantity:     int(d.Quantity),
		TotalPrice:   d.TotalPrice,
		DeliveryDate: d.DeliveryDate,
		OrderedAt:    d.OrderedAt,
		Status:       entity.OrderStatus(d.Status),
		Payment:      d.Payment,
	}
}

type deviceDocument struct {
	UserID    string    `firestore:"userId"`
	FCMToken  string    `firestore:"fcmToken"`
	DeviceID  string    `firestore:"deviceId"`
	Platform  string    `firestore:"platform"`
	IsActive  bool      `firestore:"isActive"`
	CreatedAt time.Time `firestore:"createdAt,serverTimestamp"`
	UpdatedAt time.Time `firestore:"updatedAt,serverTimestamp"`
}

func newDeviceDocument(device *entity.UserDevice) *deviceDocument {
	return &deviceDocument{
		UserID:   device.UserID,
		FCMToken: device.FCMToken,
		DeviceID: device.DeviceID,
		Platform: device.Platform,
		IsActive: device.IsActive,
	}
}

func (d *deviceDocument) toEntity(id string) *entity.UserDevice {
	return &entity.UserDevice{
		ID:        id,
		UserID:    d.UserID,
		FCMToken:  d.FCMToken,
		DeviceID:  d.DeviceID,
		Platform:  d.Platform,
		IsActive:  d.IsActive,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}
