package models

// OrderItem is one product line on an order.
type OrderItem struct {
	ID       uint   `gorm:"primaryKey"     json:"id"`
	OrderID  uint   `gorm:"not null;index" json:"orderId"`
	Order    *Order `json:"order,omitempty"`
	Quantity int    `gorm:"not null"       json:"quantity" validate:"required,gt=0"`

	// Products on an order cannot be deleted while the line exists.
	ProductID uint     `gorm:"not null;index" json:"productId"`
	Product   *Product `gorm:"constraint:OnDelete:RESTRICT" json:"product,omitempty"`
}

// OrderRef returns the referenced order ID. Zero means absent.
func (i *OrderItem) OrderRef() uint {
	if i.Order != nil && i.Order.ID != 0 {
		return i.Order.ID
	}
	return i.OrderID
}

// ProductRef returns the referenced product ID. Zero means absent.
func (i *OrderItem) ProductRef() uint {
	if i.Product != nil && i.Product.ID != 0 {
		return i.Product.ID
	}
	return i.ProductID
}
