package models

import "time"

// Order belongs to one customer and owns its order items.
type Order struct {
	ID         uint      `gorm:"primaryKey"     json:"id"`
	CustomerID uint      `gorm:"not null;index" json:"customerId"`
	Customer   *Customer `json:"customer,omitempty"`
	OrderDate  time.Time `gorm:"not null"       json:"orderDate"`

	// OrderItems is populated only when explicitly preloaded.
	OrderItems []OrderItem `gorm:"foreignKey:OrderID" json:"orderItems,omitempty"`
}

// CustomerRef returns the referenced customer ID. Zero means absent.
func (o *Order) CustomerRef() uint {
	if o.Customer != nil && o.Customer.ID != 0 {
		return o.Customer.ID
	}
	return o.CustomerID
}
