package models

// Customer places orders.
type Customer struct {
	ID    uint   `gorm:"primaryKey"                    json:"id"`
	Name  string `gorm:"size:255;not null"             json:"name"  validate:"required,max=255"`
	Email string `gorm:"size:255;uniqueIndex;not null" json:"email" validate:"required,email,max=255"`
	Phone string `gorm:"size:50;not null"              json:"phone" validate:"required,max=50"`

	// Orders is populated only when explicitly preloaded.
	Orders []Order `gorm:"foreignKey:CustomerID" json:"orders,omitempty"`
}
