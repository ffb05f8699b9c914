package models

// Category groups products on the menu.
type Category struct {
	ID   uint   `gorm:"primaryKey"                    json:"id"`
	Name string `gorm:"size:255;uniqueIndex;not null" json:"name" validate:"required,max=255"`

	// Products is populated only when explicitly preloaded.
	Products []Product `gorm:"foreignKey:CategoryID" json:"products,omitempty"`
}
