package models

// Product is a menu item that belongs to exactly one category.
type Product struct {
	ID          uint    `gorm:"primaryKey"         json:"id"`
	Name        string  `gorm:"size:255;not null"  json:"name"`
	Price       float64 `gorm:"not null"           json:"price"`
	Description string  `gorm:"type:text;not null" json:"description"`

	CategoryID uint      `gorm:"not null;index" json:"categoryId"`
	Category   *Category `json:"category,omitempty"`
}

// CategoryRef returns the referenced category ID, preferring the nested
// {"category":{"id":N}} form over the flat categoryId. Zero means absent.
func (p *Product) CategoryRef() uint {
	if p.Category != nil && p.Category.ID != 0 {
		return p.Category.ID
	}
	return p.CategoryID
}
