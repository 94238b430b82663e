package entity

import "time"

// Menu is a single catalog item. Ingredients are kept in order as a
// JSON-serialized list (JSONB on postgres).
type Menu struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	Category    string    `json:"category" gorm:"not null;index"`
	Calories    int       `json:"calories"`
	Price       float64   `json:"price"`
	Ingredients []string  `json:"ingredients" gorm:"serializer:json"`
	Description string    `json:"description" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Menu) TableName() string {
	return "menus"
}
