package models

// OrderItem is a line item owned by its order. ID, OrderID and Position are
// storage details and never leave the API.
type OrderItem struct {
	ID       uint    `gorm:"primaryKey" json:"-"`
	OrderID  uint    `gorm:"not null;index" json:"-"`
	Position int     `gorm:"not null;default:0" json:"-"`
	ItemName string  `gorm:"type:varchar(255);not null" json:"itemName"`
	Price    float64 `gorm:"type:decimal(10,2);not null" json:"price"`
	Quantity int     `gorm:"not null" json:"quantity"`
}

func (i OrderItem) Subtotal() float64 {
	return i.Price * float64(i.Quantity)
}
