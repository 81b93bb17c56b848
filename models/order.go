package models

import (
	"fmt"
	"time"
)

type OrderStatus string

const (
	OrderStatusPending OrderStatus = "pending"
	OrderStatusPaid    OrderStatus = "paid"
)

type Order struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	CustomerName  string      `gorm:"type:varchar(255)" json:"customerName"`
	CustomerPhone string      `gorm:"type:varchar(50)" json:"customerPhone"`
	PaymentMethod string      `gorm:"type:varchar(50)" json:"paymentMethod"`
	Notes         string      `gorm:"type:text" json:"notes"`
	TotalAmount   float64     `gorm:"type:decimal(10,2);not null;default:0.00" json:"totalAmount"`
	Status        OrderStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	OrderItems    []OrderItem `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"orderItems"`
	CreatedAt     time.Time   `gorm:"not null;index" json:"createdAt"`
	UpdatedAt     time.Time   `gorm:"not null" json:"updatedAt"`
}

func (o *Order) IsPending() bool {
	return o.Status == OrderStatusPending
}

// ReceiptNumber is the identifier printed on receipts.
func (o *Order) ReceiptNumber() string {
	return fmt.Sprintf("ORD-%s-%05d", o.CreatedAt.Format("20060102"), o.ID)
}
