package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/foodpoint-pos/kds"
	"github.com/yeremiapane/foodpoint-pos/models"
	"github.com/yeremiapane/foodpoint-pos/repositories"
	"github.com/yeremiapane/foodpoint-pos/utils"
)

type OrderItemInput struct {
	ItemName string  `json:"itemName"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// OrderInput is the body of create and update. TotalAmount is accepted for
// compatibility and ignored; the total is always recomputed.
type OrderInput struct {
	CustomerName  string           `json:"customerName"`
	CustomerPhone string           `json:"customerPhone"`
	PaymentMethod string           `json:"paymentMethod"`
	Notes         string           `json:"notes"`
	TotalAmount   *float64         `json:"totalAmount,omitempty"`
	OrderItems    []OrderItemInput `json:"orderItems"`
}

type OrderServiceConfig struct {
	// RecordSaleOnPayment writes a sale for the order total when it is marked paid.
	RecordSaleOnPayment bool
	RestaurantName      string
}

type OrderService struct {
	orders   repositories.OrderRepository
	tx       repositories.TransactionManager
	clock    Clock
	notifier Notifier
	cfg      OrderServiceConfig
}

func NewOrderService(
	orders repositories.OrderRepository,
	tx repositories.TransactionManager,
	clock Clock,
	notifier Notifier,
	cfg OrderServiceConfig,
) *OrderService {
	if cfg.RestaurantName == "" {
		cfg.RestaurantName = "FoodPoint"
	}
	return &OrderService{
		orders:   orders,
		tx:       tx,
		clock:    clock,
		notifier: notifier,
		cfg:      cfg,
	}
}

// CalculateTotal sums price x quantity, rounded to cents.
func CalculateTotal(items []models.OrderItem) float64 {
	total := decimal.Zero
	for _, it := range items {
		line := decimal.NewFromFloat(it.Price).Mul(decimal.NewFromInt(int64(it.Quantity)))
		total = total.Add(line)
	}
	return total.Round(2).InexactFloat64()
}

func buildItems(in []OrderItemInput) ([]models.OrderItem, error) {
	if len(in) == 0 {
		return nil, fmt.Errorf("%w: at least one order item is required", ErrValidation)
	}

	items := make([]models.OrderItem, 0, len(in))
	for i, it := range in {
		name := strings.TrimSpace(it.ItemName)
		if name == "" {
			return nil, fmt.Errorf("%w: orderItems[%d].itemName is required", ErrValidation, i)
		}
		if !validPrice(it.Price) {
			return nil, fmt.Errorf("%w: orderItems[%d].price must be >= 0 with at most 2 decimals", ErrValidation, i)
		}
		if it.Quantity < 1 {
			return nil, fmt.Errorf("%w: orderItems[%d].quantity must be >= 1", ErrValidation, i)
		}
		items = append(items, models.OrderItem{
			ItemName: name,
			Price:    it.Price,
			Quantity: it.Quantity,
		})
	}
	return items, nil
}

func (s *OrderService) Create(ctx context.Context, in OrderInput) (models.Order, error) {
	items, err := buildItems(in.OrderItems)
	if err != nil {
		return models.Order{}, err
	}

	order := models.Order{
		CustomerName:  strings.TrimSpace(in.CustomerName),
		CustomerPhone: strings.TrimSpace(in.CustomerPhone),
		PaymentMethod: strings.TrimSpace(in.PaymentMethod),
		Notes:         in.Notes,
		TotalAmount:   CalculateTotal(items),
		Status:        models.OrderStatusPending,
		OrderItems:    items,
	}
	if err := s.orders.Create(ctx, &order); err != nil {
		return models.Order{}, err
	}

	s.notifier.Publish(kds.EventOrderCreated, order)
	return order, nil
}

func (s *OrderService) List(ctx context.Context) ([]models.Order, error) {
	return s.orders.FindAll(ctx)
}

func (s *OrderService) ListPending(ctx context.Context) ([]models.Order, error) {
	return s.orders.FindByStatus(ctx, models.OrderStatusPending)
}

func (s *OrderService) Get(ctx context.Context, id uint) (models.Order, error) {
	return s.orders.FindByID(ctx, id)
}

// Update replaces the customer fields and the whole line-item list. Status is left as is.
func (s *OrderService) Update(ctx context.Context, id uint, in OrderInput) (models.Order, error) {
	items, err := buildItems(in.OrderItems)
	if err != nil {
		return models.Order{}, err
	}

	var updated models.Order
	err = s.tx.WithinTx(ctx, func(r repositories.TxRepos) error {
		order, err := r.Orders().FindByID(ctx, id)
		if err != nil {
			return err
		}

		order.CustomerName = strings.TrimSpace(in.CustomerName)
		order.CustomerPhone = strings.TrimSpace(in.CustomerPhone)
		order.PaymentMethod = strings.TrimSpace(in.PaymentMethod)
		order.Notes = in.Notes
		order.OrderItems = items
		order.TotalAmount = CalculateTotal(items)

		if err := r.Orders().Update(ctx, &order); err != nil {
			return err
		}
		updated = order
		return nil
	})
	if err != nil {
		return models.Order{}, err
	}

	s.notifier.Publish(kds.EventOrderUpdated, updated)
	return updated, nil
}

// MarkPaid moves a pending order to paid. Paying an already paid order is a no-op.
func (s *OrderService) MarkPaid(ctx context.Context, id uint) (models.Order, error) {
	var (
		order   models.Order
		changed bool
		sale    *models.Sale
	)
	err := s.tx.WithinTx(ctx, func(r repositories.TxRepos) error {
		var err error
		order, err = r.Orders().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if order.Status == models.OrderStatusPaid {
			return nil
		}

		if err := r.Orders().UpdateStatus(ctx, id, models.OrderStatusPaid); err != nil {
			return err
		}
		order.Status = models.OrderStatusPaid
		changed = true

		if s.cfg.RecordSaleOnPayment && order.TotalAmount > 0 {
			sale = &models.Sale{Amount: order.TotalAmount, CreatedAt: s.clock.Now()}
			if err := r.Sales().Create(ctx, sale); err != nil {
				return fmt.Errorf("record sale for order %d: %w", id, err)
			}
		}
		return nil
	})
	if err != nil {
		return models.Order{}, err
	}

	if changed {
		utils.InfoLogger.WithFields(logrus.Fields{
			"order_id": id,
			"total":    order.TotalAmount,
		}).Info("order paid")
		s.notifier.Publish(kds.EventOrderPaid, order)
	}
	if sale != nil {
		s.notifier.Publish(kds.EventSaleRecorded, sale)
	}
	return order, nil
}

// Delete removes a pending order. Paid orders are kept and ErrOrderNotPending is returned.
func (s *OrderService) Delete(ctx context.Context, id uint) error {
	err := s.tx.WithinTx(ctx, func(r repositories.TxRepos) error {
		order, err := r.Orders().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if !order.IsPending() {
			return ErrOrderNotPending
		}
		return r.Orders().Delete(ctx, id)
	})
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) && !errors.Is(err, ErrOrderNotPending) {
			utils.ErrorLogger.WithError(err).WithField("order_id", id).Error("delete order")
		}
		return err
	}

	s.notifier.Publish(kds.EventOrderDeleted, map[string]uint{"id": id})
	return nil
}
