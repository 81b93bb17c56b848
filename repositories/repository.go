package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/yeremiapane/foodpoint-pos/models"
)

var ErrNotFound = errors.New("record not found")

type MenuItemRepository interface {
	Create(ctx context.Context, item *models.MenuItem) error
	FindAll(ctx context.Context) ([]models.MenuItem, error)
	FindByCategory(ctx context.Context, category string) ([]models.MenuItem, error)
	FindByID(ctx context.Context, id uint) (models.MenuItem, error)
	Delete(ctx context.Context, id uint) error
}

type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	FindByID(ctx context.Context, id uint) (models.Order, error)
	// FindAll and FindByStatus return newest first.
	FindAll(ctx context.Context) ([]models.Order, error)
	FindByStatus(ctx context.Context, status models.OrderStatus) ([]models.Order, error)
	// Update rewrites the order columns and replaces its whole line-item list.
	// Run it inside WithinTx so the replacement is atomic.
	Update(ctx context.Context, order *models.Order) error
	UpdateStatus(ctx context.Context, id uint, status models.OrderStatus) error
	Delete(ctx context.Context, id uint) error
}

type SaleRepository interface {
	Create(ctx context.Context, sale *models.Sale) error
	// SumBetween sums sales with start <= created_at < end.
	SumBetween(ctx context.Context, start, end time.Time) (float64, error)
	SumAll(ctx context.Context) (float64, error)
	FindRecent(ctx context.Context, limit int) ([]models.Sale, error)
	FindSince(ctx context.Context, start time.Time) ([]models.Sale, error)
}

// TxRepos are repositories bound to one open transaction.
type TxRepos interface {
	Orders() OrderRepository
	Sales() SaleRepository
}

type TransactionManager interface {
	WithinTx(ctx context.Context, fn func(r TxRepos) error) error
}
