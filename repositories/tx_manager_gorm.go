package repositories

import (
	"context"

	"gorm.io/gorm"
)

type txReposGorm struct {
	orders OrderRepository
	sales  SaleRepository
}

func (r *txReposGorm) Orders() OrderRepository { return r.orders }
func (r *txReposGorm) Sales() SaleRepository   { return r.sales }

type TxManagerGorm struct {
	db *gorm.DB
}

func NewTxManagerGorm(db *gorm.DB) *TxManagerGorm {
	return &TxManagerGorm{db: db}
}

// WithinTx commits when fn returns nil and rolls back otherwise.
func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r TxRepos) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := &txReposGorm{
			orders: NewOrderGormRepository(tx),
			sales:  NewSaleGormRepository(tx),
		}
		return fn(r)
	})
}
