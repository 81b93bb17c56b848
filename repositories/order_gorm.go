package repositories

import (
	"context"
	"errors"

	"github.com/yeremiapane/foodpoint-pos/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OrderGormRepository struct {
	db *gorm.DB
}

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

func preloadItems(db *gorm.DB) *gorm.DB {
	return db.Preload("OrderItems", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("position asc")
	})
}

func numberItems(order *models.Order) {
	for i := range order.OrderItems {
		order.OrderItems[i].ID = 0
		order.OrderItems[i].OrderID = order.ID
		order.OrderItems[i].Position = i
	}
}

func (r *OrderGormRepository) Create(ctx context.Context, order *models.Order) error {
	numberItems(order)
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *OrderGormRepository) FindByID(ctx context.Context, id uint) (models.Order, error) {
	var o models.Order
	err := preloadItems(r.db.WithContext(ctx)).First(&o, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Order{}, ErrNotFound
	}
	if err != nil {
		return models.Order{}, err
	}
	return o, nil
}

func (r *OrderGormRepository) FindAll(ctx context.Context) ([]models.Order, error) {
	orders := []models.Order{}
	err := preloadItems(r.db.WithContext(ctx)).
		Order("created_at desc").
		Order("id desc").
		Find(&orders).Error
	if err != nil {
		return []models.Order{}, err
	}
	return orders, nil
}

func (r *OrderGormRepository) FindByStatus(ctx context.Context, status models.OrderStatus) ([]models.Order, error) {
	orders := []models.Order{}
	err := preloadItems(r.db.WithContext(ctx)).
		Where("status = ?", status).
		Order("created_at desc").
		Order("id desc").
		Find(&orders).Error
	if err != nil {
		return []models.Order{}, err
	}
	return orders, nil
}

func (r *OrderGormRepository) Update(ctx context.Context, order *models.Order) error {
	db := r.db.WithContext(ctx)

	if err := db.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
		return err
	}

	numberItems(order)
	if len(order.OrderItems) > 0 {
		if err := db.Create(&order.OrderItems).Error; err != nil {
			return err
		}
	}

	res := db.Model(order).
		Omit(clause.Associations).
		Select("customer_name", "customer_phone", "payment_method", "notes", "total_amount", "status", "updated_at").
		Updates(order)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *OrderGormRepository) UpdateStatus(ctx context.Context, id uint, status models.OrderStatus) error {
	res := r.db.WithContext(ctx).Model(&models.Order{}).
		Where("id = ?", id).
		Update("status", status)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *OrderGormRepository) Delete(ctx context.Context, id uint) error {
	db := r.db.WithContext(ctx)

	// sqlite ignores the FK cascade unless foreign_keys is on, so items go first
	if err := db.Where("order_id = ?", id).Delete(&models.OrderItem{}).Error; err != nil {
		return err
	}

	res := db.Delete(&models.Order{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
