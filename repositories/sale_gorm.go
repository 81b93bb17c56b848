package repositories

import (
	"context"
	"time"

	"github.com/yeremiapane/foodpoint-pos/models"
	"gorm.io/gorm"
)

type SaleGormRepository struct {
	db *gorm.DB
}

func NewSaleGormRepository(db *gorm.DB) *SaleGormRepository {
	return &SaleGormRepository{db: db}
}

func (r *SaleGormRepository) Create(ctx context.Context, sale *models.Sale) error {
	return r.db.WithContext(ctx).Create(sale).Error
}

func (r *SaleGormRepository) SumBetween(ctx context.Context, start, end time.Time) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Model(&models.Sale{}).
		Where("created_at >= ? AND created_at < ?", start, end).
		Select("COALESCE(SUM(amount), 0)").
		Row().Scan(&total)
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (r *SaleGormRepository) SumAll(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Model(&models.Sale{}).
		Select("COALESCE(SUM(amount), 0)").
		Row().Scan(&total)
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (r *SaleGormRepository) FindRecent(ctx context.Context, limit int) ([]models.Sale, error) {
	sales := []models.Sale{}
	err := r.db.WithContext(ctx).
		Order("created_at desc").
		Order("id desc").
		Limit(limit).
		Find(&sales).Error
	if err != nil {
		return []models.Sale{}, err
	}
	return sales, nil
}

func (r *SaleGormRepository) FindSince(ctx context.Context, start time.Time) ([]models.Sale, error) {
	sales := []models.Sale{}
	err := r.db.WithContext(ctx).
		Where("created_at >= ?", start).
		Order("created_at desc").
		Find(&sales).Error
	if err != nil {
		return []models.Sale{}, err
	}
	return sales, nil
}
