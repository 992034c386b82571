package storage

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Oignontom8283/timeclass/internal/models"
)

type LoadRunRepository interface {
	// Create сохраняет отчёт об одной загрузке каталога.
	Create(ctx context.Context, run *models.LoadRun) error
	// ListRecent возвращает последние отчёты, новые первыми.
	ListRecent(ctx context.Context, limit int) ([]models.LoadRun, error)
}

type GormLoadRunRepository struct {
	db *gorm.DB
}

func NewGormLoadRunRepository(db *gorm.DB) *GormLoadRunRepository {
	return &GormLoadRunRepository{db: db}
}

// AutoMigrate создаёт таблицу истории загрузок.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.LoadRun{})
}

func (r *GormLoadRunRepository) Create(ctx context.Context, run *models.LoadRun) error {
	if run.ID == uuid.Nil {
		run.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(run).Error
}

func (r *GormLoadRunRepository) ListRecent(ctx context.Context, limit int) ([]models.LoadRun, error) {
	var runs []models.LoadRun
	q := r.db.WithContext(ctx).Order("started_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&runs).Error; err != nil {
		return nil, err
	}
	return runs, nil
}
