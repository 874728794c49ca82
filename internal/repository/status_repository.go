package repository

import (
	"context"

	"gorm.io/gorm"

	"taskboard/internal/model"
)

// StatusRepository reads the fixed task-status reference data.
type StatusRepository interface {
	List(ctx context.Context) ([]model.Status, error)
	Exists(ctx context.Context, id uint) (bool, error)
}

type statusRepository struct {
	db *gorm.DB
}

// NewStatusRepository builds a GORM-backed status repository.
func NewStatusRepository(db *gorm.DB) StatusRepository {
	return &statusRepository{db: db}
}

func (r *statusRepository) List(ctx context.Context) ([]model.Status, error) {
	var statuses []model.Status
	if err := r.db.WithContext(ctx).Order("id").Find(&statuses).Error; err != nil {
		return nil, err
	}
	return statuses, nil
}

func (r *statusRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Status{}).
		Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
