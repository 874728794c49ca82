package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"taskboard/internal/model"
)

type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository builds the ownership-scoped task repository.
func NewTaskRepository(db *gorm.DB) Owned[model.Task] {
	return &taskRepository{db: db}
}

func (r *taskRepository) Create(ctx context.Context, task *model.Task) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(task).Error; err != nil {
		return err
	}
	// reload associations for presentation
	return r.db.WithContext(ctx).Preload("Status").Preload("User").
		First(task, task.ID).Error
}

// Find returns the task only when it belongs to ownerID. A task owned by
// someone else surfaces as gorm.ErrRecordNotFound.
func (r *taskRepository) Find(ctx context.Context, ownerID, id uint) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).Preload("Status").Preload("User").
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&task).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *taskRepository) List(ctx context.Context, ownerID uint, page, perPage int) ([]model.Task, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("user_id = ?", ownerID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var tasks []model.Task
	err := r.db.WithContext(ctx).Preload("Status").Preload("User").
		Where("user_id = ?", ownerID).
		Order("id").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&tasks).Error
	if err != nil {
		return nil, 0, err
	}
	return tasks, total, nil
}

// Update writes the task's own columns only; preloaded associations are
// never written back, so a changed StatusID cannot be clobbered by a stale
// Status struct.
func (r *taskRepository) Update(ctx context.Context, task *model.Task) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(task).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Preload("Status").Preload("User").
		First(task, task.ID).Error
}

// Delete removes the task permanently. A second delete of the same id, or a
// delete of someone else's task, reports gorm.ErrRecordNotFound.
func (r *taskRepository) Delete(ctx context.Context, ownerID, id uint) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&model.Task{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
