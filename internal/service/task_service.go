package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"taskboard/internal/apperrors"
	"taskboard/internal/cache"
	"taskboard/internal/model"
	"taskboard/internal/repository"
)

const taskCacheTTL = 5 * time.Minute

// TaskInput carries the client-suppliable task fields. The owner is never
// part of the input; it always comes from the resolved identity.
type TaskInput struct {
	Title          string
	Description    string
	ExpirationDate time.Time
	StatusID       uint
}

// Pagination describes one page of a list result.
type Pagination struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// TaskService exposes ownership-scoped task operations. Every method takes
// the owner id resolved from the bearer token, never a client-supplied one.
type TaskService interface {
	List(ctx context.Context, ownerID uint, page, perPage int) ([]model.Task, *Pagination, error)
	Get(ctx context.Context, ownerID, taskID uint) (*model.Task, error)
	Create(ctx context.Context, ownerID uint, input TaskInput) (*model.Task, error)
	Update(ctx context.Context, ownerID, taskID uint, input TaskInput) (*model.Task, error)
	Delete(ctx context.Context, ownerID, taskID uint) error
}

type taskService struct {
	tasks    repository.Owned[model.Task]
	statuses repository.StatusRepository
	cache    *cache.Client
}

// NewTaskService creates the task service.
func NewTaskService(tasks repository.Owned[model.Task], statuses repository.StatusRepository, cache *cache.Client) TaskService {
	return &taskService{
		tasks:    tasks,
		statuses: statuses,
		cache:    cache,
	}
}

func (s *taskService) cacheKey(ownerID, taskID uint) string {
	return fmt.Sprintf("task:%d:%d", ownerID, taskID)
}

func (s *taskService) List(ctx context.Context, ownerID uint, page, perPage int) ([]model.Task, *Pagination, error) {
	tasks, total, err := s.tasks.List(ctx, ownerID, page, perPage)
	if err != nil {
		return nil, nil, fmt.Errorf("list tasks: %w", err)
	}

	totalPages := int(total) / perPage
	if int(total)%perPage != 0 {
		totalPages++
	}
	return tasks, &Pagination{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
	}, nil
}

func (s *taskService) Get(ctx context.Context, ownerID, taskID uint) (*model.Task, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(ownerID, taskID)); data != nil {
		var cached model.Task
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	task, err := s.tasks.Find(ctx, ownerID, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, fmt.Errorf("find task: %w", err)
	}

	if payload, err := json.Marshal(task); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(ownerID, taskID), payload, taskCacheTTL)
	}
	return task, nil
}

func (s *taskService) Create(ctx context.Context, ownerID uint, input TaskInput) (*model.Task, error) {
	if err := s.checkStatus(ctx, input.StatusID); err != nil {
		return nil, err
	}

	task := &model.Task{
		Title:          input.Title,
		Description:    input.Description,
		ExpirationDate: input.ExpirationDate,
		StatusID:       input.StatusID,
		UserID:         ownerID,
	}
	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	return task, nil
}

// Update performs a full-field replace after an ownership-scoped lookup.
// There are no partial/merge semantics.
func (s *taskService) Update(ctx context.Context, ownerID, taskID uint, input TaskInput) (*model.Task, error) {
	task, err := s.tasks.Find(ctx, ownerID, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, fmt.Errorf("find task: %w", err)
	}

	if err := s.checkStatus(ctx, input.StatusID); err != nil {
		return nil, err
	}

	task.Title = input.Title
	task.Description = input.Description
	task.ExpirationDate = input.ExpirationDate
	task.StatusID = input.StatusID
	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(ownerID, taskID))
	return task, nil
}

func (s *taskService) Delete(ctx context.Context, ownerID, taskID uint) error {
	if err := s.tasks.Delete(ctx, ownerID, taskID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTaskNotFound
		}
		return fmt.Errorf("delete task: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(ownerID, taskID))
	return nil
}

func (s *taskService) checkStatus(ctx context.Context, statusID uint) error {
	exists, err := s.statuses.Exists(ctx, statusID)
	if err != nil {
		return fmt.Errorf("check status: %w", err)
	}
	if !exists {
		return apperrors.ErrStatusNotFound
	}
	return nil
}
