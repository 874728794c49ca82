package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"taskboard/internal/apperrors"
	"taskboard/internal/model"
)

// MockTaskRepository is a mock implementation of repository.Owned[model.Task].
type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) Create(ctx context.Context, task *model.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) Find(ctx context.Context, ownerID, id uint) (*model.Task, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Task), args.Error(1)
}

func (m *MockTaskRepository) List(ctx context.Context, ownerID uint, page, perPage int) ([]model.Task, int64, error) {
	args := m.Called(ctx, ownerID, page, perPage)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]model.Task), args.Get(1).(int64), args.Error(2)
}

func (m *MockTaskRepository) Update(ctx context.Context, task *model.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) Delete(ctx context.Context, ownerID, id uint) error {
	args := m.Called(ctx, ownerID, id)
	return args.Error(0)
}

// MockStatusRepository is a mock implementation of repository.StatusRepository.
type MockStatusRepository struct {
	mock.Mock
}

func (m *MockStatusRepository) List(ctx context.Context) ([]model.Status, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Status), args.Error(1)
}

func (m *MockStatusRepository) Exists(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func validInput() TaskInput {
	return TaskInput{
		Title:          "buy groceries",
		Description:    "milk and bread",
		ExpirationDate: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		StatusID:       1,
	}
}

func TestTaskService_Create(t *testing.T) {
	tests := []struct {
		name          string
		input         TaskInput
		setupMock     func(*MockTaskRepository, *MockStatusRepository)
		expectedError error
	}{
		{
			name:  "successful create forces the owner",
			input: validInput(),
			setupMock: func(tasks *MockTaskRepository, statuses *MockStatusRepository) {
				statuses.On("Exists", mock.Anything, uint(1)).Return(true, nil)
				tasks.On("Create", mock.Anything, mock.MatchedBy(func(task *model.Task) bool {
					return task.UserID == 7
				})).Return(nil)
			},
		},
		{
			name: "nonexistent status fails before any write",
			input: TaskInput{
				Title:          "buy groceries",
				Description:    "milk and bread",
				ExpirationDate: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
				StatusID:       99,
			},
			setupMock: func(tasks *MockTaskRepository, statuses *MockStatusRepository) {
				statuses.On("Exists", mock.Anything, uint(99)).Return(false, nil)
			},
			expectedError: apperrors.ErrStatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tasks := new(MockTaskRepository)
			statuses := new(MockStatusRepository)
			tt.setupMock(tasks, statuses)

			svc := NewTaskService(tasks, statuses, nil)
			task, err := svc.Create(context.Background(), 7, tt.input)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, task)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, uint(7), task.UserID)
				assert.Equal(t, tt.input.Title, task.Title)
			}

			tasks.AssertExpectations(t)
			statuses.AssertExpectations(t)
		})
	}
}

func TestTaskService_Get_ScopedMiss(t *testing.T) {
	tasks := new(MockTaskRepository)
	statuses := new(MockStatusRepository)

	// the repository reports a foreign-owned task exactly like a missing one
	tasks.On("Find", mock.Anything, uint(7), uint(3)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewTaskService(tasks, statuses, nil)
	task, err := svc.Get(context.Background(), 7, 3)

	assert.ErrorIs(t, err, apperrors.ErrTaskNotFound)
	assert.Nil(t, task)
	tasks.AssertExpectations(t)
}

func TestTaskService_Update_NotFound(t *testing.T) {
	tasks := new(MockTaskRepository)
	statuses := new(MockStatusRepository)

	tasks.On("Find", mock.Anything, uint(7), uint(3)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewTaskService(tasks, statuses, nil)
	task, err := svc.Update(context.Background(), 7, 3, validInput())

	assert.ErrorIs(t, err, apperrors.ErrTaskNotFound)
	assert.Nil(t, task)
	tasks.AssertExpectations(t)
	// the status check never runs for a missing task
	statuses.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything)
}

func TestTaskService_Update_ReplacesAllFields(t *testing.T) {
	tasks := new(MockTaskRepository)
	statuses := new(MockStatusRepository)

	existing := &model.Task{
		ID:             3,
		Title:          "old title",
		Description:    "old description",
		ExpirationDate: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		StatusID:       1,
		UserID:         7,
	}
	tasks.On("Find", mock.Anything, uint(7), uint(3)).Return(existing, nil)
	statuses.On("Exists", mock.Anything, uint(2)).Return(true, nil)
	tasks.On("Update", mock.Anything, mock.MatchedBy(func(task *model.Task) bool {
		return task.ID == 3 && task.UserID == 7 && task.Title == "new title" && task.StatusID == 2
	})).Return(nil)

	input := TaskInput{
		Title:          "new title",
		Description:    "new description",
		ExpirationDate: time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC),
		StatusID:       2,
	}

	svc := NewTaskService(tasks, statuses, nil)
	task, err := svc.Update(context.Background(), 7, 3, input)

	assert.NoError(t, err)
	assert.Equal(t, "new title", task.Title)
	assert.Equal(t, uint(7), task.UserID)
	tasks.AssertExpectations(t)
	statuses.AssertExpectations(t)
}

func TestTaskService_Delete_SecondDeleteIsNotFound(t *testing.T) {
	tasks := new(MockTaskRepository)
	statuses := new(MockStatusRepository)

	tasks.On("Delete", mock.Anything, uint(7), uint(3)).Return(nil).Once()
	tasks.On("Delete", mock.Anything, uint(7), uint(3)).Return(gorm.ErrRecordNotFound).Once()

	svc := NewTaskService(tasks, statuses, nil)

	assert.NoError(t, svc.Delete(context.Background(), 7, 3))
	assert.ErrorIs(t, svc.Delete(context.Background(), 7, 3), apperrors.ErrTaskNotFound)
	tasks.AssertExpectations(t)
}

func TestTaskService_List_Pagination(t *testing.T) {
	tasks := new(MockTaskRepository)
	statuses := new(MockStatusRepository)

	tasks.On("List", mock.Anything, uint(7), 2, 4).Return([]model.Task{{ID: 5}, {ID: 6}}, int64(10), nil)

	svc := NewTaskService(tasks, statuses, nil)
	items, pagination, err := svc.List(context.Background(), 7, 2, 4)

	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, 2, pagination.Page)
	assert.Equal(t, 4, pagination.PerPage)
	assert.Equal(t, int64(10), pagination.Total)
	assert.Equal(t, 3, pagination.TotalPages)
	tasks.AssertExpectations(t)
}
