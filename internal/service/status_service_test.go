package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"taskboard/internal/model"
)

func TestStatusService_List(t *testing.T) {
	statuses := new(MockStatusRepository)
	statuses.On("List", mock.Anything).Return([]model.Status{
		{ID: 1, Name: "Pendiente", IdentifierCode: "pending_status"},
		{ID: 2, Name: "Completada", IdentifierCode: "completed_status"},
	}, nil)

	svc := NewStatusService(statuses, nil)
	got, err := svc.List(context.Background())

	assert.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, "pending_status", got[0].IdentifierCode)
	statuses.AssertExpectations(t)
}

func TestStatusService_List_RepoError(t *testing.T) {
	statuses := new(MockStatusRepository)
	statuses.On("List", mock.Anything).Return(nil, errors.New("table missing"))

	svc := NewStatusService(statuses, nil)
	got, err := svc.List(context.Background())

	assert.Error(t, err)
	assert.Nil(t, got)
}
