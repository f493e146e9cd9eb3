package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/SokolovG/DevEvents/internal/domain"
	"github.com/SokolovG/DevEvents/internal/service/ports/mocks"
)

func TestCommentService_Add_Success(t *testing.T) {
	commentRepo := mocks.NewMockCommentRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)

	svc := NewCommentService(commentRepo, eventRepo)

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1"}, nil)
	commentRepo.EXPECT().Append(mock.Anything, mock.Anything).Return(nil)

	comment, err := svc.Add(context.Background(), "e1", "u1", "great talk")

	require.NoError(t, err)
	assert.NotEmpty(t, comment.ID)
	assert.Equal(t, "e1", comment.EventID)
	assert.Equal(t, "u1", comment.AuthorID)
	assert.Equal(t, "great talk", comment.Text)
	assert.False(t, comment.CreatedAt.IsZero())
}

func TestCommentService_Add_EmptyText(t *testing.T) {
	commentRepo := mocks.NewMockCommentRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)

	svc := NewCommentService(commentRepo, eventRepo)

	_, err := svc.Add(context.Background(), "e1", "u1", "")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCommentService_Add_EventNotFound(t *testing.T) {
	commentRepo := mocks.NewMockCommentRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)

	svc := NewCommentService(commentRepo, eventRepo)

	eventRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	_, err := svc.Add(context.Background(), "missing", "u1", "hello")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestCommentService_ListByEvent_Passthrough(t *testing.T) {
	commentRepo := mocks.NewMockCommentRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)

	svc := NewCommentService(commentRepo, eventRepo)

	comments := []*domain.Comment{
		{ID: "c1", EventID: "e1", AuthorID: "u1", Text: "first"},
		{ID: "c2", EventID: "e1", AuthorID: "u2", Text: "second"},
	}
	commentRepo.EXPECT().ListByEvent(mock.Anything, "e1").Return(comments, nil)

	result, err := svc.ListByEvent(context.Background(), "e1")

	require.NoError(t, err)
	assert.Len(t, result, 2)
}
