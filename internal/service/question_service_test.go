package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "qaforum/internal/errors"
	"qaforum/internal/model"
)

// MockQuestionRepository is a mock implementation of QuestionRepository.
type MockQuestionRepository struct {
	mock.Mock
}

func (m *MockQuestionRepository) Create(ctx context.Context, question *model.Question) error {
	args := m.Called(ctx, question)
	return args.Error(0)
}

func (m *MockQuestionRepository) ListAll(ctx context.Context) ([]model.QuestionWithAuthor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.QuestionWithAuthor), args.Error(1)
}

func (m *MockQuestionRepository) FindByID(ctx context.Context, id uint) (*model.QuestionWithAuthor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.QuestionWithAuthor), args.Error(1)
}

func (m *MockQuestionRepository) Update(ctx context.Context, question *model.Question) error {
	args := m.Called(ctx, question)
	return args.Error(0)
}

func (m *MockQuestionRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockQuestionRepository) IncrementLike(ctx context.Context, id uint) (uint, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(uint), args.Error(1)
}

func (m *MockQuestionRepository) IncrementDislike(ctx context.Context, id uint) (uint, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(uint), args.Error(1)
}

func ownedQuestion(id, userID uint) *model.QuestionWithAuthor {
	return &model.QuestionWithAuthor{
		Question: model.Question{
			ID:          id,
			UserID:      userID,
			Title:       "How do goroutines work?",
			Description: "Looking for an explanation of the scheduler.",
			Tag:         "go",
		},
		Username: "alice",
	}
}

func TestQuestionService_Create(t *testing.T) {
	mockRepo := new(MockQuestionRepository)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Question")).Run(func(args mock.Arguments) {
		args.Get(1).(*model.Question).ID = 10
	}).Return(nil)

	svc := NewQuestionService(mockRepo, nil)
	question, err := svc.Create(context.Background(), 7, QuestionInput{
		Title:       "How do goroutines work?",
		Description: "Looking for an explanation of the scheduler.",
		Tag:         "go",
	})

	assert.NoError(t, err)
	assert.Equal(t, uint(10), question.ID)
	assert.Equal(t, uint(7), question.UserID)
	mockRepo.AssertExpectations(t)
}

func TestQuestionService_GetNotFound(t *testing.T) {
	mockRepo := new(MockQuestionRepository)
	mockRepo.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewQuestionService(mockRepo, nil)
	question, err := svc.Get(context.Background(), 99)

	assert.Nil(t, question)
	assert.ErrorIs(t, err, apperrors.ErrQuestionNotFound)
	mockRepo.AssertExpectations(t)
}

func TestQuestionService_UpdateOwnership(t *testing.T) {
	tests := []struct {
		name          string
		callerID      uint
		setupMock     func(*MockQuestionRepository)
		expectedError error
	}{
		{
			name:     "owner can update",
			callerID: 7,
			setupMock: func(m *MockQuestionRepository) {
				m.On("FindByID", mock.Anything, uint(10)).Return(ownedQuestion(10, 7), nil)
				m.On("Update", mock.Anything, mock.AnythingOfType("*model.Question")).Return(nil)
			},
		},
		{
			name:     "non-owner is rejected and row untouched",
			callerID: 8,
			setupMock: func(m *MockQuestionRepository) {
				m.On("FindByID", mock.Anything, uint(10)).Return(ownedQuestion(10, 7), nil)
			},
			expectedError: apperrors.ErrNotOwner,
		},
		{
			name:     "missing question beats ownership",
			callerID: 8,
			setupMock: func(m *MockQuestionRepository) {
				m.On("FindByID", mock.Anything, uint(10)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrQuestionNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockQuestionRepository)
			tt.setupMock(mockRepo)

			svc := NewQuestionService(mockRepo, nil)
			err := svc.Update(context.Background(), tt.callerID, 10, QuestionInput{
				Title:       "edited",
				Description: "edited",
				Tag:         "go",
			})

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestQuestionService_DeleteByNonOwner(t *testing.T) {
	mockRepo := new(MockQuestionRepository)
	mockRepo.On("FindByID", mock.Anything, uint(10)).Return(ownedQuestion(10, 7), nil)

	svc := NewQuestionService(mockRepo, nil)
	err := svc.Delete(context.Background(), 8, 10)

	assert.ErrorIs(t, err, apperrors.ErrNotOwner)
	mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestQuestionService_LikeIncrements(t *testing.T) {
	mockRepo := new(MockQuestionRepository)
	mockRepo.On("FindByID", mock.Anything, uint(10)).Return(ownedQuestion(10, 7), nil)
	mockRepo.On("IncrementLike", mock.Anything, uint(10)).Return(uint(3), nil)

	svc := NewQuestionService(mockRepo, nil)

	// The owner may like their own question, and counts just keep growing.
	count, err := svc.Like(context.Background(), 10)

	assert.NoError(t, err)
	assert.Equal(t, uint(3), count)
	mockRepo.AssertExpectations(t)
}

func TestQuestionService_LikeMissingQuestion(t *testing.T) {
	mockRepo := new(MockQuestionRepository)
	mockRepo.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewQuestionService(mockRepo, nil)
	_, err := svc.Like(context.Background(), 99)

	assert.ErrorIs(t, err, apperrors.ErrQuestionNotFound)
	mockRepo.AssertNotCalled(t, "IncrementLike", mock.Anything, mock.Anything)
}
