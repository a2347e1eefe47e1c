package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"qaforum/internal/auth"
	apperrors "qaforum/internal/errors"
	"qaforum/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	args := m.Called(ctx, username, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) UsernameTaken(ctx context.Context, username string, excludeID uint) (bool, error) {
	args := m.Called(ctx, username, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) EmailTaken(ctx context.Context, email string, excludeID uint) (bool, error) {
	args := m.Called(ctx, email, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func newUserService(repo *MockUserRepository) (UserService, *auth.JWTService) {
	jwtService := auth.NewJWTService("test-secret")
	return NewUserService(repo, jwtService, NewPasswordValidator()), jwtService
}

func TestUserService_Register(t *testing.T) {
	tests := []struct {
		name          string
		input         RegisterInput
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name: "successful registration",
			input: RegisterInput{
				Username:  "alice",
				Firstname: "Alice",
				Lastname:  "Smith",
				Email:     "alice@x.com",
				Password:  "Aa1!aaaa",
			},
			setupMock: func(m *MockUserRepository) {
				m.On("ExistsByUsernameOrEmail", mock.Anything, "alice", "alice@x.com").Return(false, nil)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Run(func(args mock.Arguments) {
					args.Get(1).(*model.User).ID = 1
				}).Return(nil)
			},
			expectedError: nil,
		},
		{
			name: "username or email already registered",
			input: RegisterInput{
				Username:  "alice",
				Firstname: "Alice",
				Lastname:  "Smith",
				Email:     "alice@x.com",
				Password:  "Aa1!aaaa",
			},
			setupMock: func(m *MockUserRepository) {
				m.On("ExistsByUsernameOrEmail", mock.Anything, "alice", "alice@x.com").Return(true, nil)
			},
			expectedError: apperrors.ErrUserExists,
		},
		{
			name: "weak password rejected before hashing",
			input: RegisterInput{
				Username:  "bob",
				Firstname: "Bob",
				Lastname:  "Jones",
				Email:     "bob@x.com",
				Password:  "password",
			},
			setupMock: func(m *MockUserRepository) {
				m.On("ExistsByUsernameOrEmail", mock.Anything, "bob", "bob@x.com").Return(false, nil)
			},
			expectedError: apperrors.ErrWeakPassword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)
			svc, jwtService := newUserService(mockRepo)

			user, token, err := svc.Register(context.Background(), tt.input)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
				assert.Empty(t, token)
				mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				// The stored secret must never equal the plaintext.
				assert.NotEqual(t, tt.input.Password, user.PasswordHash)
				assert.NotEmpty(t, user.PasswordHash)

				claims, err := jwtService.ValidateToken(token)
				assert.NoError(t, err)
				assert.Equal(t, tt.input.Username, claims.Username)
				assert.Equal(t, user.ID, claims.UserID)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUserService_Login(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("Aa1!aaaa"), bcryptCost)
	stored := &model.User{
		ID:           7,
		Username:     "alice",
		Email:        "alice@x.com",
		PasswordHash: string(hashed),
	}

	tests := []struct {
		name          string
		email         string
		password      string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful login",
			email:    "alice@x.com",
			password: "Aa1!aaaa",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "alice@x.com").Return(stored, nil)
			},
			expectedError: nil,
		},
		{
			name:     "unknown email",
			email:    "nobody@x.com",
			password: "Aa1!aaaa",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "nobody@x.com").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			email:    "alice@x.com",
			password: "Bb2!bbbb",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "alice@x.com").Return(stored, nil)
			},
			expectedError: apperrors.ErrInvalidPassword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)
			svc, jwtService := newUserService(mockRepo)

			token, username, err := svc.Login(context.Background(), tt.email, tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "alice", username)

				claims, err := jwtService.ValidateToken(token)
				assert.NoError(t, err)
				assert.Equal(t, "alice", claims.Username)
				assert.Equal(t, uint(7), claims.UserID)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUserService_UpdateProfile(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("Aa1!aaaa"), bcryptCost)

	tests := []struct {
		name          string
		input         UpdateProfileInput
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:  "rename first name only",
			input: UpdateProfileInput{Firstname: "Alicia"},
			setupMock: func(m *MockUserRepository) {
				m.On("UpdateFields", mock.Anything, uint(7), map[string]interface{}{"firstname": "Alicia"}).Return(nil)
			},
		},
		{
			name:  "username already taken",
			input: UpdateProfileInput{Username: "bob"},
			setupMock: func(m *MockUserRepository) {
				m.On("UsernameTaken", mock.Anything, "bob", uint(7)).Return(true, nil)
			},
			expectedError: apperrors.ErrUsernameTaken,
		},
		{
			name:  "email already taken",
			input: UpdateProfileInput{Email: "bob@x.com"},
			setupMock: func(m *MockUserRepository) {
				m.On("EmailTaken", mock.Anything, "bob@x.com", uint(7)).Return(true, nil)
			},
			expectedError: apperrors.ErrEmailTaken,
		},
		{
			name:          "incomplete password change",
			input:         UpdateProfileInput{NewPassword: "Bb2!bbbb"},
			setupMock:     func(m *MockUserRepository) {},
			expectedError: apperrors.ErrPasswordFieldsRequired,
		},
		{
			name: "retype mismatch",
			input: UpdateProfileInput{
				CurrentPassword:   "Aa1!aaaa",
				NewPassword:       "Bb2!bbbb",
				RetypeNewPassword: "Cc3!cccc",
			},
			setupMock:     func(m *MockUserRepository) {},
			expectedError: apperrors.ErrPasswordMismatch,
		},
		{
			name: "wrong current password",
			input: UpdateProfileInput{
				CurrentPassword:   "Zz9!zzzz",
				NewPassword:       "Bb2!bbbb",
				RetypeNewPassword: "Bb2!bbbb",
			},
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, uint(7)).Return(&model.User{ID: 7, PasswordHash: string(hashed)}, nil)
			},
			expectedError: apperrors.ErrCurrentPasswordWrong,
		},
		{
			name:          "no fields supplied",
			input:         UpdateProfileInput{},
			setupMock:     func(m *MockUserRepository) {},
			expectedError: apperrors.ErrNoUpdates,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)
			svc, _ := newUserService(mockRepo)

			err := svc.UpdateProfile(context.Background(), 7, tt.input)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				mockRepo.AssertNotCalled(t, "UpdateFields", mock.Anything, mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}
