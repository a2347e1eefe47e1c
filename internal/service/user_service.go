package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"qaforum/internal/auth"
	apperrors "qaforum/internal/errors"
	"qaforum/internal/model"
	"qaforum/internal/repository"
)

const bcryptCost = 10

// RegisterInput carries the fields required to create an account.
type RegisterInput struct {
	Username  string
	Firstname string
	Lastname  string
	Email     string
	Password  string
}

// UpdateProfileInput carries an optional subset of profile fields. Password
// change requires all three password fields together.
type UpdateProfileInput struct {
	Username          string
	Firstname         string
	Lastname          string
	Email             string
	CurrentPassword   string
	NewPassword       string
	RetypeNewPassword string
}

// UserService handles registration, authentication, and profile operations.
type UserService interface {
	Register(ctx context.Context, in RegisterInput) (*model.User, string, error)
	Login(ctx context.Context, email, password string) (token, username string, err error)
	UpdateProfile(ctx context.Context, userID uint, in UpdateProfileInput) error
}

type userService struct {
	repo       repository.UserRepository
	jwtService *auth.JWTService
	passwords  *PasswordValidator
}

// NewUserService creates a new user service.
func NewUserService(repo repository.UserRepository, jwtService *auth.JWTService, passwords *PasswordValidator) UserService {
	return &userService{
		repo:       repo,
		jwtService: jwtService,
		passwords:  passwords,
	}
}

// Register creates a user with a hashed password and issues a 30-day token.
// Username and email must be globally unique; the password policy runs
// before hashing.
func (s *userService) Register(ctx context.Context, in RegisterInput) (*model.User, string, error) {
	exists, err := s.repo.ExistsByUsernameOrEmail(ctx, in.Username, in.Email)
	if err != nil {
		return nil, "", fmt.Errorf("check user existence: %w", err)
	}
	if exists {
		return nil, "", apperrors.ErrUserExists
	}

	if err := s.passwords.Validate(in.Password); err != nil {
		return nil, "", err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Username:     in.Username,
		Firstname:    in.Firstname,
		Lastname:     in.Lastname,
		Email:        in.Email,
		PasswordHash: string(hashed),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.jwtService.IssueToken(user.Username, user.ID, auth.RegisterTokenExpiry)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}

	return user, token, nil
}

// Login verifies the credentials and issues a 40-day token.
func (s *userService) Login(ctx context.Context, email, password string) (string, string, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", "", apperrors.ErrInvalidCredentials
		}
		return "", "", fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", "", apperrors.ErrInvalidPassword
	}

	token, err := s.jwtService.IssueToken(user.Username, user.ID, auth.LoginTokenExpiry)
	if err != nil {
		return "", "", fmt.Errorf("issue token: %w", err)
	}

	return token, user.Username, nil
}

// UpdateProfile applies a partial update. Username and email are re-checked
// for uniqueness against other users; changing the password re-verifies the
// current one and applies the policy to the new one.
func (s *userService) UpdateProfile(ctx context.Context, userID uint, in UpdateProfileInput) error {
	fields := map[string]interface{}{}

	if in.Username != "" {
		taken, err := s.repo.UsernameTaken(ctx, in.Username, userID)
		if err != nil {
			return fmt.Errorf("check username: %w", err)
		}
		if taken {
			return apperrors.ErrUsernameTaken
		}
		fields["username"] = in.Username
	}

	if in.Email != "" {
		taken, err := s.repo.EmailTaken(ctx, in.Email, userID)
		if err != nil {
			return fmt.Errorf("check email: %w", err)
		}
		if taken {
			return apperrors.ErrEmailTaken
		}
		fields["email"] = in.Email
	}

	if in.Firstname != "" {
		fields["firstname"] = in.Firstname
	}
	if in.Lastname != "" {
		fields["lastname"] = in.Lastname
	}

	if in.CurrentPassword != "" || in.NewPassword != "" || in.RetypeNewPassword != "" {
		if in.CurrentPassword == "" || in.NewPassword == "" || in.RetypeNewPassword == "" {
			return apperrors.ErrPasswordFieldsRequired
		}
		if in.NewPassword != in.RetypeNewPassword {
			return apperrors.ErrPasswordMismatch
		}
		if err := s.passwords.Validate(in.NewPassword); err != nil {
			return err
		}

		user, err := s.repo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrUserNotFound
			}
			return fmt.Errorf("find user: %w", err)
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.CurrentPassword)); err != nil {
			return apperrors.ErrCurrentPasswordWrong
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcryptCost)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		fields["password"] = string(hashed)
	}

	if len(fields) == 0 {
		return apperrors.ErrNoUpdates
	}

	if err := s.repo.UpdateFields(ctx, userID, fields); err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}
