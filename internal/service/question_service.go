package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"qaforum/internal/cache"
	apperrors "qaforum/internal/errors"
	"qaforum/internal/model"
	"qaforum/internal/repository"
)

const questionCacheTTL = 5 * time.Minute

// QuestionInput carries the fields required to create or update a question.
type QuestionInput struct {
	Title       string
	Description string
	Tag         string
}

// QuestionService handles question operations. Mutations are restricted to
// the owning author; like/dislike is open to any authenticated user.
type QuestionService interface {
	Create(ctx context.Context, userID uint, in QuestionInput) (*model.Question, error)
	List(ctx context.Context) ([]model.QuestionWithAuthor, error)
	Get(ctx context.Context, id uint) (*model.QuestionWithAuthor, error)
	Update(ctx context.Context, userID, id uint, in QuestionInput) error
	Delete(ctx context.Context, userID, id uint) error
	Like(ctx context.Context, id uint) (uint, error)
	Dislike(ctx context.Context, id uint) (uint, error)
}

type questionService struct {
	repo  repository.QuestionRepository
	cache *cache.Client
}

// NewQuestionService creates a new question service.
func NewQuestionService(repo repository.QuestionRepository, cache *cache.Client) QuestionService {
	return &questionService{repo: repo, cache: cache}
}

func (s *questionService) cacheKey(id uint) string {
	return fmt.Sprintf("question:%d", id)
}

func (s *questionService) Create(ctx context.Context, userID uint, in QuestionInput) (*model.Question, error) {
	question := &model.Question{
		UserID:      userID,
		Title:       in.Title,
		Description: in.Description,
		Tag:         in.Tag,
	}
	if err := s.repo.Create(ctx, question); err != nil {
		return nil, fmt.Errorf("create question: %w", err)
	}
	return question, nil
}

func (s *questionService) List(ctx context.Context) ([]model.QuestionWithAuthor, error) {
	return s.repo.ListAll(ctx)
}

// Get retrieves a question by ID with caching.
func (s *questionService) Get(ctx context.Context, id uint) (*model.QuestionWithAuthor, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.QuestionWithAuthor
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	question, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrQuestionNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(question); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, questionCacheTTL)
	}
	return question, nil
}

// Update rewrites title, description, and tag. Existence is checked first,
// then ownership, so a missing question reads as 404 rather than 403.
func (s *questionService) Update(ctx context.Context, userID, id uint, in QuestionInput) error {
	existing, err := s.findForWrite(ctx, userID, id)
	if err != nil {
		return err
	}

	existing.Title = in.Title
	existing.Description = in.Description
	existing.Tag = in.Tag
	if err := s.repo.Update(ctx, &existing.Question); err != nil {
		return fmt.Errorf("update question: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}

// Delete removes a question and, through the storage cascade, its answers.
func (s *questionService) Delete(ctx context.Context, userID, id uint) error {
	if _, err := s.findForWrite(ctx, userID, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete question: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}

// Like bumps the like counter. Not restricted to non-owners and not
// idempotent per user: repeated calls keep incrementing.
func (s *questionService) Like(ctx context.Context, id uint) (uint, error) {
	return s.increment(ctx, id, s.repo.IncrementLike)
}

// Dislike bumps the dislike counter with the same open semantics as Like.
func (s *questionService) Dislike(ctx context.Context, id uint) (uint, error) {
	return s.increment(ctx, id, s.repo.IncrementDislike)
}

func (s *questionService) increment(ctx context.Context, id uint, bump func(context.Context, uint) (uint, error)) (uint, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, apperrors.ErrQuestionNotFound
		}
		return 0, err
	}

	count, err := bump(ctx, id)
	if err != nil {
		return 0, err
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return count, nil
}

func (s *questionService) findForWrite(ctx context.Context, userID, id uint) (*model.QuestionWithAuthor, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrQuestionNotFound
		}
		return nil, err
	}
	if existing.UserID != userID {
		return nil, apperrors.ErrNotOwner
	}
	return existing, nil
}
