package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "qaforum/internal/errors"
	"qaforum/internal/model"
	"qaforum/internal/repository"
)

// AnswerService handles answer operations. Ownership checks follow the same
// existence-then-ownership order as questions: a missing answer is 404, an
// answer owned by someone else is 403.
type AnswerService interface {
	Create(ctx context.Context, userID, questionID uint, text string) (*model.AnswerWithAuthor, error)
	ListAll(ctx context.Context) ([]model.Answer, error)
	ListByQuestion(ctx context.Context, questionID uint) ([]model.AnswerWithAuthor, error)
	Update(ctx context.Context, userID, id uint, text string) (*model.AnswerWithAuthor, error)
	Delete(ctx context.Context, userID, id uint) (*model.AnswerWithAuthor, error)
}

type answerService struct {
	repo      repository.AnswerRepository
	questions repository.QuestionRepository
}

// NewAnswerService creates a new answer service.
func NewAnswerService(repo repository.AnswerRepository, questions repository.QuestionRepository) AnswerService {
	return &answerService{repo: repo, questions: questions}
}

// Create inserts an answer against an existing question and returns it
// joined with the author's username.
func (s *answerService) Create(ctx context.Context, userID, questionID uint, text string) (*model.AnswerWithAuthor, error) {
	if _, err := s.questions.FindByID(ctx, questionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrQuestionNotFound
		}
		return nil, err
	}

	answer := &model.Answer{
		UserID:     userID,
		QuestionID: questionID,
		Answer:     text,
	}
	if err := s.repo.Create(ctx, answer); err != nil {
		return nil, fmt.Errorf("create answer: %w", err)
	}

	created, err := s.repo.FindByID(ctx, answer.ID)
	if err != nil {
		return nil, fmt.Errorf("read back answer: %w", err)
	}
	return created, nil
}

func (s *answerService) ListAll(ctx context.Context) ([]model.Answer, error) {
	return s.repo.ListAll(ctx)
}

func (s *answerService) ListByQuestion(ctx context.Context, questionID uint) ([]model.AnswerWithAuthor, error) {
	answers, err := s.repo.ListByQuestion(ctx, questionID)
	if err != nil {
		return nil, err
	}
	if len(answers) == 0 {
		return nil, apperrors.ErrAnswerNotFound
	}
	return answers, nil
}

// Update replaces the answer text and returns the updated record.
func (s *answerService) Update(ctx context.Context, userID, id uint, text string) (*model.AnswerWithAuthor, error) {
	if _, err := s.findForWrite(ctx, userID, id); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, id, text); err != nil {
		return nil, fmt.Errorf("update answer: %w", err)
	}
	return s.repo.FindByID(ctx, id)
}

// Delete removes the answer and returns the record that was deleted.
func (s *answerService) Delete(ctx context.Context, userID, id uint) (*model.AnswerWithAuthor, error) {
	existing, err := s.findForWrite(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("delete answer: %w", err)
	}
	return existing, nil
}

func (s *answerService) findForWrite(ctx context.Context, userID, id uint) (*model.AnswerWithAuthor, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAnswerNotFound
		}
		return nil, err
	}
	if existing.UserID != userID {
		return nil, apperrors.ErrNotOwner
	}
	return existing, nil
}
