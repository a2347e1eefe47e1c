package repository

import (
	"context"

	"gorm.io/gorm"

	"qaforum/internal/model"
)

// QuestionRepository defines question persistence operations.
type QuestionRepository interface {
	Create(ctx context.Context, question *model.Question) error
	ListAll(ctx context.Context) ([]model.QuestionWithAuthor, error)
	FindByID(ctx context.Context, id uint) (*model.QuestionWithAuthor, error)
	Update(ctx context.Context, question *model.Question) error
	Delete(ctx context.Context, id uint) error
	IncrementLike(ctx context.Context, id uint) (uint, error)
	IncrementDislike(ctx context.Context, id uint) (uint, error)
}

type questionRepository struct {
	db *gorm.DB
}

// NewQuestionRepository creates a new question repository.
func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(ctx context.Context, question *model.Question) error {
	return r.db.WithContext(ctx).Create(question).Error
}

// ListAll returns every question joined with its author's username,
// newest first.
func (r *questionRepository) ListAll(ctx context.Context) ([]model.QuestionWithAuthor, error) {
	var questions []model.QuestionWithAuthor
	err := r.db.WithContext(ctx).Model(&model.Question{}).
		Select("questions.*, users.username").
		Joins("JOIN users ON questions.userid = users.userid").
		Order("questions.created_at DESC").
		Scan(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) FindByID(ctx context.Context, id uint) (*model.QuestionWithAuthor, error) {
	var question model.QuestionWithAuthor
	err := r.db.WithContext(ctx).Model(&model.Question{}).
		Select("questions.*, users.username").
		Joins("LEFT JOIN users ON questions.userid = users.userid").
		Where("questions.questionid = ?", id).
		First(&question).Error
	if err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) Update(ctx context.Context, question *model.Question) error {
	return r.db.WithContext(ctx).Model(&model.Question{}).
		Where("questionid = ?", question.ID).
		Updates(map[string]interface{}{
			"title":       question.Title,
			"description": question.Description,
			"tag":         question.Tag,
		}).Error
}

// Delete removes a question; dependent answers go with it through the
// foreign key cascade, not application logic.
func (r *questionRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Question{}, id).Error
}

// IncrementLike bumps the like counter atomically and returns the new value.
func (r *questionRepository) IncrementLike(ctx context.Context, id uint) (uint, error) {
	return r.incrementCounter(ctx, id, "like_count")
}

// IncrementDislike bumps the dislike counter atomically and returns the new value.
func (r *questionRepository) IncrementDislike(ctx context.Context, id uint) (uint, error) {
	return r.incrementCounter(ctx, id, "dislike_count")
}

func (r *questionRepository) incrementCounter(ctx context.Context, id uint, column string) (uint, error) {
	err := r.db.WithContext(ctx).Model(&model.Question{}).
		Where("questionid = ?", id).
		UpdateColumn(column, gorm.Expr(column+" + 1")).Error
	if err != nil {
		return 0, err
	}

	var question model.Question
	if err := r.db.WithContext(ctx).First(&question, id).Error; err != nil {
		return 0, err
	}
	if column == "like_count" {
		return question.LikeCount, nil
	}
	return question.DislikeCount, nil
}
