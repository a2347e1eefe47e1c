package repository

import (
	"context"

	"gorm.io/gorm"

	"qaforum/internal/model"
)

// AnswerRepository defines answer persistence operations.
type AnswerRepository interface {
	Create(ctx context.Context, answer *model.Answer) error
	ListAll(ctx context.Context) ([]model.Answer, error)
	ListByQuestion(ctx context.Context, questionID uint) ([]model.AnswerWithAuthor, error)
	FindByID(ctx context.Context, id uint) (*model.AnswerWithAuthor, error)
	Update(ctx context.Context, id uint, text string) error
	Delete(ctx context.Context, id uint) error
}

type answerRepository struct {
	db *gorm.DB
}

// NewAnswerRepository creates a new answer repository.
func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

func (r *answerRepository) Create(ctx context.Context, answer *model.Answer) error {
	return r.db.WithContext(ctx).Create(answer).Error
}

func (r *answerRepository) ListAll(ctx context.Context) ([]model.Answer, error) {
	var answers []model.Answer
	if err := r.db.WithContext(ctx).Find(&answers).Error; err != nil {
		return nil, err
	}
	return answers, nil
}

// ListByQuestion returns the answers for one question joined with each
// author's username.
func (r *answerRepository) ListByQuestion(ctx context.Context, questionID uint) ([]model.AnswerWithAuthor, error) {
	var answers []model.AnswerWithAuthor
	err := r.db.WithContext(ctx).Model(&model.Answer{}).
		Select("answers.*, users.username").
		Joins("JOIN users ON answers.userid = users.userid").
		Where("answers.questionid = ?", questionID).
		Scan(&answers).Error
	if err != nil {
		return nil, err
	}
	return answers, nil
}

func (r *answerRepository) FindByID(ctx context.Context, id uint) (*model.AnswerWithAuthor, error) {
	var answer model.AnswerWithAuthor
	err := r.db.WithContext(ctx).Model(&model.Answer{}).
		Select("answers.*, users.username").
		Joins("JOIN users ON answers.userid = users.userid").
		Where("answers.answerid = ?", id).
		First(&answer).Error
	if err != nil {
		return nil, err
	}
	return &answer, nil
}

func (r *answerRepository) Update(ctx context.Context, id uint, text string) error {
	return r.db.WithContext(ctx).Model(&model.Answer{}).
		Where("answerid = ?", id).
		Update("answer", text).Error
}

func (r *answerRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Answer{}, id).Error
}
