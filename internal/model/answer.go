package model

import "time"

// Answer is a reply to a question. Removed automatically when either its
// question or its author is deleted.
type Answer struct {
	ID         uint      `json:"answerid" gorm:"column:answerid;primaryKey"`
	UserID     uint      `json:"userid" gorm:"column:userid;not null;index"`
	QuestionID uint      `json:"questionid" gorm:"column:questionid;not null;index"`
	Answer     string    `json:"answer" gorm:"size:200;not null"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Relations
	User     User     `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE"`
	Question Question `json:"-" gorm:"foreignKey:QuestionID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE"`
}

// AnswerWithAuthor joins an answer with its author's public username.
type AnswerWithAuthor struct {
	Answer
	Username string `json:"username"`
}
