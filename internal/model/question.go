package model

import "time"

// Question is a post asked by a user. It owns its answers: deleting a
// question (or its author) cascades through the foreign keys.
type Question struct {
	ID           uint      `json:"questionid" gorm:"column:questionid;primaryKey"`
	UserID       uint      `json:"userid" gorm:"column:userid;not null;index"`
	Title        string    `json:"title" gorm:"size:50;not null"`
	Description  string    `json:"description" gorm:"size:200;not null"`
	Tag          string    `json:"tag" gorm:"size:20"`
	LikeCount    uint      `json:"like_count" gorm:"default:0"`
	DislikeCount uint      `json:"dislike_count" gorm:"default:0"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	User    User     `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE"`
	Answers []Answer `json:"-" gorm:"foreignKey:QuestionID"`
}

// QuestionWithAuthor is the read model for question listings: the question
// row joined with its author's public username.
type QuestionWithAuthor struct {
	Question
	Username string `json:"username"`
}
