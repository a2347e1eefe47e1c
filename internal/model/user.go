package model

import "time"

// User represents a registered forum member.
type User struct {
	ID           uint      `json:"userid" gorm:"column:userid;primaryKey"`
	Username     string    `json:"username" gorm:"size:20;uniqueIndex;not null"`
	Firstname    string    `json:"firstname" gorm:"size:20;not null"`
	Lastname     string    `json:"lastname" gorm:"size:20;not null"`
	Email        string    `json:"email" gorm:"size:40;uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"column:password;size:100;not null"` // Never expose in JSON
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
