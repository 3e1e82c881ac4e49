package models

import "time"

// MockTestResult is one completed mock test. Results are append-only per
// user and never mutated or deleted.
type MockTestResult struct {
	ID             string    `json:"id" gorm:"primaryKey;size:64"`
	UserID         string    `json:"-" gorm:"index;not null;size:64"`
	Topic          string    `json:"topic" gorm:"not null;size:255"`
	Score          int       `json:"score" gorm:"not null"`
	TotalQuestions int       `json:"total_questions" gorm:"not null"`
	Date           time.Time `json:"date"`

	CreatedAt time.Time `json:"-"`
}

func (MockTestResult) TableName() string {
	return "mock_tests"
}
