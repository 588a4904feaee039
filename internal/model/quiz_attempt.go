package model

import "time"

// QuizAttempt 一次测验提交的不可变记录，只由提交创建，从不更新
// swagger:model QuizAttempt
type QuizAttempt struct {
	BaseModel
	UserID      uint      `gorm:"index;not null" json:"userId"`
	QuizID      uint      `gorm:"index;not null" json:"quizId"`
	Score       float64   `gorm:"type:decimal(5,2);not null" json:"score"` // 百分比
	Passed      bool      `gorm:"default:false" json:"passed"`
	AttemptDate time.Time `json:"attemptDate"`
	TimeSpent   int       `gorm:"default:0" json:"timeSpent"` // 秒
}

func (QuizAttempt) TableName() string {
	return "quiz_attempts"
}
