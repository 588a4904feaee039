package model

// swagger:model Quiz
type Quiz struct {
	BaseModel
	LessonID     uint    `gorm:"index;not null" json:"lessonId"`
	Title        string  `gorm:"size:255;not null" json:"title"`
	Description  string  `gorm:"type:text" json:"description"`
	TimeLimit    int     `gorm:"default:0" json:"timeLimit"` // 分钟
	PassingScore float64 `gorm:"type:decimal(5,2);default:70" json:"passingScore"`
}

func (Quiz) TableName() string {
	return "quizzes"
}

// swagger:model QuizQuestion
type QuizQuestion struct {
	BaseModel
	QuizID        uint   `gorm:"index;not null" json:"quizId"`
	Question      string `gorm:"type:text;not null" json:"question"`
	QuestionType  string `gorm:"size:50;default:'MultipleChoice'" json:"questionType"` // MultipleChoice, TrueFalse, ShortAnswer
	QuestionOrder int    `gorm:"default:0" json:"questionOrder"`
}

func (QuizQuestion) TableName() string {
	return "quiz_questions"
}

// swagger:model QuizAnswer
type QuizAnswer struct {
	BaseModel
	QuestionID  uint   `gorm:"index;not null" json:"questionId"`
	Answer      string `gorm:"type:text;not null" json:"answer"`
	IsCorrect   bool   `gorm:"default:false" json:"isCorrect"`
	AnswerOrder int    `gorm:"default:0" json:"answerOrder"`
}

func (QuizAnswer) TableName() string {
	return "quiz_answers"
}
