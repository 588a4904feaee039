package model

import "time"

// swagger:model Lesson
type Lesson struct {
	BaseModel
	CourseID    uint   `gorm:"index;not null" json:"courseId"`
	Title       string `gorm:"size:255;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Content     string `gorm:"type:text" json:"content"`
	Duration    int    `gorm:"default:0" json:"duration"` // 分钟
	LessonOrder int    `gorm:"default:0" json:"lessonOrder"`
	VideoURL    string `gorm:"size:255" json:"videoUrl,omitempty"`
}

func (Lesson) TableName() string {
	return "lessons"
}

// swagger:model LessonProgress
type LessonProgress struct {
	BaseModel
	UserID          uint       `gorm:"uniqueIndex:idx_user_lesson;not null" json:"userId"`
	LessonID        uint       `gorm:"uniqueIndex:idx_user_lesson;not null" json:"lessonId"`
	IsCompleted     bool       `gorm:"default:false" json:"isCompleted"`
	CompletedDate   *time.Time `json:"completedDate,omitempty"`
	WatchedDuration int        `gorm:"default:0" json:"watchedDuration"` // 秒
}

func (LessonProgress) TableName() string {
	return "lesson_progress"
}
