package model

type CourseLevel string

const (
	LevelBeginner     CourseLevel = "Beginner"
	LevelIntermediate CourseLevel = "Intermediate"
	LevelAdvanced     CourseLevel = "Advanced"
)

// swagger:model Course
type Course struct {
	BaseModel
	Title         string      `gorm:"size:255;not null" json:"title"`
	Description   string      `gorm:"type:text" json:"description"`
	Category      string      `gorm:"size:100;index" json:"category"`
	Duration      string      `gorm:"size:50" json:"duration"` // 例如 "6 weeks"
	DurationHours int         `gorm:"default:0" json:"durationHours"`
	LessonCount   int         `gorm:"default:0" json:"lessonCount"`
	Level         CourseLevel `gorm:"size:20;default:'Beginner'" json:"level"`
	Instructor    string      `gorm:"size:100" json:"instructor"`
	ImageURL      string      `gorm:"size:255" json:"imageUrl,omitempty"`
	Price         float64     `gorm:"type:decimal(10,2);default:0" json:"price"`
}

func (Course) TableName() string {
	return "courses"
}
