package model

import "time"

type EnrollmentStatus string

const (
	EnrollmentInProgress EnrollmentStatus = "In Progress"
	EnrollmentCompleted  EnrollmentStatus = "Completed"
	EnrollmentPaused     EnrollmentStatus = "Paused"
)

// Enrollment 用户与课程的关联，记录完成进度
// (user_id, course_id) 唯一约束在存储层保证，并发注册只有一条能提交
// swagger:model Enrollment
type Enrollment struct {
	BaseModel
	UserID               uint             `gorm:"uniqueIndex:idx_enrollment_user_course;not null" json:"userId"`
	CourseID             uint             `gorm:"uniqueIndex:idx_enrollment_user_course;not null" json:"courseId"`
	EnrolledDate         time.Time        `json:"enrolledDate"`
	CompletionPercentage float64          `gorm:"type:decimal(5,2);default:0" json:"completionPercentage"`
	Status               EnrollmentStatus `gorm:"size:20;default:'In Progress'" json:"status"`
	CompletedDate        *time.Time       `json:"completedDate,omitempty"`
}

func (Enrollment) TableName() string {
	return "enrollments"
}
