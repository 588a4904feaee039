package repository

import (
	"learning_platform_backend/internal/model"

	"gorm.io/gorm"
)

type LessonRepository struct {
	DB *gorm.DB
}

func NewLessonRepository(db *gorm.DB) *LessonRepository {
	return &LessonRepository{DB: db}
}

func (r *LessonRepository) Create(lesson *model.Lesson) error {
	return r.DB.Create(lesson).Error
}

func (r *LessonRepository) FindByID(id uint) (*model.Lesson, error) {
	var l model.Lesson
	err := r.DB.First(&l, id).Error
	return &l, err
}

func (r *LessonRepository) ListByCourse(courseID uint) ([]model.Lesson, error) {
	var ls []model.Lesson
	err := r.DB.Where("course_id = ?", courseID).Order("lesson_order asc").Find(&ls).Error
	return ls, err
}

func (r *LessonRepository) Update(lesson *model.Lesson) error {
	return r.DB.Save(lesson).Error
}

func (r *LessonRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Lesson{}, id).Error
}

// Progress

func (r *LessonRepository) FindProgress(userID, lessonID uint) (*model.LessonProgress, error) {
	var p model.LessonProgress
	err := r.DB.Where("user_id = ? AND lesson_id = ?", userID, lessonID).First(&p).Error
	return &p, err
}

func (r *LessonRepository) SaveProgress(progress *model.LessonProgress) error {
	return r.DB.Save(progress).Error
}

// CountProgressForCourseLessons 统计某用户在某课程所有课时上的进度记录数
func (r *LessonRepository) CountProgressForCourseLessons(userID, courseID uint) (int64, error) {
	var n int64
	err := r.DB.Model(&model.LessonProgress{}).
		Where("user_id = ? AND lesson_id IN (?)",
			userID,
			r.DB.Model(&model.Lesson{}).Select("id").Where("course_id = ?", courseID),
		).
		Count(&n).Error
	return n, err
}
