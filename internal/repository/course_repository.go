package repository

import (
	"learning_platform_backend/internal/model"

	"gorm.io/gorm"
)

type CourseRepository struct {
	DB *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{DB: db}
}

func (r *CourseRepository) Create(course *model.Course) error {
	return r.DB.Create(course).Error
}

func (r *CourseRepository) FindByID(id uint) (*model.Course, error) {
	var c model.Course
	err := r.DB.First(&c, id).Error
	return &c, err
}

func (r *CourseRepository) List(page, limit int) ([]model.Course, int64, error) {
	var cs []model.Course
	var total int64
	if err := r.DB.Model(&model.Course{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err := r.DB.Order("created_at desc").Offset(offset).Limit(limit).Find(&cs).Error
	return cs, total, err
}

func (r *CourseRepository) Update(course *model.Course) error {
	return r.DB.Save(course).Error
}

func (r *CourseRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Course{}, id).Error
}

func (r *CourseRepository) Count() (int64, error) {
	var n int64
	err := r.DB.Model(&model.Course{}).Count(&n).Error
	return n, err
}

// CountDependents 课程删除前检查关联记录（报名与课时）
func (r *CourseRepository) CountDependents(courseID uint) (int64, error) {
	var enrollments int64
	if err := r.DB.Model(&model.Enrollment{}).Where("course_id = ?", courseID).Count(&enrollments).Error; err != nil {
		return 0, err
	}
	var lessons int64
	if err := r.DB.Model(&model.Lesson{}).Where("course_id = ?", courseID).Count(&lessons).Error; err != nil {
		return 0, err
	}
	return enrollments + lessons, nil
}
