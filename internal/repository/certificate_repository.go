package repository

import (
	"learning_platform_backend/internal/model"

	"gorm.io/gorm"
)

type CertificateRepository struct {
	DB *gorm.DB
}

func NewCertificateRepository(db *gorm.DB) *CertificateRepository {
	return &CertificateRepository{DB: db}
}

func (r *CertificateRepository) Create(cert *model.Certificate) error {
	return r.DB.Create(cert).Error
}

func (r *CertificateRepository) FindByID(id uint) (*model.Certificate, error) {
	var c model.Certificate
	err := r.DB.First(&c, id).Error
	return &c, err
}

func (r *CertificateRepository) FindByUserAndCourse(userID, courseID uint) (*model.Certificate, error) {
	var c model.Certificate
	err := r.DB.Where("user_id = ? AND course_id = ?", userID, courseID).First(&c).Error
	return &c, err
}

func (r *CertificateRepository) FindByCode(code string) (*model.Certificate, error) {
	var c model.Certificate
	err := r.DB.Where("verification_code = ?", code).First(&c).Error
	return &c, err
}

func (r *CertificateRepository) CodeExists(code string) (bool, error) {
	var n int64
	err := r.DB.Model(&model.Certificate{}).Where("verification_code = ?", code).Count(&n).Error
	return n > 0, err
}

func (r *CertificateRepository) ListByUser(userID uint) ([]model.Certificate, error) {
	var cs []model.Certificate
	err := r.DB.Where("user_id = ?", userID).Order("issued_date desc").Find(&cs).Error
	return cs, err
}

func (r *CertificateRepository) ListByCourse(courseID uint) ([]model.Certificate, error) {
	var cs []model.Certificate
	err := r.DB.Where("course_id = ?", courseID).Order("issued_date desc").Find(&cs).Error
	return cs, err
}

func (r *CertificateRepository) UpdateStatus(id uint, status model.CertificateStatus) error {
	return r.DB.Model(&model.Certificate{}).Where("id = ?", id).Update("status", status).Error
}

func (r *CertificateRepository) CountByUserAndCourse(userID, courseID uint) (int64, error) {
	var n int64
	err := r.DB.Model(&model.Certificate{}).
		Where("user_id = ? AND course_id = ?", userID, courseID).Count(&n).Error
	return n, err
}
