package repository

import (
	"learning_platform_backend/internal/model"

	"gorm.io/gorm"
)

type AchievementRepository struct {
	DB *gorm.DB
}

func NewAchievementRepository(db *gorm.DB) *AchievementRepository {
	return &AchievementRepository{DB: db}
}

func (r *AchievementRepository) Create(a *model.Achievement) error {
	return r.DB.Create(a).Error
}

func (r *AchievementRepository) FindByID(id uint) (*model.Achievement, error) {
	var a model.Achievement
	err := r.DB.First(&a, id).Error
	return &a, err
}

func (r *AchievementRepository) List() ([]model.Achievement, error) {
	var as []model.Achievement
	err := r.DB.Order("id asc").Find(&as).Error
	return as, err
}

func (r *AchievementRepository) Award(ua *model.UserAchievement) error {
	return r.DB.Create(ua).Error
}

func (r *AchievementRepository) ListByUser(userID uint) ([]model.UserAchievement, error) {
	var uas []model.UserAchievement
	err := r.DB.Where("user_id = ?", userID).Order("earned_date desc").Find(&uas).Error
	return uas, err
}
