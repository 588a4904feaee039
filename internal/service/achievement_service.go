package service

import (
	"errors"
	"learning_platform_backend/internal/model"
	"learning_platform_backend/internal/repository"
	"learning_platform_backend/internal/util"
	"learning_platform_backend/pkg/logger"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type AchievementService struct {
	Repo     *repository.AchievementRepository
	UserRepo *repository.UserRepository
}

func NewAchievementService(repo *repository.AchievementRepository, userRepo *repository.UserRepository) *AchievementService {
	return &AchievementService{Repo: repo, UserRepo: userRepo}
}

type AchievementRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Criteria    string `json:"criteria"`
}

func (s *AchievementService) List() ([]model.Achievement, error) {
	return s.Repo.List()
}

func (s *AchievementService) Get(id uint) (*model.Achievement, error) {
	a, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrAchievementNotFound
		}
		return nil, err
	}
	return a, nil
}

func (s *AchievementService) Create(req AchievementRequest) (*model.Achievement, error) {
	a := &model.Achievement{
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
		Criteria:    req.Criteria,
	}
	if err := s.Repo.Create(a); err != nil {
		return nil, err
	}
	logger.Log.Info("Achievement created", zap.Uint("achievementId", a.ID), zap.String("name", a.Name))
	return a, nil
}

// Award 给用户颁发成就，同一 (user, achievement) 只发一次
func (s *AchievementService) Award(userID, achievementID uint) (*model.UserAchievement, error) {
	if _, err := s.UserRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}
	if _, err := s.Get(achievementID); err != nil {
		return nil, err
	}

	ua := &model.UserAchievement{
		UserID:        userID,
		AchievementID: achievementID,
		EarnedDate:    time.Now().UTC(),
	}
	if err := s.Repo.Award(ua); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, util.ErrAchievementAlreadyEarned
		}
		return nil, err
	}

	logger.Log.Info("Achievement awarded",
		zap.Uint("userId", userID),
		zap.Uint("achievementId", achievementID),
	)
	return ua, nil
}

func (s *AchievementService) ListByUser(userID uint) ([]model.UserAchievement, error) {
	if _, err := s.UserRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}
	return s.Repo.ListByUser(userID)
}
