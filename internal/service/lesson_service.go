package service

import (
	"context"
	"errors"
	"fmt"
	"learning_platform_backend/internal/model"
	"learning_platform_backend/internal/repository"
	"learning_platform_backend/internal/util"
	"learning_platform_backend/pkg/logger"
	"math"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type LessonService struct {
	Repo       *repository.LessonRepository
	CourseRepo *repository.CourseRepository
	UserRepo   *repository.UserRepository
	Storage    *StorageService
}

func NewLessonService(
	repo *repository.LessonRepository,
	courseRepo *repository.CourseRepository,
	userRepo *repository.UserRepository,
	storage *StorageService,
) *LessonService {
	return &LessonService{Repo: repo, CourseRepo: courseRepo, UserRepo: userRepo, Storage: storage}
}

type LessonRequest struct {
	CourseID    uint   `json:"courseId" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Content     string `json:"content"`
	Duration    int    `json:"duration"`
	LessonOrder int    `json:"lessonOrder"`
	VideoURL    string `json:"videoUrl"`
}

// UpdateLessonRequest 部分更新，零值字段不触碰
type UpdateLessonRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	Duration    *int   `json:"duration"`
	LessonOrder *int   `json:"lessonOrder"`
	VideoURL    string `json:"videoUrl"`
}

type ProgressRequest struct {
	UserID          uint `json:"userId" binding:"required"`
	IsCompleted     bool `json:"isCompleted"`
	WatchedDuration int  `json:"watchedDuration"`
}

func (s *LessonService) Get(id uint) (*model.Lesson, error) {
	lesson, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrLessonNotFound
		}
		return nil, err
	}
	return lesson, nil
}

func (s *LessonService) ListByCourse(courseID uint) ([]model.Lesson, error) {
	if _, err := s.CourseRepo.FindByID(courseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}
	return s.Repo.ListByCourse(courseID)
}

func (s *LessonService) Create(req LessonRequest) (*model.Lesson, error) {
	if _, err := s.CourseRepo.FindByID(req.CourseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}

	lesson := &model.Lesson{
		CourseID:    req.CourseID,
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
		Duration:    req.Duration,
		LessonOrder: req.LessonOrder,
		VideoURL:    req.VideoURL,
	}
	if err := s.Repo.Create(lesson); err != nil {
		return nil, err
	}

	logger.Log.Info("Lesson created",
		zap.Uint("lessonId", lesson.ID),
		zap.Uint("courseId", lesson.CourseID),
	)
	return lesson, nil
}

func (s *LessonService) Update(id uint, req UpdateLessonRequest) (*model.Lesson, error) {
	lesson, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.Title != "" {
		lesson.Title = req.Title
	}
	if req.Description != "" {
		lesson.Description = req.Description
	}
	if req.Content != "" {
		lesson.Content = req.Content
	}
	if req.Duration != nil {
		lesson.Duration = *req.Duration
	}
	if req.LessonOrder != nil {
		lesson.LessonOrder = *req.LessonOrder
	}
	if req.VideoURL != "" {
		lesson.VideoURL = req.VideoURL
	}

	if err := s.Repo.Update(lesson); err != nil {
		return nil, err
	}
	return lesson, nil
}

func (s *LessonService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	if err := s.Repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return util.ErrHasDependents
		}
		return err
	}
	logger.Log.Info("Lesson deleted", zap.Uint("lessonId", id))
	return nil
}

// UploadVideo 上传课时视频，用 ffmpeg 探测时长并回写 lesson
// localPath 是已落盘的临时文件，探测失败不阻断上传，时长保持原值
func (s *LessonService) UploadVideo(ctx context.Context, id uint, localPath string) (*model.Lesson, error) {
	lesson, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	filename := fmt.Sprintf("videos/lesson_%d_%d%s", id, time.Now().Unix(), filepath.Ext(localPath))
	url, err := s.Storage.UploadFile(ctx, filename, localPath, "video/mp4")
	if err != nil {
		return nil, err
	}

	lesson.VideoURL = url
	if info, err := util.GetVideoInfo(localPath); err == nil && info.Duration > 0 {
		lesson.Duration = int(math.Ceil(info.Duration / 60))
	} else if err != nil {
		logger.Log.Warn("Failed to probe video duration",
			zap.Uint("lessonId", id),
			zap.Error(err),
		)
	}

	if err := s.Repo.Update(lesson); err != nil {
		return nil, err
	}

	os.Remove(localPath)
	logger.Log.Info("Lesson video uploaded",
		zap.Uint("lessonId", id),
		zap.String("videoUrl", url),
	)
	return lesson, nil
}

// SaveProgress 按 (user, lesson) 维度 upsert 观看进度
func (s *LessonService) SaveProgress(lessonID uint, req ProgressRequest) (*model.LessonProgress, error) {
	if _, err := s.Get(lessonID); err != nil {
		return nil, err
	}
	if _, err := s.UserRepo.FindByID(req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}

	progress, err := s.Repo.FindProgress(req.UserID, lessonID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		progress = &model.LessonProgress{UserID: req.UserID, LessonID: lessonID}
	}

	progress.IsCompleted = req.IsCompleted
	if req.WatchedDuration > progress.WatchedDuration {
		progress.WatchedDuration = req.WatchedDuration
	}
	if req.IsCompleted && progress.CompletedDate == nil {
		now := time.Now().UTC()
		progress.CompletedDate = &now
	}

	if err := s.Repo.SaveProgress(progress); err != nil {
		return nil, err
	}
	return progress, nil
}

func (s *LessonService) GetProgress(lessonID, userID uint) (*model.LessonProgress, error) {
	if _, err := s.Get(lessonID); err != nil {
		return nil, err
	}
	progress, err := s.Repo.FindProgress(userID, lessonID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &model.LessonProgress{UserID: userID, LessonID: lessonID}, nil
		}
		return nil, err
	}
	return progress, nil
}
