package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"learning_platform_backend/internal/config"
	"learning_platform_backend/internal/model"
	"learning_platform_backend/internal/repository"
	"learning_platform_backend/internal/util"
	"learning_platform_backend/pkg/logger"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CourseService struct {
	Repo    *repository.CourseRepository
	Storage *StorageService
	rdb     *redis.Client
	cfg     *config.Config
}

func NewCourseService(repo *repository.CourseRepository, storage *StorageService, rdb *redis.Client, cfg *config.Config) *CourseService {
	return &CourseService{Repo: repo, Storage: storage, rdb: rdb, cfg: cfg}
}

type CourseRequest struct {
	Title         string  `json:"title" binding:"required"`
	Description   string  `json:"description"`
	Category      string  `json:"category"`
	Duration      string  `json:"duration"`
	DurationHours int     `json:"durationHours"`
	Level         string  `json:"level"`
	Instructor    string  `json:"instructor"`
	ImageURL      string  `json:"imageUrl"`
	Price         float64 `json:"price"`
}

// UpdateCourseRequest 部分更新，零值字段不触碰
type UpdateCourseRequest struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Category      string   `json:"category"`
	Duration      string   `json:"duration"`
	DurationHours *int     `json:"durationHours"`
	Level         string   `json:"level"`
	Instructor    string   `json:"instructor"`
	ImageURL      string   `json:"imageUrl"`
	Price         *float64 `json:"price"`
}

type coursePage struct {
	Items []model.Course `json:"items"`
	Total int64          `json:"total"`
}

func courseCacheKey(page, limit int) string {
	return fmt.Sprintf("courses:page:%d:limit:%d", page, limit)
}

// List 课程目录，按页缓存于 redis，写操作时整体失效
func (s *CourseService) List(ctx context.Context, page, limit int) ([]model.Course, int64, error) {
	key := courseCacheKey(page, limit)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, key).Result(); err == nil {
			var p coursePage
			if json.Unmarshal([]byte(cached), &p) == nil {
				return p.Items, p.Total, nil
			}
		}
	}

	items, total, err := s.Repo.List(page, limit)
	if err != nil {
		return nil, 0, err
	}

	if s.rdb != nil {
		if payload, err := json.Marshal(coursePage{Items: items, Total: total}); err == nil {
			ttl := time.Duration(s.cfg.Cache.CourseTTLSeconds) * time.Second
			s.rdb.Set(ctx, key, payload, ttl)
		}
	}

	return items, total, nil
}

func (s *CourseService) invalidateCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	keys, err := s.rdb.Keys(ctx, "courses:page:*").Result()
	if err != nil || len(keys) == 0 {
		return
	}
	s.rdb.Del(ctx, keys...)
}

func (s *CourseService) Get(id uint) (*model.Course, error) {
	course, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}
	return course, nil
}

func (s *CourseService) Create(ctx context.Context, req CourseRequest) (*model.Course, error) {
	level := model.CourseLevel(req.Level)
	if level == "" {
		level = model.LevelBeginner
	}

	course := &model.Course{
		Title:         req.Title,
		Description:   req.Description,
		Category:      req.Category,
		Duration:      req.Duration,
		DurationHours: req.DurationHours,
		Level:         level,
		Instructor:    req.Instructor,
		ImageURL:      req.ImageURL,
		Price:         req.Price,
	}
	if err := s.Repo.Create(course); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)
	logger.Log.Info("Course created", zap.Uint("courseId", course.ID), zap.String("title", course.Title))
	return course, nil
}

func (s *CourseService) Update(ctx context.Context, id uint, req UpdateCourseRequest) (*model.Course, error) {
	course, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.Title != "" {
		course.Title = req.Title
	}
	if req.Description != "" {
		course.Description = req.Description
	}
	if req.Category != "" {
		course.Category = req.Category
	}
	if req.Duration != "" {
		course.Duration = req.Duration
	}
	if req.DurationHours != nil {
		course.DurationHours = *req.DurationHours
	}
	if req.Level != "" {
		course.Level = model.CourseLevel(req.Level)
	}
	if req.Instructor != "" {
		course.Instructor = req.Instructor
	}
	if req.ImageURL != "" {
		course.ImageURL = req.ImageURL
	}
	if req.Price != nil {
		course.Price = *req.Price
	}

	if err := s.Repo.Update(course); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)
	return course, nil
}

// Delete 有关联报名或课时时拒绝删除
func (s *CourseService) Delete(ctx context.Context, id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}

	dependents, err := s.Repo.CountDependents(id)
	if err != nil {
		return err
	}
	if dependents > 0 {
		return util.ErrHasDependents
	}

	if err := s.Repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return util.ErrHasDependents
		}
		return err
	}

	s.invalidateCache(ctx)
	logger.Log.Info("Course deleted", zap.Uint("courseId", id))
	return nil
}

// UploadImage 上传课程封面并更新 imageUrl
func (s *CourseService) UploadImage(ctx context.Context, id uint, filename string, reader io.Reader, size int64, contentType string) (string, error) {
	course, err := s.Get(id)
	if err != nil {
		return "", err
	}

	url, err := s.Storage.Upload(ctx, filename, reader, size, contentType)
	if err != nil {
		return "", err
	}

	course.ImageURL = url
	if err := s.Repo.Update(course); err != nil {
		return "", err
	}

	s.invalidateCache(ctx)
	return url, nil
}
