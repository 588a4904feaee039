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

type EnrollmentService struct {
	Repo       *repository.EnrollmentRepository
	UserRepo   *repository.UserRepository
	CourseRepo *repository.CourseRepository
	LessonRepo *repository.LessonRepository
	QuizRepo   *repository.QuizRepository
	CertRepo   *repository.CertificateRepository
}

func NewEnrollmentService(
	repo *repository.EnrollmentRepository,
	userRepo *repository.UserRepository,
	courseRepo *repository.CourseRepository,
	lessonRepo *repository.LessonRepository,
	quizRepo *repository.QuizRepository,
	certRepo *repository.CertificateRepository,
) *EnrollmentService {
	return &EnrollmentService{
		Repo:       repo,
		UserRepo:   userRepo,
		CourseRepo: courseRepo,
		LessonRepo: lessonRepo,
		QuizRepo:   quizRepo,
		CertRepo:   certRepo,
	}
}

// Enroll 建立用户与课程的注册关系，重复注册是业务拒绝而非内部错误
func (s *EnrollmentService) Enroll(userID, courseID uint) (*model.Enrollment, error) {
	if _, err := s.UserRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}
	if _, err := s.CourseRepo.FindByID(courseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}

	if _, err := s.Repo.FindByUserAndCourse(userID, courseID); err == nil {
		return nil, util.ErrAlreadyEnrolled
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	enrollment := &model.Enrollment{
		UserID:               userID,
		CourseID:             courseID,
		EnrolledDate:         time.Now().UTC(),
		CompletionPercentage: 0,
		Status:               model.EnrollmentInProgress,
	}

	if err := s.Repo.Create(enrollment); err != nil {
		// 唯一索引兜底并发重复注册
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, util.ErrAlreadyEnrolled
		}
		return nil, err
	}

	logger.Log.Info("User enrolled in course",
		zap.Uint("userId", userID),
		zap.Uint("courseId", courseID),
	)
	return enrollment, nil
}

func (s *EnrollmentService) GetEnrollment(id uint) (*model.Enrollment, error) {
	enrollment, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrEnrollmentNotFound
		}
		return nil, err
	}
	return enrollment, nil
}

func (s *EnrollmentService) ListByUser(userID uint) ([]model.Enrollment, error) {
	if _, err := s.UserRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}
	return s.Repo.ListByUser(userID)
}

func (s *EnrollmentService) ListByCourse(courseID uint) ([]model.Enrollment, error) {
	if _, err := s.CourseRepo.FindByID(courseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}
	return s.Repo.ListByCourse(courseID)
}

// UpdateProgress 更新完成进度，percentage 必须落在 [0,100]
// status 为空时保持原状态不变
func (s *EnrollmentService) UpdateProgress(id uint, percentage float64, status *model.EnrollmentStatus) error {
	enrollment, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrEnrollmentNotFound
		}
		return err
	}

	if percentage < 0 || percentage > 100 {
		return util.ErrInvalidProgress
	}

	enrollment.CompletionPercentage = percentage
	if status != nil {
		enrollment.Status = *status
		if *status == model.EnrollmentCompleted && enrollment.CompletedDate == nil {
			now := time.Now().UTC()
			enrollment.CompletedDate = &now
		}
	}

	if err := s.Repo.Update(enrollment); err != nil {
		return err
	}

	logger.Log.Info("Enrollment progress updated",
		zap.Uint("enrollmentId", id),
		zap.Float64("percentage", percentage),
	)
	return nil
}

// Unenroll 退课
// 存在课时进度、答题记录或证书时拒绝删除，以可区分的失败返回而不是吞掉
func (s *EnrollmentService) Unenroll(id uint) error {
	enrollment, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrEnrollmentNotFound
		}
		return err
	}

	dependents, err := s.countDependents(enrollment)
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

	logger.Log.Info("User unenrolled", zap.Uint("enrollmentId", id))
	return nil
}

func (s *EnrollmentService) countDependents(e *model.Enrollment) (int64, error) {
	progress, err := s.LessonRepo.CountProgressForCourseLessons(e.UserID, e.CourseID)
	if err != nil {
		return 0, err
	}
	attempts, err := s.QuizRepo.CountAttemptsForUserCourse(e.UserID, e.CourseID)
	if err != nil {
		return 0, err
	}
	certs, err := s.CertRepo.CountByUserAndCourse(e.UserID, e.CourseID)
	if err != nil {
		return 0, err
	}
	return progress + attempts + certs, nil
}
