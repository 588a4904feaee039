package service

import (
	"errors"
	"learning_platform_backend/internal/model"
	"learning_platform_backend/internal/repository"
	"learning_platform_backend/internal/util"
	"learning_platform_backend/pkg/logger"
	"learning_platform_backend/pkg/monitoring"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	certificateValidity = 2 * 365 * 24 * time.Hour // 两年有效期
	codeGenMaxRetries   = 5
)

type CertificateService struct {
	Repo           *repository.CertificateRepository
	UserRepo       *repository.UserRepository
	CourseRepo     *repository.CourseRepository
	EnrollmentRepo *repository.EnrollmentRepository
	Codes          CodeGenerator
	db             *gorm.DB
	now            func() time.Time
}

func NewCertificateService(
	repo *repository.CertificateRepository,
	userRepo *repository.UserRepository,
	courseRepo *repository.CourseRepository,
	enrollmentRepo *repository.EnrollmentRepository,
	codes CodeGenerator,
	db *gorm.DB,
) *CertificateService {
	return &CertificateService{
		Repo:           repo,
		UserRepo:       userRepo,
		CourseRepo:     courseRepo,
		EnrollmentRepo: enrollmentRepo,
		Codes:          codes,
		db:             db,
		now:            time.Now,
	}
}

type CertificateDTO struct {
	ID               uint                    `json:"id"`
	UserID           uint                    `json:"userId"`
	CourseID         uint                    `json:"courseId"`
	CourseName       string                  `json:"courseName"`
	VerificationCode string                  `json:"verificationCode"`
	IssuedDate       time.Time               `json:"issuedDate"`
	ExpiryDate       *time.Time              `json:"expiryDate,omitempty"`
	Status           model.CertificateStatus `json:"status"`
}

type CertificateDetail struct {
	ID               uint                    `json:"id"`
	UserName         string                  `json:"userName"`
	UserEmail        string                  `json:"userEmail"`
	CourseName       string                  `json:"courseName"`
	VerificationCode string                  `json:"verificationCode"`
	IssuedDate       time.Time               `json:"issuedDate"`
	ExpiryDate       *time.Time              `json:"expiryDate,omitempty"`
	Status           model.CertificateStatus `json:"status"`
}

type VerificationResult struct {
	VerificationCode string             `json:"verificationCode"`
	IsValid          bool               `json:"isValid"`
	Certificate      *CertificateDetail `json:"certificate,omitempty"`
}

// GenerateCertificate 校验完成条件并发证
// 前置检查依次为：用户、课程、注册、进度、重复发证，各自是独立的失败类别
// 整个流程跑在一个事务里，(user, course) 的唯一索引兜底并发重复请求
func (s *CertificateService) GenerateCertificate(userID, courseID uint) (*CertificateDTO, error) {
	var dto *CertificateDTO

	err := s.db.Transaction(func(tx *gorm.DB) error {
		userRepo := repository.NewUserRepository(tx)
		courseRepo := repository.NewCourseRepository(tx)
		enrollmentRepo := repository.NewEnrollmentRepository(tx)
		certRepo := repository.NewCertificateRepository(tx)

		if _, err := userRepo.FindByID(userID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return util.ErrUserNotFound
			}
			return err
		}

		course, err := courseRepo.FindByID(courseID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return util.ErrCourseNotFound
			}
			return err
		}

		enrollment, err := enrollmentRepo.FindByUserAndCourse(userID, courseID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return util.ErrNotEnrolled
			}
			return err
		}

		if enrollment.CompletionPercentage < 100 {
			return &util.IncompleteCourseError{Progress: enrollment.CompletionPercentage}
		}

		if _, err := certRepo.FindByUserAndCourse(userID, courseID); err == nil {
			return util.ErrCertificateAlreadyIssued
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		code, err := s.uniqueCode(certRepo)
		if err != nil {
			return err
		}

		issued := s.now().UTC()
		expiry := issued.Add(certificateValidity)
		cert := &model.Certificate{
			UserID:           userID,
			CourseID:         courseID,
			VerificationCode: code,
			IssuedDate:       issued,
			ExpiryDate:       &expiry,
			Status:           model.CertificateActive,
		}

		if err := certRepo.Create(cert); err != nil {
			// 并发下两个请求同时通过存在性检查，唯一索引让后到者失败
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return util.ErrCertificateAlreadyIssued
			}
			return err
		}

		dto = &CertificateDTO{
			ID:               cert.ID,
			UserID:           cert.UserID,
			CourseID:         cert.CourseID,
			CourseName:       course.Title,
			VerificationCode: cert.VerificationCode,
			IssuedDate:       cert.IssuedDate,
			ExpiryDate:       cert.ExpiryDate,
			Status:           cert.Status,
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	monitoring.CertificatesIssued.Inc()
	logger.Log.Info("Certificate generated",
		zap.Uint("userId", userID),
		zap.Uint("courseId", courseID),
		zap.String("verificationCode", dto.VerificationCode),
	)
	return dto, nil
}

// uniqueCode 生成验证码并在库内查重，随机空间大但构造上不保证无碰撞
func (s *CertificateService) uniqueCode(repo *repository.CertificateRepository) (string, error) {
	for i := 0; i < codeGenMaxRetries; i++ {
		code, err := s.Codes.Generate(s.now())
		if err != nil {
			return "", err
		}
		exists, err := repo.CodeExists(code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
	return "", errors.New("failed to generate unique verification code")
}

// VerifyCertificate 纯读操作：验证码存在、状态为 Active 且未过期才算有效
// 无效时不返回证书内容
func (s *CertificateService) VerifyCertificate(code string) (*VerificationResult, error) {
	if code == "" {
		return nil, util.ErrVerificationCodeRequired
	}

	result := &VerificationResult{VerificationCode: code}

	cert, err := s.Repo.FindByCode(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Log.Info("Certificate verification failed", zap.String("verificationCode", code))
			return result, nil
		}
		return nil, err
	}

	valid := cert.Status == model.CertificateActive &&
		(cert.ExpiryDate == nil || cert.ExpiryDate.After(s.now().UTC()))
	result.IsValid = valid

	if valid {
		detail, err := s.buildDetail(cert)
		if err != nil {
			return nil, err
		}
		result.Certificate = detail
		logger.Log.Info("Certificate verified", zap.String("verificationCode", code))
	} else {
		logger.Log.Info("Certificate verification failed", zap.String("verificationCode", code))
	}

	return result, nil
}

func (s *CertificateService) buildDetail(cert *model.Certificate) (*CertificateDetail, error) {
	detail := &CertificateDetail{
		ID:               cert.ID,
		UserName:         "Unknown",
		UserEmail:        "Unknown",
		CourseName:       "Unknown Course",
		VerificationCode: cert.VerificationCode,
		IssuedDate:       cert.IssuedDate,
		ExpiryDate:       cert.ExpiryDate,
		Status:           cert.Status,
	}

	if user, err := s.UserRepo.FindByID(cert.UserID); err == nil {
		detail.UserName = user.FullName()
		detail.UserEmail = user.Email
	}
	if course, err := s.CourseRepo.FindByID(cert.CourseID); err == nil {
		detail.CourseName = course.Title
	}
	return detail, nil
}

func (s *CertificateService) GetCertificate(id uint) (*CertificateDetail, error) {
	cert, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCertificateNotFound
		}
		return nil, err
	}
	return s.buildDetail(cert)
}

func (s *CertificateService) ListByUser(userID uint) ([]CertificateDTO, error) {
	if _, err := s.UserRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}

	certs, err := s.Repo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	return s.toDTOs(certs), nil
}

func (s *CertificateService) ListByCourse(courseID uint) ([]CertificateDTO, error) {
	if _, err := s.CourseRepo.FindByID(courseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}

	certs, err := s.Repo.ListByCourse(courseID)
	if err != nil {
		return nil, err
	}
	return s.toDTOs(certs), nil
}

func (s *CertificateService) toDTOs(certs []model.Certificate) []CertificateDTO {
	titles := make(map[uint]string)
	dtos := make([]CertificateDTO, len(certs))
	for i, c := range certs {
		title, ok := titles[c.CourseID]
		if !ok {
			title = "Unknown Course"
			if course, err := s.CourseRepo.FindByID(c.CourseID); err == nil {
				title = course.Title
			}
			titles[c.CourseID] = title
		}
		dtos[i] = CertificateDTO{
			ID:               c.ID,
			UserID:           c.UserID,
			CourseID:         c.CourseID,
			CourseName:       title,
			VerificationCode: c.VerificationCode,
			IssuedDate:       c.IssuedDate,
			ExpiryDate:       c.ExpiryDate,
			Status:           c.Status,
		}
	}
	return dtos
}

// RevokeCertificate 无条件撤销
// 撤销后 (user, course) 的唯一性槽位仍被占用，同一对不会再发新证
func (s *CertificateService) RevokeCertificate(id uint) error {
	if _, err := s.Repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrCertificateNotFound
		}
		return err
	}

	if err := s.Repo.UpdateStatus(id, model.CertificateRevoked); err != nil {
		return err
	}

	logger.Log.Info("Certificate revoked", zap.Uint("certificateId", id))
	return nil
}
