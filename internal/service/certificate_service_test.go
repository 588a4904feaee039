package service

import (
	"learning_platform_backend/internal/model"
	"learning_platform_backend/internal/repository"
	"learning_platform_backend/internal/util"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCertService(db *gorm.DB) *CertificateService {
	return NewCertificateService(
		repository.NewCertificateRepository(db),
		repository.NewUserRepository(db),
		repository.NewCourseRepository(db),
		repository.NewEnrollmentRepository(db),
		SecureCodeGenerator{},
		db,
	)
}

func enroll(t *testing.T, db *gorm.DB, userID, courseID uint, progress float64) *model.Enrollment {
	t.Helper()
	e := &model.Enrollment{
		UserID:               userID,
		CourseID:             courseID,
		EnrolledDate:         time.Now().UTC(),
		CompletionPercentage: progress,
		Status:               model.EnrollmentInProgress,
	}
	require.NoError(t, db.Create(e).Error)
	return e
}

func TestGenerateCertificate(t *testing.T) {
	db := newTestDB(t)
	svc := newCertService(db)

	user := createTestUser(t, db, "cert@example.com")
	course := createTestCourse(t, db, "Completed Course")
	enroll(t, db, user.ID, course.ID, 100)

	cert, err := svc.GenerateCertificate(user.ID, course.ID)
	require.NoError(t, err)

	assert.Equal(t, user.ID, cert.UserID)
	assert.Equal(t, course.ID, cert.CourseID)
	assert.Equal(t, "Completed Course", cert.CourseName)
	assert.Equal(t, model.CertificateActive, cert.Status)
	assert.Regexp(t, regexp.MustCompile(`^CERT-\d{8}-[A-Z0-9]{12}$`), cert.VerificationCode)
	require.NotNil(t, cert.ExpiryDate)
	assert.WithinDuration(t, cert.IssuedDate.Add(certificateValidity), *cert.ExpiryDate, time.Second)
}

func TestGenerateCertificatePreconditions(t *testing.T) {
	db := newTestDB(t)
	svc := newCertService(db)

	user := createTestUser(t, db, "pre@example.com")
	course := createTestCourse(t, db, "Course")

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.GenerateCertificate(99999, course.ID)
		assert.ErrorIs(t, err, util.ErrUserNotFound)
	})

	t.Run("unknown course", func(t *testing.T) {
		_, err := svc.GenerateCertificate(user.ID, 99999)
		assert.ErrorIs(t, err, util.ErrCourseNotFound)
	})

	t.Run("not enrolled", func(t *testing.T) {
		_, err := svc.GenerateCertificate(user.ID, course.ID)
		assert.ErrorIs(t, err, util.ErrNotEnrolled)
	})

	t.Run("incomplete course carries progress", func(t *testing.T) {
		other := createTestCourse(t, db, "Other")
		enroll(t, db, user.ID, other.ID, 62.5)

		_, err := svc.GenerateCertificate(user.ID, other.ID)
		var incomplete *util.IncompleteCourseError
		require.ErrorAs(t, err, &incomplete)
		assert.Equal(t, 62.5, incomplete.Progress)
		assert.Contains(t, err.Error(), "62.50")
	})
}

func TestGenerateCertificateDuplicate(t *testing.T) {
	db := newTestDB(t)
	svc := newCertService(db)

	user := createTestUser(t, db, "dup@example.com")
	course := createTestCourse(t, db, "Course")
	enroll(t, db, user.ID, course.ID, 100)

	_, err := svc.GenerateCertificate(user.ID, course.ID)
	require.NoError(t, err)

	_, err = svc.GenerateCertificate(user.ID, course.ID)
	assert.ErrorIs(t, err, util.ErrCertificateAlreadyIssued)

	var count int64
	require.NoError(t, db.Model(&model.Certificate{}).
		Where("user_id = ? AND course_id = ?", user.ID, course.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestVerifyCertificate(t *testing.T) {
	db := newTestDB(t)
	svc := newCertService(db)

	user := createTestUser(t, db, "verify@example.com")
	course := createTestCourse(t, db, "Course")
	enroll(t, db, user.ID, course.ID, 100)

	cert, err := svc.GenerateCertificate(user.ID, course.ID)
	require.NoError(t, err)

	t.Run("valid certificate", func(t *testing.T) {
		result, err := svc.VerifyCertificate(cert.VerificationCode)
		require.NoError(t, err)
		assert.True(t, result.IsValid)
		require.NotNil(t, result.Certificate)
		assert.Equal(t, "Test User", result.Certificate.UserName)
		assert.Equal(t, "verify@example.com", result.Certificate.UserEmail)
		assert.Equal(t, "Course", result.Certificate.CourseName)
	})

	t.Run("blank code", func(t *testing.T) {
		_, err := svc.VerifyCertificate("")
		assert.ErrorIs(t, err, util.ErrVerificationCodeRequired)
	})

	t.Run("unknown code", func(t *testing.T) {
		result, err := svc.VerifyCertificate("CERT-20240101-DOESNOTEXIST")
		require.NoError(t, err)
		assert.False(t, result.IsValid)
		assert.Nil(t, result.Certificate)
	})

	t.Run("expired but still Active is invalid", func(t *testing.T) {
		// 把时钟拨到有效期之后，状态字段保持 Active
		svc.now = func() time.Time { return time.Now().UTC().Add(certificateValidity + time.Hour) }
		defer func() { svc.now = time.Now }()

		result, err := svc.VerifyCertificate(cert.VerificationCode)
		require.NoError(t, err)
		assert.False(t, result.IsValid)
		assert.Nil(t, result.Certificate)
	})

	t.Run("revoked is invalid despite future expiry", func(t *testing.T) {
		require.NoError(t, svc.RevokeCertificate(cert.ID))

		result, err := svc.VerifyCertificate(cert.VerificationCode)
		require.NoError(t, err)
		assert.False(t, result.IsValid)
		assert.Nil(t, result.Certificate)
	})
}

func TestRevokeCertificate(t *testing.T) {
	db := newTestDB(t)
	svc := newCertService(db)

	user := createTestUser(t, db, "revoke@example.com")
	course := createTestCourse(t, db, "Course")
	enroll(t, db, user.ID, course.ID, 100)

	cert, err := svc.GenerateCertificate(user.ID, course.ID)
	require.NoError(t, err)

	require.NoError(t, svc.RevokeCertificate(cert.ID))

	stored, err := repository.NewCertificateRepository(db).FindByID(cert.ID)
	require.NoError(t, err)
	assert.Equal(t, model.CertificateRevoked, stored.Status)

	t.Run("revoked pair cannot be reissued", func(t *testing.T) {
		_, err := svc.GenerateCertificate(user.ID, course.ID)
		assert.ErrorIs(t, err, util.ErrCertificateAlreadyIssued)
	})

	t.Run("unknown certificate", func(t *testing.T) {
		assert.ErrorIs(t, svc.RevokeCertificate(99999), util.ErrCertificateNotFound)
	})
}
