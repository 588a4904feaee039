package service

import (
	"learning_platform_backend/internal/model"
	"learning_platform_backend/internal/repository"
	"learning_platform_backend/internal/util"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newEnrollmentService(db *gorm.DB) *EnrollmentService {
	return NewEnrollmentService(
		repository.NewEnrollmentRepository(db),
		repository.NewUserRepository(db),
		repository.NewCourseRepository(db),
		repository.NewLessonRepository(db),
		repository.NewQuizRepository(db),
		repository.NewCertificateRepository(db),
	)
}

func TestEnroll(t *testing.T) {
	db := newTestDB(t)
	svc := newEnrollmentService(db)

	user := createTestUser(t, db, "enroll@example.com")
	course := createTestCourse(t, db, "Course")

	t.Run("creates enrollment with defaults", func(t *testing.T) {
		enrollment, err := svc.Enroll(user.ID, course.ID)
		require.NoError(t, err)
		assert.Equal(t, model.EnrollmentInProgress, enrollment.Status)
		assert.Equal(t, 0.0, enrollment.CompletionPercentage)
		assert.False(t, enrollment.EnrolledDate.IsZero())
	})

	t.Run("duplicate enrollment rejected with a single row", func(t *testing.T) {
		_, err := svc.Enroll(user.ID, course.ID)
		assert.ErrorIs(t, err, util.ErrAlreadyEnrolled)

		var count int64
		require.NoError(t, db.Model(&model.Enrollment{}).
			Where("user_id = ? AND course_id = ?", user.ID, course.ID).Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.Enroll(99999, course.ID)
		assert.ErrorIs(t, err, util.ErrUserNotFound)
	})

	t.Run("unknown course", func(t *testing.T) {
		_, err := svc.Enroll(user.ID, 99999)
		assert.ErrorIs(t, err, util.ErrCourseNotFound)
	})
}

func TestUpdateProgress(t *testing.T) {
	db := newTestDB(t)
	svc := newEnrollmentService(db)

	user := createTestUser(t, db, "progress@example.com")
	course := createTestCourse(t, db, "Course")
	enrollment, err := svc.Enroll(user.ID, course.ID)
	require.NoError(t, err)

	t.Run("rejects progress outside bounds", func(t *testing.T) {
		assert.ErrorIs(t, svc.UpdateProgress(enrollment.ID, -1, nil), util.ErrInvalidProgress)
		assert.ErrorIs(t, svc.UpdateProgress(enrollment.ID, 100.01, nil), util.ErrInvalidProgress)
	})

	t.Run("status unchanged when omitted", func(t *testing.T) {
		require.NoError(t, svc.UpdateProgress(enrollment.ID, 40, nil))

		stored, err := svc.GetEnrollment(enrollment.ID)
		require.NoError(t, err)
		assert.Equal(t, 40.0, stored.CompletionPercentage)
		assert.Equal(t, model.EnrollmentInProgress, stored.Status)
		assert.Nil(t, stored.CompletedDate)
	})

	t.Run("completion sets completed date", func(t *testing.T) {
		completed := model.EnrollmentCompleted
		require.NoError(t, svc.UpdateProgress(enrollment.ID, 100, &completed))

		stored, err := svc.GetEnrollment(enrollment.ID)
		require.NoError(t, err)
		assert.Equal(t, model.EnrollmentCompleted, stored.Status)
		require.NotNil(t, stored.CompletedDate)
		assert.WithinDuration(t, time.Now().UTC(), *stored.CompletedDate, time.Minute)
	})

	t.Run("unknown enrollment", func(t *testing.T) {
		assert.ErrorIs(t, svc.UpdateProgress(99999, 50, nil), util.ErrEnrollmentNotFound)
	})
}

func TestUnenroll(t *testing.T) {
	db := newTestDB(t)
	svc := newEnrollmentService(db)

	user := createTestUser(t, db, "unenroll@example.com")

	t.Run("deletes clean enrollment", func(t *testing.T) {
		course := createTestCourse(t, db, "Clean")
		enrollment, err := svc.Enroll(user.ID, course.ID)
		require.NoError(t, err)

		require.NoError(t, svc.Unenroll(enrollment.ID))

		_, err = svc.GetEnrollment(enrollment.ID)
		assert.ErrorIs(t, err, util.ErrEnrollmentNotFound)
	})

	t.Run("blocked by lesson progress", func(t *testing.T) {
		course := createTestCourse(t, db, "With Progress")
		lesson := createTestLesson(t, db, course.ID)
		enrollment, err := svc.Enroll(user.ID, course.ID)
		require.NoError(t, err)

		require.NoError(t, db.Create(&model.LessonProgress{
			UserID:   user.ID,
			LessonID: lesson.ID,
		}).Error)

		assert.ErrorIs(t, svc.Unenroll(enrollment.ID), util.ErrHasDependents)
	})

	t.Run("blocked by quiz attempts", func(t *testing.T) {
		course := createTestCourse(t, db, "With Attempts")
		lesson := createTestLesson(t, db, course.ID)
		quiz, _, _ := createTestQuiz(t, db, lesson.ID, 1, 70)
		enrollment, err := svc.Enroll(user.ID, course.ID)
		require.NoError(t, err)

		require.NoError(t, db.Create(&model.QuizAttempt{
			UserID:      user.ID,
			QuizID:      quiz.ID,
			Score:       100,
			Passed:      true,
			AttemptDate: time.Now().UTC(),
		}).Error)

		assert.ErrorIs(t, svc.Unenroll(enrollment.ID), util.ErrHasDependents)
	})

	t.Run("blocked by certificate", func(t *testing.T) {
		course := createTestCourse(t, db, "With Certificate")
		enrollment, err := svc.Enroll(user.ID, course.ID)
		require.NoError(t, err)

		require.NoError(t, db.Create(&model.Certificate{
			UserID:           user.ID,
			CourseID:         course.ID,
			VerificationCode: "CERT-20250101-AAAABBBBCCCC",
			IssuedDate:       time.Now().UTC(),
			Status:           model.CertificateActive,
		}).Error)

		assert.ErrorIs(t, svc.Unenroll(enrollment.ID), util.ErrHasDependents)
	})

	t.Run("unknown enrollment", func(t *testing.T) {
		assert.ErrorIs(t, svc.Unenroll(99999), util.ErrEnrollmentNotFound)
	})
}

func TestReenrollAfterUnenroll(t *testing.T) {
	db := newTestDB(t)
	svc := newEnrollmentService(db)

	user := createTestUser(t, db, "reenroll@example.com")
	course := createTestCourse(t, db, "Course")

	first, err := svc.Enroll(user.ID, course.ID)
	require.NoError(t, err)
	require.NoError(t, svc.Unenroll(first.ID))

	second, err := svc.Enroll(user.ID, course.ID)
	require.NoError(t, err)
	assert.Equal(t, model.EnrollmentInProgress, second.Status)
	assert.Equal(t, 0.0, second.CompletionPercentage)

	// 含软删行统计，确认退课没有留下占用唯一索引的残留行
	var count int64
	require.NoError(t, db.Unscoped().Model(&model.Enrollment{}).
		Where("user_id = ? AND course_id = ?", user.ID, course.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
