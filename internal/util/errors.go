package util

import (
	"errors"
	"fmt"
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrCourseNotFound      = errors.New("course not found")
	ErrLessonNotFound      = errors.New("lesson not found")
	ErrQuizNotFound        = errors.New("quiz not found")
	ErrAttemptNotFound     = errors.New("quiz attempt not found")
	ErrEnrollmentNotFound  = errors.New("enrollment not found")
	ErrCertificateNotFound = errors.New("certificate not found")
	ErrAchievementNotFound = errors.New("achievement not found")
	ErrQuantumNodeNotFound = errors.New("quantum node not found")

	ErrAlreadyEnrolled          = errors.New("user is already enrolled in this course")
	ErrNotEnrolled              = errors.New("user is not enrolled in this course")
	ErrCertificateAlreadyIssued = errors.New("certificate has already been issued for this user and course")
	ErrAchievementAlreadyEarned = errors.New("achievement has already been awarded to this user")
	ErrEmailRegistered          = errors.New("email is already registered")

	ErrInvalidProgress          = errors.New("completion percentage must be between 0 and 100")
	ErrVerificationCodeRequired = errors.New("verification code is required")

	ErrHasDependents = errors.New("record has related data and cannot be deleted")
)

// IncompleteCourseError 课程未完成时拒绝发证，携带当前进度返回给调用方
type IncompleteCourseError struct {
	Progress float64
}

func (e *IncompleteCourseError) Error() string {
	return fmt.Sprintf("user has not completed the course (progress: %.2f%%)", e.Progress)
}
