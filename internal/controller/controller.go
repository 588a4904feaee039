package controller

import (
	"errors"
	"learning_platform_backend/internal/util"
	"net/http"

	"github.com/gin-gonic/gin"
)

// handleServiceError 将服务层错误映射为 HTTP 响应
// 未识别的错误一律按内部错误处理并记日志
func handleServiceError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrUserNotFound),
		errors.Is(err, util.ErrCourseNotFound),
		errors.Is(err, util.ErrLessonNotFound),
		errors.Is(err, util.ErrQuizNotFound),
		errors.Is(err, util.ErrAttemptNotFound),
		errors.Is(err, util.ErrEnrollmentNotFound),
		errors.Is(err, util.ErrCertificateNotFound),
		errors.Is(err, util.ErrAchievementNotFound),
		errors.Is(err, util.ErrQuantumNodeNotFound):
		util.NotFound(ctx, err.Error())

	case errors.Is(err, util.ErrAlreadyEnrolled),
		errors.Is(err, util.ErrNotEnrolled),
		errors.Is(err, util.ErrCertificateAlreadyIssued),
		errors.Is(err, util.ErrAchievementAlreadyEarned),
		errors.Is(err, util.ErrEmailRegistered),
		errors.Is(err, util.ErrInvalidProgress),
		errors.Is(err, util.ErrVerificationCodeRequired),
		errors.Is(err, util.ErrHasDependents):
		util.BadRequest(ctx, err.Error())

	default:
		var incomplete *util.IncompleteCourseError
		if errors.As(err, &incomplete) {
			ctx.JSON(http.StatusBadRequest, util.Response{
				Code:    http.StatusBadRequest,
				Message: incomplete.Error(),
				Data:    gin.H{"completionPercentage": incomplete.Progress},
			})
			return
		}
		util.LogInternalError(ctx, err)
	}
}
