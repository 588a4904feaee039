package controller

import (
	"learning_platform_backend/internal/model"
	"learning_platform_backend/internal/service"
	"learning_platform_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type EnrollmentController struct {
	EnrollmentService *service.EnrollmentService
}

func NewEnrollmentController(enrollmentService *service.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{EnrollmentService: enrollmentService}
}

type EnrollRequest struct {
	UserID   uint `json:"userId" binding:"required"`
	CourseID uint `json:"courseId" binding:"required"`
}

type ProgressUpdateRequest struct {
	CompletionPercentage *float64 `json:"completionPercentage" binding:"required"`
	Status               string   `json:"status"`
}

// @Summary 报名课程
// @Description 建立用户与课程的注册关系，重复报名返回 400
// @Tags 报名
// @Accept json
// @Produce json
// @Param enrollment body EnrollRequest true "报名信息"
// @Success 201 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/enrollments [post]
func (c *EnrollmentController) Enroll(ctx *gin.Context) {
	var req EnrollRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	enrollment, err := c.EnrollmentService.Enroll(req.UserID, req.CourseID)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Created(ctx, enrollment)
}

// @Summary 获取报名记录
// @Tags 报名
// @Produce json
// @Param id path int true "报名ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/enrollments/{id} [get]
func (c *EnrollmentController) Get(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	enrollment, err := c.EnrollmentService.GetEnrollment(id)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, enrollment)
}

// @Summary 用户报名列表
// @Tags 报名
// @Produce json
// @Param userId path int true "用户ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/enrollments/user/{userId} [get]
func (c *EnrollmentController) ListByUser(ctx *gin.Context) {
	userID := util.MustParseUint(ctx.Param("userId"))

	enrollments, err := c.EnrollmentService.ListByUser(userID)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, enrollments)
}

// @Summary 课程报名列表
// @Tags 报名
// @Produce json
// @Param courseId path int true "课程ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/enrollments/course/{courseId} [get]
func (c *EnrollmentController) ListByCourse(ctx *gin.Context) {
	courseID := util.MustParseUint(ctx.Param("courseId"))

	enrollments, err := c.EnrollmentService.ListByCourse(courseID)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, enrollments)
}

// @Summary 更新完成进度
// @Description 进度必须在 [0,100]，status 省略时保持不变
// @Tags 报名
// @Accept json
// @Param id path int true "报名ID"
// @Param progress body ProgressUpdateRequest true "进度信息"
// @Success 204
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/enrollments/{id}/progress [put]
func (c *EnrollmentController) UpdateProgress(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	var req ProgressUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	var status *model.EnrollmentStatus
	if req.Status != "" {
		s := model.EnrollmentStatus(req.Status)
		status = &s
	}

	if err := c.EnrollmentService.UpdateProgress(id, *req.CompletionPercentage, status); err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.NoContent(ctx)
}

// @Summary 退课
// @Description 存在课时进度、答题记录或证书时拒绝
// @Tags 报名
// @Param id path int true "报名ID"
// @Success 204
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/enrollments/{id} [delete]
func (c *EnrollmentController) Unenroll(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	if err := c.EnrollmentService.Unenroll(id); err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.NoContent(ctx)
}
