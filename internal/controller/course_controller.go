package controller

import (
	"fmt"
	"learning_platform_backend/internal/service"
	"learning_platform_backend/internal/util"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxImageSize = 10 << 20 // 10MB

type CourseController struct {
	CourseService *service.CourseService
	LessonService *service.LessonService
}

func NewCourseController(courseService *service.CourseService, lessonService *service.LessonService) *CourseController {
	return &CourseController{CourseService: courseService, LessonService: lessonService}
}

// @Summary 课程列表
// @Description 分页获取课程目录，结果带 redis 缓存
// @Tags 课程
// @Produce json
// @Param page query int false "页码" default(1)
// @Param limit query int false "每页数量" default(10)
// @Success 200 {object} util.Response
// @Router /api/courses [get]
func (c *CourseController) List(ctx *gin.Context) {
	page, limit := util.ParsePageParams(ctx.Query("page"), ctx.Query("limit"))

	courses, total, err := c.CourseService.List(ctx.Request.Context(), page, limit)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{List: courses, Total: total, Page: page, Limit: limit})
}

// @Summary 获取课程
// @Tags 课程
// @Produce json
// @Param id path int true "课程ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/courses/{id} [get]
func (c *CourseController) Get(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	course, err := c.CourseService.Get(id)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, course)
}

// @Summary 创建课程
// @Tags 课程
// @Accept json
// @Produce json
// @Param course body service.CourseRequest true "课程信息"
// @Success 201 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/courses [post]
func (c *CourseController) Create(ctx *gin.Context) {
	var req service.CourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	course, err := c.CourseService.Create(ctx.Request.Context(), req)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Created(ctx, course)
}

// @Summary 更新课程
// @Description 部分更新，未提供的字段保持不变
// @Tags 课程
// @Accept json
// @Produce json
// @Param id path int true "课程ID"
// @Param course body service.UpdateCourseRequest true "课程信息"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/courses/{id} [put]
func (c *CourseController) Update(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	var req service.UpdateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	course, err := c.CourseService.Update(ctx.Request.Context(), id, req)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, course)
}

// @Summary 删除课程
// @Description 存在关联报名或课时时拒绝删除
// @Tags 课程
// @Param id path int true "课程ID"
// @Success 204
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/courses/{id} [delete]
func (c *CourseController) Delete(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	if err := c.CourseService.Delete(ctx.Request.Context(), id); err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.NoContent(ctx)
}

// @Summary 上传课程封面
// @Tags 课程
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "课程ID"
// @Param image formData file true "封面图片"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/courses/{id}/image [post]
func (c *CourseController) UploadImage(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	file, err := ctx.FormFile("image")
	if err != nil {
		util.BadRequest(ctx, "image file is required")
		return
	}
	if file.Size > maxImageSize {
		util.BadRequest(ctx, "image exceeds size limit")
		return
	}

	src, err := file.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer src.Close()

	filename := fmt.Sprintf("images/course_%d_%s%s", id, uuid.New().String(), filepath.Ext(file.Filename))
	contentType := file.Header.Get("Content-Type")

	url, err := c.CourseService.UploadImage(ctx.Request.Context(), id, filename, src, file.Size, contentType)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"imageUrl": url})
}

// @Summary 课程课时列表
// @Tags 课程
// @Produce json
// @Param id path int true "课程ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/courses/{id}/lessons [get]
func (c *CourseController) ListLessons(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	lessons, err := c.LessonService.ListByCourse(id)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, lessons)
}
