package controller

import (
	"fmt"
	"learning_platform_backend/internal/service"
	"learning_platform_backend/internal/util"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
)

const maxVideoSize = 500 << 20 // 500MB

type LessonController struct {
	LessonService *service.LessonService
}

func NewLessonController(lessonService *service.LessonService) *LessonController {
	return &LessonController{LessonService: lessonService}
}

// @Summary 获取课时
// @Tags 课时
// @Produce json
// @Param id path int true "课时ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/lessons/{id} [get]
func (c *LessonController) Get(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	lesson, err := c.LessonService.Get(id)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, lesson)
}

// @Summary 创建课时
// @Tags 课时
// @Accept json
// @Produce json
// @Param lesson body service.LessonRequest true "课时信息"
// @Success 201 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/lessons [post]
func (c *LessonController) Create(ctx *gin.Context) {
	var req service.LessonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	lesson, err := c.LessonService.Create(req)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Created(ctx, lesson)
}

// @Summary 更新课时
// @Description 部分更新，未提供的字段保持不变
// @Tags 课时
// @Accept json
// @Produce json
// @Param id path int true "课时ID"
// @Param lesson body service.UpdateLessonRequest true "课时信息"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/lessons/{id} [put]
func (c *LessonController) Update(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	var req service.UpdateLessonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	lesson, err := c.LessonService.Update(id, req)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, lesson)
}

// @Summary 删除课时
// @Tags 课时
// @Param id path int true "课时ID"
// @Success 204
// @Failure 404 {object} util.Response
// @Router /api/lessons/{id} [delete]
func (c *LessonController) Delete(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	if err := c.LessonService.Delete(id); err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.NoContent(ctx)
}

// @Summary 上传课时视频
// @Description 上传后用 ffmpeg 探测视频时长并更新课时
// @Tags 课时
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "课时ID"
// @Param video formData file true "视频文件"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/lessons/{id}/video [post]
func (c *LessonController) UploadVideo(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	file, err := ctx.FormFile("video")
	if err != nil {
		util.BadRequest(ctx, "video file is required")
		return
	}
	if file.Size > maxVideoSize {
		util.BadRequest(ctx, "video exceeds size limit")
		return
	}

	// 先落盘到临时文件，ffmpeg 探测需要本地路径
	tmpPath := filepath.Join(os.TempDir(), fmt.Sprintf("upload_%d_%d%s", id, time.Now().UnixNano(), filepath.Ext(file.Filename)))
	if err := ctx.SaveUploadedFile(file, tmpPath); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	lesson, err := c.LessonService.UploadVideo(ctx.Request.Context(), id, tmpPath)
	if err != nil {
		os.Remove(tmpPath)
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, lesson)
}

// @Summary 保存课时进度
// @Description 按用户与课时维度记录观看进度，重复提交覆盖更新
// @Tags 课时
// @Accept json
// @Produce json
// @Param id path int true "课时ID"
// @Param progress body service.ProgressRequest true "进度信息"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/lessons/{id}/progress [post]
func (c *LessonController) SaveProgress(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	var req service.ProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	progress, err := c.LessonService.SaveProgress(id, req)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, progress)
}

// @Summary 查询课时进度
// @Tags 课时
// @Produce json
// @Param id path int true "课时ID"
// @Param userId query int true "用户ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/lessons/{id}/progress [get]
func (c *LessonController) GetProgress(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))
	userID := util.MustParseUint(ctx.Query("userId"))

	progress, err := c.LessonService.GetProgress(id, userID)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, progress)
}
