package controller

import (
	"learning_platform_backend/internal/service"
	"learning_platform_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AchievementController struct {
	AchievementService *service.AchievementService
}

func NewAchievementController(achievementService *service.AchievementService) *AchievementController {
	return &AchievementController{AchievementService: achievementService}
}

type AwardRequest struct {
	UserID        uint `json:"userId" binding:"required"`
	AchievementID uint `json:"achievementId" binding:"required"`
}

// @Summary 成就列表
// @Tags 成就
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/achievements [get]
func (c *AchievementController) List(ctx *gin.Context) {
	achievements, err := c.AchievementService.List()
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, achievements)
}

// @Summary 创建成就
// @Tags 成就
// @Accept json
// @Produce json
// @Param achievement body service.AchievementRequest true "成就信息"
// @Success 201 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/achievements [post]
func (c *AchievementController) Create(ctx *gin.Context) {
	var req service.AchievementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	achievement, err := c.AchievementService.Create(req)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Created(ctx, achievement)
}

// @Summary 颁发成就
// @Description 同一用户同一成就只颁发一次，重复颁发返回 400
// @Tags 成就
// @Accept json
// @Produce json
// @Param request body AwardRequest true "颁发请求"
// @Success 201 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/achievements/award [post]
func (c *AchievementController) Award(ctx *gin.Context) {
	var req AwardRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	ua, err := c.AchievementService.Award(req.UserID, req.AchievementID)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Created(ctx, ua)
}

// @Summary 用户成就列表
// @Tags 成就
// @Produce json
// @Param userId path int true "用户ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/achievements/user/{userId} [get]
func (c *AchievementController) ListByUser(ctx *gin.Context) {
	userID := util.MustParseUint(ctx.Param("userId"))

	achievements, err := c.AchievementService.ListByUser(userID)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, achievements)
}
