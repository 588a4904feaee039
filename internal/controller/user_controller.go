package controller

import (
	"learning_platform_backend/internal/service"
	"learning_platform_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{UserService: userService}
}

// @Summary 创建用户
// @Description 注册新用户，邮箱必须唯一
// @Tags 用户
// @Accept json
// @Produce json
// @Param user body service.UserRequest true "用户信息"
// @Success 201 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/users [post]
func (c *UserController) Create(ctx *gin.Context) {
	var req service.UserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.UserService.Create(req)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Created(ctx, user)
}

// @Summary 获取用户
// @Tags 用户
// @Produce json
// @Param id path int true "用户ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/users/{id} [get]
func (c *UserController) Get(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	user, err := c.UserService.Get(id)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, user)
}

// @Summary 用户列表
// @Tags 用户
// @Produce json
// @Param page query int false "页码" default(1)
// @Param limit query int false "每页数量" default(10)
// @Success 200 {object} util.Response
// @Router /api/users [get]
func (c *UserController) List(ctx *gin.Context) {
	page, limit := util.ParsePageParams(ctx.Query("page"), ctx.Query("limit"))

	users, total, err := c.UserService.List(page, limit)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{List: users, Total: total, Page: page, Limit: limit})
}

// @Summary 删除用户
// @Tags 用户
// @Param id path int true "用户ID"
// @Success 204
// @Failure 404 {object} util.Response
// @Router /api/users/{id} [delete]
func (c *UserController) Delete(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	if err := c.UserService.Delete(id); err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.NoContent(ctx)
}
