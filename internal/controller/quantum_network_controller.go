package controller

import (
	"learning_platform_backend/internal/service"
	"learning_platform_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// QuantumNetworkController 量子网络监控演示接口，数据来自内存表不落库
type QuantumNetworkController struct {
	QuantumService *service.QuantumNetworkService
}

func NewQuantumNetworkController(quantumService *service.QuantumNetworkService) *QuantumNetworkController {
	return &QuantumNetworkController{QuantumService: quantumService}
}

// @Summary 量子节点列表
// @Tags 量子网络
// @Produce json
// @Param page query int false "页码" default(1)
// @Param limit query int false "每页数量" default(20)
// @Success 200 {object} util.Response
// @Router /api/quantum-networks/nodes [get]
func (c *QuantumNetworkController) ListNodes(ctx *gin.Context) {
	page, limit := util.ParsePageParams(ctx.Query("page"), ctx.Query("limit"))

	nodes, total := c.QuantumService.ListNodes(page, limit)
	util.Success(ctx, util.PageResponse{List: nodes, Total: int64(total), Page: page, Limit: limit})
}

// @Summary 获取量子节点
// @Tags 量子网络
// @Produce json
// @Param id path int true "节点ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/quantum-networks/nodes/{id} [get]
func (c *QuantumNetworkController) GetNode(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	node, err := c.QuantumService.GetNode(id)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, node)
}

// @Summary 创建量子节点
// @Tags 量子网络
// @Accept json
// @Produce json
// @Param node body service.QuantumNodeRequest true "节点信息"
// @Success 201 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/quantum-networks/nodes [post]
func (c *QuantumNetworkController) CreateNode(ctx *gin.Context) {
	var req service.QuantumNodeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	node := c.QuantumService.CreateNode(req)
	util.Created(ctx, node)
}

// @Summary 更新量子节点
// @Tags 量子网络
// @Accept json
// @Produce json
// @Param id path int true "节点ID"
// @Param node body service.UpdateQuantumNodeRequest true "节点信息"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/quantum-networks/nodes/{id} [put]
func (c *QuantumNetworkController) UpdateNode(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	var req service.UpdateQuantumNodeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	node, err := c.QuantumService.UpdateNode(id, req)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, node)
}

// @Summary 删除量子节点
// @Tags 量子网络
// @Param id path int true "节点ID"
// @Success 204
// @Failure 404 {object} util.Response
// @Router /api/quantum-networks/nodes/{id} [delete]
func (c *QuantumNetworkController) DeleteNode(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	if err := c.QuantumService.DeleteNode(id); err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.NoContent(ctx)
}

// @Summary 量子链路列表
// @Tags 量子网络
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/quantum-networks/links [get]
func (c *QuantumNetworkController) ListLinks(ctx *gin.Context) {
	util.Success(ctx, c.QuantumService.ListLinks())
}

// @Summary 量子网络状态
// @Description 实时指标每次请求重新采样
// @Tags 量子网络
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/quantum-networks/state [get]
func (c *QuantumNetworkController) State(ctx *gin.Context) {
	util.Success(ctx, c.QuantumService.State())
}

// @Summary 量子网络拓扑
// @Tags 量子网络
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/quantum-networks/topology [get]
func (c *QuantumNetworkController) Topology(ctx *gin.Context) {
	util.Success(ctx, c.QuantumService.Topology())
}
