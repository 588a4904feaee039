package controller

import (
	"learning_platform_backend/internal/service"
	"learning_platform_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CertificateController struct {
	CertificateService *service.CertificateService
}

func NewCertificateController(certificateService *service.CertificateService) *CertificateController {
	return &CertificateController{CertificateService: certificateService}
}

type GenerateCertificateRequest struct {
	UserID   uint `json:"userId" binding:"required"`
	CourseID uint `json:"courseId" binding:"required"`
}

// @Summary 颁发证书
// @Description 校验课程完成条件后颁发证书，进度不足或已有证书返回 400
// @Tags 证书
// @Accept json
// @Produce json
// @Param request body GenerateCertificateRequest true "颁发请求"
// @Success 201 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/certificates/generate [post]
func (c *CertificateController) Generate(ctx *gin.Context) {
	var req GenerateCertificateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	cert, err := c.CertificateService.GenerateCertificate(req.UserID, req.CourseID)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Created(ctx, cert)
}

type VerifyCertificateRequest struct {
	VerificationCode string `json:"verificationCode"`
}

// @Summary 验证证书
// @Description 按验证码验证证书，无效时只返回验证结果不含证书内容；空验证码是校验错误而非未找到
// @Tags 证书
// @Accept json
// @Produce json
// @Param request body VerifyCertificateRequest true "验证请求"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/certificates/verify [post]
func (c *CertificateController) Verify(ctx *gin.Context) {
	var req VerifyCertificateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.CertificateService.VerifyCertificate(req.VerificationCode)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, result)
}

// @Summary 获取证书
// @Tags 证书
// @Produce json
// @Param id path int true "证书ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/certificates/{id} [get]
func (c *CertificateController) Get(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	cert, err := c.CertificateService.GetCertificate(id)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, cert)
}

// @Summary 用户证书列表
// @Tags 证书
// @Produce json
// @Param userId path int true "用户ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/certificates/user/{userId} [get]
func (c *CertificateController) ListByUser(ctx *gin.Context) {
	userID := util.MustParseUint(ctx.Param("userId"))

	certs, err := c.CertificateService.ListByUser(userID)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, certs)
}

// @Summary 课程证书列表
// @Tags 证书
// @Produce json
// @Param courseId path int true "课程ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/certificates/course/{courseId} [get]
func (c *CertificateController) ListByCourse(ctx *gin.Context) {
	courseID := util.MustParseUint(ctx.Param("courseId"))

	certs, err := c.CertificateService.ListByCourse(courseID)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, certs)
}

// @Summary 撤销证书
// @Description 无条件撤销，撤销后同一用户课程组合不再补发
// @Tags 证书
// @Param id path int true "证书ID"
// @Success 204
// @Failure 404 {object} util.Response
// @Router /api/certificates/{id} [delete]
func (c *CertificateController) Revoke(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	if err := c.CertificateService.RevokeCertificate(id); err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.NoContent(ctx)
}
