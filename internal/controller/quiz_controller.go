package controller

import (
	"learning_platform_backend/internal/service"
	"learning_platform_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	QuizService *service.QuizService
}

func NewQuizController(quizService *service.QuizService) *QuizController {
	return &QuizController{QuizService: quizService}
}

// @Summary 测验列表
// @Tags 测验
// @Produce json
// @Param page query int false "页码" default(1)
// @Param limit query int false "每页数量" default(10)
// @Success 200 {object} util.Response
// @Router /api/quizzes [get]
func (c *QuizController) List(ctx *gin.Context) {
	page, limit := util.ParsePageParams(ctx.Query("page"), ctx.Query("limit"))

	quizzes, total, err := c.QuizService.List(page, limit)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{List: quizzes, Total: total, Page: page, Limit: limit})
}

// @Summary 获取测验详情
// @Description 返回测验及其题目与选项
// @Tags 测验
// @Produce json
// @Param id path int true "测验ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/quizzes/{id} [get]
func (c *QuizController) Get(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	quiz, err := c.QuizService.GetQuiz(id)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, quiz)
}

// @Summary 课时测验列表
// @Tags 测验
// @Produce json
// @Param lessonId path int true "课时ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/quizzes/lesson/{lessonId} [get]
func (c *QuizController) ListByLesson(ctx *gin.Context) {
	lessonID := util.MustParseUint(ctx.Param("lessonId"))

	quizzes, err := c.QuizService.ListByLesson(lessonID)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, quizzes)
}

// @Summary 提交测验
// @Description 为本次作答评分并生成一条答题记录，重复提交各自生成新记录
// @Tags 测验
// @Accept json
// @Produce json
// @Param id path int true "测验ID"
// @Param submission body service.QuizSubmissionRequest true "作答内容"
// @Success 201 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/quizzes/{id}/submit [post]
func (c *QuizController) Submit(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	var req service.QuizSubmissionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	attempt, err := c.QuizService.SubmitQuiz(id, req)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Created(ctx, attempt)
}

// @Summary 测验成绩列表
// @Tags 测验
// @Produce json
// @Param id path int true "测验ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/quizzes/{id}/results [get]
func (c *QuizController) Results(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	attempts, err := c.QuizService.GetResults(id)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, attempts)
}

// @Summary 获取答题记录
// @Tags 测验
// @Produce json
// @Param attemptId path int true "答题记录ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/quizzes/attempts/{attemptId} [get]
func (c *QuizController) GetAttempt(ctx *gin.Context) {
	attemptID := util.MustParseUint(ctx.Param("attemptId"))

	attempt, err := c.QuizService.GetAttempt(attemptID)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, attempt)
}

// @Summary 用户答题记录列表
// @Tags 测验
// @Produce json
// @Param userId path int true "用户ID"
// @Success 200 {object} util.Response
// @Router /api/quizzes/attempts/user/{userId} [get]
func (c *QuizController) ListUserAttempts(ctx *gin.Context) {
	userID := util.MustParseUint(ctx.Param("userId"))

	attempts, err := c.QuizService.ListUserAttempts(userID)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, attempts)
}
