package app

import (
	"learning_platform_backend/docs"
	"learning_platform_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)

		users := api.Group("/users")
		{
			users.POST("", c.user.Create)
			users.GET("", c.user.List)
			users.GET("/:id", c.user.Get)
			users.DELETE("/:id", c.user.Delete)
		}

		courses := api.Group("/courses")
		{
			courses.GET("", c.course.List)
			courses.POST("", c.course.Create)
			courses.GET("/:id", c.course.Get)
			courses.PUT("/:id", c.course.Update)
			courses.DELETE("/:id", c.course.Delete)
			courses.POST("/:id/image", c.course.UploadImage)
			courses.GET("/:id/lessons", c.course.ListLessons)
		}

		lessons := api.Group("/lessons")
		{
			lessons.POST("", c.lesson.Create)
			lessons.GET("/:id", c.lesson.Get)
			lessons.PUT("/:id", c.lesson.Update)
			lessons.DELETE("/:id", c.lesson.Delete)
			lessons.POST("/:id/video", c.lesson.UploadVideo)
			lessons.POST("/:id/progress", c.lesson.SaveProgress)
			lessons.GET("/:id/progress", c.lesson.GetProgress)
		}

		enrollments := api.Group("/enrollments")
		{
			enrollments.POST("", c.enrollment.Enroll)
			enrollments.GET("/:id", c.enrollment.Get)
			enrollments.PUT("/:id/progress", c.enrollment.UpdateProgress)
			enrollments.DELETE("/:id", c.enrollment.Unenroll)
			enrollments.GET("/user/:userId", c.enrollment.ListByUser)
			enrollments.GET("/course/:courseId", c.enrollment.ListByCourse)
		}

		quizzes := api.Group("/quizzes")
		{
			quizzes.GET("", c.quiz.List)
			quizzes.GET("/:id", c.quiz.Get)
			quizzes.GET("/lesson/:lessonId", c.quiz.ListByLesson)
			quizzes.POST("/:id/submit", c.quiz.Submit)
			quizzes.GET("/:id/results", c.quiz.Results)
			quizzes.GET("/attempts/:attemptId", c.quiz.GetAttempt)
			quizzes.GET("/attempts/user/:userId", c.quiz.ListUserAttempts)
		}

		certificates := api.Group("/certificates")
		{
			certificates.POST("/generate", c.certificate.Generate)
			certificates.POST("/verify", c.certificate.Verify)
			certificates.GET("/:id", c.certificate.Get)
			certificates.DELETE("/:id", c.certificate.Revoke)
			certificates.GET("/user/:userId", c.certificate.ListByUser)
			certificates.GET("/course/:courseId", c.certificate.ListByCourse)
		}

		achievements := api.Group("/achievements")
		{
			achievements.GET("", c.achievement.List)
			achievements.POST("", c.achievement.Create)
			achievements.POST("/award", c.achievement.Award)
			achievements.GET("/user/:userId", c.achievement.ListByUser)
		}

		quantum := api.Group("/quantum-networks")
		{
			quantum.GET("/nodes", c.quantum.ListNodes)
			quantum.POST("/nodes", c.quantum.CreateNode)
			quantum.GET("/nodes/:id", c.quantum.GetNode)
			quantum.PUT("/nodes/:id", c.quantum.UpdateNode)
			quantum.DELETE("/nodes/:id", c.quantum.DeleteNode)
			quantum.GET("/links", c.quantum.ListLinks)
			quantum.GET("/state", c.quantum.State)
			quantum.GET("/topology", c.quantum.Topology)
		}
	}
}
