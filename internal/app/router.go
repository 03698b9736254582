package app

import (
	"hire_assess_backend/docs"
	"hire_assess_backend/internal/config"
	"hire_assess_backend/internal/middleware"
	"hire_assess_backend/internal/model"

	"hire_assess_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	a.registerPublicRoutes(router, c)

	// 2. 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		authGroup.GET("/me", c.auth.Me)
		authGroup.GET("/users", c.user.ListUsers)

		// 候选人接口
		a.registerCandidateRoutes(authGroup, c)

		// 招聘方接口
		a.registerRecruiterRoutes(authGroup, c)

		// 管理员接口
		a.registerAdminRoutes(authGroup, c)
	}
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)

		// 邀请链接落地页使用，仅凭 token 读取
		public.GET("/invitations/:token", c.candidateAssessment.ByInviteToken)
	}
}

func (a *App) registerCandidateRoutes(rg *gin.RouterGroup, c *controllers) {
	candidate := rg.Group("/candidate")
	candidate.Use(middleware.RoleMiddleware(model.Candidate))
	{
		candidate.POST("/resume", c.user.UploadResume)

		candidate.GET("/candidate-assessments", c.candidateAssessment.MyAssessments)
		candidate.POST("/candidate-assessments/:id/start", c.candidateAssessment.Start)
		candidate.POST("/candidate-assessments/:id/answers", c.candidateAssessment.SubmitAnswer)
		candidate.POST("/candidate-assessments/:id/complete", c.candidateAssessment.Complete)
	}
}

func (a *App) registerRecruiterRoutes(rg *gin.RouterGroup, c *controllers) {
	recruiter := rg.Group("/recruiter")
	recruiter.Use(middleware.RoleMiddleware(model.Recruiter))
	{
		recruiter.POST("/questions", c.question.CreateQuestion)
		recruiter.GET("/questions", c.question.ListQuestions)
		recruiter.GET("/questions/:id", c.question.GetQuestion)

		recruiter.POST("/assessments", c.assessment.CreateAssessment)
		recruiter.GET("/assessments", c.assessment.ListAssessments)
		recruiter.GET("/assessments/:id", c.assessment.GetAssessment)
		recruiter.PUT("/assessments/:id/status", c.assessment.UpdateStatus)
		recruiter.POST("/assessments/:id/questions", c.assessment.AddQuestion)
		recruiter.GET("/assessments/:id/results", c.candidateAssessment.AssessmentResults)
		recruiter.GET("/assessments/:id/results/export", c.candidateAssessment.ExportResults)

		recruiter.POST("/candidate-assessments", c.candidateAssessment.Invite)
		recruiter.GET("/candidate-assessments/:id", c.candidateAssessment.CandidateResult)
	}
}

func (a *App) registerAdminRoutes(rg *gin.RouterGroup, c *controllers) {
	admin := rg.Group("/admin")
	admin.Use(middleware.RoleMiddleware(model.Administrator))
	{
		admin.POST("/companies", c.company.CreateCompany)
		admin.GET("/companies", c.company.ListCompanies)
		admin.GET("/companies/:id", c.company.GetCompany)
	}
}
