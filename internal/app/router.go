package app

import (
	"english_learning_backend/docs"
	"english_learning_backend/internal/middleware"
	"english_learning_backend/internal/model"
	"english_learning_backend/internal/service"
	"english_learning_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c)

	auth := middleware.AuthMiddleware(c.auth.AuthService, a.Config.JWT.CookieName)
	activity := middleware.ActivityMiddleware(repos.user, lastSeenInterval)

	authGroup := router.Group("/api")
	authGroup.Use(auth, activity)
	a.registerLearnerRoutes(authGroup, c)

	admin := router.Group("/api/admin")
	admin.Use(auth, activity, middleware.RoleMiddleware(model.RoleAdmin))
	a.registerAdminRoutes(admin, c)
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/auth/register", c.auth.Register)
		public.POST("/auth/login", c.auth.Login)
		public.GET("/leaderboard", c.user.Leaderboard)

		public.GET("/vocabulary", c.vocabulary.List)
		public.GET("/vocabulary/:id", c.vocabulary.Get)

		public.GET("/grammar", c.grammar.List)
		public.GET("/grammar/:id", c.grammar.Get)

		public.GET("/topics", c.topic.List)
		public.GET("/topics/:id", c.topic.Get)
		public.GET("/topics/:id/vocabulary", c.topic.VocabularyOf)

		public.GET("/exercises", c.exercise.List)
		public.GET("/exercises/:id", c.exercise.Get)

		public.GET("/tests", c.test.List)
		public.GET("/tests/:id", c.test.Get)
	}
}

func (a *App) registerLearnerRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.POST("/auth/logout", c.auth.Logout)

	profile := rg.Group("/profile")
	{
		profile.GET("", c.user.GetProfile)
		profile.PUT("", c.user.UpdateProfile)
		profile.PUT("/password", c.user.ChangePassword)
		profile.POST("/avatar", c.user.UploadAvatar)
		profile.GET("/stats", c.user.GetStats)
	}

	rg.POST("/vocabulary/:id/favorite", c.favorite.Toggle(service.FavoriteVocabulary))
	rg.POST("/grammar/:id/favorite", c.favorite.Toggle(service.FavoriteGrammar))
	rg.POST("/topics/:id/favorite", c.favorite.Toggle(service.FavoriteTopic))
	rg.GET("/favorites", c.favorite.List)

	rg.GET("/progress", c.progress.Get)
	rg.POST("/progress/activity", c.progress.RecordActivity)
	rg.POST("/learned/:kind/:id", c.progress.MarkLearned)

	rg.POST("/exercises/:id/submit", c.exercise.Submit)
	rg.POST("/tests/:id/submit", c.test.Submit)
}

func (a *App) registerAdminRoutes(admin *gin.RouterGroup, c *controllers) {
	vocabulary := admin.Group("/vocabulary")
	{
		vocabulary.POST("", c.vocabulary.Create)
		vocabulary.POST("/import", c.vocabulary.Import)
		vocabulary.GET("/export", c.vocabulary.Export)
		vocabulary.PUT("/:id", c.vocabulary.Update)
		vocabulary.DELETE("/:id", c.vocabulary.Delete)
	}

	grammar := admin.Group("/grammar")
	{
		grammar.POST("", c.grammar.Create)
		grammar.PUT("/:id", c.grammar.Update)
		grammar.DELETE("/:id", c.grammar.Delete)
	}

	topics := admin.Group("/topics")
	{
		topics.POST("", c.topic.Create)
		topics.PUT("/:id", c.topic.Update)
		topics.DELETE("/:id", c.topic.Delete)
	}

	exercises := admin.Group("/exercises")
	{
		exercises.GET("/:id", c.exercise.AdminGet)
		exercises.POST("", c.exercise.Create)
		exercises.PUT("/:id", c.exercise.Update)
		exercises.DELETE("/:id", c.exercise.Delete)
	}

	tests := admin.Group("/tests")
	{
		tests.GET("/:id", c.test.AdminGet)
		tests.POST("", c.test.Create)
		tests.PUT("/:id", c.test.Update)
		tests.DELETE("/:id", c.test.Delete)
	}

	users := admin.Group("/users")
	{
		users.GET("", c.user.ListUsers)
		users.GET("/:id", c.user.GetUser)
		users.PUT("/:id/role", c.user.UpdateRole)
		users.DELETE("/:id", c.user.DeleteUser)
	}

	admin.DELETE("/progress/:userId", c.progress.Reset)
}
