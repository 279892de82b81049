package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/warbler-app/api-go/controllers"
	"github.com/warbler-app/api-go/middleware"
	"gorm.io/gorm"
)

// SetupRoutes wires every controller onto the router. metrics may be nil
// (tests run without a registry).
func SetupRoutes(r *gin.Engine, db *gorm.DB, metrics *middleware.Metrics) {
	authController := controllers.NewAuthController(db)
	userController := controllers.NewUserController(db)
	messageController := controllers.NewMessageController(db, metrics)
	interactionController := controllers.NewInteractionController(db, metrics)
	feedController := controllers.NewFeedController(db)

	// Public routes
	public := r.Group("/api")
	{
		public.POST("/register", authController.Register)
		public.POST("/login", authController.Login)
		public.POST("/refresh-token", authController.RefreshToken)
		public.POST("/logout", authController.Logout)
	}

	// The home feed is public but personalized when a token is present.
	feed := r.Group("/api")
	feed.Use(middleware.OptionalAuthMiddleware())
	{
		feed.GET("/feed", feedController.GetHomeFeed)
	}

	// Protected routes
	protected := r.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.GET("/profile", userController.GetProfile)
		protected.PUT("/profile", userController.UpdateProfile)
		protected.DELETE("/profile", userController.DeleteAccount)
	}

	SetupUserRoutes(public, protected, userController)
	SetupMessageRoutes(public, protected, messageController)
	SetupInteractionRoutes(public, protected, interactionController)
}
