package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/warbler-app/api-go/controllers"
)

func SetupInteractionRoutes(public, protected *gin.RouterGroup, interactionController *controllers.InteractionController) {
	users := protected.Group("/users")
	{
		users.POST("/:userId/follow", interactionController.FollowUser)
		users.DELETE("/:userId/follow", interactionController.UnfollowUser)
		users.GET("/:userId/followers", interactionController.GetUserFollowers)
		users.GET("/:userId/following", interactionController.GetUserFollowing)
		users.GET("/:userId/likes", interactionController.GetUserLikes)
	}

	messages := protected.Group("/messages")
	{
		messages.POST("/:id/like", interactionController.ToggleLike)
	}
}
