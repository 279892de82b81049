package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/warbler-app/api-go/controllers"
)

func SetupMessageRoutes(public, protected *gin.RouterGroup, messageController *controllers.MessageController) {
	publicMessages := public.Group("/messages")
	{
		publicMessages.GET("/:id", messageController.GetMessage)
	}

	messages := protected.Group("/messages")
	{
		messages.POST("", messageController.CreateMessage)
		messages.DELETE("/:id", messageController.DeleteMessage)
	}

	users := public.Group("/users")
	{
		users.GET("/:userId/messages", messageController.GetUserMessages)
	}
}
