package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/leon37/SavingsCoach/internal/api/controller"
	"github.com/leon37/SavingsCoach/internal/api/middleware"

	_ "github.com/leon37/SavingsCoach/docs"
)

// RegisterRoutes wires every endpoint. Auth is optional on the chat, expense
// and insight surfaces; a valid token only pins the caller's identity.
func RegisterRoutes(
	r *gin.Engine,
	verifier middleware.TokenVerifier,
	authCtrl *controller.AuthController,
	chatCtrl *controller.ChatController,
	expenseCtrl *controller.ExpenseController,
	insightCtrl *controller.InsightController,
) {
	r.Use(middleware.Cors())

	// Liveness
	r.GET("/api/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ping"})
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	auth := r.Group("/api/auth")
	{
		auth.POST("/register", authCtrl.Register)
		auth.POST("/login", authCtrl.Login)
		auth.GET("/me", middleware.JWTAuth(verifier), authCtrl.Me)
	}

	optional := middleware.OptionalAuth(verifier)

	chat := r.Group("/api/chat", optional)
	{
		chat.POST("", chatCtrl.Send)
		chat.GET("/:conversationId", chatCtrl.GetConversation)
	}

	expenses := r.Group("/api/expenses", optional)
	{
		expenses.POST("", expenseCtrl.Create)
		expenses.GET("", expenseCtrl.List)
		expenses.GET("/summary/:userId", expenseCtrl.Summary)
		expenses.DELETE("/:expenseId", expenseCtrl.Delete)
	}

	insights := r.Group("/api/insights", optional)
	{
		insights.GET("/:userId", insightCtrl.Insights)
		insights.GET("/:userId/trends", insightCtrl.Trends)
	}
}
