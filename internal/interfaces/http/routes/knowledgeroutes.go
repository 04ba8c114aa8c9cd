package routes

import (
	"github.com/gin-gonic/gin"

	"helpdesk/internal/interfaces/http/handlers"
)

type KnowledgeRouteConfig struct {
	KnowledgeHandler *handlers.KnowledgeHandler
}

func SetupKnowledgeRoutes(api *gin.RouterGroup, config *KnowledgeRouteConfig) {
	articles := api.Group("/knowledge-articles")
	{
		articles.POST("", config.KnowledgeHandler.CreateArticle)
		articles.GET("", config.KnowledgeHandler.ListArticles)

		articles.POST("/:id/rate", config.KnowledgeHandler.RateArticle)
		articles.POST("/:id/views", config.KnowledgeHandler.IncrementViews)
		articles.PATCH("/:id/publish", config.KnowledgeHandler.PublishArticle)

		articles.GET("/:id", config.KnowledgeHandler.GetArticle)
		articles.PUT("/:id", config.KnowledgeHandler.UpdateArticle)
		articles.DELETE("/:id", config.KnowledgeHandler.DeleteArticle)
	}
}
