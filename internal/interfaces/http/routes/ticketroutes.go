package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "helpdesk/internal/interfaces/http/handlers/ticket"
)

type TicketRouteConfig struct {
	TicketHandler *tickethandlers.TicketHandler
}

func SetupTicketRoutes(api *gin.RouterGroup, config *TicketRouteConfig) {
	tickets := api.Group("/tickets")
	{
		tickets.POST("", config.TicketHandler.CreateTicket)
		tickets.GET("", config.TicketHandler.ListTickets)

		// Specific paths register before the parameterized ones so that
		// "stats" and "reports" are never swallowed by /:code.
		tickets.GET("/stats", config.TicketHandler.GetStats)
		tickets.GET("/reports", config.TicketHandler.ListByDateRange)

		tickets.GET("/:code/comments", config.TicketHandler.ListComments)
		tickets.POST("/:code/comments", config.TicketHandler.AddComment)
		tickets.DELETE("/:code/comments/:comment_id", config.TicketHandler.DeleteComment)
		tickets.GET("/:code/rating", config.TicketHandler.GetTicketRating)
		tickets.POST("/:code/rating", config.TicketHandler.RateTicket)
		tickets.PATCH("/:code/status", config.TicketHandler.ChangeStatus)

		tickets.GET("/:code", config.TicketHandler.GetTicket)
		tickets.PUT("/:code", config.TicketHandler.UpdateTicket)
		tickets.DELETE("/:code", config.TicketHandler.DeleteTicket)
	}
}
