package ticket

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/ticket/usecases"
	vo "helpdesk/internal/domain/user/valueobjects"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type TicketHandler struct {
	createTicketUC    usecases.CreateTicketExecutor
	updateTicketUC    usecases.UpdateTicketExecutor
	changeStatusUC    usecases.ChangeStatusExecutor
	deleteTicketUC    usecases.DeleteTicketExecutor
	getTicketUC       usecases.GetTicketExecutor
	listTicketsUC     usecases.ListTicketsExecutor
	addCommentUC      usecases.AddCommentExecutor
	listCommentsUC    usecases.ListCommentsExecutor
	deleteCommentUC   usecases.DeleteCommentExecutor
	rateTicketUC      usecases.RateTicketExecutor
	getTicketRatingUC usecases.GetTicketRatingExecutor
	getStatsUC        usecases.GetTicketStatsExecutor
	listByDateRangeUC usecases.ListByDateRangeExecutor
	logger            logger.Interface
}

func NewTicketHandler(
	createTicketUC usecases.CreateTicketExecutor,
	updateTicketUC usecases.UpdateTicketExecutor,
	changeStatusUC usecases.ChangeStatusExecutor,
	deleteTicketUC usecases.DeleteTicketExecutor,
	getTicketUC usecases.GetTicketExecutor,
	listTicketsUC usecases.ListTicketsExecutor,
	addCommentUC usecases.AddCommentExecutor,
	listCommentsUC usecases.ListCommentsExecutor,
	deleteCommentUC usecases.DeleteCommentExecutor,
	rateTicketUC usecases.RateTicketExecutor,
	getTicketRatingUC usecases.GetTicketRatingExecutor,
	getStatsUC usecases.GetTicketStatsExecutor,
	listByDateRangeUC usecases.ListByDateRangeExecutor,
	log logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		createTicketUC:    createTicketUC,
		updateTicketUC:    updateTicketUC,
		changeStatusUC:    changeStatusUC,
		deleteTicketUC:    deleteTicketUC,
		getTicketUC:       getTicketUC,
		listTicketsUC:     listTicketsUC,
		addCommentUC:      addCommentUC,
		listCommentsUC:    listCommentsUC,
		deleteCommentUC:   deleteCommentUC,
		rateTicketUC:      rateTicketUC,
		getTicketRatingUC: getTicketRatingUC,
		getStatsUC:        getStatsUC,
		listByDateRangeUC: listByDateRangeUC,
		logger:            log,
	}
}

// CreateTicket handles POST /tickets
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := req.ToCommand()
	if cmd.CustomerID == nil {
		userID := middleware.CurrentUserID(c)
		cmd.CustomerID = &userID
	}

	result, err := h.createTicketUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Ticket created successfully")
}

// GetTicket handles GET /tickets/:code
func (h *TicketHandler) GetTicket(c *gin.Context) {
	code, err := parseTicketCode(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query := usecases.GetTicketQuery{
		Code:            code,
		IncludeInternal: isStaff(c),
	}

	result, err := h.getTicketUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListTickets handles GET /tickets
func (h *TicketHandler) ListTickets(c *gin.Context) {
	req, err := parseListTicketsRequest(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listTicketsUC.Execute(c.Request.Context(), req.ToQuery())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Tickets, result.Total, result.Page, result.PageSize)
}

// UpdateTicket handles PUT /tickets/:code
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	code, err := parseTicketCode(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update ticket", "code", code, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := req.ToCommand(code, middleware.CurrentUserID(c))

	result, err := h.updateTicketUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket updated successfully", result)
}

// ChangeStatus handles PATCH /tickets/:code/status
func (h *TicketHandler) ChangeStatus(c *gin.Context) {
	code, err := parseTicketCode(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.ChangeStatusCommand{
		Code:      code,
		NewStatus: req.Status,
		ChangedBy: middleware.CurrentUserID(c),
	}

	result, err := h.changeStatusUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket status updated", result)
}

// DeleteTicket handles DELETE /tickets/:code
func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	code, err := parseTicketCode(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.deleteTicketUC.Execute(c.Request.Context(), usecases.DeleteTicketCommand{Code: code})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket deleted successfully", result)
}

// AddComment handles POST /tickets/:code/comments
func (h *TicketHandler) AddComment(c *gin.Context) {
	code, err := parseTicketCode(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for add comment", "code", code, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	// Only staff may mark a comment internal; customers always post visibly.
	cmd := usecases.AddCommentCommand{
		TicketCode: code,
		UserID:     middleware.CurrentUserID(c),
		Content:    req.Content,
		IsInternal: req.IsInternal && isStaff(c),
	}

	result, err := h.addCommentUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Comment added successfully")
}

// ListComments handles GET /tickets/:code/comments
func (h *TicketHandler) ListComments(c *gin.Context) {
	code, err := parseTicketCode(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query := usecases.ListCommentsQuery{
		TicketCode:      code,
		IncludeInternal: isStaff(c),
	}

	result, err := h.listCommentsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// DeleteComment handles DELETE /tickets/:code/comments/:comment_id
func (h *TicketHandler) DeleteComment(c *gin.Context) {
	commentID, err := utils.ParseUintParam(c, "comment_id", "comment")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteCommentUC.Execute(c.Request.Context(), usecases.DeleteCommentCommand{CommentID: commentID}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Comment deleted successfully", gin.H{"success": true})
}

// RateTicket handles POST /tickets/:code/rating
func (h *TicketHandler) RateTicket(c *gin.Context) {
	code, err := parseTicketCode(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req RateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.RateTicketCommand{
		TicketCode: code,
		UserID:     middleware.CurrentUserID(c),
		Rating:     req.Rating,
		Feedback:   req.Feedback,
	}

	result, err := h.rateTicketUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Ticket rated successfully")
}

// GetTicketRating handles GET /tickets/:code/rating
func (h *TicketHandler) GetTicketRating(c *gin.Context) {
	code, err := parseTicketCode(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getTicketRatingUC.Execute(c.Request.Context(), usecases.GetTicketRatingQuery{TicketCode: code})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetStats handles GET /tickets/stats
func (h *TicketHandler) GetStats(c *gin.Context) {
	result, err := h.getStatsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListByDateRange handles GET /tickets/reports
func (h *TicketHandler) ListByDateRange(c *gin.Context) {
	query := usecases.ListByDateRangeQuery{
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
	}

	result, err := h.listByDateRangeUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func isStaff(c *gin.Context) bool {
	return vo.Role(middleware.CurrentUserRole(c)).IsStaff()
}
