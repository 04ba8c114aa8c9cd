package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/knowledge/usecases"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type CreateArticleRequest struct {
	Title    string   `json:"title" binding:"required,max=200"`
	Content  string   `json:"content" binding:"required"`
	Excerpt  string   `json:"excerpt,omitempty" binding:"omitempty,max=500"`
	Category string   `json:"category" binding:"required,max=100"`
	Tags     []string `json:"tags,omitempty"`
}

type UpdateArticleRequest struct {
	Title       *string  `json:"title,omitempty" binding:"omitempty,max=200"`
	Content     *string  `json:"content,omitempty"`
	Excerpt     *string  `json:"excerpt,omitempty" binding:"omitempty,max=500"`
	Category    *string  `json:"category,omitempty" binding:"omitempty,max=100"`
	Tags        []string `json:"tags,omitempty"`
	IsPublished *bool    `json:"is_published,omitempty"`
}

type PublishArticleRequest struct {
	IsPublished *bool `json:"is_published" binding:"required"`
}

type RateArticleRequest struct {
	Rating int `json:"rating" binding:"required,gte=1,lte=5"`
}

type KnowledgeHandler struct {
	createArticleUC usecases.CreateArticleExecutor
	updateArticleUC usecases.UpdateArticleExecutor
	deleteArticleUC usecases.DeleteArticleExecutor
	getArticleUC    usecases.GetArticleExecutor
	listArticlesUC  usecases.ListArticlesExecutor
	rateArticleUC   usecases.RateArticleExecutor
	logger          logger.Interface
}

func NewKnowledgeHandler(
	createArticleUC usecases.CreateArticleExecutor,
	updateArticleUC usecases.UpdateArticleExecutor,
	deleteArticleUC usecases.DeleteArticleExecutor,
	getArticleUC usecases.GetArticleExecutor,
	listArticlesUC usecases.ListArticlesExecutor,
	rateArticleUC usecases.RateArticleExecutor,
	log logger.Interface,
) *KnowledgeHandler {
	return &KnowledgeHandler{
		createArticleUC: createArticleUC,
		updateArticleUC: updateArticleUC,
		deleteArticleUC: deleteArticleUC,
		getArticleUC:    getArticleUC,
		listArticlesUC:  listArticlesUC,
		rateArticleUC:   rateArticleUC,
		logger:          log,
	}
}

// CreateArticle handles POST /knowledge-articles
func (h *KnowledgeHandler) CreateArticle(c *gin.Context) {
	var req CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create article", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	authorID := middleware.CurrentUserID(c)
	cmd := usecases.CreateArticleCommand{
		Title:    req.Title,
		Content:  req.Content,
		Excerpt:  req.Excerpt,
		Category: req.Category,
		Tags:     req.Tags,
		AuthorID: &authorID,
	}

	result, err := h.createArticleUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Article created successfully")
}

// ListArticles handles GET /knowledge-articles
func (h *KnowledgeHandler) ListArticles(c *gin.Context) {
	page, pageSize := utils.ParsePagination(c)

	query := usecases.ListArticlesQuery{
		Category: c.Query("category"),
		Search:   c.Query("search"),
		Page:     page,
		PageSize: pageSize,
	}

	// Customers only see published content; staff can ask for drafts.
	if publishedStr := c.Query("published"); publishedStr != "" && isStaffRole(c) {
		published, err := strconv.ParseBool(publishedStr)
		if err == nil {
			query.Published = &published
		}
	} else if !isStaffRole(c) {
		published := true
		query.Published = &published
	}

	result, err := h.listArticlesUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Articles, result.Total, result.Page, result.PageSize)
}

// GetArticle handles GET /knowledge-articles/:id
func (h *KnowledgeHandler) GetArticle(c *gin.Context) {
	articleID, err := utils.ParseUintParam(c, "id", "article")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query := usecases.GetArticleQuery{
		ArticleID:  articleID,
		RenderHTML: true,
		UserID:     middleware.CurrentUserID(c),
	}

	result, err := h.getArticleUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// IncrementViews handles POST /knowledge-articles/:id/views
func (h *KnowledgeHandler) IncrementViews(c *gin.Context) {
	articleID, err := utils.ParseUintParam(c, "id", "article")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query := usecases.GetArticleQuery{
		ArticleID: articleID,
		CountView: true,
	}

	result, err := h.getArticleUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"views": result.Views})
}

// UpdateArticle handles PUT /knowledge-articles/:id
func (h *KnowledgeHandler) UpdateArticle(c *gin.Context) {
	articleID, err := utils.ParseUintParam(c, "id", "article")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update article", "article_id", articleID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.UpdateArticleCommand{
		ArticleID:   articleID,
		Title:       req.Title,
		Content:     req.Content,
		Excerpt:     req.Excerpt,
		Category:    req.Category,
		Tags:        req.Tags,
		IsPublished: req.IsPublished,
	}

	result, err := h.updateArticleUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Article updated successfully", result)
}

// PublishArticle handles PATCH /knowledge-articles/:id/publish
func (h *KnowledgeHandler) PublishArticle(c *gin.Context) {
	articleID, err := utils.ParseUintParam(c, "id", "article")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req PublishArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.UpdateArticleCommand{
		ArticleID:   articleID,
		IsPublished: req.IsPublished,
	}

	result, err := h.updateArticleUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Article publish state updated", result)
}

// DeleteArticle handles DELETE /knowledge-articles/:id
func (h *KnowledgeHandler) DeleteArticle(c *gin.Context) {
	articleID, err := utils.ParseUintParam(c, "id", "article")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteArticleUC.Execute(c.Request.Context(), usecases.DeleteArticleCommand{ArticleID: articleID}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Article deleted successfully", gin.H{"success": true})
}

// RateArticle handles POST /knowledge-articles/:id/rate
func (h *KnowledgeHandler) RateArticle(c *gin.Context) {
	articleID, err := utils.ParseUintParam(c, "id", "article")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req RateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.RateArticleCommand{
		ArticleID: articleID,
		UserID:    middleware.CurrentUserID(c),
		Rating:    req.Rating,
	}

	result, err := h.rateArticleUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Article rated successfully", result)
}
