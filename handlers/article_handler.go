package handlers

import (
	"strconv"

	"newsroom/helper"
	"newsroom/models"
	"newsroom/services"

	"github.com/gin-gonic/gin"
)

type ArticleHandler struct {
	contentService services.ContentService
	Helper         *helper.HTTPHelper
}

func NewArticleHandler(contentService services.ContentService) *ArticleHandler {
	return &ArticleHandler{contentService: contentService, Helper: &helper.HTTPHelper{}}
}

func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		h.Helper.SendUnauthorizedError(c, "User not found in context", h.Helper.EmptyJsonMap())
		return
	}

	var req models.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	article, err := h.contentService.CreateArticle(actor, req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendCreated(c, "Article created and awaiting approval", article)
}

func (h *ArticleHandler) GetArticle(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid article ID", h.Helper.EmptyJsonMap())
		return
	}

	article, err := h.contentService.GetArticle(uint(id))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "", article)
}

func (h *ArticleHandler) UpdateArticle(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		h.Helper.SendUnauthorizedError(c, "User not found in context", h.Helper.EmptyJsonMap())
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid article ID", h.Helper.EmptyJsonMap())
		return
	}

	var req models.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	article, err := h.contentService.UpdateArticle(actor, uint(id), req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Article updated", article)
}

// ApproveArticle is routed POST-only; other verbs get 405 from the
// router.
func (h *ArticleHandler) ApproveArticle(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		h.Helper.SendUnauthorizedError(c, "User not found in context", h.Helper.EmptyJsonMap())
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid article ID", h.Helper.EmptyJsonMap())
		return
	}

	article, err := h.contentService.ApproveArticle(actor, uint(id))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Article approved", article)
}

func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		h.Helper.SendUnauthorizedError(c, "User not found in context", h.Helper.EmptyJsonMap())
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid article ID", h.Helper.EmptyJsonMap())
		return
	}

	if err := h.contentService.DeleteArticle(actor, uint(id)); err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Article deleted successfully", h.Helper.EmptyJsonMap())
}
