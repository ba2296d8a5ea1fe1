package handlers

import (
	"strconv"

	"newsroom/helper"
	"newsroom/models"
	"newsroom/services"

	"github.com/gin-gonic/gin"
)

type NewsletterHandler struct {
	contentService services.ContentService
	Helper         *helper.HTTPHelper
}

func NewNewsletterHandler(contentService services.ContentService) *NewsletterHandler {
	return &NewsletterHandler{contentService: contentService, Helper: &helper.HTTPHelper{}}
}

func (h *NewsletterHandler) CreateNewsletter(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		h.Helper.SendUnauthorizedError(c, "User not found in context", h.Helper.EmptyJsonMap())
		return
	}

	var req models.CreateNewsletterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	newsletter, err := h.contentService.CreateNewsletter(actor, req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendCreated(c, "Newsletter created and awaiting approval", newsletter)
}

func (h *NewsletterHandler) GetNewsletter(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid newsletter ID", h.Helper.EmptyJsonMap())
		return
	}

	newsletter, err := h.contentService.GetNewsletter(uint(id))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "", newsletter)
}

func (h *NewsletterHandler) UpdateNewsletter(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		h.Helper.SendUnauthorizedError(c, "User not found in context", h.Helper.EmptyJsonMap())
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid newsletter ID", h.Helper.EmptyJsonMap())
		return
	}

	var req models.UpdateNewsletterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	newsletter, err := h.contentService.UpdateNewsletter(actor, uint(id), req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Newsletter updated", newsletter)
}

func (h *NewsletterHandler) ApproveNewsletter(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		h.Helper.SendUnauthorizedError(c, "User not found in context", h.Helper.EmptyJsonMap())
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid newsletter ID", h.Helper.EmptyJsonMap())
		return
	}

	newsletter, err := h.contentService.ApproveNewsletter(actor, uint(id))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Newsletter approved", newsletter)
}

func (h *NewsletterHandler) DeleteNewsletter(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		h.Helper.SendUnauthorizedError(c, "User not found in context", h.Helper.EmptyJsonMap())
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid newsletter ID", h.Helper.EmptyJsonMap())
		return
	}

	if err := h.contentService.DeleteNewsletter(actor, uint(id)); err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Newsletter deleted successfully", h.Helper.EmptyJsonMap())
}
