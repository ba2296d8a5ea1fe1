package handlers

import (
	"strconv"

	"newsroom/helper"
	"newsroom/models"
	"newsroom/services"

	"github.com/gin-gonic/gin"
)

type PublisherHandler struct {
	publisherService services.PublisherService
	Helper           *helper.HTTPHelper
}

func NewPublisherHandler(publisherService services.PublisherService) *PublisherHandler {
	return &PublisherHandler{publisherService: publisherService, Helper: &helper.HTTPHelper{}}
}

func (h *PublisherHandler) GetPublishers(c *gin.Context) {
	publishers, err := h.publisherService.List()
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "", publishers)
}

// GetJournalists lists the journalists a reader can subscribe to.
func (h *PublisherHandler) GetJournalists(c *gin.Context) {
	journalists, err := h.publisherService.ListJournalists()
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "", journalists)
}

func (h *PublisherHandler) DeletePublisher(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		h.Helper.SendUnauthorizedError(c, "User not found in context", h.Helper.EmptyJsonMap())
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid publisher ID", h.Helper.EmptyJsonMap())
		return
	}

	if err := h.publisherService.Delete(actor, uint(id)); err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Publisher deleted", h.Helper.EmptyJsonMap())
}

func (h *PublisherHandler) AddStaff(c *gin.Context) {
	h.changeStaff(c, h.publisherService.AddStaff, "Staff member added")
}

func (h *PublisherHandler) RemoveStaff(c *gin.Context) {
	h.changeStaff(c, h.publisherService.RemoveStaff, "Staff member removed")
}

func (h *PublisherHandler) changeStaff(c *gin.Context, change func(actor *models.User, publisherID, userID uint) error, message string) {
	actor, ok := actorFromContext(c)
	if !ok {
		h.Helper.SendUnauthorizedError(c, "User not found in context", h.Helper.EmptyJsonMap())
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid publisher ID", h.Helper.EmptyJsonMap())
		return
	}

	var req models.AffiliateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	if err := change(actor, uint(id), req.UserID); err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, message, h.Helper.EmptyJsonMap())
}
