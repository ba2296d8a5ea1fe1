package handlers

import (
	"newsroom/helper"
	"newsroom/models"
	"newsroom/services"

	"github.com/gin-gonic/gin"
)

type FeedHandler struct {
	subscriptionService services.SubscriptionService
	contentService      services.ContentService
	Helper              *helper.HTTPHelper
}

func NewFeedHandler(subscriptionService services.SubscriptionService, contentService services.ContentService) *FeedHandler {
	return &FeedHandler{
		subscriptionService: subscriptionService,
		contentService:      contentService,
		Helper:              &helper.HTTPHelper{},
	}
}

// Dashboard renders the role-dependent view: readers get their
// subscribed feed, everyone else a pending/approved split of the content
// they are responsible for.
func (h *FeedHandler) Dashboard(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		h.Helper.SendUnauthorizedError(c, "User not found in context", h.Helper.EmptyJsonMap())
		return
	}

	switch actor.Role {
	case models.RoleReader:
		feed, err := h.subscriptionService.SubscribedFeed(actor)
		if err != nil {
			h.Helper.SendServiceError(c, err)
			return
		}
		h.Helper.SendSuccess(c, "", feed)
	case models.RoleJournalist, models.RoleEditor, models.RolePublisher:
		dashboard, err := h.contentService.DashboardFor(actor)
		if err != nil {
			h.Helper.SendServiceError(c, err)
			return
		}
		h.Helper.SendSuccess(c, "", dashboard)
	default:
		h.Helper.SendForbiddenError(c, "Unknown role", h.Helper.EmptyJsonMap())
	}
}

// SubscribedArticles is the read-only JSON feed: approved articles from
// the reader's subscriptions, deduplicated. Non-readers get 403.
func (h *FeedHandler) SubscribedArticles(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		h.Helper.SendUnauthorizedError(c, "User not found in context", h.Helper.EmptyJsonMap())
		return
	}

	articles, err := h.subscriptionService.SubscribedArticles(actor)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "", articles)
}
