package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"personal-website-api/helper"
	"personal-website-api/models"
	"personal-website-api/services"
)

type NewsletterHandler struct {
	newsletterService services.NewsletterService
}

func NewNewsletterHandler(newsletterService services.NewsletterService) *NewsletterHandler {
	return &NewsletterHandler{newsletterService: newsletterService}
}

func (h *NewsletterHandler) Subscribe(c *gin.Context) {
	var req models.NewsletterSubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helper.SendValidationError(c, err)
		return
	}

	newsletter, err := h.newsletterService.Subscribe(req.Email)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateSubscription) {
			helper.SendDetail(c, http.StatusBadRequest, "Email is already subscribed to newsletter")
			return
		}
		helper.SendDetail(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusCreated, newsletter)
}

func (h *NewsletterHandler) Unsubscribe(c *gin.Context) {
	email := c.Param("email")

	if err := h.newsletterService.Unsubscribe(email); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			helper.SendDetail(c, http.StatusNotFound, "Email not found in newsletter list")
			return
		}
		helper.SendDetail(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Successfully unsubscribed from newsletter"})
}

func (h *NewsletterHandler) GetSubscribers(c *gin.Context) {
	var params models.SubscriberListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		helper.SendValidationError(c, err)
		return
	}

	subscribers, err := h.newsletterService.GetSubscribers(params.Skip, params.Limit, params.ActiveOnly)
	if err != nil {
		helper.SendDetail(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, subscribers)
}
