package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"personal-website-api/helper"
	"personal-website-api/models"
	"personal-website-api/services"
)

type ContactHandler struct {
	contactService services.ContactService
}

func NewContactHandler(contactService services.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

func (h *ContactHandler) CreateContact(c *gin.Context) {
	var req models.ContactCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helper.SendValidationError(c, err)
		return
	}

	contact, err := h.contactService.CreateContact(req)
	if err != nil {
		helper.SendDetail(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusCreated, contact)
}

func (h *ContactHandler) GetContacts(c *gin.Context) {
	var params models.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		helper.SendValidationError(c, err)
		return
	}

	contacts, err := h.contactService.GetContacts(params.Skip, params.Limit)
	if err != nil {
		helper.SendDetail(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, contacts)
}

func (h *ContactHandler) GetContact(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	contact, err := h.contactService.GetContact(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			helper.SendDetail(c, http.StatusNotFound, "Contact with id "+c.Param("id")+" not found")
			return
		}
		helper.SendDetail(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, contact)
}
