package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"personal-website-api/helper"
	"personal-website-api/models"
	"personal-website-api/services"
)

type AdminHandler struct {
	adminService   services.AdminService
	contactService services.ContactService
}

func NewAdminHandler(adminService services.AdminService, contactService services.ContactService) *AdminHandler {
	return &AdminHandler{adminService: adminService, contactService: contactService}
}

func (h *AdminHandler) Login(c *gin.Context) {
	var req models.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helper.SendValidationError(c, err)
		return
	}

	token, err := h.adminService.Login(req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			helper.SendDetail(c, http.StatusUnauthorized, "Incorrect username or password")
			return
		}
		helper.SendDetail(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, models.AdminLoginResponse{
		Token:   token,
		Message: "Login successful",
	})
}

func (h *AdminHandler) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.adminService.GetStats())
}

func (h *AdminHandler) GetContacts(c *gin.Context) {
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

func (h *AdminHandler) DeleteContact(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.contactService.DeleteContact(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			helper.SendDetail(c, http.StatusNotFound, "Contact with id "+c.Param("id")+" not found")
			return
		}
		helper.SendDetail(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Contact deleted successfully"})
}
