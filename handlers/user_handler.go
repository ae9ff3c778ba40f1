package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"personal-website-api/helper"
	"personal-website-api/models"
	"personal-website-api/services"
)

type UserHandler struct {
	userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) sendServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		helper.SendDetail(c, http.StatusNotFound, "User not found")
	case errors.Is(err, services.ErrUserExists):
		helper.SendDetail(c, http.StatusBadRequest, "Username or email already registered")
	default:
		helper.SendDetail(c, http.StatusInternalServerError, err.Error())
	}
}

func (h *UserHandler) GetUsers(c *gin.Context) {
	var params models.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		helper.SendValidationError(c, err)
		return
	}

	users, err := h.userService.GetUsers(params.Skip, params.Limit)
	if err != nil {
		helper.SendDetail(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helper.SendValidationError(c, err)
		return
	}

	user, err := h.userService.CreateUser(req)
	if err != nil {
		h.sendServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	user, err := h.userService.GetUser(id)
	if err != nil {
		h.sendServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req models.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helper.SendValidationError(c, err)
		return
	}

	user, err := h.userService.UpdateUser(id, req)
	if err != nil {
		h.sendServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.userService.DeleteUser(id); err != nil {
		h.sendServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
