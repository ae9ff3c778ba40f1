package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"personal-website-api/helper"
	"personal-website-api/models"
	"personal-website-api/services"
)

type ContentHandler struct {
	contentService services.ContentService
}

func NewContentHandler(contentService services.ContentService) *ContentHandler {
	return &ContentHandler{contentService: contentService}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		helper.SendDetail(c, http.StatusBadRequest, "Invalid ID")
		return 0, false
	}
	return uint(id), true
}

func (h *ContentHandler) sendServiceError(c *gin.Context, err error, resource string) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		helper.SendDetail(c, http.StatusNotFound, resource+" not found")
	case errors.Is(err, services.ErrDuplicateSlug):
		helper.SendDetail(c, http.StatusBadRequest, resource+" with this slug already exists")
	case errors.Is(err, services.ErrDuplicateName):
		helper.SendDetail(c, http.StatusBadRequest, resource+" with this name or slug already exists")
	default:
		helper.SendDetail(c, http.StatusInternalServerError, err.Error())
	}
}

// --- Categories ---

func (h *ContentHandler) GetCategories(c *gin.Context) {
	categories, err := h.contentService.GetCategories()
	if err != nil {
		helper.SendDetail(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *ContentHandler) CreateCategory(c *gin.Context) {
	var req models.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helper.SendValidationError(c, err)
		return
	}

	category, err := h.contentService.CreateCategory(req)
	if err != nil {
		h.sendServiceError(c, err, "Category")
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (h *ContentHandler) GetCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	category, err := h.contentService.GetCategory(id)
	if err != nil {
		h.sendServiceError(c, err, "Category")
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *ContentHandler) UpdateCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req models.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helper.SendValidationError(c, err)
		return
	}

	category, err := h.contentService.UpdateCategory(id, req)
	if err != nil {
		h.sendServiceError(c, err, "Category")
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *ContentHandler) DeleteCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.contentService.DeleteCategory(id); err != nil {
		h.sendServiceError(c, err, "Category")
		return
	}
	c.Status(http.StatusNoContent)
}

// --- Posts ---

func (h *ContentHandler) GetPosts(c *gin.Context) {
	var params models.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		helper.SendValidationError(c, err)
		return
	}

	posts, err := h.contentService.GetPosts(params.Skip, params.Limit)
	if err != nil {
		helper.SendDetail(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (h *ContentHandler) CreatePost(c *gin.Context) {
	var req models.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helper.SendValidationError(c, err)
		return
	}

	post, err := h.contentService.CreatePost(req)
	if err != nil {
		h.sendServiceError(c, err, "Post")
		return
	}
	c.JSON(http.StatusCreated, post)
}

func (h *ContentHandler) GetPost(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	post, err := h.contentService.GetPost(id)
	if err != nil {
		h.sendServiceError(c, err, "Post")
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *ContentHandler) UpdatePost(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req models.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helper.SendValidationError(c, err)
		return
	}

	post, err := h.contentService.UpdatePost(id, req)
	if err != nil {
		h.sendServiceError(c, err, "Post")
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *ContentHandler) DeletePost(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.contentService.DeletePost(id); err != nil {
		h.sendServiceError(c, err, "Post")
		return
	}
	c.Status(http.StatusNoContent)
}

// --- Projects ---

func (h *ContentHandler) GetProjects(c *gin.Context) {
	var params models.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		helper.SendValidationError(c, err)
		return
	}

	projects, err := h.contentService.GetProjects(params.Skip, params.Limit)
	if err != nil {
		helper.SendDetail(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, projects)
}

func (h *ContentHandler) CreateProject(c *gin.Context) {
	var req models.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helper.SendValidationError(c, err)
		return
	}

	project, err := h.contentService.CreateProject(req)
	if err != nil {
		h.sendServiceError(c, err, "Project")
		return
	}
	c.JSON(http.StatusCreated, project)
}

func (h *ContentHandler) GetProject(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	project, err := h.contentService.GetProject(id)
	if err != nil {
		h.sendServiceError(c, err, "Project")
		return
	}
	c.JSON(http.StatusOK, project)
}

func (h *ContentHandler) UpdateProject(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req models.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helper.SendValidationError(c, err)
		return
	}

	project, err := h.contentService.UpdateProject(id, req)
	if err != nil {
		h.sendServiceError(c, err, "Project")
		return
	}
	c.JSON(http.StatusOK, project)
}

func (h *ContentHandler) DeleteProject(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.contentService.DeleteProject(id); err != nil {
		h.sendServiceError(c, err, "Project")
		return
	}
	c.Status(http.StatusNoContent)
}
