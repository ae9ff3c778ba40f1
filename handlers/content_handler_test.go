package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"personal-website-api/models"
)

func createPost(t *testing.T, router *gin.Engine, payload map[string]interface{}) models.Post {
	t.Helper()
	w := performRequest(router, http.MethodPost, "/api/content/posts", payload)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var post models.Post
	decodeBody(t, w, &post)
	return post
}

func TestCreateAndGetPost(t *testing.T) {
	router, _ := setupRouter(t)

	post := createPost(t, router, map[string]interface{}{
		"title":   "First Post",
		"slug":    "first-post",
		"content": "Hello world",
	})
	assert.NotZero(t, post.ID)
	assert.Equal(t, models.PostStatusDraft, post.Status)
	assert.Nil(t, post.UpdatedAt)

	w := performRequest(router, http.MethodGet, "/api/content/posts/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var fetched models.Post
	decodeBody(t, w, &fetched)
	assert.Equal(t, "First Post", fetched.Title)
}

func TestCreatePostMissingSlug(t *testing.T) {
	router, _ := setupRouter(t)

	w := performRequest(router, http.MethodPost, "/api/content/posts", map[string]interface{}{
		"title":   "No Slug",
		"content": "Hello world",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestCreatePostDuplicateSlug(t *testing.T) {
	router, _ := setupRouter(t)

	createPost(t, router, map[string]interface{}{
		"title":   "First Post",
		"slug":    "first-post",
		"content": "Hello world",
	})

	w := performRequest(router, http.MethodPost, "/api/content/posts", map[string]interface{}{
		"title":   "Other Post",
		"slug":    "first-post",
		"content": "Different body",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdatePostPartial(t *testing.T) {
	router, _ := setupRouter(t)

	createPost(t, router, map[string]interface{}{
		"title":   "Original Title",
		"slug":    "original",
		"content": "Original content",
		"excerpt": "Original excerpt",
		"status":  "published",
	})

	// Payload contains only the title; everything else must survive.
	w := performRequest(router, http.MethodPut, "/api/content/posts/1", map[string]interface{}{
		"title": "New",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var updated models.Post
	decodeBody(t, w, &updated)
	assert.Equal(t, "New", updated.Title)
	assert.Equal(t, "original", updated.Slug)
	assert.Equal(t, "Original content", updated.Content)
	require.NotNil(t, updated.Excerpt)
	assert.Equal(t, "Original excerpt", *updated.Excerpt)
	assert.Equal(t, models.PostStatusPublished, updated.Status)
	require.NotNil(t, updated.UpdatedAt)
}

func TestUpdatePostNotFound(t *testing.T) {
	router, _ := setupRouter(t)

	w := performRequest(router, http.MethodPut, "/api/content/posts/42", map[string]interface{}{
		"title": "New",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeletePost(t *testing.T) {
	router, _ := setupRouter(t)

	createPost(t, router, map[string]interface{}{
		"title":   "Doomed",
		"slug":    "doomed",
		"content": "Soon gone",
	})

	w := performRequest(router, http.MethodDelete, "/api/content/posts/1", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = performRequest(router, http.MethodGet, "/api/content/posts/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCategories(t *testing.T) {
	router, _ := setupRouter(t)

	w := performRequest(router, http.MethodPost, "/api/content/categories", map[string]interface{}{
		"name": "Engineering",
		"slug": "engineering",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// Duplicate name is rejected via the unique index.
	w = performRequest(router, http.MethodPost, "/api/content/categories", map[string]interface{}{
		"name": "Engineering",
		"slug": "engineering-2",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = performRequest(router, http.MethodGet, "/api/content/categories", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var categories []models.Category
	decodeBody(t, w, &categories)
	assert.Len(t, categories, 1)

	w = performRequest(router, http.MethodPut, "/api/content/categories/1", map[string]interface{}{
		"name": "Dev Notes",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var updated models.Category
	decodeBody(t, w, &updated)
	assert.Equal(t, "Dev Notes", updated.Name)
	assert.Equal(t, "engineering", updated.Slug)
}

func TestDeleteCategoryDetachesPosts(t *testing.T) {
	router, db := setupRouter(t)

	w := performRequest(router, http.MethodPost, "/api/content/categories", map[string]interface{}{
		"name": "Engineering",
		"slug": "engineering",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	createPost(t, router, map[string]interface{}{
		"title":       "Categorized",
		"slug":        "categorized",
		"content":     "Body",
		"category_id": 1,
	})

	w = performRequest(router, http.MethodDelete, "/api/content/categories/1", nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	var post models.Post
	require.NoError(t, db.First(&post, 1).Error)
	assert.Nil(t, post.CategoryID)
}

func TestProjects(t *testing.T) {
	router, _ := setupRouter(t)

	w := performRequest(router, http.MethodPost, "/api/content/projects", map[string]interface{}{
		"title":       "Portfolio",
		"slug":        "portfolio",
		"description": "Personal site",
		"github_url":  "https://github.com/example/portfolio",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var project models.Project
	decodeBody(t, w, &project)
	assert.Equal(t, models.ProjectStatusCompleted, project.Status)
	assert.Nil(t, project.UpdatedAt)

	w = performRequest(router, http.MethodPut, "/api/content/projects/1", map[string]interface{}{
		"status": "in-progress",
	})
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &project)
	assert.Equal(t, models.ProjectStatusInProgress, project.Status)
	assert.Equal(t, "Personal site", project.Description)
	require.NotNil(t, project.UpdatedAt)

	w = performRequest(router, http.MethodDelete, "/api/content/projects/1", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = performRequest(router, http.MethodGet, "/api/content/projects/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
