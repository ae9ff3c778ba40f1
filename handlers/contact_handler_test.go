package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"personal-website-api/models"
)

func TestCreateContact(t *testing.T) {
	router, db := setupRouter(t)

	payload := map[string]interface{}{
		"name":    "Jane Doe",
		"email":   "jane@example.com",
		"subject": "Hello there",
		"message": "This is a sufficiently long message.",
	}

	w := performRequest(router, http.MethodPost, "/api/contact/", payload)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var contact models.Contact
	decodeBody(t, w, &contact)
	assert.NotZero(t, contact.ID)
	assert.Equal(t, "Jane Doe", contact.Name)
	assert.Equal(t, "jane@example.com", contact.Email)
	assert.Equal(t, "Hello there", contact.Subject)
	assert.Equal(t, "This is a sufficiently long message.", contact.Message)
	assert.False(t, contact.CreatedAt.IsZero())

	var count int64
	db.Model(&models.Contact{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestCreateContactValidation(t *testing.T) {
	router, db := setupRouter(t)

	// Message way below the 10-char minimum.
	payload := map[string]interface{}{
		"name":    "Jane Doe",
		"email":   "jane@example.com",
		"subject": "Hello",
		"message": "short",
	}

	w := performRequest(router, http.MethodPost, "/api/contact/", payload)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var body struct {
		Detail string            `json:"detail"`
		Errors map[string]string `json:"errors"`
	}
	decodeBody(t, w, &body)
	assert.Contains(t, body.Errors, "message")

	// Nothing persisted.
	var count int64
	db.Model(&models.Contact{}).Count(&count)
	assert.Zero(t, count)
}

func TestCreateContactBadEmail(t *testing.T) {
	router, _ := setupRouter(t)

	payload := map[string]interface{}{
		"name":    "Jane Doe",
		"email":   "not-an-email",
		"subject": "Hello there",
		"message": "This is a sufficiently long message.",
	}

	w := performRequest(router, http.MethodPost, "/api/contact/", payload)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestGetContactsNewestFirst(t *testing.T) {
	router, _ := setupRouter(t)

	for _, subject := range []string{"First message", "Second message"} {
		payload := map[string]interface{}{
			"name":    "Jane Doe",
			"email":   "jane@example.com",
			"subject": subject,
			"message": "This is a sufficiently long message.",
		}
		w := performRequest(router, http.MethodPost, "/api/contact/", payload)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := performRequest(router, http.MethodGet, "/api/contact/", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var contacts []models.Contact
	decodeBody(t, w, &contacts)
	require.Len(t, contacts, 2)
	assert.Equal(t, "Second message", contacts[0].Subject)
	assert.Equal(t, "First message", contacts[1].Subject)
}

func TestGetContactNotFound(t *testing.T) {
	router, _ := setupRouter(t)

	w := performRequest(router, http.MethodGet, "/api/contact/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var body struct {
		Detail string `json:"detail"`
	}
	decodeBody(t, w, &body)
	assert.Contains(t, body.Detail, "999")
}

func TestGetContactInvalidID(t *testing.T) {
	router, _ := setupRouter(t)

	w := performRequest(router, http.MethodGet, "/api/contact/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetContactByID(t *testing.T) {
	router, _ := setupRouter(t)

	payload := map[string]interface{}{
		"name":    "Jane Doe",
		"email":   "jane@example.com",
		"phone":   "+123456789",
		"subject": "Hello there",
		"message": "This is a sufficiently long message.",
	}
	w := performRequest(router, http.MethodPost, "/api/contact/", payload)
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Contact
	decodeBody(t, w, &created)

	w = performRequest(router, http.MethodGet, "/api/contact/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var fetched models.Contact
	decodeBody(t, w, &fetched)
	assert.Equal(t, created.ID, fetched.ID)
	require.NotNil(t, fetched.Phone)
	assert.Equal(t, "+123456789", *fetched.Phone)
}
