package routes

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"realestate-server/database"
	"realestate-server/models"
)

func TestUpdateUserSelfOnly(t *testing.T) {
	router := setupTest(t)
	user := createTestUser(t, "jamie", models.RoleCustomer)
	other := createTestUser(t, "casey", models.RoleCustomer)

	w := doRequest(router, http.MethodPut, fmt.Sprintf("/api/users/%d", user.ID),
		map[string]interface{}{"email": "new@example.com"}, sessionCookie(t, other.ID))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doRequest(router, http.MethodPut, fmt.Sprintf("/api/users/%d", user.ID),
		map[string]interface{}{"email": "new@example.com"}, sessionCookie(t, user.ID))
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.User
	require.NoError(t, database.DB.First(&updated, user.ID).Error)
	assert.Equal(t, "new@example.com", updated.Email)
	// Untouched fields stay
	assert.Equal(t, "jamie", updated.Username)
}

func TestSavePostToggle(t *testing.T) {
	router := setupTest(t)
	agent := createTestUser(t, "agent1", models.RoleAgent)
	customer := createTestUser(t, "customer1", models.RoleCustomer)
	post := createTestPost(t, agent, "Austin", 900)

	w := doRequest(router, http.MethodPost, "/api/users/save",
		map[string]interface{}{"post_id": post.ID}, sessionCookie(t, customer.ID))
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["is_saved"])

	var count int64
	database.DB.Model(&models.SavedPost{}).Count(&count)
	assert.Equal(t, int64(1), count)

	// Second call unsaves
	w = doRequest(router, http.MethodPost, "/api/users/save",
		map[string]interface{}{"post_id": post.ID}, sessionCookie(t, customer.ID))
	require.Equal(t, http.StatusOK, w.Code)
	body = decodeBody(t, w)
	assert.Equal(t, false, body["is_saved"])

	database.DB.Model(&models.SavedPost{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestSavePostUnknownPost(t *testing.T) {
	router := setupTest(t)
	customer := createTestUser(t, "customer1", models.RoleCustomer)

	w := doRequest(router, http.MethodPost, "/api/users/save",
		map[string]interface{}{"post_id": 424242}, sessionCookie(t, customer.ID))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProfilePosts(t *testing.T) {
	router := setupTest(t)
	agent := createTestUser(t, "agent1", models.RoleAgent)
	customer := createTestUser(t, "customer1", models.RoleCustomer)
	createTestPost(t, agent, "Austin", 900)
	saved := createTestPost(t, agent, "Boston", 1200)
	require.NoError(t, database.DB.Create(&models.SavedPost{UserID: customer.ID, PostID: saved.ID}).Error)

	w := doRequest(router, http.MethodGet, "/api/users/profilePosts", nil, sessionCookie(t, customer.ID))
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Empty(t, body["user_posts"])
	rows := body["saved_posts"].([]interface{})
	require.Len(t, rows, 1)
	assert.Equal(t, float64(saved.ID), rows[0].(map[string]interface{})["id"])

	w = doRequest(router, http.MethodGet, "/api/users/profilePosts", nil, sessionCookie(t, agent.ID))
	body = decodeBody(t, w)
	rows = body["user_posts"].([]interface{})
	require.Len(t, rows, 2)
}
