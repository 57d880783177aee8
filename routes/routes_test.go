package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"realestate-server/config"
	"realestate-server/database"
	"realestate-server/middleware"
	"realestate-server/models"
	"realestate-server/utils"
)

// setupTest wires an in-memory database and a router mirroring the groups in
// main.go. The shared database.DB global is swapped for the test database.
func setupTest(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.Load()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.RunMigrations(db))
	database.DB = db

	router := gin.New()
	api := router.Group("/api")

	RegisterAuthRoutes(api.Group("/auth"))
	RegisterPostRoutes(api.Group("/posts"))

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware())
	RegisterUserRoutes(protected.Group("/users"))
	RegisterAppointmentRoutes(protected.Group("/appointments"))
	RegisterContactMessageRoutes(protected.Group("/contact-messages"))

	return router
}

func createTestUser(t *testing.T, username string, role models.UserRole) models.User {
	t.Helper()

	hash, err := utils.HashPassword("secret123")
	require.NoError(t, err)

	user := models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: hash,
		Role:         role,
	}
	require.NoError(t, database.DB.Create(&user).Error)
	return user
}

func sessionCookie(t *testing.T, userID uint) *http.Cookie {
	t.Helper()

	token, err := utils.GenerateToken(userID)
	require.NoError(t, err)
	return &http.Cookie{Name: middleware.SessionCookieName, Value: token}
}

func doRequest(router *gin.Engine, method, path string, body interface{}, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func createTestPost(t *testing.T, owner models.User, city string, price int) models.Post {
	t.Helper()

	post := models.Post{
		Title:    "Test listing in " + city,
		Price:    price,
		Address:  "1 Test Street",
		City:     city,
		Bedroom:  2,
		Bathroom: 1,
		Type:     models.PostTypeRent,
		Property: models.PropertyApartment,
		UserID:   owner.ID,
		PostDetail: &models.PostDetail{
			Desc: "A test listing",
		},
	}
	require.NoError(t, database.DB.Create(&post).Error)
	return post
}
