package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"moving-tracker/middlewares"
	"moving-tracker/repositories"
	"moving-tracker/services"
	"moving-tracker/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestRouter wires the same route table as main.setupRouter against an
// in-memory database and a throwaway upload directory.
func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.SetupTestDB(t)

	authService := services.NewAuthService(repositories.NewAuthRepository(db))
	authController := NewAuthController(authService)

	itemService := services.NewItemService(repositories.NewItemRepository(db), repositories.NewVoteRepository(db))
	itemController := NewItemController(itemService, t.TempDir())

	r := gin.New()
	api := r.Group("/api")
	api.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	api.POST("/login", authController.Login)
	api.POST("/admin/create-user", authController.CreateUser)

	authed := api.Group("", middlewares.AuthMiddleware(authService))
	authed.GET("/me", authController.Me)
	authed.GET("/users", authController.FindAllUsers)
	authed.GET("/items", itemController.FindAll)
	authed.POST("/items", itemController.Create)
	authed.POST("/items/:id/vote", itemController.Vote)
	authed.PATCH("/items/:id/decision", itemController.UpdateDecision)

	admin := api.Group("", middlewares.AuthMiddleware(authService), middlewares.AdminOnly())
	admin.DELETE("/items/:id", itemController.Delete)

	return r, db
}

// doJSON performs a request with an optional bearer token and JSON body.
func doJSON(t *testing.T, r *gin.Engine, method string, path string, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// loginToken authenticates and returns the issued token.
func loginToken(t *testing.T, r *gin.Engine, username string, password string) string {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/api/login", "", gin.H{
		"username": username,
		"password": password,
	})
	require.Equal(t, http.StatusOK, w.Code, "login failed: %s", w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}
