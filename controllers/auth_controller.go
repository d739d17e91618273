package controllers

import (
	"log"
	"net/http"
	"os"

	"moving-tracker/constants"
	"moving-tracker/dto"
	"moving-tracker/models"
	"moving-tracker/services"

	"github.com/gin-gonic/gin"
)

type IAuthController interface {
	CreateUser(ctx *gin.Context)
	Login(ctx *gin.Context)
	Me(ctx *gin.Context)
	FindAllUsers(ctx *gin.Context)
}

type AuthController struct {
	service services.IAuthService
}

func NewAuthController(service services.IAuthService) IAuthController {
	return &AuthController{service: service}
}

// CreateUser is the out-of-band user provisioning route. It is not behind
// token auth; instead the caller must present the shared admin key.
func (c *AuthController) CreateUser(ctx *gin.Context) {
	var input dto.CreateUserInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidInput})
		return
	}

	if input.AdminKey != os.Getenv("ADMIN_KEY") {
		ctx.JSON(http.StatusForbidden, gin.H{"error": constants.ErrInvalidAdminKey})
		return
	}

	user, err := c.service.Signup(input.Username, input.Password, input.DisplayName, input.IsAdmin)
	if err != nil {
		if err.Error() == constants.ErrUsernameTaken {
			ctx.JSON(http.StatusConflict, gin.H{"error": constants.ErrUsernameTaken})
			return
		}
		log.Printf("Create user error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, dto.CreateUserResponse{
		Message: "User created successfully",
		UserID:  user.ID,
	})
}

func (c *AuthController) Login(ctx *gin.Context) {
	var input dto.LoginInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidInput})
		return
	}

	token, claims, err := c.service.Login(input.Username, input.Password)
	if err != nil {
		if err.Error() == constants.ErrInvalidCredentials {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": constants.ErrInvalidCredentials})
			return
		}
		log.Printf("Login error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		Token: *token,
		User: dto.UserResponse{
			ID:          claims.ID,
			Username:    claims.Username,
			DisplayName: claims.DisplayName,
			IsAdmin:     claims.IsAdmin,
		},
	})
}

// Me echoes the identity from the verified token, no database read.
func (c *AuthController) Me(ctx *gin.Context) {
	user, exists := ctx.Get("user")
	if !exists {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	claims := user.(*models.UserClaims)

	ctx.JSON(http.StatusOK, gin.H{"user": dto.UserResponse{
		ID:          claims.ID,
		Username:    claims.Username,
		DisplayName: claims.DisplayName,
		IsAdmin:     claims.IsAdmin,
	}})
}

func (c *AuthController) FindAllUsers(ctx *gin.Context) {
	users, err := c.service.FindAllUsers()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	responses := make([]dto.UserResponse, 0, len(*users))
	for _, user := range *users {
		createdAt := user.CreatedAt
		responses = append(responses, dto.UserResponse{
			ID:          user.ID,
			Username:    user.Username,
			DisplayName: user.DisplayName,
			IsAdmin:     user.IsAdmin,
			CreatedAt:   &createdAt,
		})
	}

	ctx.JSON(http.StatusOK, responses)
}
