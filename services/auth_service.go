package services

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"moving-tracker/constants"
	"moving-tracker/models"
	"moving-tracker/repositories"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const tokenTTL = 7 * 24 * time.Hour

type IAuthService interface {
	Signup(username string, password string, displayName string, isAdmin bool) (*models.User, error)
	Login(username string, password string) (*string, *models.UserClaims, error)
	GetClaimsFromToken(tokenString string) (*models.UserClaims, error)
	FindAllUsers() (*[]models.User, error)
}

type AuthService struct {
	repository repositories.IAuthRepository
}

func NewAuthService(repository repositories.IAuthRepository) IAuthService {
	return &AuthService{repository: repository}
}

func (s *AuthService) Signup(username string, password string, displayName string, isAdmin bool) (*models.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username:    username,
		Password:    string(hashedPassword),
		DisplayName: displayName,
		IsAdmin:     isAdmin,
	}
	created, err := s.repository.CreateUser(user)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate") || strings.Contains(err.Error(), "UNIQUE constraint") {
			return nil, errors.New(constants.ErrUsernameTaken)
		}
		return nil, err
	}
	return created, nil
}

func (s *AuthService) Login(username string, password string) (*string, *models.UserClaims, error) {
	foundUser, err := s.repository.FindUser(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, errors.New(constants.ErrInvalidCredentials)
		}
		return nil, nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.Password), []byte(password)); err != nil {
		return nil, nil, errors.New(constants.ErrInvalidCredentials)
	}

	claims := &models.UserClaims{
		ID:          foundUser.ID,
		Username:    foundUser.Username,
		DisplayName: foundUser.DisplayName,
		IsAdmin:     foundUser.IsAdmin,
	}
	token, err := CreateToken(claims)
	if err != nil {
		return nil, nil, err
	}

	return token, claims, nil
}

func (s *AuthService) FindAllUsers() (*[]models.User, error) {
	return s.repository.FindAllUsers()
}

func CreateToken(user *models.UserClaims) (*string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":         user.ID,
		"username":    user.Username,
		"displayName": user.DisplayName,
		"isAdmin":     user.IsAdmin,
		"exp":         time.Now().Add(tokenTTL).Unix(),
	})

	tokenString, err := token.SignedString([]byte(os.Getenv("SECRET_KEY")))
	if err != nil {
		return nil, err
	}
	return &tokenString, nil
}

// GetClaimsFromToken verifies the signature and expiry, then returns the
// identity embedded at issuance time. No database round trip: a renamed
// user or a revoked admin flag stays stale until the token expires.
func (s *AuthService) GetClaimsFromToken(tokenString string) (*models.UserClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected method: %v", token.Header["alg"])
		}
		return []byte(os.Getenv("SECRET_KEY")), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}

	sub, ok := claims["sub"].(float64)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}
	username, _ := claims["username"].(string)
	displayName, _ := claims["displayName"].(string)
	isAdmin, _ := claims["isAdmin"].(bool)

	return &models.UserClaims{
		ID:          uint(sub),
		Username:    username,
		DisplayName: displayName,
		IsAdmin:     isAdmin,
	}, nil
}
