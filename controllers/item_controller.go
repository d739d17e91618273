package controllers

import (
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"moving-tracker/constants"
	"moving-tracker/dto"
	"moving-tracker/models"
	"moving-tracker/services"

	"github.com/gin-gonic/gin"
)

const maxImageSize = 10 << 20 // 10MB

type IItemController interface {
	FindAll(ctx *gin.Context)
	Create(ctx *gin.Context)
	Delete(ctx *gin.Context)
	Vote(ctx *gin.Context)
	UpdateDecision(ctx *gin.Context)
}

type ItemController struct {
	service   services.IItemService
	uploadDir string
}

func NewItemController(service services.IItemService, uploadDir string) IItemController {
	return &ItemController{service: service, uploadDir: uploadDir}
}

func (c *ItemController) FindAll(ctx *gin.Context) {
	items, err := c.service.FindAll()
	if err != nil {
		log.Printf("List items error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, items)
}

// Create accepts a multipart form: required "name", optional "image" file
// (10MB cap, image/* only). The file is stored under a timestamp+random
// name so concurrent uploads never collide.
func (c *ItemController) Create(ctx *gin.Context) {
	user, exists := ctx.Get("user")
	if !exists {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	userID := user.(*models.UserClaims).ID

	var input dto.CreateItemInput
	if err := ctx.ShouldBind(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidInput})
		return
	}

	var imagePath *string
	file, err := ctx.FormFile("image")
	if err == nil && file != nil {
		if file.Size > maxImageSize {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Image exceeds the 10MB limit"})
			return
		}
		if !strings.HasPrefix(file.Header.Get("Content-Type"), "image/") {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Only image files are allowed"})
			return
		}

		filename := fmt.Sprintf("%d-%d-%s", time.Now().UnixMilli(), rand.Intn(1_000_000_000), filepath.Base(file.Filename))
		if err := ctx.SaveUploadedFile(file, filepath.Join(c.uploadDir, filename)); err != nil {
			log.Printf("Save upload error: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
			return
		}
		p := "/uploads/" + filename
		imagePath = &p
	}

	newItem, err := c.service.Create(input.Name, imagePath, userID)
	if err != nil {
		log.Printf("Create item error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, dto.CreateItemResponse{
		Message:   "Item created successfully",
		ItemID:    newItem.ID,
		ImagePath: newItem.ImagePath,
	})
}

// Delete is admin-gated by the router. The stored image file is left in
// place on purpose; existing deployments rely on upload paths staying live.
func (c *ItemController) Delete(ctx *gin.Context) {
	itemID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidID})
		return
	}

	if err := c.service.Delete(uint(itemID)); err != nil {
		if err.Error() == constants.ErrItemNotFound {
			ctx.JSON(http.StatusNotFound, gin.H{"error": constants.ErrItemNotFound})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Item deleted successfully"})
}

func (c *ItemController) Vote(ctx *gin.Context) {
	user, exists := ctx.Get("user")
	if !exists {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	userID := user.(*models.UserClaims).ID

	itemID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidID})
		return
	}

	var input dto.VoteInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidVote})
		return
	}

	if err := c.service.Vote(uint(itemID), userID, input); err != nil {
		switch err.Error() {
		case constants.ErrInvalidVote:
			ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidVote})
		case constants.ErrItemNotFound:
			ctx.JSON(http.StatusNotFound, gin.H{"error": constants.ErrItemNotFound})
		default:
			log.Printf("Vote error: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Vote recorded successfully"})
}

// UpdateDecision requires a valid token but deliberately no admin claim:
// the reference backend never gated this route server-side and both
// clients only expose the control to admins. Kept as documented behavior.
func (c *ItemController) UpdateDecision(ctx *gin.Context) {
	itemID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidID})
		return
	}

	var input dto.DecisionInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidInput})
		return
	}

	if err := c.service.UpdateDecision(uint(itemID), input.Decision); err != nil {
		if err.Error() == constants.ErrInvalidDecision {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidDecision})
			return
		}
		log.Printf("Update decision error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Decision updated successfully"})
}
