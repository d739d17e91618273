package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"moving-tracker/controllers"
	"moving-tracker/infra"
	"moving-tracker/middlewares"
	"moving-tracker/models"
	"moving-tracker/repositories"
	"moving-tracker/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func setupRouter(db *gorm.DB, uploadDir string) *gin.Engine {

	authRepository := repositories.NewAuthRepository(db)
	authService := services.NewAuthService(authRepository)
	authController := controllers.NewAuthController(authService)

	itemRepository := repositories.NewItemRepository(db)
	voteRepository := repositories.NewVoteRepository(db)
	itemService := services.NewItemService(itemRepository, voteRepository)
	itemController := controllers.NewItemController(itemService, uploadDir)

	r := gin.Default()
	r.Use(cors.Default())
	r.MaxMultipartMemory = 10 << 20
	r.Static("/uploads", uploadDir)

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

	return r
}

func initDB() *gorm.DB {
	infra.Initialize()

	db := infra.SetupDB()

	// Schema is created idempotently on every boot.
	if err := db.AutoMigrate(&models.User{}, &models.Item{}, &models.Vote{}); err != nil {
		panic("Failed to migrate database")
	}

	return db
}

func main() {
	db := initDB()
	uploadDir := infra.SetupUploadDir()
	r := setupRouter(db, uploadDir)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Starting server on port %s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}
	log.Println("Server exited")
}
