package testutil

import (
	"testing"

	"moving-tracker/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// SetupTestDB opens a fresh in-memory SQLite database with the full schema.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// Pin the pool to one connection; each sqlite :memory: connection is
	// its own database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get database handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.User{}, &models.Item{}, &models.Vote{}); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

// CreateTestUser inserts a user with a bcrypt-hashed password.
func CreateTestUser(t *testing.T, db *gorm.DB, username string, password string, displayName string, isAdmin bool) *models.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}

	user := models.User{
		Username:    username,
		Password:    string(hashed),
		DisplayName: displayName,
		IsAdmin:     isAdmin,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	return &user
}

// CreateTestItem inserts an item proposed by the given user.
func CreateTestItem(t *testing.T, db *gorm.DB, name string, createdBy uint) *models.Item {
	t.Helper()

	item := models.Item{Name: name, CreatedBy: createdBy}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("Failed to create test item: %v", err)
	}
	return &item
}
