package main

import (
	"moving-tracker/infra"
	"moving-tracker/models"
)

func main() {
	infra.Initialize()
	db := infra.SetupDB()

	if err := db.AutoMigrate(&models.User{}, &models.Item{}, &models.Vote{}); err != nil {
		panic("Failed to migrate database")
	}
}
