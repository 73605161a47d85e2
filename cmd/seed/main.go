package main

import (
	"log"
	"os"

	"feedback-forum-be/internal/model"
	"feedback-forum-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_ADMIN_CONNECTION_STRING")
	if dsn == "" {
		dsn = os.Getenv("DB_CONNECTION_STRING")
	}
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Seeding tag catalog...")

	tags := []model.Tag{
		{Name: "bug", Description: "Something is broken"},
		{Name: "feature-request", Description: "A new capability the product should have"},
		{Name: "improvement", Description: "An existing capability could work better"},
		{Name: "ux", Description: "Confusing or awkward user experience"},
		{Name: "performance", Description: "Slowness or resource usage"},
		{Name: "documentation", Description: "Missing or unclear docs"},
	}

	for _, t := range tags {
		var existing model.Tag
		if err := db.Where("name = ?", t.Name).First(&existing).Error; err == nil {
			color.Yellow("Tag '%s' already exists, skipping...", t.Name)
			continue
		}
		if err := db.Create(&t).Error; err != nil {
			color.Red("Error creating tag '%s': %v", t.Name, err)
		} else {
			color.Green("Created tag: %s", t.Name)
		}
	}

	color.Cyan("Seeding feature areas...")

	features := []model.Feature{
		{Name: "Editor", Description: "Composing and editing posts"},
		{Name: "Search", Description: "Finding existing feedback"},
		{Name: "Notifications", Description: "In-app and email alerts"},
		{Name: "Mobile", Description: "Phone and tablet experience"},
	}

	for _, f := range features {
		var existing model.Feature
		if err := db.Where("name = ?", f.Name).First(&existing).Error; err == nil {
			color.Yellow("Feature '%s' already exists, skipping...", f.Name)
			continue
		}
		if err := db.Create(&f).Error; err != nil {
			color.Red("Error creating feature '%s': %v", f.Name, err)
		} else {
			color.Green("Created feature: %s", f.Name)
		}
	}

	color.Cyan("Seeding completed.")
}
