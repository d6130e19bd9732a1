package main

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"taskboard-api/domain/models"
)

// Config from .env
const (
	DB_HOST     = "localhost"
	DB_PORT     = "5432"
	DB_USER     = "postgres"
	DB_PASSWORD = ""
	DB_NAME     = "taskboard"

	DEMO_EMAIL    = "demo@taskboard.local"
	DEMO_PASSWORD = "demo1234"
)

func main() {
	fmt.Println("============================================")
	fmt.Println("  Taskboard API - Seed Demo Data")
	fmt.Println("============================================")
	fmt.Println()

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		DB_HOST, DB_USER, DB_PASSWORD, DB_NAME, DB_PORT)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Task{}); err != nil {
		log.Fatalf("Failed to migrate: %v", err)
	}

	user := seedDemoUser(db)
	seedDemoTasks(db, user)

	fmt.Println()
	fmt.Println("============================================")
	fmt.Printf("  Done! Login with %s / %s\n", DEMO_EMAIL, DEMO_PASSWORD)
	fmt.Println("============================================")
}

func seedDemoUser(db *gorm.DB) *models.User {
	fmt.Println("[1/2] Seeding demo user...")

	var existing models.User
	if err := db.Where("email = ?", DEMO_EMAIL).First(&existing).Error; err == nil {
		fmt.Println("      Demo user already exists, reusing")
		return &existing
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(DEMO_PASSWORD), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	user := &models.User{
		ID:        uuid.New(),
		Name:      "Demo User",
		Email:     DEMO_EMAIL,
		Password:  string(hashed),
		Role:      "user",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := db.Create(user).Error; err != nil {
		log.Fatalf("Failed to create demo user: %v", err)
	}

	fmt.Println("      Created", DEMO_EMAIL)
	return user
}

func seedDemoTasks(db *gorm.DB, user *models.User) {
	fmt.Println("[2/2] Seeding demo tasks...")

	due := time.Now().Add(72 * time.Hour)
	demoTasks := []models.Task{
		{Title: "อ่านเอกสาร API", Priority: models.PriorityHigh, DueDate: &due},
		{Title: "ลองยิง endpoint ด้วย curl", Priority: models.PriorityMedium},
		{Title: "เช็ค log rotation", Priority: models.PriorityLow, Completed: true},
	}

	created := 0
	for _, task := range demoTasks {
		task.ID = uuid.New()
		task.UserID = user.ID
		task.CreatedAt = time.Now()
		task.UpdatedAt = time.Now()

		if err := db.Create(&task).Error; err != nil {
			log.Printf("      Failed to create task %q: %v", task.Title, err)
			continue
		}
		created++
	}

	fmt.Printf("      Created %d tasks\n", created)
}
