package serviceimpl

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"taskboard-api/domain/models"
	"taskboard-api/infrastructure/postgres"
	"taskboard-api/pkg/config"
)

var testJWTConfig = config.JWTConfig{
	Secret:           "test-secret",
	ExpireDays:       30,
	CookieExpireDays: 30,
}

// newTestDB สร้าง in-memory database แยกต่อ test
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	// in-memory database ผูกกับ connection เดียว
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	if err := postgres.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db
}

func seedUser(t *testing.T, db *gorm.DB, name, email, password string) *models.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		ID:        uuid.New(),
		Name:      name,
		Email:     email,
		Password:  string(hashed),
		Role:      "user",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := db.WithContext(context.Background()).Create(user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}

	return user
}

func seedTask(t *testing.T, db *gorm.DB, ownerID uuid.UUID, title, priority string, completed bool, createdAt time.Time) *models.Task {
	t.Helper()

	task := &models.Task{
		ID:        uuid.New(),
		Title:     title,
		Priority:  priority,
		Completed: completed,
		UserID:    ownerID,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}

	if err := db.WithContext(context.Background()).Create(task).Error; err != nil {
		t.Fatalf("failed to seed task: %v", err)
	}

	return task
}
