package di

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"taskboard-api/application/serviceimpl"
	"taskboard-api/domain/repositories"
	"taskboard-api/domain/services"
	"taskboard-api/infrastructure/postgres"
	"taskboard-api/infrastructure/redis"
	"taskboard-api/interfaces/api/handlers"
	"taskboard-api/pkg/config"
	"taskboard-api/pkg/logger"
)

// Container เก็บ dependencies ทั้งหมดของ application
type Container struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client

	// Repositories
	UserRepo repositories.UserRepository
	TaskRepo repositories.TaskRepository

	// Services
	UserService services.UserService
	TaskService services.TaskService
}

// NewContainer สร้าง container เปล่า
func NewContainer() *Container {
	return &Container{}
}

// Initialize สร้าง dependencies ตามลำดับ
func (c *Container) Initialize() error {
	if err := c.initConfig(); err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	if err := c.initLogger(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := c.initInfrastructure(); err != nil {
		return fmt.Errorf("failed to initialize infrastructure: %w", err)
	}

	c.initRepositories()
	c.initServices()

	logger.Info("Container initialized successfully")
	return nil
}

func (c *Container) initConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	c.Config = cfg
	return nil
}

func (c *Container) initLogger() error {
	return logger.Init(logger.Config{
		Level:      c.Config.Log.Level,
		Format:     c.Config.Log.Format,
		Output:     c.Config.Log.Output,
		FilePath:   c.Config.Log.FilePath,
		MaxSize:    c.Config.Log.MaxSize,
		MaxBackups: c.Config.Log.MaxBackups,
		MaxAge:     c.Config.Log.MaxAge,
		Compress:   c.Config.Log.Compress,
	})
}

func (c *Container) initInfrastructure() error {
	db, err := postgres.NewDatabase(postgres.DatabaseConfig{
		Host:     c.Config.Database.Host,
		Port:     c.Config.Database.Port,
		User:     c.Config.Database.User,
		Password: c.Config.Database.Password,
		DBName:   c.Config.Database.DBName,
		SSLMode:  c.Config.Database.SSLMode,
	})
	if err != nil {
		return fmt.Errorf("failed to connect database: %w", err)
	}

	if err := postgres.Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	c.DB = db
	logger.Info("Database connected", "host", c.Config.Database.Host, "db", c.Config.Database.DBName)

	// Redis เป็น optional ถ้าไม่ได้ตั้ง REDIS_URL จะใช้ in-memory limiter storage แทน
	if c.Config.Redis.URL != "" {
		redisClient, err := redis.NewClient(&c.Config.Redis)
		if err != nil {
			logger.Warn("Redis unavailable, falling back to in-memory rate limiting", "error", err)
		} else {
			c.RedisClient = redisClient
		}
	}

	return nil
}

func (c *Container) initRepositories() {
	c.UserRepo = postgres.NewUserRepository(c.DB)
	c.TaskRepo = postgres.NewTaskRepository(c.DB)
}

func (c *Container) initServices() {
	c.UserService = serviceimpl.NewUserService(c.UserRepo, c.Config.JWT)
	c.TaskService = serviceimpl.NewTaskService(c.TaskRepo)
}

// GetConfig คืน config ที่โหลดแล้ว
func (c *Container) GetConfig() *config.Config {
	return c.Config
}

// GetHandlers สร้าง HTTP handlers จาก services ใน container
func (c *Container) GetHandlers() *handlers.Handlers {
	return handlers.NewHandlers(c.GetHandlerServices())
}

// GetHandlerServices รวม services สำหรับส่งให้ handlers
func (c *Container) GetHandlerServices() *handlers.Services {
	return &handlers.Services{
		UserService: c.UserService,
		TaskService: c.TaskService,
		JWTConfig:   c.Config.JWT,
		Production:  c.Config.IsProduction(),
	}
}

// GetLimiterStorage คืน storage สำหรับ rate limiter
// nil = fiber limiter ใช้ in-memory storage ของตัวเอง
func (c *Container) GetLimiterStorage() fiber.Storage {
	if c.RedisClient == nil {
		return nil
	}
	return redis.NewLimiterStorage(c.RedisClient)
}

// Cleanup ปิด connections ทั้งหมด
func (c *Container) Cleanup() {
	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			logger.Error("Failed to close Redis connection", "error", err)
		}
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err == nil {
			if err := sqlDB.Close(); err != nil {
				logger.Error("Failed to close database connection", "error", err)
			}
		}
	}

	logger.Info("Container cleaned up")
}
