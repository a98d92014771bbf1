package di

import (
	"fmt"

	"gorm.io/gorm"

	"taskstore-api/application/serviceimpl"
	"taskstore-api/domain/repositories"
	"taskstore-api/domain/services"
	"taskstore-api/infrastructure/database"
	"taskstore-api/interfaces/api/handlers"
	"taskstore-api/pkg/config"
	"taskstore-api/pkg/logger"
)

// Container builds the process-wide object graph once. The *gorm.DB inside is
// the shared connection factory; request-scoped sessions come off its pool.
type Container struct {
	Config *config.Config

	DB *gorm.DB

	TaskRepository repositories.TaskRepository

	TaskService services.TaskService
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Initialize() error {
	if err := c.initConfig(); err != nil {
		return err
	}

	if err := c.initLogger(); err != nil {
		return err
	}

	if err := c.initDatabase(); err != nil {
		return err
	}

	c.initRepositories()
	c.initServices()

	return nil
}

func (c *Container) initConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
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

func (c *Container) initDatabase() error {
	db, err := database.Open(c.Config.Database)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// Tables are created on startup, like the schema-on-boot the service
	// has always done.
	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	c.DB = db
	logger.Info("Database connected", "scheme", c.Config.Database.Scheme())
	return nil
}

func (c *Container) initRepositories() {
	c.TaskRepository = database.NewTaskRepository(c.DB)
}

func (c *Container) initServices() {
	c.TaskService = serviceimpl.NewTaskService(c.TaskRepository)
}

func (c *Container) GetConfig() *config.Config {
	return c.Config
}

func (c *Container) GetHandlerServices() *handlers.Services {
	return &handlers.Services{
		TaskService: c.TaskService,
		Database:    c.Config.Database,
		DriverName:  c.DB.Name(),
	}
}

func (c *Container) Cleanup() error {
	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return nil
}
