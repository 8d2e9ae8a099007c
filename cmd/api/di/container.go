package di

import (
	"errors"
	"fmt"

	"kitchen-control-backend/cmd/api/infrastructure"
	"kitchen-control-backend/internal/adapter/db/postgres"
	redisrepo "kitchen-control-backend/internal/adapter/db/redis"
	ginhandler "kitchen-control-backend/internal/adapter/gin/handler"
	"kitchen-control-backend/internal/config"
	"kitchen-control-backend/internal/usecase/user"
	redisclient "kitchen-control-backend/pkg/redis"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// UserStore is a user repository that can also report its reachability.
type UserStore interface {
	user.Repository
	ginhandler.Pinger
}

// Container holds all application dependencies
type Container struct {
	Config        *config.Config
	Logger        *zap.Logger
	DB            *gorm.DB
	RedisClient   *redisclient.Client
	Store         UserStore
	UserUC        user.Usecase
	UserHandler   *ginhandler.UserHandler
	HealthHandler *ginhandler.HealthHandler
}

// NewContainer creates and initializes all application dependencies
func NewContainer(cfg *config.Config, l *zap.Logger) (*Container, error) {
	// Validate configuration before initializing any dependencies
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	c := &Container{
		Config: cfg,
		Logger: l,
	}

	switch cfg.Store.Driver {
	case config.StoreDriverRedis:
		rdb, err := infrastructure.NewRedisClient(cfg, l)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Redis: %w", err)
		}
		c.RedisClient = rdb
		c.Store = redisrepo.NewUserRepoRedis(rdb.Client, cfg.Redis.KeyPrefix, l)
	default:
		db, err := infrastructure.NewDatabase(cfg, l)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		c.DB = db
		c.Store = postgres.NewUserRepoPG(db, l)
	}

	return c.wire(), nil
}

// NewContainerWithStore builds a container around an already constructed store.
func NewContainerWithStore(cfg *config.Config, l *zap.Logger, store UserStore) *Container {
	c := &Container{
		Config: cfg,
		Logger: l,
		Store:  store,
	}
	return c.wire()
}

func (c *Container) wire() *Container {
	c.UserUC = user.New(c.Store, c.Logger)
	c.UserHandler = ginhandler.NewUserHandler(c.UserUC, c.Logger)
	c.HealthHandler = ginhandler.NewHealthHandler(c.Config.Logger.ServiceName, c.Store, c.Logger)
	return c
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	var errs []error

	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close Redis: %w", err))
		}
	}

	if c.DB != nil {
		if err := infrastructure.CloseDatabase(c.DB); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
	}

	return errors.Join(errs...)
}
