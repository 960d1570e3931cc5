package postgres

import (
	"context"

	"github.com/siteledger/siteledger/internal/config"
	ierr "github.com/siteledger/siteledger/internal/errors"
	"github.com/siteledger/siteledger/internal/logger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// IClient is the database client interface the repositories depend on
type IClient interface {
	DB(ctx context.Context) *gorm.DB
	WithTx(ctx context.Context, fn func(ctx context.Context, tx *gorm.DB) error) error
	Close() error
}

type client struct {
	db  *gorm.DB
	log *logger.Logger
}

// NewClient opens the database connection and configures the pool
func NewClient(cfg *config.Configuration, log *logger.Logger) (IClient, error) {
	pgConfig := postgres.Config{
		DSN:                  cfg.Postgres.GetDSN(),
		PreferSimpleProtocol: true,
	}

	logMode := gormlogger.Warn
	if cfg.Logging.Level == "debug" {
		logMode = gormlogger.Info
	}

	db, err := gorm.Open(postgres.New(pgConfig), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(logMode),
		TranslateError: true,
	})
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to connect to the database").
			Mark(ierr.ErrDatabase)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to access the database pool").
			Mark(ierr.ErrDatabase)
	}

	sqlDB.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Postgres.ConnMaxLifetime)

	log.Infow("connected to postgres",
		"host", cfg.Postgres.Host,
		"database", cfg.Postgres.DBName,
	)

	return &client{db: db, log: log}, nil
}

// DB returns a request-scoped database handle
func (c *client) DB(ctx context.Context) *gorm.DB {
	return c.db.WithContext(ctx)
}

// WithTx runs fn inside a transaction
func (c *client) WithTx(ctx context.Context, fn func(ctx context.Context, tx *gorm.DB) error) error {
	return c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, tx)
	})
}

func (c *client) Close() error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// AutoMigrate runs gorm migrations for the given models
func AutoMigrate(c IClient, models ...interface{}) error {
	return c.DB(context.Background()).AutoMigrate(models...)
}
