package testutil

import (
	"context"

	"github.com/siteledger/siteledger/internal/logger"
	"github.com/siteledger/siteledger/internal/postgres"
	"gorm.io/gorm"
)

var _ postgres.IClient = (*MockPostgresClient)(nil)

// MockPostgresClient satisfies the database client interface for tests
// that never touch the database. Services under test run entirely
// against in-memory stores.
type MockPostgresClient struct {
	logger *logger.Logger
}

func NewMockPostgresClient(logger *logger.Logger) postgres.IClient {
	return &MockPostgresClient{
		logger: logger,
	}
}

func (c *MockPostgresClient) DB(ctx context.Context) *gorm.DB {
	return nil
}

func (c *MockPostgresClient) WithTx(ctx context.Context, fn func(ctx context.Context, tx *gorm.DB) error) error {
	return fn(ctx, nil)
}

func (c *MockPostgresClient) Close() error {
	return nil
}
