package repository

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/siteledger/siteledger/internal/cache"
	"github.com/siteledger/siteledger/internal/config"
	"github.com/siteledger/siteledger/internal/domain/job"
	"github.com/siteledger/siteledger/internal/logger"
	"github.com/siteledger/siteledger/internal/testutil"
	"github.com/siteledger/siteledger/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobCacheHitReturnsIndependentCopies(t *testing.T) {
	cfg := &config.Configuration{
		Logging: config.LoggingConfig{Level: types.LogLevelInfo},
	}
	log, err := logger.NewLogger(cfg)
	require.NoError(t, err)

	ctx := testutil.SetupContext()
	c := cache.NewInMemoryCache(log)
	repo := NewJobRepository(testutil.NewMockPostgresClient(log), log, c)

	seeded := &job.Job{
		ID:             "job_cached",
		Name:           "Original",
		ContractAmount: decimal.NewFromInt(100000),
		JobStatus:      types.JobStatusActive,
		BaseModel: types.BaseModel{
			TenantID: types.GetTenantID(ctx),
			Status:   types.StatusPublished,
			Version:  1,
		},
	}
	c.Set(ctx, cache.Key(cache.PrefixJob, types.GetTenantID(ctx), seeded.ID), seeded, cache.DefaultExpiration)

	first, err := repo.Get(ctx, seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, "Original", first.Name)

	// A caller editing its result must not bleed into later reads.
	first.Name = "Unsaved Edit"
	first.Version = 7

	second, err := repo.Get(ctx, seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, "Original", second.Name)
	assert.Equal(t, 1, second.Version)
}
