package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/siteledger/siteledger/internal/logger"
	"github.com/siteledger/siteledger/internal/postgres"
	"github.com/siteledger/siteledger/internal/types"

	"gorm.io/gorm"

	ierr "github.com/siteledger/siteledger/internal/errors"
)

// model is the constraint every persisted entity satisfies.
type model[T any] interface {
	*T
	GetID() string
	GetBaseModel() *types.BaseModel
}

// baseRepository implements tenant scoping, archived-row invisibility
// and version-checked updates once for every entity. Entity
// repositories embed it and contribute only their filter conditions.
type baseRepository[T any, PT model[T]] struct {
	client postgres.IClient
	log    *logger.Logger
}

func newBaseRepository[T any, PT model[T]](client postgres.IClient, log *logger.Logger) baseRepository[T, PT] {
	return baseRepository[T, PT]{client: client, log: log}
}

// scoped returns a query restricted to the caller's tenant with
// archived rows excluded. Every read and write goes through this.
func (r *baseRepository[T, PT]) scoped(ctx context.Context) *gorm.DB {
	return r.client.DB(ctx).
		Model(PT(new(T))).
		Where("tenant_id = ? AND archived_at IS NULL", types.GetTenantID(ctx))
}

func (r *baseRepository[T, PT]) Create(ctx context.Context, m PT) error {
	bm := m.GetBaseModel()
	if bm.TenantID == "" {
		bm.TenantID = types.GetTenantID(ctx)
	}
	// Signup and lead capture run without a tenant in context; every
	// authenticated write must stay inside the caller's tenant.
	if ctxTenant := types.GetTenantID(ctx); ctxTenant != "" && bm.TenantID != ctxTenant {
		return ierr.NewError("tenant mismatch").
			WithHint("Record tenant does not match the request context").
			Mark(ierr.ErrPermissionDenied)
	}

	if err := r.client.DB(ctx).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ierr.WithError(err).
				WithHint("A record with the same identifier already exists").
				Mark(ierr.ErrAlreadyExists)
		}
		return ierr.WithError(err).
			WithHint("Failed to create record").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *baseRepository[T, PT]) Get(ctx context.Context, id string) (PT, error) {
	var out T
	err := r.scoped(ctx).Where("id = ?", id).First(&out).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ierr.WithError(err).
				WithHintf("Record with ID %s was not found", id).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to fetch record").
			Mark(ierr.ErrDatabase)
	}
	return PT(&out), nil
}

// Update persists the full record if and only if the stored version
// matches the caller's. A stale version surfaces as a conflict so the
// caller can re-read and retry.
func (r *baseRepository[T, PT]) Update(ctx context.Context, m PT) error {
	bm := m.GetBaseModel()
	expectedVersion := bm.Version
	bm.Version = expectedVersion + 1
	bm.UpdatedAt = time.Now().UTC()
	bm.UpdatedBy = types.GetUserID(ctx)

	res := r.scoped(ctx).
		Where("id = ? AND version = ?", m.GetID(), expectedVersion).
		Select("*").
		Omit("id", "tenant_id", "created_at", "created_by").
		Updates(m)
	if res.Error != nil {
		bm.Version = expectedVersion
		return ierr.WithError(res.Error).
			WithHint("Failed to update record").
			Mark(ierr.ErrDatabase)
	}
	if res.RowsAffected == 0 {
		bm.Version = expectedVersion
		// Zero rows means either the record is gone or someone else
		// updated it first. Probe once to tell the two apart.
		var probe T
		err := r.scoped(ctx).Where("id = ?", m.GetID()).First(&probe).Error
		if err != nil {
			return ierr.NewErrorf("record with ID %s was not found", m.GetID()).
				Mark(ierr.ErrNotFound)
		}
		return ierr.NewError("record was modified by another request").
			WithHint("Re-fetch the record and retry the update").
			WithReportableDetails(map[string]any{
				"expected_version": expectedVersion,
				"current_version":  PT(&probe).GetBaseModel().Version,
			}).
			Mark(ierr.ErrVersionConflict)
	}
	return nil
}

// Archive soft-deletes the record. Archived rows stay in the table but
// become invisible to every read path.
func (r *baseRepository[T, PT]) Archive(ctx context.Context, id string) error {
	now := time.Now().UTC()
	res := r.scoped(ctx).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":      types.StatusArchived,
			"archived_at": now,
			"updated_at":  now,
			"updated_by":  types.GetUserID(ctx),
			"version":     gorm.Expr("version + 1"),
		})
	if res.Error != nil {
		return ierr.WithError(res.Error).
			WithHint("Failed to archive record").
			Mark(ierr.ErrDatabase)
	}
	if res.RowsAffected == 0 {
		return ierr.NewErrorf("record with ID %s was not found", id).
			Mark(ierr.ErrNotFound)
	}
	return nil
}

// list runs a scoped query with the entity's extra conditions applied
// through scope, honoring the filter's sort and pagination.
func (r *baseRepository[T, PT]) list(ctx context.Context, f types.BaseFilter, scope func(*gorm.DB) *gorm.DB) ([]PT, error) {
	db := r.scoped(ctx)
	if scope != nil {
		db = scope(db)
	}
	db = db.Order(fmt.Sprintf("%s %s", sanitizeSortColumn(f.GetSort()), sanitizeSortOrder(f.GetOrder())))
	if !f.IsUnlimited() {
		db = db.Limit(f.GetLimit())
	}
	if f.GetOffset() > 0 {
		db = db.Offset(f.GetOffset())
	}

	var out []PT
	if err := db.Find(&out).Error; err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list records").
			Mark(ierr.ErrDatabase)
	}
	return out, nil
}

func (r *baseRepository[T, PT]) count(ctx context.Context, scope func(*gorm.DB) *gorm.DB) (int, error) {
	db := r.scoped(ctx)
	if scope != nil {
		db = scope(db)
	}
	var n int64
	if err := db.Count(&n).Error; err != nil {
		return 0, ierr.WithError(err).
			WithHint("Failed to count records").
			Mark(ierr.ErrDatabase)
	}
	return int(n), nil
}

// applyTimeRange narrows a query by creation time.
func applyTimeRange(db *gorm.DB, f *types.TimeRangeFilter) *gorm.DB {
	if f == nil {
		return db
	}
	if f.StartTime != nil {
		db = db.Where("created_at >= ?", *f.StartTime)
	}
	if f.EndTime != nil {
		db = db.Where("created_at <= ?", *f.EndTime)
	}
	return db
}

var sortColumns = map[string]struct{}{
	"created_at":      {},
	"updated_at":      {},
	"name":            {},
	"code":            {},
	"due_date":        {},
	"expiration_date": {},
	"reference":       {},
}

// sanitizeSortColumn guards against arbitrary SQL in the sort field.
func sanitizeSortColumn(col string) string {
	if _, ok := sortColumns[col]; ok {
		return col
	}
	return "created_at"
}

func sanitizeSortOrder(order string) string {
	if order == types.OrderAsc {
		return types.OrderAsc
	}
	return types.OrderDesc
}
