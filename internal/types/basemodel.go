package types

import (
	"context"
	"time"
)

// BaseModel is embedded in every domain model that is persisted in the
// database. Any change here must be reflected in the schema by running
// migrations.
//
// ArchivedAt is the soft-delete marker: a non-nil value makes the row
// invisible to every read. Archiving is the only destructive operation the
// API exposes; there is no hard delete.
//
// Version is the optimistic concurrency token. It is incremented on every
// successful update and checked on write, so a stale client gets a version
// conflict instead of silently overwriting another session's changes.
type BaseModel struct {
	TenantID   string     `db:"tenant_id" json:"tenant_id" gorm:"column:tenant_id;index"`
	Status     Status     `db:"status" json:"status" gorm:"column:status"`
	ArchivedAt *time.Time `db:"archived_at" json:"archived_at,omitempty" gorm:"column:archived_at;index"`
	Version    int        `db:"version" json:"version" gorm:"column:version"`
	CreatedAt  time.Time  `db:"created_at" json:"created_at" gorm:"column:created_at"`
	UpdatedAt  time.Time  `db:"updated_at" json:"updated_at" gorm:"column:updated_at"`
	CreatedBy  string     `db:"created_by" json:"created_by" gorm:"column:created_by"`
	UpdatedBy  string     `db:"updated_by" json:"updated_by" gorm:"column:updated_by"`
}

func GetDefaultBaseModel(ctx context.Context) BaseModel {
	now := time.Now().UTC()
	return BaseModel{
		TenantID:  GetTenantID(ctx),
		Status:    StatusPublished,
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
		CreatedBy: GetUserID(ctx),
		UpdatedBy: GetUserID(ctx),
	}
}

// IsArchived reports whether the row carries the soft-delete marker.
func (m BaseModel) IsArchived() bool {
	return m.ArchivedAt != nil
}
