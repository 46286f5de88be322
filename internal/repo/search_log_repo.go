package repo

// Search log functions:
//
//   - CreateSearchLog(ctx, db, entry) -> *domain.SearchLog, error
//     Inserts an audit row; ID and CreatedAt are filled when empty.
//
//   - CountSearchLogs(ctx, db) -> int64, error
//
//   - ListSearchLogsPage(ctx, db, offset, limit) -> []domain.SearchLog, error
//     Newest first; ties on created_at fall back to id for a stable order.
//
// Callers treat write failures as non-fatal; a search never fails because its
// audit row could not be stored.

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tbourn/go-discovery-backend/internal/domain"
)

// CreateSearchLog inserts entry and returns the stored row.
func CreateSearchLog(ctx context.Context, db *gorm.DB, entry domain.SearchLog) (*domain.SearchLog, error) {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	if err := db.WithContext(ctx).Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// CountSearchLogs returns the number of audit rows.
func CountSearchLogs(ctx context.Context, db *gorm.DB) (int64, error) {
	var total int64
	err := db.WithContext(ctx).Model(&domain.SearchLog{}).Count(&total).Error
	return total, err
}

// ListSearchLogsPage returns one page of audit rows, newest first. The caller
// computes offset and limit (e.g. (page-1)*pageSize).
func ListSearchLogsPage(ctx context.Context, db *gorm.DB, offset, limit int) ([]domain.SearchLog, error) {
	out := []domain.SearchLog{}
	err := db.WithContext(ctx).
		Order("created_at desc").
		Order("id desc").
		Offset(offset).
		Limit(limit).
		Find(&out).Error
	return out, err
}
