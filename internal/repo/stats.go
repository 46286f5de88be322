package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/tbourn/go-discovery-backend/internal/domain"
)

// SearchLogStats returns the number of audit rows and the newest CreatedAt,
// for conditional responses on the audit listing. latest is nil when the
// table is empty.
func SearchLogStats(ctx context.Context, db *gorm.DB) (count int64, latest *time.Time, err error) {
	q := db.WithContext(ctx).Model(&domain.SearchLog{})

	if err = q.Count(&count).Error; err != nil {
		return 0, nil, err
	}
	if count == 0 {
		return 0, nil, nil
	}

	// ORDER BY instead of MAX(): SQLite returns MAX() of a datetime as TEXT.
	var row struct {
		CreatedAt time.Time
	}
	if err = q.Select("created_at").Order("created_at DESC").Limit(1).Scan(&row).Error; err != nil {
		return 0, nil, err
	}
	return count, &row.CreatedAt, nil
}
