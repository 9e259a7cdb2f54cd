// database/bootstrap.go
package database

import (
	"fmt"
	"strings"
	"time"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"lifeplan/entities"
	"lifeplan/pkg/logger"
)

const PlanUniqueIndex = "idx_plans_user_type_date"

// Open connects to the SQLite file at path and brings the schema up to date.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn(path)), &gorm.Config{
		Logger: gormlogger.New(logger.Logger, gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// IMPORTANT: dedupe BEFORE AutoMigrate so creating the unique index
	// cannot fail on rows written before it existed
	if err := dedupePlans(db); err != nil {
		return nil, fmt.Errorf("migrate plans: %w", err)
	}

	if err := db.AutoMigrate(
		&entities.User{},
		&entities.Principles{},
		&entities.Plan{},
	); err != nil {
		return nil, fmt.Errorf("automigrate: %w", err)
	}
	return db, nil
}

func dsn(path string) string {
	if strings.Contains(path, "?") {
		return path
	}
	return path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)"
}

// dedupePlans removes duplicate (user, type, date) plans left by databases
// created without the unique index, keeping the earliest row of each group.
func dedupePlans(db *gorm.DB) error {
	var tbl string
	if err := db.Raw(`SELECT name FROM sqlite_master WHERE type='table' AND name='plans'`).Scan(&tbl).Error; err != nil {
		return fmt.Errorf("check table exist: %w", err)
	}
	if tbl == "" {
		// fresh DB, nothing to do
		return nil
	}

	var idx string
	if err := db.Raw(`SELECT name FROM sqlite_master WHERE type='index' AND name=?`, PlanUniqueIndex).Scan(&idx).Error; err != nil {
		return fmt.Errorf("check index exist: %w", err)
	}
	if idx != "" {
		// already good
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		res := tx.Exec(`
DELETE FROM plans
WHERE rowid NOT IN (
    SELECT MIN(rowid) FROM plans GROUP BY user_id, type, date
);
`)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			logger.Warn("removed duplicate plans", "rows", res.RowsAffected)
		}
		return nil
	})
}
