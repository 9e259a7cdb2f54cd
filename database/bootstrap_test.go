package database

import (
	"path/filepath"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"lifeplan/entities"
)

func TestOpenFreshDatabase(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "fresh.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	for _, tbl := range []any{&entities.User{}, &entities.Principles{}, &entities.Plan{}} {
		if !db.Migrator().HasTable(tbl) {
			t.Errorf("missing table for %T", tbl)
		}
	}
	if !db.Migrator().HasIndex(&entities.Plan{}, PlanUniqueIndex) {
		t.Errorf("missing %s", PlanUniqueIndex)
	}
}

func TestOpenDedupesLegacyPlans(t *testing.T) {
	path := filepath.Join(t.TempDir(), "legacy.db")

	legacy, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		t.Fatalf("open legacy: %v", err)
	}
	if err := legacy.Exec(`CREATE TABLE plans (id TEXT PRIMARY KEY, user_id TEXT, type TEXT, date TEXT)`).Error; err != nil {
		t.Fatalf("create legacy table: %v", err)
	}
	rows := [][4]string{
		{"p1", "u1", "day", "2024-01-01"},
		{"p2", "u1", "day", "2024-01-01"},
		{"p3", "u1", "week", "2024-01-01"},
		{"p4", "u2", "day", "2024-01-01"},
	}
	for _, r := range rows {
		if err := legacy.Exec(`INSERT INTO plans (id, user_id, type, date) VALUES (?, ?, ?, ?)`, r[0], r[1], r[2], r[3]).Error; err != nil {
			t.Fatalf("insert: %v", err)
		}
	}
	if sqlDB, err := legacy.DB(); err == nil {
		sqlDB.Close()
	}

	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	var ids []string
	if err := db.Raw(`SELECT id FROM plans ORDER BY id`).Scan(&ids).Error; err != nil {
		t.Fatalf("select: %v", err)
	}
	want := []string{"p1", "p3", "p4"}
	if len(ids) != len(want) {
		t.Fatalf("ids = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("ids = %v, want %v", ids, want)
			break
		}
	}
	if !db.Migrator().HasIndex(&entities.Plan{}, PlanUniqueIndex) {
		t.Errorf("unique index not created after dedupe")
	}
}
