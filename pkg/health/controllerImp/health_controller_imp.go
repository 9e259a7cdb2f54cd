package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"lifeplan/database"
	"lifeplan/entities"
	"lifeplan/pkg/logger"
)

const pingTimeout = 800 * time.Millisecond

var appStart = time.Now()

type HealthCtrl struct {
	db *gorm.DB
}

func NewHealthCtrl(db *gorm.DB) *HealthCtrl { return &HealthCtrl{db: db} }

type check struct {
	OK  bool   `json:"ok"`
	Err string `json:"err,omitempty"`
}

// Health reports liveness of the store. It answers 503 when the database
// cannot be reached or the schema is missing pieces the planner relies on.
func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), pingTimeout)
	defer cancel()

	checks := map[string]check{"database": h.ping(ctx)}
	if checks["database"].OK {
		checks["schema"] = h.schema()
	}

	ok := true
	for name, ch := range checks {
		if !ch.OK {
			ok = false
			logger.Warn("health check failed", "check", name, "err", ch.Err)
		}
	}
	status := http.StatusOK
	if !ok {
		status = http.StatusServiceUnavailable
	}

	return c.JSON(status, map[string]any{
		"status":     map[string]any{"ok": ok},
		"uptime_sec": int(time.Since(appStart).Seconds()),
		"checks":     checks,
		"time":       time.Now().Format(time.RFC3339),
	})
}

func (h *HealthCtrl) ping(ctx context.Context) check {
	if h.db == nil {
		return check{Err: "gorm db is nil"}
	}
	sqlDB, err := h.db.DB()
	if err != nil {
		return check{Err: "db.DB(): " + err.Error()}
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return check{Err: "ping: " + err.Error()}
	}
	return check{OK: true}
}

// schema confirms the migrated tables and the one-plan-per-period index.
func (h *HealthCtrl) schema() check {
	m := h.db.Migrator()
	for _, tbl := range []struct {
		name  string
		model any
	}{
		{"users", &entities.User{}},
		{"principles", &entities.Principles{}},
		{"plans", &entities.Plan{}},
	} {
		if !m.HasTable(tbl.model) {
			return check{Err: "missing table " + tbl.name}
		}
	}
	if !m.HasIndex(&entities.Plan{}, database.PlanUniqueIndex) {
		return check{Err: "missing index " + database.PlanUniqueIndex}
	}
	return check{OK: true}
}
