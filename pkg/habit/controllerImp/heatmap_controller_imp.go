package controllerImp

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"lifeplan/entities"
	"lifeplan/pkg/apperr"
	"lifeplan/pkg/habit"
	"lifeplan/pkg/middleware"
	"lifeplan/pkg/period"
	plansvc "lifeplan/pkg/plan/service"
	prinsvc "lifeplan/pkg/principles/service"
)

// maxWindowDays bounds ?days so a request cannot ask for an unbounded grid.
const maxWindowDays = 3660

type HeatmapCtrl struct {
	plans      plansvc.PlanService
	principles prinsvc.PrinciplesService
	window     int
	now        func() time.Time
	loc        *time.Location
}

func New(plans plansvc.PlanService, principles prinsvc.PrinciplesService, window int, now func() time.Time, loc *time.Location) *HeatmapCtrl {
	return &HeatmapCtrl{plans: plans, principles: principles, window: window, now: now, loc: loc}
}

type heatmapRow struct {
	Habit         entities.HabitDefinition `json:"habit"`
	Cells         []habit.Cell             `json:"cells"`
	Completed     int                      `json:"completed"`
	CurrentStreak int                      `json:"currentStreak"`
	LongestStreak int                      `json:"longestStreak"`
}

func (h *HeatmapCtrl) Heatmap(c echo.Context) error {
	days := h.window
	if v := c.QueryParam("days"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > maxWindowDays {
			return apperr.JSON(c, apperr.Invalid("days must be between 1 and %d", maxWindowDays))
		}
		days = n
	}

	ctx := c.Request().Context()
	uid := middleware.UserID(c)
	pr, err := h.principles.Get(ctx, uid)
	if err != nil {
		return apperr.JSON(c, err)
	}
	plans, err := h.plans.GetAll(ctx, uid)
	if err != nil {
		return apperr.JSON(c, err)
	}

	today := period.Today(h.now(), h.loc)
	matrix := habit.BuildMatrix(pr.HabitDefinitions, plans, days, today)

	rows := make([]heatmapRow, 0, len(pr.HabitDefinitions))
	for _, def := range pr.HabitDefinitions {
		cells := matrix[def.ID]
		row := heatmapRow{Habit: def, Cells: cells}
		for _, cell := range cells {
			if cell.Completed {
				row.Completed++
			}
		}
		row.CurrentStreak, row.LongestStreak = habit.Streak(cells)
		rows = append(rows, row)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"days":   days,
		"from":   period.Format(today.AddDate(0, 0, 1-days)),
		"to":     period.Format(today),
		"habits": rows,
	})
}
