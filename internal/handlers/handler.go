package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Oignontom8283/timeclass/internal/catalog"
	"github.com/Oignontom8283/timeclass/internal/clock"
	"github.com/Oignontom8283/timeclass/internal/loader"
	"github.com/Oignontom8283/timeclass/internal/response"
	"github.com/Oignontom8283/timeclass/internal/storage"
)

// Refresher перезагружает каталог (*catalog.Refresher).
type Refresher interface {
	Refresh(ctx context.Context, trigger string) (loader.Report, error)
}

type Handler struct {
	cat       *catalog.Catalog
	refresher Refresher
	runs      storage.LoadRunRepository // nil, если история загрузок отключена
	clock     clock.Clock
}

func New(cat *catalog.Catalog, refresher Refresher, runs storage.LoadRunRepository, clk clock.Clock) *Handler {
	if clk == nil {
		clk = clock.System{}
	}
	return &Handler{cat: cat, refresher: refresher, runs: runs, clock: clk}
}

// ready отвечает ошибкой, если каталог ещё не загружен или загрузка провалилась.
func (h *Handler) ready(c *gin.Context) (catalog.Snapshot, bool) {
	snap := h.cat.Snapshot()
	switch snap.State {
	case catalog.StateLoading:
		c.JSON(http.StatusServiceUnavailable, response.ErrorResponse{
			Code:    "CATALOG_LOADING",
			Message: "Каталог школ ещё загружается",
		})
		return snap, false
	case catalog.StateFailed:
		details := ""
		if snap.Error != nil {
			details = snap.Error.Error()
		}
		c.JSON(http.StatusBadGateway, response.ErrorResponse{
			Code:    "LIST_FETCH_ERROR",
			Message: "Не удалось получить список школ",
			Details: details,
		})
		return snap, false
	}
	return snap, true
}

func lookupFailed(c *gin.Context, err error) {
	switch {
	case errors.Is(err, catalog.ErrSchoolNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{
			Code:    "SCHOOL_NOT_FOUND",
			Message: "Школа не найдена",
			Details: err.Error(),
		})
	case errors.Is(err, catalog.ErrSlotNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{
			Code:    "SLOT_NOT_FOUND",
			Message: "Отметка расписания не найдена",
			Details: err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "INTERNAL_ERROR",
			Message: "Внутренняя ошибка сервера",
			Details: err.Error(),
		})
	}
}
