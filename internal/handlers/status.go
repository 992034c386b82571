package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Oignontom8283/timeclass/internal/catalog"
	"github.com/Oignontom8283/timeclass/internal/response"
)

// CatalogStatusResponse: наблюдаемое состояние загрузчика
type CatalogStatusResponse struct {
	State    catalog.State `json:"state" example:"ready"`
	Loading  bool          `json:"loading"`
	Error    string        `json:"error,omitempty"`
	Count    int           `json:"count"`
	LoadedAt *time.Time    `json:"loaded_at,omitempty"`
}

// HealthHandler
// @Summary	Проверка живости
// @Tags		status
// @Produce	json
// @Success	200	{object}	response.StatusResponse
// @Router		/health [get]
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, response.StatusResponse{Status: "OK"})
}

// GetStatusHandler возвращает состояние каталога: идёт ли загрузка, ошибка, число школ
// @Summary	Состояние каталога
// @Tags		status
// @Produce	json
// @Success	200	{object}	CatalogStatusResponse
// @Router		/status [get]
func (h *Handler) GetStatusHandler(c *gin.Context) {
	snap := h.cat.Snapshot()
	resp := CatalogStatusResponse{
		State:   snap.State,
		Loading: snap.Loading,
		Count:   len(snap.Schools),
	}
	if snap.Error != nil {
		resp.Error = snap.Error.Error()
	}
	if !snap.LoadedAt.IsZero() {
		resp.LoadedAt = &snap.LoadedAt
	}
	c.JSON(http.StatusOK, resp)
}
