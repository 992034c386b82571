package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Oignontom8283/timeclass/internal/catalog"
	"github.com/Oignontom8283/timeclass/internal/loader"
	"github.com/Oignontom8283/timeclass/internal/models"
	"github.com/Oignontom8283/timeclass/internal/response"
)

type ReloadResponse struct {
	Report loader.Report `json:"report"`
}

type ReloadErrorResponse struct {
	response.ErrorResponse
	Report loader.Report `json:"report"`
}

type LoadRunsResponse struct {
	Items []models.LoadRun `json:"items"`
}

// ReloadHandler перезагружает каталог школ
// @Summary		Перезагрузка каталога
// @Description	Заново получает список и записи школ, возвращает отчёт о загрузке
// @Tags			admin
// @Produce		json
// @Security		BearerAuth
// @Success		200	{object}	ReloadResponse
// @Failure		401	{object}	response.ErrorResponse	"Нет или неверный токен (NO_AUTH_HEADER, INVALID_TOKEN)"
// @Failure		502	{object}	ReloadErrorResponse		"Не удалось получить список (LIST_FETCH_ERROR)"
// @Failure		503	{object}	ReloadErrorResponse		"Перезагрузка прервана (LOAD_ABORTED)"
// @Router			/admin/reload [post]
func (h *Handler) ReloadHandler(c *gin.Context) {
	// Обрыв соединения клиента не должен прерывать перезагрузку.
	report, err := h.refresher.Refresh(context.WithoutCancel(c.Request.Context()), catalog.TriggerAdmin)
	if loader.IsAborted(err) {
		c.JSON(http.StatusServiceUnavailable, ReloadErrorResponse{
			ErrorResponse: response.ErrorResponse{
				Code:    "LOAD_ABORTED",
				Message: "Перезагрузка прервана, каталог не изменён",
				Details: err.Error(),
			},
			Report: report,
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadGateway, ReloadErrorResponse{
			ErrorResponse: response.ErrorResponse{
				Code:    "LIST_FETCH_ERROR",
				Message: "Не удалось получить список школ",
				Details: err.Error(),
			},
			Report: report,
		})
		return
	}
	c.JSON(http.StatusOK, ReloadResponse{Report: report})
}

// GetLoadRunsHandler возвращает историю загрузок
// @Summary		История загрузок
// @Tags			admin
// @Produce		json
// @Security		BearerAuth
// @Param			limit	query		int	false	"Сколько записей вернуть (1-100, по умолчанию 20)"
// @Success		200		{object}	LoadRunsResponse
// @Failure		400		{object}	response.ErrorResponse	"Неверный limit (VALIDATION_ERROR)"
// @Failure		401		{object}	response.ErrorResponse	"Нет или неверный токен (NO_AUTH_HEADER, INVALID_TOKEN)"
// @Failure		500		{object}	response.ErrorResponse	"Ошибка сервера (DB_ERROR)"
// @Failure		503		{object}	response.ErrorResponse	"История загрузок отключена (HISTORY_DISABLED)"
// @Router			/admin/loads [get]
func (h *Handler) GetLoadRunsHandler(c *gin.Context) {
	if h.runs == nil {
		c.JSON(http.StatusServiceUnavailable, response.ErrorResponse{
			Code:    "HISTORY_DISABLED",
			Message: "История загрузок отключена",
		})
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 || limit > 100 {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "limit должен быть числом от 1 до 100",
		})
		return
	}

	runs, err := h.runs.ListRecent(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Ошибка получения истории загрузок",
			Details: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, LoadRunsResponse{Items: runs})
}
