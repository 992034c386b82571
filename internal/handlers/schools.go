package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Oignontom8283/timeclass/internal/countdown"
	"github.com/Oignontom8283/timeclass/internal/models"
)

// SchoolSummary: школа в списке
type SchoolSummary struct {
	ID          string    `json:"id" example:"lorgues"`
	DisplayName string    `json:"displayName" example:"Thomas Edison High School of Lorgues"`
	Address     string    `json:"address" example:"1 RUE EMILE HÉRAUD, LORGUES, 83510, FRANCE"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type SchoolsResponse struct {
	Items []SchoolSummary `json:"items"`
	Total int             `json:"total"`
}

// SchoolResponse: полная запись школы
type SchoolResponse struct {
	models.School
	DisplayName      string `json:"displayName"`
	FormattedAddress string `json:"formattedAddress"`
}

type SlotResponse struct {
	SchoolID string          `json:"schoolId"`
	Index    int             `json:"index"`
	Slot     models.TimeSlot `json:"slot"`
}

type CountdownResponse struct {
	SchoolID string           `json:"schoolId"`
	Index    int              `json:"index"`
	Label    string           `json:"label"`
	Target   time.Time        `json:"target"`
	Now      time.Time        `json:"now"`
	Overdue  bool             `json:"overdue"`
	Units    []countdown.Unit `json:"units"`
	Text     string           `json:"text" example:"2 hours, 5 minutes, 3 seconds"`
}

// GetSchoolsHandler возвращает список загруженных школ
// @Summary		Список школ
// @Description	Возвращает школы из последней успешной загрузки в порядке загрузки
// @Tags			schools
// @Produce		json
// @Success		200	{object}	SchoolsResponse			"Список школ"
// @Failure		502	{object}	response.ErrorResponse	"Не удалось получить список (LIST_FETCH_ERROR)"
// @Failure		503	{object}	response.ErrorResponse	"Каталог ещё загружается (CATALOG_LOADING)"
// @Router			/schools [get]
func (h *Handler) GetSchoolsHandler(c *gin.Context) {
	snap, ok := h.ready(c)
	if !ok {
		return
	}

	items := make([]SchoolSummary, 0, len(snap.Schools))
	for _, s := range snap.Schools {
		items = append(items, SchoolSummary{
			ID:          s.ID,
			DisplayName: s.Name.Display(),
			Address:     s.Address.Format(),
			UpdatedAt:   s.UpdatedAt,
		})
	}
	c.JSON(http.StatusOK, SchoolsResponse{Items: items, Total: len(items)})
}

// GetSchoolHandler возвращает одну школу
// @Summary		Школа по ID
// @Description	Возвращает полную запись школы, включая scheduleAll
// @Tags			schools
// @Produce		json
// @Param			id	path		string	true	"ID школы"
// @Success		200	{object}	SchoolResponse
// @Failure		404	{object}	response.ErrorResponse	"Школа не найдена (SCHOOL_NOT_FOUND)"
// @Failure		502	{object}	response.ErrorResponse	"Не удалось получить список (LIST_FETCH_ERROR)"
// @Failure		503	{object}	response.ErrorResponse	"Каталог ещё загружается (CATALOG_LOADING)"
// @Router			/schools/{id} [get]
func (h *Handler) GetSchoolHandler(c *gin.Context) {
	if _, ok := h.ready(c); !ok {
		return
	}

	school, err := h.cat.School(c.Param("id"))
	if err != nil {
		lookupFailed(c, err)
		return
	}
	c.JSON(http.StatusOK, SchoolResponse{
		School:           school,
		DisplayName:      school.Name.Display(),
		FormattedAddress: school.Address.Format(),
	})
}

// GetSlotHandler возвращает одну отметку расписания
// @Summary		Отметка расписания
// @Description	Индекс считается по scheduleAll, 0 соответствует scheduleStart
// @Tags			schools
// @Produce		json
// @Param			id		path		string	true	"ID школы"
// @Param			index	path		int		true	"Индекс отметки"
// @Success		200		{object}	SlotResponse
// @Failure		404		{object}	response.ErrorResponse	"Школа или отметка не найдена (SCHOOL_NOT_FOUND, SLOT_NOT_FOUND)"
// @Failure		502		{object}	response.ErrorResponse	"Не удалось получить список (LIST_FETCH_ERROR)"
// @Failure		503		{object}	response.ErrorResponse	"Каталог ещё загружается (CATALOG_LOADING)"
// @Router			/schools/{id}/slots/{index} [get]
func (h *Handler) GetSlotHandler(c *gin.Context) {
	if _, ok := h.ready(c); !ok {
		return
	}

	school, slot, err := h.cat.Slot(c.Param("id"), c.Param("index"))
	if err != nil {
		lookupFailed(c, err)
		return
	}
	index, _ := strconv.Atoi(c.Param("index"))
	c.JSON(http.StatusOK, SlotResponse{SchoolID: school.ID, Index: index, Slot: slot})
}

// GetCountdownHandler считает отсчёт до отметки на часах сервера
// @Summary		Обратный отсчёт
// @Description	Раскладывает время до отметки на годы, месяцы, недели, дни, часы, минуты и секунды
// @Tags			countdown
// @Produce		json
// @Param			id		path		string	true	"ID школы"
// @Param			index	path		int		true	"Индекс отметки"
// @Success		200		{object}	CountdownResponse
// @Failure		404		{object}	response.ErrorResponse	"Школа или отметка не найдена (SCHOOL_NOT_FOUND, SLOT_NOT_FOUND)"
// @Failure		502		{object}	response.ErrorResponse	"Не удалось получить список (LIST_FETCH_ERROR)"
// @Failure		503		{object}	response.ErrorResponse	"Каталог ещё загружается (CATALOG_LOADING)"
// @Router			/schools/{id}/slots/{index}/countdown [get]
func (h *Handler) GetCountdownHandler(c *gin.Context) {
	if _, ok := h.ready(c); !ok {
		return
	}

	school, slot, err := h.cat.Slot(c.Param("id"), c.Param("index"))
	if err != nil {
		lookupFailed(c, err)
		return
	}
	index, _ := strconv.Atoi(c.Param("index"))

	now := h.clock.Now()
	b := countdown.Decompose(slot.Time, now)
	c.JSON(http.StatusOK, CountdownResponse{
		SchoolID: school.ID,
		Index:    index,
		Label:    slot.Label,
		Target:   slot.Time,
		Now:      now,
		Overdue:  b.Overdue,
		Units:    b.Units,
		Text:     b.String(),
	})
}
