package ws

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/Oignontom8283/timeclass/internal/catalog"
	"github.com/Oignontom8283/timeclass/internal/response"
)

// Настраиваем апгрейдер для WebSocket с разрешением всех источников.
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// CountdownWebSocketHandler обновляет соединение до WebSocket и подписывает клиента на отсчёт до отметки.
// @Summary		Поток обратного отсчёта
// @Description	WebSocket: раз в секунду присылает кадр ws.Frame с отсчётом до отметки расписания
// @Tags			countdown
// @Param			id		path	string	true	"ID школы"
// @Param			index	path	int		true	"Индекс отметки в scheduleAll"
// @Success		101		{object}	Frame					"Переключение протокола"
// @Failure		404		{object}	response.ErrorResponse	"Школа или отметка не найдена (SCHOOL_NOT_FOUND, SLOT_NOT_FOUND)"
// @Router			/schools/{id}/slots/{index}/ws [get]
func (h *Hub) CountdownWebSocketHandler(c *gin.Context) {
	schoolID, index := c.Param("id"), c.Param("index")

	if _, _, err := h.slots.Slot(schoolID, index); err != nil {
		code, msg := "SLOT_NOT_FOUND", "Отметка расписания не найдена"
		if errors.Is(err, catalog.ErrSchoolNotFound) {
			code, msg = "SCHOOL_NOT_FOUND", "Школа не найдена"
		}
		c.JSON(http.StatusNotFound, response.ErrorResponse{Code: code, Message: msg, Details: err.Error()})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade уже ответил клиенту.
		return
	}
	client := &Client{
		Hub:      h,
		Conn:     conn,
		Send:     make(chan []byte, 16),
		SchoolID: schoolID,
		Index:    index,
		Topic:    schoolID + "/" + index,
	}

	select {
	case h.register <- client:
	case <-h.done:
		conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, ""))
		conn.Close()
		return
	}

	// Запускаем горутины для отправки и приема сообщений
	go client.writePump()
	client.readPump()
}
