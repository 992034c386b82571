package ws

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/gorilla/websocket"

	"github.com/Oignontom8283/timeclass/internal/clock"
	"github.com/Oignontom8283/timeclass/internal/countdown"
	"github.com/Oignontom8283/timeclass/internal/models"
)

// SlotResolver находит отметку расписания по id школы и индексу (*catalog.Catalog).
type SlotResolver interface {
	Slot(id, index string) (models.School, models.TimeSlot, error)
}

// Frame: одно сообщение потока обратного отсчёта.
type Frame struct {
	SchoolID string           `json:"school_id"`
	Index    string           `json:"index"`
	Label    string           `json:"label,omitempty"`
	Target   time.Time        `json:"target"`
	Now      time.Time        `json:"now"`
	Overdue  bool             `json:"overdue"`
	Units    []countdown.Unit `json:"units"`
	Text     string           `json:"text"`
	Error    string           `json:"error,omitempty"`
}

// Hub хранит подключения клиентов, сгруппированные по теме "schoolID/index".
// Картой клиентов владеет только цикл Run.
type Hub struct {
	clients    map[string]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	done       chan struct{}

	slots    SlotResolver
	clock    clock.Clock
	interval time.Duration
}

// NewHub создает новый Hub. Один тикер с периодом interval рассылает кадры всем темам.
func NewHub(slots SlotResolver, clk clock.Clock, interval time.Duration) *Hub {
	if clk == nil {
		clk = clock.System{}
	}
	if interval <= 0 {
		interval = time.Second
	}
	return &Hub{
		clients:    make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		slots:      slots,
		clock:      clk,
		interval:   interval,
	}
}

// Run запускает цикл обработки каналов хаба до отмены ctx.
// При остановке тикер освобождается, а каналы всех клиентов закрываются.
func (h *Hub) Run(ctx context.Context) {
	ticker := time.NewTicker(h.interval)
	defer func() {
		ticker.Stop()
		for topic, clients := range h.clients {
			for client := range clients {
				close(client.Send)
			}
			delete(h.clients, topic)
		}
		close(h.done)
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case client := <-h.register:
			if h.clients[client.Topic] == nil {
				h.clients[client.Topic] = make(map[*Client]bool)
			}
			h.clients[client.Topic][client] = true
			// Первый кадр сразу, не дожидаясь тика.
			h.send(client, h.frame(client.SchoolID, client.Index))
		case client := <-h.unregister:
			if clients, ok := h.clients[client.Topic]; ok {
				if _, ok := clients[client]; ok {
					h.drop(client)
				}
			}
		case <-ticker.C:
			for _, clients := range h.clients {
				var msg []byte
				for client := range clients {
					if msg == nil {
						msg = h.frame(client.SchoolID, client.Index)
					}
					h.send(client, msg)
				}
			}
		}
	}
}

// Done закрывается, когда Run завершился.
func (h *Hub) Done() <-chan struct{} { return h.done }

func (h *Hub) send(client *Client, msg []byte) {
	select {
	case client.Send <- msg:
	default:
		// Клиент не успевает читать.
		h.drop(client)
	}
}

func (h *Hub) drop(client *Client) {
	clients := h.clients[client.Topic]
	delete(clients, client)
	close(client.Send)
	if len(clients) == 0 {
		delete(h.clients, client.Topic)
	}
}

func (h *Hub) frame(schoolID, index string) []byte {
	now := h.clock.Now()
	f := Frame{SchoolID: schoolID, Index: index, Now: now}

	_, slot, err := h.slots.Slot(schoolID, index)
	if err != nil {
		// Каталог перезагрузился без этой отметки.
		f.Error = err.Error()
	} else {
		b := countdown.Decompose(slot.Time, now)
		f.Label = slot.Label
		f.Target = slot.Time
		f.Overdue = b.Overdue
		f.Units = b.Units
		f.Text = b.String()
	}

	msg, err := json.Marshal(f)
	if err != nil {
		log.Println("Ошибка сериализации кадра отсчёта:", err)
		return nil
	}
	return msg
}

// Client представляет одно подключение через WebSocket.
type Client struct {
	Hub      *Hub
	Conn     *websocket.Conn
	Send     chan []byte
	SchoolID string
	Index    string
	Topic    string
}

// readPump читает сообщения из WebSocket-соединения.
// Входящие сообщения не обрабатываются, отслеживаем только разрыв соединения.
func (c *Client) readPump() {
	defer func() {
		select {
		case c.Hub.unregister <- c:
		case <-c.Hub.done:
		}
		c.Conn.Close()
	}()
	c.Conn.SetReadLimit(512)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			break
		}
	}
}

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 54 * time.Second
)

// writePump отправляет сообщения клиенту из канала Send.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()
	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// Канал закрыт.
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			// Отправка ping-сообщения для поддержания соединения.
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
