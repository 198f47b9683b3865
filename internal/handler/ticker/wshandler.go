package ticker

import (
	"context"
	"net/http"
	"sync"
	"time"

	"buyback/internal/service"
	"buyback/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
)

// 价格推送的websocket通道。客户端按token地址订阅，
// 服务端每秒把订阅到的价格快照推下去，前端不用轮询。

type subscribeMessage struct {
	Action    string   `json:"action"` // subscribe | unsubscribe
	Addresses []string `json:"addresses"`
}

type priceUpdate struct {
	Action string             `json:"action"` // price_update
	Prices map[string]float64 `json:"prices"` // address -> usd价
}

type ClientConn struct {
	Conn      *websocket.Conn
	Send      chan []byte // 异步发送通道，满了直接丢
	Addresses map[string]struct{}
}

type Handler struct {
	service service.MarketService
	mu      sync.RWMutex
	// 每个连接订阅的token地址
	clientAddresses map[*ClientConn]map[string]struct{}
	upgrader        websocket.Upgrader
}

func NewHandler(s service.MarketService) *Handler {
	h := &Handler{
		service:         s,
		clientAddresses: make(map[*ClientConn]map[string]struct{}),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true }, // 允许跨域
		},
	}
	go h.broadcastLoop()
	return h
}

// ServeWS 接受客户端websocket连接
func (h *Handler) ServeWS(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Warnf("ws upgrade error: %v", err)
		return
	}
	client := &ClientConn{
		Conn:      conn,
		Send:      make(chan []byte, 100),
		Addresses: make(map[string]struct{}),
	}
	h.mu.Lock()
	h.clientAddresses[client] = client.Addresses
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.clientAddresses, client)
		h.mu.Unlock()
		conn.Close()
	}()

	go client.writePump()
	client.readPump(h)
}

// broadcastLoop 每秒给每个连接推一次它订阅的价格
func (h *Handler) broadcastLoop() {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for range ticker.C {
		h.mu.RLock()
		for client, addresses := range h.clientAddresses {
			if len(addresses) == 0 {
				continue
			}
			prices := make(map[string]float64, len(addresses))
			for addr := range addresses {
				p, err := h.service.LatestPriceGet(context.Background(), addr)
				if err != nil {
					continue // 没有快照的跳过，别打断整轮
				}
				prices[addr] = p
			}
			if len(prices) == 0 {
				continue
			}

			data, err := json.Marshal(priceUpdate{Action: "price_update", Prices: prices})
			if err != nil {
				continue
			}
			select {
			case client.Send <- data:
			default:
				// 客户端消费太慢，丢掉这一帧
			}
		}
		h.mu.RUnlock()
	}
}

func (c *ClientConn) writePump() {
	defer c.Conn.Close()
	for msg := range c.Send {
		if err := c.Conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}
}

// readPump 读取客户端的订阅/退订消息，阻塞到连接断开
func (c *ClientConn) readPump(h *Handler) {
	for {
		_, msg, err := c.Conn.ReadMessage()
		if err != nil {
			return
		}

		var clientMsg subscribeMessage
		if err := json.Unmarshal(msg, &clientMsg); err != nil {
			logger.Debugf("invalid ws message: %v", err)
			continue
		}

		h.mu.Lock()
		switch clientMsg.Action {
		case "subscribe":
			for _, addr := range clientMsg.Addresses {
				c.Addresses[addr] = struct{}{}
			}
		case "unsubscribe":
			for _, addr := range clientMsg.Addresses {
				delete(c.Addresses, addr)
			}
		}
		h.mu.Unlock()
	}
}
