/*
 * @Description: WebSocket 连接注册表，按用户维度投递消息
 * @Author: 安知鱼
 * @Date: 2025-09-01 11:31:22
 * @LastEditTime: 2025-09-01 11:31:22
 * @LastEditors: 安知鱼
 */
package ws

import (
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	// 向对端写消息的超时
	writeWait = 10 * time.Second

	// 允许的 pong 间隔，超时即判定连接死亡
	pongWait = 60 * time.Second

	// ping 周期，必须小于 pongWait
	pingPeriod = (pongWait * 9) / 10

	// 每个连接的发送缓冲区大小
	sendBufferSize = 32
)

// Client 代表一条已注册的 WebSocket 连接
type Client struct {
	hub    *Hub
	userID uint
	conn   *websocket.Conn
	send   chan []byte
}

// Hub 维护 userID 到连接集合的映射。
// 同一用户可以有多条连接（多端登录），投递时逐条发送。
type Hub struct {
	mu      sync.RWMutex
	clients map[uint]map[*Client]struct{}
}

// NewHub 是 Hub 的构造函数
func NewHub() *Hub {
	return &Hub{
		clients: make(map[uint]map[*Client]struct{}),
	}
}

// Register 将一条新连接纳入注册表，并启动它的读写泵
func (h *Hub) Register(userID uint, conn *websocket.Conn) {
	client := &Client{
		hub:    h,
		userID: userID,
		conn:   conn,
		send:   make(chan []byte, sendBufferSize),
	}

	h.mu.Lock()
	if h.clients[userID] == nil {
		h.clients[userID] = make(map[*Client]struct{})
	}
	h.clients[userID][client] = struct{}{}
	h.mu.Unlock()

	log.Printf("[WS] 用户 %d 建立连接，当前连接数: %d", userID, h.ConnCount())

	go client.writePump()
	go client.readPump()
}

// unregister 摘除一条连接
func (h *Hub) unregister(client *Client) {
	h.mu.Lock()
	if conns, ok := h.clients[client.userID]; ok {
		if _, ok := conns[client]; ok {
			delete(conns, client)
			close(client.send)
			if len(conns) == 0 {
				delete(h.clients, client.userID)
			}
		}
	}
	h.mu.Unlock()
}

// SendToUser 向某个用户的所有连接投递一条消息。
// 投递是尽力而为的：发送缓冲已满的慢连接直接丢弃这条消息，
// 绝不阻塞调用方，也不影响其他连接。
func (h *Hub) SendToUser(userID uint, message []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients[userID] {
		select {
		case client.send <- message:
		default:
			log.Printf("[WS] WARN: 用户 %d 的连接缓冲已满，丢弃消息", userID)
		}
	}
}

// ConnCount 返回当前连接总数
func (h *Hub) ConnCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	count := 0
	for _, conns := range h.clients {
		count += len(conns)
	}
	return count
}

// readPump 消费对端消息。本服务不处理上行数据，读循环只负责
// 心跳与感知连接关闭。
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(512)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[WS] 用户 %d 连接异常关闭: %v", c.userID, err)
			}
			return
		}
	}
}

// writePump 将 send 通道中的消息写给对端，并定期发送 ping
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
