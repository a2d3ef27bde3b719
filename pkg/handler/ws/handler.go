package ws_handler

import (
	"log"
	"net/http"
	"strconv"

	"github.com/anzhiyu-c/xiangce-app/internal/infra/ws"
	"github.com/anzhiyu-c/xiangce-app/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// WsHandler 负责把 HTTP 请求升级为 WebSocket 连接并注册到 Hub
type WsHandler struct {
	hub      *ws.Hub
	upgrader websocket.Upgrader
}

// NewWsHandler 是 WsHandler 的构造函数
func NewWsHandler(hub *ws.Hub) *WsHandler {
	return &WsHandler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// 推送走同源前端之外的客户端也要能连上
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Connect 处理 WebSocket 握手。uid 标识接收者，连接成功后
// 该用户会收到所有照片变更事件的推送。
func (h *WsHandler) Connect(c *gin.Context) {
	uid, err := strconv.ParseUint(c.Query("uid"), 10, 32)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "无效的 uid 参数")
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade 失败时 gorilla 已经写好了响应
		log.Printf("[WS] 连接升级失败: %v", err)
		return
	}

	h.hub.Register(uint(uid), conn)
}
