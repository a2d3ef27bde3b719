/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-09-01 12:20:08
 * @LastEditTime: 2025-09-01 12:20:08
 * @LastEditors: 安知鱼
 */
package router

import (
	"github.com/gin-gonic/gin"

	album_handler "github.com/anzhiyu-c/xiangce-app/pkg/handler/album"
	photo_handler "github.com/anzhiyu-c/xiangce-app/pkg/handler/photo"
	ws_handler "github.com/anzhiyu-c/xiangce-app/pkg/handler/ws"
)

// NoCacheMiddleware 全局反缓存中间件，确保所有API响应都不会被CDN缓存
func NoCacheMiddleware() gin.HandlerFunc {
	return gin.HandlerFunc(func(c *gin.Context) {
		c.Header("Cache-Control", "no-cache, no-store, must-revalidate, private, max-age=0")
		c.Header("Pragma", "no-cache")
		c.Header("Expires", "0")
		c.Header("X-Content-Type-Options", "nosniff")

		c.Next()
	})
}

// CORSMiddleware 处理跨域请求
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}

// Router 封装了应用的所有路由和其依赖的处理器。
type Router struct {
	albumHandler *album_handler.AlbumHandler
	photoHandler *photo_handler.PhotoHandler
	wsHandler    *ws_handler.WsHandler
}

// NewRouter 是 Router 的构造函数
func NewRouter(
	albumHandler *album_handler.AlbumHandler,
	photoHandler *photo_handler.PhotoHandler,
	wsHandler *ws_handler.WsHandler,
) *Router {
	return &Router{
		albumHandler: albumHandler,
		photoHandler: photoHandler,
		wsHandler:    wsHandler,
	}
}

// Setup 注册所有路由
func (r *Router) Setup(engine *gin.Engine) {
	engine.Use(CORSMiddleware())

	api := engine.Group("/api")
	api.Use(NoCacheMiddleware())
	{
		api.GET("/albums", r.albumHandler.GetAlbums)
		api.POST("/albums", r.albumHandler.CreateAlbum)

		api.GET("/albums/:albumID/photos", r.photoHandler.GetPhotos)
		api.POST("/albums/:albumID/photos", r.photoHandler.UploadPhoto)
		api.PATCH("/albums/:albumID/photos/:id", r.photoHandler.UpdatePhoto)
		api.DELETE("/albums/:albumID/photos/:id", r.photoHandler.DeletePhoto)

		api.POST("/photos/:id/move", r.photoHandler.MovePhoto)
		api.POST("/photos/:id/copy", r.photoHandler.CopyPhoto)

		// WebSocket 握手不走反缓存头也无妨，放在同组里保持路由集中
		api.GET("/ws", r.wsHandler.Connect)
	}
}
