/*
 * @Description: 应用组装与启动
 * @Author: 安知鱼
 * @Date: 2025-09-01 12:40:19
 * @LastEditTime: 2025-09-01 12:40:19
 * @LastEditors: 安知鱼
 */
package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/anzhiyu-c/xiangce-app/internal/app/bootstrap"
	"github.com/anzhiyu-c/xiangce-app/internal/app/listener"
	"github.com/anzhiyu-c/xiangce-app/internal/infra/persistence/database"
	entrepo "github.com/anzhiyu-c/xiangce-app/internal/infra/persistence/ent"
	"github.com/anzhiyu-c/xiangce-app/internal/infra/router"
	"github.com/anzhiyu-c/xiangce-app/internal/infra/storage"
	"github.com/anzhiyu-c/xiangce-app/internal/infra/ws"
	"github.com/anzhiyu-c/xiangce-app/internal/pkg/event"
	"github.com/anzhiyu-c/xiangce-app/pkg/config"
	"github.com/anzhiyu-c/xiangce-app/pkg/domain/repository"
	album_handler "github.com/anzhiyu-c/xiangce-app/pkg/handler/album"
	photo_handler "github.com/anzhiyu-c/xiangce-app/pkg/handler/photo"
	ws_handler "github.com/anzhiyu-c/xiangce-app/pkg/handler/ws"
	"github.com/anzhiyu-c/xiangce-app/pkg/service/album"
	"github.com/anzhiyu-c/xiangce-app/pkg/service/broadcast"
	"github.com/anzhiyu-c/xiangce-app/pkg/service/photo"

	"github.com/gin-gonic/gin"
)

// Run 组装全部依赖并启动 HTTP 服务，阻塞直到收到退出信号。
func Run() error {
	ctx := context.Background()

	// 1. 配置
	cfg, err := config.NewConfig()
	if err != nil {
		return fmt.Errorf("加载配置失败: %w", err)
	}

	// 2. 持久化层
	db, err := database.NewSQLDB(cfg)
	if err != nil {
		return fmt.Errorf("初始化数据库失败: %w", err)
	}
	defer db.Close()

	entClient, err := database.NewEntClient(db, cfg)
	if err != nil {
		return fmt.Errorf("初始化 Ent 客户端失败: %w", err)
	}
	defer entClient.Close()

	// Redis 可选，拿不到时 rdb 为 nil，广播退化为单实例本地投递
	rdb, err := database.NewRedisClient(ctx, cfg)
	if err != nil {
		return fmt.Errorf("初始化 Redis 失败: %w", err)
	}
	if rdb != nil {
		defer rdb.Close()
	}

	photoRepo := entrepo.NewEntPhotoRepository(entClient)
	albumRepo := entrepo.NewEntAlbumRepository(entClient)
	userRepo := entrepo.NewEntUserRepository(entClient)

	if err := bootstrap.EnsureDefaultUser(ctx, userRepo); err != nil {
		return err
	}

	// 3. 对象存储
	var saver repository.PhotoSaver
	switch storageType := cfg.GetString(config.KeyStorageType); storageType {
	case "aws", "s3":
		saver, err = storage.NewAwsPhotoSaver(ctx, cfg)
		if err != nil {
			return fmt.Errorf("初始化 AWS 存储失败: %w", err)
		}
		log.Println("✅ 对象存储: AWS S3")
	case "local", "":
		saver, err = storage.NewLocalPhotoSaver(cfg)
		if err != nil {
			return fmt.Errorf("初始化本地存储失败: %w", err)
		}
		log.Println("✅ 对象存储: 本地磁盘")
	default:
		return fmt.Errorf("不支持的存储类型: %s (支持: aws, local)", storageType)
	}

	// 4. 事件总线与广播链路
	eventBus := event.NewEventBus()
	defer eventBus.Shutdown()

	hub := ws.NewHub()
	broadcastSvc := broadcast.NewBroadcastService(userRepo, hub, rdb)

	subCtx, cancelSub := context.WithCancel(ctx)
	defer cancelSub()
	broadcastSvc.StartSubscriber(subCtx)

	listener.NewPhotoBroadcastListener(eventBus, broadcastSvc)

	// 5. 业务服务与控制器
	photoSvc := photo.NewPhotoService(photoRepo, albumRepo, saver, eventBus)
	albumSvc := album.NewAlbumService(albumRepo)

	photoHandler := photo_handler.NewPhotoHandler(photoSvc)
	albumHandler := album_handler.NewAlbumHandler(albumSvc)
	wsHandler := ws_handler.NewWsHandler(hub)

	// 6. HTTP 服务
	if !cfg.GetBool(config.KeyServerDebug) {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.Default()
	router.NewRouter(albumHandler, photoHandler, wsHandler).Setup(engine)

	port := cfg.GetString(config.KeyServerPort)
	if port == "" {
		port = "8091"
	}
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: engine,
	}

	go func() {
		log.Printf("🚀 服务启动，监听端口 %s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP 服务异常退出: %v", err)
		}
	}()

	// 7. 优雅退出
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("收到退出信号，开始优雅关闭...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("HTTP 服务关闭失败: %w", err)
	}

	log.Println("✅ 服务已退出")
	return nil
}
