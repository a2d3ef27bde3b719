/*
 * @Description: 监听照片生命周期事件，并把它们转发给广播服务。
 * @Author: 安知鱼
 * @Date: 2025-09-01 11:40:18
 * @LastEditTime: 2025-09-01 11:40:18
 * @LastEditors: 安知鱼
 */
package listener

import (
	"context"

	"github.com/anzhiyu-c/xiangce-app/internal/pkg/event"
	"github.com/anzhiyu-c/xiangce-app/pkg/domain/model"
	"github.com/anzhiyu-c/xiangce-app/pkg/service/broadcast"
)

// PhotoBroadcastListener 订阅全部照片生命周期事件，
// 把事件载荷原样交给广播服务向所有用户推送。
// 编排层只负责发布事件，推送的失败不会传导回业务操作。
type PhotoBroadcastListener struct {
	broadcastSvc broadcast.BroadcastService
}

// NewPhotoBroadcastListener 是 PhotoBroadcastListener 的构造函数。
// 它订阅所有照片变更主题，是事件总线到 WebSocket 推送的唯一桥梁。
func NewPhotoBroadcastListener(
	eventBus *event.EventBus,
	broadcastSvc broadcast.BroadcastService,
) *PhotoBroadcastListener {
	listener := &PhotoBroadcastListener{
		broadcastSvc: broadcastSvc,
	}

	subscribe := func(topic event.Topic, msgType model.WSMessageType) {
		eventBus.Subscribe(topic, func(payload interface{}) {
			listener.broadcastSvc.Broadcast(context.Background(), msgType, payload)
		})
	}

	subscribe(event.PhotoUploaded, model.WSPhotoUploaded)
	subscribe(event.PhotoUpdated, model.WSPhotoUpdated)
	subscribe(event.PhotoDeleted, model.WSPhotoDeleted)
	subscribe(event.PhotoMoved, model.WSPhotoMoved)
	subscribe(event.PhotoCopied, model.WSPhotoCopied)

	return listener
}
