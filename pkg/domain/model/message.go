/*
 * @Description: WebSocket 变更事件的消息类型与载荷结构
 * @Author: 安知鱼
 * @Date: 2025-09-01 10:27:44
 * @LastEditTime: 2025-09-01 10:27:44
 * @LastEditors: 安知鱼
 */
package model

// WSMessageType 标识一次照片变更事件的种类
type WSMessageType string

const (
	WSPhotoUploaded WSMessageType = "photo_uploaded"
	WSPhotoUpdated  WSMessageType = "photo_updated"
	WSPhotoDeleted  WSMessageType = "photo_deleted"
	WSPhotoMoved    WSMessageType = "photo_moved"
	WSPhotoCopied   WSMessageType = "photo_copied"
)

// WSMessage 是推送到客户端的统一消息外层
type WSMessage struct {
	Type WSMessageType `json:"type"`
	Data interface{}   `json:"data"`
}

// PhotoChangedPayload 用于 uploaded / updated / copied 事件
type PhotoChangedPayload struct {
	Data    *Photo `json:"data"`
	AlbumID uint   `json:"album_id"`
}

// PhotoDeletedPayload 用于 deleted 事件
type PhotoDeletedPayload struct {
	ID      uint `json:"id"`
	AlbumID uint `json:"album_id"`
}

// PhotoMovedPayload 用于 moved 事件，携带源相册和目标相册
type PhotoMovedPayload struct {
	Data          *Photo `json:"data"`
	SourceAlbumID uint   `json:"source_album_id"`
	TargetAlbumID uint   `json:"target_album_id"`
}
