/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-09-01 10:25:02
 * @LastEditTime: 2025-09-01 10:25:02
 * @LastEditors: 安知鱼
 */
package model

import "time"

// Photo 是核心业务模型。ImageUrl 在创建时写入后不再接受字段级修改，
// 只有生命周期操作（复制/删除）可以改变它指向的对象。
type Photo struct {
	ID        uint      `json:"id"`
	AlbumID   uint      `json:"album_id"`
	ImageUrl  string    `json:"image_url"`
	Caption   string    `json:"caption"`
	Location  string    `json:"location"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
