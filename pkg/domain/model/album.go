/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-09-01 10:25:02
 * @LastEditTime: 2025-09-01 10:25:02
 * @LastEditors: 安知鱼
 */
package model

import "time"

// Album 是相册业务模型，持有零到多张照片
type Album struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
