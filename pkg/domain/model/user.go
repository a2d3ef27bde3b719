/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-09-01 10:25:02
 * @LastEditTime: 2025-09-01 10:25:02
 * @LastEditors: 安知鱼
 */
package model

import "time"

// User 是广播的接收者身份。每次照片变更会推送给全部已知用户。
type User struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Nickname  string    `json:"nickname"`
	CreatedAt time.Time `json:"created_at"`
}
