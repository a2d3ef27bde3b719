/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-09-01 12:45:33
 * @LastEditTime: 2025-09-01 12:45:33
 * @LastEditors: 安知鱼
 */
package main

import (
	"log"

	server "github.com/anzhiyu-c/xiangce-app/cmd/server"
)

func main() {
	if err := server.Run(); err != nil {
		log.Fatalf("应用启动失败: %v", err)
	}
}
