/*
 * @Description: 应用启动时的初始数据检查
 * @Author: 安知鱼
 * @Date: 2025-09-01 12:35:02
 * @LastEditTime: 2025-09-01 12:35:02
 * @LastEditors: 安知鱼
 */
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/anzhiyu-c/xiangce-app/pkg/constant"
	"github.com/anzhiyu-c/xiangce-app/pkg/domain/model"
	"github.com/anzhiyu-c/xiangce-app/pkg/domain/repository"
)

const defaultAdminUsername = "admin"

// EnsureDefaultUser 保证至少存在一个用户。
// 用户目录是广播的接收者集合，空目录意味着事件无人接收。
func EnsureDefaultUser(ctx context.Context, userRepo repository.UserRepository) error {
	_, err := userRepo.FindByUsername(ctx, defaultAdminUsername)
	if err == nil {
		return nil
	}
	if !errors.Is(err, constant.ErrNotFound) {
		return fmt.Errorf("检查默认用户失败: %w", err)
	}

	created, err := userRepo.Create(ctx, &model.User{
		Username: defaultAdminUsername,
		Nickname: "管理员",
	})
	if err != nil {
		return fmt.Errorf("创建默认用户失败: %w", err)
	}

	log.Printf("✅ 已创建默认用户: %s (ID: %d)", created.Username, created.ID)
	return nil
}
