package ent

import (
	"context"
	"fmt"

	"github.com/anzhiyu-c/xiangce-app/pkg/constant"
	"github.com/anzhiyu-c/xiangce-app/pkg/domain/model"
	"github.com/anzhiyu-c/xiangce-app/pkg/domain/repository"

	"github.com/anzhiyu-c/xiangce-app/ent"
	"github.com/anzhiyu-c/xiangce-app/ent/user"
)

type entUserRepository struct {
	client *ent.Client
}

// NewEntUserRepository 是 entUserRepository 的构造函数
func NewEntUserRepository(client *ent.Client) repository.UserRepository {
	return &entUserRepository{client: client}
}

// ListIDs 枚举全部用户 ID，作为广播接收者集合
func (r *entUserRepository) ListIDs(ctx context.Context) ([]uint, error) {
	ids, err := r.client.User.Query().
		Order(ent.Asc(user.FieldID)).
		IDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("枚举用户列表失败: %w", err)
	}
	return ids, nil
}

func (r *entUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	po, err := r.client.User.Query().
		Where(user.Username(username)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: 用户 %s 不存在", constant.ErrNotFound, username)
		}
		return nil, fmt.Errorf("查询用户失败: %w", err)
	}
	return toDomainUser(po), nil
}

func (r *entUserRepository) Create(ctx context.Context, domainUser *model.User) (*model.User, error) {
	created, err := r.client.User.Create().
		SetUsername(domainUser.Username).
		SetNickname(domainUser.Nickname).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("创建用户失败: %w", err)
	}
	return toDomainUser(created), nil
}

// toDomainUser 将 Ent PO 转换为领域模型
func toDomainUser(po *ent.User) *model.User {
	if po == nil {
		return nil
	}
	return &model.User{
		ID:        po.ID,
		Username:  po.Username,
		Nickname:  po.Nickname,
		CreatedAt: po.CreatedAt,
	}
}
